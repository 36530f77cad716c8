package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func StatusFor(kind Kind) int {
	switch kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindInvalidTimeWindow, KindInvalidStateTransition, KindValidation:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

var messages = map[string]string{
	"doctor_not_found":      "Doctor not found.",
	"patient_not_found":     "Patient not found.",
	"appointment_not_found": "Appointment not found.",
	"invalid_date_or_time":  "Date must be MM/DD/YYYY and time hh:mm AM/PM.",
	"appointment_in_past":   "Appointment time cannot be in the past.",
	"doctor_conflict":       "This doctor is already reserved during this time slot.",
	"patient_conflict":      "Patient already has an appointment scheduled during this time slot.",
	"invalid_state":         "Current status does not allow this operation.",
	"patient_exists":        "Patient already exists.",
	"invalid_national_id":   "National ID is not valid.",
	"invalid_credentials":   "Invalid email, password or role.",
	"invalid_notes":         "Notes must be between 3 and 500 characters.",
	"invalid_visit_type":    "Visit type must be Visit or Re-Visit.",

	"invalid_patient_name":    "Patient name must be between 3 and 50 characters.",
	"invalid_phone":           "Phone must be an Egyptian mobile number.",
	"invalid_blood_type":      "Blood type is not valid.",
	"invalid_zip_code":        "Zip code must be 5 digits.",
	"invalid_medical_history": "Medical history entries need a condition and a valid status.",

	"user_not_found":    "User not found.",
	"user_exists":       "A user with this email already exists.",
	"invalid_role":      "Role is not a known staff role.",
	"invalid_user_name": "User name must be between 3 and 50 characters.",
	"invalid_email":     "Email address is not valid.",
	"weak_password":     "Password must be at least 8 characters.",
	"invalid_gender":    "Gender must be male or female.",

	"patient_has_records": "Patient still has appointments or examinations.",

	"examination_not_found":        "Examination not found.",
	"invalid_department":           "Examination must be requested to Lab or Radiology.",
	"invalid_examination_type":     "Examination type does not match the department.",
	"invalid_examination_notes":    "Notes must be at most 500 characters.",
	"missing_clinical_indications": "Radiology requests need at least one clinical indication.",
	"incomplete_result":            "Result is missing required fields.",
	"wrong_department":             "This examination belongs to another department.",

	"route_not_found": "Route not found.",
}

// FromError writes the response for err. Business errors map to their kind's
// status; anything else is logged and reported as an internal error.
func FromError(c *gin.Context, logger zerolog.Logger, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		msg, ok := messages[be.Code]
		if !ok {
			msg = be.Code
		}
		Write(c, StatusFor(be.Kind), be.Code, msg)
		return
	}

	logger.Error().Err(err).
		Str("method", c.Request.Method).
		Str("path", c.FullPath()).
		Msg("request failed")
	Internal(c, "internal_error", "Something went wrong.")
}
