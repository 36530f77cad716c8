package examination

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// ValidateRequest checks a new request. Lab requests carry a lab type only;
// radiology requests carry a radiology type and at least one indication.
func ValidateRequest(ex *models.Examination) error {
	switch Department(ex.RequestTo) {
	case DepartmentLab:
		if !ValidLabType(ex.LabType) || ex.RadiologyType != "" {
			return ErrInvalidType
		}
	case DepartmentRadiology:
		if !ValidRadiologyType(ex.RadiologyType) || ex.LabType != "" {
			return ErrInvalidType
		}
		if !ex.Indications.Any() {
			return ErrMissingIndications
		}
	default:
		return ErrInvalidDepartment
	}

	if utf8.RuneCountInString(ex.DoctorNotes) > MaxNotes {
		return ErrInvalidNotes
	}
	return nil
}

// Respond records dept's result and completes ex. Radiology results need
// every field; lab results may leave them blank.
func Respond(
	ex *models.Examination,
	dept Department,
	res models.ExaminationResult,
	actor uuid.UUID,
	now time.Time,
) error {
	if Status(ex.Status).IsTerminal() {
		return ErrInvalidState
	}
	if Department(ex.RequestTo) != dept {
		return ErrWrongDepartment
	}

	res.BodyPart = strings.TrimSpace(res.BodyPart)
	res.ResponseNotes = strings.TrimSpace(res.ResponseNotes)
	res.Impression = strings.TrimSpace(res.Impression)
	res.Findings = trimAll(res.Findings)

	if dept == DepartmentRadiology &&
		(res.BodyPart == "" || res.ResponseNotes == "" || res.Impression == "" || len(res.Findings) == 0) {
		return ErrIncompleteResult
	}
	if utf8.RuneCountInString(res.ResponseNotes) > MaxNotes ||
		utf8.RuneCountInString(res.Impression) > MaxNotes {
		return ErrInvalidNotes
	}

	at := now.UTC()
	res.RespondedAt = &at
	ex.Result = res
	ex.Status = string(StatusCompleted)
	ex.UpdatedBy = &actor
	return nil
}

// Cancel withdraws a request that has no result yet.
func Cancel(ex *models.Examination, actor uuid.UUID) error {
	if Status(ex.Status).IsTerminal() {
		return ErrInvalidState
	}

	ex.Status = string(StatusCancelled)
	ex.UpdatedBy = &actor
	return nil
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
