package appointment

import (
	"errors"
	"strings"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

var (
	ErrDoctorNotFound      = httperr.NotFoundErr("doctor_not_found")
	ErrPatientNotFound     = httperr.NotFoundErr("patient_not_found")
	ErrAppointmentNotFound = httperr.NotFoundErr("appointment_not_found")

	ErrInPast           = httperr.ErrBusiness(httperr.KindInvalidTimeWindow, "appointment_in_past")
	ErrInvalidNotes     = httperr.ValidationErr("invalid_notes")
	ErrInvalidVisitType = httperr.ValidationErr("invalid_visit_type")
)

const (
	notesMin = 3
	notesMax = 500
)

// notFound replaces a store miss with target and passes other errors through.
func notFound(err, target error) error {
	if errors.Is(err, domain.ErrRecordNotFound) {
		return target
	}
	return err
}

func validateNotes(notes string) error {
	n := len([]rune(strings.TrimSpace(notes)))
	if n < notesMin || n > notesMax {
		return ErrInvalidNotes
	}
	return nil
}

func validateVisitType(v string) error {
	if !domain.VisitType(v).Valid() {
		return ErrInvalidVisitType
	}
	return nil
}
