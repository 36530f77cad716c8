package appointment

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Reschedule moves ap into w. Conflict and past-time checks belong to the
// caller, which must run them against w before calling.
func Reschedule(ap *models.Appointment, w Window, actor uuid.UUID) error {
	if err := CanReschedule(Status(ap.Status)); err != nil {
		return err
	}

	ap.AppointmentDate = w.Date
	ap.StartTime = w.Time
	ap.AppointmentDateTime = w.Start
	ap.AppointmentEndTime = w.End
	ap.Status = string(StatusRescheduled)
	ap.UpdatedBy = &actor
	return nil
}

func Cancel(ap *models.Appointment, actor uuid.UUID) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.UpdatedBy = &actor
	return nil
}

func Complete(ap *models.Appointment, actor uuid.UUID) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.UpdatedBy = &actor
	return nil
}
