package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uuid.UUID,
	actorID uuid.UUID,
) (*models.Appointment, error) {

	ap, err := transition(ctx, uc.repo, appointmentID, func(ap *models.Appointment) error {
		return domain.Cancel(ap, actorID)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   audit.ActionAppointmentCancelled,
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return ap, nil
}

// transition loads the appointment under its slot lock, applies change and
// persists the result. Nothing is written when change fails.
func transition(
	ctx context.Context,
	repo domain.Repository,
	id uuid.UUID,
	change func(ap *models.Appointment) error,
) (*models.Appointment, error) {

	current, err := repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrAppointmentNotFound)
	}

	keys := []string{
		domain.DoctorLockKey(current.DoctorID),
		domain.PatientLockKey(current.PatientID),
	}

	var ap *models.Appointment
	err = repo.WithSlotLock(ctx, keys, func(tx domain.Repository) error {
		got, err := tx.GetAppointment(ctx, id)
		if err != nil {
			return notFound(err, ErrAppointmentNotFound)
		}
		if err := change(got); err != nil {
			return err
		}
		ap = got
		return tx.UpdateAppointment(ctx, got)
	})
	if err != nil {
		return nil, err
	}

	return ap, nil
}
