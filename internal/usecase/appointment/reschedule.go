package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// RescheduleAppointmentInput leaves Date or Time empty to keep the stored
// value. Nil Notes or VisitType keep the stored value too.
type RescheduleAppointmentInput struct {
	ID uuid.UUID

	Date      string
	Time      string
	VisitType *string
	Notes     *string

	ActorID uuid.UUID
}

// ======================================================
// USE CASE
// ======================================================

type RescheduleAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
	now   func() time.Time
}

func NewRescheduleAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:  repo,
		audit: audit,
		loc:   loc,
		now:   time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleAppointmentInput,
) (*models.Appointment, error) {

	if in.VisitType != nil {
		if err := validateVisitType(*in.VisitType); err != nil {
			return nil, err
		}
	}
	if in.Notes != nil {
		if err := validateNotes(*in.Notes); err != nil {
			return nil, err
		}
	}

	current, err := uc.repo.GetAppointment(ctx, in.ID)
	if err != nil {
		return nil, notFound(err, ErrAppointmentNotFound)
	}

	keys := []string{
		domain.DoctorLockKey(current.DoctorID),
		domain.PatientLockKey(current.PatientID),
	}

	var (
		ap   *models.Appointment
		prev time.Time
	)

	err = uc.repo.WithSlotLock(ctx, keys, func(repo domain.Repository) error {
		// Re-read under the lock; a concurrent write may have changed the row.
		got, err := repo.GetAppointment(ctx, in.ID)
		if err != nil {
			return notFound(err, ErrAppointmentNotFound)
		}
		ap, prev = got, got.AppointmentDateTime

		if err := domain.CanReschedule(domain.Status(ap.Status)); err != nil {
			return err
		}

		date, clock := in.Date, in.Time
		if date == "" {
			date = ap.AppointmentDate
		}
		if clock == "" {
			clock = ap.StartTime
		}

		w, err := domain.ComputeWindow(date, clock, uc.loc)
		if err != nil {
			return err
		}
		if !w.Start.After(uc.now()) {
			return ErrInPast
		}

		id := ap.ID
		res, err := domain.CheckConflict(ctx, repo, domain.ConflictQuery{
			DoctorID:  ap.DoctorID,
			PatientID: ap.PatientID,
			Start:     w.Start,
			End:       w.End,
			ExcludeID: &id,
		})
		if err != nil {
			return err
		}
		if err := res.Err(); err != nil {
			return err
		}

		if err := domain.Reschedule(ap, w, in.ActorID); err != nil {
			return err
		}
		if in.VisitType != nil {
			ap.VisitType = *in.VisitType
		}
		if in.Notes != nil {
			ap.Notes = strings.TrimSpace(*in.Notes)
		}

		return repo.UpdateAppointment(ctx, ap)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  in.ActorID,
		Action:   audit.ActionAppointmentRescheduled,
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]any{
			"from": prev,
			"to":   ap.AppointmentDateTime,
		},
	})

	return ap, nil
}
