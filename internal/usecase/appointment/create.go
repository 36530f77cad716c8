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

type CreateAppointmentInput struct {
	PatientID uuid.UUID
	DoctorID  uuid.UUID

	Date      string
	Time      string
	VisitType string
	Notes     string

	ActorID uuid.UUID
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
	now   func() time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		loc:   loc,
		now:   time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Input
	// --------------------------------------------------
	if err := validateVisitType(in.VisitType); err != nil {
		return nil, err
	}
	if err := validateNotes(in.Notes); err != nil {
		return nil, err
	}

	w, err := domain.ComputeWindow(in.Date, in.Time, uc.loc)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Participants
	// --------------------------------------------------
	if _, err := uc.repo.GetDoctor(ctx, in.DoctorID); err != nil {
		return nil, notFound(err, ErrDoctorNotFound)
	}
	if _, err := uc.repo.GetPatient(ctx, in.PatientID); err != nil {
		return nil, notFound(err, ErrPatientNotFound)
	}

	// --------------------------------------------------
	// Window must be in the future
	// --------------------------------------------------
	if !w.Start.After(uc.now()) {
		return nil, ErrInPast
	}

	ap := &models.Appointment{
		PatientID:           in.PatientID,
		DoctorID:            in.DoctorID,
		AppointmentDate:     w.Date,
		StartTime:           w.Time,
		AppointmentDateTime: w.Start,
		AppointmentEndTime:  w.End,
		Status:              string(domain.InitialStatus()),
		VisitType:           in.VisitType,
		Notes:               strings.TrimSpace(in.Notes),
		CreatedBy:           in.ActorID,
	}

	// --------------------------------------------------
	// Conflict check and insert under the slot lock
	// --------------------------------------------------
	keys := []string{
		domain.DoctorLockKey(in.DoctorID),
		domain.PatientLockKey(in.PatientID),
	}

	err = uc.repo.WithSlotLock(ctx, keys, func(repo domain.Repository) error {
		res, err := domain.CheckConflict(ctx, repo, domain.ConflictQuery{
			DoctorID:  in.DoctorID,
			PatientID: in.PatientID,
			Start:     w.Start,
			End:       w.End,
		})
		if err != nil {
			return err
		}
		if err := res.Err(); err != nil {
			return err
		}
		return repo.CreateAppointment(ctx, ap)
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		ActorID:  in.ActorID,
		Action:   audit.ActionAppointmentCreated,
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]any{
			"doctor_id":  ap.DoctorID,
			"patient_id": ap.PatientID,
			"start":      ap.AppointmentDateTime,
		},
	})

	return ap, nil
}
