package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ErrRecordNotFound is returned by Repository getters for missing rows.
var ErrRecordNotFound = errors.New("record not found")

type Repository interface {
	ConflictFinder

	// -------- Participants --------
	GetDoctor(
		ctx context.Context,
		id uuid.UUID,
	) (*models.User, error)

	GetPatient(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Patient, error)

	// -------- Appointment --------
	GetAppointment(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Appointment, error)

	// CreateAppointment fails with a conflict error when the store's
	// non-overlap constraint rejects the row.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// ListAppointmentsForPeriod returns appointments starting in [start, end)
	// with Patient and Doctor loaded, ordered by start time.
	ListAppointmentsForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
		doctorID *uuid.UUID,
	) ([]models.Appointment, error)

	// -------- Serialization --------

	// WithSlotLock runs fn in one transaction holding exclusive locks on
	// keys. Every read and write fn performs through repo is part of it.
	WithSlotLock(
		ctx context.Context,
		keys []string,
		fn func(repo Repository) error,
	) error
}

func DoctorLockKey(id uuid.UUID) string {
	return "doctor:" + id.String()
}

func PatientLockKey(id uuid.UUID) string {
	return "patient:" + id.String()
}
