package examination

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// Filter narrows Search. Zero fields match everything.
type Filter struct {
	Keyword    string
	Department Department
	Status     Status
}

type Repository interface {
	// GetPatient fails with ErrPatientNotFound.
	GetPatient(ctx context.Context, id uuid.UUID) (*models.Patient, error)

	Create(ctx context.Context, ex *models.Examination) error

	// GetByID loads Patient and Doctor; it fails with ErrNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Examination, error)

	// Search matches Keyword against the patient's name, national ID and
	// phone. Results are newest first with Patient and Doctor loaded.
	Search(ctx context.Context, f Filter) ([]models.Examination, error)

	// ListCompletedForPatient returns the patient's results, newest first.
	ListCompletedForPatient(ctx context.Context, patientID uuid.UUID) ([]models.Examination, error)

	// Modify locks the row, applies fn and saves it. Nothing is written
	// when fn fails.
	Modify(
		ctx context.Context,
		id uuid.UUID,
		fn func(ex *models.Examination) error,
	) (*models.Examination, error)
}
