package patient

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

const PageSize = 12

type Page struct {
	Items      []models.Patient `json:"items"`
	Page       int              `json:"page"`
	TotalPages int              `json:"total_pages"`
	Total      int64            `json:"total"`
}

type Repository interface {
	Create(ctx context.Context, p *models.Patient) error
	Update(ctx context.Context, p *models.Patient) error

	// Delete fails with ErrHasRecords while appointments or examinations
	// still reference the patient.
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Patient, error)
	GetByNationalID(ctx context.Context, nationalID string) (*models.Patient, error)

	// Search matches keyword against name, national ID and phone; an empty
	// keyword matches every patient. Results are newest first.
	Search(ctx context.Context, keyword string, offset, limit int) ([]models.Patient, int64, error)
}
