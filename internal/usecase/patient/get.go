package patient

import (
	"context"
	"strings"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/patient"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type GetPatient struct {
	repo domain.Repository
}

func NewGetPatient(repo domain.Repository) *GetPatient {
	return &GetPatient{repo: repo}
}

func (uc *GetPatient) ByID(ctx context.Context, id uuid.UUID) (*models.Patient, error) {
	return uc.repo.GetByID(ctx, id)
}

func (uc *GetPatient) ByNationalID(ctx context.Context, nationalID string) (*models.Patient, error) {
	nationalID = strings.TrimSpace(nationalID)
	if !domain.ValidNationalID(nationalID) {
		return nil, domain.ErrInvalidNationalID
	}
	return uc.repo.GetByNationalID(ctx, nationalID)
}
