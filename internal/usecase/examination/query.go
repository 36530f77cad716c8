package examination

import (
	"context"
	"strings"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/examination"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type GetExamination struct {
	repo domain.Repository
}

func NewGetExamination(repo domain.Repository) *GetExamination {
	return &GetExamination{repo: repo}
}

func (uc *GetExamination) Execute(ctx context.Context, id uuid.UUID) (*models.Examination, error) {
	return uc.repo.GetByID(ctx, id)
}

type SearchExaminations struct {
	repo domain.Repository
}

func NewSearchExaminations(repo domain.Repository) *SearchExaminations {
	return &SearchExaminations{repo: repo}
}

func (uc *SearchExaminations) Execute(ctx context.Context, f domain.Filter) ([]models.Examination, error) {
	f.Keyword = strings.TrimSpace(f.Keyword)
	if f.Department != "" && !f.Department.Valid() {
		return nil, domain.ErrInvalidDepartment
	}

	items, err := uc.repo.Search(ctx, f)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Examination{}
	}
	return items, nil
}

// PatientResults lists a patient's completed examinations.
type PatientResults struct {
	repo domain.Repository
}

func NewPatientResults(repo domain.Repository) *PatientResults {
	return &PatientResults{repo: repo}
}

func (uc *PatientResults) Execute(ctx context.Context, patientID uuid.UUID) ([]models.Examination, error) {
	items, err := uc.repo.ListCompletedForPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Examination{}
	}
	return items, nil
}
