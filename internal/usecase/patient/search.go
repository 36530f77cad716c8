package patient

import (
	"context"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/patient"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type SearchPatients struct {
	repo domain.Repository
}

func NewSearchPatients(repo domain.Repository) *SearchPatients {
	return &SearchPatients{repo: repo}
}

// Execute returns one page (1-based) of patients matching keyword.
func (uc *SearchPatients) Execute(
	ctx context.Context,
	keyword string,
	page int,
) (*domain.Page, error) {

	if page < 1 {
		page = 1
	}

	items, total, err := uc.repo.Search(ctx, keyword, (page-1)*domain.PageSize, domain.PageSize)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Patient{}
	}

	return &domain.Page{
		Items:      items,
		Page:       page,
		TotalPages: int((total + domain.PageSize - 1) / domain.PageSize),
		Total:      total,
	}, nil
}
