package staff

import (
	"context"
	"strings"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/staff"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type ListDoctors struct {
	repo domain.Repository
}

func NewListDoctors(repo domain.Repository) *ListDoctors {
	return &ListDoctors{repo: repo}
}

func (uc *ListDoctors) Execute(ctx context.Context, keyword string) ([]models.User, error) {
	doctors, err := uc.repo.ListDoctors(ctx, strings.TrimSpace(keyword))
	if err != nil {
		return nil, err
	}
	if doctors == nil {
		doctors = []models.User{}
	}
	return doctors, nil
}

type GetProfile struct {
	repo domain.Repository
}

func NewGetProfile(repo domain.Repository) *GetProfile {
	return &GetProfile{repo: repo}
}

func (uc *GetProfile) Execute(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return uc.repo.GetByID(ctx, id)
}
