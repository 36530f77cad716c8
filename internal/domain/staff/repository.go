package staff

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

var (
	ErrNotFound           = httperr.NotFoundErr("user_not_found")
	ErrUserExists         = httperr.ErrBusiness(httperr.KindConflict, "user_exists")
	ErrInvalidCredentials = httperr.ErrBusiness(httperr.KindUnauthorized, "invalid_credentials")
	ErrInvalidRole        = httperr.ValidationErr("invalid_role")
)

type Repository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// ListDoctors matches keyword against name and specialization, newest
	// first. An empty keyword lists every doctor.
	ListDoctors(ctx context.Context, keyword string) ([]models.User, error)
}
