package staff

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	patientdomain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/patient"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/staff"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

var (
	ErrInvalidUserName = httperr.ValidationErr("invalid_user_name")
	ErrWeakPassword    = httperr.ValidationErr("weak_password")
	ErrInvalidEmail    = httperr.ValidationErr("invalid_email")
	ErrInvalidPhone    = httperr.ValidationErr("invalid_phone")
	ErrInvalidGender   = httperr.ValidationErr("invalid_gender")
)

const minPasswordLen = 8

type CreateUserInput struct {
	UserName       string
	Email          string
	Password       string
	Role           models.Role
	Gender         string
	Specialization string
	Phone          string

	ActorID uuid.UUID
}

// EmailChecker reports whether an address can plausibly receive mail.
type EmailChecker func(email string) bool

type CreateUser struct {
	repo       domain.Repository
	audit      *audit.Dispatcher
	checkEmail EmailChecker
	cost       int
}

func NewCreateUser(
	repo domain.Repository,
	audit *audit.Dispatcher,
	checkEmail EmailChecker,
) *CreateUser {
	return &CreateUser{
		repo:       repo,
		audit:      audit,
		checkEmail: checkEmail,
		cost:       bcrypt.DefaultCost,
	}
}

func (uc *CreateUser) Execute(
	ctx context.Context,
	in CreateUserInput,
) (*models.User, error) {

	name := strings.TrimSpace(in.UserName)
	if n := len([]rune(name)); n < 3 || n > 50 {
		return nil, ErrInvalidUserName
	}
	if !in.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}
	if len(in.Password) < minPasswordLen {
		return nil, ErrWeakPassword
	}

	switch in.Gender {
	case "", patientdomain.GenderMale, patientdomain.GenderFemale:
	default:
		return nil, ErrInvalidGender
	}

	phone := strings.TrimSpace(in.Phone)
	if phone != "" && !patientdomain.ValidPhone(phone) {
		return nil, ErrInvalidPhone
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !strings.Contains(email, "@") || (uc.checkEmail != nil && !uc.checkEmail(email)) {
		return nil, ErrInvalidEmail
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &models.User{
		UserName:       name,
		Email:          email,
		PasswordHash:   string(hashed),
		Role:           in.Role,
		Gender:         in.Gender,
		Specialization: strings.TrimSpace(in.Specialization),
		Phone:          phone,
	}

	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  in.ActorID,
		Action:   audit.ActionUserCreated,
		Entity:   "user",
		EntityID: u.ID,
		Metadata: map[string]any{"role": u.Role},
	})

	return u, nil
}
