package staff

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/staff"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// TokenIssuer signs an access token for an authenticated user.
type TokenIssuer interface {
	Issue(u *models.User) (string, error)
}

type LoginResult struct {
	User  *models.User
	Token string
}

type Login struct {
	repo   domain.Repository
	tokens TokenIssuer
}

func NewLogin(repo domain.Repository, tokens TokenIssuer) *Login {
	return &Login{repo: repo, tokens: tokens}
}

// Execute authenticates by email, password and the role the user claims.
// A wrong role is reported like a wrong password.
func (uc *Login) Execute(
	ctx context.Context,
	email, password string,
	role models.Role,
) (*LoginResult, error) {

	u, err := uc.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if u.Role != role {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := uc.tokens.Issue(u)
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: u, Token: token}, nil
}
