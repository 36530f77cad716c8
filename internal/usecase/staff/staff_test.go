package staff

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/staff"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type memoryRepo struct {
	mu    sync.Mutex
	users []models.User
}

func (r *memoryRepo) Create(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrUserExists
		}
	}
	u.ID = uuid.New()
	u.CreatedAt = time.Date(2030, 1, 1, 0, 0, len(r.users), 0, time.UTC)
	r.users = append(r.users, *u)
	return nil
}

func (r *memoryRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryRepo) ListDoctors(_ context.Context, keyword string) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kw := strings.ToLower(keyword)
	var out []models.User
	for _, u := range r.users {
		if u.Role != models.RoleDoctor {
			continue
		}
		if kw == "" ||
			strings.Contains(strings.ToLower(u.UserName), kw) ||
			strings.Contains(strings.ToLower(u.Specialization), kw) {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type stubIssuer struct{ err error }

func (s stubIssuer) Issue(u *models.User) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "token-for-" + u.ID.String(), nil
}

func newCreateUser(repo *memoryRepo) *CreateUser {
	uc := NewCreateUser(repo, nil, nil)
	uc.cost = bcrypt.MinCost
	return uc
}

func seed(t *testing.T, repo *memoryRepo, name, email string, role models.Role, specialty string) *models.User {
	t.Helper()
	u, err := newCreateUser(repo).Execute(context.Background(), CreateUserInput{
		UserName: name, Email: email, Password: "correct-horse", Role: role, Specialization: specialty,
	})
	require.NoError(t, err)
	return u
}

func TestCreateUser(t *testing.T) {
	repo := &memoryRepo{}
	u := seed(t, repo, "Dr. Hala", " Hala@Clinic.Test ", models.RoleDoctor, "Cardiology")

	assert.Equal(t, "hala@clinic.test", u.Email)
	assert.NotEqual(t, "correct-horse", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("correct-horse")))

	_, err := newCreateUser(repo).Execute(context.Background(), CreateUserInput{
		UserName: "Other", Email: "hala@clinic.test", Password: "another-pass", Role: models.RoleReceptionist,
	})
	assert.ErrorIs(t, err, domain.ErrUserExists)
}

func TestCreateUser_Validation(t *testing.T) {
	base := CreateUserInput{UserName: "Sami", Email: "sami@clinic.test", Password: "long-enough", Role: models.RoleAdmin}

	tests := []struct {
		name string
		mod  func(in *CreateUserInput)
		want error
	}{
		{"name", func(in *CreateUserInput) { in.UserName = "S" }, ErrInvalidUserName},
		{"role", func(in *CreateUserInput) { in.Role = "janitor" }, domain.ErrInvalidRole},
		{"password", func(in *CreateUserInput) { in.Password = "short" }, ErrWeakPassword},
		{"email", func(in *CreateUserInput) { in.Email = "not-an-email" }, ErrInvalidEmail},
		{"phone", func(in *CreateUserInput) { in.Phone = "01312345678" }, ErrInvalidPhone},
		{"gender", func(in *CreateUserInput) { in.Gender = "other" }, ErrInvalidGender},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memoryRepo{}
			in := base
			tt.mod(&in)
			_, err := newCreateUser(repo).Execute(context.Background(), in)
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, repo.users)
		})
	}

	repo := &memoryRepo{}
	uc := NewCreateUser(repo, nil, func(string) bool { return false })
	_, err := uc.Execute(context.Background(), base)
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestLogin(t *testing.T) {
	repo := &memoryRepo{}
	u := seed(t, repo, "Reem", "reem@clinic.test", models.RoleReceptionist, "")
	uc := NewLogin(repo, stubIssuer{})
	ctx := context.Background()

	res, err := uc.Execute(ctx, "REEM@clinic.test", "correct-horse", models.RoleReceptionist)
	require.NoError(t, err)
	assert.Equal(t, u.ID, res.User.ID)
	assert.Equal(t, "token-for-"+u.ID.String(), res.Token)

	for _, tc := range []struct {
		email, password string
		role            models.Role
	}{
		{"reem@clinic.test", "wrong-password", models.RoleReceptionist},
		{"reem@clinic.test", "correct-horse", models.RoleDoctor},
		{"ghost@clinic.test", "correct-horse", models.RoleReceptionist},
	} {
		_, err := uc.Execute(ctx, tc.email, tc.password, tc.role)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	}

	boom := errors.New("signing key missing")
	_, err = NewLogin(repo, stubIssuer{err: boom}).Execute(ctx, "reem@clinic.test", "correct-horse", models.RoleReceptionist)
	assert.ErrorIs(t, err, boom)
}

func TestListDoctors(t *testing.T) {
	repo := &memoryRepo{}
	seed(t, repo, "Dr. Adam", "adam@clinic.test", models.RoleDoctor, "Dermatology")
	seed(t, repo, "Dr. Bassem", "bassem@clinic.test", models.RoleDoctor, "Cardiology")
	seed(t, repo, "Carla", "carla@clinic.test", models.RoleReceptionist, "Cardiology")

	uc := NewListDoctors(repo)
	ctx := context.Background()

	all, err := uc.Execute(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Dr. Bassem", all[0].UserName)

	cardio, err := uc.Execute(ctx, "  cardio ")
	require.NoError(t, err)
	require.Len(t, cardio, 1)
	assert.Equal(t, "Dr. Bassem", cardio[0].UserName)

	none, err := uc.Execute(ctx, "neurology")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestGetProfile(t *testing.T) {
	repo := &memoryRepo{}
	u := seed(t, repo, "Dr. Adam", "adam@clinic.test", models.RoleDoctor, "")

	got, err := NewGetProfile(repo).Execute(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Email, got.Email)

	_, err = NewGetProfile(repo).Execute(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
