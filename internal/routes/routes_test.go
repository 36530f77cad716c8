package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type countingLimiter struct{ hits map[string]int }

func (l *countingLimiter) Hit(_ context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	l.hits[key]++
	return int64(l.hits[key]), window, nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "routes-secret",
		JWTTTL:          time.Hour,
		Timezone:        "Africa/Cairo",
		RateLimitMax:    2,
		RateLimitWindow: time.Minute,
	}
}

func engine(t *testing.T, limiter middleware.WindowCounter) (*gin.Engine, *config.Config) {
	t.Helper()
	cfg := testConfig()
	r := gin.New()
	RegisterRoutes(r, Deps{Config: cfg, Log: zerolog.Nop(), Limiter: limiter})
	return r, cfg
}

func token(t *testing.T, cfg *config.Config, role models.Role) string {
	t.Helper()
	tok, err := middleware.NewJWTIssuer(cfg).Issue(&models.User{ID: uuid.New(), Role: role})
	require.NoError(t, err)
	return tok
}

func request(r http.Handler, method, path, tok string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRoutesRegistered(t *testing.T) {
	r, _ := engine(t, nil)

	got := map[string]bool{}
	for _, rt := range r.Routes() {
		got[rt.Method+" "+rt.Path] = true
	}

	for _, want := range []string{
		"GET /health",
		"POST /api/auth/login",
		"POST /api/auth/register",
		"GET /api/me",
		"GET /api/appointments/doctors",
		"POST /api/appointments",
		"PUT /api/appointments/:id",
		"PATCH /api/appointments/:id/cancel",
		"PATCH /api/appointments/:id/complete",
		"GET /api/appointments",
		"GET /api/appointments/doctor",
		"GET /api/appointments/:id",
		"POST /api/patients",
		"PUT /api/patients/:id",
		"GET /api/patients",
		"GET /api/patients/:id",
		"GET /api/patients/national/:nationalId",
		"DELETE /api/patients/:id",
		"POST /api/examinations",
		"GET /api/examinations",
		"GET /api/examinations/:id",
		"PUT /api/examinations/:id/result",
		"PATCH /api/examinations/:id/cancel",
		"GET /api/audit-logs",
	} {
		assert.True(t, got[want], want)
	}
}

func TestHealthIsPublic(t *testing.T) {
	r, _ := engine(t, nil)
	w := request(r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoleGuards(t *testing.T) {
	r, cfg := engine(t, nil)

	cases := []struct {
		method, path string
		role         models.Role
	}{
		{http.MethodPost, "/api/appointments", models.RoleDoctor},
		{http.MethodPatch, "/api/appointments/" + uuid.NewString() + "/cancel", models.RoleDoctor},
		{http.MethodPatch, "/api/appointments/" + uuid.NewString() + "/complete", models.RoleReceptionist},
		{http.MethodGet, "/api/appointments/doctor?date=05/20/2030", models.RoleReceptionist},
		{http.MethodPost, "/api/patients", models.RoleDoctor},
		{http.MethodGet, "/api/patients", models.RoleLaboratory},
		{http.MethodGet, "/api/audit-logs", models.RoleReceptionist},
		{http.MethodDelete, "/api/patients/" + uuid.NewString(), models.RoleDoctor},
		{http.MethodPost, "/api/auth/register", models.RoleReceptionist},
		{http.MethodPost, "/api/examinations", models.RoleLaboratory},
		{http.MethodPost, "/api/examinations", models.RoleReceptionist},
		{http.MethodGet, "/api/examinations", models.RoleReceptionist},
		{http.MethodPut, "/api/examinations/" + uuid.NewString() + "/result", models.RoleDoctor},
		{http.MethodPut, "/api/examinations/" + uuid.NewString() + "/result", models.RoleAdmin},
		{http.MethodPatch, "/api/examinations/" + uuid.NewString() + "/cancel", models.RoleReceptionist},
	}
	for _, tc := range cases {
		w := request(r, tc.method, tc.path, token(t, cfg, tc.role))
		assert.Equal(t, http.StatusForbidden, w.Code, "%s %s as %s", tc.method, tc.path, tc.role)
	}

	w := request(r, http.MethodGet, "/api/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = request(r, http.MethodPost, "/api/auth/register", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUnknownRoute(t *testing.T) {
	r, _ := engine(t, nil)

	w := request(r, http.MethodGet, "/api/nothing-here", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error_code":"route_not_found","message":"Route not found."}`, w.Body.String())
}

func TestRateLimitScopes(t *testing.T) {
	limiter := &countingLimiter{hits: map[string]int{}}
	r, _ := engine(t, limiter)

	for range 2 {
		w := request(r, http.MethodGet, "/api/me", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}
	w := request(r, http.MethodGet, "/api/me", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	w = request(r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 3, limiter.hits["ratelimit:api:192.0.2.1"])
	assert.Zero(t, limiter.hits["ratelimit:auth:192.0.2.1"])
}
