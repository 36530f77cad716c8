package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	ucStaff "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/staff"
)

type authenticator interface {
	Execute(ctx context.Context, email, password string, role models.Role) (*ucStaff.LoginResult, error)
}

type registrar interface {
	Execute(ctx context.Context, in ucStaff.CreateUserInput) (*models.User, error)
}

type AuthHandler struct {
	login    authenticator
	register registrar
	log      zerolog.Logger
}

func NewAuthHandler(login authenticator, register registrar, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{login: login, register: register, log: log}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,staff_role"`
}

// RegisterRequest creates a staff account. Admins are created with the
// "user create" command only.
type RegisterRequest struct {
	UserName       string `json:"user_name" binding:"required,min=3,max=50"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8,max=72"`
	Role           string `json:"role" binding:"required,oneof=doctor receptionist laboratory radiology"`
	Gender         string `json:"gender" binding:"required,oneof=male female"`
	Specialization string `json:"specialization" binding:"omitempty,min=3,max=50"`
	Phone          string `json:"phone" binding:"required,eg_phone"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.login.Execute(c.Request.Context(), req.Email, req.Password, models.Role(req.Role))
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{
		"user":  res.User,
		"token": res.Token,
	})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	u, err := h.register.Execute(c.Request.Context(), ucStaff.CreateUserInput{
		UserName:       req.UserName,
		Email:          req.Email,
		Password:       req.Password,
		Role:           models.Role(req.Role),
		Gender:         req.Gender,
		Specialization: req.Specialization,
		Phone:          req.Phone,
		ActorID:        middleware.UserID(c),
	})
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	httpresp.Created(c, u)
}
