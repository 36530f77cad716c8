package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type profileGetter interface {
	Execute(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type MeHandler struct {
	profile profileGetter
	log     zerolog.Logger
}

func NewMeHandler(profile profileGetter, log zerolog.Logger) *MeHandler {
	return &MeHandler{profile: profile, log: log}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	user, err := h.profile.Execute(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{"user": user})
}
