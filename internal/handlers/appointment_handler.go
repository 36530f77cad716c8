package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
)

// ======================================================
// DEPENDENCIES
// ======================================================

type appointmentCreator interface {
	Execute(ctx context.Context, in ucAppointment.CreateAppointmentInput) (*models.Appointment, error)
}

type appointmentRescheduler interface {
	Execute(ctx context.Context, in ucAppointment.RescheduleAppointmentInput) (*models.Appointment, error)
}

// appointmentTransition is satisfied by both cancel and complete.
type appointmentTransition interface {
	Execute(ctx context.Context, id uuid.UUID, actorID uuid.UUID) (*models.Appointment, error)
}

type appointmentLister interface {
	Execute(ctx context.Context, date string, doctorID *uuid.UUID) ([]dto.AppointmentListDTO, error)
}

type appointmentGetter interface {
	Execute(ctx context.Context, id uuid.UUID) (*models.Appointment, error)
}

type doctorLister interface {
	Execute(ctx context.Context, keyword string) ([]models.User, error)
}

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create     appointmentCreator
	reschedule appointmentRescheduler
	cancel     appointmentTransition
	complete   appointmentTransition
	list       appointmentLister
	get        appointmentGetter
	doctors    doctorLister
	log        zerolog.Logger
}

func NewAppointmentHandler(
	create appointmentCreator,
	reschedule appointmentRescheduler,
	cancel appointmentTransition,
	complete appointmentTransition,
	list appointmentLister,
	get appointmentGetter,
	doctors doctorLister,
	log zerolog.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:     create,
		reschedule: reschedule,
		cancel:     cancel,
		complete:   complete,
		list:       list,
		get:        get,
		doctors:    doctors,
		log:        log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	PatientID       string `json:"patient_id" binding:"required,uuid"`
	DoctorID        string `json:"doctor_id" binding:"required,uuid"`
	AppointmentDate string `json:"appointment_date" binding:"required,mmddyyyy"`
	StartTime       string `json:"start_time" binding:"required,clock12"`
	VisitType       string `json:"visit_type" binding:"required,visit_type"`
	Notes           string `json:"notes" binding:"required,min=3,max=500"`
}

type RescheduleAppointmentRequest struct {
	AppointmentDate string  `json:"appointment_date" binding:"omitempty,mmddyyyy"`
	StartTime       string  `json:"start_time" binding:"omitempty,clock12"`
	VisitType       *string `json:"visit_type" binding:"omitempty,visit_type"`
	Notes           *string `json:"notes" binding:"omitempty,min=3,max=500"`
}

// ======================================================
// COMMANDS
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		PatientID: uuid.MustParse(req.PatientID),
		DoctorID:  uuid.MustParse(req.DoctorID),
		Date:      req.AppointmentDate,
		Time:      req.StartTime,
		VisitType: req.VisitType,
		Notes:     req.Notes,
		ActorID:   middleware.UserID(c),
	})
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req RescheduleAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.reschedule.Execute(c.Request.Context(), ucAppointment.RescheduleAppointmentInput{
		ID:        id,
		Date:      req.AppointmentDate,
		Time:      req.StartTime,
		VisitType: req.VisitType,
		Notes:     req.Notes,
		ActorID:   middleware.UserID(c),
	})
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, h.cancel)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, h.complete)
}

func (h *AppointmentHandler) transition(c *gin.Context, uc appointmentTransition) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ap, err := uc.Execute(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// QUERIES
// ======================================================

// ListByDate lists every doctor's appointments for ?date=MM/DD/YYYY.
func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	h.listFor(c, nil)
}

// ListMine lists the calling doctor's own appointments.
func (h *AppointmentHandler) ListMine(c *gin.Context) {
	doctorID := middleware.UserID(c)
	h.listFor(c, &doctorID)
}

func (h *AppointmentHandler) listFor(c *gin.Context, doctorID *uuid.UUID) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "invalid_request", "Query parameter date is required.")
		return
	}

	items, err := h.list.Execute(c.Request.Context(), date, doctorID)
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	httpresp.List(c, items)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ap, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.doctors.Execute(c.Request.Context(), c.Query("keyword"))
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	httpresp.List(c, doctors)
}
