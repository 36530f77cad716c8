package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/patient"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	ucPatient "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/patient"
)

type patientCreator interface {
	Execute(ctx context.Context, in ucPatient.PatientInput, actorID uuid.UUID) (*models.Patient, error)
}

type patientUpdater interface {
	Execute(ctx context.Context, id uuid.UUID, patch ucPatient.PatientPatch, actorID uuid.UUID) (*models.Patient, error)
}

type patientGetter interface {
	ByID(ctx context.Context, id uuid.UUID) (*models.Patient, error)
	ByNationalID(ctx context.Context, nationalID string) (*models.Patient, error)
}

type patientSearcher interface {
	Execute(ctx context.Context, keyword string, page int) (*domain.Page, error)
}

type patientDeleter interface {
	Execute(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error
}

// patientResults lists a patient's completed examinations.
type patientResults interface {
	Execute(ctx context.Context, patientID uuid.UUID) ([]models.Examination, error)
}

type PatientHandler struct {
	create  patientCreator
	update  patientUpdater
	remove  patientDeleter
	get     patientGetter
	search  patientSearcher
	results patientResults
	log     zerolog.Logger
}

func NewPatientHandler(
	create patientCreator,
	update patientUpdater,
	remove patientDeleter,
	get patientGetter,
	search patientSearcher,
	results patientResults,
	log zerolog.Logger,
) *PatientHandler {
	return &PatientHandler{
		create:  create,
		update:  update,
		remove:  remove,
		get:     get,
		search:  search,
		results: results,
		log:     log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AddressRequest struct {
	Street      string `json:"street" binding:"max=100"`
	City        string `json:"city" binding:"max=50"`
	Governorate string `json:"governorate" binding:"max=50"`
	ZipCode     string `json:"zip_code" binding:"omitempty,len=5,numeric"`
}

type EmergencyContactRequest struct {
	Name     string `json:"name" binding:"max=50"`
	Relation string `json:"relation" binding:"max=30"`
	Phone    string `json:"phone" binding:"omitempty,eg_phone"`
}

type InsuranceRequest struct {
	Provider     string     `json:"provider" binding:"max=100"`
	PolicyNumber string     `json:"policy_number" binding:"max=50"`
	ValidUntil   *time.Time `json:"valid_until"`
}

type MedicalHistoryRequest struct {
	Condition     string     `json:"condition" binding:"required"`
	DiagnosisDate *time.Time `json:"diagnosis_date"`
	Treatment     string     `json:"treatment"`
	Status        string     `json:"status" binding:"required,oneof=ongoing recovered"`
}

type CreatePatientRequest struct {
	PatientName string `json:"patient_name" binding:"required,min=3,max=50"`
	NationalID  string `json:"national_id" binding:"required,national_id"`
	Phone       string `json:"phone" binding:"required,eg_phone"`
	Email       string `json:"email" binding:"omitempty,email"`

	CurrentAddress   AddressRequest          `json:"current_address"`
	EmergencyContact EmergencyContactRequest `json:"emergency_contact"`
	InsuranceDetails InsuranceRequest        `json:"insurance_details"`

	BloodType          string                  `json:"blood_type" binding:"omitempty,blood_type"`
	Allergies          []string                `json:"allergies"`
	MedicalHistory     []MedicalHistoryRequest `json:"medical_history" binding:"dive"`
	CurrentMedications []string                `json:"current_medications"`
}

type UpdatePatientRequest struct {
	PatientName *string `json:"patient_name" binding:"omitempty,min=3,max=50"`
	NationalID  *string `json:"national_id" binding:"omitempty,national_id"`
	Phone       *string `json:"phone" binding:"omitempty,eg_phone"`
	Email       *string `json:"email" binding:"omitempty,email"`

	CurrentAddress   *AddressRequest          `json:"current_address"`
	EmergencyContact *EmergencyContactRequest `json:"emergency_contact"`
	InsuranceDetails *InsuranceRequest        `json:"insurance_details"`

	BloodType          *string                 `json:"blood_type" binding:"omitempty,blood_type"`
	Allergies          []string                `json:"allergies"`
	MedicalHistory     []MedicalHistoryRequest `json:"medical_history" binding:"omitempty,dive"`
	CurrentMedications []string                `json:"current_medications"`
}

func (r AddressRequest) model() models.Address {
	return models.Address(r)
}

func (r EmergencyContactRequest) model() models.EmergencyContact {
	return models.EmergencyContact(r)
}

func (r InsuranceRequest) model() models.Insurance {
	return models.Insurance(r)
}

func historyModels(in []MedicalHistoryRequest) []models.MedicalHistoryEntry {
	if in == nil {
		return nil
	}
	out := make([]models.MedicalHistoryEntry, len(in))
	for i, h := range in {
		out[i] = models.MedicalHistoryEntry(h)
	}
	return out
}

// ======================================================
// COMMANDS
// ======================================================

func (h *PatientHandler) Create(c *gin.Context) {
	var req CreatePatientRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.create.Execute(c.Request.Context(), ucPatient.PatientInput{
		PatientName:        req.PatientName,
		NationalID:         req.NationalID,
		Phone:              req.Phone,
		Email:              req.Email,
		CurrentAddress:     req.CurrentAddress.model(),
		EmergencyContact:   req.EmergencyContact.model(),
		InsuranceDetails:   req.InsuranceDetails.model(),
		BloodType:          req.BloodType,
		Allergies:          req.Allergies,
		MedicalHistory:     historyModels(req.MedicalHistory),
		CurrentMedications: req.CurrentMedications,
	}, middleware.UserID(c))
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	httpresp.Created(c, p)
}

func (h *PatientHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdatePatientRequest
	if !bindJSON(c, &req) {
		return
	}

	patch := ucPatient.PatientPatch{
		PatientName:        req.PatientName,
		NationalID:         req.NationalID,
		Phone:              req.Phone,
		Email:              req.Email,
		BloodType:          req.BloodType,
		Allergies:          req.Allergies,
		MedicalHistory:     historyModels(req.MedicalHistory),
		CurrentMedications: req.CurrentMedications,
	}
	if req.CurrentAddress != nil {
		a := req.CurrentAddress.model()
		patch.CurrentAddress = &a
	}
	if req.EmergencyContact != nil {
		e := req.EmergencyContact.model()
		patch.EmergencyContact = &e
	}
	if req.InsuranceDetails != nil {
		i := req.InsuranceDetails.model()
		patch.InsuranceDetails = &i
	}

	p, err := h.update.Execute(c.Request.Context(), id, patch, middleware.UserID(c))
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	httpresp.OK(c, p)
}

func (h *PatientHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), id, middleware.UserID(c)); err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// QUERIES
// ======================================================

func (h *PatientHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	p, err := h.get.ByID(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	httpresp.OK(c, p)
}

// GetByNationalID returns the patient together with their completed
// examination results.
func (h *PatientHandler) GetByNationalID(c *gin.Context) {
	p, err := h.get.ByNationalID(c.Request.Context(), c.Param("nationalId"))
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	results, err := h.results.Execute(c.Request.Context(), p.ID)
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{
		"patient": p,
		"results": results,
	})
}

func (h *PatientHandler) Search(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	res, err := h.search.Execute(c.Request.Context(), c.Query("keyword"), page)
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	httpresp.Page(c, res.Items, res.Page, res.TotalPages, res.Total)
}
