package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/examination"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	ucExamination "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/examination"
)

// ======================================================
// DEPENDENCIES
// ======================================================

type examinationRequester interface {
	Execute(ctx context.Context, in ucExamination.RequestExaminationInput) (*models.Examination, error)
}

type examinationRecorder interface {
	Execute(ctx context.Context, in ucExamination.RecordResultInput) (*models.Examination, error)
}

type examinationCanceller interface {
	Execute(ctx context.Context, id, actorID uuid.UUID) (*models.Examination, error)
}

type examinationGetter interface {
	Execute(ctx context.Context, id uuid.UUID) (*models.Examination, error)
}

type examinationSearcher interface {
	Execute(ctx context.Context, f domain.Filter) ([]models.Examination, error)
}

// ======================================================
// HANDLER
// ======================================================

type ExaminationHandler struct {
	request examinationRequester
	record  examinationRecorder
	cancel  examinationCanceller
	get     examinationGetter
	search  examinationSearcher
	log     zerolog.Logger
}

func NewExaminationHandler(
	request examinationRequester,
	record examinationRecorder,
	cancel examinationCanceller,
	get examinationGetter,
	search examinationSearcher,
	log zerolog.Logger,
) *ExaminationHandler {
	return &ExaminationHandler{
		request: request,
		record:  record,
		cancel:  cancel,
		get:     get,
		search:  search,
		log:     log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ClinicalIndicationsRequest struct {
	Cough                  bool `json:"cough"`
	Fever                  bool `json:"fever"`
	Trauma                 bool `json:"trauma"`
	FollowUp               bool `json:"follow_up"`
	ChestPain              bool `json:"chest_pain"`
	OtherIndication        bool `json:"other_indication"`
	RoutineScreening       bool `json:"routine_screening"`
	RuleOutPneumonia       bool `json:"rule_out_pneumonia"`
	ShortnessOfBreath      bool `json:"shortness_of_breath"`
	AbnormalLabResults     bool `json:"abnormal_lab_results"`
	RuleOutPneumothorax    bool `json:"rule_out_pneumothorax"`
	UnexplainedWeightLoss  bool `json:"unexplained_weight_loss"`
	PreOperativeEvaluation bool `json:"pre_operative_evaluation"`
}

type RequestExaminationRequest struct {
	PatientID     string                     `json:"patient_id" binding:"required,uuid"`
	RequestTo     string                     `json:"request_to" binding:"required,oneof=Lab Radiology"`
	LabType       string                     `json:"lab_examination_type"`
	RadiologyType string                     `json:"rad_examination_type"`
	DoctorNotes   string                     `json:"doctor_notes" binding:"max=500"`
	Indications   ClinicalIndicationsRequest `json:"clinical_indications"`
}

type ExaminationResultRequest struct {
	BodyPart      string   `json:"body_part" binding:"max=50"`
	ResponseNotes string   `json:"response_notes" binding:"max=500"`
	Findings      []string `json:"findings"`
	Impression    string   `json:"impression" binding:"max=500"`
}

// ======================================================
// COMMANDS
// ======================================================

func (h *ExaminationHandler) Request(c *gin.Context) {
	var req RequestExaminationRequest
	if !bindJSON(c, &req) {
		return
	}

	ex, err := h.request.Execute(c.Request.Context(), ucExamination.RequestExaminationInput{
		PatientID:     uuid.MustParse(req.PatientID),
		RequestTo:     req.RequestTo,
		LabType:       req.LabType,
		RadiologyType: req.RadiologyType,
		DoctorNotes:   req.DoctorNotes,
		Indications:   models.ClinicalIndications(req.Indications),
		DoctorID:      middleware.UserID(c),
	})
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	httpresp.Created(c, ex)
}

// RecordResult stores the result for the caller's own department.
func (h *ExaminationHandler) RecordResult(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	dept, ok := domain.DepartmentFor(middleware.UserRole(c))
	if !ok {
		httperr.Forbidden(c, "forbidden", "Only laboratory or radiology staff record results.")
		return
	}

	var req ExaminationResultRequest
	if !bindJSON(c, &req) {
		return
	}

	ex, err := h.record.Execute(c.Request.Context(), ucExamination.RecordResultInput{
		ExaminationID: id,
		Department:    dept,
		Result: models.ExaminationResult{
			BodyPart:      req.BodyPart,
			ResponseNotes: req.ResponseNotes,
			Findings:      req.Findings,
			Impression:    req.Impression,
		},
		ActorID: middleware.UserID(c),
	})
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	httpresp.OK(c, ex)
}

func (h *ExaminationHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ex, err := h.cancel.Execute(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	httpresp.OK(c, ex)
}

// ======================================================
// QUERIES
// ======================================================

func (h *ExaminationHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ex, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	httpresp.OK(c, ex)
}

// Search lists examinations. Laboratory and radiology staff only see their
// own department's requests.
func (h *ExaminationHandler) Search(c *gin.Context) {
	f := domain.Filter{
		Keyword:    c.Query("keyword"),
		Department: domain.Department(c.Query("request_to")),
		Status:     domain.Status(c.Query("status")),
	}
	if dept, ok := domain.DepartmentFor(middleware.UserRole(c)); ok {
		f.Department = dept
	}

	items, err := h.search.Execute(c.Request.Context(), f)
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	httpresp.List(c, items)
}
