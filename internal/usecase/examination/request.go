package examination

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/examination"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type RequestExaminationInput struct {
	PatientID uuid.UUID

	RequestTo     string
	LabType       string
	RadiologyType string
	DoctorNotes   string
	Indications   models.ClinicalIndications

	// DoctorID is the requesting doctor and the audit actor.
	DoctorID uuid.UUID
}

// ======================================================
// USE CASE
// ======================================================

type RequestExamination struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRequestExamination(repo domain.Repository, audit *audit.Dispatcher) *RequestExamination {
	return &RequestExamination{repo: repo, audit: audit}
}

func (uc *RequestExamination) Execute(
	ctx context.Context,
	in RequestExaminationInput,
) (*models.Examination, error) {

	ex := &models.Examination{
		PatientID:     in.PatientID,
		DoctorID:      in.DoctorID,
		RequestTo:     strings.TrimSpace(in.RequestTo),
		LabType:       strings.TrimSpace(in.LabType),
		RadiologyType: strings.TrimSpace(in.RadiologyType),
		DoctorNotes:   strings.TrimSpace(in.DoctorNotes),
		Indications:   in.Indications,
		Status:        string(domain.StatusRequested),
		CreatedBy:     in.DoctorID,
	}
	if err := domain.ValidateRequest(ex); err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetPatient(ctx, in.PatientID); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, ex); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  in.DoctorID,
		Action:   audit.ActionExaminationRequested,
		Entity:   "examination",
		EntityID: ex.ID,
		Metadata: map[string]any{
			"patient_id": ex.PatientID,
			"request_to": ex.RequestTo,
		},
	})

	return ex, nil
}
