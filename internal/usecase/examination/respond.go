package examination

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/examination"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type RecordResultInput struct {
	ExaminationID uuid.UUID
	Department    domain.Department
	Result        models.ExaminationResult

	ActorID uuid.UUID
}

type RecordResult struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewRecordResult(repo domain.Repository, audit *audit.Dispatcher) *RecordResult {
	return &RecordResult{repo: repo, audit: audit, now: time.Now}
}

func (uc *RecordResult) Execute(ctx context.Context, in RecordResultInput) (*models.Examination, error) {
	ex, err := uc.repo.Modify(ctx, in.ExaminationID, func(ex *models.Examination) error {
		return domain.Respond(ex, in.Department, in.Result, in.ActorID, uc.now())
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  in.ActorID,
		Action:   audit.ActionExaminationCompleted,
		Entity:   "examination",
		EntityID: ex.ID,
		Metadata: map[string]any{"request_to": ex.RequestTo},
	})

	return ex, nil
}

type CancelExamination struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelExamination(repo domain.Repository, audit *audit.Dispatcher) *CancelExamination {
	return &CancelExamination{repo: repo, audit: audit}
}

func (uc *CancelExamination) Execute(ctx context.Context, id, actorID uuid.UUID) (*models.Examination, error) {
	ex, err := uc.repo.Modify(ctx, id, func(ex *models.Examination) error {
		return domain.Cancel(ex, actorID)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   audit.ActionExaminationCancelled,
		Entity:   "examination",
		EntityID: ex.ID,
	})

	return ex, nil
}
