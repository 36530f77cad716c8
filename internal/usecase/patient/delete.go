package patient

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/patient"
)

type DeletePatient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeletePatient(repo domain.Repository, audit *audit.Dispatcher) *DeletePatient {
	return &DeletePatient{repo: repo, audit: audit}
}

// Execute removes a patient that no appointment or examination refers to.
func (uc *DeletePatient) Execute(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, p.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   audit.ActionPatientDeleted,
		Entity:   "patient",
		EntityID: p.ID,
		Metadata: map[string]any{"national_id": p.NationalID},
	})

	return nil
}
