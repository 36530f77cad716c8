package patient

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/patient"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type UpdatePatient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdatePatient(repo domain.Repository, audit *audit.Dispatcher) *UpdatePatient {
	return &UpdatePatient{repo: repo, audit: audit}
}

func (uc *UpdatePatient) Execute(
	ctx context.Context,
	id uuid.UUID,
	patch PatientPatch,
	actorID uuid.UUID,
) (*models.Patient, error) {

	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previousID := p.NationalID

	patch.apply(p)
	if err := validate(p); err != nil {
		return nil, err
	}

	if p.NationalID != previousID {
		if err := ensureUnique(ctx, uc.repo, p.NationalID, p.ID); err != nil {
			return nil, err
		}
	}

	p.UpdatedBy = &actorID
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   audit.ActionPatientUpdated,
		Entity:   "patient",
		EntityID: p.ID,
	})

	return p, nil
}
