package patient

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/patient"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type CreatePatient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreatePatient(repo domain.Repository, audit *audit.Dispatcher) *CreatePatient {
	return &CreatePatient{repo: repo, audit: audit}
}

func (uc *CreatePatient) Execute(
	ctx context.Context,
	in PatientInput,
	actorID uuid.UUID,
) (*models.Patient, error) {

	p := in.toModel()
	if err := validate(p); err != nil {
		return nil, err
	}

	if err := ensureUnique(ctx, uc.repo, p.NationalID, uuid.Nil); err != nil {
		return nil, err
	}

	p.CreatedBy = actorID
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   audit.ActionPatientCreated,
		Entity:   "patient",
		EntityID: p.ID,
	})

	return p, nil
}

// ensureUnique fails when another patient than self holds nationalID. The
// unique index still guards the write; this gives the common case a clean
// error before it.
func ensureUnique(ctx context.Context, repo domain.Repository, nationalID string, self uuid.UUID) error {
	existing, err := repo.GetByNationalID(ctx, nationalID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID != self:
		return domain.ErrPatientExists
	}
	return nil
}
