package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type ConflictType string

const (
	ConflictNone    ConflictType = ""
	ConflictDoctor  ConflictType = "doctor"
	ConflictPatient ConflictType = "patient"
)

type ConflictResult struct {
	Conflict bool         `json:"conflict"`
	Type     ConflictType `json:"type,omitempty"`
}

// ConflictFilter selects non-cancelled appointments of one doctor or one
// patient whose slot intersects [Start, End).
type ConflictFilter struct {
	DoctorID  *uuid.UUID
	PatientID *uuid.UUID
	Start     time.Time
	End       time.Time
	ExcludeID *uuid.UUID
}

type ConflictFinder interface {
	// FindConflicting returns nil, nil when nothing matches.
	FindConflicting(ctx context.Context, f ConflictFilter) (*models.Appointment, error)
}

type ConflictQuery struct {
	DoctorID  uuid.UUID
	PatientID uuid.UUID
	Start     time.Time
	End       time.Time
	ExcludeID *uuid.UUID
}

// CheckConflict looks for a doctor-side clash first and stops there; the
// patient side is only checked when the doctor is free.
func CheckConflict(
	ctx context.Context,
	finder ConflictFinder,
	q ConflictQuery,
) (ConflictResult, error) {

	doctorID := q.DoctorID
	clash, err := finder.FindConflicting(ctx, ConflictFilter{
		DoctorID:  &doctorID,
		Start:     q.Start,
		End:       q.End,
		ExcludeID: q.ExcludeID,
	})
	if err != nil {
		return ConflictResult{}, err
	}
	if clash != nil {
		return ConflictResult{Conflict: true, Type: ConflictDoctor}, nil
	}

	patientID := q.PatientID
	clash, err = finder.FindConflicting(ctx, ConflictFilter{
		PatientID: &patientID,
		Start:     q.Start,
		End:       q.End,
		ExcludeID: q.ExcludeID,
	})
	if err != nil {
		return ConflictResult{}, err
	}
	if clash != nil {
		return ConflictResult{Conflict: true, Type: ConflictPatient}, nil
	}

	return ConflictResult{}, nil
}

func ErrConflict(t ConflictType) error {
	return httperr.ErrBusiness(httperr.KindConflict, string(t)+"_conflict")
}

func (r ConflictResult) Err() error {
	if !r.Conflict {
		return nil
	}
	return ErrConflict(r.Type)
}

// ConflictTypeOf extracts the conflicting side from a conflict error.
func ConflictTypeOf(err error) ConflictType {
	switch {
	case httperr.IsBusiness(err, "doctor_conflict"):
		return ConflictDoctor
	case httperr.IsBusiness(err, "patient_conflict"):
		return ConflictPatient
	}
	return ConflictNone
}
