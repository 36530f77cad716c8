package appointment

import "github.com/BruksfildServices01/clinic-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled   Status = "Scheduled"
	StatusRescheduled Status = "Re-Scheduled"
	StatusCompleted   Status = "Completed"
	StatusCancelled   Status = "Cancelled"
)

type VisitType string

const (
	VisitTypeVisit   VisitType = "Visit"
	VisitTypeRevisit VisitType = "Re-Visit"
)

func (v VisitType) Valid() bool {
	return v == VisitTypeVisit || v == VisitTypeRevisit
}

var ErrInvalidState = httperr.ErrBusiness(httperr.KindInvalidStateTransition, "invalid_state")

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// ===============================
// Transitions
// ===============================

func CanReschedule(current Status) error {
	if current.IsTerminal() {
		return ErrInvalidState
	}
	return nil
}

func CanCancel(current Status) error {
	if current.IsTerminal() {
		return ErrInvalidState
	}
	return nil
}

// CanComplete rejects cancelled appointments as well: a cancelled slot was
// released and can no longer be attended.
func CanComplete(current Status) error {
	if current.IsTerminal() {
		return ErrInvalidState
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}
