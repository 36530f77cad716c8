package examination

import (
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ===============================
// Examination Status
// ===============================

type Status string

const (
	StatusRequested Status = "Requested"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ===============================
// Departments and types
// ===============================

type Department string

const (
	DepartmentLab       Department = "Lab"
	DepartmentRadiology Department = "Radiology"
)

func (d Department) Valid() bool {
	return d == DepartmentLab || d == DepartmentRadiology
}

var LabTypes = []string{"Blood", "PCR", "LFT"}

var RadiologyTypes = []string{"CT Scan", "Ultrasound", "Mammogram", "X-Ray", "MRI"}

func ValidLabType(s string) bool       { return contains(LabTypes, s) }
func ValidRadiologyType(s string) bool { return contains(RadiologyTypes, s) }

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

// DepartmentFor maps a staff role onto the department whose results it may
// record. ok is false for roles that record none.
func DepartmentFor(role models.Role) (d Department, ok bool) {
	switch role {
	case models.RoleLaboratory:
		return DepartmentLab, true
	case models.RoleRadiology:
		return DepartmentRadiology, true
	}
	return "", false
}

const MaxNotes = 500

var (
	ErrNotFound           = httperr.NotFoundErr("examination_not_found")
	ErrInvalidState       = httperr.ErrBusiness(httperr.KindInvalidStateTransition, "invalid_state")
	ErrInvalidDepartment  = httperr.ValidationErr("invalid_department")
	ErrInvalidType        = httperr.ValidationErr("invalid_examination_type")
	ErrInvalidNotes       = httperr.ValidationErr("invalid_examination_notes")
	ErrMissingIndications = httperr.ValidationErr("missing_clinical_indications")
	ErrIncompleteResult   = httperr.ValidationErr("incomplete_result")
	ErrWrongDepartment    = httperr.ErrBusiness(httperr.KindForbidden, "wrong_department")
	ErrDoctorNotFound     = httperr.NotFoundErr("doctor_not_found")
	ErrPatientNotFound    = httperr.NotFoundErr("patient_not_found")
)
