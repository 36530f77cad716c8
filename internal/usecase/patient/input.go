package patient

import (
	"regexp"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/patient"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

var (
	ErrInvalidName      = httperr.ValidationErr("invalid_patient_name")
	ErrInvalidPhone     = httperr.ValidationErr("invalid_phone")
	ErrInvalidBloodType = httperr.ValidationErr("invalid_blood_type")
	ErrInvalidZipCode   = httperr.ValidationErr("invalid_zip_code")
	ErrInvalidHistory   = httperr.ValidationErr("invalid_medical_history")

	zipRe = regexp.MustCompile(`^\d{5}$`)
)

// PatientInput carries every writable patient field. Gender, birth date and
// governorate of birth are never accepted; they come from NationalID.
type PatientInput struct {
	PatientName string
	NationalID  string
	Phone       string
	Email       string

	CurrentAddress   models.Address
	EmergencyContact models.EmergencyContact
	InsuranceDetails models.Insurance

	BloodType          string
	Allergies          []string
	MedicalHistory     []models.MedicalHistoryEntry
	CurrentMedications []string
}

// PatientPatch updates only the non-nil fields.
type PatientPatch struct {
	PatientName *string
	NationalID  *string
	Phone       *string
	Email       *string

	CurrentAddress   *models.Address
	EmergencyContact *models.EmergencyContact
	InsuranceDetails *models.Insurance

	BloodType          *string
	Allergies          []string
	MedicalHistory     []models.MedicalHistoryEntry
	CurrentMedications []string
}

func (in PatientInput) toModel() *models.Patient {
	return &models.Patient{
		PatientName:        strings.TrimSpace(in.PatientName),
		NationalID:         strings.TrimSpace(in.NationalID),
		Phone:              strings.TrimSpace(in.Phone),
		Email:              strings.ToLower(strings.TrimSpace(in.Email)),
		CurrentAddress:     in.CurrentAddress,
		EmergencyContact:   in.EmergencyContact,
		InsuranceDetails:   in.InsuranceDetails,
		BloodType:          in.BloodType,
		Allergies:          in.Allergies,
		MedicalHistory:     in.MedicalHistory,
		CurrentMedications: in.CurrentMedications,
	}
}

func (p PatientPatch) apply(m *models.Patient) {
	if p.PatientName != nil {
		m.PatientName = strings.TrimSpace(*p.PatientName)
	}
	if p.NationalID != nil {
		m.NationalID = strings.TrimSpace(*p.NationalID)
	}
	if p.Phone != nil {
		m.Phone = strings.TrimSpace(*p.Phone)
	}
	if p.Email != nil {
		m.Email = strings.ToLower(strings.TrimSpace(*p.Email))
	}
	if p.CurrentAddress != nil {
		m.CurrentAddress = *p.CurrentAddress
	}
	if p.EmergencyContact != nil {
		m.EmergencyContact = *p.EmergencyContact
	}
	if p.InsuranceDetails != nil {
		m.InsuranceDetails = *p.InsuranceDetails
	}
	if p.BloodType != nil {
		m.BloodType = *p.BloodType
	}
	if p.Allergies != nil {
		m.Allergies = p.Allergies
	}
	if p.MedicalHistory != nil {
		m.MedicalHistory = p.MedicalHistory
	}
	if p.CurrentMedications != nil {
		m.CurrentMedications = p.CurrentMedications
	}
}

// validate checks m and refreshes the fields derived from its national ID.
func validate(m *models.Patient) error {
	if n := len([]rune(m.PatientName)); n < 3 || n > 50 {
		return ErrInvalidName
	}
	if !domain.ValidPhone(m.Phone) {
		return ErrInvalidPhone
	}
	if ph := m.EmergencyContact.Phone; ph != "" && !domain.ValidPhone(ph) {
		return ErrInvalidPhone
	}
	if m.BloodType != "" && !domain.ValidBloodType(m.BloodType) {
		return ErrInvalidBloodType
	}
	if z := m.CurrentAddress.ZipCode; z != "" && !zipRe.MatchString(z) {
		return ErrInvalidZipCode
	}
	for _, h := range m.MedicalHistory {
		if h.Condition == "" || !domain.ValidHistoryStatus(h.Status) {
			return ErrInvalidHistory
		}
		if h.DiagnosisDate != nil && h.DiagnosisDate.After(time.Now()) {
			return ErrInvalidHistory
		}
	}
	return domain.ApplyIdentity(m)
}
