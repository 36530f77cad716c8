package patient

import (
	"regexp"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// Egyptian mobile number, optionally with the 20 country code.
var phoneRe = regexp.MustCompile(`^(20)?01[0-25]\d{8}$`)

func ValidPhone(s string) bool {
	return phoneRe.MatchString(s)
}

var bloodTypes = map[string]bool{
	"A+": true, "A-": true,
	"B+": true, "B-": true,
	"O+": true, "O-": true,
	"AB+": true, "AB-": true,
}

func ValidBloodType(s string) bool {
	return bloodTypes[s]
}

const (
	HistoryOngoing   = "ongoing"
	HistoryRecovered = "recovered"
)

func ValidHistoryStatus(s string) bool {
	return s == HistoryOngoing || s == HistoryRecovered
}

// ApplyIdentity decodes p.NationalID and stores the derived fields on p.
func ApplyIdentity(p *models.Patient) error {
	id, err := ParseNationalID(p.NationalID)
	if err != nil {
		return err
	}

	birth := id.BirthDate
	p.BirthDate = &birth
	p.Gender = id.Gender
	p.GovernorateOfBirth = id.Governorate
	return nil
}
