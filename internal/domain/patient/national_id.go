package patient

import (
	"regexp"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

var (
	nationalIDRe = regexp.MustCompile(`^[23]\d{13}$`)

	ErrInvalidNationalID = httperr.ValidationErr("invalid_national_id")
	ErrPatientExists     = httperr.ErrBusiness(httperr.KindConflict, "patient_exists")
	ErrNotFound          = httperr.NotFoundErr("patient_not_found")
	ErrHasRecords        = httperr.ErrBusiness(httperr.KindConflict, "patient_has_records")
)

const (
	GenderMale   = "male"
	GenderFemale = "female"

	UnknownGovernorate = "Unknown"
)

var governorates = map[string]string{
	"01": "Cairo",
	"02": "Alexandria",
	"03": "Port Said",
	"04": "Suez",
	"11": "Damietta",
	"12": "Dakahlia",
	"13": "Sharqia",
	"14": "Qalyubia",
	"15": "Kafr El Sheikh",
	"16": "Gharbia",
	"17": "Monufia",
	"18": "Beheira",
	"19": "Ismailia",
	"21": "Giza",
	"22": "Beni Suef",
	"23": "Fayoum",
	"24": "Minya",
	"25": "Assiut",
	"26": "Sohag",
	"27": "Qena",
	"28": "Luxor",
	"29": "Aswan",
	"31": "Red Sea",
	"32": "New Valley",
	"33": "Matruh",
	"34": "North Sinai",
	"35": "South Sinai",
}

// Identity is what a national ID (CYYMMDDGGSSSXC) encodes about its holder.
type Identity struct {
	BirthDate   time.Time
	Gender      string
	Governorate string
}

func ValidNationalID(id string) bool {
	_, err := ParseNationalID(id)
	return err == nil
}

// ParseNationalID decodes id. The century digit must be 2 (1900s) or 3
// (2000s) and the birth date must exist in the calendar.
func ParseNationalID(id string) (Identity, error) {
	if !nationalIDRe.MatchString(id) {
		return Identity{}, ErrInvalidNationalID
	}

	century := "19"
	if id[0] == '3' {
		century = "20"
	}

	birth, err := time.Parse("20060102", century+id[1:7])
	if err != nil {
		return Identity{}, ErrInvalidNationalID
	}

	gender := GenderFemale
	if (id[12]-'0')%2 == 1 {
		gender = GenderMale
	}

	return Identity{
		BirthDate:   birth,
		Gender:      gender,
		Governorate: GovernorateName(id[7:9]),
	}, nil
}

func GovernorateName(code string) string {
	if name, ok := governorates[code]; ok {
		return name
	}
	return UnknownGovernorate
}

// AgeAt returns the completed years between birth and now.
func AgeAt(birth, now time.Time) int {
	by, bm, bd := birth.Date()
	ny, nm, nd := now.Date()

	age := ny - by
	if nm < bm || (nm == bm && nd < bd) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
