package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Date      string `validate:"required,mmddyyyy"`
	Time      string `validate:"required,clock12"`
	VisitType string `validate:"required,visit_type"`
	NID       string `validate:"omitempty,national_id"`
	Blood     string `validate:"omitempty,blood_type"`
	Role      string `validate:"omitempty,staff_role"`
	Phone     string `validate:"omitempty,eg_phone"`
}

func TestRules(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterOn(v))

	ok := sample{Date: "05/01/2030", Time: "9:30 AM", VisitType: "Re-Visit", NID: "29001010212375", Blood: "AB+", Role: "doctor", Phone: "201012345678"}
	assert.NoError(t, v.Struct(ok))

	bad := []sample{
		{Date: "5/1/2030", Time: "9:30 AM", VisitType: "Visit"},
		{Date: "05/01/2030", Time: "09:30", VisitType: "Visit"},
		{Date: "05/01/2030", Time: "9:30 AM", VisitType: "Checkup"},
		{Date: "05/01/2030", Time: "9:30 AM", VisitType: "Visit", NID: "123"},
		{Date: "05/01/2030", Time: "9:30 AM", VisitType: "Visit", Blood: "AB"},
		{Date: "05/01/2030", Time: "9:30 AM", VisitType: "Visit", Role: "owner"},
		{Date: "05/01/2030", Time: "9:30 AM", VisitType: "Visit", Phone: "0100000000"},
	}
	for _, s := range bad {
		assert.Error(t, v.Struct(s), "%+v", s)
	}
}

func TestRegister(t *testing.T) {
	assert.NoError(t, Register())
}

func TestEmailDomain(t *testing.T) {
	d, ok := emailDomain(" Someone@Clinic.Example ")
	assert.True(t, ok)
	assert.Equal(t, "clinic.example", d)

	for _, bad := range []string{"", "no-at", "@clinic.example", "trailing@"} {
		_, ok := emailDomain(bad)
		assert.False(t, ok, bad)
		assert.False(t, IsEmailDomainValid(bad))
	}
}
