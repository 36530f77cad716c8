package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

func TestListAppointmentsByDate(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	second := f.repo.addDoctor("wilson")
	other := f.repo.addPatient("omar", time.Date(1980, 12, 1, 0, 0, 0, 0, time.UTC))

	late := f.book(t, f.doctor, f.patient, "4:00 PM")
	early := f.book(t, second, other, "9:00 AM")
	f.book(t, f.doctor, other, "11:00 AM")

	_, err := f.create.Execute(ctx, CreateAppointmentInput{
		DoctorID: f.doctor, PatientID: f.patient, Date: "05/02/2030", Time: "9:00 AM",
		VisitType: "Visit", Notes: "next day", ActorID: f.actor,
	})
	require.NoError(t, err)

	all, err := f.list.Execute(ctx, day, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)

	assert.Equal(t, early.ID, all[0].ID)
	assert.Equal(t, late.ID, all[2].ID)
	for i := 1; i < len(all); i++ {
		assert.True(t, all[i-1].AppointmentDateTime.Before(all[i].AppointmentDateTime))
	}

	first := all[0]
	assert.Equal(t, early.AppointmentDateTime.Add(30*time.Minute), first.EndTime)
	assert.Equal(t, "omar", first.Patient.PatientName)
	require.NotNil(t, first.Patient.Age)
	assert.Equal(t, 49, *first.Patient.Age)
	assert.Equal(t, "wilson", first.Doctor.UserName)
	assert.Equal(t, "wilson@clinic.test", first.Doctor.Email)

	// Birthday (June 15) not yet reached on May 1st.
	require.NotNil(t, all[2].Patient.Age)
	assert.Equal(t, 39, *all[2].Patient.Age)

	mine, err := f.list.Execute(ctx, day, &f.doctor)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, item := range mine {
		assert.Equal(t, f.doctor, item.Doctor.ID)
	}
}

func TestListAppointmentsByDate_Empty(t *testing.T) {
	f := newFixture()

	items, err := f.list.Execute(context.Background(), "06/01/2030", nil)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotNil(t, items)

	none := uuid.New()
	items, err = f.list.Execute(context.Background(), day, &none)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestListAppointmentsByDate_InvalidDate(t *testing.T) {
	f := newFixture()

	_, err := f.list.Execute(context.Background(), "2030-05-01", nil)
	kind, ok := httperr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, httperr.KindValidation, kind)
}

func TestListAppointmentsByDate_SpringForwardDay(t *testing.T) {
	ctx := context.Background()
	cairo := timezone.Location("Africa/Cairo")
	repo := newMemoryRepo()
	doctor := repo.addDoctor("house")
	patient := repo.addPatient("nour", time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC))

	store := func(date, clock string) uuid.UUID {
		w, err := domain.ComputeWindow(date, clock, cairo)
		require.NoError(t, err)
		ap := &models.Appointment{
			DoctorID: doctor, PatientID: patient,
			AppointmentDate: date, StartTime: clock,
			AppointmentDateTime: w.Start, AppointmentEndTime: w.End,
			Status: string(domain.StatusScheduled),
		}
		require.NoError(t, repo.CreateAppointment(ctx, ap))
		return ap.ID
	}

	first := store("04/24/2026", "01:00 AM")
	last := store("04/24/2026", "11:30 PM")
	store("04/25/2026", "12:30 AM")

	list := NewListAppointmentsByDate(repo, cairo)
	items, err := list.Execute(ctx, "04/24/2026", nil)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, first, items[0].ID)
	assert.Equal(t, last, items[1].ID)
}

func TestGetAppointment_LoadsPatient(t *testing.T) {
	f := newFixture()
	ap := f.book(t, f.doctor, f.patient, "10:00 AM")

	got, err := f.get.Execute(context.Background(), ap.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Patient)
	assert.Equal(t, "nour", got.Patient.PatientName)
}
