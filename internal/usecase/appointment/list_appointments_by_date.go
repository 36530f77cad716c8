package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	patientdomain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/patient"
	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
	loc  *time.Location
	now  func() time.Time
}

func NewListAppointmentsByDate(
	repo domain.Repository,
	loc *time.Location,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
		loc:  loc,
		now:  time.Now,
	}
}

// Execute lists every appointment starting on date (MM/DD/YYYY), optionally
// restricted to one doctor, ordered by start time.
func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	date string,
	doctorID *uuid.UUID,
) ([]dto.AppointmentListDTO, error) {

	start, err := domain.ParseDate(date, uc.loc)
	if err != nil {
		return nil, err
	}
	// start is 01:00 when DST skips midnight; snap the bound back to 00:00.
	end := timezone.StartOfDay(start.AddDate(0, 0, 1))

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, start, end, doctorID)
	if err != nil {
		return nil, err
	}

	now := uc.now().In(uc.loc)

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		// Rows whose patient or doctor is gone are left out.
		if ap.Patient == nil || ap.Doctor == nil {
			continue
		}
		out = append(out, toListDTO(ap, now))
	}

	return out, nil
}

func toListDTO(ap models.Appointment, now time.Time) dto.AppointmentListDTO {
	p, d := ap.Patient, ap.Doctor

	var age *int
	if p.BirthDate != nil {
		a := patientdomain.AgeAt(*p.BirthDate, now)
		age = &a
	}

	return dto.AppointmentListDTO{
		ID:                  ap.ID,
		AppointmentDate:     ap.AppointmentDate,
		StartTime:           ap.StartTime,
		AppointmentDateTime: ap.AppointmentDateTime,
		EndTime:             ap.AppointmentDateTime.Add(models.AppointmentDuration),
		Status:              ap.Status,
		VisitType:           ap.VisitType,
		Notes:               ap.Notes,
		CreatedBy:           ap.CreatedBy,
		UpdatedBy:           ap.UpdatedBy,
		Patient: dto.PatientSummary{
			ID:          p.ID,
			PatientName: p.PatientName,
			Age:         age,
			Gender:      p.Gender,
			Phone:       p.Phone,
			Email:       p.Email,
		},
		Doctor: dto.DoctorSummary{
			ID:              d.ID,
			UserName:        d.UserName,
			Email:           d.Email,
			Phone:           d.Phone,
			ProfileImageURL: d.ProfileImageURL,
			Specialization:  d.Specialization,
		},
	}
}
