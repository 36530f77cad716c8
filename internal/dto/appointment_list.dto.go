package dto

import (
	"time"

	"github.com/google/uuid"
)

type PatientSummary struct {
	ID          uuid.UUID `json:"id"`
	PatientName string    `json:"patient_name"`
	Age         *int      `json:"age"`
	Gender      string    `json:"gender"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
}

type DoctorSummary struct {
	ID              uuid.UUID `json:"id"`
	UserName        string    `json:"user_name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	ProfileImageURL string    `json:"profile_image_url"`
	Specialization  string    `json:"specialization"`
}

type AppointmentListDTO struct {
	ID                  uuid.UUID      `json:"id"`
	AppointmentDate     string         `json:"appointment_date"`
	StartTime           string         `json:"start_time"`
	AppointmentDateTime time.Time      `json:"appointment_date_time"`
	EndTime             time.Time      `json:"end_time"`
	Status              string         `json:"status"`
	VisitType           string         `json:"visit_type"`
	Notes               string         `json:"notes"`
	CreatedBy           uuid.UUID      `json:"created_by"`
	UpdatedBy           *uuid.UUID     `json:"updated_by"`
	Patient             PatientSummary `json:"patient"`
	Doctor              DoctorSummary  `json:"doctor"`
}
