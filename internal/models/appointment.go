package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentDuration is the fixed length of every appointment slot.
const AppointmentDuration = 30 * time.Minute

type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	PatientID uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	Patient   *Patient  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"patient,omitempty"`

	DoctorID uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Doctor   *User     `gorm:"foreignKey:DoctorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"doctor,omitempty"`

	AppointmentDate string `gorm:"size:10;not null" json:"appointment_date"`
	StartTime       string `gorm:"size:8;not null" json:"start_time"`

	AppointmentDateTime time.Time `gorm:"not null;index" json:"appointment_date_time"`
	AppointmentEndTime  time.Time `gorm:"not null" json:"appointment_end_time"`

	Status    string `gorm:"size:20;not null;default:'Scheduled'" json:"status"`
	VisitType string `gorm:"size:10" json:"visit_type"`
	Notes     string `gorm:"size:500;not null" json:"notes"`

	CreatedBy uuid.UUID  `gorm:"type:uuid;not null" json:"created_by"`
	UpdatedBy *uuid.UUID `gorm:"type:uuid" json:"updated_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
