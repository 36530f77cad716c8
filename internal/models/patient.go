package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Address struct {
	Street      string `gorm:"size:100" json:"street"`
	City        string `gorm:"size:50" json:"city"`
	Governorate string `gorm:"size:50" json:"governorate"`
	ZipCode     string `gorm:"size:5" json:"zip_code"`
}

type EmergencyContact struct {
	Name     string `gorm:"size:50" json:"name"`
	Relation string `gorm:"size:30" json:"relation"`
	Phone    string `gorm:"size:20" json:"phone"`
}

type Insurance struct {
	Provider     string     `gorm:"size:100" json:"provider"`
	PolicyNumber string     `gorm:"size:50" json:"policy_number"`
	ValidUntil   *time.Time `json:"valid_until"`
}

type MedicalHistoryEntry struct {
	Condition     string     `json:"condition"`
	DiagnosisDate *time.Time `json:"diagnosis_date"`
	Treatment     string     `json:"treatment"`
	Status        string     `json:"status"`
}

type Patient struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	PatientName string `gorm:"size:50;not null" json:"patient_name"`
	NationalID  string `gorm:"size:14;uniqueIndex;not null" json:"national_id"`

	// Derived from NationalID on every write.
	Gender             string     `gorm:"size:6" json:"gender"`
	BirthDate          *time.Time `json:"birth_date"`
	GovernorateOfBirth string     `gorm:"size:30" json:"governorate_of_birth"`

	Phone string `gorm:"size:20;not null" json:"phone"`
	Email string `gorm:"size:100" json:"email"`

	CurrentAddress   Address          `gorm:"embedded;embeddedPrefix:address_" json:"current_address"`
	EmergencyContact EmergencyContact `gorm:"embedded;embeddedPrefix:emergency_" json:"emergency_contact"`
	InsuranceDetails Insurance        `gorm:"embedded;embeddedPrefix:insurance_" json:"insurance_details"`

	BloodType          string                `gorm:"size:3" json:"blood_type"`
	Allergies          []string              `gorm:"serializer:json" json:"allergies"`
	MedicalHistory     []MedicalHistoryEntry `gorm:"serializer:json" json:"medical_history"`
	CurrentMedications []string              `gorm:"serializer:json" json:"current_medications"`

	CreatedBy uuid.UUID  `gorm:"type:uuid;not null" json:"created_by"`
	UpdatedBy *uuid.UUID `gorm:"type:uuid" json:"updated_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Patient) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
