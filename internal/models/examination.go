package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClinicalIndications are the reasons a doctor ticks on a radiology request.
type ClinicalIndications struct {
	Cough                  bool `json:"cough"`
	Fever                  bool `json:"fever"`
	Trauma                 bool `json:"trauma"`
	FollowUp               bool `json:"follow_up"`
	ChestPain              bool `json:"chest_pain"`
	OtherIndication        bool `json:"other_indication"`
	RoutineScreening       bool `json:"routine_screening"`
	RuleOutPneumonia       bool `json:"rule_out_pneumonia"`
	ShortnessOfBreath      bool `json:"shortness_of_breath"`
	AbnormalLabResults     bool `json:"abnormal_lab_results"`
	RuleOutPneumothorax    bool `json:"rule_out_pneumothorax"`
	UnexplainedWeightLoss  bool `json:"unexplained_weight_loss"`
	PreOperativeEvaluation bool `json:"pre_operative_evaluation"`
}

// Any reports whether at least one indication is set.
func (ci ClinicalIndications) Any() bool {
	return ci != ClinicalIndications{}
}

type ExaminationResult struct {
	BodyPart      string     `gorm:"size:50" json:"body_part"`
	ResponseNotes string     `gorm:"size:500" json:"response_notes"`
	Findings      []string   `gorm:"serializer:json" json:"findings"`
	Impression    string     `gorm:"size:500" json:"impression"`
	RespondedAt   *time.Time `json:"responded_at"`
}

type Examination struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	PatientID uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	Patient   *Patient  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"patient,omitempty"`

	DoctorID uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Doctor   *User     `gorm:"foreignKey:DoctorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"doctor,omitempty"`

	RequestTo     string `gorm:"size:10;not null;index" json:"request_to"`
	LabType       string `gorm:"size:10" json:"lab_examination_type,omitempty"`
	RadiologyType string `gorm:"size:20" json:"rad_examination_type,omitempty"`
	DoctorNotes   string `gorm:"size:500" json:"doctor_notes"`
	Status        string `gorm:"size:20;not null;default:'Requested';index" json:"status"`

	Indications ClinicalIndications `gorm:"embedded;embeddedPrefix:indication_" json:"clinical_indications"`
	Result      ExaminationResult   `gorm:"embedded;embeddedPrefix:result_" json:"examination_response"`

	CreatedBy uuid.UUID  `gorm:"type:uuid;not null" json:"created_by"`
	UpdatedBy *uuid.UUID `gorm:"type:uuid" json:"updated_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *Examination) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
