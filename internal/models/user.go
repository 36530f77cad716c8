package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleDoctor       Role = "doctor"
	RoleReceptionist Role = "receptionist"
	RoleLaboratory   Role = "laboratory"
	RoleRadiology    Role = "radiology"
	RoleAdmin        Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleDoctor, RoleReceptionist, RoleLaboratory, RoleRadiology, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	UserName     string `gorm:"size:50;not null" json:"user_name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         Role   `gorm:"size:20;not null;index" json:"role"`

	Gender          string `gorm:"size:6" json:"gender"`
	Specialization  string `gorm:"size:50" json:"specialization"`
	Phone           string `gorm:"size:20" json:"phone"`
	ProfileImageURL string `gorm:"size:255" json:"profile_image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
