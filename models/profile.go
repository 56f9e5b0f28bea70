package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile mirrors the identity record of the external auth provider.
// Rows created here are stamped with the profile's UUID as created_by.
type Profile struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Email    string `gorm:"not null;uniqueIndex" json:"email"`
	Name     string `gorm:"not null" json:"name"`
	IsActive bool   `gorm:"not null;default:true" json:"is_active"`
}

// BeforeCreate hook to generate UUID
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Profile model
func (Profile) TableName() string {
	return "profiles"
}
