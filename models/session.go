package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session is a login session handed out by the identity collaborator
type Session struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Token     string    `gorm:"not null;uniqueIndex" json:"-"`
	ProfileID string    `gorm:"type:uuid;not null;index" json:"profile_id"`
	Profile   Profile   `gorm:"foreignKey:ProfileID" json:"profile,omitempty"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}

// BeforeCreate hook to generate UUID
func (s *Session) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Session model
func (Session) TableName() string {
	return "sessions"
}

// IsExpired returns true if the session is past its expiry
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
