package models

import (
	"time"
)

// Activity is a licensable activity from the agency's catalogue
// (e.g. 1.1 "Extração de areia")
type Activity struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Codigo    string  `gorm:"size:20;not null;uniqueIndex" json:"codigo"`
	Nome      string  `gorm:"not null" json:"nome"`
	Descricao *string `gorm:"type:text" json:"descricao,omitempty"`
}

// TableName specifies the table name for Activity model
func (Activity) TableName() string {
	return "activities"
}
