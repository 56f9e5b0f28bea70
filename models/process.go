package models

import (
	"time"
)

// Process status constants
const (
	ProcessStatusDraft     = "RASCUNHO"
	ProcessStatusSubmitted = "SUBMETIDO"
)

// ProcessCreatedViaInscricao marks drafts opened by the inscription wizard
const ProcessCreatedViaInscricao = "INSCRICAO"

// SubmittedProgress is the progress marker set by the submission transition
const SubmittedProgress = 25

// Process is the draft licensing application, the aggregate root of the wizard.
// It is created once per wizard session and mutated only by linking a property,
// an organization, an activity, and by the final status transition.
type Process struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Status     string `gorm:"size:20;not null;default:RASCUNHO;index" json:"status"`
	Progress   int    `gorm:"not null;default:0" json:"progress"`
	CreatedVia string `gorm:"size:20" json:"created_via"`
	CreatedBy  string `gorm:"type:uuid;not null;index" json:"created_by"`

	OrganizationID *uint   `json:"organization_id,omitempty"`
	Organization   *Person `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`

	PropertyID *uint     `json:"property_id,omitempty"`
	Property   *Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`

	AtividadeID *uint     `json:"atividade_id,omitempty"`
	Atividade   *Activity `gorm:"foreignKey:AtividadeID" json:"atividade,omitempty"`

	SubmittedAt *time.Time `json:"submitted_at,omitempty"`

	Participants []ProcessParticipant `gorm:"foreignKey:ProcessID" json:"participants,omitempty"`
}

// TableName specifies the table name for Process model
func (Process) TableName() string {
	return "processes"
}

// IsDraft returns true while the process has not been submitted
func (p *Process) IsDraft() bool {
	return p.Status == ProcessStatusDraft
}
