package models

import (
	"time"
)

// Participant role constants
const (
	RoleRequerente  = "REQUERENTE"   // primary applicant, at most one per process
	RoleProcurador  = "PROCURADOR"   // attorney-in-fact, requires a power-of-attorney file
	RoleRespTecnico = "RESP_TECNICO" // technical lead
)

// ProcessParticipant joins a person to a process under a role.
//
// The natural key is (process, person, role). The procurador check constraint
// duplicates the service-side gate; its name feeds the error normalizer.
type ProcessParticipant struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ProcessID uint    `gorm:"not null;uniqueIndex:idx_participant_natural_key" json:"process_id"`
	Process   Process `gorm:"foreignKey:ProcessID" json:"process,omitempty"`

	PersonID uint   `gorm:"not null;uniqueIndex:idx_participant_natural_key" json:"person_id"`
	Person   Person `gorm:"foreignKey:PersonID" json:"person,omitempty"`

	Role string `gorm:"size:20;not null;uniqueIndex:idx_participant_natural_key;check:chk_procurador_procuracao,role <> 'PROCURADOR' OR procuracao_file_id IS NOT NULL" json:"role"`

	// Storage path of the uploaded power-of-attorney PDF
	ProcuracaoFileID *string `json:"procuracao_file_id,omitempty"`
}

// TableName specifies the table name for ProcessParticipant model
func (ProcessParticipant) TableName() string {
	return "process_participants"
}

// RoleDisplayName returns the display name for the participant role
func (pp *ProcessParticipant) RoleDisplayName() string {
	switch pp.Role {
	case RoleRequerente:
		return "Requerente"
	case RoleProcurador:
		return "Procurador"
	case RoleRespTecnico:
		return "Responsável Técnico"
	default:
		return pp.Role
	}
}
