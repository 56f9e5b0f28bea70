package models

import (
	"time"
)

// Person type constants (pessoa física / pessoa jurídica)
const (
	PersonTypeIndividual   = "PF"
	PersonTypeOrganization = "PJ"
)

// Person is an identity record for a wizard participant.
// The cpf_cnpj column holds the digits-only tax id; its length decides the
// variant (11 = PF, 14 = PJ).
type Person struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Type      string `gorm:"size:2;not null" json:"type"`
	CpfCnpj   string `gorm:"size:14;not null;uniqueIndex" json:"cpf_cnpj"`
	NomeRazao string `gorm:"not null" json:"nome_razao"`

	// Individual-only fields
	Sexo          *string `gorm:"size:20" json:"sexo,omitempty"`
	EstadoCivil   *string `gorm:"size:30" json:"estado_civil,omitempty"`
	Nacionalidade *string `gorm:"size:60" json:"nacionalidade,omitempty"`
	Profissao     *string `gorm:"size:100" json:"profissao,omitempty"`

	// Organization-only fields
	InscricaoEstadual *string `gorm:"size:30" json:"inscricao_estadual,omitempty"`

	// Contact
	Celular *string `gorm:"size:20" json:"celular,omitempty"`
	Email   *string `json:"email,omitempty"`

	CreatedBy string `gorm:"type:uuid;not null;index" json:"created_by"`
}

// TableName specifies the table name for Person model
func (Person) TableName() string {
	return "people"
}

// IsIndividual returns true for PF records
func (p *Person) IsIndividual() bool {
	return p.Type == PersonTypeIndividual
}

// IsOrganization returns true for PJ records
func (p *Person) IsOrganization() bool {
	return p.Type == PersonTypeOrganization
}
