package models

import (
	"time"
)

// Address is a mailing/location record owned by at most one property
type Address struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Cep             *string `gorm:"size:9" json:"cep,omitempty"`
	Logradouro      *string `json:"logradouro,omitempty"`
	Numero          *string `gorm:"size:20" json:"numero,omitempty"`
	Bairro          *string `json:"bairro,omitempty"`
	Complemento     *string `json:"complemento,omitempty"`
	PontoReferencia *string `json:"ponto_referencia,omitempty"`
	UF              *string `gorm:"column:uf;size:2" json:"uf,omitempty"`
	Municipio       *string `json:"municipio,omitempty"`

	CreatedBy string `gorm:"type:uuid;not null;index" json:"created_by"`
}

// TableName specifies the table name for Address model
func (Address) TableName() string {
	return "addresses"
}
