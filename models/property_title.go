package models

import (
	"time"
)

// PropertyTitle is a land-registry record attached to a property.
// Titles are append-only and listed in creation order.
type PropertyTitle struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	PropertyID uint     `gorm:"not null;index" json:"property_id"`
	Property   Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`

	TipoCartorio *string  `gorm:"size:60" json:"tipo_cartorio,omitempty"`
	NomeCartorio *string  `json:"nome_cartorio,omitempty"`
	Comarca      *string  `json:"comarca,omitempty"`
	UF           *string  `gorm:"column:uf;size:2" json:"uf,omitempty"`
	Matricula    *string  `gorm:"size:60" json:"matricula,omitempty"`
	Livro        *string  `gorm:"size:30" json:"livro,omitempty"`
	Folha        *string  `gorm:"size:30" json:"folha,omitempty"`
	AreaTotalHa  *float64 `json:"area_total_ha,omitempty"`

	CreatedBy string `gorm:"type:uuid;not null" json:"created_by"`
}

// TableName specifies the table name for PropertyTitle model
func (PropertyTitle) TableName() string {
	return "property_titles"
}
