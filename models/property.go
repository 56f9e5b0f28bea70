package models

import (
	"time"
)

// Property kind constants
const (
	PropertyKindRural = "RURAL"
	PropertyKindUrban = "URBANO"
)

// Property is the real-estate record the licensing process points at.
//
// The check constraints duplicate the service-side gates: a property always
// carries a complete coordinate pair (UTM or DMS), and a rural property always
// carries a CAR registry code. Constraint names feed the error normalizer.
type Property struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Kind          string  `gorm:"size:10;not null;check:chk_property_rural_car,kind <> 'RURAL' OR car_codigo IS NOT NULL" json:"kind"`
	MunicipioSede *string `json:"municipio_sede,omitempty"`
	RoteiroAcesso *string `gorm:"type:text" json:"roteiro_acesso,omitempty"`

	// Coordinates: UTM pair (with zone) or DMS pair
	UtmLat  *string `gorm:"size:30;check:chk_property_coords_utm_dms,(utm_lat IS NOT NULL AND utm_long IS NOT NULL) OR (dms_lat IS NOT NULL AND dms_long IS NOT NULL)" json:"utm_lat,omitempty"`
	UtmLong *string `gorm:"size:30" json:"utm_long,omitempty"`
	UtmZona *string `gorm:"size:10" json:"utm_zona,omitempty"`
	DmsLat  *string `gorm:"size:30" json:"dms_lat,omitempty"`
	DmsLong *string `gorm:"size:30" json:"dms_long,omitempty"`

	// CAR: rural environmental registry code
	CarCodigo *string `gorm:"size:60" json:"car_codigo,omitempty"`

	AddressID *uint    `json:"address_id,omitempty"`
	Address   *Address `gorm:"foreignKey:AddressID" json:"address,omitempty"`

	CreatedBy string `gorm:"type:uuid;not null;index" json:"created_by"`

	Titles []PropertyTitle `gorm:"foreignKey:PropertyID" json:"titles,omitempty"`
}

// TableName specifies the table name for Property model
func (Property) TableName() string {
	return "properties"
}

// HasUTM returns true when the UTM coordinate pair is complete
func (p *Property) HasUTM() bool {
	return p.UtmLat != nil && *p.UtmLat != "" && p.UtmLong != nil && *p.UtmLong != ""
}

// HasDMS returns true when the DMS coordinate pair is complete
func (p *Property) HasDMS() bool {
	return p.DmsLat != nil && *p.DmsLat != "" && p.DmsLong != nil && *p.DmsLong != ""
}
