package services

import (
	"licenca_flow_go/models"

	"gorm.io/gorm"
)

// PropertyInput is the payload for the wizard's property step. Either an
// existing AddressID or an embedded Address may be supplied; the embedded
// address is created first and its id wired as the foreign key.
type PropertyInput struct {
	Kind          string  `json:"kind"`
	MunicipioSede *string `json:"municipio_sede,omitempty"`
	RoteiroAcesso *string `json:"roteiro_acesso,omitempty"`

	UtmLat  *string `json:"utm_lat,omitempty"`
	UtmLong *string `json:"utm_long,omitempty"`
	UtmZona *string `json:"utm_zona,omitempty"`
	DmsLat  *string `json:"dms_lat,omitempty"`
	DmsLong *string `json:"dms_long,omitempty"`

	CarCodigo *string `json:"car_codigo,omitempty"`

	AddressID *uint         `json:"address_id,omitempty"`
	Address   *AddressInput `json:"address,omitempty"`
}

func filled(s *string) bool {
	return s != nil && *s != ""
}

// HasUTM returns true when the UTM coordinate pair is complete
func (in *PropertyInput) HasUTM() bool {
	return filled(in.UtmLat) && filled(in.UtmLong)
}

// HasDMS returns true when the DMS coordinate pair is complete
func (in *PropertyInput) HasDMS() bool {
	return filled(in.DmsLat) && filled(in.DmsLong)
}

// TitleInput is the payload for attaching a land-registry title to a property
type TitleInput struct {
	TipoCartorio *string  `json:"tipo_cartorio,omitempty"`
	NomeCartorio *string  `json:"nome_cartorio,omitempty"`
	Comarca      *string  `json:"comarca,omitempty"`
	UF           *string  `json:"uf,omitempty"`
	Matricula    *string  `json:"matricula,omitempty"`
	Livro        *string  `json:"livro,omitempty"`
	Folha        *string  `json:"folha,omitempty"`
	AreaTotalHa  *float64 `json:"area_total_ha,omitempty"`
}

// CreateProperty creates a property for the wizard's property step.
//
// The coordinate-pair and rural-CAR gates run before any store call so the
// user gets immediate feedback; the store's check constraints repeat them as
// defense in depth.
func CreateProperty(gdb *gorm.DB, callerID string, in PropertyInput) (*models.Property, error) {
	if !in.HasUTM() && !in.HasDMS() {
		return nil, NewValidationError("Informe ao menos um par de coordenadas (UTM ou DMS).")
	}
	if in.Kind == models.PropertyKindRural && !filled(in.CarCodigo) {
		return nil, NewValidationError("Imóvel rural exige o código do CAR.")
	}
	if callerID == "" {
		return nil, NewAuthError("Usuário não autenticado.")
	}

	addressID := in.AddressID
	if in.Address != nil {
		address, err := CreateAddress(gdb, callerID, *in.Address)
		if err != nil {
			return nil, err
		}
		addressID = &address.ID
	}

	if in.RoteiroAcesso != nil {
		cleaned := CleanText(*in.RoteiroAcesso)
		in.RoteiroAcesso = &cleaned
	}

	property := models.Property{
		Kind:          in.Kind,
		MunicipioSede: in.MunicipioSede,
		RoteiroAcesso: in.RoteiroAcesso,
		UtmLat:        in.UtmLat,
		UtmLong:       in.UtmLong,
		UtmZona:       in.UtmZona,
		DmsLat:        in.DmsLat,
		DmsLong:       in.DmsLong,
		CarCodigo:     in.CarCodigo,
		AddressID:     addressID,
		CreatedBy:     callerID,
	}

	if err := gdb.Create(&property).Error; err != nil {
		return nil, Normalize(err)
	}
	return &property, nil
}

// GetProperty fetches a property with its address
func GetProperty(gdb *gorm.DB, id uint) (*models.Property, error) {
	var property models.Property
	if err := gdb.Preload("Address").First(&property, id).Error; err != nil {
		return nil, Normalize(err)
	}
	return &property, nil
}

// AddPropertyTitle attaches a land-registry title to a property.
// Titles are append-only; there is no update path in the wizard.
func AddPropertyTitle(gdb *gorm.DB, callerID string, propertyID uint, in TitleInput) (*models.PropertyTitle, error) {
	if callerID == "" {
		return nil, NewAuthError("Usuário não autenticado.")
	}

	title := models.PropertyTitle{
		PropertyID:   propertyID,
		TipoCartorio: in.TipoCartorio,
		NomeCartorio: in.NomeCartorio,
		Comarca:      in.Comarca,
		UF:           in.UF,
		Matricula:    in.Matricula,
		Livro:        in.Livro,
		Folha:        in.Folha,
		AreaTotalHa:  in.AreaTotalHa,
		CreatedBy:    callerID,
	}

	if err := gdb.Create(&title).Error; err != nil {
		return nil, Normalize(err)
	}
	return &title, nil
}

// ListPropertyTitles lists a property's titles in creation order
func ListPropertyTitles(gdb *gorm.DB, propertyID uint) ([]models.PropertyTitle, error) {
	var titles []models.PropertyTitle
	err := gdb.Where("property_id = ?", propertyID).Order("id ASC").Find(&titles).Error
	if err != nil {
		return nil, Normalize(err)
	}
	return titles, nil
}
