package services

import (
	"licenca_flow_go/models"

	"gorm.io/gorm"
)

// AddressInput is the payload for creating an address; every field is optional
type AddressInput struct {
	Cep             *string `json:"cep,omitempty"`
	Logradouro      *string `json:"logradouro,omitempty"`
	Numero          *string `json:"numero,omitempty"`
	Bairro          *string `json:"bairro,omitempty"`
	Complemento     *string `json:"complemento,omitempty"`
	PontoReferencia *string `json:"ponto_referencia,omitempty"`
	UF              *string `json:"uf,omitempty"`
	Municipio       *string `json:"municipio,omitempty"`
}

// CreateAddress creates an address stamped with the caller's identity
func CreateAddress(gdb *gorm.DB, callerID string, in AddressInput) (*models.Address, error) {
	if callerID == "" {
		return nil, NewAuthError("Usuário não autenticado.")
	}

	address := models.Address{
		Cep:             in.Cep,
		Logradouro:      in.Logradouro,
		Numero:          in.Numero,
		Bairro:          in.Bairro,
		Complemento:     in.Complemento,
		PontoReferencia: in.PontoReferencia,
		UF:              in.UF,
		Municipio:       in.Municipio,
		CreatedBy:       callerID,
	}

	if err := gdb.Create(&address).Error; err != nil {
		return nil, Normalize(err)
	}
	return &address, nil
}

// GetAddress fetches an address by id
func GetAddress(gdb *gorm.DB, id uint) (*models.Address, error) {
	var address models.Address
	if err := gdb.First(&address, id).Error; err != nil {
		return nil, Normalize(err)
	}
	return &address, nil
}
