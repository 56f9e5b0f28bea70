package services

import (
	"errors"
	"strings"
	"unicode"

	"licenca_flow_go/models"

	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

// Tax id digit counts for the two person variants
const (
	cpfDigits  = 11
	cnpjDigits = 14
)

// namePolicy strips any HTML from user-supplied display names and free text
var namePolicy = bluemonday.StrictPolicy()

// OnlyDigits strips every non-digit rune from a tax id
func OnlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CleanText trims whitespace and strips HTML from free-text input
func CleanText(s string) string {
	return strings.TrimSpace(namePolicy.Sanitize(s))
}

// IndividualInput is the payload for creating a PF person
type IndividualInput struct {
	Cpf           string  `json:"cpf"`
	Nome          string  `json:"nome"`
	Sexo          *string `json:"sexo,omitempty"`
	EstadoCivil   *string `json:"estado_civil,omitempty"`
	Nacionalidade *string `json:"nacionalidade,omitempty"`
	Profissao     *string `json:"profissao,omitempty"`
	Celular       *string `json:"celular,omitempty"`
	Email         *string `json:"email,omitempty"`
}

// OrganizationInput is the payload for creating a PJ person
type OrganizationInput struct {
	Cnpj              string  `json:"cnpj"`
	RazaoSocial       string  `json:"razao_social"`
	InscricaoEstadual *string `json:"inscricao_estadual,omitempty"`
	Celular           *string `json:"celular,omitempty"`
	Email             *string `json:"email,omitempty"`
}

// CreateIndividual creates a PF person. The tax id is normalized to digits and
// must have exactly 11 of them; the check happens before any store call.
func CreateIndividual(gdb *gorm.DB, callerID string, in IndividualInput) (*models.Person, error) {
	cpf := OnlyDigits(in.Cpf)
	if len(cpf) != cpfDigits {
		return nil, NewValidationError("CPF inválido.")
	}
	if callerID == "" {
		return nil, NewAuthError("Usuário não autenticado.")
	}

	person := models.Person{
		Type:          models.PersonTypeIndividual,
		CpfCnpj:       cpf,
		NomeRazao:     CleanText(in.Nome),
		Sexo:          in.Sexo,
		EstadoCivil:   in.EstadoCivil,
		Nacionalidade: in.Nacionalidade,
		Profissao:     in.Profissao,
		Celular:       in.Celular,
		Email:         in.Email,
		CreatedBy:     callerID,
	}

	if err := gdb.Create(&person).Error; err != nil {
		return nil, Normalize(err)
	}
	return &person, nil
}

// CreateOrganization creates a PJ person. The tax id is normalized to digits
// and must have exactly 14 of them.
func CreateOrganization(gdb *gorm.DB, callerID string, in OrganizationInput) (*models.Person, error) {
	cnpj := OnlyDigits(in.Cnpj)
	if len(cnpj) != cnpjDigits {
		return nil, NewValidationError("CNPJ inválido.")
	}
	if callerID == "" {
		return nil, NewAuthError("Usuário não autenticado.")
	}

	person := models.Person{
		Type:              models.PersonTypeOrganization,
		CpfCnpj:           cnpj,
		NomeRazao:         CleanText(in.RazaoSocial),
		InscricaoEstadual: in.InscricaoEstadual,
		Celular:           in.Celular,
		Email:             in.Email,
		CreatedBy:         callerID,
	}

	if err := gdb.Create(&person).Error; err != nil {
		return nil, Normalize(err)
	}
	return &person, nil
}

// FindPersonByTaxID looks a person up by the digits-normalized tax id.
// Returns (nil, nil) when no record matches, so callers can decide between
// reusing an existing person and creating a new one.
func FindPersonByTaxID(gdb *gorm.DB, taxIDRaw string) (*models.Person, error) {
	key := OnlyDigits(taxIDRaw)

	var person models.Person
	err := gdb.Where("cpf_cnpj = ?", key).First(&person).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, Normalize(err)
	}
	return &person, nil
}

// UpdatePerson applies a partial patch to a person and returns the fresh row
func UpdatePerson(gdb *gorm.DB, id uint, patch map[string]interface{}) (*models.Person, error) {
	if err := gdb.Model(&models.Person{}).Where("id = ?", id).Updates(patch).Error; err != nil {
		return nil, Normalize(err)
	}

	var person models.Person
	if err := gdb.First(&person, id).Error; err != nil {
		return nil, Normalize(err)
	}
	return &person, nil
}
