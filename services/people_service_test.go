package services

import (
	"testing"

	"licenca_flow_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCaller = "11111111-1111-1111-1111-111111111111"

func TestOnlyDigits(t *testing.T) {
	assert.Equal(t, "12345678901", OnlyDigits("123.456.789-01"))
	assert.Equal(t, "12345678000190", OnlyDigits("12.345.678/0001-90"))
	assert.Equal(t, "", OnlyDigits("abc"))
}

func TestCreateIndividual(t *testing.T) {
	gdb := setupTestDB(t)

	person, err := CreateIndividual(gdb, testCaller, IndividualInput{
		Cpf:  "123.456.789-01",
		Nome: "  Maria da Silva  ",
	})
	require.NoError(t, err)
	assert.Equal(t, models.PersonTypeIndividual, person.Type)
	assert.Equal(t, "12345678901", person.CpfCnpj)
	assert.Equal(t, "Maria da Silva", person.NomeRazao)
	assert.Equal(t, testCaller, person.CreatedBy)
}

func TestCreateIndividualInvalidCpf(t *testing.T) {
	gdb := setupTestDB(t)

	// Too short, too long, and a CNPJ-length id all fail validation
	for _, cpf := range []string{"123", "123456789012", "12345678000190"} {
		_, err := CreateIndividual(gdb, testCaller, IndividualInput{Cpf: cpf, Nome: "Maria"})
		assert.True(t, IsKind(err, ErrValidation), "cpf %q should be rejected", cpf)
	}

	var count int64
	gdb.Model(&models.Person{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateIndividualStripsHTML(t *testing.T) {
	gdb := setupTestDB(t)

	person, err := CreateIndividual(gdb, testCaller, IndividualInput{
		Cpf:  "12345678901",
		Nome: "<b>Maria</b> da Silva",
	})
	require.NoError(t, err)
	assert.Equal(t, "Maria da Silva", person.NomeRazao)
}

func TestCreateOrganization(t *testing.T) {
	gdb := setupTestDB(t)

	person, err := CreateOrganization(gdb, testCaller, OrganizationInput{
		Cnpj:        "12.345.678/0001-90",
		RazaoSocial: "Mineradora Rio Claro LTDA",
	})
	require.NoError(t, err)
	assert.Equal(t, models.PersonTypeOrganization, person.Type)
	assert.Equal(t, "12345678000190", person.CpfCnpj)
}

func TestCreateOrganizationInvalidCnpj(t *testing.T) {
	gdb := setupTestDB(t)

	// A CPF-length id is not a valid CNPJ
	_, err := CreateOrganization(gdb, testCaller, OrganizationInput{
		Cnpj:        "12345678901",
		RazaoSocial: "Empresa",
	})
	assert.True(t, IsKind(err, ErrValidation))
}

func TestCreatePersonRequiresCaller(t *testing.T) {
	gdb := setupTestDB(t)

	_, err := CreateIndividual(gdb, "", IndividualInput{Cpf: "12345678901", Nome: "Maria"})
	assert.True(t, IsKind(err, ErrAuth))
}

func TestCreatePersonDuplicateTaxID(t *testing.T) {
	gdb := setupTestDB(t)

	_, err := CreateIndividual(gdb, testCaller, IndividualInput{Cpf: "12345678901", Nome: "Maria"})
	require.NoError(t, err)

	_, err = CreateIndividual(gdb, testCaller, IndividualInput{Cpf: "123.456.789-01", Nome: "Outra Maria"})
	assert.True(t, IsKind(err, ErrDuplicate))
}

func TestFindPersonByTaxID(t *testing.T) {
	gdb := setupTestDB(t)

	created, err := CreateIndividual(gdb, testCaller, IndividualInput{Cpf: "12345678901", Nome: "Maria"})
	require.NoError(t, err)

	// Lookup normalizes formatting before matching
	found, err := FindPersonByTaxID(gdb, "123.456.789-01")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)

	missing, err := FindPersonByTaxID(gdb, "99999999999")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUpdatePerson(t *testing.T) {
	gdb := setupTestDB(t)

	person, err := CreateIndividual(gdb, testCaller, IndividualInput{Cpf: "12345678901", Nome: "Maria"})
	require.NoError(t, err)

	updated, err := UpdatePerson(gdb, person.ID, map[string]interface{}{
		"celular": "11999990000",
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Celular)
	assert.Equal(t, "11999990000", *updated.Celular)
	assert.Equal(t, "12345678901", updated.CpfCnpj)
}
