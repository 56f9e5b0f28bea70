package services

import (
	"testing"

	"licenca_flow_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePropertyCoordinateGates(t *testing.T) {
	gdb := setupTestDB(t)

	tests := []struct {
		name    string
		in      PropertyInput
		wantErr bool
	}{
		{
			name:    "no coordinates",
			in:      PropertyInput{Kind: models.PropertyKindUrban},
			wantErr: true,
		},
		{
			name: "incomplete utm pair",
			in: PropertyInput{
				Kind:   models.PropertyKindUrban,
				UtmLat: stringPtr("7350000"),
			},
			wantErr: true,
		},
		{
			name: "complete utm pair",
			in: PropertyInput{
				Kind:    models.PropertyKindUrban,
				UtmLat:  stringPtr("7350000"),
				UtmLong: stringPtr("623000"),
				UtmZona: stringPtr("23S"),
			},
			wantErr: false,
		},
		{
			name: "complete dms pair",
			in: PropertyInput{
				Kind:    models.PropertyKindUrban,
				DmsLat:  stringPtr("23°57'10\"S"),
				DmsLong: stringPtr("46°20'05\"W"),
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CreateProperty(gdb, testCaller, tt.in)
			if tt.wantErr {
				assert.True(t, IsKind(err, ErrValidation))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreatePropertyRuralRequiresCAR(t *testing.T) {
	gdb := setupTestDB(t)

	in := PropertyInput{
		Kind:    models.PropertyKindRural,
		UtmLat:  stringPtr("7350000"),
		UtmLong: stringPtr("623000"),
	}

	_, err := CreateProperty(gdb, testCaller, in)
	assert.True(t, IsKind(err, ErrValidation))

	in.CarCodigo = stringPtr("SP-3550308-AAAA1111222233334444555566667777")
	property, err := CreateProperty(gdb, testCaller, in)
	require.NoError(t, err)
	assert.Equal(t, models.PropertyKindRural, property.Kind)
}

func TestCreatePropertyWithEmbeddedAddress(t *testing.T) {
	gdb := setupTestDB(t)

	property, err := CreateProperty(gdb, testCaller, PropertyInput{
		Kind:    models.PropertyKindUrban,
		UtmLat:  stringPtr("7350000"),
		UtmLong: stringPtr("623000"),
		Address: &AddressInput{
			Municipio: stringPtr("Campinas"),
			UF:        stringPtr("SP"),
		},
	})
	require.NoError(t, err)
	require.NotNil(t, property.AddressID)

	address, err := GetAddress(gdb, *property.AddressID)
	require.NoError(t, err)
	assert.Equal(t, "Campinas", *address.Municipio)
	assert.Equal(t, testCaller, address.CreatedBy)
}

func TestPropertyRoundTrip(t *testing.T) {
	gdb := setupTestDB(t)

	created, err := CreateProperty(gdb, testCaller, PropertyInput{
		Kind:      models.PropertyKindRural,
		UtmLat:    stringPtr("7350000"),
		UtmLong:   stringPtr("623000"),
		UtmZona:   stringPtr("23S"),
		CarCodigo: stringPtr("SP-123"),
	})
	require.NoError(t, err)

	fetched, err := GetProperty(gdb, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created.UtmLat, *fetched.UtmLat)
	assert.Equal(t, *created.UtmLong, *fetched.UtmLong)
	assert.Equal(t, *created.UtmZona, *fetched.UtmZona)
	assert.Equal(t, *created.CarCodigo, *fetched.CarCodigo)
	assert.Nil(t, fetched.DmsLat)
}

func TestPropertyTitles(t *testing.T) {
	gdb := setupTestDB(t)

	property, err := CreateProperty(gdb, testCaller, PropertyInput{
		Kind:    models.PropertyKindUrban,
		UtmLat:  stringPtr("7350000"),
		UtmLong: stringPtr("623000"),
	})
	require.NoError(t, err)

	area := 42.5
	first, err := AddPropertyTitle(gdb, testCaller, property.ID, TitleInput{
		Matricula:   stringPtr("12345"),
		Comarca:     stringPtr("Campinas"),
		AreaTotalHa: &area,
	})
	require.NoError(t, err)

	second, err := AddPropertyTitle(gdb, testCaller, property.ID, TitleInput{
		Matricula: stringPtr("67890"),
	})
	require.NoError(t, err)

	titles, err := ListPropertyTitles(gdb, property.ID)
	require.NoError(t, err)
	require.Len(t, titles, 2)

	// Creation order
	assert.Equal(t, first.ID, titles[0].ID)
	assert.Equal(t, second.ID, titles[1].ID)
	assert.Equal(t, "12345", *titles[0].Matricula)
	require.NotNil(t, titles[0].AreaTotalHa)
	assert.Equal(t, 42.5, *titles[0].AreaTotalHa)
	assert.Nil(t, titles[1].AreaTotalHa)
}
