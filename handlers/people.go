package handlers

import (
	"net/http"

	"licenca_flow_go/db"
	"licenca_flow_go/middleware"
	"licenca_flow_go/services"

	"github.com/labstack/echo/v4"
)

// FindPersonHandler looks a person up by tax id, so the wizard can reuse
// existing records instead of creating duplicates
func FindPersonHandler(c echo.Context) error {
	taxID := c.QueryParam("cpf_cnpj")
	if taxID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Informe o CPF/CNPJ")
	}

	person, err := services.FindPersonByTaxID(db.DB, taxID)
	if err != nil {
		return errorResponse(c, err)
	}
	if person == nil {
		return c.JSON(http.StatusOK, map[string]interface{}{"data": nil})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": person})
}

// CreateIndividualHandler creates a PF person
func CreateIndividualHandler(c echo.Context) error {
	profile := middleware.GetCurrentProfile(c)

	var in services.IndividualInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Payload inválido")
	}

	person, err := services.CreateIndividual(db.DB, profile.ID, in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{"data": person})
}

// CreateOrganizationHandler creates a PJ person
func CreateOrganizationHandler(c echo.Context) error {
	profile := middleware.GetCurrentProfile(c)

	var in services.OrganizationInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Payload inválido")
	}

	person, err := services.CreateOrganization(db.DB, profile.ID, in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{"data": person})
}

// UpdatePersonHandler applies a partial patch to a person
func UpdatePersonHandler(c echo.Context) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}

	var patch map[string]interface{}
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Payload inválido")
	}
	// Identity fields are immutable through this endpoint
	delete(patch, "id")
	delete(patch, "cpf_cnpj")
	delete(patch, "type")
	delete(patch, "created_by")

	person, err := services.UpdatePerson(db.DB, id, patch)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": person})
}
