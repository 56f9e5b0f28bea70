package handlers

import (
	"net/http"

	"licenca_flow_go/db"
	"licenca_flow_go/middleware"
	"licenca_flow_go/services"

	"github.com/labstack/echo/v4"
)

// CreatePropertyHandler creates the wizard's property and records the
// selection in the session state
func CreatePropertyHandler(c echo.Context) error {
	profile := middleware.GetCurrentProfile(c)
	session := middleware.GetCurrentSession(c)

	var in services.PropertyInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Payload inválido")
	}

	property, err := services.CreateProperty(db.DB, profile.ID, in)
	if err != nil {
		return errorResponse(c, err)
	}

	Wizard.Get(session.ID).SelectProperty(property.ID)

	return c.JSON(http.StatusCreated, map[string]interface{}{"data": property})
}

// GetPropertyHandler fetches a property with its address
func GetPropertyHandler(c echo.Context) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}

	property, err := services.GetProperty(db.DB, id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": property})
}

// AddTitleHandler attaches a land-registry title to a property
func AddTitleHandler(c echo.Context) error {
	profile := middleware.GetCurrentProfile(c)

	propertyID, err := paramUint(c, "id")
	if err != nil {
		return err
	}

	var in services.TitleInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Payload inválido")
	}

	title, err := services.AddPropertyTitle(db.DB, profile.ID, propertyID, in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{"data": title})
}

// ListTitlesHandler lists a property's titles in creation order
func ListTitlesHandler(c echo.Context) error {
	propertyID, err := paramUint(c, "id")
	if err != nil {
		return err
	}

	titles, err := services.ListPropertyTitles(db.DB, propertyID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": titles})
}
