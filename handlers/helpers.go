package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"licenca_flow_go/services"

	"github.com/labstack/echo/v4"
)

// Wizard holds the per-session inscription state
var Wizard = services.NewWizardStore()

// errorResponse maps a normalized service error to an HTTP response
func errorResponse(c echo.Context, err error) error {
	var se *services.ServiceError
	if !errors.As(err, &se) {
		se = services.Normalize(err)
	}

	status := http.StatusInternalServerError
	switch se.Kind {
	case services.ErrValidation,
		services.ErrAttorneyRequiresDocument,
		services.ErrRuralRequiresCAR,
		services.ErrCoordinatesRequired,
		services.ErrBusinessRule:
		status = http.StatusBadRequest
	case services.ErrDuplicate:
		status = http.StatusConflict
	case services.ErrAuth:
		status = http.StatusUnauthorized
	case services.ErrAuthorization, services.ErrAccessDenied:
		status = http.StatusForbidden
	case services.ErrNotFound:
		status = http.StatusNotFound
	}

	return c.JSON(status, map[string]interface{}{
		"code":    string(se.Kind),
		"message": se.Message,
	})
}

// paramUint parses a numeric path parameter
func paramUint(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Parâmetro inválido: "+name)
	}
	return uint(value), nil
}
