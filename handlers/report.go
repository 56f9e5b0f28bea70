package handlers

import (
	"net/http"

	"licenca_flow_go/db"
	"licenca_flow_go/models"
	"licenca_flow_go/services"

	"github.com/labstack/echo/v4"
)

// SubmittedProcessesReportHandler streams the XLSX export of submitted
// processes
func SubmittedProcessesReportHandler(c echo.Context) error {
	report, err := services.BuildSubmittedProcessesReport(db.DB)
	if err != nil {
		return errorResponse(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=processos_submetidos.xlsx")
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)

	if err := report.Write(c.Response().Writer); err != nil {
		return err
	}
	return nil
}

// ListActivitiesHandler lists the activity catalogue for the wizard's
// activity step
func ListActivitiesHandler(c echo.Context) error {
	var activities []models.Activity
	if err := db.DB.Order("codigo ASC").Find(&activities).Error; err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": activities})
}
