package handlers

import (
	"log"
	"net/http"

	"licenca_flow_go/config"
	"licenca_flow_go/db"
	"licenca_flow_go/middleware"
	"licenca_flow_go/services"

	"github.com/labstack/echo/v4"
)

// EnsureDraftHandler returns the session's draft process, creating one on
// first call. Repeated calls never open a second draft.
func EnsureDraftHandler(c echo.Context) error {
	profile := middleware.GetCurrentProfile(c)
	session := middleware.GetCurrentSession(c)

	process, err := Wizard.Get(session.ID).EnsureDraft(db.DB, profile.ID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": process})
}

type participantInput struct {
	PersonID         uint    `json:"person_id"`
	Role             string  `json:"role"`
	ProcuracaoFileID *string `json:"procuracao_file_id,omitempty"`
}

// UpsertParticipantHandler links or refreshes a participant on the process
func UpsertParticipantHandler(c echo.Context) error {
	processID, err := paramUint(c, "id")
	if err != nil {
		return err
	}

	var in participantInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Payload inválido")
	}

	participant, err := services.UpsertParticipant(db.DB, processID, in.PersonID, in.Role, in.ProcuracaoFileID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": participant})
}

// ListParticipantsHandler lists the process participants with person data
func ListParticipantsHandler(c echo.Context) error {
	processID, err := paramUint(c, "id")
	if err != nil {
		return err
	}

	participants, err := services.Participants(db.DB, processID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": participants})
}

// RemoveParticipantHandler removes a participant by its natural key
func RemoveParticipantHandler(c echo.Context) error {
	processID, err := paramUint(c, "id")
	if err != nil {
		return err
	}
	personID, err := paramUint(c, "personId")
	if err != nil {
		return err
	}
	role := c.Param("role")

	if err := services.RemoveParticipant(db.DB, processID, personID, role); err != nil {
		return errorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// UploadProcuracaoHandler stores a power-of-attorney PDF and returns its
// storage path
func UploadProcuracaoHandler(c echo.Context) error {
	processID, err := paramUint(c, "id")
	if err != nil {
		return err
	}

	file, err := c.FormFile("file")
	if err != nil {
		return errorResponse(c, services.NewValidationError("Arquivo não selecionado."))
	}

	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Falha ao ler o arquivo")
	}
	defer src.Close()

	path, err := services.UploadProcuracao(c.Request().Context(), services.Storage, processID, file.Filename, src, file.Size)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{"data": map[string]string{"path": path}})
}

// SignedDocumentURLHandler generates a temporary download link for a stored
// document
func SignedDocumentURLHandler(c echo.Context) error {
	path := c.QueryParam("path")
	if path == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Informe o caminho do documento")
	}

	url, err := services.SignedDocumentURL(c.Request().Context(), services.Storage, path, services.DefaultSignedURLTTL)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": map[string]string{"url": url}})
}

type activitySelection struct {
	AtividadeID uint `json:"atividade_id"`
}

// SelectActivityHandler records the wizard's activity choice; the link is
// persisted on the process at submission time
func SelectActivityHandler(c echo.Context) error {
	session := middleware.GetCurrentSession(c)

	var in activitySelection
	if err := c.Bind(&in); err != nil || in.AtividadeID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Payload inválido")
	}

	Wizard.Get(session.ID).SelectActivity(in.AtividadeID)
	return c.NoContent(http.StatusNoContent)
}

// LinkOrganizationHandler links the requesting organization to the process
func LinkOrganizationHandler(c echo.Context) error {
	processID, err := paramUint(c, "id")
	if err != nil {
		return err
	}

	var in struct {
		PersonID uint `json:"person_id"`
	}
	if err := c.Bind(&in); err != nil || in.PersonID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Payload inválido")
	}

	process, err := services.LinkOrganization(db.DB, processID, in.PersonID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": process})
}

// ProcessSnapshotHandler returns the composed review snapshot
func ProcessSnapshotHandler(c echo.Context) error {
	processID, err := paramUint(c, "id")
	if err != nil {
		return err
	}

	snapshot, err := services.GetFull(db.DB, processID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": snapshot})
}

// SubmitHandler runs the submission gates and, on success, transitions the
// draft to SUBMETIDO, notifies the applicant and resets the wizard state
func SubmitHandler(c echo.Context) error {
	profile := middleware.GetCurrentProfile(c)
	session := middleware.GetCurrentSession(c)
	state := Wizard.Get(session.ID)

	process, err := services.Submit(db.DB, state, profile.ID)
	if err != nil {
		return errorResponse(c, err)
	}

	if cfg, ok := c.Get("config").(*config.Config); ok {
		if err := services.SendSubmissionConfirmation(cfg, profile.Email, process.ID); err != nil {
			log.Printf("[WARNING] Failed to send submission confirmation for process %d: %v", process.ID, err)
		}
	}

	state.Reset()
	Wizard.Drop(session.ID)

	return c.JSON(http.StatusOK, map[string]interface{}{"data": process})
}

// ReceiptHandler renders the submission receipt PDF
func ReceiptHandler(c echo.Context) error {
	processID, err := paramUint(c, "id")
	if err != nil {
		return err
	}

	snapshot, err := services.GetFull(db.DB, processID)
	if err != nil {
		return errorResponse(c, err)
	}

	cfg, ok := c.Get("config").(*config.Config)
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "Configuração indisponível")
	}

	pdf, err := services.GenerateSubmissionReceipt(cfg, snapshot)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Falha ao gerar o comprovante")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=comprovante.pdf")
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}
