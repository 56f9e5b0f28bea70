package services

import (
	"time"

	"licenca_flow_go/models"

	"gorm.io/gorm"
)

// Submit runs the submission gates for the review step and, when every gate
// passes, transitions the process from RASCUNHO to SUBMETIDO.
//
// The gates are strictly ordered: identity before data access, data linking
// before data validation, validation before the terminal transition. The user
// always gets the most actionable error first. Earlier links (property,
// activity) commit independently and are idempotent; only the status
// transition is the commit point.
func Submit(gdb *gorm.DB, state *WizardState, callerID string) (*models.Process, error) {
	// 1. Caller identity
	if callerID == "" {
		return nil, NewAuthError("Usuário não autenticado.")
	}
	if state == nil || state.ProcessID == nil {
		return nil, NewValidationError("Processo não encontrado.")
	}
	processID := *state.ProcessID

	// 2. Link the selected property if the wizard holds one
	if state.PropertyID != nil {
		if _, err := LinkProperty(gdb, processID, *state.PropertyID); err != nil {
			return nil, Normalize(err)
		}
	}

	// 3. Validate persisted participants, not wizard-local copies
	participants, err := Participants(gdb, processID)
	if err != nil {
		return nil, Normalize(err)
	}

	hasRequerente := false
	for _, p := range participants {
		if p.Role == models.RoleRequerente {
			hasRequerente = true
		}
		if p.Role == models.RoleProcurador && !filled(p.ProcuracaoFileID) {
			// The store enforces this at insert time too; re-checking guards
			// against drift between wizard state and persisted rows.
			return nil, NewValidationError("Procurador exige o upload da procuração.")
		}
	}
	if !hasRequerente {
		return nil, NewValidationError("É obrigatório ter um requerente.")
	}

	// 4. Ownership and organization on the authoritative row
	process, err := GetProcess(gdb, processID)
	if err != nil {
		return nil, err
	}
	if process.CreatedBy != callerID {
		return nil, &ServiceError{
			Kind:    ErrAuthorization,
			Message: "Você não é o criador deste processo.",
		}
	}
	if process.OrganizationID == nil {
		return nil, NewValidationError("Empresa não vinculada ao processo.")
	}

	// 5. Persist the wizard's activity selection, then re-read to avoid
	// acting on stale data
	if process.AtividadeID == nil && state.AtividadeID != nil {
		if _, err := LinkActivity(gdb, processID, *state.AtividadeID); err != nil {
			return nil, Normalize(err)
		}
		process, err = GetProcess(gdb, processID)
		if err != nil {
			return nil, err
		}
	}

	// 6. Activity must be linked by now
	if process.AtividadeID == nil {
		return nil, NewValidationError("Atividade não selecionada.")
	}

	// 7. Guarded terminal transition. The status predicate makes the commit
	// point safe against a concurrent submission of the same process.
	now := time.Now()
	result := gdb.Model(&models.Process{}).
		Where("id = ? AND status = ?", processID, models.ProcessStatusDraft).
		Updates(map[string]interface{}{
			"status":       models.ProcessStatusSubmitted,
			"progress":     models.SubmittedProgress,
			"submitted_at": now,
		})
	if result.Error != nil {
		return nil, Normalize(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, &ServiceError{
			Kind:    ErrDuplicate,
			Message: "Este processo já foi submetido.",
		}
	}

	return GetProcess(gdb, processID)
}
