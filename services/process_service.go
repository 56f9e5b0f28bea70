package services

import (
	"licenca_flow_go/models"

	"gorm.io/gorm"
)

// CreateDraft opens a new draft process for the inscription wizard
func CreateDraft(gdb *gorm.DB, callerID string) (*models.Process, error) {
	if callerID == "" {
		return nil, NewAuthError("Usuário não autenticado.")
	}

	process := models.Process{
		Status:     models.ProcessStatusDraft,
		CreatedVia: models.ProcessCreatedViaInscricao,
		CreatedBy:  callerID,
	}

	if err := gdb.Create(&process).Error; err != nil {
		return nil, Normalize(err)
	}
	return &process, nil
}

// GetProcess loads the authoritative process row
func GetProcess(gdb *gorm.DB, id uint) (*models.Process, error) {
	var process models.Process
	if err := gdb.First(&process, id).Error; err != nil {
		return nil, Normalize(err)
	}
	return &process, nil
}

// LinkProperty links a property to the process. Re-linking the same property
// is a no-op at the data level, so the call is safe to repeat.
func LinkProperty(gdb *gorm.DB, processID, propertyID uint) (*models.Process, error) {
	err := gdb.Model(&models.Process{}).Where("id = ?", processID).
		Update("property_id", propertyID).Error
	if err != nil {
		return nil, Normalize(err)
	}
	return GetProcess(gdb, processID)
}

// LinkActivity links a catalogue activity to the process
func LinkActivity(gdb *gorm.DB, processID, atividadeID uint) (*models.Process, error) {
	err := gdb.Model(&models.Process{}).Where("id = ?", processID).
		Update("atividade_id", atividadeID).Error
	if err != nil {
		return nil, Normalize(err)
	}
	return GetProcess(gdb, processID)
}

// LinkOrganization links the requesting organization (a PJ person) to the
// process
func LinkOrganization(gdb *gorm.DB, processID, personID uint) (*models.Process, error) {
	var person models.Person
	if err := gdb.First(&person, personID).Error; err != nil {
		return nil, Normalize(err)
	}
	if !person.IsOrganization() {
		return nil, NewValidationError("Somente pessoa jurídica pode ser vinculada como empresa do processo.")
	}

	err := gdb.Model(&models.Process{}).Where("id = ?", processID).
		Update("organization_id", personID).Error
	if err != nil {
		return nil, Normalize(err)
	}
	return GetProcess(gdb, processID)
}

// UpsertParticipant links a person to a process under a role, or refreshes the
// link's mutable fields when the triple already exists.
//
// The flow is insert-then-conditional-update: the insert is attempted first
// and the store's uniqueness constraint decides whether the triple exists.
// That keeps the operation race-free under concurrent callers without a
// read-then-write window. A duplicate REQUERENTE is a terminal business error,
// never retried as an update.
func UpsertParticipant(gdb *gorm.DB, processID, personID uint, role string, procuracaoFileID *string) (*models.ProcessParticipant, error) {
	switch role {
	case models.RoleRequerente, models.RoleProcurador, models.RoleRespTecnico:
	default:
		return nil, NewValidationError("Papel de participante inválido.")
	}

	// Precondition gate, no store call made
	if role == models.RoleProcurador && !filled(procuracaoFileID) {
		return nil, NewValidationError("Procurador exige o upload da procuração.")
	}

	participant := models.ProcessParticipant{
		ProcessID:        processID,
		PersonID:         personID,
		Role:             role,
		ProcuracaoFileID: procuracaoFileID,
	}

	if err := gdb.Create(&participant).Error; err != nil {
		se := Normalize(err)
		if se.Kind != ErrDuplicate {
			return nil, se
		}

		if role == models.RoleRequerente {
			return nil, &ServiceError{
				Kind:    ErrDuplicate,
				Message: "Somente um requerente pode ser vinculado por processo.",
				Err:     err,
			}
		}

		// Same natural key already linked: refresh the mutable fields
		err = gdb.Model(&models.ProcessParticipant{}).
			Where("process_id = ? AND person_id = ? AND role = ?", processID, personID, role).
			Update("procuracao_file_id", procuracaoFileID).Error
		if err != nil {
			return nil, Normalize(err)
		}

		var updated models.ProcessParticipant
		err = gdb.Where("process_id = ? AND person_id = ? AND role = ?", processID, personID, role).
			First(&updated).Error
		if err != nil {
			return nil, Normalize(err)
		}
		return &updated, nil
	}

	return &participant, nil
}

// Participants lists a process's participants with their person records
func Participants(gdb *gorm.DB, processID uint) ([]models.ProcessParticipant, error) {
	var participants []models.ProcessParticipant
	err := gdb.Preload("Person").Where("process_id = ?", processID).
		Order("id ASC").Find(&participants).Error
	if err != nil {
		return nil, Normalize(err)
	}
	return participants, nil
}

// RemoveParticipant removes a participant by its natural key
func RemoveParticipant(gdb *gorm.DB, processID, personID uint, role string) error {
	err := gdb.Where("process_id = ? AND person_id = ? AND role = ?", processID, personID, role).
		Delete(&models.ProcessParticipant{}).Error
	if err != nil {
		return Normalize(err)
	}
	return nil
}

// ProcessSnapshot is the composed read used by the review step
type ProcessSnapshot struct {
	Process      *models.Process             `json:"process"`
	Participants []models.ProcessParticipant `json:"participants"`
	Property     *models.Property            `json:"property,omitempty"`
	Titles       []models.PropertyTitle      `json:"titles"`
	Atividade    *models.Activity            `json:"atividade,omitempty"`
}

// GetFull composes the process snapshot out of separate reads instead of a
// fragile multi-join
func GetFull(gdb *gorm.DB, processID uint) (*ProcessSnapshot, error) {
	process, err := GetProcess(gdb, processID)
	if err != nil {
		return nil, err
	}

	participants, err := Participants(gdb, processID)
	if err != nil {
		return nil, err
	}

	snapshot := &ProcessSnapshot{
		Process:      process,
		Participants: participants,
		Titles:       []models.PropertyTitle{},
	}

	if process.PropertyID != nil {
		property, err := GetProperty(gdb, *process.PropertyID)
		if err != nil {
			return nil, err
		}
		snapshot.Property = property

		titles, err := ListPropertyTitles(gdb, *process.PropertyID)
		if err != nil {
			return nil, err
		}
		snapshot.Titles = titles
	}

	if process.AtividadeID != nil {
		var activity models.Activity
		if err := gdb.First(&activity, *process.AtividadeID).Error; err != nil {
			return nil, Normalize(err)
		}
		snapshot.Atividade = &activity
	}

	return snapshot, nil
}
