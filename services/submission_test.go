package services

import (
	"testing"

	"licenca_flow_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const otherCaller = "22222222-2222-2222-2222-222222222222"

// submissionFixture builds a process that passes every submission gate for
// testCaller: applicant linked, organization linked, property and activity
// selected in the wizard state.
func submissionFixture(t *testing.T, gdb *gorm.DB) (*WizardState, *models.Process) {
	t.Helper()

	process, err := CreateDraft(gdb, testCaller)
	require.NoError(t, err)

	applicant := createTestPerson(t, gdb, "12345678901")
	_, err = UpsertParticipant(gdb, process.ID, applicant.ID, models.RoleRequerente, nil)
	require.NoError(t, err)

	org, err := CreateOrganization(gdb, testCaller, OrganizationInput{
		Cnpj:        "12345678000190",
		RazaoSocial: "Mineradora LTDA",
	})
	require.NoError(t, err)
	_, err = LinkOrganization(gdb, process.ID, org.ID)
	require.NoError(t, err)

	property, err := CreateProperty(gdb, testCaller, PropertyInput{
		Kind:    models.PropertyKindUrban,
		UtmLat:  stringPtr("7350000"),
		UtmLong: stringPtr("623000"),
	})
	require.NoError(t, err)

	require.NoError(t, SeedActivities(gdb))
	var activity models.Activity
	require.NoError(t, gdb.Where("codigo = ?", "1.1").First(&activity).Error)

	state := &WizardState{}
	state.ProcessID = &process.ID
	state.SelectProperty(property.ID)
	state.SelectActivity(activity.ID)

	return state, process
}

func TestSubmitSuccess(t *testing.T) {
	gdb := setupTestDB(t)
	state, _ := submissionFixture(t, gdb)

	submitted, err := Submit(gdb, state, testCaller)
	require.NoError(t, err)

	assert.Equal(t, models.ProcessStatusSubmitted, submitted.Status)
	assert.Equal(t, models.SubmittedProgress, submitted.Progress)
	require.NotNil(t, submitted.SubmittedAt)
	require.NotNil(t, submitted.PropertyID)
	assert.Equal(t, *state.PropertyID, *submitted.PropertyID)
	require.NotNil(t, submitted.AtividadeID)
	assert.Equal(t, *state.AtividadeID, *submitted.AtividadeID)
}

func TestSubmitRequiresCaller(t *testing.T) {
	gdb := setupTestDB(t)
	state, _ := submissionFixture(t, gdb)

	_, err := Submit(gdb, state, "")
	assert.True(t, IsKind(err, ErrAuth))
}

func TestSubmitRequiresProcess(t *testing.T) {
	gdb := setupTestDB(t)

	_, err := Submit(gdb, &WizardState{}, testCaller)
	assert.True(t, IsKind(err, ErrValidation))

	_, err = Submit(gdb, nil, testCaller)
	assert.True(t, IsKind(err, ErrValidation))
}

func TestSubmitRequiresApplicant(t *testing.T) {
	gdb := setupTestDB(t)
	state, process := submissionFixture(t, gdb)

	// Replace the applicant with a technical lead only
	require.NoError(t, gdb.Where("process_id = ?", process.ID).Delete(&models.ProcessParticipant{}).Error)

	tech := createTestPerson(t, gdb, "98765432109")
	_, err := UpsertParticipant(gdb, process.ID, tech.ID, models.RoleRespTecnico, nil)
	require.NoError(t, err)

	_, err = Submit(gdb, state, testCaller)
	assert.True(t, IsKind(err, ErrValidation))
	assert.Contains(t, err.Error(), "requerente")

	fresh, ferr := GetProcess(gdb, process.ID)
	require.NoError(t, ferr)
	assert.Equal(t, models.ProcessStatusDraft, fresh.Status)
}

func TestSubmitRejectsProcuradorWithoutDocument(t *testing.T) {
	gdb := setupTestDB(t)
	state, process := submissionFixture(t, gdb)

	// Simulate drift: a procurador row whose document reference was cleared
	proc := createTestPerson(t, gdb, "98765432109")
	participant := models.ProcessParticipant{
		ProcessID:        process.ID,
		PersonID:         proc.ID,
		Role:             models.RoleProcurador,
		ProcuracaoFileID: stringPtr("42/procuracao.pdf"),
	}
	require.NoError(t, gdb.Create(&participant).Error)

	// Bypass the check constraint to create the drifted row
	require.NoError(t, gdb.Exec("PRAGMA ignore_check_constraints = ON").Error)
	require.NoError(t, gdb.Exec(
		"UPDATE process_participants SET procuracao_file_id = NULL WHERE id = ?",
		participant.ID,
	).Error)
	require.NoError(t, gdb.Exec("PRAGMA ignore_check_constraints = OFF").Error)

	_, err := Submit(gdb, state, testCaller)
	assert.True(t, IsKind(err, ErrValidation))
	assert.Contains(t, err.Error(), "procuração")
}

func TestSubmitRejectsNonOwner(t *testing.T) {
	gdb := setupTestDB(t)
	state, process := submissionFixture(t, gdb)

	_, err := Submit(gdb, state, otherCaller)
	assert.True(t, IsKind(err, ErrAuthorization))

	// No status change happened
	fresh, ferr := GetProcess(gdb, process.ID)
	require.NoError(t, ferr)
	assert.Equal(t, models.ProcessStatusDraft, fresh.Status)
	assert.Equal(t, 0, fresh.Progress)
}

func TestSubmitRequiresOrganization(t *testing.T) {
	gdb := setupTestDB(t)
	state, process := submissionFixture(t, gdb)

	require.NoError(t, gdb.Model(&models.Process{}).Where("id = ?", process.ID).
		Update("organization_id", nil).Error)

	_, err := Submit(gdb, state, testCaller)
	assert.True(t, IsKind(err, ErrValidation))
	assert.Contains(t, err.Error(), "Empresa")
}

func TestSubmitRequiresActivity(t *testing.T) {
	gdb := setupTestDB(t)
	state, _ := submissionFixture(t, gdb)

	// Neither persisted nor selected in the wizard
	state.AtividadeID = nil

	_, err := Submit(gdb, state, testCaller)
	assert.True(t, IsKind(err, ErrValidation))
	assert.Contains(t, err.Error(), "Atividade")
}

func TestSubmitLinksActivityFromWizardState(t *testing.T) {
	gdb := setupTestDB(t)
	state, process := submissionFixture(t, gdb)

	// Activity only in wizard state, not yet on the process row
	before, err := GetProcess(gdb, process.ID)
	require.NoError(t, err)
	assert.Nil(t, before.AtividadeID)

	submitted, err := Submit(gdb, state, testCaller)
	require.NoError(t, err)
	require.NotNil(t, submitted.AtividadeID)
	assert.Equal(t, *state.AtividadeID, *submitted.AtividadeID)
}

func TestSubmitTwiceFails(t *testing.T) {
	gdb := setupTestDB(t)
	state, _ := submissionFixture(t, gdb)

	_, err := Submit(gdb, state, testCaller)
	require.NoError(t, err)

	_, err = Submit(gdb, state, testCaller)
	assert.True(t, IsKind(err, ErrDuplicate))
}
