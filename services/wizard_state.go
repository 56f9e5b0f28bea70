package services

import (
	"encoding/json"
	"sync"

	"licenca_flow_go/models"

	"gorm.io/gorm"
)

// WizardState is the session-scoped aggregate the inscription wizard carries
// across steps: the draft's id plus the selections not yet persisted on the
// process row. It serializes to JSON so a session can survive a restart.
type WizardState struct {
	ProcessID   *uint `json:"process_id,omitempty"`
	PropertyID  *uint `json:"property_id,omitempty"`
	AtividadeID *uint `json:"atividade_id,omitempty"`
}

// EnsureDraft returns the session's draft process, creating one only when the
// state holds no process id yet. Repeated calls are idempotent.
func (s *WizardState) EnsureDraft(gdb *gorm.DB, callerID string) (*models.Process, error) {
	if s.ProcessID != nil {
		return GetProcess(gdb, *s.ProcessID)
	}

	process, err := CreateDraft(gdb, callerID)
	if err != nil {
		return nil, err
	}
	s.ProcessID = &process.ID
	return process, nil
}

// SelectProperty records the wizard's property choice
func (s *WizardState) SelectProperty(propertyID uint) {
	s.PropertyID = &propertyID
}

// SelectActivity records the wizard's activity choice
func (s *WizardState) SelectActivity(atividadeID uint) {
	s.AtividadeID = &atividadeID
}

// Reset clears the state after a successful submission
func (s *WizardState) Reset() {
	s.ProcessID = nil
	s.PropertyID = nil
	s.AtividadeID = nil
}

// Snapshot serializes the state for storage outside the process
func (s *WizardState) Snapshot() ([]byte, error) {
	return json.Marshal(s)
}

// RestoreWizardState deserializes a previously snapshotted state
func RestoreWizardState(data []byte) (*WizardState, error) {
	var state WizardState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// WizardStore keeps one WizardState per session. Each session drives a single
// request at a time; the mutex only guards the map itself.
type WizardStore struct {
	mu     sync.Mutex
	states map[string]*WizardState
}

// NewWizardStore creates an empty wizard store
func NewWizardStore() *WizardStore {
	return &WizardStore{states: make(map[string]*WizardState)}
}

// Get returns the state for a session, creating it on first use
func (ws *WizardStore) Get(sessionID string) *WizardState {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	state, ok := ws.states[sessionID]
	if !ok {
		state = &WizardState{}
		ws.states[sessionID] = state
	}
	return state
}

// Drop removes a session's state
func (ws *WizardStore) Drop(sessionID string) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	delete(ws.states, sessionID)
}
