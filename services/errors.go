package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ErrorKind is the closed taxonomy every service failure is normalized into.
// Callers branch on kinds, never on raw store error shapes.
type ErrorKind string

const (
	ErrValidation    ErrorKind = "VALIDATION"
	ErrDuplicate     ErrorKind = "UNIQUE"
	ErrAuth          ErrorKind = "AUTH"
	ErrAuthorization ErrorKind = "AUTHORIZATION"
	// Check-constraint sub-kinds
	ErrAttorneyRequiresDocument ErrorKind = "CHECK_PROCURADOR"
	ErrRuralRequiresCAR         ErrorKind = "CHECK_RURAL_CAR"
	ErrCoordinatesRequired      ErrorKind = "CHECK_COORDS"
	ErrBusinessRule             ErrorKind = "CHECK"
	// Store-side failures
	ErrAccessDenied ErrorKind = "RLS"
	ErrNotFound     ErrorKind = "NOT_FOUND"
	ErrStorage      ErrorKind = "STORAGE"
	ErrUnknown      ErrorKind = "UNKNOWN"
)

// ServiceError is the result-with-error value returned by every service for
// expected business-rule failures. Code and Err keep the raw store diagnostics.
type ServiceError struct {
	Kind    ErrorKind
	Code    string
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewValidationError reports a client-detectable input problem. No store call
// should have been made when this is returned.
func NewValidationError(message string) *ServiceError {
	return &ServiceError{Kind: ErrValidation, Message: message}
}

// NewAuthError reports a missing caller identity
func NewAuthError(message string) *ServiceError {
	return &ServiceError{Kind: ErrAuth, Message: message}
}

// IsKind reports whether err is a ServiceError of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Kind == kind
	}
	return false
}

// Normalize maps a raw store error into the closed taxonomy. First match wins:
// uniqueness, check constraint (refined), permission, not-found, storage,
// unknown.
//
// Structured sentinels (gorm.ErrRecordNotFound, gorm.ErrDuplicatedKey) are
// checked before any message sniffing. The substring matches on constraint
// names are best-effort: renaming a constraint server-side silently degrades
// the refined check kinds to ErrBusinessRule.
func Normalize(err error) *ServiceError {
	if err == nil {
		return nil
	}

	var se *ServiceError
	if errors.As(err, &se) {
		return se
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &ServiceError{Kind: ErrNotFound, Message: "Recurso não encontrado.", Err: err}
	}

	msg := err.Error()
	lower := strings.ToLower(msg)

	// 1. Uniqueness violations (sqlite message, pg code, gorm sentinel)
	if errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(lower, "unique constraint") ||
		strings.Contains(lower, "duplicate key") ||
		strings.Contains(lower, "23505") {
		return &ServiceError{
			Kind:    ErrDuplicate,
			Message: "Registro duplicado. Já existe um item com esses dados.",
			Err:     err,
		}
	}

	// 2. Check violations, refined by the constraint names we control
	if strings.Contains(lower, "check constraint") || strings.Contains(lower, "23514") {
		switch {
		case strings.Contains(lower, "procurador"):
			return &ServiceError{
				Kind:    ErrAttorneyRequiresDocument,
				Message: "Procurador exige o upload da procuração.",
				Err:     err,
			}
		case strings.Contains(lower, "rural") && strings.Contains(lower, "car"):
			return &ServiceError{
				Kind:    ErrRuralRequiresCAR,
				Message: "Imóvel rural exige o código do CAR.",
				Err:     err,
			}
		case strings.Contains(lower, "coords") || strings.Contains(lower, "utm") || strings.Contains(lower, "dms"):
			return &ServiceError{
				Kind:    ErrCoordinatesRequired,
				Message: "Informe ao menos um par de coordenadas (UTM ou DMS).",
				Err:     err,
			}
		default:
			return &ServiceError{Kind: ErrBusinessRule, Message: "Regra de negócio violada.", Err: err}
		}
	}

	// 3. Permission denied (pg RLS code or message)
	if strings.Contains(lower, "permission denied") || strings.Contains(lower, "42501") {
		return &ServiceError{
			Kind:    ErrAccessDenied,
			Message: "Permissão negada. Verifique se você tem acesso a este recurso.",
			Err:     err,
		}
	}

	// 4. Not found
	if strings.Contains(lower, "not found") || strings.Contains(lower, "404") {
		return &ServiceError{Kind: ErrNotFound, Message: "Recurso não encontrado.", Err: err}
	}

	// 5. Storage subsystem
	if strings.Contains(lower, "storage") && strings.Contains(lower, "bucket") {
		return &ServiceError{Kind: ErrStorage, Message: "Erro de armazenamento de arquivos.", Err: err}
	}

	// 6. Fallback with the original message preserved for diagnostics
	return &ServiceError{Kind: ErrUnknown, Code: "UNKNOWN", Message: msg, Err: err}
}
