package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"licenca_flow_go/models"

	"gorm.io/gorm"
)

const (
	// SessionTokenLength is the length of the session token in bytes (64 chars hex)
	SessionTokenLength = 32
	// SessionDuration is how long a session stays valid
	SessionDuration = 24 * time.Hour
)

// GenerateSessionToken generates a cryptographically secure random token
func GenerateSessionToken() (string, error) {
	bytes := make([]byte, SessionTokenLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// CreateSession opens a session for a profile. The identity provider proper
// is an external collaborator; this only records its handed-out sessions.
func CreateSession(gdb *gorm.DB, profileID string) (*models.Session, error) {
	token, err := GenerateSessionToken()
	if err != nil {
		return nil, err
	}

	session := models.Session{
		Token:     token,
		ProfileID: profileID,
		ExpiresAt: time.Now().Add(SessionDuration),
	}

	if err := gdb.Create(&session).Error; err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return &session, nil
}

// ValidateSession resolves a token to its session and profile
func ValidateSession(gdb *gorm.DB, token string) (*models.Session, error) {
	var session models.Session
	err := gdb.Preload("Profile").Where("token = ?", token).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("session not found")
		}
		return nil, fmt.Errorf("failed to validate session: %w", err)
	}

	if session.IsExpired() {
		gdb.Delete(&session)
		return nil, fmt.Errorf("session expired")
	}

	return &session, nil
}

// DeleteSession removes a session by token
func DeleteSession(gdb *gorm.DB, token string) error {
	return gdb.Where("token = ?", token).Delete(&models.Session{}).Error
}

// CleanupExpiredSessions removes all sessions past their expiry
func CleanupExpiredSessions(gdb *gorm.DB) error {
	return gdb.Where("expires_at < ?", time.Now()).Delete(&models.Session{}).Error
}
