package services

import (
	"testing"

	"licenca_flow_go/db"
	"licenca_flow_go/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, gdb.AutoMigrate(
		&models.Profile{},
		&models.Session{},
		&models.Person{},
		&models.Address{},
		&models.Property{},
		&models.PropertyTitle{},
		&models.Activity{},
		&models.Process{},
		&models.ProcessParticipant{},
	))

	require.NoError(t, db.EnsureIndexes(gdb))

	return gdb
}

func stringPtr(s string) *string {
	return &s
}

func uintPtr(v uint) *uint {
	return &v
}
