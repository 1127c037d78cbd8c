// Package testutil opens throwaway databases for package tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tair/inventory-tracker/internal/product/repository"
	"github.com/tair/inventory-tracker/pkg/database"
)

// NewTestDB returns a migrated in-memory SQLite database closed at test cleanup
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.NewGormConnection(database.Config{
		Driver: database.DriverSQLite,
		Path:   ":memory:",
	})
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}
