package db

import (
	"context"
	"io"
	"log"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"employees-api/internal/config"
	"employees-api/internal/models"
)

func testConfig(t *testing.T, path string) config.Config {
	t.Helper()
	return config.Config{
		DatabasePath: path,
		DBLogLevel:   "silent",
	}
}

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.db")
	cfg := testConfig(t, path)

	database, err := Connect(cfg, log.New(io.Discard, "", 0))
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, EnsureSchema(ctx, database))

	phone := "555-0100"
	require.NoError(t, database.Create(&models.Employee{
		Name:       "Ada",
		Email:      "ada@example.com",
		Department: "Eng",
		Position:   "SWE",
		Salary:     120000,
		HireDate:   "2024-01-01",
		Phone:      &phone,
	}).Error)
	require.NoError(t, Close(database))

	// Reopen the same file: the table and its rows must survive a second start.
	database, err = Connect(cfg, log.New(io.Discard, "", 0))
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(database) })

	require.NoError(t, EnsureSchema(ctx, database))

	var count int64
	require.NoError(t, database.Model(&models.Employee{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestEnsureSchemaColumns(t *testing.T) {
	database, err := Connect(testConfig(t, ":memory:"), log.New(io.Discard, "", 0))
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(database) })

	require.NoError(t, EnsureSchema(context.Background(), database))

	migrator := database.Migrator()
	for _, column := range []string{"id", "name", "email", "department", "position", "salary", "hire_date", "phone", "created_at"} {
		assert.True(t, migrator.HasColumn(&models.Employee{}, column), "missing column %s", column)
	}
}

func TestOpenSQLiteRequiresPath(t *testing.T) {
	_, err := OpenSQLite("  ")
	require.Error(t, err)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, parseLogLevel("silent"))
	assert.Equal(t, logger.Error, parseLogLevel("error"))
	assert.Equal(t, logger.Info, parseLogLevel("info"))
	assert.Equal(t, logger.Warn, parseLogLevel("warn"))
	assert.Equal(t, logger.Warn, parseLogLevel(""))
}
