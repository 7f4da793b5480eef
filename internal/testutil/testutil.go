// Package testutil opens throwaway stores for tests.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/deppfellow/superheroes/internal/config"
	"github.com/deppfellow/superheroes/internal/database"
	"github.com/rs/zerolog"
)

// NewSQLiteDB returns a migrated SQLite database in a temp directory.
// It is closed when the test ends.
func NewSQLiteDB(t *testing.T) *database.Database {
	t.Helper()

	logger := zerolog.Nop()
	cfg := config.DefaultConfig()
	cfg.Database.URL = "sqlite:///" + filepath.Join(t.TempDir(), "heroes-test.db")

	db, err := database.New(cfg, &logger, nil)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.Migrate(context.Background(), &logger, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}
