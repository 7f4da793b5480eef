package testutil

import (
	"testing"

	"github.com/deppfellow/superheroes/internal/config"
	"github.com/deppfellow/superheroes/internal/logger"
	"github.com/deppfellow/superheroes/internal/server"
	"github.com/rs/zerolog"
)

// NewServer returns a Server over a fresh migrated SQLite database.
// Logging is discarded.
func NewServer(t *testing.T) *server.Server {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Primary.Env = "test"

	log := zerolog.Nop()
	return server.NewWithDatabase(cfg, &log, logger.NewLoggerService(cfg.Observability), NewSQLiteDB(t))
}
