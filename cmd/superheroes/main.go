// Command superheroes serves the heroes and powers API.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/deppfellow/superheroes/internal/config"
	"github.com/deppfellow/superheroes/internal/logger"
	"github.com/deppfellow/superheroes/internal/server"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "superheroes",
	Short: "Heroes, powers and the links between them over HTTP",
	Long: `superheroes serves a small JSON API over heroes, powers and hero_powers.

The store is selected with DB_URI (sqlite:///app.db by default, or a
postgres:// URL). SQLite paths after sqlite:/// are relative to the
working directory; sqlite:////abs/path/app.db is the absolute form.
Without a subcommand the server is started.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

// app is what every subcommand starts from.
type app struct {
	cfg           *config.Config
	log           *zerolog.Logger
	loggerService *logger.LoggerService
	server        *server.Server
}

// bootstrap loads config, builds the logger and opens the database.
func bootstrap() (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		loggerService.Shutdown()
		return nil, err
	}

	return &app{
		cfg:           cfg,
		log:           &log,
		loggerService: loggerService,
		server:        srv,
	}, nil
}

// close releases the database and flushes New Relic.
func (a *app) close() {
	if err := a.server.DB.Close(); err != nil {
		a.log.Error().Err(err).Msg("failed to close database")
	}
	a.loggerService.Shutdown()
}
