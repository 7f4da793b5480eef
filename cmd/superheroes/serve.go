package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/superheroes/internal/database"
	"github.com/deppfellow/superheroes/internal/handler"
	"github.com/deppfellow/superheroes/internal/repository"
	"github.com/deppfellow/superheroes/internal/router"
	"github.com/deppfellow/superheroes/internal/service"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Migrate the database and serve the API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.loggerService.Shutdown()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := database.Migrate(ctx, a.log, a.server.DB); err != nil {
		_ = a.server.DB.Close()
		return err
	}

	repos := repository.NewRepositories(a.server)
	services, err := service.NewService(a.server, repos)
	if err != nil {
		_ = a.server.DB.Close()
		return err
	}

	r := router.NewRouter(a.server, handler.NewHandlers(a.server, services))
	a.server.SetupHTTPServer(r)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- a.server.Start()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error().Err(err).Msg("server stopped")
			_ = a.server.DB.Close()
			return err
		}
	case <-ctx.Done():
		a.log.Info().Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.log.Error().Err(err).Msg("server forced to shutdown")
		return err
	}

	a.log.Info().Msg("server exited properly")
	return nil
}
