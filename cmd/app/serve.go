package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"salesorders/api"
	"salesorders/cmd"
	httpin "salesorders/internal/adapters/in/http"
	"salesorders/internal/adapters/out/postgres/migrations"
	"salesorders/internal/pkg/logger"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(envFile *string) *cobra.Command {
	var migrate bool

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and background jobs",
		RunE: func(c *cobra.Command, _ []string) error {
			config, err := cmd.LoadConfig(*envFile)
			if err != nil {
				return err
			}
			return serve(c.Context(), config, migrate)
		},
	}
	serveCmd.Flags().BoolVar(&migrate, "migrate", false, "apply pending schema migrations before starting")
	return serveCmd
}

func serve(ctx context.Context, config cmd.Config, migrate bool) error {
	zapLogger, err := logger.New(config.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = zapLogger.Sync() }()

	if migrate {
		if err := migrateUp(config); err != nil {
			return err
		}
		zapLogger.Info("Schema migrations applied")
	}

	gormDB, err := cmd.OpenDatabase(config)
	if err != nil {
		return err
	}

	doc, err := api.Load()
	if err != nil {
		return err
	}

	app := cmd.NewCompositionRoot(config, gormDB, zapLogger)

	e, err := httpin.NewRouter(app.CreateServer(), doc, zapLogger)
	if err != nil {
		return err
	}
	e.Logger.SetLevel(log.INFO)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	address := fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)
	serveErr := make(chan error, 1)
	go func() {
		zapLogger.Info("HTTP server listening", zap.String("address", address))
		serveErr <- e.Start(address)
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	zapLogger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

func migrateUp(config cmd.Config) error {
	db, err := migrations.Open(config.DSN())
	if err != nil {
		return err
	}
	defer db.Close()

	return migrations.Up(db)
}
