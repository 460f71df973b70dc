package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"moving/cmd"

	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var skipMigrations bool

	command := &cobra.Command{
		Use:   "serve",
		Short: "Run the estimate wizard web server",
		RunE: func(c *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(c.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, skipMigrations)
		},
	}

	command.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides HTTP_PORT)")
	command.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "do not apply migrations on start")
	return command
}

func serve(ctx context.Context, skipMigrations bool) error {
	db, err := openDatabase(config)
	if err != nil {
		return err
	}
	if !skipMigrations {
		if err = migrate(ctx, db); err != nil {
			return err
		}
	}

	app := cmd.NewCompositionRoot(config, db, logger)
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.Error("Failed to close connections", "error", closeErr)
		}
	}()

	e, err := app.CreateEcho(ctx)
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server started", "port", config.HTTPPort)
		serverErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort))
	}()

	select {
	case err = <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
