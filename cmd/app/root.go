package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"moving/cmd"
	"moving/internal/adapters/out/postgres"
	"moving/internal/pkg/logging"

	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var (
	envFile string
	port    string

	config cmd.Config
	logger *slog.Logger
)

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "moving",
		Short:         "Moving estimate wizard",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			var err error
			config, err = cmd.LoadConfig(envFile)
			if err != nil {
				return err
			}
			if port != "" {
				config.HTTPPort = port
			}
			logger = logging.New(os.Stderr, config.LogFormat, config.LogLevel)
			slog.SetDefault(logger)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "file with environment variables")
	root.AddCommand(serveCmd(), migrateCmd())
	return root
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and reference data",
		RunE: func(c *cobra.Command, _ []string) error {
			db, err := openDatabase(config)
			if err != nil {
				return err
			}
			if sqlDB, dbErr := db.DB(); dbErr == nil {
				defer sqlDB.Close()
			}

			if err = migrate(c.Context(), db); err != nil {
				return err
			}
			logger.InfoContext(c.Context(), "Migrations applied")
			return nil
		},
	}
}

func openDatabase(cfg cmd.Config) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database %s@%s:%s: %w", cfg.DBName, cfg.DBHost, cfg.DBPort, err)
	}
	return db, nil
}

func migrate(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return postgres.Migrate(ctx, sqlDB)
}
