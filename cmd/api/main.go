package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/customer-crm/internal/config"
	dbpkg "github.com/BruksfildServices01/customer-crm/internal/db"
	"github.com/BruksfildServices01/customer-crm/internal/logger"
)

var configFile string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "crm-api",
		Short:        "Customer, category and contact JSON API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "path to a YAML config file (default: ./config.yaml if present)")

	root.AddCommand(newServeCmd(), newMigrateCmd(), newSeedCmd())
	return root
}

// bootstrap loads configuration and opens the logger and database shared
// by every subcommand.
func bootstrap() (*config.Config, *zap.Logger, *gorm.DB, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, nil, err
	}

	log, err := logger.New(cfg.Logger)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("init logger: %w", err)
	}

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		_ = log.Sync()
		return nil, nil, nil, err
	}

	log.Info("connected to database", zap.String("driver", cfg.DB.Driver))
	return cfg, log, db, nil
}

func closeDB(db *gorm.DB, log *zap.Logger) {
	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Warn("failed to close database", zap.Error(err))
		}
	}
}
