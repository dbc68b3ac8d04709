package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	dbpkg "github.com/BruksfildServices01/customer-crm/internal/db"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer log.Sync()
			defer closeDB(db, log)

			if err := dbpkg.Migrate(db); err != nil {
				log.Error("migration failed", zap.Error(err))
				return err
			}
			log.Info("database migrated")
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the default customer categories into an empty table",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer log.Sync()
			defer closeDB(db, log)

			n, err := dbpkg.SeedCategories(cmd.Context(), db)
			if err != nil {
				log.Error("seeding failed", zap.Error(err))
				return err
			}
			log.Info("categories seeded", zap.Int("count", n))
			return nil
		},
	}
}
