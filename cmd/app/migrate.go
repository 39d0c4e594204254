package main

import (
	"errors"

	"dispatch/cmd"
	"dispatch/internal/adapters/out/postgres"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the PostgreSQL schema",
	RunE: func(c *cobra.Command, _ []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		if cfg.StoreDriver != cmd.StoreDriverPostgres {
			return errors.New("migrate needs STORE_DRIVER=postgres")
		}

		gormDB, err := cmd.OpenDatabase(cfg)
		if err != nil {
			return err
		}
		defer func() {
			if sqlDB, err := gormDB.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}()

		if err = postgres.Migrate(c.Context(), gormDB); err != nil {
			return err
		}
		logger.Info("schema migrated", "database", cfg.DBName)
		return nil
	},
}
