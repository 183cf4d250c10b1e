package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"agency-backoffice/db/migrations"
	"agency-backoffice/internal/db"
)

var migrateDown bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or roll back database migrations",
	Long: `Applies every pending migration from the embedded migration set.
With --down every applied migration is rolled back instead.`,
	RunE: runMigrate,
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current schema version",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := requireDatabase(); err != nil {
			return err
		}
		version, dirty, err := db.SchemaVersion(cfg.Psql.Addr.String())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "version %d (latest %d), dirty=%t\n", version, migrations.Version, dirty)
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDown, "down", false, "roll back every applied migration")
	migrateCmd.AddCommand(migrateVersionCmd)
}

func runMigrate(_ *cobra.Command, _ []string) error {
	if err := requireDatabase(); err != nil {
		return err
	}
	addr := cfg.Psql.Addr.String()
	if migrateDown {
		if err := db.Rollback(addr); err != nil {
			return fmt.Errorf("rollback: %w", err)
		}
		logger.Info("migrations rolled back")
		return nil
	}
	if err := db.Migrate(addr); err != nil {
		if errors.Is(err, db.ErrDirty) {
			logger.Error("schema is dirty, fix it manually before migrating", slog.Any("error", err))
		}
		return fmt.Errorf("migrate: %w", err)
	}
	logger.Info("migrations applied successfully")
	return nil
}

func requireDatabase() error {
	if !cfg.Psql.Configured() {
		return errors.New("PSQL_ADDRESS is required")
	}
	return nil
}
