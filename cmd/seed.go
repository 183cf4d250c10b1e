package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"agency-backoffice/internal/db"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo customers, vendors, campaigns and invoices",
	Long: `Inserts a fixed demo data set. Rows use deterministic ids, so running
seed twice leaves the data unchanged.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := requireDatabase(); err != nil {
			return err
		}
		pool, err := db.NewPostgresPool(cmd.Context(), cfg.Psql)
		if err != nil {
			return fmt.Errorf("database connection: %w", err)
		}
		defer pool.Close()
		if err := db.Seed(cmd.Context(), pool); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		logger.Info("demo data loaded")
		return nil
	},
}
