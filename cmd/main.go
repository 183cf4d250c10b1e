package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"agency-backoffice/internal/config"
)

var (
	cfg    config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "agency-backoffice",
	Short: "Back office for a marketing agency",
	Long: `agency-backoffice keeps campaigns, customers, vendors and both invoice
ledgers, and reports campaign profitability and a financial dashboard.

Configuration is read from the environment (HTTP_*, LOG_*, PSQL_*, REDIS_*,
OTEL_*). Without PSQL_ADDRESS the server starts against an empty read-only
store.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		logger = newLogger(cfg)
		slog.SetDefault(logger)
		return nil
	},
}

// exitCode lets a command finish with a specific process status.
type exitCode int

func (c exitCode) Error() string { return fmt.Sprintf("exit status %d", int(c)) }

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

func main() {
	os.Exit(status(rootCmd.Execute(), os.Stderr))
}

// status maps the result of a command to a process exit status. An exitCode
// is returned as is without a message.
func status(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	var code exitCode
	if errors.As(err, &code) {
		return int(code)
	}
	fmt.Fprintln(stderr, "Error:", err)
	return 1
}

func newLogger(cfg config.Config) *slog.Logger {
	return slog.New(cfg.Log.Handler(os.Stdout))
}
