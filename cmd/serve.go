package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	httpadapter "agency-backoffice/internal/adapter/http"
	"agency-backoffice/internal/adapter/offline"
	"agency-backoffice/internal/adapter/postgres"
	redisadapter "agency-backoffice/internal/adapter/redis"
	"agency-backoffice/internal/adapter/usecase"
	"agency-backoffice/internal/core/port"
	"agency-backoffice/internal/db"
	"agency-backoffice/internal/observability"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

type repositories struct {
	campaigns port.CampaignRepository
	customers port.CustomerRepository
	vendors   port.VendorRepository
	invoices  port.InvoiceRepository
}

// runServe wires the stores, use cases and HTTP handler, then serves until
// SIGINT or SIGTERM. The process exits with 128+signal after a graceful
// shutdown.
func runServe(cmd *cobra.Command, _ []string) error {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	shutdownTracing := observability.InitTracing(ctx, logger, cfg.Env, cfg.Otel)
	defer func() {
		sctx, scancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer scancel()
		if err := shutdownTracing(sctx); err != nil {
			logger.Error("tracer shutdown error", slog.Any("error", err))
		}
	}()

	var repos repositories
	online := cfg.Psql.Configured()
	if online {
		if cfg.Psql.RunMigrations {
			if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
			} else {
				logger.Info("migrations applied successfully")
			}
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return fmt.Errorf("database connection: %w", err)
		}
		defer pool.Close()
		repos = repositories{
			campaigns: postgres.NewCampaignRepository(pool),
			customers: postgres.NewCustomerRepository(pool),
			vendors:   postgres.NewVendorRepository(pool),
			invoices:  postgres.NewInvoiceRepository(pool),
		}
	} else {
		logger.Warn("PSQL_ADDRESS not set, serving the offline store; writes will fail")
		store := offline.New()
		repos = repositories{campaigns: store, customers: store, vendors: store, invoices: store}
	}

	var cache port.DashboardCache = redisadapter.Nop{}
	if cfg.Redis.Enabled() {
		rc, err := redisadapter.NewDashboardCache(ctx, cfg.Redis)
		if err != nil {
			logger.Warn("dashboard cache disabled", slog.Any("error", err))
		} else {
			defer rc.Close()
			cache = rc
		}
	}

	handler := httpadapter.NewHandler(httpadapter.Services{
		Campaigns:   usecase.NewCampaignUseCase(repos.campaigns, repos.invoices, cache, logger),
		Customers:   usecase.NewCustomerUseCase(repos.customers, cache, logger),
		Vendors:     usecase.NewVendorUseCase(repos.vendors, cache, logger),
		Invoices:    usecase.NewInvoiceUseCase(repos.invoices, repos.campaigns, cache, logger),
		Dashboard:   usecase.NewDashboardUseCase(repos.campaigns, repos.invoices, cache, logger),
		StoreOnline: online,
	}, logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	var received os.Signal
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)), slog.Bool("store_online", online))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		select {
		case received = <-sigs:
			logger.Info("shutdown signal received", slog.String("signal", received.String()))
		case <-gctx.Done():
		}
		sctx, scancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer scancel()
		if err := srv.Shutdown(sctx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		logger.Info("server gracefully stopped")
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}
	if sig, ok := received.(syscall.Signal); ok {
		return exitCode(128 + int(sig))
	}
	return nil
}
