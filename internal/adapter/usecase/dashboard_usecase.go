package usecase

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"agency-backoffice/internal/core/domain"
	"agency-backoffice/internal/core/port"
	"agency-backoffice/internal/core/report"
)

// DashboardUseCase implements port.DashboardUseCase.
type DashboardUseCase struct {
	campaigns port.CampaignRepository
	invoices  port.InvoiceRepository
	cache     port.DashboardCache
	logger    *slog.Logger
	now       func() time.Time
}

func NewDashboardUseCase(campaigns port.CampaignRepository, invoices port.InvoiceRepository, cache port.DashboardCache, logger *slog.Logger) *DashboardUseCase {
	return &DashboardUseCase{
		campaigns: campaigns,
		invoices:  invoices,
		cache:     cache,
		logger:    logger,
		now:       utcNow,
	}
}

var _ port.DashboardUseCase = (*DashboardUseCase)(nil)

// Summary returns the cached dashboard if present. Otherwise it loads
// campaigns and both ledgers concurrently, builds the summary and caches it
// under the generation read before loading, so a mutation that lands in
// between keeps the result out of the cache. Cache errors degrade to a
// recompute.
func (u *DashboardUseCase) Summary(ctx context.Context) (_ *report.Dashboard, err error) {
	ctx, span := startSpan(ctx, "dashboard.summary")
	defer func() { endSpan(span, err) }()

	cacheable := true
	cached, gen, err := u.cache.Get(ctx)
	if err != nil {
		u.logger.Warn("dashboard cache read failed", slog.Any("error", err))
		cacheable = false
		err = nil
	}
	if cached != nil {
		return cached, nil
	}

	var (
		campaigns []domain.Campaign
		customer  []domain.CustomerInvoice
		vendor    []domain.VendorInvoice
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		campaigns, err = u.campaigns.ListCampaigns(gctx, port.CampaignFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		customer, err = u.invoices.ListCustomerInvoices(gctx, port.InvoiceFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		vendor, err = u.invoices.ListVendorInvoices(gctx, port.InvoiceFilter{})
		return err
	})
	if err = g.Wait(); err != nil {
		return nil, err
	}

	d := report.BuildDashboard(campaigns, customer, vendor, u.now())
	if !cacheable {
		return &d, nil
	}
	stored, err := u.cache.Set(ctx, gen, &d)
	switch {
	case err != nil:
		u.logger.Warn("dashboard cache write failed", slog.Any("error", err))
	case !stored:
		u.logger.Debug("dashboard changed while computing, not cached")
	}
	return &d, nil
}
