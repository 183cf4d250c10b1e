package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"agency-backoffice/internal/core/domain"
	"agency-backoffice/internal/core/port"
	"agency-backoffice/internal/core/report"
)

// CampaignUseCase implements port.CampaignUseCase.
type CampaignUseCase struct {
	campaigns port.CampaignRepository
	invoices  port.InvoiceRepository
	invalidator
	logger *slog.Logger
	now    func() time.Time
}

// NewCampaignUseCase wires the campaign use case. cache must not be nil;
// pass a no-op cache when none is configured.
func NewCampaignUseCase(campaigns port.CampaignRepository, invoices port.InvoiceRepository, cache port.DashboardCache, logger *slog.Logger) *CampaignUseCase {
	return &CampaignUseCase{
		campaigns:   campaigns,
		invoices:    invoices,
		invalidator: invalidator{cache: cache, logger: logger},
		logger:      logger,
		now:         utcNow,
	}
}

var _ port.CampaignUseCase = (*CampaignUseCase)(nil)

// List returns campaigns with their financials. Sums come from one grouped
// query instead of a per-campaign invoice fetch.
func (u *CampaignUseCase) List(ctx context.Context, filter port.CampaignFilter) (_ []port.CampaignSummary, err error) {
	ctx, span := startSpan(ctx, "campaign.list")
	defer func() { endSpan(span, err) }()

	campaigns, err := u.campaigns.ListCampaigns(ctx, filter)
	if err != nil {
		return nil, err
	}
	amounts, err := u.campaigns.CampaignAmounts(ctx)
	if err != nil {
		return nil, err
	}
	financials := report.ProfitabilityByCampaign(campaigns, amounts)

	out := make([]port.CampaignSummary, len(campaigns))
	for i, c := range campaigns {
		out[i] = port.CampaignSummary{Campaign: c, Financials: financials[c.ID]}
	}
	return out, nil
}

func (u *CampaignUseCase) Get(ctx context.Context, id uuid.UUID) (_ *port.CampaignDetail, err error) {
	ctx, span := startSpan(ctx, "campaign.get")
	defer func() { endSpan(span, err) }()

	c, err := u.campaigns.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	customer, vendor, err := u.ledgers(ctx, id)
	if err != nil {
		return nil, err
	}
	return &port.CampaignDetail{
		Campaign:         *c,
		Financials:       report.CampaignProfitability(customer, vendor),
		CustomerInvoices: customer,
		VendorInvoices:   vendor,
	}, nil
}

func (u *CampaignUseCase) Profitability(ctx context.Context, id uuid.UUID) (_ *report.CampaignFinancials, err error) {
	ctx, span := startSpan(ctx, "campaign.profitability")
	defer func() { endSpan(span, err) }()

	if _, err = u.campaigns.GetCampaign(ctx, id); err != nil {
		return nil, err
	}
	customer, vendor, err := u.ledgers(ctx, id)
	if err != nil {
		return nil, err
	}
	f := report.CampaignProfitability(customer, vendor)
	return &f, nil
}

// ledgers fetches both invoice ledgers of one campaign concurrently.
func (u *CampaignUseCase) ledgers(ctx context.Context, id uuid.UUID) ([]domain.CustomerInvoice, []domain.VendorInvoice, error) {
	var (
		customer []domain.CustomerInvoice
		vendor   []domain.VendorInvoice
	)
	filter := port.InvoiceFilter{CampaignID: &id}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		customer, err = u.invoices.ListCustomerInvoices(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		vendor, err = u.invoices.ListVendorInvoices(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return customer, vendor, nil
}

func (u *CampaignUseCase) Create(ctx context.Context, c domain.Campaign) (_ *domain.Campaign, err error) {
	ctx, span := startSpan(ctx, "campaign.create")
	defer func() { endSpan(span, err) }()

	if err = normalizeCampaign(&c); err != nil {
		return nil, err
	}
	now := u.now()
	c.ID = uuid.New()
	c.CreatedAt = now
	c.UpdatedAt = now

	if err = u.campaigns.CreateCampaign(ctx, &c); err != nil {
		return nil, err
	}
	u.invalidate(ctx)
	u.logger.Info("campaign created", slog.String("id", c.ID.String()))
	return &c, nil
}

func (u *CampaignUseCase) Update(ctx context.Context, id uuid.UUID, patch port.CampaignPatch) (_ *domain.Campaign, err error) {
	ctx, span := startSpan(ctx, "campaign.update")
	defer func() { endSpan(span, err) }()

	c, err := u.campaigns.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	applyCampaignPatch(c, patch)
	if err = normalizeCampaign(c); err != nil {
		return nil, err
	}
	c.UpdatedAt = u.now()

	if err = u.campaigns.UpdateCampaign(ctx, c); err != nil {
		return nil, err
	}
	u.invalidate(ctx)
	return c, nil
}

// Delete removes the campaign. Invoices that referenced it are kept and
// become unassigned.
func (u *CampaignUseCase) Delete(ctx context.Context, id uuid.UUID) (err error) {
	ctx, span := startSpan(ctx, "campaign.delete")
	defer func() { endSpan(span, err) }()

	if err = u.campaigns.DeleteCampaign(ctx, id); err != nil {
		return err
	}
	u.invalidate(ctx)
	u.logger.Info("campaign deleted", slog.String("id", id.String()))
	return nil
}

func applyCampaignPatch(c *domain.Campaign, p port.CampaignPatch) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.PONumber != nil {
		c.PONumber = *p.PONumber
	}
	if p.StartDate != nil {
		c.StartDate = *p.StartDate
	}
	switch {
	case p.ClearEndDate:
		c.EndDate = nil
	case p.EndDate != nil:
		end := *p.EndDate
		c.EndDate = &end
	}
	if p.Budget != nil {
		c.Budget = *p.Budget
	}
	if p.Status != nil {
		c.Status = domain.CampaignStatus(*p.Status)
	}
}

// normalizeCampaign validates c and normalises it in place. A blank status
// defaults to planned.
func normalizeCampaign(c *domain.Campaign) error {
	name, err := required("name", c.Name)
	if err != nil {
		return err
	}
	c.Name = name
	c.Description = strings.TrimSpace(c.Description)
	c.PONumber = strings.TrimSpace(c.PONumber)

	if c.StartDate.IsZero() {
		return port.Invalid("start_date", "is required")
	}
	c.StartDate = domain.Day(c.StartDate)
	c.EndDate = dayPtr(c.EndDate)
	if c.EndDate != nil && c.EndDate.Before(c.StartDate) {
		return port.Invalid("end_date", "must not be before start_date")
	}

	if c.Budget.IsNegative() {
		return port.Invalid("budget", "must not be negative")
	}

	status := domain.CampaignPlanned
	if strings.TrimSpace(string(c.Status)) != "" {
		var ok bool
		if status, ok = domain.ParseCampaignStatus(string(c.Status)); !ok {
			return port.Invalid("status", "must be one of planned, active, completed")
		}
	}
	c.Status = status
	return nil
}
