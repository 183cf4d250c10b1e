package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"agency-backoffice/internal/core/domain"
	"agency-backoffice/internal/core/port"
)

// InvoiceUseCase implements port.InvoiceUseCase for both ledgers.
type InvoiceUseCase struct {
	invoices  port.InvoiceRepository
	campaigns port.CampaignRepository
	invalidator
	logger *slog.Logger
	now    func() time.Time
}

func NewInvoiceUseCase(invoices port.InvoiceRepository, campaigns port.CampaignRepository, cache port.DashboardCache, logger *slog.Logger) *InvoiceUseCase {
	return &InvoiceUseCase{
		invoices:    invoices,
		campaigns:   campaigns,
		invalidator: invalidator{cache: cache, logger: logger},
		logger:      logger,
		now:         utcNow,
	}
}

var _ port.InvoiceUseCase = (*InvoiceUseCase)(nil)

func (u *InvoiceUseCase) ListCustomerInvoices(ctx context.Context, filter port.InvoiceFilter) (_ []domain.CustomerInvoice, err error) {
	ctx, span := startSpan(ctx, "customer_invoice.list")
	defer func() { endSpan(span, err) }()
	return u.invoices.ListCustomerInvoices(ctx, filter)
}

func (u *InvoiceUseCase) GetCustomerInvoice(ctx context.Context, id uuid.UUID) (_ *domain.CustomerInvoice, err error) {
	ctx, span := startSpan(ctx, "customer_invoice.get")
	defer func() { endSpan(span, err) }()
	return u.invoices.GetCustomerInvoice(ctx, id)
}

// CreateCustomerInvoice records revenue. A customer invoice must name both
// a campaign and a customer when it is created.
func (u *InvoiceUseCase) CreateCustomerInvoice(ctx context.Context, inv domain.CustomerInvoice) (_ *domain.CustomerInvoice, err error) {
	ctx, span := startSpan(ctx, "customer_invoice.create")
	defer func() { endSpan(span, err) }()

	now := u.now()
	if err = normalizeInvoice(&inv.Invoice, now); err != nil {
		return nil, err
	}
	if inv.CampaignID == nil || *inv.CampaignID == uuid.Nil {
		return nil, port.Invalid("campaign_id", "is required")
	}
	if inv.CustomerID == uuid.Nil {
		return nil, port.Invalid("customer_id", "is required")
	}
	inv.ID = uuid.New()
	inv.CreatedAt = now
	inv.UpdatedAt = now

	if err = u.invoices.CreateCustomerInvoice(ctx, &inv); err != nil {
		return nil, err
	}
	u.invalidate(ctx)
	return u.invoices.GetCustomerInvoice(ctx, inv.ID)
}

// UpdateCustomerInvoiceStatus moves the invoice to change.Status. Paid
// invoices get change.PaidDate or today; any other status clears it.
func (u *InvoiceUseCase) UpdateCustomerInvoiceStatus(ctx context.Context, id uuid.UUID, change port.StatusChange) (_ *domain.CustomerInvoice, err error) {
	ctx, span := startSpan(ctx, "customer_invoice.status")
	defer func() { endSpan(span, err) }()

	status, paid, err := u.statusChange(change)
	if err != nil {
		return nil, err
	}
	inv, err := u.invoices.SetCustomerInvoiceStatus(ctx, id, status, paid)
	if err != nil {
		return nil, err
	}
	u.invalidate(ctx)
	return inv, nil
}

func (u *InvoiceUseCase) DeleteCustomerInvoice(ctx context.Context, id uuid.UUID) (err error) {
	ctx, span := startSpan(ctx, "customer_invoice.delete")
	defer func() { endSpan(span, err) }()

	if err = u.invoices.DeleteCustomerInvoice(ctx, id); err != nil {
		return err
	}
	u.invalidate(ctx)
	return nil
}

func (u *InvoiceUseCase) ListVendorInvoices(ctx context.Context, filter port.InvoiceFilter) (_ []domain.VendorInvoice, err error) {
	ctx, span := startSpan(ctx, "vendor_invoice.list")
	defer func() { endSpan(span, err) }()
	return u.invoices.ListVendorInvoices(ctx, filter)
}

func (u *InvoiceUseCase) GetVendorInvoice(ctx context.Context, id uuid.UUID) (_ *domain.VendorInvoice, err error) {
	ctx, span := startSpan(ctx, "vendor_invoice.get")
	defer func() { endSpan(span, err) }()
	return u.invoices.GetVendorInvoice(ctx, id)
}

// CreateVendorInvoice records an expense. The campaign is optional.
func (u *InvoiceUseCase) CreateVendorInvoice(ctx context.Context, inv domain.VendorInvoice) (_ *domain.VendorInvoice, err error) {
	ctx, span := startSpan(ctx, "vendor_invoice.create")
	defer func() { endSpan(span, err) }()

	now := u.now()
	if err = normalizeInvoice(&inv.Invoice, now); err != nil {
		return nil, err
	}
	if inv.VendorID == uuid.Nil {
		return nil, port.Invalid("vendor_id", "is required")
	}
	if inv.CampaignID != nil && *inv.CampaignID == uuid.Nil {
		inv.CampaignID = nil
	}
	inv.ID = uuid.New()
	inv.CreatedAt = now
	inv.UpdatedAt = now

	if err = u.invoices.CreateVendorInvoice(ctx, &inv); err != nil {
		return nil, err
	}
	u.invalidate(ctx)
	return u.invoices.GetVendorInvoice(ctx, inv.ID)
}

func (u *InvoiceUseCase) UpdateVendorInvoiceStatus(ctx context.Context, id uuid.UUID, change port.StatusChange) (_ *domain.VendorInvoice, err error) {
	ctx, span := startSpan(ctx, "vendor_invoice.status")
	defer func() { endSpan(span, err) }()

	status, paid, err := u.statusChange(change)
	if err != nil {
		return nil, err
	}
	inv, err := u.invoices.SetVendorInvoiceStatus(ctx, id, status, paid)
	if err != nil {
		return nil, err
	}
	u.invalidate(ctx)
	return inv, nil
}

// AssignVendorInvoice moves the invoice to campaignID after checking the
// campaign exists. A nil campaignID unassigns it. Repeating the call is a
// no-op apart from updated_at.
func (u *InvoiceUseCase) AssignVendorInvoice(ctx context.Context, id uuid.UUID, campaignID *uuid.UUID) (_ *domain.VendorInvoice, err error) {
	ctx, span := startSpan(ctx, "vendor_invoice.assign")
	defer func() { endSpan(span, err) }()

	if campaignID != nil {
		if _, err = u.campaigns.GetCampaign(ctx, *campaignID); err != nil {
			return nil, err
		}
	}
	inv, err := u.invoices.SetVendorInvoiceCampaign(ctx, id, campaignID)
	if err != nil {
		return nil, err
	}
	u.invalidate(ctx)
	return inv, nil
}

func (u *InvoiceUseCase) DeleteVendorInvoice(ctx context.Context, id uuid.UUID) (err error) {
	ctx, span := startSpan(ctx, "vendor_invoice.delete")
	defer func() { endSpan(span, err) }()

	if err = u.invoices.DeleteVendorInvoice(ctx, id); err != nil {
		return err
	}
	u.invalidate(ctx)
	return nil
}

func (u *InvoiceUseCase) statusChange(change port.StatusChange) (domain.InvoiceStatus, *time.Time, error) {
	status, ok := domain.ParseInvoiceStatus(change.Status)
	if !ok {
		return "", nil, port.Invalid("status", "must be one of pending, paid, overdue")
	}
	return status, paidDateFor(status, change.PaidDate, u.now()), nil
}
