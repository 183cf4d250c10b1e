package port

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"agency-backoffice/internal/core/domain"
	"agency-backoffice/internal/core/report"
)

// CampaignUseCase is the inbound port for campaign operations.
type CampaignUseCase interface {
	// List returns campaigns newest first, each with its financials.
	List(ctx context.Context, filter CampaignFilter) ([]CampaignSummary, error)
	// Get returns a campaign with its financials and invoices.
	Get(ctx context.Context, id uuid.UUID) (*CampaignDetail, error)
	Create(ctx context.Context, c domain.Campaign) (*domain.Campaign, error)
	Update(ctx context.Context, id uuid.UUID, patch CampaignPatch) (*domain.Campaign, error)
	// Delete removes the campaign. Its invoices survive, unassigned.
	Delete(ctx context.Context, id uuid.UUID) error
	Profitability(ctx context.Context, id uuid.UUID) (*report.CampaignFinancials, error)
}

// CustomerUseCase is the inbound port for customer operations.
type CustomerUseCase interface {
	List(ctx context.Context, filter PartyFilter) ([]domain.Customer, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	Create(ctx context.Context, c domain.Customer) (*domain.Customer, error)
	Update(ctx context.Context, id uuid.UUID, patch CustomerPatch) (*domain.Customer, error)
	// Delete refuses with a *DependentsError while invoices reference the
	// customer.
	Delete(ctx context.Context, id uuid.UUID) error
}

// VendorUseCase is the inbound port for vendor operations.
type VendorUseCase interface {
	List(ctx context.Context, filter PartyFilter) ([]domain.Vendor, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Vendor, error)
	Create(ctx context.Context, v domain.Vendor) (*domain.Vendor, error)
	Update(ctx context.Context, id uuid.UUID, patch VendorPatch) (*domain.Vendor, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// InvoiceUseCase is the inbound port for both invoice ledgers.
type InvoiceUseCase interface {
	ListCustomerInvoices(ctx context.Context, filter InvoiceFilter) ([]domain.CustomerInvoice, error)
	GetCustomerInvoice(ctx context.Context, id uuid.UUID) (*domain.CustomerInvoice, error)
	CreateCustomerInvoice(ctx context.Context, inv domain.CustomerInvoice) (*domain.CustomerInvoice, error)
	UpdateCustomerInvoiceStatus(ctx context.Context, id uuid.UUID, change StatusChange) (*domain.CustomerInvoice, error)
	DeleteCustomerInvoice(ctx context.Context, id uuid.UUID) error

	ListVendorInvoices(ctx context.Context, filter InvoiceFilter) ([]domain.VendorInvoice, error)
	GetVendorInvoice(ctx context.Context, id uuid.UUID) (*domain.VendorInvoice, error)
	CreateVendorInvoice(ctx context.Context, inv domain.VendorInvoice) (*domain.VendorInvoice, error)
	UpdateVendorInvoiceStatus(ctx context.Context, id uuid.UUID, change StatusChange) (*domain.VendorInvoice, error)
	// AssignVendorInvoice moves a vendor invoice to campaignID, which must
	// exist, or unassigns it when campaignID is nil.
	AssignVendorInvoice(ctx context.Context, id uuid.UUID, campaignID *uuid.UUID) (*domain.VendorInvoice, error)
	DeleteVendorInvoice(ctx context.Context, id uuid.UUID) error
}

// DashboardUseCase serves the summary dashboard.
type DashboardUseCase interface {
	Summary(ctx context.Context) (*report.Dashboard, error)
}

// CampaignSummary is a campaign list row.
type CampaignSummary struct {
	Campaign   domain.Campaign
	Financials report.CampaignFinancials
}

// CampaignDetail is a campaign with everything billed against it.
type CampaignDetail struct {
	Campaign         domain.Campaign
	Financials       report.CampaignFinancials
	CustomerInvoices []domain.CustomerInvoice
	VendorInvoices   []domain.VendorInvoice
}

// CampaignPatch carries a partial campaign update; nil fields are left
// unchanged. ClearEndDate removes the end date and wins over EndDate.
type CampaignPatch struct {
	Name         *string
	Description  *string
	PONumber     *string
	StartDate    *time.Time
	EndDate      *time.Time
	ClearEndDate bool
	Budget       *decimal.Decimal
	Status       *string
}

// CustomerPatch carries a partial customer update.
type CustomerPatch struct {
	Name    *string
	Email   *string
	Phone   *string
	Company *string
}

// VendorPatch carries a partial vendor update.
type VendorPatch struct {
	Name        *string
	Email       *string
	Phone       *string
	ServiceType *string
}

// StatusChange moves an invoice to Status. PaidDate is only meaningful for
// paid; when it is nil the current date is used.
type StatusChange struct {
	Status   string
	PaidDate *time.Time
}
