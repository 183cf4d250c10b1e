package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"agency-backoffice/internal/core/domain"
	"agency-backoffice/internal/core/report"
)

// CampaignRepository is the outbound port for campaign rows. Get methods
// return ErrNotFound for missing ids.
type CampaignRepository interface {
	// ListCampaigns returns campaigns newest first, narrowed by filter.
	ListCampaigns(ctx context.Context, filter CampaignFilter) ([]domain.Campaign, error)
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	UpdateCampaign(ctx context.Context, c *domain.Campaign) error
	// DeleteCampaign clears the campaign reference on every customer and
	// vendor invoice and deletes the campaign, atomically.
	DeleteCampaign(ctx context.Context, id uuid.UUID) error
	// CampaignAmounts returns revenue and expense sums keyed by campaign id.
	// Campaigns without invoices may be absent.
	CampaignAmounts(ctx context.Context) (map[uuid.UUID]report.Amounts, error)
}

// CustomerRepository is the outbound port for customers.
type CustomerRepository interface {
	ListCustomers(ctx context.Context, filter PartyFilter) ([]domain.Customer, error)
	GetCustomer(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	CreateCustomer(ctx context.Context, c *domain.Customer) error
	UpdateCustomer(ctx context.Context, c *domain.Customer) error
	// DeleteCustomer removes the customer. If invoices still reference it
	// the store refuses and a *DependentsError is returned.
	DeleteCustomer(ctx context.Context, id uuid.UUID) error
	CountCustomerInvoices(ctx context.Context, customerID uuid.UUID) (int, error)
}

// VendorRepository is the outbound port for vendors.
type VendorRepository interface {
	ListVendors(ctx context.Context, filter PartyFilter) ([]domain.Vendor, error)
	GetVendor(ctx context.Context, id uuid.UUID) (*domain.Vendor, error)
	CreateVendor(ctx context.Context, v *domain.Vendor) error
	UpdateVendor(ctx context.Context, v *domain.Vendor) error
	// DeleteVendor removes the vendor, refusing with a *DependentsError
	// while vendor invoices reference it.
	DeleteVendor(ctx context.Context, id uuid.UUID) error
	CountVendorInvoices(ctx context.Context, vendorID uuid.UUID) (int, error)
}

// InvoiceRepository is the outbound port for both invoice ledgers. Reads
// flatten the related campaign, customer and vendor names into the rows.
type InvoiceRepository interface {
	ListCustomerInvoices(ctx context.Context, filter InvoiceFilter) ([]domain.CustomerInvoice, error)
	GetCustomerInvoice(ctx context.Context, id uuid.UUID) (*domain.CustomerInvoice, error)
	CreateCustomerInvoice(ctx context.Context, inv *domain.CustomerInvoice) error
	// SetCustomerInvoiceStatus writes status and paidDate together and
	// returns the updated row.
	SetCustomerInvoiceStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus, paidDate *time.Time) (*domain.CustomerInvoice, error)
	DeleteCustomerInvoice(ctx context.Context, id uuid.UUID) error

	ListVendorInvoices(ctx context.Context, filter InvoiceFilter) ([]domain.VendorInvoice, error)
	GetVendorInvoice(ctx context.Context, id uuid.UUID) (*domain.VendorInvoice, error)
	CreateVendorInvoice(ctx context.Context, inv *domain.VendorInvoice) error
	SetVendorInvoiceStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus, paidDate *time.Time) (*domain.VendorInvoice, error)
	// SetVendorInvoiceCampaign assigns the invoice to campaignID, or
	// unassigns it when campaignID is nil, and returns the updated row.
	SetVendorInvoiceCampaign(ctx context.Context, id uuid.UUID, campaignID *uuid.UUID) (*domain.VendorInvoice, error)
	DeleteVendorInvoice(ctx context.Context, id uuid.UUID) error
}

// DashboardCache stores the last computed dashboard summary. Every
// Invalidate advances a generation counter, and Set only stores a summary
// computed under the current generation, so a summary loaded before a
// mutation is never cached after it.
type DashboardCache interface {
	// Get returns the cached summary, nil on a miss, together with the
	// current generation.
	Get(ctx context.Context) (*report.Dashboard, int64, error)
	// Set stores d if the generation is still gen and reports whether it did.
	Set(ctx context.Context, gen int64, d *report.Dashboard) (bool, error)
	Invalidate(ctx context.Context) error
}

// CampaignFilter narrows campaign listings. Query matches name,
// description and purchase order number, case-insensitively.
type CampaignFilter struct {
	Query string
}

// PartyFilter narrows customer and vendor listings. For customers Query
// matches name, email and company; for vendors name, email and service type.
type PartyFilter struct {
	Query string
}

// InvoiceFilter narrows invoice listings. PartyID is the customer id for
// customer invoices and the vendor id for vendor invoices. Unassigned
// selects invoices without a campaign and takes precedence over CampaignID.
type InvoiceFilter struct {
	Query      string
	CampaignID *uuid.UUID
	PartyID    *uuid.UUID
	Status     *domain.InvoiceStatus
	Unassigned bool
}
