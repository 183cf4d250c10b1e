// Package offline provides a record store used when no database is
// configured. Every listing is empty and every write fails with
// port.ErrStoreUnavailable, so the service can still boot and serve an
// empty dashboard.
package offline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"agency-backoffice/internal/core/domain"
	"agency-backoffice/internal/core/port"
	"agency-backoffice/internal/core/report"
)

// Store implements every repository port without a backing database.
type Store struct{}

// New returns an offline store.
func New() *Store { return &Store{} }

var (
	_ port.CampaignRepository = (*Store)(nil)
	_ port.CustomerRepository = (*Store)(nil)
	_ port.VendorRepository   = (*Store)(nil)
	_ port.InvoiceRepository  = (*Store)(nil)
)

func notFound(entity string) error {
	return fmt.Errorf("%s: %w", entity, port.ErrNotFound)
}

func unavailable(op string) error {
	return fmt.Errorf("%s: %w", op, port.ErrStoreUnavailable)
}

func (s *Store) ListCampaigns(context.Context, port.CampaignFilter) ([]domain.Campaign, error) {
	return []domain.Campaign{}, nil
}

func (s *Store) GetCampaign(context.Context, uuid.UUID) (*domain.Campaign, error) {
	return nil, notFound("campaign")
}

func (s *Store) CreateCampaign(context.Context, *domain.Campaign) error {
	return unavailable("create campaign")
}

func (s *Store) UpdateCampaign(context.Context, *domain.Campaign) error {
	return unavailable("update campaign")
}

func (s *Store) DeleteCampaign(context.Context, uuid.UUID) error {
	return unavailable("delete campaign")
}

func (s *Store) CampaignAmounts(context.Context) (map[uuid.UUID]report.Amounts, error) {
	return map[uuid.UUID]report.Amounts{}, nil
}

func (s *Store) ListCustomers(context.Context, port.PartyFilter) ([]domain.Customer, error) {
	return []domain.Customer{}, nil
}

func (s *Store) GetCustomer(context.Context, uuid.UUID) (*domain.Customer, error) {
	return nil, notFound("customer")
}

func (s *Store) CreateCustomer(context.Context, *domain.Customer) error {
	return unavailable("create customer")
}

func (s *Store) UpdateCustomer(context.Context, *domain.Customer) error {
	return unavailable("update customer")
}

func (s *Store) DeleteCustomer(context.Context, uuid.UUID) error {
	return unavailable("delete customer")
}

func (s *Store) CountCustomerInvoices(context.Context, uuid.UUID) (int, error) {
	return 0, nil
}

func (s *Store) ListVendors(context.Context, port.PartyFilter) ([]domain.Vendor, error) {
	return []domain.Vendor{}, nil
}

func (s *Store) GetVendor(context.Context, uuid.UUID) (*domain.Vendor, error) {
	return nil, notFound("vendor")
}

func (s *Store) CreateVendor(context.Context, *domain.Vendor) error {
	return unavailable("create vendor")
}

func (s *Store) UpdateVendor(context.Context, *domain.Vendor) error {
	return unavailable("update vendor")
}

func (s *Store) DeleteVendor(context.Context, uuid.UUID) error {
	return unavailable("delete vendor")
}

func (s *Store) CountVendorInvoices(context.Context, uuid.UUID) (int, error) {
	return 0, nil
}

func (s *Store) ListCustomerInvoices(context.Context, port.InvoiceFilter) ([]domain.CustomerInvoice, error) {
	return []domain.CustomerInvoice{}, nil
}

func (s *Store) GetCustomerInvoice(context.Context, uuid.UUID) (*domain.CustomerInvoice, error) {
	return nil, notFound("customer invoice")
}

func (s *Store) CreateCustomerInvoice(context.Context, *domain.CustomerInvoice) error {
	return unavailable("create customer invoice")
}

func (s *Store) SetCustomerInvoiceStatus(context.Context, uuid.UUID, domain.InvoiceStatus, *time.Time) (*domain.CustomerInvoice, error) {
	return nil, unavailable("update customer invoice status")
}

func (s *Store) DeleteCustomerInvoice(context.Context, uuid.UUID) error {
	return unavailable("delete customer invoice")
}

func (s *Store) ListVendorInvoices(context.Context, port.InvoiceFilter) ([]domain.VendorInvoice, error) {
	return []domain.VendorInvoice{}, nil
}

func (s *Store) GetVendorInvoice(context.Context, uuid.UUID) (*domain.VendorInvoice, error) {
	return nil, notFound("vendor invoice")
}

func (s *Store) CreateVendorInvoice(context.Context, *domain.VendorInvoice) error {
	return unavailable("create vendor invoice")
}

func (s *Store) SetVendorInvoiceStatus(context.Context, uuid.UUID, domain.InvoiceStatus, *time.Time) (*domain.VendorInvoice, error) {
	return nil, unavailable("update vendor invoice status")
}

func (s *Store) SetVendorInvoiceCampaign(context.Context, uuid.UUID, *uuid.UUID) (*domain.VendorInvoice, error) {
	return nil, unavailable("assign vendor invoice")
}

func (s *Store) DeleteVendorInvoice(context.Context, uuid.UUID) error {
	return unavailable("delete vendor invoice")
}
