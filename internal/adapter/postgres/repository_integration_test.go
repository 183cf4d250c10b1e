package postgres

import (
	"context"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agency-backoffice/internal/config/configs"
	"agency-backoffice/internal/core/domain"
	"agency-backoffice/internal/core/port"
	"agency-backoffice/internal/db"
)

// testPool connects to PSQL_TEST_ADDRESS, migrates it and empties every
// table. Tests are skipped when the variable is unset.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	addr := os.Getenv("PSQL_TEST_ADDRESS")
	if addr == "" {
		t.Skip("PSQL_TEST_ADDRESS not set")
	}
	u, err := url.Parse(addr)
	require.NoError(t, err)

	require.NoError(t, db.Migrate(addr))

	ctx := context.Background()
	pool, err := db.NewPostgresPool(ctx, configs.Postgres{Addr: *u})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE customer_invoices, vendor_invoices, campaigns, customers, vendors`)
	require.NoError(t, err)
	return pool
}

type fixture struct {
	campaigns *CampaignRepository
	customers *CustomerRepository
	vendors   *VendorRepository
	invoices  *InvoiceRepository
}

func newFixture(t *testing.T) fixture {
	pool := testPool(t)
	return fixture{
		campaigns: NewCampaignRepository(pool),
		customers: NewCustomerRepository(pool),
		vendors:   NewVendorRepository(pool),
		invoices:  NewInvoiceRepository(pool),
	}
}

var today = domain.Day(time.Now())

func (f fixture) campaign(t *testing.T, name string) domain.Campaign {
	t.Helper()
	c := domain.Campaign{
		ID:        uuid.New(),
		Name:      name,
		StartDate: today,
		Budget:    decimal.RequireFromString("5000"),
		Status:    domain.CampaignActive,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, f.campaigns.CreateCampaign(context.Background(), &c))
	return c
}

func (f fixture) customer(t *testing.T, name string) domain.Customer {
	t.Helper()
	c := domain.Customer{ID: uuid.New(), Name: name, Company: name + " Inc", CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC()}
	require.NoError(t, f.customers.CreateCustomer(context.Background(), &c))
	return c
}

func (f fixture) vendor(t *testing.T, name, serviceType string) domain.Vendor {
	t.Helper()
	v := domain.Vendor{ID: uuid.New(), Name: name, ServiceType: serviceType, CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC()}
	require.NoError(t, f.vendors.CreateVendor(context.Background(), &v))
	return v
}

func invoiceBase(number, amount string, campaign *uuid.UUID) domain.Invoice {
	return domain.Invoice{
		ID:         uuid.New(),
		Number:     number,
		Amount:     decimal.RequireFromString(amount),
		Status:     domain.InvoicePending,
		IssueDate:  today,
		DueDate:    today.AddDate(0, 0, 30),
		CampaignID: campaign,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}
}

func TestDeleteCampaignDetachesInvoices(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	camp := f.campaign(t, "Spring launch")
	cust := f.customer(t, "Acme")
	vend := f.vendor(t, "Printers", "Print")

	ci := domain.CustomerInvoice{Invoice: invoiceBase("INV-1", "1000", &camp.ID), CustomerID: cust.ID}
	require.NoError(t, f.invoices.CreateCustomerInvoice(ctx, &ci))
	vi := domain.VendorInvoice{Invoice: invoiceBase("V-1", "400", &camp.ID), VendorID: vend.ID}
	require.NoError(t, f.invoices.CreateVendorInvoice(ctx, &vi))

	amounts, err := f.campaigns.CampaignAmounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1000", amounts[camp.ID].Revenue.String())
	assert.Equal(t, "400", amounts[camp.ID].Expenses.String())

	require.NoError(t, f.campaigns.DeleteCampaign(ctx, camp.ID))

	_, err = f.campaigns.GetCampaign(ctx, camp.ID)
	assert.ErrorIs(t, err, port.ErrNotFound)

	gotCI, err := f.invoices.GetCustomerInvoice(ctx, ci.ID)
	require.NoError(t, err)
	assert.Nil(t, gotCI.CampaignID)
	assert.Equal(t, "", gotCI.CampaignName)

	gotVI, err := f.invoices.GetVendorInvoice(ctx, vi.ID)
	require.NoError(t, err)
	assert.Nil(t, gotVI.CampaignID)

	assert.ErrorIs(t, f.campaigns.DeleteCampaign(ctx, camp.ID), port.ErrNotFound)
}

func TestDeleteCampaignWaitsForAssignment(t *testing.T) {
	pool := testPool(t)
	campaigns := NewCampaignRepository(pool)
	ctx := context.Background()

	camp := domain.Campaign{
		ID: uuid.New(), Name: "Autumn", StartDate: today, Budget: decimal.RequireFromString("100"),
		Status: domain.CampaignActive, CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, campaigns.CreateCampaign(ctx, &camp))

	// an invoice insert or update referencing the campaign holds this lock
	// until it commits
	assign, err := pool.Begin(ctx)
	require.NoError(t, err)
	_, err = assign.Exec(ctx, `SELECT id FROM campaigns WHERE id = $1 FOR KEY SHARE`, camp.ID)
	require.NoError(t, err)

	waitCtx, cancel := context.WithTimeout(ctx, 300*time.Millisecond)
	defer cancel()
	assert.Error(t, campaigns.DeleteCampaign(waitCtx, camp.ID))

	require.NoError(t, assign.Rollback(ctx))
	_, err = campaigns.GetCampaign(ctx, camp.ID)
	require.NoError(t, err)

	require.NoError(t, campaigns.DeleteCampaign(ctx, camp.ID))
}

func TestDeleteUnknownCampaign(t *testing.T) {
	f := newFixture(t)
	assert.ErrorIs(t, f.campaigns.DeleteCampaign(context.Background(), uuid.New()), port.ErrNotFound)
}

func TestDeleteCustomerGuard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	camp := f.campaign(t, "Summer")
	cust := f.customer(t, "Globex")
	ci := domain.CustomerInvoice{Invoice: invoiceBase("INV-2", "10", &camp.ID), CustomerID: cust.ID}
	require.NoError(t, f.invoices.CreateCustomerInvoice(ctx, &ci))

	err := f.customers.DeleteCustomer(ctx, cust.ID)
	var dep *port.DependentsError
	require.ErrorAs(t, err, &dep)
	assert.Equal(t, 1, dep.Count)

	_, err = f.customers.GetCustomer(ctx, cust.ID)
	require.NoError(t, err)

	require.NoError(t, f.invoices.DeleteCustomerInvoice(ctx, ci.ID))
	require.NoError(t, f.customers.DeleteCustomer(ctx, cust.ID))
	_, err = f.customers.GetCustomer(ctx, cust.ID)
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestDeleteVendorGuard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	vend := f.vendor(t, "Radio", "Media")
	vi := domain.VendorInvoice{Invoice: invoiceBase("V-2", "5", nil), VendorID: vend.ID}
	require.NoError(t, f.invoices.CreateVendorInvoice(ctx, &vi))

	assert.ErrorIs(t, f.vendors.DeleteVendor(ctx, vend.ID), port.ErrHasDependents)

	require.NoError(t, f.invoices.DeleteVendorInvoice(ctx, vi.ID))
	require.NoError(t, f.vendors.DeleteVendor(ctx, vend.ID))
}

func TestSetInvoiceStatusKeepsPaidDate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cust := f.customer(t, "Initech")
	ci := domain.CustomerInvoice{Invoice: invoiceBase("INV-3", "99.99", nil), CustomerID: cust.ID}
	require.NoError(t, f.invoices.CreateCustomerInvoice(ctx, &ci))

	got, err := f.invoices.SetCustomerInvoiceStatus(ctx, ci.ID, domain.InvoicePaid, &today)
	require.NoError(t, err)
	require.NotNil(t, got.PaidDate)
	assert.True(t, got.PaidDate.Equal(today))
	assert.Equal(t, "Initech", got.CustomerName)

	got, err = f.invoices.SetCustomerInvoiceStatus(ctx, ci.ID, domain.InvoiceOverdue, nil)
	require.NoError(t, err)
	assert.Nil(t, got.PaidDate)

	_, err = f.invoices.SetCustomerInvoiceStatus(ctx, ci.ID, domain.InvoicePaid, nil)
	assert.Error(t, err, "paid without a date violates the table check")
}

func TestAssignVendorInvoice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	camp := f.campaign(t, "Autumn")
	vend := f.vendor(t, "Agency", "SEO")
	vi := domain.VendorInvoice{Invoice: invoiceBase("V-3", "70", nil), VendorID: vend.ID}
	require.NoError(t, f.invoices.CreateVendorInvoice(ctx, &vi))

	unassigned, err := f.invoices.ListVendorInvoices(ctx, port.InvoiceFilter{Unassigned: true})
	require.NoError(t, err)
	require.Len(t, unassigned, 1)

	got, err := f.invoices.SetVendorInvoiceCampaign(ctx, vi.ID, &camp.ID)
	require.NoError(t, err)
	require.NotNil(t, got.CampaignID)
	assert.Equal(t, camp.ID, *got.CampaignID)
	assert.Equal(t, "Autumn", got.CampaignName)

	missing := uuid.New()
	_, err = f.invoices.SetVendorInvoiceCampaign(ctx, vi.ID, &missing)
	assert.ErrorIs(t, err, port.ErrNotFound)

	got, err = f.invoices.SetVendorInvoiceCampaign(ctx, vi.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, got.CampaignID)
}

func TestCreateInvoiceUnknownCustomer(t *testing.T) {
	f := newFixture(t)

	ci := domain.CustomerInvoice{Invoice: invoiceBase("INV-4", "1", nil), CustomerID: uuid.New()}
	err := f.invoices.CreateCustomerInvoice(context.Background(), &ci)

	var verr *port.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "customer_id", verr.Field)
}

func TestListSearch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.customer(t, "Zeta")
	f.customer(t, "alpha")
	f.vendor(t, "Printers", "Print")
	f.vendor(t, "Search Co", "SEO")

	customers, err := f.customers.ListCustomers(ctx, port.PartyFilter{Query: "ALP"})
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "alpha", customers[0].Name)

	vendors, err := f.vendors.ListVendors(ctx, port.PartyFilter{Query: "seo"})
	require.NoError(t, err)
	require.Len(t, vendors, 1)
	assert.Equal(t, "Search Co", vendors[0].Name)
}
