package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agency-backoffice/internal/core/domain"
	"agency-backoffice/internal/core/port"
	"agency-backoffice/internal/core/port/mocks"
	"agency-backoffice/internal/core/report"
)

func newDashboard(t *testing.T) (*DashboardUseCase, *mocks.MockCampaignRepository, *mocks.MockInvoiceRepository, *mocks.MockDashboardCache) {
	campaigns := mocks.NewMockCampaignRepository(t)
	invoices := mocks.NewMockInvoiceRepository(t)
	cache := mocks.NewMockDashboardCache(t)
	uc := NewDashboardUseCase(campaigns, invoices, cache, discardLogger())
	uc.now = fixedClock
	return uc, campaigns, invoices, cache
}

func TestDashboardServedFromCache(t *testing.T) {
	uc, _, _, cache := newDashboard(t)
	cached := &report.Dashboard{ActiveCampaigns: 7}
	cache.EXPECT().Get(mock.Anything).Return(cached, 3, nil)

	got, err := uc.Summary(context.Background())
	require.NoError(t, err)
	assert.Same(t, cached, got)
}

func TestDashboardComputesOnMiss(t *testing.T) {
	uc, campaigns, invoices, cache := newDashboard(t)
	id := uuid.New()

	cache.EXPECT().Get(mock.Anything).Return(nil, 4, nil)
	campaigns.EXPECT().ListCampaigns(mock.Anything, port.CampaignFilter{}).
		Return([]domain.Campaign{{ID: id, Name: "Launch", Status: domain.CampaignActive}}, nil)
	invoices.EXPECT().ListCustomerInvoices(mock.Anything, port.InvoiceFilter{}).
		Return([]domain.CustomerInvoice{{Invoice: domain.Invoice{Amount: dec("1000"), Status: domain.InvoicePending, IssueDate: fixedNow, CampaignID: &id}}}, nil)
	invoices.EXPECT().ListVendorInvoices(mock.Anything, port.InvoiceFilter{}).
		Return([]domain.VendorInvoice{{Invoice: domain.Invoice{Amount: dec("400"), IssueDate: fixedNow, CampaignID: &id}, ServiceType: "SEO"}}, nil)

	var cached *report.Dashboard
	cache.EXPECT().Set(mock.Anything, int64(4), mock.AnythingOfType("*report.Dashboard")).
		Run(func(_ context.Context, _ int64, d *report.Dashboard) { cached = d }).
		Return(true, nil)

	got, err := uc.Summary(context.Background())
	require.NoError(t, err)

	assert.Same(t, cached, got)
	assert.Equal(t, 1, got.ActiveCampaigns)
	assert.Equal(t, "600", got.Totals.NetProfit.String())
	assert.Equal(t, "1000", got.CustomerInvoices.Pending.String())
	assert.Len(t, got.Monthly, report.TrailingMonths)
	require.Len(t, got.TopCampaigns, 1)
	assert.Equal(t, "Launch", got.TopCampaigns[0].Name)
	require.Len(t, got.Expenses, 1)
	assert.Equal(t, "SEO", got.Expenses[0].Category)
	assert.Equal(t, fixedNow, got.GeneratedAt)
}

func TestDashboardCacheErrorsDegrade(t *testing.T) {
	uc, campaigns, invoices, cache := newDashboard(t)

	cache.EXPECT().Get(mock.Anything).Return(nil, 0, assert.AnError)
	campaigns.EXPECT().ListCampaigns(mock.Anything, mock.Anything).Return(nil, nil)
	invoices.EXPECT().ListCustomerInvoices(mock.Anything, mock.Anything).Return(nil, nil)
	invoices.EXPECT().ListVendorInvoices(mock.Anything, mock.Anything).Return(nil, nil)

	got, err := uc.Summary(context.Background())
	require.NoError(t, err)
	assert.Len(t, got.Monthly, report.TrailingMonths)
	assert.NotNil(t, got.Expenses)
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestDashboardCacheWriteErrorDegrades(t *testing.T) {
	uc, campaigns, invoices, cache := newDashboard(t)

	cache.EXPECT().Get(mock.Anything).Return(nil, 0, nil)
	campaigns.EXPECT().ListCampaigns(mock.Anything, mock.Anything).Return(nil, nil)
	invoices.EXPECT().ListCustomerInvoices(mock.Anything, mock.Anything).Return(nil, nil)
	invoices.EXPECT().ListVendorInvoices(mock.Anything, mock.Anything).Return(nil, nil)
	cache.EXPECT().Set(mock.Anything, int64(0), mock.Anything).Return(false, assert.AnError)

	got, err := uc.Summary(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestDashboardStoreError(t *testing.T) {
	uc, campaigns, invoices, cache := newDashboard(t)

	cache.EXPECT().Get(mock.Anything).Return(nil, 0, nil)
	campaigns.EXPECT().ListCampaigns(mock.Anything, mock.Anything).Return(nil, assert.AnError)
	invoices.EXPECT().ListCustomerInvoices(mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	invoices.EXPECT().ListVendorInvoices(mock.Anything, mock.Anything).Return(nil, nil).Maybe()

	_, err := uc.Summary(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

// generationCache is an in-memory DashboardCache with the same generation
// semantics as the Redis one.
type generationCache struct {
	mu  sync.Mutex
	gen int64
	d   *report.Dashboard
}

func (c *generationCache) Get(context.Context) (*report.Dashboard, int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.d, c.gen, nil
}

func (c *generationCache) Set(_ context.Context, gen int64, d *report.Dashboard) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return false, nil
	}
	c.d = d
	return true, nil
}

func (c *generationCache) Invalidate(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.d = nil
	return nil
}

func TestDashboardNotCachedAcrossMutation(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	invoices := mocks.NewMockInvoiceRepository(t)
	cache := &generationCache{}
	dashboard := NewDashboardUseCase(campaigns, invoices, cache, discardLogger())
	campaignUC := NewCampaignUseCase(campaigns, invoices, cache, discardLogger())
	id := uuid.New()

	campaigns.EXPECT().DeleteCampaign(mock.Anything, id).Return(nil)
	// the campaign is deleted after the dashboard has read its snapshot
	campaigns.EXPECT().ListCampaigns(mock.Anything, port.CampaignFilter{}).
		RunAndReturn(func(ctx context.Context, _ port.CampaignFilter) ([]domain.Campaign, error) {
			assert.NoError(t, campaignUC.Delete(ctx, id))
			return []domain.Campaign{{ID: id, Name: "Launch", Status: domain.CampaignActive}}, nil
		}).Once()
	invoices.EXPECT().ListCustomerInvoices(mock.Anything, port.InvoiceFilter{}).Return(nil, nil)
	invoices.EXPECT().ListVendorInvoices(mock.Anything, port.InvoiceFilter{}).Return(nil, nil)

	got, err := dashboard.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, got.ActiveCampaigns)

	cached, gen, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, cached, "summary computed before the delete must not be cached")
	assert.Equal(t, int64(1), gen)

	// the next read recomputes from the current data and is cached
	campaigns.EXPECT().ListCampaigns(mock.Anything, port.CampaignFilter{}).Return(nil, nil).Once()

	got, err = dashboard.Summary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, got.ActiveCampaigns)
	cached, _, err = cache.Get(context.Background())
	require.NoError(t, err)
	assert.Same(t, got, cached)
}
