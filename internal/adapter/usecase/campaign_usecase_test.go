package usecase

import (
	"context"
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

type campaignDeps struct {
	campaigns *mocks.MockCampaignRepository
	invoices  *mocks.MockInvoiceRepository
	cache     *mocks.MockDashboardCache
	uc        *CampaignUseCase
}

func newCampaignDeps(t *testing.T) campaignDeps {
	d := campaignDeps{
		campaigns: mocks.NewMockCampaignRepository(t),
		invoices:  mocks.NewMockInvoiceRepository(t),
		cache:     mocks.NewMockDashboardCache(t),
	}
	d.uc = NewCampaignUseCase(d.campaigns, d.invoices, d.cache, discardLogger())
	d.uc.now = fixedClock
	return d
}

func TestCampaignCreateNormalises(t *testing.T) {
	d := newCampaignDeps(t)

	var stored *domain.Campaign
	d.campaigns.EXPECT().
		CreateCampaign(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		Run(func(ctx context.Context, c *domain.Campaign) { stored = c }).
		Return(nil)
	d.cache.EXPECT().Invalidate(mock.Anything).Return(nil).Once()

	got, err := d.uc.Create(context.Background(), domain.Campaign{
		Name:      "  Spring launch ",
		StartDate: fixedNow,
		Budget:    dec("5000"),
		Status:    " Active",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, "Spring launch", got.Name)
	assert.Equal(t, domain.CampaignActive, got.Status)
	assert.Equal(t, date(2026, 10, 16), got.StartDate)
	assert.Equal(t, fixedNow, got.CreatedAt)
	require.NotNil(t, stored)
	assert.Equal(t, got.ID, stored.ID)
}

func TestCampaignCreateDefaultsToPlanned(t *testing.T) {
	d := newCampaignDeps(t)
	d.campaigns.EXPECT().CreateCampaign(mock.Anything, mock.Anything).Return(nil)
	d.cache.EXPECT().Invalidate(mock.Anything).Return(nil)

	got, err := d.uc.Create(context.Background(), domain.Campaign{Name: "x", StartDate: fixedNow})
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignPlanned, got.Status)
}

func TestCampaignCreateValidation(t *testing.T) {
	before := date(2026, 1, 1)
	tests := []struct {
		name  string
		in    domain.Campaign
		field string
	}{
		{"blank name", domain.Campaign{Name: "  ", StartDate: fixedNow}, "name"},
		{"missing start", domain.Campaign{Name: "x"}, "start_date"},
		{"negative budget", domain.Campaign{Name: "x", StartDate: fixedNow, Budget: dec("-1")}, "budget"},
		{"end before start", domain.Campaign{Name: "x", StartDate: fixedNow, EndDate: &before}, "end_date"},
		{"unknown status", domain.Campaign{Name: "x", StartDate: fixedNow, Status: "paused"}, "status"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newCampaignDeps(t)

			_, err := d.uc.Create(context.Background(), tt.in)

			var verr *port.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
			assert.ErrorIs(t, err, port.ErrValidation)
		})
	}
}

func TestCampaignList(t *testing.T) {
	d := newCampaignDeps(t)
	a, b := uuid.New(), uuid.New()
	filter := port.CampaignFilter{Query: "launch"}

	d.campaigns.EXPECT().ListCampaigns(mock.Anything, filter).
		Return([]domain.Campaign{{ID: a, Name: "A"}, {ID: b, Name: "B"}}, nil)
	d.campaigns.EXPECT().CampaignAmounts(mock.Anything).
		Return(map[uuid.UUID]report.Amounts{a: {Revenue: dec("1000"), Expenses: dec("400")}}, nil)

	got, err := d.uc.List(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "600", got[0].Financials.Profit.String())
	assert.Equal(t, "60.0", got[0].Financials.ProfitMargin.StringFixed(1))
	assert.True(t, got[1].Financials.TotalRevenue.IsZero())
}

func TestCampaignGet(t *testing.T) {
	d := newCampaignDeps(t)
	id := uuid.New()
	filter := port.InvoiceFilter{CampaignID: &id}

	d.campaigns.EXPECT().GetCampaign(mock.Anything, id).Return(&domain.Campaign{ID: id, Name: "A"}, nil)
	d.invoices.EXPECT().ListCustomerInvoices(mock.Anything, filter).Return([]domain.CustomerInvoice{
		{Invoice: domain.Invoice{Amount: dec("1000"), Status: domain.InvoicePending, CampaignID: &id}},
	}, nil)
	d.invoices.EXPECT().ListVendorInvoices(mock.Anything, filter).Return([]domain.VendorInvoice{
		{Invoice: domain.Invoice{Amount: dec("400"), CampaignID: &id}},
	}, nil)

	got, err := d.uc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Campaign.Name)
	assert.Len(t, got.CustomerInvoices, 1)
	assert.Len(t, got.VendorInvoices, 1)
	assert.Equal(t, "1000", got.Financials.TotalRevenue.String())
	assert.Equal(t, "400", got.Financials.TotalExpenses.String())
	assert.Equal(t, "600", got.Financials.Profit.String())
	assert.Equal(t, "60.0", got.Financials.ProfitMargin.StringFixed(1))
}

func TestCampaignProfitabilityNotFound(t *testing.T) {
	d := newCampaignDeps(t)
	id := uuid.New()
	d.campaigns.EXPECT().GetCampaign(mock.Anything, id).Return(nil, port.ErrNotFound)

	_, err := d.uc.Profitability(context.Background(), id)
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestCampaignUpdateAppliesPatch(t *testing.T) {
	d := newCampaignDeps(t)
	id := uuid.New()
	end := date(2026, 12, 31)
	current := &domain.Campaign{ID: id, Name: "Old", StartDate: date(2026, 1, 1), EndDate: &end, Status: domain.CampaignActive}

	d.campaigns.EXPECT().GetCampaign(mock.Anything, id).Return(current, nil)
	d.campaigns.EXPECT().UpdateCampaign(mock.Anything, mock.AnythingOfType("*domain.Campaign")).Return(nil)
	d.cache.EXPECT().Invalidate(mock.Anything).Return(nil).Once()

	got, err := d.uc.Update(context.Background(), id, port.CampaignPatch{
		Name:         ptr("New"),
		Status:       ptr("COMPLETED"),
		ClearEndDate: true,
		Budget:       ptr(dec("250.50")),
	})
	require.NoError(t, err)
	assert.Equal(t, "New", got.Name)
	assert.Equal(t, domain.CampaignCompleted, got.Status)
	assert.Nil(t, got.EndDate)
	assert.Equal(t, "250.5", got.Budget.String())
	assert.Equal(t, fixedNow, got.UpdatedAt)
}

func TestCampaignUpdateRejectsInvalidPatch(t *testing.T) {
	d := newCampaignDeps(t)
	id := uuid.New()
	d.campaigns.EXPECT().GetCampaign(mock.Anything, id).
		Return(&domain.Campaign{ID: id, Name: "Old", StartDate: date(2026, 6, 1)}, nil)

	_, err := d.uc.Update(context.Background(), id, port.CampaignPatch{EndDate: ptr(date(2026, 5, 1))})
	assert.ErrorIs(t, err, port.ErrValidation)
}

func TestCampaignDeleteInvalidatesCache(t *testing.T) {
	d := newCampaignDeps(t)
	id := uuid.New()
	d.campaigns.EXPECT().DeleteCampaign(mock.Anything, id).Return(nil)
	d.cache.EXPECT().Invalidate(mock.Anything).Return(nil).Once()

	require.NoError(t, d.uc.Delete(context.Background(), id))
}

func TestCampaignDeleteNotFoundKeepsCache(t *testing.T) {
	d := newCampaignDeps(t)
	id := uuid.New()
	d.campaigns.EXPECT().DeleteCampaign(mock.Anything, id).Return(port.ErrNotFound)

	err := d.uc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, port.ErrNotFound)
	d.cache.AssertNotCalled(t, "Invalidate", mock.Anything)
}

func TestCampaignMutationSurvivesCacheFailure(t *testing.T) {
	d := newCampaignDeps(t)
	id := uuid.New()
	d.campaigns.EXPECT().DeleteCampaign(mock.Anything, id).Return(nil)
	d.cache.EXPECT().Invalidate(mock.Anything).Return(assert.AnError)

	assert.NoError(t, d.uc.Delete(context.Background(), id))
}
