package report

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agency-backoffice/internal/core/domain"
)

var decimalEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func customerInvoice(campaign *uuid.UUID, amount string, status domain.InvoiceStatus, issued time.Time) domain.CustomerInvoice {
	return domain.CustomerInvoice{Invoice: domain.Invoice{
		ID:         uuid.New(),
		Amount:     dec(amount),
		Status:     status,
		IssueDate:  issued,
		CampaignID: campaign,
	}}
}

func vendorInvoice(campaign *uuid.UUID, amount, serviceType string, issued time.Time) domain.VendorInvoice {
	return domain.VendorInvoice{
		Invoice: domain.Invoice{
			ID:         uuid.New(),
			Amount:     dec(amount),
			Status:     domain.InvoicePending,
			IssueDate:  issued,
			CampaignID: campaign,
		},
		ServiceType: serviceType,
	}
}

func TestCampaignProfitability(t *testing.T) {
	id := uuid.New()
	issued := day(2026, time.May, 2)

	got := CampaignProfitability(
		[]domain.CustomerInvoice{customerInvoice(&id, "1000", domain.InvoicePending, issued)},
		[]domain.VendorInvoice{vendorInvoice(&id, "400", "SEO", issued)},
	)

	assert.Equal(t, "1000", got.TotalRevenue.String())
	assert.Equal(t, "400", got.TotalExpenses.String())
	assert.Equal(t, "600", got.Profit.String())
	assert.Equal(t, "60.0", got.ProfitMargin.StringFixed(1))
}

func TestProfitabilityZeroRevenue(t *testing.T) {
	for _, expenses := range []string{"0", "1", "250.75"} {
		got := Profitability(decimal.Zero, dec(expenses))
		assert.True(t, got.ProfitMargin.IsZero(), "expenses %s", expenses)
		assert.True(t, got.Profit.Equal(dec(expenses).Neg()), "expenses %s", expenses)
	}
}

func TestProfitabilityRoundsMargin(t *testing.T) {
	got := Profitability(dec("3"), dec("1"))
	assert.Equal(t, "66.7", got.ProfitMargin.StringFixed(1))

	got = Profitability(dec("100"), dec("250"))
	assert.Equal(t, "-150.0", got.ProfitMargin.StringFixed(1))
}

func TestProfitEqualsRevenueMinusExpenses(t *testing.T) {
	revenue, expenses := dec("0.1"), dec("0.3")
	for i := 0; i < 10; i++ {
		got := Profitability(revenue, expenses)
		require.True(t, got.Profit.Equal(revenue.Sub(expenses)))
		revenue = revenue.Add(dec("0.1"))
		expenses = expenses.Add(dec("0.2"))
	}
}

func TestProfitabilityByCampaign(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	campaigns := []domain.Campaign{{ID: a}, {ID: b}}
	got := ProfitabilityByCampaign(campaigns, map[uuid.UUID]Amounts{
		a: {Revenue: dec("200"), Expenses: dec("50")},
	})

	require.Len(t, got, 2)
	assert.Equal(t, "75.0", got[a].ProfitMargin.StringFixed(1))
	assert.True(t, got[b].TotalRevenue.IsZero())
	assert.True(t, got[b].ProfitMargin.IsZero())
}

func TestFleetTotals(t *testing.T) {
	id := uuid.New()
	issued := day(2026, time.January, 10)
	got := FleetTotals(
		[]domain.CustomerInvoice{
			customerInvoice(&id, "100.50", domain.InvoicePaid, issued),
			customerInvoice(nil, "20", domain.InvoiceOverdue, issued),
		},
		[]domain.VendorInvoice{vendorInvoice(nil, "70.25", "", issued)},
	)

	want := Totals{TotalRevenue: dec("120.50"), TotalExpenses: dec("70.25"), NetProfit: dec("50.25")}
	if diff := cmp.Diff(want, got, decimalEqual); diff != "" {
		t.Fatalf("FleetTotals mismatch (-want +got):\n%s", diff)
	}
}

func TestStatusBreakdown(t *testing.T) {
	issued := day(2026, time.February, 1)
	got := StatusBreakdown([]domain.CustomerInvoice{
		customerInvoice(nil, "10", domain.InvoicePaid, issued),
		customerInvoice(nil, "5", domain.InvoicePaid, issued),
		customerInvoice(nil, "7", domain.InvoicePending, issued),
	})

	want := StatusTotals{Paid: dec("15"), Pending: dec("7"), Overdue: decimal.Zero}
	if diff := cmp.Diff(want, got, decimalEqual); diff != "" {
		t.Fatalf("StatusBreakdown mismatch (-want +got):\n%s", diff)
	}
}

func TestActiveCampaigns(t *testing.T) {
	got := ActiveCampaigns([]domain.Campaign{
		{Status: domain.CampaignActive},
		{Status: "ACTIVE"},
		{Status: domain.CampaignPlanned},
		{Status: domain.CampaignCompleted},
	})
	assert.Equal(t, 2, got)
}
