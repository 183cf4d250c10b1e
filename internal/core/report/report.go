// Package report derives financial summaries from already-fetched campaigns
// and invoices. Every function here is pure: callers load the data, report
// shapes it. Amounts use decimal arithmetic so repeated sums do not drift.
package report

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"agency-backoffice/internal/core/domain"
)

// DefaultTopCampaigns is the number of rows CampaignPerformance keeps when
// the caller does not ask for a specific count.
const DefaultTopCampaigns = 5

var hundred = decimal.NewFromInt(100)

// CampaignFinancials is the profitability of a single campaign.
type CampaignFinancials struct {
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	Profit        decimal.Decimal `json:"profit"`
	// ProfitMargin is a percentage rounded to one decimal place.
	ProfitMargin decimal.Decimal `json:"profit_margin"`
}

// Amounts holds raw revenue and expense sums for one campaign, as returned
// by a grouped store query.
type Amounts struct {
	Revenue  decimal.Decimal
	Expenses decimal.Decimal
}

// Profitability computes profit and margin from revenue and expenses. A
// campaign without revenue has a 0% margin rather than an undefined one.
func Profitability(revenue, expenses decimal.Decimal) CampaignFinancials {
	profit := revenue.Sub(expenses)
	margin := decimal.Zero
	if revenue.IsPositive() {
		margin = profit.Mul(hundred).DivRound(revenue, 1)
	}
	return CampaignFinancials{
		TotalRevenue:  revenue,
		TotalExpenses: expenses,
		Profit:        profit,
		ProfitMargin:  margin,
	}
}

// CampaignProfitability sums the invoices of one campaign. Every customer
// invoice counts toward revenue whatever its status: revenue is what was
// billed, not what was collected. Callers pass only the campaign's invoices.
func CampaignProfitability(customer []domain.CustomerInvoice, vendor []domain.VendorInvoice) CampaignFinancials {
	return Profitability(sum(customer), sum(vendor))
}

// ProfitabilityByCampaign attaches financials to each campaign id using
// per-campaign sums. Campaigns missing from amounts get zero financials.
func ProfitabilityByCampaign(campaigns []domain.Campaign, amounts map[uuid.UUID]Amounts) map[uuid.UUID]CampaignFinancials {
	out := make(map[uuid.UUID]CampaignFinancials, len(campaigns))
	for _, c := range campaigns {
		a := amounts[c.ID]
		out[c.ID] = Profitability(a.Revenue, a.Expenses)
	}
	return out
}

// Totals is the fleet-wide revenue and expense rollup.
type Totals struct {
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetProfit     decimal.Decimal `json:"net_profit"`
}

// FleetTotals sums every invoice regardless of campaign.
func FleetTotals(customer []domain.CustomerInvoice, vendor []domain.VendorInvoice) Totals {
	revenue, expenses := sum(customer), sum(vendor)
	return Totals{
		TotalRevenue:  revenue,
		TotalExpenses: expenses,
		NetProfit:     revenue.Sub(expenses),
	}
}

// StatusTotals sums invoice amounts per payment status.
type StatusTotals struct {
	Paid    decimal.Decimal `json:"paid"`
	Pending decimal.Decimal `json:"pending"`
	Overdue decimal.Decimal `json:"overdue"`
}

// StatusBreakdown groups amounts by status. Statuses with no invoices stay
// at zero; unknown statuses are ignored.
func StatusBreakdown[T domain.Entry](invoices []T) StatusTotals {
	var st StatusTotals
	for _, e := range invoices {
		inv := e.Base()
		switch inv.Status {
		case domain.InvoicePaid:
			st.Paid = st.Paid.Add(inv.Amount)
		case domain.InvoicePending:
			st.Pending = st.Pending.Add(inv.Amount)
		case domain.InvoiceOverdue:
			st.Overdue = st.Overdue.Add(inv.Amount)
		}
	}
	return st
}

// ActiveCampaigns counts campaigns whose status is active.
func ActiveCampaigns(campaigns []domain.Campaign) int {
	n := 0
	for _, c := range campaigns {
		if c.IsActive() {
			n++
		}
	}
	return n
}

func sum[T domain.Entry](invoices []T) decimal.Decimal {
	total := decimal.Zero
	for _, e := range invoices {
		total = total.Add(e.Base().Amount)
	}
	return total
}
