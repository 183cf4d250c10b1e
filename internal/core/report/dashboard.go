package report

import (
	"time"

	"agency-backoffice/internal/core/domain"
)

// Dashboard is the summary shown on the back-office landing page.
type Dashboard struct {
	Totals           Totals          `json:"totals"`
	ActiveCampaigns  int             `json:"active_campaigns"`
	CustomerInvoices StatusTotals    `json:"customer_invoices"`
	VendorInvoices   StatusTotals    `json:"vendor_invoices"`
	Monthly          []MonthlyPoint  `json:"monthly"`
	Expenses         []CategoryTotal `json:"expense_breakdown"`
	TopCampaigns     []CampaignRow   `json:"top_campaigns"`
	GeneratedAt      time.Time       `json:"generated_at"`
}

// BuildDashboard assembles every dashboard figure from one snapshot of
// campaigns and both ledgers.
func BuildDashboard(campaigns []domain.Campaign, customer []domain.CustomerInvoice, vendor []domain.VendorInvoice, now time.Time) Dashboard {
	expenses := ExpenseBreakdown(vendor)
	if expenses == nil {
		expenses = []CategoryTotal{}
	}
	return Dashboard{
		Totals:           FleetTotals(customer, vendor),
		ActiveCampaigns:  ActiveCampaigns(campaigns),
		CustomerInvoices: StatusBreakdown(customer),
		VendorInvoices:   StatusBreakdown(vendor),
		Monthly:          MonthlySeries(customer, vendor, now),
		Expenses:         expenses,
		TopCampaigns:     CampaignPerformance(campaigns, customer, vendor, DefaultTopCampaigns),
		GeneratedAt:      now,
	}
}
