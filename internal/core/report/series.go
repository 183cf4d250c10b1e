package report

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"agency-backoffice/internal/core/domain"
)

// TrailingMonths is how many calendar months, ending with the current one,
// MonthlySeries always includes.
const TrailingMonths = 6

// OtherCategory collects expenses from vendors without a service type.
const OtherCategory = "Other"

// MonthlyPoint is one bucket of the revenue/expense trend.
type MonthlyPoint struct {
	Month    string          `json:"month"` // e.g. "Mar 2026"
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
}

// MonthlySeries buckets invoices by the calendar month of their issue date.
//
// The trailing TrailingMonths months ending at now are always present, even
// when empty. Invoices issued outside that window add their own buckets, so
// the result can be longer than the window; it is never cut back. Points are
// ordered oldest first. Invoices without an issue date are skipped.
func MonthlySeries(customer []domain.CustomerInvoice, vendor []domain.VendorInvoice, now time.Time) []MonthlyPoint {
	months := make(map[int]*MonthlyPoint, TrailingMonths)

	bucket := func(t time.Time) *MonthlyPoint {
		y, m, _ := t.Date()
		key := y*100 + int(m) - 1
		p, ok := months[key]
		if !ok {
			p = &MonthlyPoint{
				Month:    t.Format("Jan 2006"),
				Revenue:  decimal.Zero,
				Expenses: decimal.Zero,
			}
			months[key] = p
		}
		return p
	}

	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := TrailingMonths - 1; i >= 0; i-- {
		bucket(first.AddDate(0, -i, 0))
	}

	for _, inv := range customer {
		if inv.IssueDate.IsZero() {
			continue
		}
		p := bucket(inv.IssueDate)
		p.Revenue = p.Revenue.Add(inv.Amount)
	}
	for _, inv := range vendor {
		if inv.IssueDate.IsZero() {
			continue
		}
		p := bucket(inv.IssueDate)
		p.Expenses = p.Expenses.Add(inv.Amount)
	}

	keys := make([]int, 0, len(months))
	for key := range months {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	out := make([]MonthlyPoint, 0, len(keys))
	for _, key := range keys {
		p := months[key]
		p.Profit = p.Revenue.Sub(p.Expenses)
		out = append(out, *p)
	}
	return out
}

// CategoryTotal is the expense sum for one vendor service type.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// ExpenseBreakdown groups vendor invoice amounts by service type. A blank
// service type is reported as OtherCategory. Categories keep the order in
// which they are first seen.
func ExpenseBreakdown(vendor []domain.VendorInvoice) []CategoryTotal {
	index := make(map[string]int)
	var out []CategoryTotal
	for _, inv := range vendor {
		category := strings.TrimSpace(inv.ServiceType)
		if category == "" {
			category = OtherCategory
		}
		i, ok := index[category]
		if !ok {
			i = len(out)
			index[category] = i
			out = append(out, CategoryTotal{Category: category, Total: decimal.Zero})
		}
		out[i].Total = out[i].Total.Add(inv.Amount)
	}
	return out
}

// CampaignRow is one row of the top-campaigns chart.
type CampaignRow struct {
	CampaignID uuid.UUID       `json:"campaign_id"`
	Name       string          `json:"name"`
	Revenue    decimal.Decimal `json:"revenue"`
	Expenses   decimal.Decimal `json:"expenses"`
	Profit     decimal.Decimal `json:"profit"`
}

// CampaignPerformance sums revenue and expenses per listed campaign and
// returns the topN by revenue. Invoices whose campaign is not in campaigns,
// unassigned vendor invoices included, are ignored. Campaigns with neither
// revenue nor expenses are dropped. Ties keep the order of campaigns.
func CampaignPerformance(campaigns []domain.Campaign, customer []domain.CustomerInvoice, vendor []domain.VendorInvoice, topN int) []CampaignRow {
	if topN <= 0 {
		topN = DefaultTopCampaigns
	}

	rows := make([]CampaignRow, len(campaigns))
	index := make(map[uuid.UUID]int, len(campaigns))
	for i, c := range campaigns {
		rows[i] = CampaignRow{
			CampaignID: c.ID,
			Name:       c.Name,
			Revenue:    decimal.Zero,
			Expenses:   decimal.Zero,
		}
		index[c.ID] = i
	}

	for _, inv := range customer {
		if inv.CampaignID == nil {
			continue
		}
		if i, ok := index[*inv.CampaignID]; ok {
			rows[i].Revenue = rows[i].Revenue.Add(inv.Amount)
		}
	}
	for _, inv := range vendor {
		if inv.CampaignID == nil {
			continue
		}
		if i, ok := index[*inv.CampaignID]; ok {
			rows[i].Expenses = rows[i].Expenses.Add(inv.Amount)
		}
	}

	out := rows[:0]
	for _, r := range rows {
		if r.Revenue.IsZero() && r.Expenses.IsZero() {
			continue
		}
		r.Profit = r.Revenue.Sub(r.Expenses)
		out = append(out, r)
	}
	slices.SortStableFunc(out, func(a, b CampaignRow) int { return b.Revenue.Cmp(a.Revenue) })
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}
