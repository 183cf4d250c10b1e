package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// seedNamespace derives stable ids so running Seed twice is a no-op.
var seedNamespace = uuid.MustParse("6f1c2a0e-4b7d-4f53-9a51-3f8b0f2d7c11")

func seedID(kind string, n int) uuid.UUID {
	return uuid.NewSHA1(seedNamespace, []byte(fmt.Sprintf("%s-%d", kind, n)))
}

// Seed inserts demo campaigns, customers, vendors and invoices spread over
// the last six months.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	// create customers
	companies := []string{"Acme", "Globex", "Initech", "Umbrella", "Hooli"}
	for i, company := range companies {
		_, err := db.Exec(ctx, `INSERT INTO customers (id, name, email, phone, company, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,now(),now()) ON CONFLICT DO NOTHING`,
			seedID("customer", i), fmt.Sprintf("%s Marketing", company),
			fmt.Sprintf("billing@%s.example.com", company), fmt.Sprintf("+1-555-01%02d", i), company)
		if err != nil {
			return err
		}
	}

	// create vendors, one blank service type lands in "Other"
	services := []string{"SEO", "Print", "Media", "Design", ""}
	for i, service := range services {
		_, err := db.Exec(ctx, `INSERT INTO vendors (id, name, email, phone, service_type, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,now(),now()) ON CONFLICT DO NOTHING`,
			seedID("vendor", i), fmt.Sprintf("Vendor %d", i+1),
			fmt.Sprintf("ap@vendor%d.example.com", i+1), fmt.Sprintf("+1-555-02%02d", i), service)
		if err != nil {
			return err
		}
	}

	// create campaigns
	statuses := []string{"active", "active", "planned", "completed", "active"}
	for i, status := range statuses {
		start := today.AddDate(0, -i, 0)
		budget := decimal.NewFromInt(int64(5000 + 2500*i))
		_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, name, description, po_number, start_date, end_date, budget, status, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,now(),now()) ON CONFLICT DO NOTHING`,
			seedID("campaign", i), fmt.Sprintf("Campaign %d", i+1), "Demo campaign",
			fmt.Sprintf("PO-%04d", 1000+i), start, start.AddDate(0, 3, 0), budget, status)
		if err != nil {
			return err
		}
	}

	// generate invoices against campaigns over the trailing six months
	for i := 0; i < 30; i++ {
		campaign := seedID("campaign", r.Intn(len(statuses)))
		issued := today.AddDate(0, -r.Intn(6), -r.Intn(28))
		due := issued.AddDate(0, 0, 30)
		status, paid := seedStatus(r, issued, today)

		amount := decimal.NewFromInt(int64(500 + r.Intn(4500)))
		_, err := db.Exec(ctx, `INSERT INTO customer_invoices
(id, invoice_number, amount, status, issue_date, due_date, paid_date, campaign_id, customer_id, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,now(),now()) ON CONFLICT DO NOTHING`,
			seedID("customer-invoice", i), fmt.Sprintf("INV-%05d", i+1), amount, status, issued, due, paid,
			campaign, seedID("customer", r.Intn(len(companies))))
		if err != nil {
			return err
		}

		// leave every fifth expense unassigned
		var expenseCampaign *uuid.UUID
		if i%5 != 0 {
			expenseCampaign = &campaign
		}
		expense := amount.Mul(decimal.NewFromFloat(0.2 + r.Float64()*0.5)).Round(2)
		_, err = db.Exec(ctx, `INSERT INTO vendor_invoices
(id, invoice_number, amount, status, issue_date, due_date, paid_date, campaign_id, vendor_id, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,now(),now()) ON CONFLICT DO NOTHING`,
			seedID("vendor-invoice", i), fmt.Sprintf("VB-%05d", i+1), expense, status, issued, due, paid,
			expenseCampaign, seedID("vendor", r.Intn(len(services))))
		if err != nil {
			return err
		}
	}
	return nil
}

// seedStatus picks a status and keeps paid_date consistent with it.
func seedStatus(r *rand.Rand, issued, today time.Time) (string, *time.Time) {
	switch r.Intn(3) {
	case 0:
		paid := issued.AddDate(0, 0, r.Intn(20))
		if paid.After(today) {
			paid = today
		}
		return "paid", &paid
	case 1:
		if issued.AddDate(0, 0, 30).Before(today) {
			return "overdue", nil
		}
	}
	return "pending", nil
}
