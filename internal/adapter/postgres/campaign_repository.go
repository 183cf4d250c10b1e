package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"agency-backoffice/internal/core/domain"
	"agency-backoffice/internal/core/port"
	"agency-backoffice/internal/core/report"
)

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

var _ port.CampaignRepository = (*CampaignRepository)(nil)

const campaignColumns = `id, name, description, po_number, start_date, end_date, budget, status, created_at, updated_at`

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.PONumber,
		&c.StartDate,
		&c.EndDate,
		&c.Budget,
		&c.Status,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

// ListCampaigns returns campaigns newest first.
func (r *CampaignRepository) ListCampaigns(ctx context.Context, filter port.CampaignFilter) ([]domain.Campaign, error) {
	var w where
	w.search(filter.Query, "name", "description", "po_number")

	query := `SELECT ` + campaignColumns + ` FROM campaigns` + w.String() + ` ORDER BY created_at DESC, id`
	rows, err := r.pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	campaigns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return campaigns, nil
}

// GetCampaign returns a campaign by id.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "campaign", "get campaign")
	}
	return &c, nil
}

// CreateCampaign inserts c. The caller assigns the id and timestamps.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO campaigns (`+campaignColumns+`)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		c.ID, c.Name, c.Description, c.PONumber, c.StartDate, c.EndDate, c.Budget, c.Status, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return writeError(err, "campaigns", "create campaign")
	}
	return nil
}

// UpdateCampaign overwrites every mutable column of c.
func (r *CampaignRepository) UpdateCampaign(ctx context.Context, c *domain.Campaign) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns
SET name = $2, description = $3, po_number = $4, start_date = $5, end_date = $6, budget = $7, status = $8, updated_at = $9
WHERE id = $1`,
		c.ID, c.Name, c.Description, c.PONumber, c.StartDate, c.EndDate, c.Budget, c.Status, c.UpdatedAt)
	if err != nil {
		return writeError(err, "campaigns", "update campaign")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("campaign: %w", port.ErrNotFound)
	}
	return nil
}

// DeleteCampaign detaches every invoice from the campaign and deletes it in
// a single transaction.
func (r *CampaignRepository) DeleteCampaign(ctx context.Context, id uuid.UUID) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("delete campaign: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	// the row lock keeps invoices from being assigned to the campaign between
	// the detach and the delete
	var locked uuid.UUID
	if err = tx.QueryRow(ctx, `SELECT id FROM campaigns WHERE id = $1 FOR UPDATE`, id).Scan(&locked); err != nil {
		err = notFound(err, "campaign", "lock campaign")
		return err
	}

	if _, err = tx.Exec(ctx, `UPDATE customer_invoices SET campaign_id = NULL, updated_at = now() WHERE campaign_id = $1`, id); err != nil {
		return fmt.Errorf("detach customer invoices: %w", err)
	}
	if _, err = tx.Exec(ctx, `UPDATE vendor_invoices SET campaign_id = NULL, updated_at = now() WHERE campaign_id = $1`, id); err != nil {
		return fmt.Errorf("detach vendor invoices: %w", err)
	}
	if _, err = tx.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete campaign: %w", err)
	}
	return nil
}

// CampaignAmounts sums both ledgers per campaign in one grouped query.
func (r *CampaignRepository) CampaignAmounts(ctx context.Context) (map[uuid.UUID]report.Amounts, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT
            c.id,
            COALESCE(ci.total, 0),
            COALESCE(vi.total, 0)
        FROM campaigns c
        LEFT JOIN (
            SELECT campaign_id, SUM(amount) AS total
            FROM customer_invoices
            WHERE campaign_id IS NOT NULL
            GROUP BY campaign_id
        ) ci ON ci.campaign_id = c.id
        LEFT JOIN (
            SELECT campaign_id, SUM(amount) AS total
            FROM vendor_invoices
            WHERE campaign_id IS NOT NULL
            GROUP BY campaign_id
        ) vi ON vi.campaign_id = c.id`)
	if err != nil {
		return nil, fmt.Errorf("campaign amounts: %w", err)
	}

	type row struct {
		id       uuid.UUID
		revenue  decimal.Decimal
		expenses decimal.Decimal
	}
	raw, err := pgx.CollectRows(rows, func(cr pgx.CollectableRow) (row, error) {
		var rw row
		err := cr.Scan(&rw.id, &rw.revenue, &rw.expenses)
		return rw, err
	})
	if err != nil {
		return nil, fmt.Errorf("campaign amounts: %w", err)
	}

	out := make(map[uuid.UUID]report.Amounts, len(raw))
	for _, rw := range raw {
		out[rw.id] = report.Amounts{Revenue: rw.revenue, Expenses: rw.expenses}
	}
	return out, nil
}
