package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"agency-backoffice/internal/core/domain"
	"agency-backoffice/internal/core/port"
)

// InvoiceRepository implements port.InvoiceRepository over the
// customer_invoices and vendor_invoices tables.
type InvoiceRepository struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository returns a new repository instance.
func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{pool: pool}
}

var _ port.InvoiceRepository = (*InvoiceRepository)(nil)

const invoiceColumns = `i.id, i.invoice_number, i.amount, i.status, i.issue_date, i.due_date, i.paid_date, i.campaign_id, i.created_at, i.updated_at, COALESCE(c.name, '')`

// invoiceDest returns scan targets matching invoiceColumns.
func invoiceDest(inv *domain.Invoice) []any {
	return []any{
		&inv.ID,
		&inv.Number,
		&inv.Amount,
		&inv.Status,
		&inv.IssueDate,
		&inv.DueDate,
		&inv.PaidDate,
		&inv.CampaignID,
		&inv.CreatedAt,
		&inv.UpdatedAt,
		&inv.CampaignName,
	}
}

const customerInvoiceSelect = `SELECT ` + invoiceColumns + `, i.customer_id, cu.name, cu.company
FROM customer_invoices i
JOIN customers cu ON cu.id = i.customer_id
LEFT JOIN campaigns c ON c.id = i.campaign_id`

func scanCustomerInvoice(row pgx.Row) (domain.CustomerInvoice, error) {
	var inv domain.CustomerInvoice
	dest := append(invoiceDest(&inv.Invoice), &inv.CustomerID, &inv.CustomerName, &inv.Company)
	err := row.Scan(dest...)
	return inv, err
}

const vendorInvoiceSelect = `SELECT ` + invoiceColumns + `, i.vendor_id, v.name, v.service_type
FROM vendor_invoices i
JOIN vendors v ON v.id = i.vendor_id
LEFT JOIN campaigns c ON c.id = i.campaign_id`

func scanVendorInvoice(row pgx.Row) (domain.VendorInvoice, error) {
	var inv domain.VendorInvoice
	dest := append(invoiceDest(&inv.Invoice), &inv.VendorID, &inv.VendorName, &inv.ServiceType)
	err := row.Scan(dest...)
	return inv, err
}

// invoiceWhere builds the shared invoice filter. partyCol and partyName
// select the customer or vendor columns.
func invoiceWhere(filter port.InvoiceFilter, partyCol, partyName string) *where {
	w := &where{}
	w.search(filter.Query, "i.invoice_number", partyName, "COALESCE(c.name, '')")
	switch {
	case filter.Unassigned:
		w.and("i.campaign_id IS NULL")
	case filter.CampaignID != nil:
		w.and("i.campaign_id = " + w.arg(*filter.CampaignID))
	}
	if filter.PartyID != nil {
		w.and(partyCol + " = " + w.arg(*filter.PartyID))
	}
	if filter.Status != nil {
		w.and("i.status = " + w.arg(string(*filter.Status)))
	}
	return w
}

// ListCustomerInvoices returns customer invoices, newest issue date first.
func (r *InvoiceRepository) ListCustomerInvoices(ctx context.Context, filter port.InvoiceFilter) ([]domain.CustomerInvoice, error) {
	w := invoiceWhere(filter, "i.customer_id", "cu.name")
	rows, err := r.pool.Query(ctx, customerInvoiceSelect+w.String()+` ORDER BY i.issue_date DESC, i.created_at DESC`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list customer invoices: %w", err)
	}
	invoices, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CustomerInvoice, error) {
		return scanCustomerInvoice(row)
	})
	if err != nil {
		return nil, fmt.Errorf("list customer invoices: %w", err)
	}
	return invoices, nil
}

func (r *InvoiceRepository) GetCustomerInvoice(ctx context.Context, id uuid.UUID) (*domain.CustomerInvoice, error) {
	inv, err := scanCustomerInvoice(r.pool.QueryRow(ctx, customerInvoiceSelect+` WHERE i.id = $1`, id))
	if err != nil {
		return nil, notFound(err, "customer invoice", "get customer invoice")
	}
	return &inv, nil
}

// CreateCustomerInvoice inserts inv. Unknown campaign or customer ids are
// reported as validation errors.
func (r *InvoiceRepository) CreateCustomerInvoice(ctx context.Context, inv *domain.CustomerInvoice) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO customer_invoices
(id, invoice_number, amount, status, issue_date, due_date, paid_date, campaign_id, customer_id, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		inv.ID, inv.Number, inv.Amount, inv.Status, inv.IssueDate, inv.DueDate, inv.PaidDate, inv.CampaignID, inv.CustomerID, inv.CreatedAt, inv.UpdatedAt)
	if err != nil {
		return writeError(err, "customer_invoices", "create customer invoice")
	}
	return nil
}

func (r *InvoiceRepository) SetCustomerInvoiceStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus, paidDate *time.Time) (*domain.CustomerInvoice, error) {
	if err := r.setStatus(ctx, "customer_invoices", "customer invoice", id, status, paidDate); err != nil {
		return nil, err
	}
	return r.GetCustomerInvoice(ctx, id)
}

func (r *InvoiceRepository) DeleteCustomerInvoice(ctx context.Context, id uuid.UUID) error {
	return r.delete(ctx, "customer_invoices", "customer invoice", id)
}

// ListVendorInvoices returns vendor invoices, newest issue date first.
func (r *InvoiceRepository) ListVendorInvoices(ctx context.Context, filter port.InvoiceFilter) ([]domain.VendorInvoice, error) {
	w := invoiceWhere(filter, "i.vendor_id", "v.name")
	rows, err := r.pool.Query(ctx, vendorInvoiceSelect+w.String()+` ORDER BY i.issue_date DESC, i.created_at DESC`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list vendor invoices: %w", err)
	}
	invoices, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.VendorInvoice, error) {
		return scanVendorInvoice(row)
	})
	if err != nil {
		return nil, fmt.Errorf("list vendor invoices: %w", err)
	}
	return invoices, nil
}

func (r *InvoiceRepository) GetVendorInvoice(ctx context.Context, id uuid.UUID) (*domain.VendorInvoice, error) {
	inv, err := scanVendorInvoice(r.pool.QueryRow(ctx, vendorInvoiceSelect+` WHERE i.id = $1`, id))
	if err != nil {
		return nil, notFound(err, "vendor invoice", "get vendor invoice")
	}
	return &inv, nil
}

func (r *InvoiceRepository) CreateVendorInvoice(ctx context.Context, inv *domain.VendorInvoice) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO vendor_invoices
(id, invoice_number, amount, status, issue_date, due_date, paid_date, campaign_id, vendor_id, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		inv.ID, inv.Number, inv.Amount, inv.Status, inv.IssueDate, inv.DueDate, inv.PaidDate, inv.CampaignID, inv.VendorID, inv.CreatedAt, inv.UpdatedAt)
	if err != nil {
		return writeError(err, "vendor_invoices", "create vendor invoice")
	}
	return nil
}

func (r *InvoiceRepository) SetVendorInvoiceStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus, paidDate *time.Time) (*domain.VendorInvoice, error) {
	if err := r.setStatus(ctx, "vendor_invoices", "vendor invoice", id, status, paidDate); err != nil {
		return nil, err
	}
	return r.GetVendorInvoice(ctx, id)
}

// SetVendorInvoiceCampaign checks the target campaign under a share lock and
// moves the invoice to it in one transaction.
func (r *InvoiceRepository) SetVendorInvoiceCampaign(ctx context.Context, id uuid.UUID, campaignID *uuid.UUID) (*domain.VendorInvoice, error) {
	if err := r.assignCampaign(ctx, id, campaignID); err != nil {
		return nil, err
	}
	return r.GetVendorInvoice(ctx, id)
}

func (r *InvoiceRepository) DeleteVendorInvoice(ctx context.Context, id uuid.UUID) error {
	return r.delete(ctx, "vendor_invoices", "vendor invoice", id)
}

func (r *InvoiceRepository) assignCampaign(ctx context.Context, id uuid.UUID, campaignID *uuid.UUID) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("assign vendor invoice: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if campaignID != nil {
		var locked uuid.UUID
		err = tx.QueryRow(ctx, `SELECT id FROM campaigns WHERE id = $1 FOR SHARE`, *campaignID).Scan(&locked)
		if err != nil {
			return notFound(err, "campaign", "lock campaign")
		}
	}

	tag, err := tx.Exec(ctx, `UPDATE vendor_invoices SET campaign_id = $2, updated_at = now() WHERE id = $1`, id, campaignID)
	if err != nil {
		return writeError(err, "vendor_invoices", "assign vendor invoice")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("vendor invoice: %w", port.ErrNotFound)
	}
	return nil
}

// setStatus writes status and paid_date together so the paid CHECK holds.
func (r *InvoiceRepository) setStatus(ctx context.Context, table, entity string, id uuid.UUID, status domain.InvoiceStatus, paidDate *time.Time) error {
	tag, err := r.pool.Exec(ctx, `UPDATE `+table+` SET status = $2, paid_date = $3, updated_at = now() WHERE id = $1`, id, status, paidDate)
	if err != nil {
		return writeError(err, table, "update "+entity+" status")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", entity, port.ErrNotFound)
	}
	return nil
}

func (r *InvoiceRepository) delete(ctx context.Context, table, entity string, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", entity, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", entity, port.ErrNotFound)
	}
	return nil
}
