package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"agency-backoffice/internal/core/domain"
	"agency-backoffice/internal/core/port"
)

// VendorRepository implements port.VendorRepository.
type VendorRepository struct {
	pool *pgxpool.Pool
}

func NewVendorRepository(pool *pgxpool.Pool) *VendorRepository {
	return &VendorRepository{pool: pool}
}

var _ port.VendorRepository = (*VendorRepository)(nil)

const vendorColumns = `id, name, email, phone, service_type, created_at, updated_at`

func scanVendor(row pgx.Row) (domain.Vendor, error) {
	var v domain.Vendor
	err := row.Scan(&v.ID, &v.Name, &v.Email, &v.Phone, &v.ServiceType, &v.CreatedAt, &v.UpdatedAt)
	return v, err
}

func (r *VendorRepository) ListVendors(ctx context.Context, filter port.PartyFilter) ([]domain.Vendor, error) {
	var w where
	w.search(filter.Query, "name", "email", "service_type")

	rows, err := r.pool.Query(ctx, `SELECT `+vendorColumns+` FROM vendors`+w.String()+` ORDER BY name, id`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	vendors, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Vendor, error) {
		return scanVendor(row)
	})
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	return vendors, nil
}

func (r *VendorRepository) GetVendor(ctx context.Context, id uuid.UUID) (*domain.Vendor, error) {
	v, err := scanVendor(r.pool.QueryRow(ctx, `SELECT `+vendorColumns+` FROM vendors WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "vendor", "get vendor")
	}
	return &v, nil
}

func (r *VendorRepository) CreateVendor(ctx context.Context, v *domain.Vendor) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO vendors (`+vendorColumns+`) VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		v.ID, v.Name, v.Email, v.Phone, v.ServiceType, v.CreatedAt, v.UpdatedAt)
	if err != nil {
		return writeError(err, "vendors", "create vendor")
	}
	return nil
}

func (r *VendorRepository) UpdateVendor(ctx context.Context, v *domain.Vendor) error {
	tag, err := r.pool.Exec(ctx, `UPDATE vendors SET name = $2, email = $3, phone = $4, service_type = $5, updated_at = $6 WHERE id = $1`,
		v.ID, v.Name, v.Email, v.Phone, v.ServiceType, v.UpdatedAt)
	if err != nil {
		return writeError(err, "vendors", "update vendor")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("vendor: %w", port.ErrNotFound)
	}
	return nil
}

// DeleteVendor mirrors CustomerRepository.DeleteCustomer for vendor invoices.
func (r *VendorRepository) DeleteVendor(ctx context.Context, id uuid.UUID) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("delete vendor: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	var locked uuid.UUID
	if err = tx.QueryRow(ctx, `SELECT id FROM vendors WHERE id = $1 FOR UPDATE`, id).Scan(&locked); err != nil {
		err = notFound(err, "vendor", "lock vendor")
		return err
	}

	var n int
	if err = tx.QueryRow(ctx, `SELECT count(*) FROM vendor_invoices WHERE vendor_id = $1`, id).Scan(&n); err != nil {
		return fmt.Errorf("count vendor invoices: %w", err)
	}
	if n > 0 {
		err = &port.DependentsError{Entity: "vendor", Count: n}
		return err
	}

	if _, err = tx.Exec(ctx, `DELETE FROM vendors WHERE id = $1`, id); err != nil {
		err = deleteError(err, "vendor", "delete vendor")
		return err
	}
	return nil
}

func (r *VendorRepository) CountVendorInvoices(ctx context.Context, vendorID uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM vendor_invoices WHERE vendor_id = $1`, vendorID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count vendor invoices: %w", err)
	}
	return n, nil
}
