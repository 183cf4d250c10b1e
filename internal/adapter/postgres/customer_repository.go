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

// CustomerRepository implements port.CustomerRepository.
type CustomerRepository struct {
	pool *pgxpool.Pool
}

func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

var _ port.CustomerRepository = (*CustomerRepository)(nil)

const customerColumns = `id, name, email, phone, company, created_at, updated_at`

func scanCustomer(row pgx.Row) (domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *CustomerRepository) ListCustomers(ctx context.Context, filter port.PartyFilter) ([]domain.Customer, error) {
	var w where
	w.search(filter.Query, "name", "email", "company")

	rows, err := r.pool.Query(ctx, `SELECT `+customerColumns+` FROM customers`+w.String()+` ORDER BY name, id`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	customers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Customer, error) {
		return scanCustomer(row)
	})
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

func (r *CustomerRepository) GetCustomer(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	c, err := scanCustomer(r.pool.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "customer", "get customer")
	}
	return &c, nil
}

func (r *CustomerRepository) CreateCustomer(ctx context.Context, c *domain.Customer) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO customers (`+customerColumns+`) VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		c.ID, c.Name, c.Email, c.Phone, c.Company, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return writeError(err, "customers", "create customer")
	}
	return nil
}

func (r *CustomerRepository) UpdateCustomer(ctx context.Context, c *domain.Customer) error {
	tag, err := r.pool.Exec(ctx, `UPDATE customers SET name = $2, email = $3, phone = $4, company = $5, updated_at = $6 WHERE id = $1`,
		c.ID, c.Name, c.Email, c.Phone, c.Company, c.UpdatedAt)
	if err != nil {
		return writeError(err, "customers", "update customer")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("customer: %w", port.ErrNotFound)
	}
	return nil
}

// DeleteCustomer locks the customer row, recounts its invoices and deletes
// it only when none remain.
func (r *CustomerRepository) DeleteCustomer(ctx context.Context, id uuid.UUID) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	var locked uuid.UUID
	if err = tx.QueryRow(ctx, `SELECT id FROM customers WHERE id = $1 FOR UPDATE`, id).Scan(&locked); err != nil {
		err = notFound(err, "customer", "lock customer")
		return err
	}

	var n int
	if err = tx.QueryRow(ctx, `SELECT count(*) FROM customer_invoices WHERE customer_id = $1`, id).Scan(&n); err != nil {
		return fmt.Errorf("count customer invoices: %w", err)
	}
	if n > 0 {
		err = &port.DependentsError{Entity: "customer", Count: n}
		return err
	}

	if _, err = tx.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id); err != nil {
		err = deleteError(err, "customer", "delete customer")
		return err
	}
	return nil
}

func (r *CustomerRepository) CountCustomerInvoices(ctx context.Context, customerID uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM customer_invoices WHERE customer_id = $1`, customerID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count customer invoices: %w", err)
	}
	return n, nil
}
