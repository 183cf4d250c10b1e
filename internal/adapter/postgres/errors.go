package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"agency-backoffice/internal/core/port"
)

// postgres error codes handled explicitly
const (
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeNotNullViolation    = "23502"
)

// notFound converts pgx.ErrNoRows into port.ErrNotFound tagged with entity.
// Other errors are wrapped with op.
func notFound(err error, entity, op string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", entity, port.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// writeError translates constraint violations raised by inserts and updates
// into validation errors. The field is derived from the constraint name,
// e.g. customer_invoices_customer_id_fkey becomes customer_id.
func writeError(err error, table, op string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("%s: %w", op, err)
	}
	switch pgErr.Code {
	case codeForeignKeyViolation:
		field := constraintField(pgErr.ConstraintName, table, "_fkey")
		return port.Invalid(field, "references a record that does not exist")
	case codeCheckViolation:
		field := constraintField(pgErr.ConstraintName, table, "_check")
		return port.Invalid(field, "violates constraint "+pgErr.ConstraintName)
	case codeNotNullViolation:
		return port.Invalid(pgErr.ColumnName, "is required")
	}
	return fmt.Errorf("%s: %w", op, err)
}

// deleteError maps a foreign key violation raised while deleting a customer
// or vendor to a DependentsError.
func deleteError(err error, entity, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation {
		return &port.DependentsError{Entity: entity}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func constraintField(constraint, table, suffix string) string {
	field := strings.TrimPrefix(constraint, table+"_")
	field = strings.TrimSuffix(field, suffix)
	if field == "" {
		return table
	}
	return field
}
