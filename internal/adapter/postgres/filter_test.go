package postgres

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agency-backoffice/internal/core/domain"
	"agency-backoffice/internal/core/port"
)

func TestWhereEmpty(t *testing.T) {
	var w where
	w.search("   ", "name")
	assert.Equal(t, "", w.String())
	assert.Empty(t, w.args)
}

func TestWhereSearchSharesPlaceholder(t *testing.T) {
	var w where
	w.search("50%_off", "name", "email")
	w.and("status = " + w.arg("paid"))

	assert.Equal(t, " WHERE (name ILIKE $1 OR email ILIKE $1) AND status = $2", w.String())
	assert.Equal(t, []any{`%50\%\_off%`, "paid"}, w.args)
}

func TestInvoiceWhereUnassignedWins(t *testing.T) {
	campaign := uuid.New()
	vendor := uuid.New()
	status := domain.InvoiceOverdue

	w := invoiceWhere(port.InvoiceFilter{
		CampaignID: &campaign,
		PartyID:    &vendor,
		Status:     &status,
		Unassigned: true,
	}, "i.vendor_id", "v.name")

	assert.Equal(t, " WHERE i.campaign_id IS NULL AND i.vendor_id = $1 AND i.status = $2", w.String())
	assert.Equal(t, []any{vendor, "overdue"}, w.args)
}

func TestInvoiceWhereCampaign(t *testing.T) {
	campaign := uuid.New()
	w := invoiceWhere(port.InvoiceFilter{Query: "INV", CampaignID: &campaign}, "i.customer_id", "cu.name")

	assert.Equal(t, " WHERE (i.invoice_number ILIKE $1 OR cu.name ILIKE $1 OR COALESCE(c.name, '') ILIKE $1) AND i.campaign_id = $2", w.String())
}

func TestNotFoundTranslation(t *testing.T) {
	err := notFound(pgx.ErrNoRows, "campaign", "get campaign")
	assert.ErrorIs(t, err, port.ErrNotFound)
	assert.Equal(t, "campaign: not found", err.Error())

	other := errors.New("boom")
	err = notFound(other, "campaign", "get campaign")
	assert.ErrorIs(t, err, other)
	assert.NotErrorIs(t, err, port.ErrNotFound)
}

func TestWriteErrorForeignKey(t *testing.T) {
	err := writeError(&pgconn.PgError{Code: codeForeignKeyViolation, ConstraintName: "customer_invoices_customer_id_fkey"}, "customer_invoices", "create")

	var verr *port.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "customer_id", verr.Field)
	assert.ErrorIs(t, err, port.ErrValidation)
}

func TestWriteErrorCheck(t *testing.T) {
	err := writeError(&pgconn.PgError{Code: codeCheckViolation, ConstraintName: "campaigns_budget_check"}, "campaigns", "create")

	var verr *port.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "budget", verr.Field)
}

func TestDeleteErrorForeignKey(t *testing.T) {
	err := deleteError(&pgconn.PgError{Code: codeForeignKeyViolation}, "vendor", "delete vendor")

	assert.ErrorIs(t, err, port.ErrHasDependents)
	assert.Equal(t, "cannot delete vendor: invoices still reference it", err.Error())
}
