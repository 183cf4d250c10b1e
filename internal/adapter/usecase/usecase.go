package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"agency-backoffice/internal/core/domain"
	"agency-backoffice/internal/core/port"
	"agency-backoffice/internal/observability"
)

var tracer = otel.Tracer(observability.TracerName)

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return tracer.Start(ctx, name)
}

// endSpan records err on span and ends it.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// invalidator drops the cached dashboard after a successful mutation. Cache
// failures are logged, never returned: the TTL bounds staleness.
type invalidator struct {
	cache  port.DashboardCache
	logger *slog.Logger
}

func (i invalidator) invalidate(ctx context.Context) {
	if err := i.cache.Invalidate(ctx); err != nil {
		i.logger.Warn("dashboard cache invalidation failed", slog.Any("error", err))
	}
}

func utcNow() time.Time { return time.Now().UTC() }

// required trims s and rejects it when blank.
func required(field, s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", port.Invalid(field, "is required")
	}
	return s, nil
}

// dayPtr truncates a non-nil date to its calendar day.
func dayPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := domain.Day(*t)
	return &d
}

// paidDateFor returns the paid date to store with status: the given date or
// today for paid, nil for everything else.
func paidDateFor(status domain.InvoiceStatus, given *time.Time, now time.Time) *time.Time {
	if status != domain.InvoicePaid {
		return nil
	}
	if given != nil {
		return dayPtr(given)
	}
	today := domain.Day(now)
	return &today
}

// normalizeInvoice validates the ledger-independent fields of inv and
// normalises its dates and status in place.
func normalizeInvoice(inv *domain.Invoice, now time.Time) error {
	number, err := required("invoice_number", inv.Number)
	if err != nil {
		return err
	}
	inv.Number = number

	if inv.Amount.IsNegative() {
		return port.Invalid("amount", "must not be negative")
	}

	status := domain.InvoicePending
	if strings.TrimSpace(string(inv.Status)) != "" {
		var ok bool
		if status, ok = domain.ParseInvoiceStatus(string(inv.Status)); !ok {
			return port.Invalid("status", "must be one of pending, paid, overdue")
		}
	}
	inv.Status = status

	if inv.IssueDate.IsZero() {
		return port.Invalid("issue_date", "is required")
	}
	if inv.DueDate.IsZero() {
		return port.Invalid("due_date", "is required")
	}
	inv.IssueDate = domain.Day(inv.IssueDate)
	inv.DueDate = domain.Day(inv.DueDate)
	if inv.DueDate.Before(inv.IssueDate) {
		return port.Invalid("due_date", "must not be before issue_date")
	}

	inv.PaidDate = paidDateFor(status, inv.PaidDate, now)
	return nil
}
