package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus is the payment state shared by both ledgers.
type InvoiceStatus string

const (
	InvoicePending InvoiceStatus = "pending"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
)

// ParseInvoiceStatus normalises s and reports whether it is a known status.
func ParseInvoiceStatus(s string) (InvoiceStatus, bool) {
	st := InvoiceStatus(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case InvoicePending, InvoicePaid, InvoiceOverdue:
		return st, true
	default:
		return st, false
	}
}

// Invoice holds the fields common to customer and vendor invoices. Amounts
// are non-negative. PaidDate is set if and only if Status is InvoicePaid.
type Invoice struct {
	ID         uuid.UUID
	Number     string
	Amount     decimal.Decimal
	Status     InvoiceStatus
	IssueDate  time.Time
	DueDate    time.Time
	PaidDate   *time.Time
	CampaignID *uuid.UUID // nil once unassigned or after the campaign is deleted
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// CampaignName is flattened from the campaigns table on reads.
	CampaignName string
}

// Base returns the ledger-independent part of an invoice. Both ledger types
// inherit it through embedding, which lets reports range over either.
func (i Invoice) Base() Invoice { return i }

// Entry is satisfied by CustomerInvoice and VendorInvoice.
type Entry interface {
	Base() Invoice
}

// CustomerInvoice is revenue billed to a customer.
type CustomerInvoice struct {
	Invoice
	CustomerID uuid.UUID

	CustomerName string
	Company      string
}

// VendorInvoice is an expense billed by a vendor. It may be unassigned to
// any campaign.
type VendorInvoice struct {
	Invoice
	VendorID uuid.UUID

	VendorName  string
	ServiceType string
}

// Day truncates t to its UTC calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
