package httpadapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"agency-backoffice/internal/core/domain"
	"agency-backoffice/internal/core/port"
	"agency-backoffice/internal/core/report"
)

const dateLayout = "2006-01-02"

// Date is a calendar date encoded as YYYY-MM-DD.
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		// full timestamps are accepted and keep the calendar date written in
		// their own offset
		if t, err = time.Parse(time.RFC3339, s); err != nil {
			return fmt.Errorf("date %q must be YYYY-MM-DD", s)
		}
		y, m, dd := t.Date()
		t = time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)
	}
	*d = Date{domain.Day(t)}
	return nil
}

func datePtr(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	return &Date{*t}
}

func (d *Date) timePtr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

// nullableDate tells an absent field apart from an explicit null.
type nullableDate struct {
	Set   bool
	Value *Date
}

func (n *nullableDate) UnmarshalJSON(b []byte) error {
	n.Set = true
	if bytes.Equal(b, []byte("null")) {
		n.Value = nil
		return nil
	}
	var d Date
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	n.Value = &d
	return nil
}

// campaigns

type campaignRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	PONumber    string          `json:"po_number"`
	StartDate   Date            `json:"start_date"`
	EndDate     *Date           `json:"end_date"`
	Budget      decimal.Decimal `json:"budget"`
	Status      string          `json:"status"`
}

func (req campaignRequest) toDomain() domain.Campaign {
	return domain.Campaign{
		Name:        req.Name,
		Description: req.Description,
		PONumber:    req.PONumber,
		StartDate:   req.StartDate.Time,
		EndDate:     req.EndDate.timePtr(),
		Budget:      req.Budget,
		Status:      domain.CampaignStatus(req.Status),
	}
}

// campaignPatchRequest carries a partial update. An explicit null end_date
// clears it.
type campaignPatchRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	PONumber    *string          `json:"po_number"`
	StartDate   *Date            `json:"start_date"`
	EndDate     nullableDate     `json:"end_date"`
	Budget      *decimal.Decimal `json:"budget"`
	Status      *string          `json:"status"`
}

func (req campaignPatchRequest) toPatch() port.CampaignPatch {
	p := port.CampaignPatch{
		Name:        req.Name,
		Description: req.Description,
		PONumber:    req.PONumber,
		StartDate:   req.StartDate.timePtr(),
		Budget:      req.Budget,
		Status:      req.Status,
	}
	if req.EndDate.Set {
		if req.EndDate.Value == nil || req.EndDate.Value.IsZero() {
			p.ClearEndDate = true
		} else {
			p.EndDate = req.EndDate.Value.timePtr()
		}
	}
	return p
}

type campaignResponse struct {
	ID          uuid.UUID                  `json:"id"`
	Name        string                     `json:"name"`
	Description string                     `json:"description"`
	PONumber    string                     `json:"po_number"`
	StartDate   Date                       `json:"start_date"`
	EndDate     *Date                      `json:"end_date"`
	Budget      decimal.Decimal            `json:"budget"`
	Status      string                     `json:"status"`
	CreatedAt   time.Time                  `json:"created_at"`
	UpdatedAt   time.Time                  `json:"updated_at"`
	Financials  *report.CampaignFinancials `json:"financials,omitempty"`
}

func newCampaignResponse(c domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		PONumber:    c.PONumber,
		StartDate:   Date{c.StartDate},
		EndDate:     datePtr(c.EndDate),
		Budget:      c.Budget,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

type campaignDetailResponse struct {
	campaignResponse
	CustomerInvoices []customerInvoiceResponse `json:"customer_invoices"`
	VendorInvoices   []vendorInvoiceResponse   `json:"vendor_invoices"`
}

// customers and vendors

type customerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
}

type customerPatchRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
}

type customerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newCustomerResponse(c domain.Customer) customerResponse {
	return customerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.Company,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type vendorRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	ServiceType string `json:"service_type"`
}

type vendorPatchRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	ServiceType *string `json:"service_type"`
}

type vendorResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	ServiceType string    `json:"service_type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newVendorResponse(v domain.Vendor) vendorResponse {
	return vendorResponse{
		ID:          v.ID,
		Name:        v.Name,
		Email:       v.Email,
		Phone:       v.Phone,
		ServiceType: v.ServiceType,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

// invoices

type invoiceRequest struct {
	InvoiceNumber string          `json:"invoice_number"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	IssueDate     Date            `json:"issue_date"`
	DueDate       Date            `json:"due_date"`
	PaidDate      *Date           `json:"paid_date"`
	CampaignID    *uuid.UUID      `json:"campaign_id"`
}

func (req invoiceRequest) toDomain() domain.Invoice {
	return domain.Invoice{
		Number:     req.InvoiceNumber,
		Amount:     req.Amount,
		Status:     domain.InvoiceStatus(req.Status),
		IssueDate:  req.IssueDate.Time,
		DueDate:    req.DueDate.Time,
		PaidDate:   req.PaidDate.timePtr(),
		CampaignID: req.CampaignID,
	}
}

type customerInvoiceRequest struct {
	invoiceRequest
	CustomerID uuid.UUID `json:"customer_id"`
}

type vendorInvoiceRequest struct {
	invoiceRequest
	VendorID uuid.UUID `json:"vendor_id"`
}

type statusRequest struct {
	Status   string `json:"status"`
	PaidDate *Date  `json:"paid_date"`
}

type assignRequest struct {
	CampaignID *uuid.UUID `json:"campaign_id"`
}

type invoiceResponse struct {
	ID            uuid.UUID       `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	IssueDate     Date            `json:"issue_date"`
	DueDate       Date            `json:"due_date"`
	PaidDate      *Date           `json:"paid_date"`
	CampaignID    *uuid.UUID      `json:"campaign_id"`
	CampaignName  string          `json:"campaign_name"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func newInvoiceResponse(inv domain.Invoice) invoiceResponse {
	return invoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.Number,
		Amount:        inv.Amount,
		Status:        string(inv.Status),
		IssueDate:     Date{inv.IssueDate},
		DueDate:       Date{inv.DueDate},
		PaidDate:      datePtr(inv.PaidDate),
		CampaignID:    inv.CampaignID,
		CampaignName:  inv.CampaignName,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
}

type customerInvoiceResponse struct {
	invoiceResponse
	CustomerID   uuid.UUID `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	Company      string    `json:"company"`
}

func newCustomerInvoiceResponse(inv domain.CustomerInvoice) customerInvoiceResponse {
	return customerInvoiceResponse{
		invoiceResponse: newInvoiceResponse(inv.Invoice),
		CustomerID:      inv.CustomerID,
		CustomerName:    inv.CustomerName,
		Company:         inv.Company,
	}
}

func newCustomerInvoiceResponses(in []domain.CustomerInvoice) []customerInvoiceResponse {
	out := make([]customerInvoiceResponse, len(in))
	for i, inv := range in {
		out[i] = newCustomerInvoiceResponse(inv)
	}
	return out
}

type vendorInvoiceResponse struct {
	invoiceResponse
	VendorID    uuid.UUID `json:"vendor_id"`
	VendorName  string    `json:"vendor_name"`
	ServiceType string    `json:"service_type"`
}

func newVendorInvoiceResponse(inv domain.VendorInvoice) vendorInvoiceResponse {
	return vendorInvoiceResponse{
		invoiceResponse: newInvoiceResponse(inv.Invoice),
		VendorID:        inv.VendorID,
		VendorName:      inv.VendorName,
		ServiceType:     inv.ServiceType,
	}
}

func newVendorInvoiceResponses(in []domain.VendorInvoice) []vendorInvoiceResponse {
	out := make([]vendorInvoiceResponse, len(in))
	for i, inv := range in {
		out[i] = newVendorInvoiceResponse(inv)
	}
	return out
}
