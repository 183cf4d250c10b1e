package httpadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agency-backoffice/internal/core/domain"
	"agency-backoffice/internal/core/port"
	"agency-backoffice/internal/core/port/mocks"
	"agency-backoffice/internal/core/report"
)

type testServer struct {
	campaigns *mocks.MockCampaignUseCase
	customers *mocks.MockCustomerUseCase
	vendors   *mocks.MockVendorUseCase
	invoices  *mocks.MockInvoiceUseCase
	dashboard *mocks.MockDashboardUseCase
	handler   http.Handler
}

func newTestServer(t *testing.T) *testServer {
	s := &testServer{
		campaigns: mocks.NewMockCampaignUseCase(t),
		customers: mocks.NewMockCustomerUseCase(t),
		vendors:   mocks.NewMockVendorUseCase(t),
		invoices:  mocks.NewMockInvoiceUseCase(t),
		dashboard: mocks.NewMockDashboardUseCase(t),
	}
	h := NewHandler(Services{
		Campaigns:   s.campaigns,
		Customers:   s.customers,
		Vendors:     s.vendors,
		Invoices:    s.invoices,
		Dashboard:   s.dashboard,
		StoreOnline: true,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.handler = h.Router()
	return s
}

func (s *testServer) do(method, target, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "online", body["store"])
}

func TestListCampaigns(t *testing.T) {
	s := newTestServer(t)
	id := uuid.New()
	s.campaigns.EXPECT().List(mock.Anything, port.CampaignFilter{Query: "spring"}).Return([]port.CampaignSummary{{
		Campaign:   domain.Campaign{ID: id, Name: "Spring", StartDate: day(2026, 3, 1), Status: domain.CampaignActive, Budget: decimal.RequireFromString("5000")},
		Financials: report.Profitability(decimal.RequireFromString("1000"), decimal.RequireFromString("400")),
	}}, nil)

	rec := s.do(http.MethodGet, "/api/v1/campaigns?q=spring", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[[]map[string]any](t, rec)
	require.Len(t, body, 1)
	assert.Equal(t, id.String(), body[0]["id"])
	assert.Equal(t, "2026-03-01", body[0]["start_date"])
	assert.Nil(t, body[0]["end_date"])
	assert.Equal(t, "5000", body[0]["budget"])
	financials := body[0]["financials"].(map[string]any)
	assert.Equal(t, "600", financials["profit"])
	assert.Equal(t, "60", financials["profit_margin"])
}

func TestCreateCampaign(t *testing.T) {
	s := newTestServer(t)
	s.campaigns.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(c domain.Campaign) bool {
			return c.Name == "Launch" && c.StartDate.Equal(day(2026, 4, 1)) && c.EndDate != nil &&
				c.EndDate.Equal(day(2026, 6, 30)) && c.Budget.Equal(decimal.RequireFromString("1200.50"))
		})).
		RunAndReturn(func(_ context.Context, c domain.Campaign) (*domain.Campaign, error) {
			c.ID = uuid.New()
			return &c, nil
		})

	rec := s.do(http.MethodPost, "/api/v1/campaigns",
		`{"name":"Launch","start_date":"2026-04-01","end_date":"2026-06-30","budget":"1200.50","status":"active"}`)

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "2026-06-30", body["end_date"])
}

func TestCreateCampaignBadJSON(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/v1/campaigns", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/api/v1/campaigns", `{"name":"x","start_date":"01/04/2026"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPatchCampaignClearsEndDate(t *testing.T) {
	s := newTestServer(t)
	id := uuid.New()
	s.campaigns.EXPECT().
		Update(mock.Anything, id, mock.MatchedBy(func(p port.CampaignPatch) bool {
			return p.ClearEndDate && p.EndDate == nil && p.Name == nil && p.Status != nil && *p.Status == "completed"
		})).
		Return(&domain.Campaign{ID: id, Name: "x", Status: domain.CampaignCompleted}, nil)

	rec := s.do(http.MethodPatch, "/api/v1/campaigns/"+id.String(), `{"end_date":null,"status":"completed"}`)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestPatchCampaignKeepsAbsentEndDate(t *testing.T) {
	s := newTestServer(t)
	id := uuid.New()
	s.campaigns.EXPECT().
		Update(mock.Anything, id, mock.MatchedBy(func(p port.CampaignPatch) bool {
			return !p.ClearEndDate && p.EndDate == nil && p.Name != nil
		})).
		Return(&domain.Campaign{ID: id, Name: "y"}, nil)

	rec := s.do(http.MethodPatch, "/api/v1/campaigns/"+id.String(), `{"name":"y"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetCampaignDetail(t *testing.T) {
	s := newTestServer(t)
	id := uuid.New()
	paid := day(2026, 5, 10)
	s.campaigns.EXPECT().Get(mock.Anything, id).Return(&port.CampaignDetail{
		Campaign:   domain.Campaign{ID: id, Name: "Launch"},
		Financials: report.Profitability(decimal.RequireFromString("1000"), decimal.Zero),
		CustomerInvoices: []domain.CustomerInvoice{{
			Invoice:      domain.Invoice{Number: "INV-1", Amount: decimal.RequireFromString("1000"), Status: domain.InvoicePaid, PaidDate: &paid, CampaignID: &id, CampaignName: "Launch"},
			CustomerName: "Acme",
		}},
	}, nil)

	rec := s.do(http.MethodGet, "/api/v1/campaigns/"+id.String(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "Launch", body["name"])
	invoices := body["customer_invoices"].([]any)
	require.Len(t, invoices, 1)
	inv := invoices[0].(map[string]any)
	assert.Equal(t, "INV-1", inv["invoice_number"])
	assert.Equal(t, "2026-05-10", inv["paid_date"])
	assert.Equal(t, "Acme", inv["customer_name"])
	assert.Equal(t, []any{}, body["vendor_invoices"])
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"not found", fmt.Errorf("campaign: %w", port.ErrNotFound), http.StatusNotFound, "campaign: not found"},
		{"validation", port.Invalid("name", "is required"), http.StatusBadRequest, "name: is required"},
		{"dependents", &port.DependentsError{Entity: "customer", Count: 3}, http.StatusConflict, "cannot delete customer with 3 invoice(s); delete the invoices first"},
		{"offline", fmt.Errorf("delete customer: %w", port.ErrStoreUnavailable), http.StatusServiceUnavailable, "record store unavailable"},
		{"internal", assert.AnError, http.StatusInternalServerError, "internal error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			id := uuid.New()
			s.customers.EXPECT().Delete(mock.Anything, id).Return(tt.err)

			rec := s.do(http.MethodDelete, "/api/v1/customers/"+id.String(), "")

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.msg, decodeBody[map[string]string](t, rec)["error"])
		})
	}
}

func TestDeleteVendorNoContent(t *testing.T) {
	s := newTestServer(t)
	id := uuid.New()
	s.vendors.EXPECT().Delete(mock.Anything, id).Return(nil)

	rec := s.do(http.MethodDelete, "/api/v1/vendors/"+id.String(), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestInvalidPathID(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/v1/vendors/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListVendorInvoicesFilters(t *testing.T) {
	s := newTestServer(t)
	vendorID := uuid.New()
	overdue := domain.InvoiceOverdue
	s.invoices.EXPECT().ListVendorInvoices(mock.Anything, port.InvoiceFilter{
		Query:      "print",
		PartyID:    &vendorID,
		Status:     &overdue,
		Unassigned: true,
	}).Return([]domain.VendorInvoice{}, nil)

	rec := s.do(http.MethodGet, "/api/v1/vendor-invoices?q=print&vendor_id="+vendorID.String()+"&status=Overdue&unassigned=true", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListInvoicesRejectsBadFilters(t *testing.T) {
	s := newTestServer(t)

	for _, target := range []string{
		"/api/v1/customer-invoices?campaign_id=nope",
		"/api/v1/customer-invoices?status=void",
		"/api/v1/vendor-invoices?unassigned=maybe",
	} {
		rec := s.do(http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestCustomerInvoiceStatus(t *testing.T) {
	s := newTestServer(t)
	id := uuid.New()
	paid := day(2026, 10, 2)
	s.invoices.EXPECT().
		UpdateCustomerInvoiceStatus(mock.Anything, id, mock.MatchedBy(func(c port.StatusChange) bool {
			return c.Status == "paid" && c.PaidDate != nil && c.PaidDate.Equal(paid)
		})).
		Return(&domain.CustomerInvoice{Invoice: domain.Invoice{ID: id, Status: domain.InvoicePaid, PaidDate: &paid}}, nil)

	rec := s.do(http.MethodPut, "/api/v1/customer-invoices/"+id.String()+"/status", `{"status":"paid","paid_date":"2026-10-02"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "paid", body["status"])
	assert.Equal(t, "2026-10-02", body["paid_date"])
}

func TestAssignVendorInvoice(t *testing.T) {
	s := newTestServer(t)
	id, campaignID := uuid.New(), uuid.New()
	s.invoices.EXPECT().AssignVendorInvoice(mock.Anything, id, &campaignID).
		Return(&domain.VendorInvoice{Invoice: domain.Invoice{ID: id, CampaignID: &campaignID}}, nil)
	s.invoices.EXPECT().AssignVendorInvoice(mock.Anything, id, (*uuid.UUID)(nil)).
		Return(&domain.VendorInvoice{Invoice: domain.Invoice{ID: id}}, nil)

	rec := s.do(http.MethodPut, "/api/v1/vendor-invoices/"+id.String()+"/campaign", `{"campaign_id":"`+campaignID.String()+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, campaignID.String(), decodeBody[map[string]any](t, rec)["campaign_id"])

	rec = s.do(http.MethodPut, "/api/v1/vendor-invoices/"+id.String()+"/campaign", `{"campaign_id":null}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decodeBody[map[string]any](t, rec)["campaign_id"])
}

func TestCreateVendorInvoice(t *testing.T) {
	s := newTestServer(t)
	vendorID := uuid.New()
	s.invoices.EXPECT().
		CreateVendorInvoice(mock.Anything, mock.MatchedBy(func(inv domain.VendorInvoice) bool {
			return inv.VendorID == vendorID && inv.Number == "V-9" && inv.CampaignID == nil &&
				inv.Amount.Equal(decimal.RequireFromString("99.90")) && inv.IssueDate.Equal(day(2026, 10, 1))
		})).
		RunAndReturn(func(_ context.Context, inv domain.VendorInvoice) (*domain.VendorInvoice, error) {
			inv.ID = uuid.New()
			inv.VendorName = "Printers"
			return &inv, nil
		})

	rec := s.do(http.MethodPost, "/api/v1/vendor-invoices",
		`{"invoice_number":"V-9","amount":99.90,"issue_date":"2026-10-01","due_date":"2026-10-31","vendor_id":"`+vendorID.String()+`"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "Printers", body["vendor_name"])
	assert.Equal(t, "99.9", body["amount"])
}

func TestDashboard(t *testing.T) {
	s := newTestServer(t)
	d := report.BuildDashboard(nil, nil, nil, day(2026, 10, 16))
	s.dashboard.EXPECT().Summary(mock.Anything).Return(&d, nil)

	rec := s.do(http.MethodGet, "/api/v1/dashboard", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]any](t, rec)
	assert.Len(t, body["monthly"], report.TrailingMonths)
	assert.Equal(t, []any{}, body["expense_breakdown"])
}
