package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"agency-backoffice/internal/core/port"
)

// Services bundles the use cases served over HTTP. StoreOnline is reported
// by /healthz and is false when the service runs against the offline store.
type Services struct {
	Campaigns   port.CampaignUseCase
	Customers   port.CustomerUseCase
	Vendors     port.VendorUseCase
	Invoices    port.InvoiceUseCase
	Dashboard   port.DashboardUseCase
	StoreOnline bool
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// Routes are registered on a chi.Router under /api/v1; every request passes
// through request id, panic recovery and request logging middleware.
type Handler struct {
	svc    Services
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc Services, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)

	r.Get("/healthz", h.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", h.handleListCampaigns)
			r.Post("/", h.handleCreateCampaign)
			r.Get("/{id}", h.handleGetCampaign)
			r.Patch("/{id}", h.handleUpdateCampaign)
			r.Delete("/{id}", h.handleDeleteCampaign)
			r.Get("/{id}/profitability", h.handleCampaignProfitability)
		})
		r.Route("/customers", func(r chi.Router) {
			r.Get("/", h.handleListCustomers)
			r.Post("/", h.handleCreateCustomer)
			r.Get("/{id}", h.handleGetCustomer)
			r.Patch("/{id}", h.handleUpdateCustomer)
			r.Delete("/{id}", h.handleDeleteCustomer)
		})
		r.Route("/vendors", func(r chi.Router) {
			r.Get("/", h.handleListVendors)
			r.Post("/", h.handleCreateVendor)
			r.Get("/{id}", h.handleGetVendor)
			r.Patch("/{id}", h.handleUpdateVendor)
			r.Delete("/{id}", h.handleDeleteVendor)
		})
		r.Route("/customer-invoices", func(r chi.Router) {
			r.Get("/", h.handleListCustomerInvoices)
			r.Post("/", h.handleCreateCustomerInvoice)
			r.Get("/{id}", h.handleGetCustomerInvoice)
			r.Delete("/{id}", h.handleDeleteCustomerInvoice)
			r.Put("/{id}/status", h.handleCustomerInvoiceStatus)
		})
		r.Route("/vendor-invoices", func(r chi.Router) {
			r.Get("/", h.handleListVendorInvoices)
			r.Post("/", h.handleCreateVendorInvoice)
			r.Get("/{id}", h.handleGetVendorInvoice)
			r.Delete("/{id}", h.handleDeleteVendorInvoice)
			r.Put("/{id}/status", h.handleVendorInvoiceStatus)
			r.Put("/{id}/campaign", h.handleAssignVendorInvoice)
		})
		r.Get("/dashboard", h.handleDashboard)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler wrapped with OpenTelemetry
// server instrumentation.
func (h *Handler) Router() http.Handler {
	return otelhttp.NewHandler(h.router, "http.server",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	store := "online"
	if !h.svc.StoreOnline {
		store = "offline"
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "store": store})
}
