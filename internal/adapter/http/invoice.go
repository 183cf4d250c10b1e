package httpadapter

import (
	"net/http"

	"agency-backoffice/internal/core/domain"
	"agency-backoffice/internal/core/port"
)

// handleListCustomerInvoices accepts q, campaign_id, customer_id and status
// query parameters.
func (h *Handler) handleListCustomerInvoices(w http.ResponseWriter, r *http.Request) {
	filter, err := invoiceFilter(r, "customer_id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	invoices, err := h.svc.Invoices.ListCustomerInvoices(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newCustomerInvoiceResponses(invoices))
}

func (h *Handler) handleCreateCustomerInvoice(w http.ResponseWriter, r *http.Request) {
	var req customerInvoiceRequest
	if !h.decode(w, r, &req) {
		return
	}
	inv, err := h.svc.Invoices.CreateCustomerInvoice(r.Context(), domain.CustomerInvoice{
		Invoice:    req.toDomain(),
		CustomerID: req.CustomerID,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, newCustomerInvoiceResponse(*inv))
}

func (h *Handler) handleGetCustomerInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	inv, err := h.svc.Invoices.GetCustomerInvoice(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newCustomerInvoiceResponse(*inv))
}

func (h *Handler) handleDeleteCustomerInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Invoices.DeleteCustomerInvoice(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleCustomerInvoiceStatus expects {"status": "...", "paid_date": "YYYY-MM-DD"}.
// paid_date is optional and only used for paid.
func (h *Handler) handleCustomerInvoiceStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req statusRequest
	if !h.decode(w, r, &req) {
		return
	}
	inv, err := h.svc.Invoices.UpdateCustomerInvoiceStatus(r.Context(), id, port.StatusChange{
		Status:   req.Status,
		PaidDate: req.PaidDate.timePtr(),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newCustomerInvoiceResponse(*inv))
}

// handleListVendorInvoices accepts q, campaign_id, vendor_id, status and
// unassigned query parameters. unassigned=true wins over campaign_id.
func (h *Handler) handleListVendorInvoices(w http.ResponseWriter, r *http.Request) {
	filter, err := invoiceFilter(r, "vendor_id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	invoices, err := h.svc.Invoices.ListVendorInvoices(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newVendorInvoiceResponses(invoices))
}

func (h *Handler) handleCreateVendorInvoice(w http.ResponseWriter, r *http.Request) {
	var req vendorInvoiceRequest
	if !h.decode(w, r, &req) {
		return
	}
	inv, err := h.svc.Invoices.CreateVendorInvoice(r.Context(), domain.VendorInvoice{
		Invoice:  req.toDomain(),
		VendorID: req.VendorID,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, newVendorInvoiceResponse(*inv))
}

func (h *Handler) handleGetVendorInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	inv, err := h.svc.Invoices.GetVendorInvoice(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newVendorInvoiceResponse(*inv))
}

func (h *Handler) handleDeleteVendorInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Invoices.DeleteVendorInvoice(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleVendorInvoiceStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req statusRequest
	if !h.decode(w, r, &req) {
		return
	}
	inv, err := h.svc.Invoices.UpdateVendorInvoiceStatus(r.Context(), id, port.StatusChange{
		Status:   req.Status,
		PaidDate: req.PaidDate.timePtr(),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newVendorInvoiceResponse(*inv))
}

// handleAssignVendorInvoice expects {"campaign_id": "<uuid>"} or
// {"campaign_id": null} to unassign.
func (h *Handler) handleAssignVendorInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req assignRequest
	if !h.decode(w, r, &req) {
		return
	}
	inv, err := h.svc.Invoices.AssignVendorInvoice(r.Context(), id, req.CampaignID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newVendorInvoiceResponse(*inv))
}
