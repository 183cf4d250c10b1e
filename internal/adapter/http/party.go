package httpadapter

import (
	"net/http"

	"agency-backoffice/internal/core/domain"
	"agency-backoffice/internal/core/port"
)

func (h *Handler) handleListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.svc.Customers.List(r.Context(), port.PartyFilter{Query: r.URL.Query().Get("q")})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]customerResponse, len(customers))
	for i, c := range customers {
		out[i] = newCustomerResponse(c)
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleCreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if !h.decode(w, r, &req) {
		return
	}
	c, err := h.svc.Customers.Create(r.Context(), domain.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, newCustomerResponse(*c))
}

func (h *Handler) handleGetCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	c, err := h.svc.Customers.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newCustomerResponse(*c))
}

func (h *Handler) handleUpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req customerPatchRequest
	if !h.decode(w, r, &req) {
		return
	}
	c, err := h.svc.Customers.Update(r.Context(), id, port.CustomerPatch{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newCustomerResponse(*c))
}

// handleDeleteCustomer answers 409 while invoices reference the customer.
func (h *Handler) handleDeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Customers.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleListVendors(w http.ResponseWriter, r *http.Request) {
	vendors, err := h.svc.Vendors.List(r.Context(), port.PartyFilter{Query: r.URL.Query().Get("q")})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]vendorResponse, len(vendors))
	for i, v := range vendors {
		out[i] = newVendorResponse(v)
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleCreateVendor(w http.ResponseWriter, r *http.Request) {
	var req vendorRequest
	if !h.decode(w, r, &req) {
		return
	}
	v, err := h.svc.Vendors.Create(r.Context(), domain.Vendor{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		ServiceType: req.ServiceType,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, newVendorResponse(*v))
}

func (h *Handler) handleGetVendor(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	v, err := h.svc.Vendors.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newVendorResponse(*v))
}

func (h *Handler) handleUpdateVendor(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req vendorPatchRequest
	if !h.decode(w, r, &req) {
		return
	}
	v, err := h.svc.Vendors.Update(r.Context(), id, port.VendorPatch{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		ServiceType: req.ServiceType,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newVendorResponse(*v))
}

func (h *Handler) handleDeleteVendor(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Vendors.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
