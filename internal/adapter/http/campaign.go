package httpadapter

import (
	"net/http"

	"agency-backoffice/internal/core/port"
)

// handleListCampaigns returns every campaign with its financials, newest
// first. The optional q parameter searches name, description and purchase
// order number.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.Campaigns.List(r.Context(), port.CampaignFilter{Query: r.URL.Query().Get("q")})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]campaignResponse, len(rows))
	for i, row := range rows {
		out[i] = newCampaignResponse(row.Campaign)
		financials := row.Financials
		out[i].Financials = &financials
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req campaignRequest
	if !h.decode(w, r, &req) {
		return
	}
	c, err := h.svc.Campaigns.Create(r.Context(), req.toDomain())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, newCampaignResponse(*c))
}

// handleGetCampaign returns the campaign with its financials and every
// invoice billed against it.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	detail, err := h.svc.Campaigns.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp := campaignDetailResponse{
		campaignResponse: newCampaignResponse(detail.Campaign),
		CustomerInvoices: newCustomerInvoiceResponses(detail.CustomerInvoices),
		VendorInvoices:   newVendorInvoiceResponses(detail.VendorInvoices),
	}
	resp.Financials = &detail.Financials
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req campaignPatchRequest
	if !h.decode(w, r, &req) {
		return
	}
	c, err := h.svc.Campaigns.Update(r.Context(), id, req.toPatch())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newCampaignResponse(*c))
}

// handleDeleteCampaign deletes the campaign; its invoices become unassigned.
func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Campaigns.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleCampaignProfitability(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	f, err := h.svc.Campaigns.Profitability(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, f)
}
