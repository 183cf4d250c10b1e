package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"agency-backoffice/internal/core/domain"
	"agency-backoffice/internal/core/port"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) writeMessage(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, errorResponse{Error: msg})
}

// writeError maps use case errors to status codes. Only 5xx causes are
// logged; their messages are not sent to the client.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, port.ErrNotFound):
		h.writeMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, port.ErrValidation):
		h.writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, port.ErrHasDependents):
		h.writeMessage(w, http.StatusConflict, err.Error())
	case errors.Is(err, port.ErrStoreUnavailable):
		h.logger.Warn("store unavailable", slog.String("path", r.URL.Path), slog.Any("error", err))
		h.writeMessage(w, http.StatusServiceUnavailable, "record store unavailable")
	default:
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		h.writeMessage(w, http.StatusInternalServerError, "internal error")
	}
}

// decode reads a JSON body into v, answering 400 itself on failure.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.writeMessage(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return false
	}
	return true
}

// pathID parses the {id} URL parameter, answering 400 itself on failure.
func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeMessage(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

// queryID parses an optional uuid query parameter.
func queryID(r *http.Request, key string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, port.Invalid(key, "must be a uuid")
	}
	return &id, nil
}

// invoiceFilter reads the shared invoice listing parameters. partyKey is
// customer_id or vendor_id.
func invoiceFilter(r *http.Request, partyKey string) (port.InvoiceFilter, error) {
	q := r.URL.Query()
	filter := port.InvoiceFilter{Query: q.Get("q")}

	var err error
	if filter.CampaignID, err = queryID(r, "campaign_id"); err != nil {
		return filter, err
	}
	if filter.PartyID, err = queryID(r, partyKey); err != nil {
		return filter, err
	}
	if raw := strings.TrimSpace(q.Get("status")); raw != "" {
		status, ok := domain.ParseInvoiceStatus(raw)
		if !ok {
			return filter, port.Invalid("status", "must be one of pending, paid, overdue")
		}
		filter.Status = &status
	}
	if raw := strings.TrimSpace(q.Get("unassigned")); raw != "" {
		if filter.Unassigned, err = strconv.ParseBool(raw); err != nil {
			return filter, port.Invalid("unassigned", "must be a boolean")
		}
	}
	return filter, nil
}
