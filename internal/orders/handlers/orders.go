package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"comanda-system/internal/domain"
	"comanda-system/internal/menu"
	"comanda-system/internal/orders/service"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	orders service.OrdersServiceInterface
	menu   menu.ServiceInterface
}

func New(orders service.OrdersServiceInterface, menuSvc menu.ServiceInterface) *Handler {
	return &Handler{orders: orders, menu: menuSvc}
}

func (h *Handler) GetMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.menu.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if items == nil {
		items = []domain.MenuItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) SeedMenu(w http.ResponseWriter, r *http.Request) {
	if err := h.menu.SeedIfEmpty(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ReseedMenu(w http.ResponseWriter, r *http.Request) {
	if err := h.menu.Reseed(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	resp, err := h.orders.CreateOrder(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	board, err := h.orders.Board(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, board)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if err := h.orders.UpdateStatus(r.Context(), chi.URLParam(r, "order_id"), req.Status); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.orders.DeleteOrder(r.Context(), chi.URLParam(r, "order_id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeProblem renders the single error shape of the API (simplified
// RFC 7807 problem JSON).
func writeProblem(w http.ResponseWriter, code int, typ, detail string) {
	writeJSON(w, code, map[string]any{
		"type":   typ,
		"title":  http.StatusText(code),
		"status": code,
		"detail": detail,
	})
}

// writeError maps the domain error taxonomy onto HTTP. Anything that is not
// a caller fault is reported as the store being unavailable; a failed call
// never leaves partial state behind.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeProblem(w, http.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, domain.ErrInvalidTransition):
		writeProblem(w, http.StatusConflict, "invalid_transition", err.Error())
	default:
		writeProblem(w, http.StatusServiceUnavailable, "store_unavailable", err.Error())
	}
}
