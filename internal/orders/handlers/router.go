package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Router mounts the core contract consumed by the customer, kitchen and
// display views. ws is nil-safe for setups without live push.
func Router(h *Handler, ws http.HandlerFunc) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/menu", h.GetMenu)
		r.Post("/menu/seed", h.SeedMenu)
		r.Post("/menu/reseed", h.ReseedMenu)

		r.Post("/orders", h.CreateOrder)
		r.Get("/orders/board", h.GetBoard)
		r.Patch("/orders/{order_id}/status", h.UpdateStatus)
		r.Delete("/orders/{order_id}", h.DeleteOrder)
	})

	if ws != nil {
		r.Get("/ws", ws)
	}
	return r
}
