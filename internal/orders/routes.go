package orders

import "github.com/go-chi/chi/v5"

func (h *Handler) MountRoutes(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Checkout)
		r.Get("/{id}", h.Show)
		r.Put("/{id}/status", h.UpdateStatus)
	})
}
