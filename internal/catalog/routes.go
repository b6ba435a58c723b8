package catalog

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/products", h.List)
	r.Get("/products/{id}", h.Show)
	r.Post("/products", h.Create)
	r.Put("/products/{id}", h.Update)
	r.Delete("/products/{id}", h.Delete)

	r.Post("/products/{id}/discount", h.ApplyDiscount)
	r.Delete("/products/{id}/discount", h.RemoveDiscount)

	r.Put("/products/{id}/variants", h.UpdateVariants)
	r.Put("/products/{id}/variants/stock", h.SetVariantStock)
}
