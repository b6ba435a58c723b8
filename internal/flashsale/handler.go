package flashsale

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clothmarket/clothmarket/internal/platform/httpx"
)

// Handler serves the flash sale JSON endpoint.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs the flash sale HTTP handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/flash-sales", h.ActiveSet)
}

func (h *Handler) ActiveSet(w http.ResponseWriter, r *http.Request) {
	set, err := h.service.ActiveSet(r.Context())
	if err != nil {
		h.logger.Error("resolve flash sale set", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, set)
}
