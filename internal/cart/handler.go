package cart

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/clothmarket/clothmarket/internal/catalog"
	"github.com/clothmarket/clothmarket/internal/platform/httpx"
)

const keyHeader = "X-Cart-Key"

type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

type cartResponse struct {
	Items     []Item  `json:"items"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"item_count"`
}

func newCartResponse(c Cart) cartResponse {
	items := c.Items
	if items == nil {
		items = []Item{}
	}
	return cartResponse{Items: items, Total: c.Total(), ItemCount: c.ItemCount()}
}

// cartKey returns the caller's cart key, minting one when absent. The
// key is always echoed back so first-touch clients can keep it.
func (h *Handler) cartKey(w http.ResponseWriter, r *http.Request) string {
	key := r.Header.Get(keyHeader)
	if key == "" {
		key = uuid.NewString()
	}
	w.Header().Set(keyHeader, key)
	return key
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	key := h.cartKey(w, r)
	c, err := h.service.Get(r.Context(), key)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, newCartResponse(c))
}

func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "invalid payload", err.Error())
		return
	}
	if req.ProductID == "" {
		httpx.Problem(w, http.StatusBadRequest, "invalid payload", "product_id is required")
		return
	}

	key := h.cartKey(w, r)
	c, err := h.service.Add(r.Context(), key, req.ProductID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, newCartResponse(c))
}

func (h *Handler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	var req SetQuantityRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "invalid payload", err.Error())
		return
	}

	key := h.cartKey(w, r)
	c, err := h.service.SetQuantity(r.Context(), key, chi.URLParam(r, "productID"), req.Quantity)
	if errors.Is(err, ErrStockExceeded) {
		// The cart was clamped and saved; report the adjusted state.
		httpx.JSON(w, http.StatusConflict, newCartResponse(c))
		return
	}
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, newCartResponse(c))
}

func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	key := h.cartKey(w, r)
	c, err := h.service.Remove(r.Context(), key, chi.URLParam(r, "productID"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, newCartResponse(c))
}

func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	key := h.cartKey(w, r)
	if err := h.service.Clear(r.Context(), key); err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, newCartResponse(Cart{}))
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		httpx.RespondError(w, httpx.ErrNotFound)
	case errors.Is(err, ErrStockExceeded):
		httpx.RespondError(w, httpx.ErrStockExceeded)
	default:
		h.logger.Error("cart request failed", "error", err)
		httpx.RespondError(w, err)
	}
}
