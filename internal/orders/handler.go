package orders

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/clothmarket/clothmarket/internal/platform/httpx"
)

const cartKeyHeader = "X-Cart-Key"

type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{
		logger:   logger,
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	f := ListFilter{UserID: r.URL.Query().Get("user_id")}
	if raw := r.URL.Query().Get("status"); raw != "" {
		st := Status(raw)
		if !st.Valid() {
			httpx.Problem(w, http.StatusBadRequest, "invalid filter", "unknown status "+raw)
			return
		}
		f.Status = &st
	}
	if raw := r.URL.Query().Get("since"); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			httpx.Problem(w, http.StatusBadRequest, "invalid filter", "since must be RFC 3339")
			return
		}
		f.Since = &ts
	}

	list, err := h.service.List(r.Context(), f)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if list == nil {
		list = []Order{}
	}
	httpx.JSON(w, http.StatusOK, list)
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	o, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, o)
}

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	cartKey := r.Header.Get(cartKeyHeader)
	if cartKey == "" {
		httpx.Problem(w, http.StatusBadRequest, "missing cart key", cartKeyHeader+" header is required")
		return
	}

	var req CheckoutRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "invalid payload", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "invalid payload", err.Error())
		return
	}

	o, err := h.service.Checkout(r.Context(), cartKey, req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, o)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "invalid payload", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "invalid payload", err.Error())
		return
	}

	o, err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), Status(req.Status))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, o)
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.RespondError(w, httpx.ErrNotFound)
	case errors.Is(err, ErrEmptyCart):
		httpx.Problem(w, http.StatusBadRequest, "empty cart", "cannot check out an empty cart")
	case errors.Is(err, ErrStockShort):
		httpx.RespondError(w, httpx.ErrStockExceeded)
	case errors.Is(err, ErrTransition):
		httpx.RespondError(w, httpx.ErrTransition)
	default:
		h.logger.Error("orders request failed", "error", err)
		httpx.RespondError(w, err)
	}
}
