package insighthttp

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/clothmarket/clothmarket/internal/insights"
	"github.com/clothmarket/clothmarket/internal/insights/export"
	"github.com/clothmarket/clothmarket/internal/platform/httpx"
)

var dayRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

const requestTimeout = 2 * time.Second

// InsightsService defines the analytics data contract used by the handler.
type InsightsService interface {
	Daily(ctx context.Context, day string) (insights.DailySummary, error)
	MonthlyPnL(ctx context.Context) ([]insights.MonthlyEntry, error)
	Categories(ctx context.Context) ([]insights.CategoryStat, error)
	Opportunities(ctx context.Context, limit int) ([]insights.Opportunity, error)
	Simulate(in insights.SimulateFeeInputs) insights.FeeSimulation
}

// Handler coordinates HTTP requests for the seller insights dashboard.
type Handler struct {
	logger            *slog.Logger
	service           InsightsService
	defaultFeePercent float64
	csvPool           sync.Pool
	now               func() time.Time
}

// NewHandler constructs the insights HTTP handler. defaultFeePercent
// fills the calculator's platform fee when the caller omits it.
func NewHandler(logger *slog.Logger, service InsightsService, defaultFeePercent float64) *Handler {
	h := &Handler{
		logger:            logger,
		service:           service,
		defaultFeePercent: defaultFeePercent,
		now:               time.Now,
	}
	h.csvPool.New = func() any { return new(bytes.Buffer) }
	return h
}

// WithNow overrides the handler clock for testing.
func (h *Handler) WithNow(fn func() time.Time) {
	if fn != nil {
		h.now = fn
	}
}

func (h *Handler) handleDaily(w http.ResponseWriter, r *http.Request) {
	day := strings.TrimSpace(r.URL.Query().Get("day"))
	if day == "" {
		day = h.now().UTC().Format("2006-01-02")
	}
	if !dayRegex.MatchString(day) {
		httpx.Problem(w, http.StatusBadRequest, "invalid filter", "day must be YYYY-MM-DD")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	summary, err := h.service.Daily(ctx, day)
	if err != nil {
		h.handleServerError(w, r, "load daily summary", err)
		return
	}
	httpx.JSON(w, http.StatusOK, summary)
}

func (h *Handler) handlePnL(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	entries, err := h.service.MonthlyPnL(ctx)
	if err != nil {
		h.handleServerError(w, r, "load monthly pnl", err)
		return
	}
	if entries == nil {
		entries = []insights.MonthlyEntry{}
	}
	httpx.JSON(w, http.StatusOK, entries)
}

func (h *Handler) handleCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	stats, err := h.service.Categories(ctx)
	if err != nil {
		h.handleServerError(w, r, "load category performance", err)
		return
	}
	if stats == nil {
		stats = []insights.CategoryStat{}
	}
	httpx.JSON(w, http.StatusOK, stats)
}

func (h *Handler) handleOpportunities(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 1 {
			httpx.Problem(w, http.StatusBadRequest, "invalid filter", "limit must be a positive integer")
			return
		}
		limit = value
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	list, err := h.service.Opportunities(ctx, limit)
	if err != nil {
		h.handleServerError(w, r, "load opportunities", err)
		return
	}
	if list == nil {
		list = []insights.Opportunity{}
	}
	httpx.JSON(w, http.StatusOK, list)
}

func (h *Handler) handleFeeCalc(w http.ResponseWriter, r *http.Request) {
	var in insights.SimulateFeeInputs
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "invalid payload", err.Error())
		return
	}
	if strings.TrimSpace(in.PlatformFeePercent) == "" {
		in.PlatformFeePercent = strconv.FormatFloat(h.defaultFeePercent, 'f', -1, 64)
	}
	// Malformed numbers coerce to zero; the calculator never rejects.
	httpx.JSON(w, http.StatusOK, h.service.Simulate(in))
}

func (h *Handler) handleCSV(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	entries, err := h.service.MonthlyPnL(ctx)
	if err != nil {
		h.handleServerError(w, r, "load monthly pnl", err)
		return
	}
	stats, err := h.service.Categories(ctx)
	if err != nil {
		h.handleServerError(w, r, "load category performance", err)
		return
	}

	buf := h.csvPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer func() {
		buf.Reset()
		h.csvPool.Put(buf)
	}()

	if err := export.WriteMonthlyPnLCSV(buf, entries); err != nil {
		h.handleServerError(w, r, "write pnl csv", err)
		return
	}
	buf.WriteString("\n")
	if err := export.WriteCategoryCSV(buf, stats); err != nil {
		h.handleServerError(w, r, "write category csv", err)
		return
	}

	filename := fmt.Sprintf("insights-%s.csv", h.now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logError("stream csv", err)
	}
}

func (h *Handler) handleServerError(w http.ResponseWriter, r *http.Request, op string, err error) {
	h.logError(op, err)
	httpx.RespondError(w, err)
}

func (h *Handler) logError(op string, err error) {
	if h.logger != nil {
		h.logger.Error(op, slog.Any("error", err))
	}
}
