package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/clothmarket/clothmarket/internal/cart"
	"github.com/clothmarket/clothmarket/internal/catalog"
	"github.com/clothmarket/clothmarket/internal/flashsale"
	insighthttp "github.com/clothmarket/clothmarket/internal/insights/http"
	"github.com/clothmarket/clothmarket/internal/observability"
	"github.com/clothmarket/clothmarket/internal/orders"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger           *slog.Logger
	Config           *Config
	CatalogHandler   *catalog.Handler
	FlashSaleHandler *flashsale.Handler
	CartHandler      *cart.Handler
	OrdersHandler    *orders.Handler
	InsightsHandler  *insighthttp.Handler
	Metrics          *observability.Metrics
}

// NewRouter constructs the chi.Router with storefront defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	if !params.Config.IsProduction() {
		r.Use(chimw.Logger)
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if params.Metrics != nil {
		r.Handle("/metrics", params.Metrics.Handler())
	}

	r.Route("/api/v1", func(api chi.Router) {
		if params.CatalogHandler != nil {
			params.CatalogHandler.MountRoutes(api)
		}
		if params.FlashSaleHandler != nil {
			params.FlashSaleHandler.MountRoutes(api)
		}
		if params.CartHandler != nil {
			params.CartHandler.MountRoutes(api)
		}
		if params.OrdersHandler != nil {
			params.OrdersHandler.MountRoutes(api)
		}
		if params.InsightsHandler != nil {
			params.InsightsHandler.MountRoutes(api)
		}
	})

	return r
}
