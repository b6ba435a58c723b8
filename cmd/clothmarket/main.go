package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clothmarket/clothmarket/internal/app"
	"github.com/clothmarket/clothmarket/internal/cart"
	"github.com/clothmarket/clothmarket/internal/catalog"
	"github.com/clothmarket/clothmarket/internal/flashsale"
	"github.com/clothmarket/clothmarket/internal/insights"
	insighthttp "github.com/clothmarket/clothmarket/internal/insights/http"
	"github.com/clothmarket/clothmarket/internal/observability"
	"github.com/clothmarket/clothmarket/internal/orders"
	"github.com/clothmarket/clothmarket/internal/platform/cache"
	"github.com/clothmarket/clothmarket/internal/platform/db"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	metrics := observability.NewMetrics()

	insightsCache := insights.NewCache(redisClient, cfg.InsightsCacheTTL)
	if err := insightsCache.ListenForInvalidation(ctx, ""); err != nil {
		logger.Warn("cache invalidation listener", slog.Any("error", err))
	}

	catalogRepo := catalog.NewRepository(pool)
	catalogService := catalog.NewService(catalogRepo, insightsCache)
	catalogHandler := catalog.NewHandler(logger, catalogService)

	flashSaleService := flashsale.NewService(catalogRepo, time.Now)
	flashSaleHandler := flashsale.NewHandler(logger, flashSaleService)

	cartStore := cart.NewRedisStore(redisClient, cfg.CartTTL)
	cartService := cart.NewService(cartStore, catalogService)
	cartHandler := cart.NewHandler(logger, cartService)

	ordersRepo := orders.NewRepository(pool)
	ordersService := orders.NewService(logger, ordersRepo, cartService, insightsCache)
	ordersHandler := orders.NewHandler(logger, ordersService)

	insightsService := insights.NewService(catalogRepo, ordersRepo, insightsCache)
	insightsHandler := insighthttp.NewHandler(logger, insightsService, cfg.PlatformFeePercent)

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		CatalogHandler:   catalogHandler,
		FlashSaleHandler: flashSaleHandler,
		CartHandler:      cartHandler,
		OrdersHandler:    ordersHandler,
		InsightsHandler:  insightsHandler,
		Metrics:          metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
