package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/dmaia/storefront-api/internal/config"
	"github.com/dmaia/storefront-api/internal/handler"
	"github.com/dmaia/storefront-api/internal/repository"
	"github.com/dmaia/storefront-api/internal/service"
	"github.com/dmaia/storefront-api/internal/telemetry"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Prices and totals go over the wire as JSON numbers, matching the
	// documented response format.
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Tracing
	var extra []gin.HandlerFunc
	if cfg.Tracing.Enabled {
		tp, err := telemetry.NewTracerProvider(ctx, cfg.Tracing.ServiceName, cfg.Tracing.OTLPEndpoint)
		if err != nil {
			log.Error("init tracer", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				log.Error("tracer shutdown", "error", err)
			}
		}()
		extra = append(extra, otelgin.Middleware(cfg.Tracing.ServiceName))
		log.Info("tracing enabled", "endpoint", cfg.Tracing.OTLPEndpoint)
	}

	// Record store
	store := repository.NewStore()
	if cfg.Store.SeedData {
		store.Seed()
		log.Info("demo dataset loaded")
	}

	// Repositories
	userRepo := repository.NewUserRepository(store)
	productRepo := repository.NewProductRepository(store)
	orderRepo := repository.NewOrderRepository(store)

	// Services
	userSvc := service.NewUserService(userRepo)
	productSvc := service.NewProductService(productRepo)
	orderSvc := service.NewOrderService(orderRepo, userRepo)
	statsSvc := service.NewStatsService(userRepo, productRepo, orderRepo)

	// Handlers
	metaH := handler.NewMetaHandler()
	userH := handler.NewUserHandler(userSvc)
	productH := handler.NewProductHandler(productSvc)
	orderH := handler.NewOrderHandler(orderSvc)
	statsH := handler.NewStatsHandler(statsSvc)

	router := handler.NewRouter(log, metaH, userH, productH, orderH, statsH, extra...)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("starting HTTP server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", "error", err)
	}

	log.Info("server stopped")
}
