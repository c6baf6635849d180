package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogapp "github.com/zenerp/backend/internal/application/catalog"
	financeapp "github.com/zenerp/backend/internal/application/finance"
	partnerapp "github.com/zenerp/backend/internal/application/partner"
	searchapp "github.com/zenerp/backend/internal/application/search"
	tradeapp "github.com/zenerp/backend/internal/application/trade"
	"github.com/zenerp/backend/internal/infrastructure/config"
	"github.com/zenerp/backend/internal/infrastructure/logger"
	"github.com/zenerp/backend/internal/infrastructure/persistence/snapshot"
	"github.com/zenerp/backend/internal/interfaces/http/handler"
	"github.com/zenerp/backend/internal/interfaces/http/middleware"
	"github.com/zenerp/backend/internal/interfaces/http/router"
	"github.com/zenerp/backend/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting ZenERP Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Open the snapshot gateway and load the last saved state, falling back
	// to the seed data on a fresh install
	gateway, err := snapshot.Open(cfg.Snapshot)
	if err != nil {
		log.Fatal("Failed to open snapshot store", zap.Error(err))
	}
	defer func() {
		if err := gateway.Close(); err != nil {
			log.Error("Error closing snapshot store", zap.Error(err))
		}
	}()

	state, err := gateway.Load()
	switch {
	case errors.Is(err, snapshot.ErrNoSnapshot):
		log.Info("No snapshot found, seeding initial data")
		state = store.Seed()
		if err := gateway.Save(state); err != nil {
			log.Fatal("Failed to save initial snapshot", zap.Error(err))
		}
	case err != nil:
		log.Fatal("Failed to load snapshot", zap.Error(err))
	default:
		log.Info("Snapshot loaded",
			zap.String("driver", cfg.Snapshot.Driver),
			zap.Int("products", len(state.Products)),
			zap.Int("ledger_entries", len(state.Ledger)),
		)
	}

	st := store.New(state)
	st.SetOnCommit(func(s *store.State) {
		if err := gateway.Save(s); err != nil {
			log.Error("Failed to persist snapshot", zap.Error(err))
		}
	})

	// Application services
	tradeOpts := tradeapp.Options{StrictTransitions: cfg.Store.StrictTransitions}
	customerService := partnerapp.NewCustomerService(st)
	vendorService := partnerapp.NewVendorService(st)
	productService := catalogapp.NewProductService(st)
	salesOrderService := tradeapp.NewSalesOrderService(st, tradeOpts)
	purchaseOrderService := tradeapp.NewPurchaseOrderService(st, tradeOpts)
	ledgerService := financeapp.NewLedgerService(st)
	searchService := searchapp.NewService(st)

	// HTTP handlers
	customerHandler := handler.NewCustomerHandler(customerService)
	vendorHandler := handler.NewVendorHandler(vendorService)
	productHandler := handler.NewProductHandler(productService)
	salesOrderHandler := handler.NewSalesOrderHandler(salesOrderService)
	purchaseOrderHandler := handler.NewPurchaseOrderHandler(purchaseOrderService)
	ledgerHandler := handler.NewLedgerHandler(ledgerService)
	searchHandler := handler.NewSearchHandler(searchService)
	systemHandler := handler.NewSystemHandler(cfg.App.Name)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORS(middleware.CORSConfig{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowMethods: cfg.HTTP.CORSAllowMethods,
		AllowHeaders: cfg.HTTP.CORSAllowHeaders,
		MaxAge:       12 * time.Hour,
	}))

	// Health check outside API versioning
	engine.GET("/health", systemHandler.Health)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(customerHandler).
		Register(vendorHandler).
		Register(productHandler).
		Register(salesOrderHandler).
		Register(purchaseOrderHandler).
		Register(ledgerHandler).
		Register(searchHandler).
		Register(systemHandler)
	r.Setup()

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
