package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/hal9000/warehouse/internal/config"
	"github.com/hal9000/warehouse/internal/repository/memory"
	"github.com/hal9000/warehouse/internal/scheduler"
	"github.com/hal9000/warehouse/internal/server/handlers"
	"github.com/hal9000/warehouse/internal/server/router"
	cataloguesvc "github.com/hal9000/warehouse/internal/service/catalogue"
	inventorysvc "github.com/hal9000/warehouse/internal/service/inventory"
	"github.com/hal9000/warehouse/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	ledger := memory.NewStockLedger(baseLogger.Named("repo.ledger"))
	catalogue := memory.NewProductCatalogue(baseLogger.Named("repo.catalogue"))

	inventorySvc := inventorysvc.NewService(ledger, baseLogger.Named("svc.inventory"))
	catalogueSvc := cataloguesvc.NewService(catalogue, ledger, baseLogger.Named("svc.catalogue"))

	inventoryHandler := handlers.NewInventoryHandler(inventorySvc, baseLogger.Named("handlers.inventory"))
	catalogueHandler := handlers.NewCatalogueHandler(catalogueSvc, baseLogger.Named("handlers.catalogue"))
	engine := router.New(inventoryHandler, catalogueHandler, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(*cfg, catalogueSvc, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
