package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/kressgarten/growops/internal/config"
	"github.com/kressgarten/growops/internal/repository/mongodb"
	"github.com/kressgarten/growops/internal/repository/sheets"
	"github.com/kressgarten/growops/internal/scheduler"
	"github.com/kressgarten/growops/internal/server/handlers"
	"github.com/kressgarten/growops/internal/server/router"
	batchsvc "github.com/kressgarten/growops/internal/service/batches"
	forecastsvc "github.com/kressgarten/growops/internal/service/forecasts"
	reportingsvc "github.com/kressgarten/growops/internal/service/reporting"
	"github.com/kressgarten/growops/pkg/clients/backend"
	"github.com/kressgarten/growops/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	exporter, err := sheets.NewGoogleSheetExporter(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
	if err != nil {
		baseLogger.Fatal("failed to init sheet exporter", zap.Error(err))
	}

	mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := mongoRepo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	backendClient := backend.NewClient(cfg.Backend)

	batchSvc := batchsvc.NewService(backendClient, backendClient, mongoRepo, exporter, baseLogger.Named("svc.batches"))
	forecastSvc := forecastsvc.NewService(backendClient, baseLogger.Named("svc.forecasts"))
	reportingSvc := reportingsvc.NewService(backendClient, mongoRepo, baseLogger.Named("svc.reporting"))

	batchHandler := handlers.NewBatchHandler(batchSvc, baseLogger.Named("handlers.batches"))
	forecastHandler := handlers.NewForecastHandler(forecastSvc, baseLogger.Named("handlers.forecasts"))
	engine := router.New(batchHandler, forecastHandler, baseLogger.Named("router"))

	// Initialize Scheduler
	sched := scheduler.NewScheduler(cfg.Readiness, reportingSvc, baseLogger.Named("scheduler"))
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
