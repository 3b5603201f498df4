package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/wanderplan/travel-planner-backend/internal/app"
	"github.com/wanderplan/travel-planner-backend/internal/config"
	"github.com/wanderplan/travel-planner-backend/internal/db"
)

func main() {
	// For receiving Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := newLogger(cfg.IsProduction)
	if err != nil {
		panic("failed to init logger: " + err.Error())
	}
	defer logger.Sync()

	// Connect DB only when the postgres backend is selected; the default
	// backend keeps everything in process memory.
	appCfg := app.Config{
		IsProduction:              cfg.IsProduction,
		ProdOrigins:               cfg.ProdOrigins,
		ShareBaseURL:              cfg.ShareBaseURL,
		ExportSigningSecret:       cfg.ExportSigningSecret,
		ExportLinkTTL:             cfg.ExportLinkTTL,
		BcryptCost:                cfg.BcryptCost,
		AdjustmentRefreshInterval: cfg.AdjustmentRefreshInterval,
		Logger:                    logger,
	}
	if cfg.StoreBackend == config.BackendPostgres {
		pool, err := db.NewPool(ctx, cfg.DBDSN)
		if err != nil {
			logger.Fatal("failed to connect to db", zap.Error(err))
		}
		defer pool.Close()
		appCfg.DBPool = pool
	}

	container := app.NewContainer(appCfg)

	// Use http.Server for graceful shutdown
	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: container.Router,
	}

	// Run server in separate goroutine
	go func() {
		logger.Info("server running",
			zap.String("addr", cfg.HTTPAddr),
			zap.String("store_backend", cfg.StoreBackend),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// Wait for Ctrl+C
	<-ctx.Done()
	logger.Info("shutdown signal received")

	// Create a shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited gracefully")
}

func newLogger(isProduction bool) (*zap.Logger, error) {
	if isProduction {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
