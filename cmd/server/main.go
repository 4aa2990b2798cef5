package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/nekogravitycat/bulkstay-backend/internal/app"
	"github.com/nekogravitycat/bulkstay-backend/internal/config"
	"github.com/nekogravitycat/bulkstay-backend/internal/db"
	"github.com/nekogravitycat/bulkstay-backend/internal/pkg/logger"
)

func main() {
	// For receiving Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.IsProduction)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()
	zap.ReplaceGlobals(zl)

	// Connect DB when postgres is selected; otherwise the seeded memory store is used.
	var pool *pgxpool.Pool
	if cfg.StoreDriver == config.DriverPostgres {
		pool, err = db.NewPool(ctx, cfg.DBDSN)
		if err != nil {
			zl.Fatal("failed to connect to db", zap.Error(err))
		}
		defer pool.Close()
	}

	container, err := app.NewContainer(app.Config{
		IsProduction: cfg.IsProduction,
		ProdOrigins:  cfg.ProdOrigins,
		DBPool:       pool,
		LatencyScale: cfg.MockLatencyScale,
		JWTSecret:    cfg.JWTSecret,
		JWTTTL:       cfg.JWTAccessTokenTTL,
		BcryptCost:   cfg.BcryptCost,
		UploadDir:    cfg.UploadDir,
		RateLimit:    cfg.RateLimitPerMin,
		TaxRate:      cfg.TaxRate,
		Logger:       zl,
	})
	if err != nil {
		zl.Fatal("failed to build application", zap.Error(err))
	}

	// Drop abandoned booking wizards
	go container.Wizards.Sweep(ctx, time.Minute, cfg.WizardTTL)

	// Use http.Server for graceful shutdown
	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: container.Router,
	}

	// Run server in separate goroutine
	go func() {
		zl.Info("server running",
			zap.String("addr", cfg.HTTPAddr),
			zap.String("store", cfg.StoreDriver),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zl.Fatal("server error", zap.Error(err))
		}
	}()

	// Wait for Ctrl+C
	<-ctx.Done()
	zl.Info("shutdown signal received")

	// Create a shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(shutdownCtx); err != nil {
		zl.Warn("server forced to shutdown", zap.Error(err))
	}

	zl.Info("server exited gracefully")
}
