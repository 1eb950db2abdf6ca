package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diewo77/quotemaster/internal/config"
	"github.com/diewo77/quotemaster/internal/db"
	"github.com/diewo77/quotemaster/internal/logger"
	"github.com/diewo77/quotemaster/internal/metrics"
	"github.com/diewo77/quotemaster/internal/store"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	migrateOnlyFlag = flag.Bool("migrate-only", false, "Run DB migrations and exit")
	seedOnlyFlag    = flag.Bool("seed-only", false, "Run DB seed and exit")
)

func main() {
	flag.Parse()

	// Load environment variables from .env file
	_ = godotenv.Load()

	// Load configuration from environment
	cfg := config.Load()

	log, err := logger.New(logger.Options{
		Level:       cfg.Log.Level,
		Environment: cfg.App.Env,
		ServiceName: config.AppName,
	})
	if err != nil {
		panic("failed to build logger: " + err.Error())
	}
	defer log.Sync()
	zap.ReplaceGlobals(log)

	// Money crosses the wire as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	dbConn, err := db.Open(cfg.Database)
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close(dbConn)
	log.Info("Database opened",
		zap.String("path", cfg.Database.Path()),
		zap.Bool("dsn_override", cfg.Database.DSN != ""))

	// Handle migrate-only flag
	if *migrateOnlyFlag {
		if err := db.Migrate(dbConn); err != nil {
			log.Fatal("Migration failed", zap.Error(err))
		}
		log.Info("Migrations completed successfully")
		return
	}

	// Handle seed-only flag
	if *seedOnlyFlag {
		if err := db.Seed(dbConn); err != nil {
			log.Fatal("Seeding failed", zap.Error(err))
		}
		log.Info("Seeding completed successfully")
		return
	}

	m := metrics.New()
	s := store.New(dbConn, log, m)
	if err := s.Init(context.Background()); err != nil {
		log.Fatal("Failed to initialize store", zap.Error(err))
	}

	appHandler, err := NewApp(s, log, m)
	if err != nil {
		log.Fatal("Failed to build application", zap.Error(err))
	}

	// Create server with config timeouts
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      appHandler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr), zap.Bool("dev", cfg.App.Dev()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutdown signal received")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Error during shutdown", zap.Error(err))
	}
	log.Info("Server stopped gracefully")
}
