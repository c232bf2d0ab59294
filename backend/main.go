package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"tradebook/m/internal/api"
	"tradebook/m/internal/auth"
	"tradebook/m/internal/config"
	"tradebook/m/internal/database"
	"tradebook/m/internal/logger"
	"tradebook/m/internal/migrations"
	"tradebook/m/internal/seed"
	"tradebook/m/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: cfg.LogOutput})
	defer log.Sync()

	db, err := database.Connect(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("database connection failed", zap.String("driver", cfg.DatabaseDriver), zap.Error(err))
	}
	defer db.Close()

	if err := migrations.Run(db); err != nil {
		log.Fatal("migrations failed", zap.Error(err))
	}
	if cfg.ProductsCSV != "" {
		if _, err := seed.LoadProducts(db, cfg.ProductsCSV, log); err != nil {
			log.Warn("product catalog not loaded", zap.String("path", cfg.ProductsCSV), zap.Error(err))
		}
	}

	st := store.New(db, auth.HashPassword)
	if _, err := seed.Admin(context.Background(), st, cfg.AdminLogin, cfg.AdminPassword, log); err != nil {
		log.Fatal("bootstrap admin failed", zap.String("login", cfg.AdminLogin), zap.Error(err))
	}
	if cfg.RequireAuth && cfg.AdminLogin == "" {
		log.Warn("REQUIRE_AUTH is on without ADMIN_LOGIN; only existing admins can create users")
	}

	handler := api.New(
		st,
		auth.NewIssuer(cfg.Secret, cfg.TokenTTL),
		log,
		api.Options{AllowedOrigins: cfg.AllowedOrigins, RequireAuth: cfg.RequireAuth},
	)

	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      handler.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("tradebook server starting", zap.String("port", cfg.HTTPPort), zap.String("driver", cfg.DatabaseDriver))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", zap.Error(err))
	}
	log.Info("server stopped")
}
