package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kunalverma25/gomart/internal/auth"
	"github.com/kunalverma25/gomart/internal/config"
	"github.com/kunalverma25/gomart/internal/database"
	"github.com/kunalverma25/gomart/internal/handlers"
	"github.com/kunalverma25/gomart/internal/logger"
	"github.com/kunalverma25/gomart/internal/middleware"
	"github.com/kunalverma25/gomart/internal/service"
	"github.com/kunalverma25/gomart/internal/storage"
)

func main() {
	log := logger.New("auth-service")
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: %v", err)
	}

	dbManager, err := database.NewManager(ctx, database.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
	})
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer dbManager.Close()

	userStore := storage.NewUserStore(dbManager)
	if err := userStore.EnsureSchema(ctx); err != nil {
		log.Fatal("Failed to initialize schema: %v", err)
	}

	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authService, err := service.NewAuthService(userStore, tokenManager)
	if err != nil {
		log.Fatal("Failed to create auth service: %v", err)
	}
	authHandler := handlers.NewAuthHandler(authService)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/auth/verify", authHandler.Verify)
	mux.HandleFunc("GET /health", handlers.Health("auth-service"))

	server := &http.Server{
		Addr:         ":" + cfg.Services.AuthServicePort,
		Handler:      middleware.RequestID(mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Auth service listening on port %s", cfg.Services.AuthServicePort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down auth service...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Shutdown error: %v", err)
	}
	log.Info("Auth service stopped")
}
