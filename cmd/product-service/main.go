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
	log := logger.New("product-service")
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

	productStore := storage.NewProductStore(dbManager)
	if err := productStore.EnsureSchema(ctx); err != nil {
		log.Fatal("Failed to initialize schema: %v", err)
	}
	if err := productStore.Seed(ctx); err != nil {
		log.Fatal("Failed to seed products: %v", err)
	}

	// Token verification is local: only the shared secret is needed, no
	// connection to the auth service.
	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authMW := middleware.NewAuthMiddleware(tokenManager)

	productHandler := handlers.NewProductHandler(service.NewProductService(productStore))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/products", productHandler.List)
	mux.HandleFunc("GET /api/products/{id}", productHandler.Get)
	mux.HandleFunc("POST /api/products", authMW.RequireAuth(productHandler.Create))
	mux.HandleFunc("GET /health", handlers.Health("product-service"))

	server := &http.Server{
		Addr:         ":" + cfg.Services.ProductServicePort,
		Handler:      middleware.RequestID(mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Product service listening on port %s", cfg.Services.ProductServicePort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down product service...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Shutdown error: %v", err)
	}
	log.Info("Product service stopped")
}
