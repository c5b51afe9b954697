package main

import (
	"context"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kunalverma25/gomart/internal/config"
	"github.com/kunalverma25/gomart/internal/handlers"
	"github.com/kunalverma25/gomart/internal/logger"
	"github.com/kunalverma25/gomart/internal/middleware"
	"github.com/kunalverma25/gomart/internal/redis"
)

func newProxy(target string, log *logger.Logger) *httputil.ReverseProxy {
	upstream, err := url.Parse(target)
	if err != nil {
		log.Fatal("Invalid upstream URL %s: %v", target, err)
	}

	proxy := httputil.NewSingleHostReverseProxy(upstream)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		log.Error("Upstream %s unreachable: %v", target, err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"error":"Service unavailable"}`))
	}
	return proxy
}

func main() {
	log := logger.New("api-gateway")
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: %v", err)
	}

	redisClient, err := redis.NewClient(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	authProxy := newProxy(cfg.Services.AuthServiceURL, log)
	productProxy := newProxy(cfg.Services.ProductServiceURL, log)

	mux := http.NewServeMux()
	mux.Handle("/api/auth/", authProxy)
	mux.Handle("/api/products", productProxy)
	mux.Handle("/api/products/", productProxy)
	mux.HandleFunc("GET /health", handlers.Health("api-gateway"))

	rateLimiter := middleware.NewRateLimiter(redisClient, cfg.RateLimit.Requests, cfg.RateLimit.Window)

	server := &http.Server{
		Addr:         ":" + cfg.Services.GatewayPort,
		Handler:      middleware.RequestID(rateLimiter.Middleware(mux)),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Info("API gateway listening on port %s", cfg.Services.GatewayPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down API gateway...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Shutdown error: %v", err)
	}
	log.Info("API gateway stopped")
}
