package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/mr1hm/go-flood-safety/internal/api"
	"github.com/mr1hm/go-flood-safety/internal/broadcast"
	"github.com/mr1hm/go-flood-safety/internal/config"
	"github.com/mr1hm/go-flood-safety/internal/geocode"
	"github.com/mr1hm/go-flood-safety/internal/logging"
	"github.com/mr1hm/go-flood-safety/internal/repository"
	"github.com/mr1hm/go-flood-safety/internal/weather"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("Fatal while loading config: %v", err)
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("Server starting", "host", cfg.Server.Host, "port", cfg.Server.Port)

	db, err := repository.NewSQLiteDB(cfg.DB.Path)
	if err != nil {
		logging.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	weatherSvc := weather.NewClient(
		cfg.Weather.APIKey,
		cfg.Weather.BaseURL,
		cfg.Weather.IconURL,
		cfg.Weather.DefaultCity,
		cfg.Weather.Timeout,
	)
	if cfg.Weather.APIKey == "" {
		slog.Warn("no weather API key configured, weather lookups will return guidance only")
	}

	geocoder := geocode.NewCachedGeocoder(
		geocode.NewClient(cfg.Geocode.BaseURL, cfg.Geocode.Timeout),
		cfg.Geocode.CacheSize,
	)

	// Broadcaster feeds the alert SSE stream
	broadcaster := broadcast.NewBroadcaster()

	// Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false, // Set to false when using wildcard origins
	}))
	router.Use(api.RateLimitMiddleware(5, 10)) // 5 req/s global limit

	handler := api.NewHandler(db, weatherSvc, geocoder, broadcaster)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down...")

	broadcaster.Close() // Close all streams gracefully

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
}
