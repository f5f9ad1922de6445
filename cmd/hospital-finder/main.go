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

	"github.com/mr1hm/go-nearby-hospitals/internal/api"
	"github.com/mr1hm/go-nearby-hospitals/internal/audit"
	"github.com/mr1hm/go-nearby-hospitals/internal/config"
	"github.com/mr1hm/go-nearby-hospitals/internal/logging"
	"github.com/mr1hm/go-nearby-hospitals/internal/overpass"
	"github.com/mr1hm/go-nearby-hospitals/internal/repository"
	"github.com/mr1hm/go-nearby-hospitals/internal/session"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("Fatal while loading config: %v", err)
	}
	logging.Setup(cfg.Logging.Level)

	slog.Info("Server starting", "host", cfg.Server.Host, "port", cfg.Server.Port, "overpass", cfg.Overpass.URL)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := overpass.NewClient(cfg.Overpass.URL, cfg.Overpass.UserAgent, cfg.Overpass.Timeout)
	controller := session.NewController(client)

	var (
		lookups  repository.LookupRepository
		onFinish api.FinishFunc
		recorder *audit.Recorder
	)
	if cfg.AuditEnabled() {
		db, err := repository.NewSQLiteDB(cfg.Audit.DBPath)
		if err != nil {
			logging.Fatalf("Failed to initialize database: %v", err)
		}
		defer db.Close()

		recorder = audit.NewRecorder(cfg, db)
		recorder.Start(ctx)
		lookups = db
		onFinish = func(res session.Result) { recorder.Record(res) }
		slog.Info("lookup audit enabled", "db", cfg.Audit.DBPath)
	}

	// Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(api.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false, // Set to false when using wildcard origins
	}))
	router.Use(api.RateLimitMiddleware(cfg.Server.RateLimitRPS))

	handler := api.NewHandler(controller, lookups, onFinish)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
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

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	// Drain queued audit records after the last session finished.
	if recorder != nil {
		recorder.Stop()
	}
	cancel()

	slog.Info("shutdown complete")
}
