package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/traffic_ops_console/internal/cache"
	"github.com/shenikar/traffic_ops_console/internal/config"
	v1 "github.com/shenikar/traffic_ops_console/internal/handler/http/v1"
	"github.com/shenikar/traffic_ops_console/internal/metrics"
	"github.com/shenikar/traffic_ops_console/internal/repository"
	"github.com/shenikar/traffic_ops_console/internal/service"
	"github.com/shenikar/traffic_ops_console/internal/webhook"
	"github.com/shenikar/traffic_ops_console/pkg/logger"
	"github.com/shenikar/traffic_ops_console/pkg/postgres"
	redisclient "github.com/shenikar/traffic_ops_console/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/traffic_ops_console/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Traffic Operations Console API
// @version 1.0
// @description REST API for the traffic operations monitoring console.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.New(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Store selection: PostgreSQL when DATABASE_URL is set, otherwise the
	// seeded in-memory fallback for local development and demos.
	var store service.Store
	if cfg.DatabaseURL != "" {
		if err := runMigrations(cfg, log); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}

		dbpool, err := postgres.NewPostgresDB(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		defer dbpool.Close()
		log.Info("Successfully connected to PostgreSQL")

		store = repository.NewPostgresStore(dbpool, log)
	} else {
		log.Warn("DATABASE_URL not set, using seeded in-memory store")
		store = repository.NewSeededMemoryStore(log)
	}

	// Redis backs the KPI snapshot cache and the webhook queue; both
	// degrade to no-ops when it is not configured.
	var snapCache cache.SnapshotCache = cache.NoopSnapshotCache{}
	var publisher webhook.Publisher = webhook.NoopPublisher{}
	if cfg.RedisAddr != "" {
		redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		snapCache = cache.NewRedisSnapshotCache(redisClient)

		if cfg.WebhookURL != "" {
			publisher = webhook.NewRedisPublisher(redisClient)
			webhookWorker := webhook.NewWorker(redisClient, log, cfg)
			webhookWorker.Start(ctx)
		}
	}

	dispatchService := service.NewDispatchService(store, log, cfg, publisher)
	kpiService := service.NewKPIService(store, snapCache, log, cfg)

	handler := v1.NewHandler(store, dispatchService, kpiService, publisher, log, cfg)

	collector := metrics.NewCollector(store)
	go collector.Start(ctx)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(v1.RequestIDMiddleware())
	router.Use(v1.LoggingMiddleware(log))
	router.Use(collector.Middleware())

	api := router.Group("/api/v1")
	api.Use(v1.APIKeyAuthMiddleware(cfg, log))
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(collector.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
