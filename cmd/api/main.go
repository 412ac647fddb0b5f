package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/remla25-team8/model-service/internal/adapter/client"
	"github.com/remla25-team8/model-service/internal/adapter/http/router"
	"github.com/remla25-team8/model-service/internal/adapter/repository/redis"
	"github.com/remla25-team8/model-service/internal/domain/repository"
	"github.com/remla25-team8/model-service/internal/infrastructure/cache"
	"github.com/remla25-team8/model-service/internal/infrastructure/config"
	"github.com/remla25-team8/model-service/internal/infrastructure/logger"
	"github.com/remla25-team8/model-service/internal/infrastructure/model"
	"github.com/remla25-team8/model-service/internal/usecase"
)

// @title Restaurant Sentiment Model Service
// @version 1.0
// @description Classifies restaurant reviews as positive or negative.
// @BasePath /
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	envFile := os.Getenv(config.EnvPrefix + "_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := config.LoadEnvFile(envFile); err != nil {
		return err
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&cfg.Log,
		zap.String("service", cfg.App.Name),
		zap.String("environment", cfg.App.Environment),
	)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Load the model once; the service does not start without it
	hub := client.NewHubClient(cfg.Model.HubURL, cfg.Model.Token, cfg.Model.Timeout)
	bundle, err := model.Load(context.Background(), &cfg.Model, hub, log)
	if err != nil {
		log.Error("Failed to load model", zap.Error(err))
		return fmt.Errorf("failed to load model: %w", err)
	}

	// Initialize Redis (optional). When unreachable at startup the client stays
	// wired: lookups fall through to the classifier and /ready reports 503.
	var redisClient *goredis.Client
	var predictionCache repository.PredictionCache
	var opts []usecase.Option
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			log.Warn("Failed to connect to Redis, predictions bypass the cache until it is reachable", zap.Error(err))
			redisClient = cache.NewClient(&cfg.Redis)
		} else {
			log.Info("Connected to Redis", zap.String("address", cfg.Redis.Address()))
		}
		predictionCache = redis.NewPredictionCache(redisClient)
		opts = append(opts, usecase.WithCache(predictionCache, cfg.Cache.TTL))
	}

	sentimentUC := usecase.NewSentimentUsecase(usecase.Model{
		Classifier:   bundle.Classifier,
		Preprocessor: bundle.Preprocessor,
		Backend:      bundle.Backend,
		Version:      bundle.Version,
	}, usecase.ServiceInfo{
		Name:        cfg.App.Name,
		Environment: cfg.App.Environment,
		Endpoint:    cfg.App.Endpoint,
	}, log, opts...)

	// Setup router
	r := router.Setup(router.Dependencies{
		SentimentUC: sentimentUC,
		Cache:       predictionCache,
		Model:       bundle.Backend + "@" + bundle.Version,
		Logger:      log,
	})

	// Create HTTP server
	addr := cfg.Server.Address()
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("Starting server",
			zap.String("address", addr),
			zap.String("endpoint", cfg.App.Endpoint),
			zap.String("backend", bundle.Backend),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	// Close Redis connection
	if redisClient != nil {
		_ = redisClient.Close()
	}

	log.Info("Server exited")
	return nil
}
