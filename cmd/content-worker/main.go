package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aescanero/dago-node-spintax/internal/config"
	"github.com/aescanero/dago-node-spintax/internal/content"
	"github.com/aescanero/dago-node-spintax/internal/logging"
	"github.com/aescanero/dago-node-spintax/internal/worker"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var (
	// Version is set at build time
	Version = "dev"
	// BuildTime is set at build time
	BuildTime = "unknown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogEncoding)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting content worker",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("worker_id", cfg.WorkerID),
	)

	// Log configuration (without sensitive data)
	logger.Info("configuration loaded", zap.String("config", cfg.String()))

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}
	logger.Info("connected to redis", zap.String("addr", cfg.RedisAddr))

	eventBus := NewRedisEventBus(redisClient, logger)
	resultStore := NewRedisResultStore(redisClient, logger)

	renderer := content.NewRenderer(content.Options{CELEnabled: cfg.CELEnabled}, logger)
	logger.Info("renderer initialized", zap.Bool("cel_enabled", cfg.CELEnabled))

	w := worker.NewWorker(cfg, redisClient, renderer, eventBus, resultStore, logger)

	if err := w.Start(); err != nil {
		logger.Fatal("failed to start worker", zap.Error(err))
	}

	healthServer := worker.NewHealthServer(cfg.HealthPort, redisClient, logger)
	if err := healthServer.Start(); err != nil {
		logger.Fatal("failed to start health server", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	logger.Info("content worker running, press Ctrl+C to stop")
	<-sigChan

	logger.Info("shutdown signal received, stopping worker")

	if err := healthServer.Stop(); err != nil {
		logger.Error("failed to stop health server", zap.Error(err))
	}

	if err := w.Stop(10 * time.Second); err != nil {
		logger.Error("failed to stop worker", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		logger.Error("failed to close redis connection", zap.Error(err))
	}

	logger.Info("worker stopped")
}
