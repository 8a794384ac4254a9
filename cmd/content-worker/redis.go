package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aescanero/dago-node-spintax/internal/content"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisEventBus implements worker.EventBus using Redis Streams
type RedisEventBus struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisEventBus creates a new Redis event bus
func NewRedisEventBus(client *redis.Client, logger *zap.Logger) *RedisEventBus {
	return &RedisEventBus{
		client: client,
		logger: logger,
	}
}

// Publish adds payload, JSON encoded, to the stream named topic
func (e *RedisEventBus) Publish(ctx context.Context, topic string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	id, err := e.client.XAdd(ctx, &redis.XAddArgs{
		Stream: topic,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	e.logger.Debug("event published",
		zap.String("topic", topic),
		zap.String("entry_id", id),
	)
	return nil
}

// RedisResultStore implements worker.ResultStore with plain Redis keys
type RedisResultStore struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisResultStore creates a new Redis result store
func NewRedisResultStore(client *redis.Client, logger *zap.Logger) *RedisResultStore {
	return &RedisResultStore{
		client: client,
		logger: logger,
	}
}

// Save stores the result under key; a zero ttl keeps it without expiry
func (s *RedisResultStore) Save(ctx context.Context, key string, result *content.RenderResult, ttl time.Duration) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if err := s.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	return nil
}
