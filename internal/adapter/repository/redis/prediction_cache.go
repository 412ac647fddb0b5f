package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/remla25-team8/model-service/internal/domain/entity"
	"github.com/remla25-team8/model-service/internal/domain/repository"
)

type predictionCache struct {
	client *redis.Client
}

// NewPredictionCache creates a Redis-backed prediction cache
func NewPredictionCache(client *redis.Client) repository.PredictionCache {
	return &predictionCache{client: client}
}

func (c *predictionCache) Get(ctx context.Context, key string) (*entity.PredictionResult, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached prediction: %w", err)
	}

	var result entity.PredictionResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to decode cached prediction: %w", err)
	}
	if !result.Label.Valid() {
		return nil, fmt.Errorf("cached prediction has invalid label %d", result.Label)
	}

	return &result, nil
}

func (c *predictionCache) Set(ctx context.Context, key string, result *entity.PredictionResult, ttl time.Duration) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode prediction: %w", err)
	}
	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache prediction: %w", err)
	}
	return nil
}

func (c *predictionCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
