package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisService implements the Storage interface using Redis
type RedisService struct {
	client *redis.Client
	logger *slog.Logger
	ttl    time.Duration
}

// Ensure RedisService implements Storage interface
var _ Storage = (*RedisService)(nil)

// NewRedisService creates a new Redis service instance
func NewRedisService(redisURL string, ttl time.Duration, logger *slog.Logger) *RedisService {
	rdb := redis.NewClient(&redis.Options{
		Addr: redisURL,
	})

	return &RedisService{
		client: rdb,
		logger: logger,
		ttl:    ttl,
	}
}

func slotKey(seed, slot string) string {
	return fmt.Sprintf("slot:%s:%s", seed, slot)
}

func (r *RedisService) Ping(ctx context.Context) error {
	cmd := r.client.Ping(ctx)
	if err := cmd.Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}

	r.logger.Debug("Redis ping successful", "result", cmd.Val())
	return nil
}

func (r *RedisService) SaveSlot(ctx context.Context, record *SlotRecord) error {
	key := slotKey(record.Seed, record.Slot)
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal slot record: %w", err)
	}

	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		r.logger.Error("Redis SET failed", "key", key, "error", err)
		return fmt.Errorf("redis set failed: %w", err)
	}

	r.logger.Debug("Slot record saved", "key", key, "bytes", len(data))
	return nil
}

func (r *RedisService) LoadSlot(ctx context.Context, seed, slot string) (*SlotRecord, error) {
	key := slotKey(seed, slot)
	cmd := r.client.Get(ctx, key)
	if err := cmd.Err(); err != nil {
		if err == redis.Nil {
			r.logger.Debug("Slot record not found", "key", key)
			return nil, nil
		}
		r.logger.Error("Redis GET failed", "key", key, "error", err)
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var record SlotRecord
	if err := json.Unmarshal([]byte(cmd.Val()), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal slot record: %w", err)
	}
	return &record, nil
}

func (r *RedisService) DeleteSlot(ctx context.Context, seed, slot string) error {
	key := slotKey(seed, slot)
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.Error("Redis DEL failed", "key", key, "error", err)
		return fmt.Errorf("redis del failed: %w", err)
	}

	r.logger.Debug("Slot record deleted", "key", key)
	return nil
}

func (r *RedisService) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}

	r.logger.Info("Redis connection closed")
	return nil
}
