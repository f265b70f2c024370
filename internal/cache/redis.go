package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/railbooking/config"
	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client    *redis.Client
	searchTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig) *RedisCache {
	return &RedisCache{
		client:    redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		searchTTL: time.Duration(cfg.SearchTTLSeconds) * time.Second,
	}
}

// GetTrains returns nil, nil on a cache miss.
func (c *RedisCache) GetTrains(ctx context.Context, key string) ([]domain.TrainRoute, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var trains []domain.TrainRoute
	if err := json.Unmarshal(data, &trains); err != nil {
		return nil, err
	}
	return trains, nil
}

func (c *RedisCache) SetTrains(ctx context.Context, key string, trains []domain.TrainRoute) error {
	payload, err := json.Marshal(trains)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, c.searchTTL).Err()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// SearchKey builds the cache key for a route/date search. Stations are
// lower-cased because the schedule compares them case-insensitively.
func SearchKey(from, to, date string) string {
	return fmt.Sprintf("cache:trains:search:%s:%s:%s", strings.ToLower(from), strings.ToLower(to), date)
}
