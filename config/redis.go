package config

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// ConnectRedis returns nil without error when no Redis settings are present;
// callers fall back to in-process storage in that case.
func ConnectRedis(ctx context.Context, cfg *Config) (*redis.Client, error) {
	var opt *redis.Options
	switch {
	case cfg.RedisURL != "":
		parsed, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
		}
		opt = parsed
	case cfg.RedisAddr != "":
		opt = &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		}
	default:
		return nil, nil
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := client.Ping(pingCtx).Result(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	RedisClient = client
	return client, nil
}

func CloseRedis() {
	if RedisClient != nil {
		RedisClient.Close()
	}
}
