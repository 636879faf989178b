// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"greenvilla/config"

	"github.com/go-redis/redis/v8"
)

// NewSessionCacheClient builds the Redis client used for session
// revocation. It returns nil when no Redis address is configured. The
// client connects lazily and reconnects on its own after an outage.
func NewSessionCacheClient(cfg *config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisSessionDB,
	})
}

// PingRedis checks that client can reach its server.
func PingRedis(ctx context.Context, client *redis.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis (Session Cache): %w", err)
	}
	return nil
}
