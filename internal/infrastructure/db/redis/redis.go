// Package redis hosts the optional cache tier in front of the event store.
// Nothing kept here is authoritative: every key is rebuildable from MongoDB,
// which is why the API can boot and serve purchases without it.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTimeout = 5 * time.Second

// Config captures the settings for establishing a Redis connection.
type Config struct {
	Addr string
	DB   int
	// Timeout bounds the startup ping; defaultTimeout applies when zero.
	Timeout time.Duration
}

// Connect initialises a Redis client and validates connectivity with a ping
// before handing it out, so a misconfigured address surfaces at boot rather
// than on the first cached lookup.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
