package redis

import (
	"agent-server/internal/config"
	"agent-server/internal/observability"
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client wraps the Redis client with observability
type Client struct {
	client *redis.Client
	logger *observability.Logger
}

// NewClient connects to Redis. It returns a nil client when Redis is disabled.
func NewClient(ctx context.Context, cfg config.RedisConfig, logger *observability.Logger) (*Client, error) {
	if !cfg.Enabled {
		logger.Info(ctx, "REDIS_HOST not set, rate limits are kept in memory")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "host", Value: cfg.Host},
		observability.Field{Key: "port", Value: cfg.Port},
		observability.Field{Key: "db", Value: cfg.DB},
	), "successfully connected to Redis")

	return &Client{
		client: client,
		logger: logger,
	}, nil
}

// NewFromClient wraps an existing go-redis client.
func NewFromClient(client *redis.Client, logger *observability.Logger) *Client {
	return &Client{client: client, logger: logger}
}

// GetClient returns the underlying Redis client
func (c *Client) GetClient() *redis.Client {
	if c == nil {
		return nil
	}
	return c.client
}

// Ping checks the connection.
func (c *Client) Ping(ctx context.Context) error {
	if !c.IsEnabled() {
		return fmt.Errorf("Redis client not initialized")
	}
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// IsEnabled returns whether Redis is enabled
func (c *Client) IsEnabled() bool {
	return c != nil && c.client != nil
}
