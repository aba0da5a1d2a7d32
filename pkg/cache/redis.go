package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/daouest/factureme/pkg/telemetry"
)

// RedisClient backs sessions, the invoice summary cache and the PDF cache.
// Lookups through the caches are counted as cache.lookups{cache,outcome}.
type RedisClient struct {
	client  *redis.Client
	lookups metric.Int64Counter
}

// Option adjusts the redis options parsed from the URL.
type Option func(*redis.Options)

// WithPool overrides the pool size. The worker runs with a smaller pool
// than the API.
func WithPool(size, minIdle int) Option {
	return func(o *redis.Options) {
		o.PoolSize = size
		o.MinIdleConns = minIdle
	}
}

// NewRedisClient parses url, applies pool settings and verifies connectivity.
func NewRedisClient(ctx context.Context, url string, opts ...Option) (*RedisClient, error) {
	ro, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	ro.PoolSize = 10
	ro.MinIdleConns = 2
	ro.MaxRetries = 3
	ro.DialTimeout = 5 * time.Second
	ro.ReadTimeout = 3 * time.Second
	// PDFs can reach a few hundred KB.
	ro.WriteTimeout = 5 * time.Second
	ro.PoolTimeout = 4 * time.Second
	for _, opt := range opts {
		opt(ro)
	}

	lookups, err := telemetry.Meter("cache").Int64Counter("cache.lookups",
		metric.WithDescription("Invoice and PDF cache lookups by outcome"))
	if err != nil {
		return nil, fmt.Errorf("cache lookups counter: %w", err)
	}

	rdb := redis.NewClient(ro)

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", ro.Addr, err)
	}

	return &RedisClient{client: rdb, lookups: lookups}, nil
}

// Ping checks the Redis connection health.
func (r *RedisClient) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// Close shuts down the connection pool.
func (r *RedisClient) Close() error {
	if r == nil || r.client == nil {
		return nil
	}
	if err := r.client.Close(); err != nil {
		return fmt.Errorf("redis close: %w", err)
	}
	return nil
}

// Client returns the underlying redis.Client.
func (r *RedisClient) Client() *redis.Client {
	return r.client
}

func (r *RedisClient) recordLookup(ctx context.Context, cache string, hit bool) {
	if r.lookups == nil {
		return
	}
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	r.lookups.Add(ctx, 1, metric.WithAttributes(
		attribute.String("cache", cache),
		attribute.String("outcome", outcome),
	))
}
