package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "hr:perms:"

// PermissionCache stores each employee's resolved permission codenames in Redis.
// A cache built without a reachable server is a no-op.
type PermissionCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

type Options struct {
	Addr       string
	Password   string
	DB         int
	TTLSeconds int
}

func NewPermissionCache(ctx context.Context, opts Options, logger *slog.Logger) *PermissionCache {
	c := &PermissionCache{
		ttl:    time.Duration(opts.TTLSeconds) * time.Second,
		logger: logger,
	}
	if opts.Addr == "" {
		logger.Info("permission cache disabled")
		return c
	}

	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("permission cache unavailable, continuing without it", "addr", opts.Addr, "error", err)
		_ = client.Close()
		return c
	}

	c.client = client
	return c
}

// NewPermissionCacheWithClient wraps an existing client.
func NewPermissionCacheWithClient(client *redis.Client, ttl time.Duration, logger *slog.Logger) *PermissionCache {
	return &PermissionCache{client: client, ttl: ttl, logger: logger}
}

func (c *PermissionCache) cacheKey(employeeID string) string {
	return keyPrefix + employeeID
}

// Get returns the cached codenames, or nil on a miss.
func (c *PermissionCache) Get(ctx context.Context, employeeID string) ([]string, error) {
	if c.client == nil {
		return nil, nil
	}

	data, err := c.client.Get(ctx, c.cacheKey(employeeID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read permission cache: %w", err)
	}

	var codenames []string
	if err := json.Unmarshal(data, &codenames); err != nil {
		return nil, fmt.Errorf("decode permission cache: %w", err)
	}
	return codenames, nil
}

func (c *PermissionCache) Set(ctx context.Context, employeeID string, codenames []string) error {
	if c.client == nil {
		return nil
	}
	if codenames == nil {
		codenames = []string{}
	}

	data, err := json.Marshal(codenames)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.cacheKey(employeeID), data, c.ttl).Err()
}

func (c *PermissionCache) Invalidate(ctx context.Context, employeeID string) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, c.cacheKey(employeeID)).Err()
}

// InvalidateAll drops every cached permission set.
func (c *PermissionCache) InvalidateAll(ctx context.Context) error {
	if c.client == nil {
		return nil
	}

	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}

	if len(keys) > 0 {
		return c.client.Del(ctx, keys...).Err()
	}
	return nil
}

func (c *PermissionCache) IsAvailable() bool {
	return c.client != nil
}

func (c *PermissionCache) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}
