package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "jobmatrix:"

// CompaniesKey caches the public company directory.
func CompaniesKey() string {
	return keyPrefix + "companies"
}

// JobKey caches a single public job detail.
func JobKey(id uint) string {
	return fmt.Sprintf("%sjob:%d", keyPrefix, id)
}

// JobKeys returns the detail keys for ids.
func JobKeys(ids []uint) []string {
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, JobKey(id))
	}
	return keys
}

// Store is the JSON cache the services read and invalidate. *Client
// implements it, including a nil *Client.
type Store interface {
	GetJSON(ctx context.Context, key string, dst interface{}) bool
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

var _ Store = (*Client)(nil)

// Client wraps redis.Client but fails safe by swallowing connectivity errors.
// A nil *Client is a valid always-miss cache.
type Client struct {
	client *redis.Client
}

// New creates a new Redis client.
func New(addr, password string, db int) *Client {
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	return &Client{client: redis.NewClient(opts)}
}

// Ping reports whether redis is reachable.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Ping(ctx).Err()
}

// Close releases the connection pool.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// Get returns value or nil if missing or redis unavailable.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	res, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		// redis.Nil and connectivity errors both behave like a miss
		return nil, nil
	}
	return res, nil
}

// Set stores value with TTL, ignoring redis errors.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return nil
	}
	_ = c.client.Set(ctx, key, value, ttl).Err()
	return nil
}

// Delete removes keys, ignoring redis errors.
func (c *Client) Delete(ctx context.Context, keys ...string) error {
	if c == nil || c.client == nil || len(keys) == 0 {
		return nil
	}
	_ = c.client.Del(ctx, keys...).Err()
	return nil
}

// GetJSON decodes a cached value into dst. It reports false on a miss or a
// value that no longer decodes.
func (c *Client) GetJSON(ctx context.Context, key string, dst interface{}) bool {
	raw, _ := c.Get(ctx, key)
	if raw == nil {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

// SetJSON encodes value and stores it with TTL.
func (c *Client) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode cache value: %w", err)
	}
	return c.Set(ctx, key, raw, ttl)
}
