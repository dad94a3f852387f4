package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores versioned claims documents keyed by user id.
type Cache interface {
	Get(ctx context.Context, userID string) (*Claims, error)
	Set(ctx context.Context, claims *Claims) error
	NextVersion(ctx context.Context, userID string) (int64, error)
}

// ErrNotCached is returned when no claims document exists for a user.
var ErrNotCached = fmt.Errorf("no cached claims for user")

// RedisConfig holds session cache connection settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// RedisCache is the Redis binding of the Cache interface.
type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ Cache = (*RedisCache)(nil)

// NewRedisCache creates a session cache backed by Redis.
func NewRedisCache(cfg RedisConfig) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisCache{rdb: rdb, ttl: ttl}
}

// NewRedisCacheFromClient wraps an existing Redis client, sharing the
// connection pool with other cache users.
func NewRedisCacheFromClient(rdb *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisCache{rdb: rdb, ttl: ttl}
}

func claimsKey(userID string) string  { return "session:claims:" + userID }
func versionKey(userID string) string { return "session:claims_version:" + userID }

// Get loads the claims document for a user.
func (c *RedisCache) Get(ctx context.Context, userID string) (*Claims, error) {
	val, err := c.rdb.Get(ctx, claimsKey(userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotCached
		}
		return nil, fmt.Errorf("get claims from redis: %w", err)
	}
	var claims Claims
	if err := json.Unmarshal([]byte(val), &claims); err != nil {
		return nil, fmt.Errorf("decode cached claims: %w", err)
	}
	return &claims, nil
}

// Set stores the claims document with the cache TTL.
func (c *RedisCache) Set(ctx context.Context, claims *Claims) error {
	buf, err := json.Marshal(claims)
	if err != nil {
		return fmt.Errorf("encode claims: %w", err)
	}
	if err := c.rdb.Set(ctx, claimsKey(claims.UserID), buf, c.ttl).Err(); err != nil {
		return fmt.Errorf("store claims in redis: %w", err)
	}
	return nil
}

// NextVersion atomically increments and returns the claims version counter
// for a user. The counter outlives the claims document so versions stay
// monotonic across TTL expiry.
func (c *RedisCache) NextVersion(ctx context.Context, userID string) (int64, error) {
	version, err := c.rdb.Incr(ctx, versionKey(userID)).Result()
	if err != nil {
		return 0, fmt.Errorf("increment claims version: %w", err)
	}
	return version, nil
}

// Close releases the underlying Redis connection.
func (c *RedisCache) Close() error {
	return c.rdb.Close()
}
