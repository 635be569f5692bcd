// Package ratelimit throttles expensive routes with the fiber limiter,
// keeping counters in Redis when available.
package ratelimit

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Abraxas-365/careersync/pkg/errx"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/redis/go-redis/v9"
)

var ErrRegistry = errx.NewRegistry("RATE_LIMIT")

var CodeTooManyRequests = ErrRegistry.Register("TOO_MANY_REQUESTS", errx.TypeRateLimit, http.StatusTooManyRequests, "Too many requests, please try again later")

type Config struct {
	Max        int
	Expiration time.Duration
	// Storage defaults to the limiter's in-memory store when nil
	Storage fiber.Storage
	// KeyGenerator defaults to the client IP
	KeyGenerator func(c *fiber.Ctx) string
}

// New returns a limiter handler that reports rejections through the errx error handler
func New(cfg Config) fiber.Handler {
	if cfg.Max <= 0 {
		cfg.Max = 20
	}
	if cfg.Expiration <= 0 {
		cfg.Expiration = time.Minute
	}
	if cfg.KeyGenerator == nil {
		cfg.KeyGenerator = func(c *fiber.Ctx) string { return "ip:" + c.IP() }
	}

	return limiter.New(limiter.Config{
		Max:          cfg.Max,
		Expiration:   cfg.Expiration,
		KeyGenerator: cfg.KeyGenerator,
		Storage:      cfg.Storage,
		LimitReached: func(c *fiber.Ctx) error {
			return ErrRegistry.New(CodeTooManyRequests).
				WithDetail("limit", cfg.Max).
				WithDetail("window", cfg.Expiration.String())
		},
	})
}

// ============================================================================
// Redis storage
// ============================================================================

// RedisStorage implements fiber.Storage on go-redis
type RedisStorage struct {
	client  redis.UniversalClient
	prefix  string
	timeout time.Duration
}

var _ fiber.Storage = (*RedisStorage)(nil)

func NewRedisStorage(client redis.UniversalClient, prefix string) *RedisStorage {
	return &RedisStorage{client: client, prefix: prefix, timeout: 2 * time.Second}
}

func (s *RedisStorage) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}

func (s *RedisStorage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	ctx, cancel := s.ctx()
	defer cancel()

	val, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return val, err
}

func (s *RedisStorage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	ctx, cancel := s.ctx()
	defer cancel()
	return s.client.Set(ctx, s.prefix+key, val, exp).Err()
}

func (s *RedisStorage) Delete(key string) error {
	if key == "" {
		return nil
	}
	ctx, cancel := s.ctx()
	defer cancel()
	return s.client.Del(ctx, s.prefix+key).Err()
}

// Reset removes every key under the storage prefix
func (s *RedisStorage) Reset() error {
	ctx, cancel := s.ctx()
	defer cancel()

	iter := s.client.Scan(ctx, 0, s.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// Close is a no-op. The client is owned by the container.
func (s *RedisStorage) Close() error {
	return nil
}
