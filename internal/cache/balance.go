package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/loyalbox/loyalbox/internal/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var ErrCacheMiss = errors.New("cache miss")

// BalanceCache holds recently read point balances. It is purely an
// acceleration layer: every balance mutation invalidates the entry, and the
// database stays the source of truth.
type BalanceCache interface {
	GetPoints(ctx context.Context, userID string) (int64, error)
	SetPoints(ctx context.Context, userID string, points int64) error
	Invalidate(ctx context.Context, userID string) error
}

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewBalanceCache returns a nil cache when no redis address is configured;
// callers treat a nil cache as "caching disabled".
func NewBalanceCache(cfg *config.Config, logger *zap.Logger) (BalanceCache, error) {
	if cfg.Redis.Addr == "" {
		logger.Info("Balance cache disabled, no redis address configured")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Redis.Addr,
		Username:    cfg.Redis.Username,
		Password:    cfg.Redis.Password,
		DB:          0,
		MaxRetries:  5,
		DialTimeout: 10 * time.Second,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	logger.Info("Connected to redis balance cache", zap.String("addr", cfg.Redis.Addr))
	return &redisCache{client: client, ttl: cfg.Redis.TTL}, nil
}

func (c *redisCache) GetPoints(ctx context.Context, userID string) (int64, error) {
	val, err := c.client.Get(ctx, balanceKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrCacheMiss
	}
	if err != nil {
		return 0, err
	}

	points, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, err
	}
	return points, nil
}

func (c *redisCache) SetPoints(ctx context.Context, userID string, points int64) error {
	return c.client.Set(ctx, balanceKey(userID), points, c.ttl).Err()
}

func (c *redisCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, balanceKey(userID)).Err()
}

func balanceKey(userID string) string {
	return "points:" + userID
}
