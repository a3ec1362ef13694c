package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter counts requests per key in a fixed one-second window shared
// across instances. Fails open: if Redis is unreachable the request passes.
type RedisLimiter struct {
	cli *redis.Client
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func NewRedisLimiter(cfg RedisConfig) *RedisLimiter {
	rdb := redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})
	return &RedisLimiter{cli: rdb}
}

func (l *RedisLimiter) Allow(key string, capacity, refillPerSec float64) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	k := fmt.Sprintf("rl:%s:%d", key, time.Now().Unix())

	n, err := l.cli.Incr(ctx, k).Result()
	if err != nil {
		return true
	}
	if n == 1 {
		// first hit owns the expiry
		_ = l.cli.Expire(ctx, k, 2*time.Second).Err()
	}
	limit := refillPerSec
	if limit < 1 {
		limit = capacity
	}
	return float64(n) <= limit
}

func (l *RedisLimiter) Close() error { return l.cli.Close() }

var _ Limiter = (*RedisLimiter)(nil)
