package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RateLimiter counts intake submissions per client IP over a fixed window.
// Counters live in Redis so concurrent instances share them; without Redis an
// in-process fixed-window map takes over. Redis errors fail open so a cache
// outage never blocks legitimate submitters.
type RateLimiter struct {
	cache  *redis.Client
	max    int
	window time.Duration
	logger zerolog.Logger
	now    func() time.Time

	mu    sync.Mutex
	local map[string]*localWindow
}

type localWindow struct {
	count     int
	startedAt time.Time
}

// NewRateLimiter constructs a limiter. cache may be nil.
func NewRateLimiter(cache *redis.Client, max int, window time.Duration, logger zerolog.Logger) *RateLimiter {
	if max <= 0 {
		max = 5
	}
	if window <= 0 {
		window = 900 * time.Second
	}

	return &RateLimiter{
		cache:  cache,
		max:    max,
		window: window,
		logger: logger.With().Str("component", "rate_limiter").Logger(),
		now:    time.Now,
		local:  make(map[string]*localWindow),
	}
}

// Allow records one submission attempt for the client IP and reports whether
// it is still within the window budget.
func (l *RateLimiter) Allow(ctx context.Context, clientIP string) bool {
	if clientIP == "" {
		return true
	}

	if l.cache != nil {
		return l.allowRedis(ctx, clientIP)
	}
	return l.allowLocal(clientIP)
}

func (l *RateLimiter) allowRedis(ctx context.Context, clientIP string) bool {
	key := fmt.Sprintf("intake:rl:%s", clientIP)

	pipe := l.cache.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		l.logger.Warn().Err(err).Str("client_ip", clientIP).Msg("rate limit check failed, allowing submission")
		return true
	}

	return incr.Val() <= int64(l.max)
}

func (l *RateLimiter) allowLocal(clientIP string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	window, ok := l.local[clientIP]
	if !ok || now.Sub(window.startedAt) >= l.window {
		l.local[clientIP] = &localWindow{count: 1, startedAt: now}
		return true
	}

	window.count++
	return window.count <= l.max
}
