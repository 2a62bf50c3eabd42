package ratelimit

import (
	"agent-server/internal/clients/redis"
	"agent-server/internal/observability"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// Result represents the result of a rate limit check
type Result struct {
	Allowed      bool      `json:"allowed"`
	Limit        int       `json:"limit"`
	Remaining    int       `json:"remaining"`
	ResetAt      time.Time `json:"reset_at"`
	RetryAfterMs int       `json:"retry_after_ms,omitempty"`
}

// Window counts hits for a key over a sliding window.
type Window interface {
	Hit(ctx context.Context, key string, now time.Time, window time.Duration, limit int) (Result, error)
}

// Service limits requests per key over a sliding window.
// Redis is preferred when configured; failures fall back to process memory.
type Service struct {
	primary  Window
	fallback Window
	limit    int
	window   time.Duration
	now      func() time.Time
	logger   *observability.Logger
}

// NewService builds a limiter. A nil or disabled redis client keeps counts in memory.
func NewService(client *redis.Client, limit int, window time.Duration, logger *observability.Logger) *Service {
	if limit < 1 {
		limit = 1
	}
	s := &Service{
		fallback: NewMemoryWindow(),
		limit:    limit,
		window:   window,
		now:      time.Now,
		logger:   logger,
	}
	if client.IsEnabled() {
		s.primary = &RedisWindow{client: client.GetClient()}
	}
	return s
}

// Check records one request for key and reports whether it is allowed.
func (s *Service) Check(ctx context.Context, key string) Result {
	now := s.now()
	if s.primary != nil {
		result, err := s.primary.Hit(ctx, key, now, s.window, s.limit)
		if err == nil {
			return result
		}
		s.logger.Warn(observability.WithFields(ctx,
			observability.Field{Key: "error", Value: err.Error()},
		), "Redis rate limit check failed, falling back to memory")
	}

	// The memory window never fails.
	result, _ := s.fallback.Hit(ctx, key, now, s.window, s.limit)
	return result
}

func denied(limit int, oldest, now time.Time, window time.Duration) Result {
	resetAt := oldest.Add(window)
	retryAfter := resetAt.Sub(now)
	if retryAfter < 0 {
		retryAfter = 0
	}
	return Result{
		Allowed:      false,
		Limit:        limit,
		Remaining:    0,
		ResetAt:      resetAt,
		RetryAfterMs: int(retryAfter.Milliseconds()),
	}
}

// RedisWindow keeps one sorted set per key.
// Key: rl:{key}, members: unique request ids, score: timestamp in milliseconds.
type RedisWindow struct {
	client *goredis.Client
}

// NewRedisWindow wraps a go-redis client.
func NewRedisWindow(client *goredis.Client) *RedisWindow {
	return &RedisWindow{client: client}
}

func (w *RedisWindow) Hit(ctx context.Context, key string, now time.Time, window time.Duration, limit int) (Result, error) {
	redisKey := "rl:" + key
	windowStartMs := now.Add(-window).UnixMilli()

	err := w.client.ZRemRangeByScore(ctx, redisKey, "0", fmt.Sprintf("%d", windowStartMs)).Err()
	if err != nil {
		return Result{}, fmt.Errorf("failed to remove old entries: %w", err)
	}

	count, err := w.client.ZCard(ctx, redisKey).Result()
	if err != nil {
		return Result{}, fmt.Errorf("failed to count requests: %w", err)
	}

	if int(count) >= limit {
		oldest, err := w.client.ZRangeWithScores(ctx, redisKey, 0, 0).Result()
		if err != nil || len(oldest) == 0 {
			return denied(limit, now, now, window), nil
		}
		return denied(limit, time.UnixMilli(int64(oldest[0].Score)), now, window), nil
	}

	err = w.client.ZAdd(ctx, redisKey, goredis.Z{
		Score:  float64(now.UnixMilli()),
		Member: uuid.NewString(),
	}).Err()
	if err != nil {
		return Result{}, fmt.Errorf("failed to add request: %w", err)
	}

	if err := w.client.Expire(ctx, redisKey, 2*window).Err(); err != nil {
		return Result{}, fmt.Errorf("failed to set expiration: %w", err)
	}

	return Result{
		Allowed:   true,
		Limit:     limit,
		Remaining: limit - int(count) - 1,
		ResetAt:   now.Add(window),
	}, nil
}

// MemoryWindow keeps request timestamps per key in process memory. Keys
// whose timestamps have all left the window are swept at most once per
// window.
type MemoryWindow struct {
	mu        sync.Mutex
	hits      map[string][]time.Time
	lastSweep time.Time
}

func NewMemoryWindow() *MemoryWindow {
	return &MemoryWindow{hits: make(map[string][]time.Time)}
}

func (w *MemoryWindow) Hit(_ context.Context, key string, now time.Time, window time.Duration, limit int) (Result, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	cutoff := now.Add(-window)
	if now.Sub(w.lastSweep) >= window {
		w.sweep(cutoff)
		w.lastSweep = now
	}

	kept := w.hits[key][:0]
	for _, ts := range w.hits[key] {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}

	if len(kept) >= limit {
		w.hits[key] = kept
		return denied(limit, kept[0], now, window), nil
	}

	kept = append(kept, now)
	w.hits[key] = kept
	return Result{
		Allowed:   true,
		Limit:     limit,
		Remaining: limit - len(kept),
		ResetAt:   now.Add(window),
	}, nil
}

// sweep drops keys with no timestamp after cutoff. Timestamps are appended
// in order, so the last one is the newest.
func (w *MemoryWindow) sweep(cutoff time.Time) {
	for key, ts := range w.hits {
		if len(ts) == 0 || !ts[len(ts)-1].After(cutoff) {
			delete(w.hits, key)
		}
	}
}

// Len reports how many keys are tracked.
func (w *MemoryWindow) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.hits)
}
