// Package ratelimit implements the admission gate protecting the expensive
// pipeline endpoints: at most 5 admitted requests per identity per rolling
// 60-minute window. Only admitted requests count toward the window; a
// rejected request does not extend the caller's penalty.
package ratelimit

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// Window is the rolling admission window.
	Window = time.Hour
	// MaxRequests is the number of admitted requests allowed per window.
	MaxRequests = 5
)

// Limiter decides whether a request from the given identity may proceed.
type Limiter interface {
	Admit(ctx context.Context, identity string) (bool, error)
}

// MemoryLimiter is a process-local sliding-window limiter. Construct one at
// startup and inject it; state lives for the process lifetime only.
type MemoryLimiter struct {
	mu      sync.Mutex
	window  time.Duration
	max     int
	entries map[string][]time.Time
	now     func() time.Time
}

// NewMemoryLimiter creates a limiter with the fixed window and quota.
func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{
		window:  Window,
		max:     MaxRequests,
		entries: make(map[string][]time.Time),
		now:     time.Now,
	}
}

// Admit records and admits the request unless the identity has already used
// its quota within the rolling window.
func (l *MemoryLimiter) Admit(_ context.Context, identity string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	kept := l.entries[identity][:0]
	for _, ts := range l.entries[identity] {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}

	if len(kept) >= l.max {
		l.entries[identity] = kept
		return false, nil
	}

	l.entries[identity] = append(kept, now)
	return true, nil
}

// Reset drops all recorded state.
func (l *MemoryLimiter) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = make(map[string][]time.Time)
}

// admitScript prunes expired members, checks the quota and records the
// request in one atomic step.
var admitScript = redis.NewScript(`
redis.call('ZREMRANGEBYSCORE', KEYS[1], 0, ARGV[1])
local n = redis.call('ZCARD', KEYS[1])
if n >= tonumber(ARGV[2]) then
	return 0
end
redis.call('ZADD', KEYS[1], ARGV[3], ARGV[4])
redis.call('PEXPIRE', KEYS[1], ARGV[5])
return 1
`)

// RedisLimiter is a sliding-window limiter backed by a Redis sorted set, so
// replicas behind a load balancer share admission counters.
type RedisLimiter struct {
	rdb    *redis.Client
	window time.Duration
	max    int
	now    func() time.Time
}

// NewRedisLimiter creates a limiter on the given Redis client.
func NewRedisLimiter(rdb *redis.Client) *RedisLimiter {
	return &RedisLimiter{
		rdb:    rdb,
		window: Window,
		max:    MaxRequests,
		now:    time.Now,
	}
}

func (l *RedisLimiter) Admit(ctx context.Context, identity string) (bool, error) {
	now := l.now()
	key := "decklens:rate_limit:" + identity

	res, err := admitScript.Run(ctx, l.rdb, []string{key},
		strconv.FormatInt(now.Add(-l.window).UnixMilli(), 10),
		strconv.Itoa(l.max),
		strconv.FormatInt(now.UnixMilli(), 10),
		uuid.New().String(),
		strconv.FormatInt(l.window.Milliseconds(), 10),
	).Int()
	if err != nil {
		return false, err
	}
	return res == 1, nil
}
