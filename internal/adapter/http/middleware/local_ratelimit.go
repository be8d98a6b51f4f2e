package middleware

import (
	"context"
	"fmt"
	"sync"
	"time"

	"quizvault/internal/core/ports"

	"golang.org/x/time/rate"
)

const maxLocalLimiters = 10000

type localLimiter struct {
	lim      *rate.Limiter
	window   time.Duration
	lastSeen time.Time
}

// LocalRateLimitStore implements ports.RateLimitStore with in-process token
// buckets. It is used when Redis is disabled; limits are per instance.
type LocalRateLimitStore struct {
	mu       sync.Mutex
	limiters map[string]*localLimiter
	maxKeys  int
	now      func() time.Time
}

func NewLocalRateLimitStore() *LocalRateLimitStore {
	return &LocalRateLimitStore{
		limiters: make(map[string]*localLimiter),
		maxKeys:  maxLocalLimiters,
		now:      time.Now,
	}
}

// Allow refills limit tokens per window, with a burst of limit.
func (s *LocalRateLimitStore) Allow(_ context.Context, key string, limit int64, window time.Duration) (*ports.RateLimitResult, error) {
	if limit <= 0 || window <= 0 {
		return nil, fmt.Errorf("invalid rate limit %d per %s", limit, window)
	}
	now := s.now()

	s.mu.Lock()
	entry, ok := s.limiters[key]
	if !ok {
		if len(s.limiters) >= s.maxKeys {
			s.evictLocked(now)
		}
		entry = &localLimiter{
			lim:    rate.NewLimiter(rate.Every(window/time.Duration(limit)), int(limit)),
			window: window,
		}
		s.limiters[key] = entry
	}
	entry.lastSeen = now
	lim := entry.lim
	s.mu.Unlock()

	allowed := lim.AllowN(now, 1)
	remaining := int64(lim.TokensAt(now))
	if remaining < 0 {
		remaining = 0
	}

	return &ports.RateLimitResult{
		Allowed:   allowed,
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   now.Add(window / time.Duration(limit)).Unix(),
	}, nil
}

// evictLocked drops buckets idle for a full window, which have refilled and
// are indistinguishable from new ones. When none are idle the least recently
// used bucket goes.
func (s *LocalRateLimitStore) evictLocked(now time.Time) {
	var (
		oldestKey string
		oldest    time.Time
		found     bool
	)
	for k, e := range s.limiters {
		if now.Sub(e.lastSeen) >= e.window {
			delete(s.limiters, k)
			continue
		}
		if !found || e.lastSeen.Before(oldest) {
			oldestKey, oldest, found = k, e.lastSeen, true
		}
	}
	if found && len(s.limiters) >= s.maxKeys {
		delete(s.limiters, oldestKey)
	}
}
