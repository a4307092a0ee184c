package rate

import (
	"context"
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryLimiter: ventana fija sobre contadores in-process. Suficiente para
// una instancia; con varias réplicas usar RedisLimiter.
type MemoryLimiter struct {
	c      *gocache.Cache
	max    int64
	window time.Duration
}

func NewMemoryLimiter(max int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		c:      gocache.New(window, window),
		max:    int64(max),
		window: window,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (Result, error) {
	now := time.Now().UTC()
	winStart := now.Truncate(l.window)
	k := fmt.Sprintf("%s:%d", strings.ReplaceAll(key, " ", "_"), winStart.Unix())

	// Add falla si la key ya existe; en ese caso incrementamos.
	var hits int64 = 1
	if err := l.c.Add(k, int64(1), l.window); err != nil {
		n, ierr := l.c.IncrementInt64(k, 1)
		if ierr == nil {
			hits = n
		}
	}

	allowed := hits <= l.max
	remaining := l.max - hits
	if remaining < 0 {
		remaining = 0
	}
	res := Result{Allowed: allowed, Remaining: remaining, CurrentHits: hits}
	if !allowed {
		res.RetryAfter = retryAfter(l.window, winStart.Add(l.window).Sub(now))
	}
	return res, nil
}
