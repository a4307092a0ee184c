// Package rate implementa limitación de requests por ventana fija.
// Hoy sólo protege el login; la interfaz admite otros endpoints.
package rate

import (
	"context"
	"math"
	"time"
)

type Result struct {
	Allowed     bool
	Remaining   int64
	RetryAfter  time.Duration
	CurrentHits int64
}

type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}

func retryAfter(window time.Duration, ttl time.Duration) time.Duration {
	if ttl > 0 {
		return ttl
	}
	return time.Duration(math.Ceil(window.Seconds())) * time.Second
}
