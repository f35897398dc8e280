package ratelimit

import (
	"context"
	"time"
)

// Limiter counts requests per key in fixed windows.
type Limiter interface {
	// Allow reports whether another request under key fits within limit
	// for the current window.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}
