// Package ratelimit provides the fixed-window counters behind login
// throttling. The memory limiter serves single-instance deployments; the
// redis limiter keeps the window shared when the API runs replicated.
package ratelimit

import (
	"context"
	"time"
)

type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

type Limiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (Decision, error)
}
