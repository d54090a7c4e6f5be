package ratelimit

import (
	"context"
	"errors"
	"sync"
	"time"
)

type memoryLimiter struct {
	mu      sync.Mutex
	now     func() time.Time
	data    map[string]*bucket
	maxKeys int
}

type bucket struct {
	count     int
	windowEnd time.Time
}

type MemoryConfig struct {
	Now     func() time.Time
	MaxKeys int
}

func NewMemoryLimiter(cfg MemoryConfig) Limiter {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.MaxKeys <= 0 {
		cfg.MaxKeys = 10000
	}
	return &memoryLimiter{
		now:     cfg.Now,
		data:    make(map[string]*bucket),
		maxKeys: cfg.MaxKeys,
	}
}

func (m *memoryLimiter) Allow(_ context.Context, key string, limit int, window time.Duration) (Decision, error) {
	if limit <= 0 {
		return Decision{Allowed: true, Limit: limit, Remaining: limit}, nil
	}
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.data[key]
	if ok && now.After(b.windowEnd) {
		delete(m.data, key)
		b = nil
		ok = false
	}
	if !ok {
		if len(m.data) >= m.maxKeys {
			m.gc(now)
		}
		if len(m.data) >= m.maxKeys {
			return Decision{}, errors.New("rate limiter capacity exceeded")
		}
		b = &bucket{windowEnd: now.Add(window)}
		m.data[key] = b
	}

	if b.count < limit {
		b.count++
		return Decision{
			Allowed:   true,
			Limit:     limit,
			Remaining: limit - b.count,
			ResetAt:   b.windowEnd,
		}, nil
	}
	return Decision{
		Allowed:   false,
		Limit:     limit,
		Remaining: 0,
		ResetAt:   b.windowEnd,
	}, nil
}

func (m *memoryLimiter) gc(now time.Time) {
	for key, b := range m.data {
		if now.After(b.windowEnd) {
			delete(m.data, key)
		}
	}
}
