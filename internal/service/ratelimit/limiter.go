package ratelimit

import (
	"sync"
	"time"
)

// Limiter decides whether a request identified by key may proceed.
type Limiter interface {
	Allow(key string, capacity, refillPerSec float64) bool
}

type bucket struct {
	tokens     float64
	capacity   float64
	refillRate float64 // tokens per second
	last       time.Time
}

// MemoryLimiter is a per-key token bucket held in process memory.
type MemoryLimiter struct {
	mu sync.Mutex
	m  map[string]*bucket
}

func New() *MemoryLimiter { return &MemoryLimiter{m: make(map[string]*bucket)} }

// Allow returns true if one token can be consumed for key.
func (l *MemoryLimiter) Allow(key string, capacity, refillPerSec float64) bool {
	now := time.Now()
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.m[key]
	if !ok {
		b = &bucket{tokens: capacity, capacity: capacity, refillRate: refillPerSec, last: now}
		l.m[key] = b
	}
	elapsed := now.Sub(b.last).Seconds()
	if elapsed > 0 {
		b.tokens += elapsed * b.refillRate
		if b.tokens > b.capacity {
			b.tokens = b.capacity
		}
		b.last = now
	}
	if b.tokens >= 1 {
		b.tokens -= 1
		return true
	}
	return false
}

var _ Limiter = (*MemoryLimiter)(nil)
