package ratelimit

import (
	"sync"
	"time"
)

type bucket struct {
	tokens     float64
	capacity   float64
	refillRate float64 // tokens per second
	last       time.Time
}

// Limiter is a token-bucket limiter keyed by provider name. Providers
// without a configured bucket are unlimited.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
}

func New() *Limiter {
	return &Limiter{buckets: make(map[string]*bucket)}
}

// Configure registers a bucket for name. Non-positive capacity or refill
// leaves the provider unlimited.
func (l *Limiter) Configure(name string, capacity, refillPerSec float64) {
	if capacity <= 0 || refillPerSec <= 0 {
		return
	}
	l.mu.Lock()
	l.buckets[name] = &bucket{
		tokens:     capacity,
		capacity:   capacity,
		refillRate: refillPerSec,
		last:       time.Now(),
	}
	l.mu.Unlock()
}

// Allow reports whether one token can be consumed for name.
func (l *Limiter) Allow(name string) bool {
	now := time.Now()
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[name]
	if !ok {
		return true
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
		b.tokens--
		return true
	}
	return false
}
