package ratelimit

import (
	"sync"
	"time"
)

// TokenBucket is a thread-safe token bucket. Tokens refill continuously at
// Rate per second up to Capacity; each admitted request costs one token.
//
// Refill is lazy: tokens are credited on demand from the elapsed time since
// the previous call, so an idle bucket costs nothing. The invariant
// 0 <= tokens <= capacity holds at every observation point.
type TokenBucket struct {
	mu         sync.Mutex
	capacity   float64
	tokens     float64
	rate       float64 // tokens per second
	lastRefill time.Time
	now        func() time.Time // injectable clock
}

// NewTokenBucket builds a bucket that starts full.
//
// Parameters:
//   - capacity: Maximum number of tokens the bucket can hold (burst size).
//   - rate: Refill rate in tokens per second.
func NewTokenBucket(capacity int, rate float64) *TokenBucket {
	return &TokenBucket{
		capacity:   float64(capacity),
		tokens:     float64(capacity),
		rate:       rate,
		lastRefill: time.Now(),
		now:        time.Now,
	}
}

// TakeToken attempts to consume one token.
//
// Behavior:
//   - Credits elapsed*rate tokens since the last call, capped at capacity.
//   - If at least one full token is available, consumes it and returns true.
//   - Otherwise leaves the fractional balance untouched and returns false.
//
// Safe for concurrent use; the refill-then-decrement sequence runs under a
// single lock so tokens can never be double-spent.
func (b *TokenBucket) TakeToken() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	if elapsed := now.Sub(b.lastRefill).Seconds(); elapsed > 0 {
		b.tokens += elapsed * b.rate
		if b.tokens > b.capacity {
			b.tokens = b.capacity
		}
	}
	b.lastRefill = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}
