package ratelimit

import (
	"sync"
	"testing"
	"time"
)

// frozenClock returns a controllable time source starting at a fixed instant.
func frozenClock() (func() time.Time, func(d time.Duration)) {
	current := time.Date(2025, 8, 28, 11, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	now := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return current
	}
	advance := func(d time.Duration) {
		mu.Lock()
		current = current.Add(d)
		mu.Unlock()
	}
	return now, advance
}

func TestTakeToken_ExhaustsCapacity(t *testing.T) {
	b := NewTokenBucket(4, 2)
	now, _ := frozenClock()
	b.now = now
	b.lastRefill = now()

	// With no elapsed time, exactly capacity calls succeed.
	for i := 0; i < 4; i++ {
		if !b.TakeToken() {
			t.Fatalf("call %d: expected token, bucket empty", i+1)
		}
	}
	if b.TakeToken() {
		t.Fatalf("call 5: expected rejection, got token")
	}
}

func TestTakeToken_Refill(t *testing.T) {
	b := NewTokenBucket(4, 2)
	now, advance := frozenClock()
	b.now = now
	b.lastRefill = now()

	for i := 0; i < 4; i++ {
		b.TakeToken()
	}
	if b.TakeToken() {
		t.Fatalf("bucket should be empty")
	}

	// 1/rate seconds buys back exactly one token.
	advance(500 * time.Millisecond)
	if !b.TakeToken() {
		t.Fatalf("expected one token after refill interval")
	}
	if b.TakeToken() {
		t.Fatalf("expected only one token after refill interval")
	}
}

func TestTakeToken_RefillNeverExceedsCapacity(t *testing.T) {
	b := NewTokenBucket(4, 2)
	now, advance := frozenClock()
	b.now = now
	b.lastRefill = now()

	// A long idle period must not accumulate more than capacity.
	advance(time.Hour)
	granted := 0
	for i := 0; i < 10; i++ {
		if b.TakeToken() {
			granted++
		}
	}
	if granted != 4 {
		t.Fatalf("granted %d tokens after idle period, want 4", granted)
	}
}

func TestTakeToken_Concurrent(t *testing.T) {
	b := NewTokenBucket(100, 0)
	now, _ := frozenClock()
	b.now = now
	b.lastRefill = now()

	var wg sync.WaitGroup
	var mu sync.Mutex
	granted := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := 0
			for j := 0; j < 10; j++ {
				if b.TakeToken() {
					local++
				}
			}
			mu.Lock()
			granted += local
			mu.Unlock()
		}()
	}
	wg.Wait()

	// 500 attempts against 100 tokens and zero refill: exactly 100 grants.
	if granted != 100 {
		t.Fatalf("granted %d tokens under concurrency, want 100", granted)
	}
}
