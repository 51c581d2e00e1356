package limiter

import (
	"sync"
	"time"
)

// MemoryLimiter is a small in-memory sliding-window rate limiter. It tracks
// hit timestamps per arbitrary key (here: client IP) and reports when the
// number of hits within the window reaches the configured maximum.
type MemoryLimiter struct {
	mu      sync.Mutex
	history map[string][]time.Time
	window  time.Duration
	maxHits int
	now     func() time.Time
}

func NewMemoryLimiter(window time.Duration, maxHits int) *MemoryLimiter {
	return &MemoryLimiter{
		history: make(map[string][]time.Time),
		window:  window,
		maxHits: maxHits,
		now:     time.Now,
	}
}

// TooMany reports whether the given key has reached the maximum number of
// recorded hits within the window, pruning expired entries as it goes.
func (r *MemoryLimiter) TooMany(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	slice := r.history[key]

	pruned := slice[:0]
	for _, t := range slice {
		if now.Sub(t) <= r.window {
			pruned = append(pruned, t)
		}
	}

	r.history[key] = pruned

	return len(pruned) >= r.maxHits
}

// Hit records an occurrence for the given key.
func (r *MemoryLimiter) Hit(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.history[key] = append(r.history[key], r.now())
}
