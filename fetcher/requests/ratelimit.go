package requests

import (
	"context"
	"sync"
	"time"

	"leagueprobe/pkg/config"

	"github.com/itbasis/go-clock"
)

// Single riot rate limiting.
type RiotLimit struct {
	limit         int
	resetInterval time.Duration
	count         int
	lastReset     time.Time
}

// Full riot rate limit, containing all the constraints.
// Paces requests before they are sent, the 429 handling stays on the executor.
type RateLimiter struct {
	windows []*RiotLimit

	clock clock.Clock
	mu    sync.Mutex
}

// Create a instance of the rate limiter from the configured windows.
// Return nil if every window is disabled.
func CreateRateLimiter(cfg *config.Config, clk clock.Clock) *RateLimiter {
	limiter := newRateLimiter(clk)

	limiter.addWindow(cfg.LimitShortCount, cfg.LimitShortInterval)
	limiter.addWindow(cfg.LimitLongCount, cfg.LimitLongInterval)

	if len(limiter.windows) == 0 {
		return nil
	}
	return limiter
}

func newRateLimiter(clk clock.Clock) *RateLimiter {
	return &RateLimiter{clock: clk}
}

// Add a window, ignoring disabled ones.
func (r *RateLimiter) addWindow(limit int, resetInterval time.Duration) {
	if limit <= 0 || resetInterval <= 0 {
		return
	}

	r.windows = append(r.windows, &RiotLimit{
		limit:         limit,
		resetInterval: resetInterval,
		lastReset:     r.clock.Now(),
	})
}

// Reset the count.
func (r *RateLimiter) resetCounts(now time.Time) {
	// Loop through each window and verify if can reset.
	for _, window := range r.windows {
		if now.Sub(window.lastReset) >= window.resetInterval {
			window.count = 0
			window.lastReset = now
		}
	}
}

// Check if the window is on it's limits.
func (r *RateLimiter) checkLimits() bool {
	for _, window := range r.windows {
		if window.count >= window.limit {
			return false
		}
	}
	return true
}

// Loop through each window and increment the counter.
func (r *RateLimiter) incrementCounts() {
	for _, window := range r.windows {
		window.count++
	}
}

// How long until every full window resets.
func (r *RateLimiter) windowsWait(now time.Time) time.Duration {
	var waitTime time.Duration
	for _, window := range r.windows {
		// If it's not this window that is limited, just continue.
		if window.count < window.limit {
			continue
		}

		waitTill := window.resetInterval - now.Sub(window.lastReset)
		if waitTill > waitTime {
			waitTime = waitTill
		}
	}
	return waitTime
}

// Try to take a slot, returning how long to wait when there is none.
func (r *RateLimiter) reserve() (time.Duration, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	r.resetCounts(now)

	if !r.checkLimits() {
		return r.windowsWait(now), false
	}

	r.incrementCounts()
	return 0, true
}

// Wait until a request can be sent.
func (r *RateLimiter) Wait(ctx context.Context) error {
	for {
		wait, ok := r.reserve()
		if ok {
			return nil
		}

		if err := sleepContext(ctx, r.clock, wait); err != nil {
			return err
		}
	}
}
