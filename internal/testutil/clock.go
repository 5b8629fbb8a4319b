package testutil

import (
	"sync"
	"time"

	"github.com/itbasis/go-clock"
)

// Start of every mock clock.
var MockEpoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

// NewMockClock returns a mock clock set to MockEpoch.
func NewMockClock() *clock.Mock {
	mock := clock.NewMock()
	mock.Set(MockEpoch)
	return mock
}

// RunAdvancing runs fn while moving the mock clock forward by step,
// so timers started by fn fire without real waiting.
func RunAdvancing(mock *clock.Mock, step time.Duration, fn func()) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()

	for {
		select {
		case <-done:
			return
		default:
		}
		mock.Add(step)
		time.Sleep(time.Millisecond)
	}
}

// RecordingMetrics keeps what the request layer reported.
type RecordingMetrics struct {
	mu       sync.Mutex
	statuses []int
	failures int
	waits    []time.Duration
	reasons  []string
}

func (r *RecordingMetrics) RequestDone(statusCode int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses = append(r.statuses, statusCode)
}

func (r *RecordingMetrics) RequestFailed() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures++
}

func (r *RecordingMetrics) Retried(reason string, wait time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reasons = append(r.reasons, reason)
	r.waits = append(r.waits, wait)
}

func (r *RecordingMetrics) PipelineFinished(outcome string, stage string) {}

// Statuses returns a copy of the answered status codes, in order.
func (r *RecordingMetrics) Statuses() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.statuses...)
}

// Waits returns a copy of the retry waits, in order.
func (r *RecordingMetrics) Waits() []time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]time.Duration(nil), r.waits...)
}

// Reasons returns a copy of the retry reasons, in order.
func (r *RecordingMetrics) Reasons() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.reasons...)
}

// Total returns the sum of the retry waits.
func (r *RecordingMetrics) Total() time.Duration {
	var total time.Duration
	for _, w := range r.Waits() {
		total += w
	}
	return total
}

// Failures returns how many requests never got a response.
func (r *RecordingMetrics) Failures() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failures
}
