package testutil

import (
	"errors"
	"net/http"
	"sync"
)

// ErrConnectionReset is returned by FlakyTransport.
var ErrConnectionReset = errors.New("connection reset by peer")

// FlakyTransport fails the first Failures round trips, then delegates.
type FlakyTransport struct {
	Next     http.RoundTripper
	Failures int

	mu    sync.Mutex
	calls int
}

func (t *FlakyTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	t.mu.Lock()
	t.calls++
	fail := t.calls <= t.Failures
	t.mu.Unlock()

	if fail {
		return nil, ErrConnectionReset
	}
	return t.Next.RoundTrip(r)
}

// Calls returns how many round trips were attempted.
func (t *FlakyTransport) Calls() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.calls
}
