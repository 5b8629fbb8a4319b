package requests

import (
	"context"
	"time"

	"github.com/itbasis/go-clock"
)

// Block for the duration on the given clock, or until the context is done.
func sleepContext(ctx context.Context, clk clock.Clock, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := clk.Timer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
