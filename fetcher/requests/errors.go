package requests

import (
	"errors"
	"fmt"

	"leagueprobe/pkg/config"
	"leagueprobe/pkg/messages"
)

var (
	// ErrConfiguration marks errors that no retry can fix.
	ErrConfiguration = errors.New("configuration error")

	ErrMissingApiKey = fmt.Errorf("%w: %w", ErrConfiguration, config.ErrMissingApiKey)
	ErrInvalidURL    = fmt.Errorf("%w: request URL must be an absolute https URL", ErrConfiguration)

	ErrRetriesExhausted = errors.New("retries exhausted")
	ErrDecodeResponse   = errors.New(messages.FailedToParseMsg)
)

// StatusError is returned when the API answers with anything but 200 or 429.
// The request is abandoned, not retried.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf(messages.BadStatusCodeMsg, e.StatusCode, e.URL)
}
