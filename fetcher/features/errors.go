package features

import (
	"errors"
	"fmt"

	"leagueprobe/pkg/messages"
)

var ErrUnexpectedTeams = errors.New("match detail must have exactly two teams")

// MissingFieldError names a field the analysis can't work without.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf(messages.MissingFieldMsg, e.Field)
}

func missing(format string, args ...any) error {
	return &MissingFieldError{Field: fmt.Sprintf(format, args...)}
}
