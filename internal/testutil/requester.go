package testutil

import (
	"context"
	"encoding/json"
)

// StubRequester answers every request with the same body, or error.
type StubRequester struct {
	Body string
	Err  error
	URLs []string
}

func (s *StubRequester) GetJSON(ctx context.Context, rawURL string, dst any) error {
	s.URLs = append(s.URLs, rawURL)
	if s.Err != nil {
		return s.Err
	}
	return json.Unmarshal([]byte(s.Body), dst)
}
