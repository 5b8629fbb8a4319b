package matchfetcher

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// Requester is the part of the executor the fetchers use.
type Requester interface {
	GetJSON(ctx context.Context, rawURL string, dst any) error
}

// MatchFetcher reads matches from a routing host.
type MatchFetcher struct {
	requester Requester
	baseURL   string
}

// Create a instance of the match fetcher.
func NewMatchFetcher(requester Requester, baseURL string) *MatchFetcher {
	return &MatchFetcher{
		requester: requester,
		baseURL:   strings.TrimRight(baseURL, "/"),
	}
}

// Get a given match data.
func (m *MatchFetcher) GetMatchData(ctx context.Context, matchId string) (*MatchData, error) {
	endpoint := fmt.Sprintf("%s/lol/match/v5/matches/%s", m.baseURL, url.PathEscape(matchId))

	var matchData MatchData
	if err := m.requester.GetJSON(ctx, endpoint, &matchData); err != nil {
		return nil, err
	}

	return &matchData, nil
}
