package leaguefetcher

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

// LeagueFetcher reads leagues from a platform host.
type LeagueFetcher struct {
	requester Requester
	baseURL   string
}

// Create a league fetcher for the platform base URL.
func NewLeagueFetcher(requester Requester, baseURL string) *LeagueFetcher {
	return &LeagueFetcher{
		requester: requester,
		baseURL:   strings.TrimRight(baseURL, "/"),
	}
}

// Get a given high elo league page, e.g. challengerleagues on RANKED_SOLO_5x5.
func (l *LeagueFetcher) GetApexLeague(ctx context.Context, division string, queue string) (*HighEloLeague, error) {
	endpoint := fmt.Sprintf("%s/lol/league/v4/%s/by-queue/%s",
		l.baseURL, url.PathEscape(strings.ToLower(division)), url.PathEscape(queue))

	var league HighEloLeague
	if err := l.requester.GetJSON(ctx, endpoint, &league); err != nil {
		return nil, err
	}

	return &league, nil
}
