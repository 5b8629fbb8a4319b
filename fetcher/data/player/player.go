package playerfetcher

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Requester is the part of the executor the fetchers use.
type Requester interface {
	GetJSON(ctx context.Context, rawURL string, dst any) error
}

// PlayerFetcher reads player scoped resources from a routing host.
type PlayerFetcher struct {
	requester Requester
	baseURL   string
}

// Create a player fetcher for the routing base URL.
func NewPlayerFetcher(requester Requester, baseURL string) *PlayerFetcher {
	return &PlayerFetcher{
		requester: requester,
		baseURL:   strings.TrimRight(baseURL, "/"),
	}
}

// Get a players match list, most recent first.
func (p *PlayerFetcher) GetMatchList(ctx context.Context, puuid string, start int, count int) ([]string, error) {
	params := url.Values{}
	params.Set("start", strconv.Itoa(start))
	params.Set("count", strconv.Itoa(count))

	endpoint := fmt.Sprintf("%s/lol/match/v5/matches/by-puuid/%s/ids?%s",
		p.baseURL, url.PathEscape(puuid), params.Encode())

	var matches []string
	if err := p.requester.GetJSON(ctx, endpoint, &matches); err != nil {
		return nil, err
	}

	return matches, nil
}
