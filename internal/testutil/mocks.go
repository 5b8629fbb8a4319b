package testutil

import (
	"context"
	"testing"

	leaguefetcher "leagueprobe/fetcher/data/league"
	matchfetcher "leagueprobe/fetcher/data/match"

	"github.com/stretchr/testify/mock"
)

// Assert the expectations of all mocks.
func VerifyAllMocks(t *testing.T, mocks ...any) {
	t.Helper()

	for _, m := range mocks {
		if mockObj, ok := m.(interface{ AssertExpectations(mock.TestingT) bool }); ok {
			mockObj.AssertExpectations(t)
		}
	}
}

// League source mock implementation.
type MockLeagueSource struct {
	mock.Mock
}

func (m *MockLeagueSource) GetApexLeague(ctx context.Context, division string, queue string) (*leaguefetcher.HighEloLeague, error) {
	args := m.Called(ctx, division, queue)

	var league *leaguefetcher.HighEloLeague
	if args.Get(0) != nil {
		league = args.Get(0).(*leaguefetcher.HighEloLeague)
	}
	return league, args.Error(1)
}

// Match list source mock implementation.
type MockMatchListSource struct {
	mock.Mock
}

func (m *MockMatchListSource) GetMatchList(ctx context.Context, puuid string, start int, count int) ([]string, error) {
	args := m.Called(ctx, puuid, start, count)

	var ids []string
	if args.Get(0) != nil {
		ids = args.Get(0).([]string)
	}
	return ids, args.Error(1)
}

// Match source mock implementation.
type MockMatchSource struct {
	mock.Mock
}

func (m *MockMatchSource) GetMatchData(ctx context.Context, matchId string) (*matchfetcher.MatchData, error) {
	args := m.Called(ctx, matchId)

	var match *matchfetcher.MatchData
	if args.Get(0) != nil {
		match = args.Get(0).(*matchfetcher.MatchData)
	}
	return match, args.Error(1)
}
