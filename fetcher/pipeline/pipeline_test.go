package pipeline

import (
	"bytes"
	"context"
	"errors"
	"testing"

	leaguefetcher "leagueprobe/fetcher/data/league"
	"leagueprobe/fetcher/features"
	"leagueprobe/fetcher/requests"
	"leagueprobe/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func entry(puuid string, lp int) leaguefetcher.LeagueEntry {
	return leaguefetcher.LeagueEntry{Puuid: puuid, LeaguePoints: lp}
}

func TestSelectTarget(t *testing.T) {
	tests := []struct {
		name          string
		entries       []leaguefetcher.LeagueEntry
		expectedPuuid string
		expectedError error
	}{
		{
			name:          "highest lp wins",
			entries:       []leaguefetcher.LeagueEntry{entry("a", 900), entry("b", 1500), entry("c", 1200)},
			expectedPuuid: "b",
		},
		{
			name:          "ties keep input order",
			entries:       []leaguefetcher.LeagueEntry{entry("a", 900), entry("b", 1500), entry("c", 1500)},
			expectedPuuid: "b",
		},
		{
			name:          "single entry",
			entries:       []leaguefetcher.LeagueEntry{entry("a", 0)},
			expectedPuuid: "a",
		},
		{
			name:          "no entries",
			entries:       nil,
			expectedError: ErrNoEntries,
		},
		{
			name:          "top entry without puuid",
			entries:       []leaguefetcher.LeagueEntry{entry("a", 900), entry("", 2000)},
			expectedError: ErrMissingPuuid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, err := SelectTarget(tt.entries)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedPuuid, target.Puuid)
			for _, e := range tt.entries {
				assert.GreaterOrEqual(t, target.LeaguePoints, e.LeaguePoints)
			}
		})
	}
}

func TestSelectTargetKeepsInput(t *testing.T) {
	entries := []leaguefetcher.LeagueEntry{entry("a", 1), entry("b", 2)}
	_, err := SelectTarget(entries)
	require.NoError(t, err)
	assert.Equal(t, "a", entries[0].Puuid)
}

func TestMostRecentMatch(t *testing.T) {
	id, err := MostRecentMatch([]string{"JP1_3", "JP1_2"})
	require.NoError(t, err)
	assert.Equal(t, "JP1_3", id)

	_, err = MostRecentMatch([]string{})
	assert.ErrorIs(t, err, ErrNoMatchHistory)
}

func TestRunSuccess(t *testing.T) {
	p, mockLeague, mockPlayers, mockMatches, log := setupTestPipeline()

	league := testutil.SampleLeague(entry("other", 1100), entry(testutil.TargetPuuid, 1523))
	mockLeague.On("GetApexLeague", mock.Anything, testDivision, testQueue).Return(league, nil).Once()
	mockPlayers.On("GetMatchList", mock.Anything, testutil.TargetPuuid, 0, 5).Return([]string{"JP1_9", "JP1_8"}, nil).Once()
	mockMatches.On("GetMatchData", mock.Anything, "JP1_9").Return(testutil.SampleMatch("JP1_9", true), nil).Once()

	report, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, OutcomeSuccess, report.Outcome)
	assert.Equal(t, StageExtractFeatures, report.Stage)
	assert.Nil(t, report.Abort)
	assert.Equal(t, testutil.TargetPuuid, report.Target.Puuid)
	assert.Equal(t, 91523, report.Rating)
	assert.Equal(t, []string{"JP1_9", "JP1_8"}, report.MatchIds)
	require.NotNil(t, report.Features)
	assert.True(t, report.Features.Target.Found)
	assert.True(t, log.Contains("-> Target Found (1st Place): 1523 LP"))

	testutil.VerifyAllMocks(t, mockLeague, mockPlayers, mockMatches)
}

func TestRunAborts(t *testing.T) {
	statusErr := &requests.StatusError{StatusCode: 503, URL: "https://jp1.api.riotgames.com"}

	tests := []struct {
		name           string
		setup          func(l *testutil.MockLeagueSource, p *testutil.MockMatchListSource, m *testutil.MockMatchSource)
		expectedStage  Stage
		expectedReason string
	}{
		{
			name: "leaderboard unavailable",
			setup: func(l *testutil.MockLeagueSource, p *testutil.MockMatchListSource, m *testutil.MockMatchSource) {
				l.On("GetApexLeague", mock.Anything, testDivision, testQueue).Return(nil, statusErr).Once()
			},
			expectedStage:  StageFetchLeaderboard,
			expectedReason: ReasonLeaderboardUnavailable,
		},
		{
			name: "leaderboard without payload",
			setup: func(l *testutil.MockLeagueSource, p *testutil.MockMatchListSource, m *testutil.MockMatchSource) {
				l.On("GetApexLeague", mock.Anything, testDivision, testQueue).Return(nil, nil).Once()
			},
			expectedStage:  StageFetchLeaderboard,
			expectedReason: ReasonLeaderboardUnavailable,
		},
		{
			name: "empty leaderboard",
			setup: func(l *testutil.MockLeagueSource, p *testutil.MockMatchListSource, m *testutil.MockMatchSource) {
				l.On("GetApexLeague", mock.Anything, testDivision, testQueue).Return(testutil.SampleLeague(), nil).Once()
			},
			expectedStage:  StageSelectTarget,
			expectedReason: ReasonMalformedPlayerRecord,
		},
		{
			name: "entry without puuid",
			setup: func(l *testutil.MockLeagueSource, p *testutil.MockMatchListSource, m *testutil.MockMatchSource) {
				l.On("GetApexLeague", mock.Anything, testDivision, testQueue).Return(testutil.SampleLeague(entry("", 1000)), nil).Once()
			},
			expectedStage:  StageSelectTarget,
			expectedReason: ReasonMalformedPlayerRecord,
		},
		{
			name: "empty match list",
			setup: func(l *testutil.MockLeagueSource, p *testutil.MockMatchListSource, m *testutil.MockMatchSource) {
				l.On("GetApexLeague", mock.Anything, testDivision, testQueue).Return(testutil.SampleLeague(entry("a", 1000)), nil).Once()
				p.On("GetMatchList", mock.Anything, "a", 0, 5).Return([]string{}, nil).Once()
			},
			expectedStage:  StageFetchMatchList,
			expectedReason: ReasonNoRecentMatches,
		},
		{
			name: "match list unavailable",
			setup: func(l *testutil.MockLeagueSource, p *testutil.MockMatchListSource, m *testutil.MockMatchSource) {
				l.On("GetApexLeague", mock.Anything, testDivision, testQueue).Return(testutil.SampleLeague(entry("a", 1000)), nil).Once()
				p.On("GetMatchList", mock.Anything, "a", 0, 5).Return(nil, statusErr).Once()
			},
			expectedStage:  StageFetchMatchList,
			expectedReason: ReasonNoRecentMatches,
		},
		{
			name: "match detail unavailable",
			setup: func(l *testutil.MockLeagueSource, p *testutil.MockMatchListSource, m *testutil.MockMatchSource) {
				l.On("GetApexLeague", mock.Anything, testDivision, testQueue).Return(testutil.SampleLeague(entry("a", 1000)), nil).Once()
				p.On("GetMatchList", mock.Anything, "a", 0, 5).Return([]string{"JP1_1"}, nil).Once()
				m.On("GetMatchData", mock.Anything, "JP1_1").Return(nil, requests.ErrRetriesExhausted).Once()
			},
			expectedStage:  StageFetchMatchDetail,
			expectedReason: ReasonMatchDetailUnavailable,
		},
		{
			name: "match detail without info",
			setup: func(l *testutil.MockLeagueSource, p *testutil.MockMatchListSource, m *testutil.MockMatchSource) {
				match := testutil.SampleMatch("JP1_1", true)
				match.Info = nil
				l.On("GetApexLeague", mock.Anything, testDivision, testQueue).Return(testutil.SampleLeague(entry("a", 1000)), nil).Once()
				p.On("GetMatchList", mock.Anything, "a", 0, 5).Return([]string{"JP1_1"}, nil).Once()
				m.On("GetMatchData", mock.Anything, "JP1_1").Return(match, nil).Once()
			},
			expectedStage:  StageExtractFeatures,
			expectedReason: ReasonMalformedMatchDetail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, mockLeague, mockPlayers, mockMatches, log := setupTestPipeline()
			tt.setup(mockLeague, mockPlayers, mockMatches)

			report, err := p.Run(context.Background())

			var abortErr *AbortError
			require.ErrorAs(t, err, &abortErr)
			assert.Equal(t, tt.expectedStage, abortErr.Stage)
			assert.Equal(t, tt.expectedReason, abortErr.Reason)
			assert.NotNil(t, abortErr.Cause)

			assert.Equal(t, OutcomeAborted, report.Outcome)
			assert.Equal(t, tt.expectedStage, report.Stage)
			assert.Same(t, abortErr, report.Abort)
			assert.True(t, log.Contains("[Abort]"))

			// Nothing past the failing stage is called.
			testutil.VerifyAllMocks(t, mockLeague, mockPlayers, mockMatches)
			if tt.expectedStage <= StageSelectTarget {
				mockPlayers.AssertNotCalled(t, "GetMatchList", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			}
			if tt.expectedStage <= StageFetchMatchList {
				mockMatches.AssertNotCalled(t, "GetMatchData", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestRunMissingFieldIsNamed(t *testing.T) {
	p, mockLeague, mockPlayers, mockMatches, _ := setupTestPipeline()

	match := testutil.SampleMatch("JP1_1", true)
	match.Info.Participants = nil
	mockLeague.On("GetApexLeague", mock.Anything, testDivision, testQueue).Return(testutil.SampleLeague(entry("a", 1000)), nil).Once()
	mockPlayers.On("GetMatchList", mock.Anything, "a", 0, 5).Return([]string{"JP1_1"}, nil).Once()
	mockMatches.On("GetMatchData", mock.Anything, "JP1_1").Return(match, nil).Once()

	_, err := p.Run(context.Background())

	var missingErr *features.MissingFieldError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, "info.participants", missingErr.Field)
}

func TestRunTargetNotInMatch(t *testing.T) {
	p, mockLeague, mockPlayers, mockMatches, log := setupTestPipeline()

	mockLeague.On("GetApexLeague", mock.Anything, testDivision, testQueue).Return(testutil.SampleLeague(entry(testutil.TargetPuuid, 1000)), nil).Once()
	mockPlayers.On("GetMatchList", mock.Anything, testutil.TargetPuuid, 0, 5).Return([]string{"JP1_1"}, nil).Once()
	mockMatches.On("GetMatchData", mock.Anything, "JP1_1").Return(testutil.SampleMatch("JP1_1", false), nil).Once()

	report, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, OutcomeSuccess, report.Outcome)
	assert.False(t, report.Features.Target.Found)
	assert.Len(t, report.Features.Teams, 2)
	assert.True(t, log.Contains("not found"))

	var out bytes.Buffer
	report.Print(&out)
	assert.Contains(t, out.String(), "Target player not found")
	assert.Contains(t, out.String(), "Blue Team: Dragons=3, Grubs=2 -> WIN")
	assert.Contains(t, out.String(), "Red Team: Dragons=1, Grubs=4 -> LOSS")
}

func TestReportPrint(t *testing.T) {
	p, mockLeague, mockPlayers, mockMatches, _ := setupTestPipeline()

	mockLeague.On("GetApexLeague", mock.Anything, testDivision, testQueue).Return(testutil.SampleLeague(entry(testutil.TargetPuuid, 1523)), nil).Once()
	mockPlayers.On("GetMatchList", mock.Anything, testutil.TargetPuuid, 0, 5).Return([]string{"JP1_1"}, nil).Once()
	mockMatches.On("GetMatchData", mock.Anything, "JP1_1").Return(testutil.SampleMatch("JP1_1", true), nil).Once()

	report, err := p.Run(context.Background())
	require.NoError(t, err)

	var out bytes.Buffer
	report.Print(&out)
	text := out.String()

	assert.Contains(t, text, "Target: CHALLENGER 1523 LP (rating 91523)")
	assert.Contains(t, text, "Champion: Aatrox (ID: 266) | Role: TOP")
	assert.Contains(t, text, "Champion: LeeSin (ID: 64) | Role: JUNGLE")
	assert.Contains(t, text, "Vision Score: 40")
	assert.Contains(t, text, "Control Wards Bought: 4")
	assert.Contains(t, text, "Deaths: 0")
	assert.Contains(t, text, "--- Pipeline Finished Successfully ---")
}

func TestReportPrintAborted(t *testing.T) {
	report := &Report{
		Stage:   StageSelectTarget,
		Outcome: OutcomeAborted,
		Abort:   &AbortError{Stage: StageSelectTarget, Reason: ReasonMalformedPlayerRecord, Cause: errors.New("boom")},
	}

	var out bytes.Buffer
	report.Print(&out)
	assert.Contains(t, out.String(), "--- Pipeline Aborted at SelectTarget: malformed player record (boom) ---")
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "FetchLeaderboard", StageFetchLeaderboard.String())
	assert.Equal(t, "ExtractFeatures", StageExtractFeatures.String())
	assert.Equal(t, "Stage(42)", Stage(42).String())
}
