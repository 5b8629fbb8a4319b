package pipeline

import (
	"leagueprobe/internal/testutil"
)

const (
	testDivision = "challengerleagues"
	testQueue    = "RANKED_SOLO_5x5"
)

// Helper to initialize the mocks.
func setupTestPipeline() (
	*Pipeline,
	*testutil.MockLeagueSource,
	*testutil.MockMatchListSource,
	*testutil.MockMatchSource,
	*testutil.LineLogger,
) {
	mockLeague := new(testutil.MockLeagueSource)
	mockPlayers := new(testutil.MockMatchListSource)
	mockMatches := new(testutil.MockMatchSource)
	log := &testutil.LineLogger{}

	p := NewPipeline(&PipelineDeps{
		League:     mockLeague,
		Players:    mockPlayers,
		Matches:    mockMatches,
		Logger:     log,
		Division:   testDivision,
		Queue:      testQueue,
		MatchCount: 5,
	})

	return p, mockLeague, mockPlayers, mockMatches, log
}
