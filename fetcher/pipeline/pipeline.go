package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sort"

	leaguefetcher "leagueprobe/fetcher/data/league"
	matchfetcher "leagueprobe/fetcher/data/match"
	"leagueprobe/fetcher/features"
	"leagueprobe/pkg/logger"
	"leagueprobe/pkg/metrics"
	tiervalues "leagueprobe/pkg/riotvalues/tier"
)

// LeagueSource serves the leaderboard.
type LeagueSource interface {
	GetApexLeague(ctx context.Context, division string, queue string) (*leaguefetcher.HighEloLeague, error)
}

// MatchListSource serves the match references of a player.
type MatchListSource interface {
	GetMatchList(ctx context.Context, puuid string, start int, count int) ([]string, error)
}

// MatchSource serves the match details.
type MatchSource interface {
	GetMatchData(ctx context.Context, matchId string) (*matchfetcher.MatchData, error)
}

// PipelineDeps are the collaborators of the pipeline.
type PipelineDeps struct {
	League  LeagueSource
	Players MatchListSource
	Matches MatchSource
	Logger  logger.Logger
	Metrics metrics.Recorder

	Division   string
	Queue      string
	MatchCount int
}

// Pipeline runs the stages one after the other.
// Retries belong to the request layer, a stage either gets data or aborts.
type Pipeline struct {
	league  LeagueSource
	players MatchListSource
	matches MatchSource
	logger  logger.Logger
	metrics metrics.Recorder

	division   string
	queue      string
	matchCount int
}

// Create the pipeline.
func NewPipeline(deps *PipelineDeps) *Pipeline {
	p := &Pipeline{
		league:     deps.League,
		players:    deps.Players,
		matches:    deps.Matches,
		logger:     deps.Logger,
		metrics:    deps.Metrics,
		division:   deps.Division,
		queue:      deps.Queue,
		matchCount: deps.MatchCount,
	}

	if p.metrics == nil {
		p.metrics = metrics.Nop{}
	}
	if p.logger == nil {
		p.logger = nopLogger{}
	}
	return p
}

type nopLogger struct{}

func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}

// Report holds what every reached stage produced.
type Report struct {
	Stage   Stage
	Outcome Outcome
	Abort   *AbortError

	Tier     string
	Target   *leaguefetcher.LeagueEntry
	Rating   int
	MatchIds []string
	Features *features.Features
}

// Run executes the pipeline, a non nil error is always an *AbortError.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	report := &Report{}
	err := p.run(ctx, report)

	if err != nil {
		report.Outcome = OutcomeAborted
		errors.As(err, &report.Abort)
		p.logger.Errorf("[Abort] %v", err)
	} else {
		report.Outcome = OutcomeSuccess
	}

	p.metrics.PipelineFinished(string(report.Outcome), report.Stage.String())
	return report, err
}

func (p *Pipeline) run(ctx context.Context, report *Report) error {
	// Step 1: leaderboard.
	report.Stage = StageFetchLeaderboard
	tier, _ := tiervalues.ApexTier(p.division)
	p.logger.Infof("[Step 1] Fetching %s league data for %s...", tier, p.queue)

	league, err := p.league.GetApexLeague(ctx, p.division, p.queue)
	if err == nil && league == nil {
		err = ErrNoLeaderboard
	}
	if err != nil {
		return &AbortError{Stage: report.Stage, Reason: ReasonLeaderboardUnavailable, Cause: err}
	}
	report.Tier = league.Tier

	// Step 2: pick the highest LP player.
	report.Stage = StageSelectTarget
	target, err := SelectTarget(league.Entries)
	if err != nil {
		return &AbortError{Stage: report.Stage, Reason: ReasonMalformedPlayerRecord, Cause: err}
	}
	report.Target = &target
	report.Rating = tiervalues.CalculateRank(league.Tier, target.LeaguePoints)
	p.logger.Infof("-> Target Found (1st Place): %d LP", target.LeaguePoints)
	p.logger.Infof("-> PUUID Extracted directly: %s", target.Puuid)

	// Step 3: recent matches.
	report.Stage = StageFetchMatchList
	p.logger.Infof("[Step 2] Fetching recent Match IDs using PUUID...")

	matchIds, err := p.players.GetMatchList(ctx, target.Puuid, 0, p.matchCount)
	if err != nil {
		return &AbortError{Stage: report.Stage, Reason: ReasonNoRecentMatches, Cause: err}
	}
	matchId, err := MostRecentMatch(matchIds)
	if err != nil {
		return &AbortError{Stage: report.Stage, Reason: ReasonNoRecentMatches, Cause: err}
	}
	report.MatchIds = matchIds
	p.logger.Infof("-> Retrieved %d matches.", len(matchIds))

	// Step 4: the most recent match.
	report.Stage = StageFetchMatchDetail
	p.logger.Infof("[Step 3] Deep Analysis of Match: %s", matchId)

	match, err := p.matches.GetMatchData(ctx, matchId)
	if err != nil {
		return &AbortError{Stage: report.Stage, Reason: ReasonMatchDetailUnavailable, Cause: err}
	}

	// Step 5: features.
	report.Stage = StageExtractFeatures
	extracted, err := features.Extract(match, target.Puuid)
	if err != nil {
		return &AbortError{Stage: report.Stage, Reason: ReasonMalformedMatchDetail, Cause: err}
	}
	if extracted.MatchId == "" {
		extracted.MatchId = matchId
	}
	report.Features = extracted

	if !extracted.Target.Found {
		p.logger.Warnf("Target player %s not found in match %s.", target.Puuid, matchId)
	}

	return nil
}

// Errors of the pure stages.
var (
	ErrNoLeaderboard  = errors.New("the leaderboard source returned nothing")
	ErrNoEntries      = errors.New("the leaderboard has no entries")
	ErrMissingPuuid   = errors.New("the selected entry has no puuid")
	ErrNoMatchHistory = errors.New("the player has no recent matches")
)

// SelectTarget returns the entry with the most league points.
// Ties keep the input order, so the first maximal entry wins.
func SelectTarget(entries []leaguefetcher.LeagueEntry) (leaguefetcher.LeagueEntry, error) {
	if len(entries) == 0 {
		return leaguefetcher.LeagueEntry{}, ErrNoEntries
	}

	// Sort a copy, the league page stays as fetched.
	sorted := make([]leaguefetcher.LeagueEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].LeaguePoints > sorted[j].LeaguePoints
	})

	target := sorted[0]
	if target.Puuid == "" {
		return leaguefetcher.LeagueEntry{}, fmt.Errorf("%w (%d LP)", ErrMissingPuuid, target.LeaguePoints)
	}

	return target, nil
}

// MostRecentMatch returns the first reference, match-v5 lists newest first.
func MostRecentMatch(matchIds []string) (string, error) {
	if len(matchIds) == 0 {
		return "", ErrNoMatchHistory
	}
	return matchIds[0], nil
}
