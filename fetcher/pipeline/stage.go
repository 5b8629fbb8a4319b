package pipeline

import "fmt"

// Stage of the probe, run in declaration order.
type Stage int

const (
	StageFetchLeaderboard Stage = iota
	StageSelectTarget
	StageFetchMatchList
	StageFetchMatchDetail
	StageExtractFeatures
)

var stageNames = map[Stage]string{
	StageFetchLeaderboard: "FetchLeaderboard",
	StageSelectTarget:     "SelectTarget",
	StageFetchMatchList:   "FetchMatchList",
	StageFetchMatchDetail: "FetchMatchDetail",
	StageExtractFeatures:  "ExtractFeatures",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// Outcome of a finished run.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeAborted Outcome = "aborted"
)

// Abort reasons, one per stage.
const (
	ReasonLeaderboardUnavailable = "leaderboard unavailable"
	ReasonMalformedPlayerRecord  = "malformed player record"
	ReasonNoRecentMatches        = "no recent matches"
	ReasonMatchDetailUnavailable = "match detail unavailable"
	ReasonMalformedMatchDetail   = "malformed match detail"
)

// AbortError ends the run, it always names the stage and the cause.
type AbortError struct {
	Stage  Stage
	Reason string
	Cause  error
}

func (e *AbortError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s aborted: %s", e.Stage, e.Reason)
	}
	return fmt.Sprintf("%s aborted: %s: %v", e.Stage, e.Reason, e.Cause)
}

func (e *AbortError) Unwrap() error {
	return e.Cause
}
