package features

import (
	"fmt"

	matchfetcher "leagueprobe/fetcher/data/match"
)

// Team id of the blue side on match-v5, blue always picks first.
const BlueTeamId = 100

// A summoner's rift match has exactly two teams.
const TeamsPerMatch = 2

// Side of the map.
type Side string

const (
	SideBlue Side = "Blue"
	SideRed  Side = "Red"
)

// Number of participants shown on the draft preview.
const DraftPreviewSize = 2

// Objectives the analysis reads from every team.
const (
	ObjectiveDragon = "dragon"
	ObjectiveHorde  = "horde" // Void grubs.
)

// TeamObjectives is the outcome and the objective counts of a team.
type TeamObjectives struct {
	TeamId  int
	Side    Side
	Win     bool
	Dragons int
	Grubs   int

	// Every counter Riot sent, by objective name.
	Kills map[string]int
}

// Outcome returns WIN or LOSS.
func (t TeamObjectives) Outcome() string {
	if t.Win {
		return "WIN"
	}
	return "LOSS"
}

// DraftPick is the pre game selection of a participant.
type DraftPick struct {
	ChampionId   int
	ChampionName string
	Role         string
}

// ClimberTraits are the behaviour counters of the target player.
// Found is false when the player is not on the match, nil counters were not sent.
type ClimberTraits struct {
	Found              bool
	ChampionName       string
	Role               string
	VisionScore        *int
	ControlWardsBought *int
	Deaths             *int
	WardsPlaced        *int
	WardsKilled        *int
}

// Features gathered from a single match.
type Features struct {
	MatchId      string
	GameMode     string
	GameDuration int
	Teams        []TeamObjectives
	Draft        []DraftPick
	Target       ClimberTraits
}

// TeamSide labels the team, the lower id is the first (blue) side.
func TeamSide(teamId int) Side {
	if teamId == BlueTeamId {
		return SideBlue
	}
	return SideRed
}

// Extract gathers every feature of the match for the target player.
// A missing target is reported on Target.Found, missing structure is an error.
func Extract(match *matchfetcher.MatchData, puuid string) (*Features, error) {
	info, err := RequireInfo(match)
	if err != nil {
		return nil, err
	}

	teams, err := ExtractTeams(info)
	if err != nil {
		return nil, err
	}

	draft, err := ExtractDraft(info, DraftPreviewSize)
	if err != nil {
		return nil, err
	}

	target, err := ExtractClimberTraits(info, puuid)
	if err != nil {
		return nil, err
	}

	features := &Features{
		GameMode:     info.GameMode,
		GameDuration: info.GameDuration,
		Teams:        teams,
		Draft:        draft,
		Target:       target,
	}
	if match.Metadata != nil {
		features.MatchId = match.Metadata.MatchId
	}

	return features, nil
}

// RequireInfo returns the info block of the match.
func RequireInfo(match *matchfetcher.MatchData) (*matchfetcher.MatchInfo, error) {
	if match == nil || match.Info == nil {
		return nil, missing("info")
	}
	return match.Info, nil
}

// ExtractTeams reads the outcome and objectives of each team.
func ExtractTeams(info *matchfetcher.MatchInfo) ([]TeamObjectives, error) {
	if info.Teams == nil {
		return nil, missing("info.teams")
	}
	if n := len(info.Teams); n < TeamsPerMatch {
		return nil, missing("info.teams[%d]", n)
	} else if n > TeamsPerMatch {
		return nil, fmt.Errorf("%w: got %d", ErrUnexpectedTeams, n)
	}

	teams := make([]TeamObjectives, 0, len(info.Teams))
	for i, team := range info.Teams {
		if team.Objectives == nil {
			return nil, missing("info.teams[%d].objectives", i)
		}

		dragon, ok := team.Objectives[ObjectiveDragon]
		if !ok {
			return nil, missing("info.teams[%d].objectives.%s", i, ObjectiveDragon)
		}

		horde, ok := team.Objectives[ObjectiveHorde]
		if !ok {
			return nil, missing("info.teams[%d].objectives.%s", i, ObjectiveHorde)
		}

		kills := make(map[string]int, len(team.Objectives))
		for name, objective := range team.Objectives {
			kills[name] = objective.Kills
		}

		teams = append(teams, TeamObjectives{
			TeamId:  team.TeamId,
			Side:    TeamSide(team.TeamId),
			Win:     team.Win,
			Dragons: dragon.Kills,
			Grubs:   horde.Kills,
			Kills:   kills,
		})
	}

	return teams, nil
}

// ExtractDraft returns the picks of the first n participants.
func ExtractDraft(info *matchfetcher.MatchInfo, n int) ([]DraftPick, error) {
	if info.Participants == nil {
		return nil, missing("info.participants")
	}

	n = min(n, len(info.Participants))
	draft := make([]DraftPick, 0, n)
	for _, participant := range info.Participants[:n] {
		draft = append(draft, DraftPick{
			ChampionId:   participant.ChampionId,
			ChampionName: participant.ChampionName,
			Role:         participant.TeamPosition,
		})
	}

	return draft, nil
}

// ExtractClimberTraits finds the target between the participants.
func ExtractClimberTraits(info *matchfetcher.MatchInfo, puuid string) (ClimberTraits, error) {
	if info.Participants == nil {
		return ClimberTraits{}, missing("info.participants")
	}

	participant, found := FindParticipant(info.Participants, puuid)
	if !found {
		return ClimberTraits{}, nil
	}

	return ClimberTraits{
		Found:              true,
		ChampionName:       participant.ChampionName,
		Role:               participant.TeamPosition,
		VisionScore:        participant.VisionScore,
		ControlWardsBought: participant.VisionWardsBoughtInGame,
		Deaths:             participant.Deaths,
		WardsPlaced:        participant.WardsPlaced,
		WardsKilled:        participant.WardsKilled,
	}, nil
}

// FindParticipant returns the first participant with the puuid.
func FindParticipant(participants []matchfetcher.MatchPlayer, puuid string) (matchfetcher.MatchPlayer, bool) {
	if puuid == "" {
		return matchfetcher.MatchPlayer{}, false
	}

	for _, participant := range participants {
		if participant.Puuid == puuid {
			return participant, true
		}
	}
	return matchfetcher.MatchPlayer{}, false
}
