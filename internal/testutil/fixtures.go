package testutil

import (
	leaguefetcher "leagueprobe/fetcher/data/league"
	matchfetcher "leagueprobe/fetcher/data/match"
)

// Puuid of the player the sample match is analysed for.
const TargetPuuid = "target-puuid"

// SampleLeague builds a challenger league with the given entries.
func SampleLeague(entries ...leaguefetcher.LeagueEntry) *leaguefetcher.HighEloLeague {
	return &leaguefetcher.HighEloLeague{
		Entries:  entries,
		LeagueId: "league-id",
		Name:     "Sample's Challengers",
		Queue:    "RANKED_SOLO_5x5",
		Tier:     "CHALLENGER",
	}
}

// IntPtr helps filling the optional counters.
func IntPtr(value int) *int {
	return &value
}

var sampleRoster = []struct {
	championId   int
	championName string
	position     string
}{
	{266, "Aatrox", "TOP"},
	{64, "LeeSin", "JUNGLE"},
	{103, "Ahri", "MIDDLE"},
	{222, "Jinx", "BOTTOM"},
	{412, "Thresh", "UTILITY"},
	{122, "Darius", "TOP"},
	{121, "Khazix", "JUNGLE"},
	{238, "Zed", "MIDDLE"},
	{51, "Caitlyn", "BOTTOM"},
	{117, "Lulu", "UTILITY"},
}

// SampleMatch builds a finished 5v5 where blue won.
// The target plays the support of the blue side when withTarget is set.
func SampleMatch(matchId string, withTarget bool) *matchfetcher.MatchData {
	participants := make([]matchfetcher.MatchPlayer, 0, len(sampleRoster))
	puuids := make([]string, 0, len(sampleRoster))

	for i, slot := range sampleRoster {
		teamId := 100
		if i >= 5 {
			teamId = 200
		}

		puuid := "puuid-" + slot.championName
		if withTarget && i == 4 {
			puuid = TargetPuuid
		}
		puuids = append(puuids, puuid)

		participants = append(participants, matchfetcher.MatchPlayer{
			Assists:                 7,
			ChampionId:              slot.championId,
			ChampionName:            slot.championName,
			Deaths:                  IntPtr(i % 4),
			Kills:                   i,
			Puuid:                   puuid,
			TeamId:                  teamId,
			TeamPosition:            slot.position,
			VisionScore:             IntPtr(20 + i*5),
			VisionWardsBoughtInGame: IntPtr(i),
			WardsKilled:             IntPtr(2),
			WardsPlaced:             IntPtr(10),
			Win:                     teamId == 100,
		})
	}

	return &matchfetcher.MatchData{
		Metadata: &matchfetcher.MatchMetadata{MatchId: matchId, Participants: puuids},
		Info: &matchfetcher.MatchInfo{
			GameDuration: 1834,
			GameMode:     "CLASSIC",
			GameVersion:  "15.20.1",
			Participants: participants,
			PlatformId:   "JP1",
			QueueId:      420,
			Teams: []matchfetcher.TeamInfo{
				{
					TeamId: 100,
					Win:    true,
					Objectives: map[string]matchfetcher.Objective{
						"dragon": {First: true, Kills: 3},
						"horde":  {First: false, Kills: 2},
						"baron":  {First: true, Kills: 1},
						"tower":  {First: true, Kills: 9},
					},
				},
				{
					TeamId: 200,
					Win:    false,
					Objectives: map[string]matchfetcher.Objective{
						"dragon": {Kills: 1},
						"horde":  {First: true, Kills: 4},
						"baron":  {Kills: 0},
						"tower":  {Kills: 3},
					},
				},
			},
		},
	}
}
