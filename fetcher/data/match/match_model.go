package matchfetcher

import (
	"time"

	json "github.com/goccy/go-json"
)

// Handle the conversion of the int timestamps from riot.
type RiotTime time.Time

// Add the riot time UnmarshalJSON.
func (rt *RiotTime) UnmarshalJSON(b []byte) error {
	var timestamp int64
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}

	// Convert milliseconds to time.Time
	*rt = RiotTime(time.UnixMilli(timestamp))
	return nil
}

// Write it back as milliseconds.
func (rt RiotTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(rt).UnixMilli())
}

// Get the true time.
func (rt RiotTime) Time() time.Time {
	return time.Time(rt)
}

// Return type from the match_v5 endpoint.
// Blocks that the analysis depends on are pointers or slices, so a missing block stays nil.
type MatchData struct {
	Metadata *MatchMetadata `json:"metadata"`
	Info     *MatchInfo     `json:"info"`
}

// MatchMetadata contains the id and the participants puuids.
type MatchMetadata struct {
	MatchId      string   `json:"matchId"`
	Participants []string `json:"participants"`
}

// MatchInfo contains the basic match metadata.
type MatchInfo struct {
	EndOfGameResult string        `json:"endOfGameResult"`
	GameCreation    RiotTime      `json:"gameCreation"`
	GameDuration    int           `json:"gameDuration"`
	GameMode        string        `json:"gameMode"`
	GameVersion     string        `json:"gameVersion"`
	Participants    []MatchPlayer `json:"participants"`
	PlatformId      string        `json:"platformId"`
	QueueId         int           `json:"queueId"`
	Teams           []TeamInfo    `json:"teams"`
}

// MatchPlayer contains the stats and information about a given player in a Match.
// Behaviour counters are optional, nil means Riot didn't send it.
type MatchPlayer struct {
	Assists                 int    `json:"assists"`
	ChampionId              int    `json:"championId"`
	ChampionName            string `json:"championName"`
	Deaths                  *int   `json:"deaths"`
	Kills                   int    `json:"kills"`
	Puuid                   string `json:"puuid"`
	TeamId                  int    `json:"teamId"`
	TeamPosition            string `json:"teamPosition"`
	VisionScore             *int   `json:"visionScore"`
	VisionWardsBoughtInGame *int   `json:"visionWardsBoughtInGame"`
	WardsKilled             *int   `json:"wardsKilled"`
	WardsPlaced             *int   `json:"wardsPlaced"`
	Win                     bool   `json:"win"`
}

// TeamInfo contains the bans, id, objectives and if the team won.
type TeamInfo struct {
	Bans       []Ban                `json:"bans"`
	Objectives map[string]Objective `json:"objectives"`
	TeamId     int                  `json:"teamId"`
	Win        bool                 `json:"win"`
}

// Objective counter, e.g. dragon or horde (void grubs).
type Objective struct {
	First bool `json:"first"`
	Kills int  `json:"kills"`
}

// Ban information.
type Ban struct {
	ChampionId int `json:"championId"`
	PickTurn   int `json:"pickTurn"`
}
