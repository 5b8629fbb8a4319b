package leaguefetcher

// LeagueEntry defines the type returned for each player of a league.
type LeagueEntry struct {
	FreshBlood   bool   `json:"freshBlood"`
	HotStreak    bool   `json:"hotStreak"`
	Inactive     bool   `json:"inactive"`
	LeaguePoints int    `json:"leaguePoints"`
	Losses       int    `json:"losses"`
	Puuid        string `json:"puuid"`
	Rank         string `json:"rank"`
	Veteran      bool   `json:"veteran"`
	Wins         int    `json:"wins"`
}

// HighEloLeague is the apex league page, the entries come with some outer keys.
type HighEloLeague struct {
	Entries  []LeagueEntry `json:"entries"`
	LeagueId string        `json:"leagueId"`
	Name     string        `json:"name"`
	Queue    string        `json:"queue"`
	Tier     string        `json:"tier"`
}
