package riot

// Account is the upstream account record behind a Riot ID.
type Account struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// MatchDetail is the raw upstream match record. Classic and auto-battler
// matches share the metadata/info envelope but populate different info
// fields; whichever half is absent stays zero-valued and projection treats
// it as unknown.
type MatchDetail struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

type MatchMetadata struct {
	// classic records name the ID matchId, auto-battler ones match_id
	MatchID    string `json:"matchId"`
	TFTMatchID string `json:"match_id"`

	Participants []string `json:"participants"`
}

type MatchInfo struct {
	// classic fields
	GameCreation int64  `json:"gameCreation"`
	GameDuration int64  `json:"gameDuration"`
	GameMode     string `json:"gameMode"`

	// auto-battler fields
	GameDatetime int64   `json:"game_datetime"`
	GameLength   float64 `json:"game_length"`
	TFTGameType  string  `json:"tft_game_type"`

	Participants []Participant `json:"participants"`
}

type Participant struct {
	PUUID string `json:"puuid"`

	// classic
	ChampionName string `json:"championName"`
	TeamID       int    `json:"teamId"`

	// auto-battler
	Placement int     `json:"placement"`
	Traits    []Trait `json:"traits"`
}

type Trait struct {
	Name        string `json:"name"`
	NumUnits    int    `json:"num_units"`
	Style       int    `json:"style"`
	TierCurrent int    `json:"tier_current"`
}
