package domain

// PlayerRef identifies a player in a response. It deliberately carries no
// puuid; only display fields leave the server.
type PlayerRef struct {
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// ComparisonResult is the full payload for one two-player comparison.
type ComparisonResult struct {
	Player1 PlayerRef      `json:"player1"`
	Player2 PlayerRef      `json:"player2"`
	Matches []MatchSummary `json:"matches"`
}

// MatchSummary is the projected view of one shared match.
type MatchSummary struct {
	MatchID string `json:"matchId"`

	// GameMode is a display label taken from the match record
	GameMode string `json:"gameMode"`

	// Timestamp is epoch milliseconds
	Timestamp int64 `json:"timestamp"`

	// Duration is preformatted, e.g. "23m 42s"
	Duration string `json:"duration"`

	Players MatchPlayers `json:"players"`
}

// MatchPlayers holds per-player stats whose shape depends on the game mode:
// ClassicStats or AutoBattlerStats.
type MatchPlayers struct {
	Player1 any `json:"player1"`
	Player2 any `json:"player2"`
}

type ClassicStats struct {
	Champion string  `json:"champion"`
	Team     *string `json:"team"` // "Blue" or "Red", null when unknown
}

type AutoBattlerStats struct {
	Placement *int   `json:"placement"` // null when the player is missing from the record
	Traits    string `json:"traits"`
}
