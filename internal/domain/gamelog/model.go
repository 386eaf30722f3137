package gamelog

const SourceESPNGameLog = "espn_gamelog"

type RushingLine struct {
	Carries    int     `json:"carries"`
	Yards      int     `json:"yards"`
	Average    float64 `json:"avg"`
	Touchdowns int     `json:"td"`
}

type ReceivingLine struct {
	Receptions int `json:"receptions"`
	Targets    int `json:"targets"`
	Yards      int `json:"yards"`
	Touchdowns int `json:"td"`
}

// GameRecord is one per-game row of a player's game log.
type GameRecord struct {
	Date      string        `json:"date"`
	Opponent  string        `json:"opponent"`
	Result    string        `json:"result"`
	Rushing   RushingLine   `json:"rushing"`
	Receiving ReceivingLine `json:"receiving"`
}

// SeasonTotals are season rushing totals. Yards may be negative.
type SeasonTotals struct {
	Carries    int     `json:"carries"`
	Yards      int     `json:"yards"`
	Touchdowns int     `json:"touchdowns"`
	Average    float64 `json:"average"`
}

type SeasonStats struct {
	Rushing SeasonTotals `json:"rushing"`
}

// PlayerStatsResult is the single-player lookup outcome. On failure only
// Success, Error, PlayerID and Suggestion are set.
type PlayerStatsResult struct {
	Success     bool         `json:"success"`
	PlayerName  string       `json:"playerName,omitempty"`
	PlayerID    string       `json:"playerId,omitempty"`
	SeasonStats *SeasonStats `json:"seasonStats,omitempty"`
	LastGame    *GameRecord  `json:"lastGame,omitempty"`
	Source      string       `json:"source,omitempty"`
	GamesPlayed int          `json:"gamesPlayed"`
	Error       string       `json:"error,omitempty"`
	Suggestion  string       `json:"suggestion,omitempty"`
}

// GameLog is what a game-log page yields before reconciliation.
type GameLog struct {
	PlayerName string
	Games      []GameRecord
	// Aggregate holds the published season row, when the page has one.
	Aggregate *SeasonTotals
}
