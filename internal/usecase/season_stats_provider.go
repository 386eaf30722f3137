package usecase

import (
	"context"

	"github.com/riskibarqy/statline/internal/domain/gamelog"
)

// GameLogProvider loads a single player's game log page.
type GameLogProvider interface {
	FetchGameLog(ctx context.Context, playerID, playerName string) (gamelog.GameLog, error)
}

// SeasonStatsProvider scrapes season-level tables. A page without the
// expected table yields an empty slice and no error.
type SeasonStatsProvider interface {
	ScrapePlayerStats(ctx context.Context, season int, week *int) ([]ExternalPlayerSeasonLine, error)
	ScrapeTeamDefense(ctx context.Context, season int) ([]ExternalTeamDefense, error)
}

type ExternalPlayerSeasonLine struct {
	SourcePlayerID string
	PlayerName     string
	Team           string
	Position       string
	Season         int
	Week           *int
	PassingYards   int
	PassingTDs     int
	PassingInt     int
	RushingYards   int
	RushingTDs     int
	Receptions     int
	ReceivingYards int
	ReceivingTDs   int
	FantasyPoints  float64
}

type ExternalTeamDefense struct {
	Team          string
	Season        int
	PointsAllowed float64
	YardsAllowed  float64
}
