package postgres

import "github.com/riskibarqy/statline/internal/domain/weekly"

const (
	playerWeeklyStatsTable = "player_weekly_stats"
	defenseRankingsTable   = "defense_rankings"
)

var (
	playerWeeklyStatsUpsert = UpsertSpec{
		Table:           playerWeeklyStatsTable,
		ConflictColumns: []string{"season", "week", "pfr_player_id"},
	}
	defenseRankingsUpsert = UpsertSpec{
		Table:           defenseRankingsTable,
		ConflictColumns: []string{"season", "team"},
	}
)

type playerWeeklyStatsTableModel struct {
	Season         int     `db:"season"`
	Week           int     `db:"week"`
	PFRPlayerID    string  `db:"pfr_player_id"`
	PlayerName     string  `db:"player_name"`
	Team           string  `db:"team"`
	Position       string  `db:"position"`
	PassingYards   int     `db:"passing_yards"`
	PassingTDs     int     `db:"passing_tds"`
	PassingInt     int     `db:"passing_int"`
	RushingYards   int     `db:"rushing_yards"`
	RushingTDs     int     `db:"rushing_tds"`
	Receptions     int     `db:"receptions"`
	ReceivingYards int     `db:"receiving_yards"`
	ReceivingTDs   int     `db:"receiving_tds"`
	FantasyPoints  float64 `db:"fantasy_points"`
}

func playerWeeklyStatsModelFrom(r weekly.PlayerWeeklyRecord) playerWeeklyStatsTableModel {
	return playerWeeklyStatsTableModel{
		Season:         r.Season,
		Week:           r.Week,
		PFRPlayerID:    r.PFRPlayerID,
		PlayerName:     r.PlayerName,
		Team:           r.Team,
		Position:       r.Position,
		PassingYards:   r.PassingYards,
		PassingTDs:     r.PassingTDs,
		PassingInt:     r.PassingInt,
		RushingYards:   r.RushingYards,
		RushingTDs:     r.RushingTDs,
		Receptions:     r.Receptions,
		ReceivingYards: r.ReceivingYards,
		ReceivingTDs:   r.ReceivingTDs,
		FantasyPoints:  r.FantasyPoints,
	}
}

func (m playerWeeklyStatsTableModel) toDomain() weekly.PlayerWeeklyRecord {
	return weekly.PlayerWeeklyRecord{
		Season:         m.Season,
		Week:           m.Week,
		PFRPlayerID:    m.PFRPlayerID,
		PlayerName:     m.PlayerName,
		Team:           m.Team,
		Position:       m.Position,
		PassingYards:   m.PassingYards,
		PassingTDs:     m.PassingTDs,
		PassingInt:     m.PassingInt,
		RushingYards:   m.RushingYards,
		RushingTDs:     m.RushingTDs,
		Receptions:     m.Receptions,
		ReceivingYards: m.ReceivingYards,
		ReceivingTDs:   m.ReceivingTDs,
		FantasyPoints:  m.FantasyPoints,
	}
}

type defenseRankingTableModel struct {
	Season        int     `db:"season"`
	Team          string  `db:"team"`
	PointsAllowed float64 `db:"points_allowed"`
	YardsAllowed  float64 `db:"yards_allowed"`
}
