package weekly

import (
	"fmt"
	"time"
)

// NoWeek is stored when a record covers a whole season.
const NoWeek = 0

// PlayerWeeklyRecord is one player's fantasy line for a season, or for a
// single week of it.
type PlayerWeeklyRecord struct {
	Season         int    `validate:"gte=1920,lte=2100"`
	Week           int    `validate:"gte=0,lte=22"`
	PFRPlayerID    string `validate:"required,max=64"`
	PlayerName     string `validate:"required"`
	Team           string
	Position       string
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

func (r PlayerWeeklyRecord) Key() string {
	return fmt.Sprintf("%d/%d/%s", r.Season, r.Week, r.PFRPlayerID)
}

// DefenseRecord is a team's points and yards allowed for a season.
type DefenseRecord struct {
	Season        int     `validate:"gte=1920,lte=2100"`
	Team          string  `validate:"required"`
	PointsAllowed float64 `validate:"gte=0"`
	YardsAllowed  float64 `validate:"gte=0"`
}

func (r DefenseRecord) Key() string {
	return fmt.Sprintf("%d/%s", r.Season, r.Team)
}

// DefaultSeason is the NFL season in progress at now. Seasons start in
// September, so earlier months belong to the previous year's season.
func DefaultSeason(now time.Time) int {
	if now.Month() < time.September {
		return now.Year() - 1
	}
	return now.Year()
}
