package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/statline/internal/domain/weekly"
)

// IdentityResolver maps scraped rows to the identities they are stored
// under. Rows it cannot place are returned as rejections.
type IdentityResolver interface {
	ResolvePlayers(ctx context.Context, lines []ExternalPlayerSeasonLine) ([]weekly.PlayerWeeklyRecord, []RejectedRecord)
	ResolveDefenses(ctx context.Context, rows []ExternalTeamDefense) ([]weekly.DefenseRecord, []RejectedRecord)
}

type RejectedRecord struct {
	Key    string
	Reason string
}

// SourceIdentityResolver keys rows by the source site's own identifiers.
type SourceIdentityResolver struct{}

func (SourceIdentityResolver) ResolvePlayers(_ context.Context, lines []ExternalPlayerSeasonLine) ([]weekly.PlayerWeeklyRecord, []RejectedRecord) {
	out := make([]weekly.PlayerWeeklyRecord, 0, len(lines))
	var rejected []RejectedRecord
	for i, line := range lines {
		id := strings.TrimSpace(line.SourcePlayerID)
		if id == "" {
			rejected = append(rejected, RejectedRecord{
				Key:    fmt.Sprintf("row %d (%s)", i, line.PlayerName),
				Reason: "missing source player id",
			})
			continue
		}

		week := weekly.NoWeek
		if line.Week != nil {
			week = *line.Week
		}
		out = append(out, weekly.PlayerWeeklyRecord{
			Season:         line.Season,
			Week:           week,
			PFRPlayerID:    id,
			PlayerName:     strings.TrimSpace(line.PlayerName),
			Team:           strings.TrimSpace(line.Team),
			Position:       strings.TrimSpace(line.Position),
			PassingYards:   line.PassingYards,
			PassingTDs:     line.PassingTDs,
			PassingInt:     line.PassingInt,
			RushingYards:   line.RushingYards,
			RushingTDs:     line.RushingTDs,
			Receptions:     line.Receptions,
			ReceivingYards: line.ReceivingYards,
			ReceivingTDs:   line.ReceivingTDs,
			FantasyPoints:  line.FantasyPoints,
		})
	}
	return out, rejected
}

func (SourceIdentityResolver) ResolveDefenses(_ context.Context, rows []ExternalTeamDefense) ([]weekly.DefenseRecord, []RejectedRecord) {
	out := make([]weekly.DefenseRecord, 0, len(rows))
	var rejected []RejectedRecord
	for i, row := range rows {
		team := strings.TrimSpace(row.Team)
		if team == "" {
			rejected = append(rejected, RejectedRecord{Key: fmt.Sprintf("row %d", i), Reason: "missing team name"})
			continue
		}
		out = append(out, weekly.DefenseRecord{
			Season:        row.Season,
			Team:          team,
			PointsAllowed: row.PointsAllowed,
			YardsAllowed:  row.YardsAllowed,
		})
	}
	return out, rejected
}
