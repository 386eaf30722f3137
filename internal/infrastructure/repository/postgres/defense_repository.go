package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/statline/internal/domain/weekly"
	qb "github.com/riskibarqy/statline/internal/platform/querybuilder"
)

type DefenseRepository struct {
	db      *sqlx.DB
	gateway *Gateway
}

func NewDefenseRepository(db *sqlx.DB, gateway *Gateway) *DefenseRepository {
	return &DefenseRepository{db: db, gateway: gateway}
}

func (r *DefenseRepository) UpsertDefense(ctx context.Context, records []weekly.DefenseRecord) (int, error) {
	rows := make([]Record, 0, len(records))
	for _, record := range records {
		row, err := RecordFromModel(defenseRankingTableModel{
			Season:        record.Season,
			Team:          record.Team,
			PointsAllowed: record.PointsAllowed,
			YardsAllowed:  record.YardsAllowed,
		})
		if err != nil {
			return 0, err
		}
		rows = append(rows, row)
	}

	written, err := r.gateway.Upsert(ctx, defenseRankingsUpsert, rows)
	if err != nil {
		return 0, fmt.Errorf("upsert defense rankings: %w", err)
	}
	return written, nil
}

func (r *DefenseRepository) ListDefense(ctx context.Context, season int) ([]weekly.DefenseRecord, error) {
	query, args, err := qb.Select(qb.Columns(defenseRankingTableModel{})...).
		From(defenseRankingsTable).
		Where(qb.Eq("season", season)).
		OrderBy("team").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select defense rankings query: %w", err)
	}

	var rows []defenseRankingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select defense rankings: %w", err)
	}

	out := make([]weekly.DefenseRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, weekly.DefenseRecord{
			Season:        row.Season,
			Team:          row.Team,
			PointsAllowed: row.PointsAllowed,
			YardsAllowed:  row.YardsAllowed,
		})
	}
	return out, nil
}
