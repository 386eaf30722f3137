package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/statline/internal/domain/weekly"
	qb "github.com/riskibarqy/statline/internal/platform/querybuilder"
)

type WeeklyStatsRepository struct {
	db      *sqlx.DB
	gateway *Gateway
}

func NewWeeklyStatsRepository(db *sqlx.DB, gateway *Gateway) *WeeklyStatsRepository {
	return &WeeklyStatsRepository{db: db, gateway: gateway}
}

func (r *WeeklyStatsRepository) UpsertPlayerWeekly(ctx context.Context, records []weekly.PlayerWeeklyRecord) (int, error) {
	rows := make([]Record, 0, len(records))
	for _, record := range records {
		row, err := RecordFromModel(playerWeeklyStatsModelFrom(record))
		if err != nil {
			return 0, err
		}
		rows = append(rows, row)
	}

	written, err := r.gateway.Upsert(ctx, playerWeeklyStatsUpsert, rows)
	if err != nil {
		return 0, fmt.Errorf("upsert player weekly stats: %w", err)
	}
	return written, nil
}

func (r *WeeklyStatsRepository) ListPlayerWeekly(ctx context.Context, season, week int) ([]weekly.PlayerWeeklyRecord, error) {
	query, args, err := qb.Select(qb.Columns(playerWeeklyStatsTableModel{})...).
		From(playerWeeklyStatsTable).
		Where(
			qb.Eq("season", season),
			qb.Eq("week", week),
		).
		OrderBy("pfr_player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select player weekly stats query: %w", err)
	}

	var rows []playerWeeklyStatsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select player weekly stats: %w", err)
	}

	out := make([]weekly.PlayerWeeklyRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
