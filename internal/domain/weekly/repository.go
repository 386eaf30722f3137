package weekly

import "context"

type PlayerWeeklyRepository interface {
	UpsertPlayerWeekly(ctx context.Context, records []PlayerWeeklyRecord) (int, error)
	ListPlayerWeekly(ctx context.Context, season, week int) ([]PlayerWeeklyRecord, error)
}

type DefenseRepository interface {
	UpsertDefense(ctx context.Context, records []DefenseRecord) (int, error)
	ListDefense(ctx context.Context, season int) ([]DefenseRecord, error)
}
