package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/statline/internal/domain/weekly"
)

// WeeklyStatsRepository keeps player lines keyed like the player_weekly_stats
// unique index. Used for dry runs.
type WeeklyStatsRepository struct {
	mu    sync.RWMutex
	byKey map[string]weekly.PlayerWeeklyRecord
}

func NewWeeklyStatsRepository() *WeeklyStatsRepository {
	return &WeeklyStatsRepository{byKey: make(map[string]weekly.PlayerWeeklyRecord)}
}

func (r *WeeklyStatsRepository) UpsertPlayerWeekly(_ context.Context, records []weekly.PlayerWeeklyRecord) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	written := make(map[string]struct{}, len(records))
	for _, record := range records {
		key := record.Key()
		r.byKey[key] = record
		written[key] = struct{}{}
	}
	return len(written), nil
}

func (r *WeeklyStatsRepository) ListPlayerWeekly(_ context.Context, season, week int) ([]weekly.PlayerWeeklyRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]weekly.PlayerWeeklyRecord, 0)
	for _, record := range r.byKey {
		if record.Season == season && record.Week == week {
			out = append(out, record)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PFRPlayerID < out[j].PFRPlayerID
	})
	return out, nil
}
