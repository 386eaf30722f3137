package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/statline/internal/domain/weekly"
)

type DefenseRepository struct {
	mu    sync.RWMutex
	byKey map[string]weekly.DefenseRecord
}

func NewDefenseRepository() *DefenseRepository {
	return &DefenseRepository{byKey: make(map[string]weekly.DefenseRecord)}
}

func (r *DefenseRepository) UpsertDefense(_ context.Context, records []weekly.DefenseRecord) (int, error) {
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

func (r *DefenseRepository) ListDefense(_ context.Context, season int) ([]weekly.DefenseRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]weekly.DefenseRecord, 0)
	for _, record := range r.byKey {
		if record.Season == season {
			out = append(out, record)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Team < out[j].Team
	})
	return out, nil
}
