package postgres

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	qb "github.com/riskibarqy/statline/internal/platform/querybuilder"
)

// PostgreSQL caps a single statement at 65535 bind parameters.
const maxBindParams = 65535

var (
	ErrInvalidUpsert = crerr.New("invalid upsert")
	ErrPersistence   = crerr.New("persistence failure")
)

var identifierPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

type UpsertSpec struct {
	Table           string
	ConflictColumns []string
}

// Record is one row to write. Every record of a batch must list the same
// columns in the same order.
type Record struct {
	Columns []string
	Values  []any
}

// RecordFromModel builds a Record from the `db` tags of a table model.
func RecordFromModel(model any) (Record, error) {
	cols, vals, err := qb.ColumnsAndValues(model)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrInvalidUpsert, err)
	}
	return Record{Columns: cols, Values: vals}, nil
}

// Gateway writes record batches with INSERT ... ON CONFLICT DO UPDATE.
type Gateway struct {
	db        *sqlx.DB
	maxParams int
}

func NewGateway(db *sqlx.DB) *Gateway {
	return &Gateway{db: db, maxParams: maxBindParams}
}

// Upsert writes records in one transaction and returns how many distinct
// natural keys were written. Records sharing a key collapse to the last one.
// Nothing is written when any statement fails.
func (g *Gateway) Upsert(ctx context.Context, spec UpsertSpec, records []Record) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	columns, err := validateUpsert(spec, records)
	if err != nil {
		return 0, err
	}

	rows, err := collapseByKey(spec.ConflictColumns, columns, records)
	if err != nil {
		return 0, err
	}
	batchSize := max(g.maxParams/len(columns), 1)

	tx, err := g.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: begin tx upsert %s: %w", ErrPersistence, spec.Table, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for start := 0; start < len(rows); start += batchSize {
		end := min(start+batchSize, len(rows))

		builder := qb.InsertInto(spec.Table).Columns(columns...)
		for _, row := range rows[start:end] {
			builder.Values(row...)
		}
		query, args, err := builder.OnConflictUpdate(spec.ConflictColumns...).ToSQL()
		if err != nil {
			return 0, fmt.Errorf("%w: build upsert %s query: %w", ErrInvalidUpsert, spec.Table, err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return 0, fmt.Errorf("%w: upsert %s rows %d-%d: %w", ErrPersistence, spec.Table, start, end-1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: commit upsert %s tx: %w", ErrPersistence, spec.Table, err)
	}
	return len(rows), nil
}

func validateUpsert(spec UpsertSpec, records []Record) ([]string, error) {
	if !identifierPattern.MatchString(spec.Table) {
		return nil, fmt.Errorf("%w: table %q is not a plain identifier", ErrInvalidUpsert, spec.Table)
	}
	if len(spec.ConflictColumns) == 0 {
		return nil, fmt.Errorf("%w: conflict columns are required", ErrInvalidUpsert)
	}

	columns := records[0].Columns
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: record columns are required", ErrInvalidUpsert)
	}
	seen := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		if !identifierPattern.MatchString(col) {
			return nil, fmt.Errorf("%w: column %q is not a plain identifier", ErrInvalidUpsert, col)
		}
		if _, dup := seen[col]; dup {
			return nil, fmt.Errorf("%w: column %s listed twice", ErrInvalidUpsert, col)
		}
		seen[col] = struct{}{}
	}
	for _, col := range spec.ConflictColumns {
		if _, ok := seen[col]; !ok {
			return nil, fmt.Errorf("%w: conflict column %q is not a record column", ErrInvalidUpsert, col)
		}
	}

	for i, record := range records {
		if len(record.Values) != len(columns) {
			return nil, fmt.Errorf("%w: record %d has %d values for %d columns", ErrInvalidUpsert, i, len(record.Values), len(columns))
		}
		if i > 0 && !slices.Equal(columns, record.Columns) {
			return nil, fmt.Errorf("%w: record %d columns differ from record 0", ErrInvalidUpsert, i)
		}
	}
	return columns, nil
}

// collapseByKey keeps the last record for each natural key, in the order
// keys were first seen. PostgreSQL rejects a statement that touches the
// same conflict key twice.
func collapseByKey(conflictColumns, columns []string, records []Record) ([][]any, error) {
	keyIdx := make([]int, 0, len(conflictColumns))
	for _, key := range conflictColumns {
		for i, col := range columns {
			if col == key {
				keyIdx = append(keyIdx, i)
				break
			}
		}
	}

	positions := make(map[string]int, len(records))
	out := make([][]any, 0, len(records))
	var key strings.Builder
	for _, record := range records {
		key.Reset()
		for _, idx := range keyIdx {
			if record.Values[idx] == nil {
				return nil, fmt.Errorf("%w: conflict column %s is null", ErrInvalidUpsert, columns[idx])
			}
			fmt.Fprintf(&key, "%v\x1f", record.Values[idx])
		}

		if pos, ok := positions[key.String()]; ok {
			out[pos] = record.Values
			continue
		}
		positions[key.String()] = len(out)
		out = append(out, record.Values)
	}
	return out, nil
}
