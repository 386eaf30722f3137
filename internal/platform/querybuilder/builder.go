package querybuilder

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// binds collects positional arguments and hands out $N placeholders.
type binds struct {
	args []any
}

func (b *binds) add(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

// Condition is one predicate of a WHERE clause; predicates are ANDed.
type Condition interface {
	render(b *binds) string
}

type eq struct {
	column string
	value  any
}

func Eq(column string, value any) Condition {
	return eq{column: column, value: value}
}

func (c eq) render(b *binds) string {
	return c.column + " = " + b.add(c.value)
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	orderBy []string
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: slices.Clone(columns)}
}

func (s *SelectBuilder) From(table string) *SelectBuilder {
	s.table = table
	return s
}

func (s *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	s.where = append(s.where, conditions...)
	return s
}

func (s *SelectBuilder) OrderBy(terms ...string) *SelectBuilder {
	s.orderBy = append(s.orderBy, terms...)
	return s
}

func (s *SelectBuilder) ToSQL() (string, []any, error) {
	switch {
	case len(s.columns) == 0:
		return "", nil, fmt.Errorf("select columns are required")
	case strings.TrimSpace(s.table) == "":
		return "", nil, fmt.Errorf("select table is required")
	}

	var b binds
	sql := "SELECT " + strings.Join(s.columns, ", ") + " FROM " + s.table
	if len(s.where) > 0 {
		preds := make([]string, len(s.where))
		for i, c := range s.where {
			preds[i] = c.render(&b)
		}
		sql += " WHERE " + strings.Join(preds, " AND ")
	}
	if len(s.orderBy) > 0 {
		sql += " ORDER BY " + strings.Join(s.orderBy, ", ")
	}
	return sql, b.args, nil
}

// InsertBuilder renders a multi-row INSERT, optionally as an upsert.
type InsertBuilder struct {
	table    string
	columns  []string
	rows     [][]any
	conflict []string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (ib *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	ib.columns = slices.Clone(columns)
	return ib
}

func (ib *InsertBuilder) Values(values ...any) *InsertBuilder {
	ib.rows = append(ib.rows, slices.Clone(values))
	return ib
}

// OnConflictUpdate keys the upsert on conflictColumns. Every other column
// is overwritten from EXCLUDED; when all columns belong to the key the
// statement becomes DO NOTHING.
func (ib *InsertBuilder) OnConflictUpdate(conflictColumns ...string) *InsertBuilder {
	ib.conflict = append([]string{}, conflictColumns...)
	return ib
}

func (ib *InsertBuilder) ToSQL() (string, []any, error) {
	switch {
	case strings.TrimSpace(ib.table) == "":
		return "", nil, fmt.Errorf("insert table is required")
	case len(ib.columns) == 0:
		return "", nil, fmt.Errorf("insert columns are required")
	case len(ib.rows) == 0:
		return "", nil, fmt.Errorf("insert values are required")
	}

	b := binds{args: make([]any, 0, len(ib.rows)*len(ib.columns))}
	tuples := make([]string, len(ib.rows))
	holders := make([]string, len(ib.columns))
	for i, row := range ib.rows {
		if len(row) != len(ib.columns) {
			return "", nil, fmt.Errorf("insert row %d has %d values, expected %d", i, len(row), len(ib.columns))
		}
		for j, v := range row {
			holders[j] = b.add(v)
		}
		tuples[i] = "(" + strings.Join(holders, ", ") + ")"
	}

	sql := "INSERT INTO " + ib.table + " (" + strings.Join(ib.columns, ", ") + ") VALUES " + strings.Join(tuples, ", ")
	if ib.conflict != nil {
		clause, err := ib.upsertClause()
		if err != nil {
			return "", nil, err
		}
		sql += " " + clause
	}
	return sql, b.args, nil
}

func (ib *InsertBuilder) upsertClause() (string, error) {
	if len(ib.conflict) == 0 {
		return "", fmt.Errorf("conflict columns are required")
	}
	for _, col := range ib.conflict {
		if !slices.Contains(ib.columns, col) {
			return "", fmt.Errorf("conflict column %s is not an insert column", col)
		}
	}

	var sets []string
	for _, col := range ib.columns {
		if !slices.Contains(ib.conflict, col) {
			sets = append(sets, col+" = EXCLUDED."+col)
		}
	}

	clause := "ON CONFLICT (" + strings.Join(ib.conflict, ", ") + ")"
	if len(sets) == 0 {
		return clause + " DO NOTHING", nil
	}
	return clause + " DO UPDATE SET " + strings.Join(sets, ", "), nil
}
