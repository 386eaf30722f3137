package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/riskibarqy/statline/internal/domain/weekly"
)

const testSchema = `
CREATE TABLE defense_rankings (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    season INTEGER NOT NULL,
    team TEXT NOT NULL,
    points_allowed REAL NOT NULL CHECK (points_allowed >= 0),
    yards_allowed REAL NOT NULL,
    UNIQUE (season, team)
);
CREATE TABLE player_weekly_stats (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    season INTEGER NOT NULL,
    week INTEGER NOT NULL,
    pfr_player_id TEXT NOT NULL,
    player_name TEXT NOT NULL,
    team TEXT NOT NULL,
    position TEXT NOT NULL,
    passing_yards INTEGER NOT NULL,
    passing_tds INTEGER NOT NULL,
    passing_int INTEGER NOT NULL,
    rushing_yards INTEGER NOT NULL,
    rushing_tds INTEGER NOT NULL,
    receptions INTEGER NOT NULL,
    receiving_yards INTEGER NOT NULL,
    receiving_tds INTEGER NOT NULL,
    fantasy_points REAL NOT NULL,
    UNIQUE (season, week, pfr_player_id)
);`

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	for _, stmt := range strings.Split(testSchema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}
	return db
}

func defenseRecord(season int, team string, points, yards float64) Record {
	return Record{
		Columns: []string{"season", "team", "points_allowed", "yards_allowed"},
		Values:  []any{season, team, points, yards},
	}
}

func countRows(t *testing.T, db *sqlx.DB, table string) int {
	t.Helper()
	var n int
	if err := db.Get(&n, "SELECT COUNT(1) FROM "+table); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

func TestGateway_UpsertIsIdempotent(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	gateway := NewGateway(db)
	records := []Record{
		defenseRecord(2024, "Chicago Bears", 337, 5510),
		defenseRecord(2024, "Detroit Lions", 342, 5786),
	}

	for i := 0; i < 2; i++ {
		written, err := gateway.Upsert(context.Background(), defenseRankingsUpsert, records)
		if err != nil {
			t.Fatalf("upsert run %d: %v", i, err)
		}
		if written != 2 {
			t.Fatalf("upsert run %d: expected 2 written, got=%d", i, written)
		}
	}

	if got := countRows(t, db, "defense_rankings"); got != 2 {
		t.Fatalf("expected 2 rows after repeated upsert, got=%d", got)
	}
}

func TestGateway_UpsertLastWriterWins(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	gateway := NewGateway(db)
	ctx := context.Background()

	if _, err := gateway.Upsert(ctx, defenseRankingsUpsert, []Record{defenseRecord(2024, "Chicago Bears", 337, 5510)}); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if _, err := gateway.Upsert(ctx, defenseRankingsUpsert, []Record{defenseRecord(2024, "Chicago Bears", 340, 5600)}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	var points float64
	if err := db.Get(&points, "SELECT points_allowed FROM defense_rankings WHERE season = 2024 AND team = 'Chicago Bears'"); err != nil {
		t.Fatalf("select points: %v", err)
	}
	if points != 340 {
		t.Fatalf("expected latest value 340, got=%v", points)
	}
}

func TestGateway_UpsertCollapsesDuplicateKeysInBatch(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	written, err := NewGateway(db).Upsert(context.Background(), defenseRankingsUpsert, []Record{
		defenseRecord(2024, "Chicago Bears", 300, 5000),
		defenseRecord(2024, "Detroit Lions", 342, 5786),
		defenseRecord(2024, "Chicago Bears", 337, 5510),
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if written != 2 {
		t.Fatalf("expected 2 distinct keys written, got=%d", written)
	}

	var points float64
	if err := db.Get(&points, "SELECT points_allowed FROM defense_rankings WHERE team = 'Chicago Bears'"); err != nil {
		t.Fatalf("select points: %v", err)
	}
	if points != 337 {
		t.Fatalf("expected last duplicate to win, got=%v", points)
	}
}

func TestGateway_UpsertSplitsLargeBatches(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	gateway := NewGateway(db)
	gateway.maxParams = 8

	teams := []string{"Bears", "Lions", "Packers", "Vikings", "Cowboys"}
	records := make([]Record, 0, len(teams))
	for i, team := range teams {
		records = append(records, defenseRecord(2024, team, float64(300+i), 5000))
	}

	written, err := gateway.Upsert(context.Background(), defenseRankingsUpsert, records)
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if written != len(teams) {
		t.Fatalf("expected %d written, got=%d", len(teams), written)
	}
	if got := countRows(t, db, "defense_rankings"); got != len(teams) {
		t.Fatalf("expected %d rows, got=%d", len(teams), got)
	}
}

func TestGateway_UpsertRollsBackOnFailure(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	gateway := NewGateway(db)
	gateway.maxParams = 8

	_, err := gateway.Upsert(context.Background(), defenseRankingsUpsert, []Record{
		defenseRecord(2024, "Bears", 300, 5000),
		defenseRecord(2024, "Lions", 310, 5000),
		defenseRecord(2024, "Packers", -1, 5000),
	})
	if !errors.Is(err, ErrPersistence) {
		t.Fatalf("expected persistence error, got %v", err)
	}
	if got := countRows(t, db, "defense_rankings"); got != 0 {
		t.Fatalf("expected rollback to leave no rows, got=%d", got)
	}
}

func TestGateway_UpsertEmptyInput(t *testing.T) {
	t.Parallel()

	written, err := NewGateway(newTestDB(t)).Upsert(context.Background(), defenseRankingsUpsert, nil)
	if err != nil || written != 0 {
		t.Fatalf("expected (0, nil), got (%d, %v)", written, err)
	}
}

func TestGateway_UpsertRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	gateway := NewGateway(db)
	valid := defenseRecord(2024, "Bears", 300, 5000)

	cases := []struct {
		name    string
		spec    UpsertSpec
		records []Record
	}{
		{
			name:    "table is not an identifier",
			spec:    UpsertSpec{Table: "defense_rankings; DROP TABLE x", ConflictColumns: []string{"season"}},
			records: []Record{valid},
		},
		{
			name:    "no conflict columns",
			spec:    UpsertSpec{Table: "defense_rankings"},
			records: []Record{valid},
		},
		{
			name:    "conflict column outside record",
			spec:    UpsertSpec{Table: "defense_rankings", ConflictColumns: []string{"week"}},
			records: []Record{valid},
		},
		{
			name: "records disagree on columns",
			spec: defenseRankingsUpsert,
			records: []Record{valid, {
				Columns: []string{"team", "season", "points_allowed", "yards_allowed"},
				Values:  []any{"Lions", 2024, 310.0, 5000.0},
			}},
		},
		{
			name: "value count mismatch",
			spec: defenseRankingsUpsert,
			records: []Record{{
				Columns: []string{"season", "team", "points_allowed", "yards_allowed"},
				Values:  []any{2024, "Lions"},
			}},
		},
		{
			name: "null key",
			spec: defenseRankingsUpsert,
			records: []Record{{
				Columns: []string{"season", "team", "points_allowed", "yards_allowed"},
				Values:  []any{2024, nil, 310.0, 5000.0},
			}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := gateway.Upsert(context.Background(), tc.spec, tc.records); !errors.Is(err, ErrInvalidUpsert) {
				t.Fatalf("expected ErrInvalidUpsert, got %v", err)
			}
		})
	}

	if got := countRows(t, db, "defense_rankings"); got != 0 {
		t.Fatalf("invalid input must not write, got=%d rows", got)
	}
}

func TestWeeklyStatsRepository_RoundTrip(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewWeeklyStatsRepository(db, NewGateway(db))
	ctx := context.Background()

	records := []weekly.PlayerWeeklyRecord{
		{Season: 2024, Week: weekly.NoWeek, PFRPlayerID: "HenrDe00", PlayerName: "Derrick Henry", Team: "BAL", Position: "RB", RushingYards: 1921, RushingTDs: 16, FantasyPoints: 325.5},
		{Season: 2024, Week: weekly.NoWeek, PFRPlayerID: "AlleJo02", PlayerName: "Josh Allen", Team: "BUF", Position: "QB", PassingYards: 3731, PassingTDs: 28, PassingInt: 6},
	}
	for i := 0; i < 2; i++ {
		if _, err := repo.UpsertPlayerWeekly(ctx, records); err != nil {
			t.Fatalf("upsert run %d: %v", i, err)
		}
	}

	got, err := repo.ListPlayerWeekly(ctx, 2024, weekly.NoWeek)
	if err != nil {
		t.Fatalf("list player weekly: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got=%d", len(got))
	}
	if got[1] != records[0] {
		t.Fatalf("unexpected round trip:\nwant %+v\ngot  %+v", records[0], got[1])
	}
}

func TestDefenseRepository_RoundTrip(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewDefenseRepository(db, NewGateway(db))
	ctx := context.Background()

	written, err := repo.UpsertDefense(ctx, []weekly.DefenseRecord{
		{Season: 2024, Team: "Detroit Lions", PointsAllowed: 342, YardsAllowed: 5786},
		{Season: 2024, Team: "Chicago Bears", PointsAllowed: 337, YardsAllowed: 5510},
	})
	if err != nil {
		t.Fatalf("upsert defense: %v", err)
	}
	if written != 2 {
		t.Fatalf("expected 2 written, got=%d", written)
	}

	got, err := repo.ListDefense(ctx, 2024)
	if err != nil {
		t.Fatalf("list defense: %v", err)
	}
	if len(got) != 2 || got[0].Team != "Chicago Bears" || got[0].PointsAllowed != 337 {
		t.Fatalf("unexpected defense rows: %+v", got)
	}
}
