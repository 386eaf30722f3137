package espn

import (
	"errors"
	"testing"

	"github.com/riskibarqy/statline/internal/platform/htmltable"
)

const gameLogHTML = `<html><head><title>Derrick Henry Game Log 2024 - NFL - ESPN</title></head><body>
<table>
<thead>
<tr><th>Date</th><th>OPP</th><th>Result</th><th>CAR</th><th>YDS</th><th>AVG</th><th>TD</th><th>LNG</th><th>REC</th><th>TGTS</th><th>YDS</th><th>AVG</th><th>TD</th></tr>
</thead>
<tbody>
<tr><td>Sun 9/8</td><td>@KC</td><td>L 20-27</td><td>13</td><td>46</td><td>3.5</td><td>1</td><td>9</td><td>1</td><td>2</td><td>12</td><td>12.0</td><td>0</td></tr>
<tr><td>Sun 9/15</td><td>LV</td><td>L 23-26</td><td>22</td><td>84</td><td>3.8</td><td>1</td><td>26</td><td>2</td><td>2</td><td>-3</td><td>-1.5</td><td>1</td></tr>
<tr><td>Sun 9/22</td><td>DAL</td><td>W 28-25</td><td>--</td></tr>
<tr><td>Regular Season Stats</td><td>222</td><td>1,025</td><td>4.6</td><td>10</td><td>81</td></tr>
</tbody>
</table>
</body></html>`

func TestParseGameLog(t *testing.T) {
	t.Parallel()

	doc, err := htmltable.ParseDocument([]byte(gameLogHTML))
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}

	log, err := ParseGameLog(doc, "")
	if err != nil {
		t.Fatalf("parse game log: %v", err)
	}

	if log.PlayerName != "Derrick Henry" {
		t.Fatalf("expected name from title, got %q", log.PlayerName)
	}
	if len(log.Games) != 3 {
		t.Fatalf("expected 3 games, got=%d", len(log.Games))
	}

	first := log.Games[0]
	if first.Date != "Sun 9/8" || first.Opponent != "@KC" || first.Result != "L 20-27" {
		t.Fatalf("unexpected game identity: %+v", first)
	}
	if first.Rushing.Carries != 13 || first.Rushing.Yards != 46 || first.Rushing.Average != 3.5 || first.Rushing.Touchdowns != 1 {
		t.Fatalf("unexpected rushing line: %+v", first.Rushing)
	}
	if first.Receiving.Receptions != 1 || first.Receiving.Targets != 2 || first.Receiving.Yards != 12 || first.Receiving.Touchdowns != 0 {
		t.Fatalf("unexpected receiving line: %+v", first.Receiving)
	}
	if log.Games[1].Receiving.Yards != -3 || log.Games[1].Receiving.Touchdowns != 1 {
		t.Fatalf("unexpected second game receiving: %+v", log.Games[1].Receiving)
	}

	short := log.Games[2]
	if short.Rushing.Carries != 0 || short.Receiving.Touchdowns != 0 {
		t.Fatalf("short row should default missing fields to zero: %+v", short)
	}

	if log.Aggregate == nil {
		t.Fatalf("expected aggregate totals")
	}
	agg := *log.Aggregate
	if agg.Carries != 222 || agg.Yards != 1025 || agg.Average != 4.6 || agg.Touchdowns != 10 {
		t.Fatalf("unexpected aggregate totals: %+v", agg)
	}
}

func TestParseGameLog_NameHintAndFallback(t *testing.T) {
	t.Parallel()

	doc, err := htmltable.ParseDocument([]byte(gameLogHTML))
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}
	log, err := ParseGameLog(doc, "King Henry")
	if err != nil {
		t.Fatalf("parse game log: %v", err)
	}
	if log.PlayerName != "King Henry" {
		t.Fatalf("expected name hint to win, got %q", log.PlayerName)
	}

	untitled, err := htmltable.ParseDocument([]byte("<html><body><table><tr><td>x</td></tr></table></body></html>"))
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}
	log, err = ParseGameLog(untitled, "")
	if err != nil {
		t.Fatalf("parse game log: %v", err)
	}
	if log.PlayerName != "Unknown" {
		t.Fatalf("expected Unknown fallback, got %q", log.PlayerName)
	}
	if log.Aggregate != nil {
		t.Fatalf("expected no aggregate")
	}
}

func TestParseGameLog_NoTable(t *testing.T) {
	t.Parallel()

	doc, err := htmltable.ParseDocument([]byte("<html><body><p>Player not found</p></body></html>"))
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}
	if _, err := ParseGameLog(doc, ""); !errors.Is(err, ErrNoGameLogTable) {
		t.Fatalf("expected ErrNoGameLogTable, got %v", err)
	}
}
