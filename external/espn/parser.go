package espn

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/statline/internal/domain/gamelog"
	"github.com/riskibarqy/statline/internal/platform/htmltable"
)

var ErrNoGameLogTable = crerr.New("game log table not found")

// ParseGameLog reads the first table of a game-log page. nameHint wins over
// the name found in the page title.
func ParseGameLog(doc *goquery.Document, nameHint string) (gamelog.GameLog, error) {
	table, ok := htmltable.Locate(doc, htmltable.FirstOfKind())
	if !ok {
		return gamelog.GameLog{}, ErrNoGameLogTable
	}

	extraction := htmltable.ExtractRows(table, htmltable.ExtractOptions{AggregateLabel: totalsRowLabel})

	out := gamelog.GameLog{
		PlayerName: playerName(doc, nameHint),
		Games:      make([]gamelog.GameRecord, 0, len(extraction.Rows)),
	}
	for _, row := range extraction.Rows {
		out.Games = append(out.Games, gameRecord(row.Pad(detailRowWidth)))
	}
	if extraction.HasAggregate {
		totals := seasonTotals(extraction.Aggregate.Pad(totalsRowWidth))
		out.Aggregate = &totals
	}
	return out, nil
}

func gameRecord(row htmltable.RawRow) gamelog.GameRecord {
	return gamelog.GameRecord{
		Date:     row.Cell(colDate),
		Opponent: row.Cell(colOpponent),
		Result:   row.Cell(colResult),
		Rushing: gamelog.RushingLine{
			Carries:    htmltable.Int(row.Cell(colCarries)),
			Yards:      htmltable.Int(row.Cell(colRushYards)),
			Average:    htmltable.Float(row.Cell(colRushAverage)),
			Touchdowns: htmltable.Int(row.Cell(colRushTD)),
		},
		Receiving: gamelog.ReceivingLine{
			Receptions: htmltable.Int(row.Cell(colReceptions)),
			Targets:    htmltable.Int(row.Cell(colTargets)),
			Yards:      htmltable.Int(row.Cell(colRecYards)),
			Touchdowns: htmltable.Int(row.Cell(colRecTD)),
		},
	}
}

func seasonTotals(row htmltable.RawRow) gamelog.SeasonTotals {
	return gamelog.SeasonTotals{
		Carries:    htmltable.Int(row.Cell(totalsCarries)),
		Yards:      htmltable.Int(row.Cell(totalsYards)),
		Average:    htmltable.Float(row.Cell(totalsAverage)),
		Touchdowns: htmltable.Int(row.Cell(totalsTD)),
	}
}

func playerName(doc *goquery.Document, hint string) string {
	if hint = strings.TrimSpace(hint); hint != "" {
		return hint
	}
	title := doc.Find("title").First().Text()
	if idx := strings.Index(title, titleNameSuffix); idx > 0 {
		if name := strings.TrimSpace(title[:idx]); name != "" {
			return name
		}
	}
	return unknownPlayer
}
