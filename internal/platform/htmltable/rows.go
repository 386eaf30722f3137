package htmltable

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	defaultCellSelector = "th,td"
	headerRepeatClass   = "thead"
)

// RawRow holds the trimmed text of a row's cells by position.
type RawRow []string

// Cell returns the text at position i, or "" past the end of the row.
func (r RawRow) Cell(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// Pad returns a copy of r with at least n cells.
func (r RawRow) Pad(n int) RawRow {
	out := make(RawRow, max(n, len(r)))
	copy(out, r)
	return out
}

type ExtractOptions struct {
	// CellSelector picks the cells of a row; defaults to "th,td".
	CellSelector string
	// AggregateLabel marks the summary row by its first cell's text.
	// Empty disables aggregate detection.
	AggregateLabel string
	// CollectLinks records the first anchor href of every detail cell.
	CollectLinks bool
}

type Extraction struct {
	Rows []RawRow
	// Links parallels Rows when CollectLinks is set; cells without an
	// anchor hold "".
	Links        []RawRow
	Aggregate    RawRow
	HasAggregate bool
}

// ExtractRows walks the table's own rows in document order. Header rows
// and header repeats are dropped, as are rows without cells. The first row
// labelled with AggregateLabel becomes the aggregate; any other row with
// that label is dropped too. Footer rows can be the aggregate but are
// never details.
func ExtractRows(t Table, opts ExtractOptions) Extraction {
	var out Extraction
	if t.sel == nil {
		return out
	}

	cellSelector := opts.CellSelector
	if strings.TrimSpace(cellSelector) == "" {
		cellSelector = defaultCellSelector
	}

	t.sel.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		if !tr.Closest("table").IsSelection(t.sel) {
			return
		}
		if isHeaderRow(tr) {
			return
		}

		cells := tr.ChildrenFiltered(cellSelector)
		if cells.Length() == 0 {
			return
		}

		row := make(RawRow, 0, cells.Length())
		var links RawRow
		if opts.CollectLinks {
			links = make(RawRow, 0, cells.Length())
		}
		cells.Each(func(_ int, cell *goquery.Selection) {
			row = append(row, strings.TrimSpace(cell.Text()))
			if opts.CollectLinks {
				href, _ := cell.Find("a[href]").First().Attr("href")
				links = append(links, href)
			}
		})

		if opts.AggregateLabel != "" && row[0] == opts.AggregateLabel {
			if !out.HasAggregate {
				out.Aggregate = row
				out.HasAggregate = true
			}
			return
		}
		if tr.Parent().Is("tfoot") {
			return
		}
		out.Rows = append(out.Rows, row)
		if opts.CollectLinks {
			out.Links = append(out.Links, links)
		}
	})

	return out
}

func isHeaderRow(tr *goquery.Selection) bool {
	return tr.Parent().Is("thead") || tr.HasClass(headerRepeatClass)
}
