// Package htmltable locates tables in scraped HTML pages and flattens their
// rows into positional string cells.
package htmltable

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	commentOpen  = []byte("<!--")
	commentClose = []byte("-->")
)

// ParseDocument parses an HTML page. Comment markers are removed first so
// tables a site ships inside HTML comments become part of the DOM.
func ParseDocument(body []byte) (*goquery.Document, error) {
	cleaned := bytes.ReplaceAll(body, commentOpen, nil)
	cleaned = bytes.ReplaceAll(cleaned, commentClose, nil)

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(cleaned))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return doc, nil
}

type Selector struct {
	id string
}

// ByID matches the table with the given id attribute.
func ByID(id string) Selector {
	return Selector{id: strings.TrimSpace(id)}
}

// FirstOfKind matches the first table in document order.
func FirstOfKind() Selector {
	return Selector{}
}

func (s Selector) String() string {
	if s.id == "" {
		return "table:first"
	}
	return "table#" + s.id
}

type Table struct {
	sel *goquery.Selection
}

func (t Table) Selection() *goquery.Selection {
	return t.sel
}

// Locate finds the table described by sel. A missing table is reported
// with ok=false; it is never an error.
func Locate(doc *goquery.Document, sel Selector) (Table, bool) {
	if doc == nil {
		return Table{}, false
	}

	var found *goquery.Selection
	if sel.id == "" {
		found = doc.Find("table").First()
	} else {
		found = doc.Find("table").FilterFunction(func(_ int, s *goquery.Selection) bool {
			id, _ := s.Attr("id")
			return id == sel.id
		}).First()
	}
	if found.Length() == 0 {
		return Table{}, false
	}
	return Table{sel: found}, true
}
