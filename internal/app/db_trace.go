package app

import (
	"fmt"
	"regexp"
	"strings"
)

const maxTracedQueryLength = 512

var (
	queryWhitespaceRegex = regexp.MustCompile(`\s+`)
	valuesTupleRegex     = regexp.MustCompile(`\(\$\d+(?:, \$\d+)*\)`)
)

// formatDBQueryForTrace flattens a query for span attributes. Batched
// upserts keep only their first VALUES tuple.
func formatDBQueryForTrace(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	normalized := queryWhitespaceRegex.ReplaceAllString(query, " ")
	normalized = collapseValueTuples(normalized)
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}

	return normalized[:maxTracedQueryLength] + "..."
}

func collapseValueTuples(query string) string {
	tuples := valuesTupleRegex.FindAllStringIndex(query, -1)
	if len(tuples) < 2 {
		return query
	}
	first, last := tuples[0], tuples[len(tuples)-1]
	return query[:first[1]] + fmt.Sprintf(" /* +%d rows */", len(tuples)-1) + query[last[1]:]
}
