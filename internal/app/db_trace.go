package app

import "strings"

// Squad saves rewrite the whole player set, so raw statements can run
// long; spans carry at most this many characters of SQL.
const maxTracedQueryLength = 512

// formatDBQueryForTrace flattens a statement to a single line and
// truncates it before otelsql attaches it to the span.
func formatDBQueryForTrace(query string) string {
	flattened := strings.Join(strings.Fields(query), " ")
	if len(flattened) > maxTracedQueryLength {
		return flattened[:maxTracedQueryLength] + "..."
	}

	return flattened
}
