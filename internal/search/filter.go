package search

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/mmcdole/appgrid/internal/domain"
)

// Filter returns the entries whose name contains query, ignoring case.
//
// An empty query returns entries unchanged. The query is not trimmed, so a
// single space only matches names containing a space. Matches keep their
// relative order; there is no ranking and no result limit.
func Filter(entries []domain.CatalogEntry, query string) []domain.CatalogEntry {
	if query == "" {
		return entries
	}

	caser := cases.Fold()
	needle := caser.String(query)

	matches := make([]domain.CatalogEntry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(caser.String(e.Name), needle) {
			matches = append(matches, e)
		}
	}
	return matches
}

// Match reports whether name contains query, ignoring case
func Match(name, query string) bool {
	if query == "" {
		return true
	}
	caser := cases.Fold()
	return strings.Contains(caser.String(name), caser.String(query))
}

// MatchRange returns the rune span [start, end) of the first case-insensitive
// occurrence of query in name, for highlighting. ok is false when query is
// empty or no rune-aligned occurrence exists.
func MatchRange(name, query string) (start, end int, ok bool) {
	if query == "" {
		return 0, 0, false
	}

	caser := cases.Fold()
	needle := caser.String(query)
	runes := []rune(name)

	for i := range runes {
		var folded strings.Builder
		for j := i; j < len(runes); j++ {
			folded.WriteString(caser.String(string(runes[j])))
			if folded.Len() < len(needle) {
				continue
			}
			if folded.String() == needle {
				return i, j + 1, true
			}
			break
		}
	}
	return 0, 0, false
}
