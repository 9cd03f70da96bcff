package tui

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/sprintdeck/internal/board"
)

// filterItems keeps items whose title or assignee matches the query, either
// by substring or by small edit distance against individual words. Display
// only; the board itself is never filtered.
func filterItems(items []board.Item, query string) []board.Item {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}
	var out []board.Item
	for _, it := range items {
		if matchesQuery(it, q) {
			out = append(out, it)
		}
	}
	return out
}

func matchesQuery(it board.Item, q string) bool {
	title := strings.ToLower(it.Title)
	assignee := strings.ToLower(it.Assignee)
	if strings.Contains(title, q) || strings.Contains(assignee, q) {
		return true
	}
	for _, word := range strings.Fields(title) {
		if fuzzyWordMatch(word, q) {
			return true
		}
	}
	return false
}

// fuzzyWordMatch tolerates typos proportional to query length: one edit for
// short queries, two for longer ones.
func fuzzyWordMatch(word, q string) bool {
	if len(q) < 3 {
		return false
	}
	budget := 1
	if len(q) >= 6 {
		budget = 2
	}
	return levenshtein.ComputeDistance(word, q) <= budget
}
