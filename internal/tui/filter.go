package tui

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/EdoardoGruppi/Watch-Movies/internal/domain"
)

// resultIndex implements fuzzy.Source over loaded search results so the
// filter can narrow the list without re-querying the catalog.
type resultIndex struct {
	entries     []domain.MediaEntry
	lowerTitles []string
}

func newResultIndex(entries []domain.MediaEntry) *resultIndex {
	titles := make([]string, len(entries))
	for i, e := range entries {
		titles[i] = strings.ToLower(e.Title)
	}
	return &resultIndex{entries: entries, lowerTitles: titles}
}

// String returns the lowercase title at index i (implements fuzzy.Source)
func (idx *resultIndex) String(i int) string { return idx.lowerTitles[i] }

// Len returns the number of entries (implements fuzzy.Source)
func (idx *resultIndex) Len() int { return len(idx.entries) }

// filter returns the entries matching the pattern, best match first.
// An empty pattern returns everything in its original order.
func (idx *resultIndex) filter(pattern string) []domain.MediaEntry {
	pattern = strings.TrimSpace(strings.ToLower(pattern))
	if pattern == "" {
		return idx.entries
	}

	matches := fuzzy.FindFrom(pattern, idx)
	filtered := make([]domain.MediaEntry, 0, len(matches))
	for _, m := range matches {
		filtered = append(filtered, idx.entries[m.Index])
	}
	return filtered
}
