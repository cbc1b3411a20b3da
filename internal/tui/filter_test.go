package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/EdoardoGruppi/Watch-Movies/internal/domain"
)

func testEntries(titles ...string) []domain.MediaEntry {
	entries := make([]domain.MediaEntry, len(titles))
	for i, title := range titles {
		entries[i] = domain.MediaEntry{ID: title, Title: title}
	}
	return entries
}

func titlesOf(entries []domain.MediaEntry) []string {
	titles := make([]string, len(entries))
	for i, e := range entries {
		titles[i] = e.Title
	}
	return titles
}

func TestFilterEmptyPatternReturnsAll(t *testing.T) {
	idx := newResultIndex(testEntries("The Matrix", "The Matrix Reloaded", "Inception"))

	assert.Equal(t,
		[]string{"The Matrix", "The Matrix Reloaded", "Inception"},
		titlesOf(idx.filter("")))
	assert.Equal(t, 3, len(idx.filter("   ")))
}

func TestFilterNarrowsByTitle(t *testing.T) {
	idx := newResultIndex(testEntries("The Matrix", "The Matrix Reloaded", "Inception"))

	filtered := idx.filter("matrix")
	assert.Len(t, filtered, 2)
	assert.NotContains(t, titlesOf(filtered), "Inception")
}

func TestFilterIsCaseInsensitive(t *testing.T) {
	idx := newResultIndex(testEntries("Blade Runner", "Alien"))

	assert.Equal(t, []string{"Blade Runner"}, titlesOf(idx.filter("BLADE")))
}

func TestFilterNoMatches(t *testing.T) {
	idx := newResultIndex(testEntries("Heat", "Ronin"))

	filtered := idx.filter("zzzz")
	assert.NotNil(t, filtered)
	assert.Empty(t, filtered)
}
