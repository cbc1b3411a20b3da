package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EdoardoGruppi/Watch-Movies/internal/domain"
)

func sampleEntries() []domain.MediaEntry {
	imdb := "tt0083658"
	return []domain.MediaEntry{{
		ID:         "tm92641",
		ObjectID:   92641,
		ObjectType: domain.ObjectTypeMovie,
		Title:      "Blade Runner",
		Genres:     []string{"scf"},
		Backdrops:  []string{},
		IMDBID:     &imdb,
		Offers:     []domain.Offer{},
	}}
}

func TestCatalogStore_MemoryOnly(t *testing.T) {
	s, err := NewCatalogStore("", 0)
	require.NoError(t, err)
	defer s.Close()

	_, ok := s.GetSearch("search:blade:US:en")
	assert.False(t, ok)

	require.NoError(t, s.SaveSearch("search:blade:US:en", sampleEntries()))
	got, ok := s.GetSearch("search:blade:US:en")
	require.True(t, ok)
	assert.Equal(t, sampleEntries(), got)
}

func TestCatalogStore_Persistence(t *testing.T) {
	dir := t.TempDir()

	s, err := NewCatalogStore(dir, 0)
	require.NoError(t, err)
	require.NoError(t, s.SaveSearch("k", sampleEntries()))
	require.NoError(t, s.Close())

	// Reopen and read back from disk
	s, err = NewCatalogStore(dir, 0)
	require.NoError(t, err)
	defer s.Close()

	got, ok := s.GetSearch("k")
	require.True(t, ok)
	assert.Equal(t, "Blade Runner", got[0].Title)
}

func TestCatalogStore_Staleness(t *testing.T) {
	s, err := NewCatalogStore("", 10*time.Millisecond)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.SaveSearch("k", sampleEntries()))
	_, ok := s.GetSearch("k")
	assert.True(t, ok)

	time.Sleep(20 * time.Millisecond)
	_, ok = s.GetSearch("k")
	assert.False(t, ok, "expired entries must miss")
}

func TestCatalogStore_DetailsAndOffers(t *testing.T) {
	s, err := NewCatalogStore(t.TempDir(), 0)
	require.NoError(t, err)
	defer s.Close()

	entry := sampleEntries()[0]
	require.NoError(t, s.SaveDetails("title:tm92641:en", &entry))
	got, ok := s.GetDetails("title:tm92641:en")
	require.True(t, ok)
	assert.Equal(t, entry, *got)

	// Nil details are not cached
	require.NoError(t, s.SaveDetails("title:none", nil))
	_, ok = s.GetDetails("title:none")
	assert.False(t, ok)

	offers := map[string][]domain.Offer{
		"US": {{ID: "o1", MonetizationType: "FLATRATE"}},
		"DE": {},
	}
	require.NoError(t, s.SaveOffers("offers:tm92641:en", offers))
	gotOffers, ok := s.GetOffers("offers:tm92641:en")
	require.True(t, ok)
	assert.Equal(t, offers, gotOffers)
}

func TestCatalogStore_Invalidate(t *testing.T) {
	s, err := NewCatalogStore(t.TempDir(), 0)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.SaveSearch("a", sampleEntries()))
	require.NoError(t, s.SaveSearch("b", sampleEntries()))

	s.Invalidate("a")
	_, ok := s.GetSearch("a")
	assert.False(t, ok)
	_, ok = s.GetSearch("b")
	assert.True(t, ok)

	s.InvalidateAll()
	_, ok = s.GetSearch("b")
	assert.False(t, ok)
}
