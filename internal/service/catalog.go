// Package service layers request deduplication, caching, and result ranking
// on top of the raw catalog client.
package service

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/EdoardoGruppi/Watch-Movies/internal/domain"
)

// flight tracks one in-progress fetch so concurrent callers with the same
// cache key share a single round trip.
type flight struct {
	done  chan struct{}
	value any
	err   error
}

// CatalogService handles catalog lookups with caching and deduplication.
// Identical concurrent requests collapse into one upstream call; completed
// results are served from the cache until they go stale.
type CatalogService struct {
	repo   domain.CatalogRepository
	cache  domain.CatalogCache
	logger *slog.Logger

	defaults Defaults

	mu       sync.Mutex
	inflight map[string]*flight
}

// Defaults are the query parameters applied when the caller passes none
type Defaults struct {
	Country     string
	Language    string
	ResultCount int
	BestOnly    bool
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repo domain.CatalogRepository, cache domain.CatalogCache, defaults Defaults, logger *slog.Logger) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	if defaults.ResultCount <= 0 {
		defaults.ResultCount = 20
	}
	return &CatalogService{
		repo:     repo,
		cache:    cache,
		logger:   logger,
		defaults: defaults,
		inflight: make(map[string]*flight),
	}
}

// do runs fetch under the given key, collapsing concurrent duplicates
func (s *CatalogService) do(key string, fetch func() (any, error)) (any, error) {
	s.mu.Lock()
	if f, ok := s.inflight[key]; ok {
		s.mu.Unlock()
		<-f.done
		return f.value, f.err
	}
	f := &flight{done: make(chan struct{})}
	s.inflight[key] = f
	s.mu.Unlock()

	f.value, f.err = fetch()
	close(f.done)

	s.mu.Lock()
	delete(s.inflight, key)
	s.mu.Unlock()

	return f.value, f.err
}

// Search returns titles matching the query, ranked by closeness to it.
// A blank query returns an empty slice without touching the network.
func (s *CatalogService) Search(ctx context.Context, title, country, language string) ([]domain.MediaEntry, error) {
	country = s.orDefaultCountry(country)
	language = s.orDefaultLanguage(language)
	if strings.TrimSpace(title) == "" {
		return []domain.MediaEntry{}, nil
	}

	key := SearchKey(title, country, language)
	if cached, ok := s.cache.GetSearch(key); ok {
		s.logger.Debug("search cache hit", "key", key)
		return cached, nil
	}

	value, err := s.do(key, func() (any, error) {
		entries, err := s.repo.SearchTitles(ctx, title, country, language, s.defaults.ResultCount, s.defaults.BestOnly)
		if err != nil {
			return nil, err
		}
		entries = rankEntries(entries, title)
		if err := s.cache.SaveSearch(key, entries); err != nil {
			s.logger.Warn("failed to cache search results", "key", key, "error", err)
		}
		return entries, nil
	})
	if err != nil {
		return nil, err
	}
	return value.([]domain.MediaEntry), nil
}

// RefreshSearch drops the cached results for the query and fetches again
func (s *CatalogService) RefreshSearch(ctx context.Context, title, country, language string) ([]domain.MediaEntry, error) {
	s.cache.Invalidate(SearchKey(title, s.orDefaultCountry(country), s.orDefaultLanguage(language)))
	return s.Search(ctx, title, country, language)
}

// Details returns one title by node ID, or nil when it does not exist.
// Not-found results are never cached.
func (s *CatalogService) Details(ctx context.Context, nodeID, country, language string) (*domain.MediaEntry, error) {
	country = s.orDefaultCountry(country)
	language = s.orDefaultLanguage(language)

	key := DetailsKey(nodeID, country, language)
	if cached, ok := s.cache.GetDetails(key); ok {
		s.logger.Debug("details cache hit", "key", key)
		return cached, nil
	}

	value, err := s.do(key, func() (any, error) {
		entry, err := s.repo.TitleDetails(ctx, nodeID, country, language, s.defaults.BestOnly)
		if err != nil {
			return nil, err
		}
		if entry != nil {
			if err := s.cache.SaveDetails(key, entry); err != nil {
				s.logger.Warn("failed to cache title details", "key", key, "error", err)
			}
		}
		return entry, nil
	})
	if err != nil {
		return nil, err
	}
	return value.(*domain.MediaEntry), nil
}

// Offers returns the title's offers for every requested country. An empty
// country set yields an empty map without any upstream call.
func (s *CatalogService) Offers(ctx context.Context, nodeID string, countries []string, language string) (map[string][]domain.Offer, error) {
	language = s.orDefaultLanguage(language)
	if len(countries) == 0 {
		return map[string][]domain.Offer{}, nil
	}

	key := OffersKey(nodeID, language, countries)
	if cached, ok := s.cache.GetOffers(key); ok {
		s.logger.Debug("offers cache hit", "key", key)
		return cached, nil
	}

	value, err := s.do(key, func() (any, error) {
		offers, err := s.repo.OffersForCountries(ctx, nodeID, countries, language, s.defaults.BestOnly)
		if err != nil {
			return nil, err
		}
		if err := s.cache.SaveOffers(key, offers); err != nil {
			s.logger.Warn("failed to cache offers", "key", key, "error", err)
		}
		return offers, nil
	})
	if err != nil {
		return nil, err
	}
	return value.(map[string][]domain.Offer), nil
}

// RefreshOffers drops the cached offers for the title and fetches again
func (s *CatalogService) RefreshOffers(ctx context.Context, nodeID string, countries []string, language string) (map[string][]domain.Offer, error) {
	s.cache.Invalidate(OffersKey(nodeID, s.orDefaultLanguage(language), countries))
	return s.Offers(ctx, nodeID, countries, language)
}

func (s *CatalogService) orDefaultCountry(country string) string {
	if country == "" {
		return s.defaults.Country
	}
	return strings.ToUpper(country)
}

func (s *CatalogService) orDefaultLanguage(language string) string {
	if language == "" {
		return s.defaults.Language
	}
	return strings.ToLower(language)
}

// rankEntries orders results by fuzzy closeness to the query. Titles the
// matcher rejects keep their upstream popularity order after the matches.
func rankEntries(entries []domain.MediaEntry, query string) []domain.MediaEntry {
	if len(entries) < 2 {
		return entries
	}

	type scored struct {
		entry    domain.MediaEntry
		distance int
		index    int
	}

	results := make([]scored, 0, len(entries))
	for i, e := range entries {
		distance := -1
		if rank := fuzzy.RankMatchNormalizedFold(query, e.Title); rank >= 0 {
			distance = rank
		}
		results = append(results, scored{entry: e, distance: distance, index: i})
	}

	sort.SliceStable(results, func(a, b int) bool {
		ra, rb := results[a], results[b]
		if (ra.distance >= 0) != (rb.distance >= 0) {
			return ra.distance >= 0
		}
		if ra.distance != rb.distance {
			return ra.distance < rb.distance
		}
		return ra.index < rb.index
	})

	ranked := make([]domain.MediaEntry, 0, len(results))
	for _, r := range results {
		ranked = append(ranked, r.entry)
	}
	return ranked
}
