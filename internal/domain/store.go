package domain

// CatalogCache stores normalized catalog responses keyed by query parameters.
// Lookups miss once the saved entry is older than the cache's staleness
// window; callers re-fetch and save again.
type CatalogCache interface {
	GetSearch(key string) ([]MediaEntry, bool)
	SaveSearch(key string, entries []MediaEntry) error

	GetDetails(key string) (*MediaEntry, bool)
	SaveDetails(key string, entry *MediaEntry) error

	GetOffers(key string) (map[string][]Offer, bool)
	SaveOffers(key string, offers map[string][]Offer) error

	Invalidate(key string)
	InvalidateAll()

	Close() error
}
