package domain

import "context"

// CatalogRepository provides access to the upstream media catalog.
// Implementations are stateless; every call is an independent round trip and
// safe for concurrent use.
type CatalogRepository interface {
	// SearchTitles searches the catalog for titles matching the query,
	// scoped to one country and language.
	SearchTitles(ctx context.Context, title, country, language string, count int, bestOnly bool) ([]MediaEntry, error)

	// TitleDetails fetches one title by its opaque node ID.
	// Returns nil (no error) when the title does not exist.
	TitleDetails(ctx context.Context, nodeID, country, language string, bestOnly bool) (*MediaEntry, error)

	// OffersForCountries fetches the title's offers for every requested
	// country in a single round trip. Countries absent from the upstream
	// response map to empty slices. An empty country set returns an empty
	// map without performing any request.
	OffersForCountries(ctx context.Context, nodeID string, countries []string, language string, bestOnly bool) (map[string][]Offer, error)
}
