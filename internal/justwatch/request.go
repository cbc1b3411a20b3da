package justwatch

import (
	"strings"

	"github.com/EdoardoGruppi/Watch-Movies/internal/domain"
)

// request is the GraphQL request body posted to the upstream endpoint
type request struct {
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
	Query         string         `json:"query"`
}

// validateCountryCode enforces the 2-character invariant. Case is not
// checked here; codes are upper-cased wherever they reach the wire.
func validateCountryCode(code string) error {
	if len(code) != 2 {
		return domain.ErrInvalidCountryCode
	}
	return nil
}

// imageVariables returns the fixed image-format/profile parameters shared by
// every operation.
func imageVariables() map[string]any {
	return map[string]any{
		"formatPoster":    formatPoster,
		"formatOfferIcon": formatOfferIcon,
		"profile":         posterProfile,
		"backdropProfile": backdropProfile,
	}
}

// buildSearchRequest constructs the title search request. count bounds the
// number of returned titles; bestOnly restricts offers to one pick per
// package.
func buildSearchRequest(title, country, language string, count int, bestOnly bool) (request, error) {
	if err := validateCountryCode(country); err != nil {
		return request{}, err
	}

	vars := imageVariables()
	vars["first"] = count
	vars["searchTitlesFilter"] = map[string]any{"searchQuery": title}
	vars["language"] = language
	vars["country"] = strings.ToUpper(country)
	vars["filter"] = map[string]any{"bestOnly": bestOnly}

	return request{
		OperationName: "GetSearchTitles",
		Variables:     vars,
		Query:         searchQuery + detailsFragment + offerFragment,
	}, nil
}

// buildDetailsRequest constructs the single-node detail lookup
func buildDetailsRequest(nodeID, country, language string, bestOnly bool) (request, error) {
	if err := validateCountryCode(country); err != nil {
		return request{}, err
	}

	vars := imageVariables()
	vars["nodeId"] = nodeID
	vars["language"] = language
	vars["country"] = strings.ToUpper(country)
	vars["filter"] = map[string]any{"bestOnly": bestOnly}

	return request{
		OperationName: "GetTitleNode",
		Variables:     vars,
		Query:         detailsQuery + detailsFragment + offerFragment,
	}, nil
}

// buildOffersRequest constructs the multi-country offers lookup. One aliased
// query field is generated per country so all countries resolve in a single
// round trip instead of N.
func buildOffersRequest(nodeID string, countries []string, language string, bestOnly bool) (request, error) {
	if len(countries) == 0 {
		return request{}, domain.ErrNoCountries
	}
	for _, code := range countries {
		if err := validateCountryCode(code); err != nil {
			return request{}, err
		}
	}

	vars := imageVariables()
	vars["nodeId"] = nodeID
	vars["language"] = language
	vars["filter"] = map[string]any{"bestOnly": bestOnly}

	return request{
		OperationName: "GetTitleOffers",
		Variables:     vars,
		Query:         countryOffersQuery(countries),
	}, nil
}

// countryOffersQuery expands the offers template with one aliased entry per
// country, each aliased by its upper-cased code.
func countryOffersQuery(countries []string) string {
	entries := make([]string, 0, len(countries))
	for _, code := range countries {
		entry := strings.ReplaceAll(countryOffersEntry, "{country_code}", strings.ToUpper(code))
		entries = append(entries, entry)
	}
	query := strings.ReplaceAll(offersByCountryQuery, "{country_entries}", strings.Join(entries, "\n"))
	return query + offerFragment
}
