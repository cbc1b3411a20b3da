package justwatch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EdoardoGruppi/Watch-Movies/internal/domain"
)

func TestBuildSearchRequest_InvalidCountryCode(t *testing.T) {
	tests := []struct {
		name    string
		country string
	}{
		{"three letters", "usa"},
		{"one letter", "u"},
		{"empty", ""},
		{"code with space", "US "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildSearchRequest("Dune", tt.country, "en", 5, false)
			assert.ErrorIs(t, err, domain.ErrInvalidCountryCode)
		})
	}
}

func TestBuildSearchRequest_Variables(t *testing.T) {
	req, err := buildSearchRequest("Dune", "US", "en", 5, false)
	require.NoError(t, err)

	assert.Equal(t, "GetSearchTitles", req.OperationName)
	assert.Equal(t, "US", req.Variables["country"])
	assert.Equal(t, "en", req.Variables["language"])
	assert.Equal(t, 5, req.Variables["first"])
	assert.Equal(t, map[string]any{"searchQuery": "Dune"}, req.Variables["searchTitlesFilter"])
	assert.Equal(t, map[string]any{"bestOnly": false}, req.Variables["filter"])

	// Fixed image parameters are always present
	assert.Equal(t, "JPG", req.Variables["formatPoster"])
	assert.Equal(t, "PNG", req.Variables["formatOfferIcon"])
	assert.Equal(t, "S718", req.Variables["profile"])
	assert.Equal(t, "S1920", req.Variables["backdropProfile"])
}

func TestBuildSearchRequest_LowercaseCodeUppercased(t *testing.T) {
	// Validation is length-only; case is normalized on the way out
	req, err := buildSearchRequest("Dune", "us", "en", 5, false)
	require.NoError(t, err)
	assert.Equal(t, "US", req.Variables["country"])
}

func TestBuildSearchRequest_QueryComposition(t *testing.T) {
	req, err := buildSearchRequest("Dune", "US", "en", 5, true)
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(req.Query, "query GetSearchTitles"))
	assert.Equal(t, 1, strings.Count(req.Query, "fragment TitleDetails on MovieOrShow"))
	assert.Equal(t, 1, strings.Count(req.Query, "fragment TitleOffer on Offer"))
}

func TestBuildDetailsRequest(t *testing.T) {
	req, err := buildDetailsRequest("tm92641", "DE", "de", true)
	require.NoError(t, err)

	assert.Equal(t, "GetTitleNode", req.OperationName)
	assert.Equal(t, "tm92641", req.Variables["nodeId"])
	assert.Equal(t, "DE", req.Variables["country"])
	assert.Equal(t, map[string]any{"bestOnly": true}, req.Variables["filter"])
	assert.Equal(t, 1, strings.Count(req.Query, "query GetTitleNode"))
	assert.Equal(t, 1, strings.Count(req.Query, "fragment TitleDetails on MovieOrShow"))
	assert.Equal(t, 1, strings.Count(req.Query, "fragment TitleOffer on Offer"))

	_, err = buildDetailsRequest("tm92641", "DEU", "de", true)
	assert.ErrorIs(t, err, domain.ErrInvalidCountryCode)
}

func TestBuildOffersRequest_NoCountries(t *testing.T) {
	_, err := buildOffersRequest("tm92641", nil, "en", false)
	assert.ErrorIs(t, err, domain.ErrNoCountries)

	_, err = buildOffersRequest("tm92641", []string{}, "en", false)
	assert.ErrorIs(t, err, domain.ErrNoCountries)
}

func TestBuildOffersRequest_ValidatesEveryCode(t *testing.T) {
	_, err := buildOffersRequest("tm92641", []string{"US", "DEU"}, "en", false)
	assert.ErrorIs(t, err, domain.ErrInvalidCountryCode)
}

func TestBuildOffersRequest_AliasedEntries(t *testing.T) {
	req, err := buildOffersRequest("tm92641", []string{"us", "DE"}, "en", false)
	require.NoError(t, err)

	assert.Equal(t, "GetTitleOffers", req.OperationName)
	assert.Equal(t, "tm92641", req.Variables["nodeId"])

	// One aliased field per country, aliased by the upper-cased code
	assert.Contains(t, req.Query, "US: offers(country: US, platform: WEB, filter: $filter)")
	assert.Contains(t, req.Query, "DE: offers(country: DE, platform: WEB, filter: $filter)")
	assert.NotContains(t, req.Query, "{country_entries}")
	assert.Equal(t, 1, strings.Count(req.Query, "fragment TitleOffer on Offer"))

	// The offers operation carries no single country variable
	_, hasCountry := req.Variables["country"]
	assert.False(t, hasCountry)
}
