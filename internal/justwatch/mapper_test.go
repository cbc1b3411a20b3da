package justwatch

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EdoardoGruppi/Watch-Movies/internal/domain"
)

const fullTitleNode = `{
	"id": "tm92641",
	"objectId": 92641,
	"objectType": "MOVIE",
	"content": {
		"title": "Blade Runner",
		"fullPath": "/us/movie/blade-runner",
		"originalReleaseYear": 1982,
		"originalReleaseDate": "1982-06-25",
		"runtime": 117,
		"shortDescription": "A blade runner must pursue replicants.",
		"genres": [{"shortName": "scf"}, {"shortName": "trl"}],
		"externalIds": {"imdbId": "tt0083658", "tmdbId": "78"},
		"posterUrl": "/poster/8692/s718/blade-runner.jpg",
		"backdrops": [
			{"backdropUrl": "/backdrop/8692/s1920/blade-runner-1.jpg"},
			{"backdropUrl": "/backdrop/8692/s1920/blade-runner-2.jpg"}
		],
		"ageCertification": "R",
		"scoring": {
			"imdbScore": 8.1,
			"imdbVotes": "835196",
			"tmdbPopularity": 94.5,
			"tmdbScore": 7.9,
			"tomatoMeter": "89",
			"certifiedFresh": true,
			"jwRating": 0.93
		},
		"interactions": {"likelistAdditions": 1200, "dislikelistAdditions": 45}
	},
	"streamingCharts": {
		"edges": [
			{"streamingChartInfo": {
				"rank": 132,
				"trend": "UP",
				"trendDifference": 12,
				"topRank": 18,
				"daysInTop3": 0,
				"daysInTop10": 2,
				"daysInTop100": 44,
				"daysInTop1000": 812,
				"updatedAt": "2024-03-01T00:00:00Z"
			}},
			{"streamingChartInfo": {"rank": 999, "trend": "DOWN"}}
		]
	},
	"offers": [` + fullOfferNode + `]
}`

const fullOfferNode = `{
	"id": "b2Z8MTUzfDM",
	"monetizationType": "RENT",
	"presentationType": "HD",
	"retailPrice": "$3.99",
	"retailPriceValue": 3.99,
	"currency": "USD",
	"lastChangeRetailPriceValue": 2.99,
	"type": "AGGREGATED",
	"package": {
		"id": "cGF8Mg",
		"packageId": 2,
		"clearName": "Apple TV",
		"technicalName": "itunes",
		"icon": "/icon/190848813/s100/itunes.png"
	},
	"standardWebURL": "https://tv.apple.com/us/movie/blade-runner",
	"elementCount": 1,
	"availableTo": "2024-12-31",
	"deeplinkRoku": "launch/12345",
	"subtitleLanguages": ["en", "es"],
	"videoTechnology": ["DOLBY_VISION"],
	"audioTechnology": ["DOLBY_ATMOS"],
	"audioLanguages": ["en"]
}`

func searchBody(nodes ...string) []byte {
	edges := ""
	for i, n := range nodes {
		if i > 0 {
			edges += ","
		}
		edges += `{"node": ` + n + `}`
	}
	return []byte(`{"data": {"popularTitles": {"edges": [` + edges + `]}}}`)
}

func TestDecodeSearch_FullRoundTrip(t *testing.T) {
	entries, err := decodeSearch(searchBody(fullTitleNode))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, "tm92641", e.ID)
	assert.Equal(t, 92641, e.ObjectID)
	assert.Equal(t, domain.ObjectTypeMovie, e.ObjectType)
	assert.Equal(t, "Blade Runner", e.Title)
	assert.Equal(t, "https://justwatch.com/us/movie/blade-runner", e.URL)
	assert.Equal(t, 1982, e.ReleaseYear)
	assert.Equal(t, "1982-06-25", e.ReleaseDate)
	assert.Equal(t, 117, e.RuntimeMinutes)
	assert.Equal(t, "A blade runner must pursue replicants.", e.ShortDescription)
	assert.Equal(t, []string{"scf", "trl"}, e.Genres)
	require.NotNil(t, e.IMDBID)
	assert.Equal(t, "tt0083658", *e.IMDBID)
	require.NotNil(t, e.TMDBID)
	assert.Equal(t, "78", *e.TMDBID)
	require.NotNil(t, e.Poster)
	assert.Equal(t, "https://images.justwatch.com/poster/8692/s718/blade-runner.jpg", *e.Poster)
	assert.Equal(t, []string{
		"https://images.justwatch.com/backdrop/8692/s1920/blade-runner-1.jpg",
		"https://images.justwatch.com/backdrop/8692/s1920/blade-runner-2.jpg",
	}, e.Backdrops)
	require.NotNil(t, e.AgeCertification)
	assert.Equal(t, "R", *e.AgeCertification)

	require.NotNil(t, e.Scoring)
	assert.Equal(t, 8.1, *e.Scoring.IMDBScore)
	assert.Equal(t, 835196, *e.Scoring.IMDBVotes) // numeric string parsed
	assert.Equal(t, 94.5, *e.Scoring.TMDBPopularity)
	assert.Equal(t, 7.9, *e.Scoring.TMDBScore)
	assert.Equal(t, 89, *e.Scoring.TomatoMeter) // numeric string parsed
	assert.True(t, *e.Scoring.CertifiedFresh)
	assert.Equal(t, 0.93, *e.Scoring.JWRating)

	require.NotNil(t, e.Interactions)
	assert.Equal(t, 1200, *e.Interactions.Likes)
	assert.Equal(t, 45, *e.Interactions.Dislikes)

	// Only the first chart edge is meaningful
	require.NotNil(t, e.StreamingCharts)
	assert.Equal(t, 132, e.StreamingCharts.Rank)
	assert.Equal(t, "UP", e.StreamingCharts.Trend)
	assert.Equal(t, 12, e.StreamingCharts.TrendDifference)
	assert.Equal(t, 18, e.StreamingCharts.TopRank)
	assert.Equal(t, 2, e.StreamingCharts.DaysInTop10)
	assert.Equal(t, 812, e.StreamingCharts.DaysInTop1000)
	assert.Equal(t, "2024-03-01T00:00:00Z", e.StreamingCharts.Updated)

	require.Len(t, e.Offers, 1)
	o := e.Offers[0]
	assert.Equal(t, "b2Z8MTUzfDM", o.ID)
	assert.Equal(t, "RENT", o.MonetizationType)
	assert.Equal(t, "HD", o.PresentationType)
	assert.Equal(t, "$3.99", *o.PriceString)
	assert.Equal(t, 3.99, *o.PriceValue)
	assert.Equal(t, "USD", *o.PriceCurrency)
	assert.Equal(t, 2.99, *o.LastChangeRetailPriceValue)
	assert.Equal(t, "AGGREGATED", o.Type)
	assert.Equal(t, "Apple TV", o.Package.Name)
	assert.Equal(t, 2, o.Package.PackageID)
	assert.Equal(t, "itunes", o.Package.TechnicalName)
	assert.Equal(t, "https://images.justwatch.com/icon/190848813/s100/itunes.png", o.Package.Icon)
	assert.Equal(t, "https://tv.apple.com/us/movie/blade-runner", o.URL)
	assert.Equal(t, 1, *o.ElementCount)
	assert.Equal(t, "2024-12-31", *o.AvailableTo)
	assert.Equal(t, "launch/12345", *o.DeeplinkRoku)
	assert.Equal(t, []string{"en", "es"}, o.SubtitleLanguages)
	assert.Equal(t, []string{"DOLBY_VISION"}, o.VideoTechnology)
	assert.Equal(t, []string{"DOLBY_ATMOS"}, o.AudioTechnology)
	assert.Equal(t, []string{"en"}, o.AudioLanguages)
}

func TestDecodeSearch_Idempotent(t *testing.T) {
	body := searchBody(fullTitleNode)
	first, err := decodeSearch(body)
	require.NoError(t, err)
	second, err := decodeSearch(body)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDecodeSearch_MissingOptionalFields(t *testing.T) {
	minimal := `{"id": "tm1", "objectId": 1, "objectType": "SHOW", "content": {"title": "Sparse"}}`
	entries, err := decodeSearch(searchBody(minimal))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, "Sparse", e.Title)
	assert.Empty(t, e.URL)
	assert.Nil(t, e.IMDBID)
	assert.Nil(t, e.TMDBID)
	assert.Nil(t, e.Poster)
	assert.Nil(t, e.AgeCertification)
	assert.Nil(t, e.Scoring)
	assert.Nil(t, e.Interactions)
	assert.Nil(t, e.StreamingCharts)

	// Sequences default to empty, never nil
	assert.NotNil(t, e.Genres)
	assert.Empty(t, e.Genres)
	assert.NotNil(t, e.Backdrops)
	assert.Empty(t, e.Backdrops)
	assert.NotNil(t, e.Offers)
	assert.Empty(t, e.Offers)
}

func TestDecodeSearch_NoContent(t *testing.T) {
	entries, err := decodeSearch(searchBody(`{"id": "tm2", "objectId": 2, "objectType": "MOVIE"}`))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].Title)
	assert.NotNil(t, entries[0].Genres)
}

func TestDecodeSearch_EmptyResults(t *testing.T) {
	entries, err := decodeSearch([]byte(`{"data": {"popularTitles": {"edges": []}}}`))
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestDecodeSearch_ErrorsWithoutData(t *testing.T) {
	// Errors on a search response are not special; absent data yields an
	// empty result rather than a failure.
	entries, err := decodeSearch([]byte(`{"errors": [{"message": "boom"}], "data": null}`))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDecodeSearch_MalformedJSON(t *testing.T) {
	_, err := decodeSearch([]byte(`{"data": `))
	assert.Error(t, err)
}

func TestDecodeDetails(t *testing.T) {
	body := []byte(`{"data": {"node": ` + fullTitleNode + `}}`)
	entry, err := decodeDetails(body)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "tm92641", entry.ID)
	assert.Equal(t, "Blade Runner", entry.Title)
}

func TestDecodeDetails_ErrorsMeanNotFound(t *testing.T) {
	body := []byte(`{"errors": [{"message": "node not found"}], "data": null}`)
	entry, err := decodeDetails(body)
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestDecodeDetails_NullNode(t *testing.T) {
	entry, err := decodeDetails([]byte(`{"data": {"node": null}}`))
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestDecodeOffers(t *testing.T) {
	body := []byte(fmt.Sprintf(`{"data": {"node": {
		"__typename": "Movie",
		"US": [%s, %s, %s],
		"DE": []
	}}}`, fullOfferNode, fullOfferNode, fullOfferNode))

	offers, err := decodeOffers(body, []string{"US", "DE", "FR"})
	require.NoError(t, err)

	// Every requested country is present; FR defaults to empty even though
	// the upstream returned nothing for it.
	require.Len(t, offers, 3)
	assert.Len(t, offers["US"], 3)
	assert.Empty(t, offers["DE"])
	assert.NotNil(t, offers["DE"])
	assert.Empty(t, offers["FR"])
	assert.NotNil(t, offers["FR"])

	assert.Equal(t, "RENT", offers["US"][0].MonetizationType)
}

func TestDecodeOffers_LowercaseRequestCodes(t *testing.T) {
	body := []byte(`{"data": {"node": {"US": [` + fullOfferNode + `]}}}`)
	offers, err := decodeOffers(body, []string{"us"})
	require.NoError(t, err)
	assert.Len(t, offers["US"], 1)
}

func TestDecodeOffers_ErrorsWithoutData(t *testing.T) {
	body := []byte(`{"errors": [{"message": "boom"}], "data": null}`)
	offers, err := decodeOffers(body, []string{"US", "DE"})
	require.NoError(t, err)
	require.Len(t, offers, 2)
	assert.Empty(t, offers["US"])
	assert.Empty(t, offers["DE"])
}

func TestStreamingCharts_EmptyEdges(t *testing.T) {
	node := `{"id": "tm3", "objectId": 3, "objectType": "MOVIE", "streamingCharts": {"edges": []}}`
	entries, err := decodeSearch(searchBody(node))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].StreamingCharts)
}

func TestScoring_NonNumericStrings(t *testing.T) {
	node := `{"id": "tm4", "objectId": 4, "objectType": "MOVIE", "content": {
		"title": "Odd Scores",
		"scoring": {"imdbScore": 7.0, "imdbVotes": "N/A", "tomatoMeter": null}
	}}`
	entries, err := decodeSearch(searchBody(node))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	s := entries[0].Scoring
	require.NotNil(t, s)
	assert.Equal(t, 7.0, *s.IMDBScore)
	assert.Nil(t, s.IMDBVotes)
	assert.Nil(t, s.TomatoMeter)
}

func TestScoring_NumericVotes(t *testing.T) {
	// Votes may arrive as a plain number rather than a string
	node := `{"id": "tm5", "objectId": 5, "objectType": "MOVIE", "content": {
		"title": "Numbers",
		"scoring": {"imdbVotes": 4321, "tomatoMeter": 55}
	}}`
	entries, err := decodeSearch(searchBody(node))
	require.NoError(t, err)

	s := entries[0].Scoring
	require.NotNil(t, s)
	assert.Equal(t, 4321, *s.IMDBVotes)
	assert.Equal(t, 55, *s.TomatoMeter)
}

func TestOffer_NullPackage(t *testing.T) {
	node := `{"id": "tm6", "objectId": 6, "objectType": "MOVIE", "offers": [{"id": "o1", "monetizationType": "FREE", "package": null}]}`
	entries, err := decodeSearch(searchBody(node))
	require.NoError(t, err)
	require.Len(t, entries[0].Offers, 1)

	o := entries[0].Offers[0]
	assert.Equal(t, domain.OfferPackage{}, o.Package)
	assert.Nil(t, o.PriceValue)
	assert.True(t, o.IsFree())
	assert.NotNil(t, o.SubtitleLanguages)
	assert.NotNil(t, o.AudioLanguages)
}
