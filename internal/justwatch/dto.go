package justwatch

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Raw response schema. Every optional upstream field is a pointer or slice so
// the mapper can substitute defaults instead of failing on absent data.

// envelope is the outer GraphQL response shape
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type searchData struct {
	PopularTitles struct {
		Edges []struct {
			Node titleNode `json:"node"`
		} `json:"edges"`
	} `json:"popularTitles"`
}

type detailsData struct {
	Node *titleNode `json:"node"`
}

// offersData keys the node's aliased fields by country code. Raw messages
// are decoded per requested country; unrelated keys (__typename) stay opaque.
type offersData struct {
	Node map[string]json.RawMessage `json:"node"`
}

type titleNode struct {
	ID              string        `json:"id"`
	ObjectID        int           `json:"objectId"`
	ObjectType      string        `json:"objectType"`
	Content         *titleContent `json:"content"`
	StreamingCharts *struct {
		Edges []struct {
			StreamingChartInfo *chartInfo `json:"streamingChartInfo"`
		} `json:"edges"`
	} `json:"streamingCharts"`
	Offers []offerNode `json:"offers"`
}

type titleContent struct {
	Title               string  `json:"title"`
	FullPath            *string `json:"fullPath"`
	OriginalReleaseYear int     `json:"originalReleaseYear"`
	OriginalReleaseDate string  `json:"originalReleaseDate"`
	Runtime             int     `json:"runtime"`
	ShortDescription    string  `json:"shortDescription"`
	Genres              []struct {
		ShortName string `json:"shortName"`
	} `json:"genres"`
	ExternalIDs *struct {
		IMDBID *string `json:"imdbId"`
		TMDBID *string `json:"tmdbId"`
	} `json:"externalIds"`
	PosterURL *string `json:"posterUrl"`
	Backdrops []struct {
		BackdropURL *string `json:"backdropUrl"`
	} `json:"backdrops"`
	AgeCertification *string           `json:"ageCertification"`
	Scoring          *scoringNode      `json:"scoring"`
	Interactions     *interactionsNode `json:"interactions"`
}

type scoringNode struct {
	IMDBScore      *float64 `json:"imdbScore"`
	IMDBVotes      looseInt `json:"imdbVotes"`
	TMDBPopularity *float64 `json:"tmdbPopularity"`
	TMDBScore      *float64 `json:"tmdbScore"`
	TomatoMeter    looseInt `json:"tomatoMeter"`
	CertifiedFresh *bool    `json:"certifiedFresh"`
	JWRating       *float64 `json:"jwRating"`
}

type interactionsNode struct {
	LikelistAdditions    *int `json:"likelistAdditions"`
	DislikelistAdditions *int `json:"dislikelistAdditions"`
}

type chartInfo struct {
	Rank            int    `json:"rank"`
	Trend           string `json:"trend"`
	TrendDifference int    `json:"trendDifference"`
	TopRank         int    `json:"topRank"`
	DaysInTop3      int    `json:"daysInTop3"`
	DaysInTop10     int    `json:"daysInTop10"`
	DaysInTop100    int    `json:"daysInTop100"`
	DaysInTop1000   int    `json:"daysInTop1000"`
	UpdatedAt       string `json:"updatedAt"`
}

type offerNode struct {
	ID                         string       `json:"id"`
	MonetizationType           string       `json:"monetizationType"`
	PresentationType           string       `json:"presentationType"`
	RetailPrice                *string      `json:"retailPrice"`
	RetailPriceValue           *float64     `json:"retailPriceValue"`
	Currency                   *string      `json:"currency"`
	LastChangeRetailPriceValue *float64     `json:"lastChangeRetailPriceValue"`
	Type                       string       `json:"type"`
	Package                    *packageNode `json:"package"`
	StandardWebURL             string       `json:"standardWebURL"`
	ElementCount               *int         `json:"elementCount"`
	AvailableTo                *string      `json:"availableTo"`
	DeeplinkRoku               *string      `json:"deeplinkRoku"`
	SubtitleLanguages          []string     `json:"subtitleLanguages"`
	VideoTechnology            []string     `json:"videoTechnology"`
	AudioTechnology            []string     `json:"audioTechnology"`
	AudioLanguages             []string     `json:"audioLanguages"`
}

type packageNode struct {
	ID            string `json:"id"`
	PackageID     int    `json:"packageId"`
	ClearName     string `json:"clearName"`
	TechnicalName string `json:"technicalName"`
	Icon          string `json:"icon"`
}

// looseInt accepts JSON numbers and numeric strings; null, absent, or
// non-numeric values decode to nil rather than failing the whole response.
type looseInt struct {
	value *int
}

func (l *looseInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		l.value = nil
		return nil
	}
	// Floats are truncated; anything non-numeric stays nil
	if n, err := strconv.Atoi(s); err == nil {
		l.value = &n
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		n := int(f)
		l.value = &n
	}
	return nil
}

// Int returns the parsed value, or nil when the source was null or unusable
func (l looseInt) Int() *int {
	return l.value
}
