package domain

import (
	"fmt"
	"strings"
)

// ObjectType distinguishes catalog entry types
type ObjectType string

const (
	ObjectTypeMovie ObjectType = "MOVIE"
	ObjectTypeShow  ObjectType = "SHOW"
)

// MediaEntry represents a single catalog title (movie or show).
// Entries are constructed once by the normalizer and never mutated.
type MediaEntry struct {
	ID               string     // Opaque node ID used for detail/offer lookups (e.g. "tm92641")
	ObjectID         int        // Numeric catalog ID
	ObjectType       ObjectType // MOVIE or SHOW
	Title            string     // Display title
	URL              string     // Canonical catalog page URL
	ReleaseYear      int        // Original release year
	ReleaseDate      string     // Original release date (YYYY-MM-DD)
	RuntimeMinutes   int        // Total runtime in minutes
	ShortDescription string     // Plot synopsis
	Genres           []string   // Ordered genre codes (e.g. "act", "drm"); never nil
	IMDBID           *string    // IMDB identifier, if known
	TMDBID           *string    // TMDB identifier, if known
	Poster           *string    // Absolute poster URL, if available
	Backdrops        []string   // Absolute backdrop URLs; never nil
	AgeCertification *string    // e.g. "PG-13", if known
	Scoring          *Scoring
	Interactions     *Interactions
	StreamingCharts  *StreamingCharts
	Offers           []Offer // Offers for the requesting country; never nil
}

// Scoring holds rating metrics from the various rating providers.
// Every leaf is optional; the upstream omits whatever it does not know.
type Scoring struct {
	IMDBScore      *float64
	IMDBVotes      *int
	TMDBPopularity *float64
	TMDBScore      *float64
	TomatoMeter    *int
	CertifiedFresh *bool
	JWRating       *float64
}

// Interactions holds community like/dislike counts.
type Interactions struct {
	Likes    *int
	Dislikes *int
}

// StreamingCharts holds the current popularity-chart position of a title.
type StreamingCharts struct {
	Rank            int
	Trend           string // "UP", "DOWN" or other
	TrendDifference int
	TopRank         int
	DaysInTop3      int
	DaysInTop10     int
	DaysInTop100    int
	DaysInTop1000   int
	Updated         string // Upstream timestamp string
}

// Offer represents one way to obtain a title via one package in one country.
type Offer struct {
	ID                         string
	MonetizationType           string // e.g. "FLATRATE", "RENT", "BUY", "FREE"
	PresentationType           string // e.g. "HD", "SD", "_4K"
	PriceString                *string
	PriceValue                 *float64
	PriceCurrency              *string
	LastChangeRetailPriceValue *float64
	Type                       string
	Package                    OfferPackage
	URL                        string
	ElementCount               *int
	AvailableTo                *string
	DeeplinkRoku               *string
	SubtitleLanguages          []string // never nil
	VideoTechnology            []string // never nil
	AudioTechnology            []string // never nil
	AudioLanguages             []string // never nil
}

// OfferPackage represents the distributing streaming/purchase service.
type OfferPackage struct {
	ID            string
	PackageID     int
	Name          string // Display name, e.g. "Netflix"
	TechnicalName string
	Icon          string // Absolute icon URL
}

// YearString returns the release year for display, or "" if unknown
func (m MediaEntry) YearString() string {
	if m.ReleaseYear <= 0 {
		return ""
	}
	return fmt.Sprintf("%d", m.ReleaseYear)
}

// FormattedRuntime returns the runtime in a human-readable format
func (m MediaEntry) FormattedRuntime() string {
	if m.RuntimeMinutes <= 0 {
		return ""
	}
	h := m.RuntimeMinutes / 60
	mins := m.RuntimeMinutes % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, mins)
	}
	return fmt.Sprintf("%dm", mins)
}

// TrendArrow returns a single-character indicator for the chart trend
func (c StreamingCharts) TrendArrow() string {
	switch c.Trend {
	case "UP":
		return "↑"
	case "DOWN":
		return "↓"
	default:
		return "→"
	}
}

// IsFree reports whether the offer carries no price
func (o Offer) IsFree() bool {
	return o.PriceValue == nil || *o.PriceValue == 0
}

// FormattedPrice returns the display price, or "free" when the offer has none
func (o Offer) FormattedPrice() string {
	if o.PriceString != nil && *o.PriceString != "" {
		return *o.PriceString
	}
	if o.IsFree() {
		return "free"
	}
	price := fmt.Sprintf("%.2f", *o.PriceValue)
	if o.PriceCurrency != nil {
		price += " " + *o.PriceCurrency
	}
	return price
}

// genreNames maps upstream genre codes to display names
var genreNames = map[string]string{
	"act": "Action",
	"adv": "Adventure",
	"ani": "Animation",
	"bio": "Biography",
	"cmy": "Comedy",
	"crm": "Crime",
	"doc": "Documentary",
	"drm": "Drama",
	"eur": "European",
	"fam": "Family",
	"fnt": "Fantasy",
	"hst": "History",
	"hrr": "Horror",
	"mus": "Music",
	"mys": "Mystery",
	"noi": "Film Noir",
	"rma": "Romance",
	"scf": "Science Fiction",
	"sho": "Short",
	"spo": "Sports",
	"trl": "Thriller",
	"war": "War",
	"wes": "Western",
}

// GenreName resolves a short genre code to its display name.
// Unknown codes are returned as-is.
func GenreName(code string) string {
	if name, ok := genreNames[code]; ok {
		return name
	}
	return code
}

// GenreList returns the entry's genres as display names joined with ", "
func (m MediaEntry) GenreList() string {
	names := make([]string, 0, len(m.Genres))
	for _, g := range m.Genres {
		names = append(names, GenreName(g))
	}
	return strings.Join(names, ", ")
}
