package justwatch

import (
	"sort"
	"strings"
)

// countryNames maps the 2-letter codes the catalog supports to display
// names. The comparison view iterates this set when no explicit country list
// is configured.
var countryNames = map[string]string{
	"AR": "Argentina",
	"AT": "Austria",
	"AU": "Australia",
	"BE": "Belgium",
	"BR": "Brazil",
	"CA": "Canada",
	"CH": "Switzerland",
	"CL": "Chile",
	"CO": "Colombia",
	"CZ": "Czech Republic",
	"DE": "Germany",
	"DK": "Denmark",
	"EC": "Ecuador",
	"ES": "Spain",
	"FI": "Finland",
	"FR": "France",
	"GB": "United Kingdom",
	"GR": "Greece",
	"HU": "Hungary",
	"ID": "Indonesia",
	"IE": "Ireland",
	"IN": "India",
	"IT": "Italy",
	"JP": "Japan",
	"KR": "South Korea",
	"MX": "Mexico",
	"MY": "Malaysia",
	"NL": "Netherlands",
	"NO": "Norway",
	"NZ": "New Zealand",
	"PE": "Peru",
	"PH": "Philippines",
	"PL": "Poland",
	"PT": "Portugal",
	"RO": "Romania",
	"SE": "Sweden",
	"SG": "Singapore",
	"TH": "Thailand",
	"TR": "Turkey",
	"US": "United States",
	"ZA": "South Africa",
}

// SupportedCountries returns every known country code, sorted
func SupportedCountries() []string {
	codes := make([]string, 0, len(countryNames))
	for code := range countryNames {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// CountryName resolves a code to its display name; unknown codes are
// returned upper-cased.
func CountryName(code string) string {
	code = strings.ToUpper(code)
	if name, ok := countryNames[code]; ok {
		return name
	}
	return code
}
