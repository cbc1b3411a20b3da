package service

import (
	"sort"

	"github.com/EdoardoGruppi/Watch-Movies/internal/domain"
	"github.com/EdoardoGruppi/Watch-Movies/internal/justwatch"
)

// ComparisonRow is one country's best offers, keyed by package display name
type ComparisonRow struct {
	Country     string // 2-letter code
	CountryName string
	Offers      map[string]domain.Offer
}

// BestOffersByPackage reduces an offer list to the cheapest offer per
// package. Unpriced offers (subscriptions, free) beat priced ones; between
// priced offers the lower price wins; ties keep the first offer seen.
func BestOffersByPackage(offers []domain.Offer) []domain.Offer {
	best := make(map[string]domain.Offer)
	order := make([]string, 0)

	for _, offer := range offers {
		name := offer.Package.Name
		current, seen := best[name]
		if !seen {
			best[name] = offer
			order = append(order, name)
			continue
		}
		if cheaper(offer, current) {
			best[name] = offer
		}
	}

	sort.Strings(order)
	result := make([]domain.Offer, 0, len(order))
	for _, name := range order {
		result = append(result, best[name])
	}
	return result
}

// cheaper reports whether a is strictly cheaper than b
func cheaper(a, b domain.Offer) bool {
	if a.IsFree() != b.IsFree() {
		return a.IsFree()
	}
	if a.IsFree() {
		return false
	}
	return *a.PriceValue < *b.PriceValue
}

// BuildComparison turns a per-country offer mapping into display rows,
// one per country, sorted by country name.
func BuildComparison(offers map[string][]domain.Offer) []ComparisonRow {
	rows := make([]ComparisonRow, 0, len(offers))
	for code, countryOffers := range offers {
		row := ComparisonRow{
			Country:     code,
			CountryName: justwatch.CountryName(code),
			Offers:      make(map[string]domain.Offer),
		}
		for _, offer := range BestOffersByPackage(countryOffers) {
			row.Offers[offer.Package.Name] = offer
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].CountryName < rows[j].CountryName
	})
	return rows
}

// ComparisonServices returns the union of package names across all rows,
// sorted, for use as table columns.
func ComparisonServices(rows []ComparisonRow) []string {
	seen := make(map[string]bool)
	services := make([]string, 0)
	for _, row := range rows {
		for name := range row.Offers {
			if !seen[name] {
				seen[name] = true
				services = append(services, name)
			}
		}
	}
	sort.Strings(services)
	return services
}
