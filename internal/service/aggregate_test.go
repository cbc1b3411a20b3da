package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EdoardoGruppi/Watch-Movies/internal/domain"
)

func priced(id, pkg string, price float64) domain.Offer {
	return domain.Offer{
		ID:               id,
		MonetizationType: "RENT",
		PriceValue:       &price,
		Package:          domain.OfferPackage{Name: pkg},
	}
}

func flatrate(id, pkg string) domain.Offer {
	return domain.Offer{
		ID:               id,
		MonetizationType: "FLATRATE",
		Package:          domain.OfferPackage{Name: pkg},
	}
}

func TestBestOffersByPackage_PicksCheapest(t *testing.T) {
	offers := []domain.Offer{
		priced("o1", "Apple TV", 4.99),
		priced("o2", "Apple TV", 3.99),
		priced("o3", "Apple TV", 3.99), // tie keeps the earlier pick
		priced("o4", "Amazon Video", 2.99),
	}

	best := BestOffersByPackage(offers)
	require.Len(t, best, 2)

	// Sorted by package name
	assert.Equal(t, "Amazon Video", best[0].Package.Name)
	assert.Equal(t, "o4", best[0].ID)
	assert.Equal(t, "Apple TV", best[1].Package.Name)
	assert.Equal(t, "o2", best[1].ID)
}

func TestBestOffersByPackage_FreeBeatsPriced(t *testing.T) {
	offers := []domain.Offer{
		priced("o1", "Netflix", 9.99),
		flatrate("o2", "Netflix"),
	}

	best := BestOffersByPackage(offers)
	require.Len(t, best, 1)
	assert.Equal(t, "o2", best[0].ID)
}

func TestBestOffersByPackage_Empty(t *testing.T) {
	best := BestOffersByPackage(nil)
	assert.NotNil(t, best)
	assert.Empty(t, best)
}

func TestBuildComparison(t *testing.T) {
	offers := map[string][]domain.Offer{
		"US": {flatrate("o1", "Netflix"), priced("o2", "Apple TV", 3.99)},
		"DE": {flatrate("o3", "Netflix")},
		"FR": {},
	}

	rows := BuildComparison(offers)
	require.Len(t, rows, 3)

	// Sorted by country display name: France, Germany, United States
	assert.Equal(t, "FR", rows[0].Country)
	assert.Equal(t, "DE", rows[1].Country)
	assert.Equal(t, "US", rows[2].Country)

	assert.Empty(t, rows[0].Offers)
	assert.Len(t, rows[2].Offers, 2)

	services := ComparisonServices(rows)
	assert.Equal(t, []string{"Apple TV", "Netflix"}, services)
}
