package justwatch

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/EdoardoGruppi/Watch-Movies/internal/domain"
)

// Pure normalization from the raw response schema to domain entities.
// Missing optional fields become nil pointers or empty slices, never errors;
// only malformed JSON is reported.

// decodeSearch normalizes a search response. An empty result list, or a
// response carrying errors with no data, yields an empty slice.
func decodeSearch(body []byte) ([]domain.MediaEntry, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}
	if env.Data == nil {
		return []domain.MediaEntry{}, nil
	}

	var data searchData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}

	entries := make([]domain.MediaEntry, 0, len(data.PopularTitles.Edges))
	for _, edge := range data.PopularTitles.Edges {
		entries = append(entries, mapEntry(edge.Node))
	}
	return entries, nil
}

// decodeDetails normalizes a detail response. Application-level errors mean
// the node does not exist and yield nil, not an error.
func decodeDetails(body []byte) (*domain.MediaEntry, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to parse details response: %w", err)
	}
	if len(env.Errors) > 0 || env.Data == nil {
		return nil, nil
	}

	var data detailsData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fmt.Errorf("failed to parse details response: %w", err)
	}
	if data.Node == nil {
		return nil, nil
	}

	entry := mapEntry(*data.Node)
	return &entry, nil
}

// decodeOffers normalizes a multi-country offers response. The result maps
// every requested code (upper-cased) to that country's offers; countries the
// upstream returned nothing for map to empty slices.
func decodeOffers(body []byte, countries []string) (map[string][]domain.Offer, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to parse offers response: %w", err)
	}

	result := make(map[string][]domain.Offer, len(countries))
	for _, code := range countries {
		result[strings.ToUpper(code)] = []domain.Offer{}
	}
	if env.Data == nil {
		return result, nil
	}

	var data offersData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fmt.Errorf("failed to parse offers response: %w", err)
	}

	for _, code := range countries {
		alias := strings.ToUpper(code)
		raw, ok := data.Node[alias]
		if !ok {
			continue
		}
		var nodes []offerNode
		if err := json.Unmarshal(raw, &nodes); err != nil {
			continue
		}
		result[alias] = mapOffers(nodes)
	}
	return result, nil
}

func mapEntry(node titleNode) domain.MediaEntry {
	entry := domain.MediaEntry{
		ID:         node.ID,
		ObjectID:   node.ObjectID,
		ObjectType: domain.ObjectType(node.ObjectType),
		Genres:     []string{},
		Backdrops:  []string{},
		Offers:     mapOffers(node.Offers),
	}

	if c := node.Content; c != nil {
		entry.Title = c.Title
		entry.ReleaseYear = c.OriginalReleaseYear
		entry.ReleaseDate = c.OriginalReleaseDate
		entry.RuntimeMinutes = c.Runtime
		entry.ShortDescription = c.ShortDescription
		entry.AgeCertification = c.AgeCertification
		if c.FullPath != nil {
			entry.URL = detailsBaseURL + *c.FullPath
		}
		for _, g := range c.Genres {
			entry.Genres = append(entry.Genres, g.ShortName)
		}
		if c.ExternalIDs != nil {
			entry.IMDBID = c.ExternalIDs.IMDBID
			entry.TMDBID = c.ExternalIDs.TMDBID
		}
		entry.Poster = imageURL(c.PosterURL)
		for _, b := range c.Backdrops {
			if u := imageURL(b.BackdropURL); u != nil {
				entry.Backdrops = append(entry.Backdrops, *u)
			}
		}
		entry.Scoring = mapScoring(c.Scoring)
		entry.Interactions = mapInteractions(c.Interactions)
	}

	entry.StreamingCharts = mapCharts(node)
	return entry
}

func mapScoring(node *scoringNode) *domain.Scoring {
	if node == nil {
		return nil
	}
	return &domain.Scoring{
		IMDBScore:      node.IMDBScore,
		IMDBVotes:      node.IMDBVotes.Int(),
		TMDBPopularity: node.TMDBPopularity,
		TMDBScore:      node.TMDBScore,
		TomatoMeter:    node.TomatoMeter.Int(),
		CertifiedFresh: node.CertifiedFresh,
		JWRating:       node.JWRating,
	}
}

func mapInteractions(node *interactionsNode) *domain.Interactions {
	if node == nil {
		return nil
	}
	return &domain.Interactions{
		Likes:    node.LikelistAdditions,
		Dislikes: node.DislikelistAdditions,
	}
}

// mapCharts uses only the first chart edge; later edges describe historical
// rankings the client does not surface.
func mapCharts(node titleNode) *domain.StreamingCharts {
	if node.StreamingCharts == nil || len(node.StreamingCharts.Edges) == 0 {
		return nil
	}
	info := node.StreamingCharts.Edges[0].StreamingChartInfo
	if info == nil {
		return nil
	}
	return &domain.StreamingCharts{
		Rank:            info.Rank,
		Trend:           info.Trend,
		TrendDifference: info.TrendDifference,
		TopRank:         info.TopRank,
		DaysInTop3:      info.DaysInTop3,
		DaysInTop10:     info.DaysInTop10,
		DaysInTop100:    info.DaysInTop100,
		DaysInTop1000:   info.DaysInTop1000,
		Updated:         info.UpdatedAt,
	}
}

func mapOffers(nodes []offerNode) []domain.Offer {
	offers := make([]domain.Offer, 0, len(nodes))
	for _, n := range nodes {
		offers = append(offers, mapOffer(n))
	}
	return offers
}

func mapOffer(node offerNode) domain.Offer {
	return domain.Offer{
		ID:                         node.ID,
		MonetizationType:           node.MonetizationType,
		PresentationType:           node.PresentationType,
		PriceString:                node.RetailPrice,
		PriceValue:                 node.RetailPriceValue,
		PriceCurrency:              node.Currency,
		LastChangeRetailPriceValue: node.LastChangeRetailPriceValue,
		Type:                       node.Type,
		Package:                    mapPackage(node.Package),
		URL:                        node.StandardWebURL,
		ElementCount:               node.ElementCount,
		AvailableTo:                node.AvailableTo,
		DeeplinkRoku:               node.DeeplinkRoku,
		SubtitleLanguages:          orEmpty(node.SubtitleLanguages),
		VideoTechnology:            orEmpty(node.VideoTechnology),
		AudioTechnology:            orEmpty(node.AudioTechnology),
		AudioLanguages:             orEmpty(node.AudioLanguages),
	}
}

func mapPackage(node *packageNode) domain.OfferPackage {
	if node == nil {
		return domain.OfferPackage{}
	}
	pkg := domain.OfferPackage{
		ID:            node.ID,
		PackageID:     node.PackageID,
		Name:          node.ClearName,
		TechnicalName: node.TechnicalName,
	}
	if node.Icon != "" {
		pkg.Icon = imagesBaseURL + node.Icon
	}
	return pkg
}

// imageURL prepends the images base to a relative path. A nil path stays
// nil; it never becomes a bare base URL.
func imageURL(rel *string) *string {
	if rel == nil || *rel == "" {
		return nil
	}
	u := imagesBaseURL + *rel
	return &u
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
