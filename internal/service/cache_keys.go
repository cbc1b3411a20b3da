package service

import (
	"sort"
	"strings"
)

// Cache key prefixes for catalog content
const (
	// PrefixSearch is the prefix for search result caches (search:{title}:{country}:{language})
	PrefixSearch = "search:"

	// PrefixTitle is the prefix for title detail caches (title:{nodeID}:{country}:{language})
	PrefixTitle = "title:"

	// PrefixOffers is the prefix for multi-country offer caches (offers:{nodeID}:{language}:{codes})
	PrefixOffers = "offers:"
)

// SearchKey builds the cache key for a search query
func SearchKey(title, country, language string) string {
	return PrefixSearch + strings.ToLower(title) + ":" + strings.ToUpper(country) + ":" + strings.ToLower(language)
}

// DetailsKey builds the cache key for a title detail lookup
func DetailsKey(nodeID, country, language string) string {
	return PrefixTitle + nodeID + ":" + strings.ToUpper(country) + ":" + strings.ToLower(language)
}

// OffersKey builds the cache key for a multi-country offers lookup. The
// country set participates in the key so differing sets never collide.
func OffersKey(nodeID, language string, countries []string) string {
	codes := make([]string, 0, len(countries))
	for _, c := range countries {
		codes = append(codes, strings.ToUpper(c))
	}
	sort.Strings(codes)
	return PrefixOffers + nodeID + ":" + strings.ToLower(language) + ":" + strings.Join(codes, ",")
}
