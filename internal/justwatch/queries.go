// Package justwatch implements the JustWatch GraphQL catalog client: request
// construction, response normalization, and the HTTP round trip between them.
package justwatch

// Upstream endpoints. The details and images bases are prepended to the
// relative paths the API returns.
const (
	DefaultEndpoint = "https://apis.justwatch.com/graphql"
	detailsBaseURL  = "https://justwatch.com"
	imagesBaseURL   = "https://images.justwatch.com"
)

// Fixed image variables sent with every operation
const (
	formatPoster    = "JPG"
	formatOfferIcon = "PNG"
	posterProfile   = "S718"
	backdropProfile = "S1920"
)

// Query templates. Initialized once, read-only for the life of the process;
// request builders only ever concatenate them.
const (
	searchQuery = `
query GetSearchTitles(
  $searchTitlesFilter: TitleFilter!,
  $country: Country!,
  $language: Language!,
  $first: Int!,
  $formatPoster: ImageFormat,
  $formatOfferIcon: ImageFormat,
  $profile: PosterProfile,
  $backdropProfile: BackdropProfile,
  $filter: OfferFilter!,
) {
  popularTitles(
    country: $country
    filter: $searchTitlesFilter
    first: $first
    sortBy: POPULAR
    sortRandomSeed: 0
  ) {
    edges {
      node {
        ...TitleDetails
        __typename
      }
      __typename
    }
    __typename
  }
}
`

	detailsQuery = `
query GetTitleNode(
  $nodeId: ID!,
  $language: Language!,
  $country: Country!,
  $formatPoster: ImageFormat,
  $formatOfferIcon: ImageFormat,
  $profile: PosterProfile,
  $backdropProfile: BackdropProfile,
  $filter: OfferFilter!,
) {
  node(id: $nodeId) {
    ...TitleDetails
    __typename
  }
  __typename
}
`

	offersByCountryQuery = `
query GetTitleOffers(
  $nodeId: ID!,
  $language: Language!,
  $formatOfferIcon: ImageFormat,
  $filter: OfferFilter!,
) {
  node(id: $nodeId) {
    ... on MovieOrShow {
      {country_entries}
      __typename
    }
    __typename
  }
  __typename
}
`

	// countryOffersEntry is one aliased offers field; {country_code} is
	// substituted with the upper-cased 2-letter code, which doubles as the
	// field alias the normalizer looks up.
	countryOffersEntry = `
      {country_code}: offers(country: {country_code}, platform: WEB, filter: $filter) {
        ...TitleOffer
        __typename
      }
`

	detailsFragment = `
fragment TitleDetails on MovieOrShow {
  id
  objectId
  objectType
  content(country: $country, language: $language) {
    title
    fullPath
    originalReleaseYear
    originalReleaseDate
    runtime
    shortDescription
    genres {
      shortName
      __typename
    }
    externalIds {
      imdbId
      tmdbId
      __typename
    }
    posterUrl(profile: $profile, format: $formatPoster)
    backdrops(profile: $backdropProfile, format: $formatPoster) {
      backdropUrl
      __typename
    }
    ageCertification
    scoring {
      imdbScore
      imdbVotes
      tmdbPopularity
      tmdbScore
      tomatoMeter
      certifiedFresh
      jwRating
      __typename
    }
    interactions {
      likelistAdditions
      dislikelistAdditions
      __typename
    }
    __typename
  }
  streamingCharts(country: $country) {
    edges {
      streamingChartInfo {
        rank
        trend
        trendDifference
        daysInTop3
        daysInTop10
        daysInTop100
        daysInTop1000
        topRank
        updatedAt
        __typename
      }
      __typename
    }
    __typename
  }
  offers(country: $country, platform: WEB, filter: $filter) {
    ...TitleOffer
  }
  __typename
}
`

	offerFragment = `
fragment TitleOffer on Offer {
  id
  monetizationType
  presentationType
  retailPrice(language: $language)
  retailPriceValue
  currency
  lastChangeRetailPriceValue
  type
  package {
    id
    packageId
    clearName
    technicalName
    icon(profile: S100, format: $formatOfferIcon)
    __typename
  }
  standardWebURL
  elementCount
  availableTo
  deeplinkRoku: deeplinkURL(platform: ROKU_OS)
  subtitleLanguages
  videoTechnology
  audioTechnology
  audioLanguages
  __typename
}
`
)
