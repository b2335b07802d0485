package constants

import "time"

// HTTP and network defaults.
const (
	// DefaultHTTPTimeout is the default per-attempt timeout for HTTP
	// requests when the caller supplies no http.Client.
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultUserAgent identifies the client on the wire.
	DefaultUserAgent = "gmaps-client/1.0"
)

// Service endpoints.
const (
	// DefaultBaseURL hosts the legacy-generation endpoints.
	DefaultBaseURL = "https://maps.googleapis.com"

	// DefaultPlacesBaseURL hosts the new-generation Places endpoints.
	DefaultPlacesBaseURL = "https://places.googleapis.com"
)

// Request paths.
const (
	GeocodingPath    = "/maps/api/geocode/json"
	ElevationPath    = "/maps/api/elevation/json"
	TimeZonePath     = "/maps/api/timezone/json"
	TextSearchPath   = "/v1/places:searchText"
	AutocompletePath = "/v1/places:autocomplete"
	PlaceDetailsPath = "/v1/places/"
)

// Header names used by new-generation endpoints.
const (
	HeaderAPIKey    = "X-Goog-Api-Key"
	HeaderFieldMask = "X-Goog-FieldMask"
)

// Pagination limits.
const (
	// MaxPageFollows bounds how many continuation calls AllPlaces will
	// issue for a single logical search.
	MaxPageFollows = 50
)
