package gmaps

import "context"

// GeocodingClient talks to the Geocoding API.
type GeocodingClient interface {
	Geocode(ctx context.Context, request *GeocodingRequest) (*GeocodingResponse, error)
	ReverseGeocode(ctx context.Context, request *ReverseGeocodingRequest) (*GeocodingResponse, error)
}

// ElevationClient talks to the Elevation API.
type ElevationClient interface {
	Elevation(ctx context.Context, request *ElevationRequest) (*ElevationResponse, error)
}

// TimeZoneClient talks to the Time Zone API.
type TimeZoneClient interface {
	TimeZone(ctx context.Context, request *TimeZoneRequest) (*TimeZoneResponse, error)
}

// PlacesClient talks to the new-generation Places endpoints.
type PlacesClient interface {
	// TextSearch runs a text search and returns the first page together
	// with the request snapshot needed to continue it.
	TextSearch(ctx context.Context, request *TextSearchRequest) (*TextSearchPage, error)
	// NextPage fetches the page after the given one, reusing every stored
	// parameter and replacing only the page token. It fails with
	// ErrNoNextPage, without any network call, when the page carries no
	// token.
	NextPage(ctx context.Context, page *TextSearchPage) (*TextSearchPage, error)
	// AllPlaces runs a text search and follows the page-token chain to the
	// end, returning all places in response order. The first hard error
	// aborts the whole call; partial results are never returned.
	AllPlaces(ctx context.Context, request *TextSearchRequest) ([]Place, error)

	// Autocomplete fetches predictions for partial input and returns them
	// together with the request snapshot needed to continue the session.
	Autocomplete(ctx context.Context, request *AutocompleteRequest) (*AutocompleteSession, error)
	// ContinueSession re-issues the stored autocomplete request with only
	// the input replaced, echoing the stored session token unchanged.
	ContinueSession(ctx context.Context, session *AutocompleteSession, input string) (*AutocompleteSession, error)

	// PlaceDetails fetches one place. Passing an autocomplete session's
	// token closes that session.
	PlaceDetails(ctx context.Context, request *PlaceDetailsRequest) (*Place, error)
}

// Client is the root Google Maps Platform client.
type Client interface {
	Geocoding() GeocodingClient
	Elevation() ElevationClient
	TimeZone() TimeZoneClient
	Places() PlacesClient
}
