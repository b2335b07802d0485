package gmaps

// Api identifies a Google Maps Platform web service for rate-limit keying.
//
// Every request belongs to the wildcard ApiAll scope plus one or more
// endpoint-specific scopes; limits configured for ApiAll are observed in
// addition to the per-endpoint limits.
type Api int

const (
	// ApiAll applies to every request regardless of endpoint.
	ApiAll Api = iota
	ApiDirections
	ApiDistanceMatrix
	ApiElevation
	ApiGeocoding
	ApiTimeZone
	ApiPlaces
	ApiRoads
	ApiAddressValidation
)

// String returns the API name as presented to users in logs and CLI output.
func (a Api) String() string {
	switch a {
	case ApiAll:
		return "All"
	case ApiDirections:
		return "Directions"
	case ApiDistanceMatrix:
		return "Distance Matrix"
	case ApiElevation:
		return "Elevation"
	case ApiGeocoding:
		return "Geocoding"
	case ApiTimeZone:
		return "Time Zone"
	case ApiPlaces:
		return "Places"
	case ApiRoads:
		return "Roads"
	case ApiAddressValidation:
		return "Address Validation"
	default:
		return "Unknown"
	}
}
