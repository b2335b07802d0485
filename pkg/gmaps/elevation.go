package gmaps

import "net/url"

// ElevationRequest asks the Elevation API for elevation samples at the
// given coordinates.
type ElevationRequest struct {
	// Locations are the points to sample. At least one is required.
	Locations []LatLng `json:"locations" yaml:"locations"`
}

// Validate reports caller misuse before any network activity.
func (r *ElevationRequest) Validate() error {
	if len(r.Locations) == 0 {
		return ErrLocationRequired
	}

	return nil
}

// QueryValues renders the request as URL query parameters.
func (r *ElevationRequest) QueryValues() url.Values {
	query := url.Values{}
	query.Set("locations", JoinLatLngs(r.Locations))

	return query
}

// ElevationResponse is the decoded Elevation API response.
type ElevationResponse struct {
	Results []ElevationResult `json:"results" yaml:"results"`
}
