package gmaps

import (
	"net/url"
	"strings"
)

// GeocodingRequest asks the Geocoding API to resolve an address into
// coordinates. At least Address or one Component must be set.
type GeocodingRequest struct {
	// Address is the street address or plus code to geocode.
	Address string `json:"address,omitempty" yaml:"address,omitempty"`
	// Components restricts results by component filters, for example
	// {"country": "CA", "postal_code": "K1A"}.
	Components map[string]string `json:"components,omitempty" yaml:"components,omitempty"`
	// Bounds biases results toward a viewport given as
	// "southwest-lat,southwest-lng|northeast-lat,northeast-lng".
	Bounds string `json:"bounds,omitempty" yaml:"bounds,omitempty"`
	// Language is a BCP-47 language code for result text.
	Language string `json:"language,omitempty" yaml:"language,omitempty"`
	// Region is a ccTLD region-biasing code.
	Region string `json:"region,omitempty" yaml:"region,omitempty"`
}

// Validate reports caller misuse before any network activity.
func (r *GeocodingRequest) Validate() error {
	if r.Address == "" && len(r.Components) == 0 {
		return ErrAddressRequired
	}

	return nil
}

// QueryValues renders the request as URL query parameters.
func (r *GeocodingRequest) QueryValues() url.Values {
	query := url.Values{}
	if r.Address != "" {
		query.Set("address", r.Address)
	}

	if len(r.Components) > 0 {
		parts := make([]string, 0, len(r.Components))
		for component, value := range r.Components {
			parts = append(parts, component+":"+value)
		}

		query.Set("components", strings.Join(parts, "|"))
	}

	if r.Bounds != "" {
		query.Set("bounds", r.Bounds)
	}

	if r.Language != "" {
		query.Set("language", r.Language)
	}

	if r.Region != "" {
		query.Set("region", r.Region)
	}

	return query
}

// ReverseGeocodingRequest asks the Geocoding API to resolve coordinates
// into addresses.
type ReverseGeocodingRequest struct {
	// Location is the coordinate to reverse-geocode.
	Location *LatLng `json:"location" yaml:"location"`
	// ResultTypes filters results to the given address types.
	ResultTypes []string `json:"result_types,omitempty" yaml:"result_types,omitempty"`
	// Language is a BCP-47 language code for result text.
	Language string `json:"language,omitempty" yaml:"language,omitempty"`
}

// Validate reports caller misuse before any network activity.
func (r *ReverseGeocodingRequest) Validate() error {
	if r.Location == nil {
		return ErrLocationRequired
	}

	return nil
}

// QueryValues renders the request as URL query parameters.
func (r *ReverseGeocodingRequest) QueryValues() url.Values {
	query := url.Values{}
	if r.Location != nil {
		query.Set("latlng", r.Location.String())
	}

	if len(r.ResultTypes) > 0 {
		query.Set("result_type", strings.Join(r.ResultTypes, "|"))
	}

	if r.Language != "" {
		query.Set("language", r.Language)
	}

	return query
}

// GeocodingResponse is the decoded Geocoding API response. A ZERO_RESULTS
// status decodes to an empty Results slice, not an error.
type GeocodingResponse struct {
	Results []GeocodingResult `json:"results" yaml:"results"`
}
