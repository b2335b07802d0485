package gmaps

import (
	"fmt"
	"strings"
)

// LatLng is a coordinate pair as used by legacy endpoints.
type LatLng struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// String renders the coordinate in the "lat,lng" form legacy endpoints
// accept in query strings.
func (l LatLng) String() string {
	return fmt.Sprintf("%g,%g", l.Lat, l.Lng)
}

// JoinLatLngs renders coordinates as a pipe-separated query value.
func JoinLatLngs(locations []LatLng) string {
	parts := make([]string, 0, len(locations))
	for _, location := range locations {
		parts = append(parts, location.String())
	}

	return strings.Join(parts, "|")
}

// Location is a coordinate pair as used by new-generation endpoints.
type Location struct {
	Latitude  float64 `json:"latitude"  yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// Circle is a circular region around a center point.
type Circle struct {
	Center Location `json:"center" yaml:"center"`
	// Radius is in meters, between 0.0 and 50000.0.
	Radius float64 `json:"radius" yaml:"radius"`
}

// Viewport is a rectangular region given by two diagonally opposite
// corners.
type Viewport struct {
	Low  Location `json:"low"  yaml:"low"`
	High Location `json:"high" yaml:"high"`
}

// LocationBias influences result ranking toward a region without
// excluding results outside it.
type LocationBias struct {
	Circle    *Circle   `json:"circle,omitempty"    yaml:"circle,omitempty"`
	Rectangle *Viewport `json:"rectangle,omitempty" yaml:"rectangle,omitempty"`
}

// LocationRestriction hard-limits results to a region.
type LocationRestriction struct {
	Circle    *Circle   `json:"circle,omitempty"    yaml:"circle,omitempty"`
	Rectangle *Viewport `json:"rectangle,omitempty" yaml:"rectangle,omitempty"`
}

// LocalizedText is a string together with its BCP-47 language code.
type LocalizedText struct {
	Text         string `json:"text"                   yaml:"text"`
	LanguageCode string `json:"languageCode,omitempty" yaml:"languageCode,omitempty"`
}

// AddressComponent is one granular part of a formatted address.
type AddressComponent struct {
	LongName  string   `json:"long_name"  yaml:"long_name"`
	ShortName string   `json:"short_name" yaml:"short_name"`
	Types     []string `json:"types"      yaml:"types"`
}

// Geometry carries the location data of a geocoding result.
type Geometry struct {
	Location     LatLng `json:"location"      yaml:"location"`
	LocationType string `json:"location_type" yaml:"location_type"`
}

// GeocodingResult is a single match returned by the Geocoding API.
type GeocodingResult struct {
	AddressComponents []AddressComponent `json:"address_components" yaml:"address_components"`
	FormattedAddress  string             `json:"formatted_address"  yaml:"formatted_address"`
	Geometry          Geometry           `json:"geometry"           yaml:"geometry"`
	PlaceID           string             `json:"place_id"           yaml:"place_id"`
	Types             []string           `json:"types"              yaml:"types"`
	PartialMatch      bool               `json:"partial_match,omitempty" yaml:"partial_match,omitempty"`
}

// ElevationResult is a single sample returned by the Elevation API.
type ElevationResult struct {
	Elevation  float64 `json:"elevation"  yaml:"elevation"`
	Location   LatLng  `json:"location"   yaml:"location"`
	Resolution float64 `json:"resolution" yaml:"resolution"`
}

// Place is a place as returned by the new-generation Places endpoints.
// Fields outside the request's field mask are zero.
type Place struct {
	ID               string        `json:"id,omitempty"               yaml:"id,omitempty"`
	Name             string        `json:"name,omitempty"             yaml:"name,omitempty"`
	DisplayName      LocalizedText `json:"displayName,omitempty"      yaml:"displayName,omitempty"`
	FormattedAddress string        `json:"formattedAddress,omitempty" yaml:"formattedAddress,omitempty"`
	Location         Location      `json:"location,omitempty"         yaml:"location,omitempty"`
	Types            []string      `json:"types,omitempty"            yaml:"types,omitempty"`
	Rating           float64       `json:"rating,omitempty"           yaml:"rating,omitempty"`
	UserRatingCount  int           `json:"userRatingCount,omitempty"  yaml:"userRatingCount,omitempty"`
}

// FormattableText is prediction text with match metadata stripped.
type FormattableText struct {
	Text string `json:"text" yaml:"text"`
}

// PlacePrediction is an autocomplete suggestion pointing at a concrete
// place.
type PlacePrediction struct {
	Place   string          `json:"place"   yaml:"place"`
	PlaceID string          `json:"placeId" yaml:"placeId"`
	Text    FormattableText `json:"text"    yaml:"text"`
}

// QueryPrediction is an autocomplete suggestion for a free-text query.
type QueryPrediction struct {
	Text FormattableText `json:"text" yaml:"text"`
}

// Suggestion is one autocomplete result; exactly one field is set.
type Suggestion struct {
	PlacePrediction *PlacePrediction `json:"placePrediction,omitempty" yaml:"placePrediction,omitempty"`
	QueryPrediction *QueryPrediction `json:"queryPrediction,omitempty" yaml:"queryPrediction,omitempty"`
}
