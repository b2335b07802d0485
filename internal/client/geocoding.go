package client

import (
	"context"
	"fmt"

	"github.com/geosuite-io/gmaps-client/internal/constants"
	inthttp "github.com/geosuite-io/gmaps-client/internal/http"
	"github.com/geosuite-io/gmaps-client/pkg/gmaps"
)

// GeocodingClient implements gmaps.GeocodingClient.
type GeocodingClient struct {
	pipeline  *pipeline
	transport *inthttp.Client
}

var geocodingScopes = []gmaps.Api{gmaps.ApiAll, gmaps.ApiGeocoding}

// Geocode implements gmaps.GeocodingClient.Geocode.
func (c *GeocodingClient) Geocode(ctx context.Context, request *gmaps.GeocodingRequest) (*gmaps.GeocodingResponse, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	response, err := executeLegacy[gmaps.GeocodingResponse](
		ctx, c.pipeline, c.transport, "geocode",
		geocodingScopes, constants.GeocodingPath, request.QueryValues(), true,
	)
	if err != nil {
		return nil, fmt.Errorf("geocoding address: %w", err)
	}

	return response, nil
}

// ReverseGeocode implements gmaps.GeocodingClient.ReverseGeocode.
func (c *GeocodingClient) ReverseGeocode(ctx context.Context, request *gmaps.ReverseGeocodingRequest) (*gmaps.GeocodingResponse, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	response, err := executeLegacy[gmaps.GeocodingResponse](
		ctx, c.pipeline, c.transport, "reverse geocode",
		geocodingScopes, constants.GeocodingPath, request.QueryValues(), true,
	)
	if err != nil {
		return nil, fmt.Errorf("reverse geocoding location: %w", err)
	}

	return response, nil
}
