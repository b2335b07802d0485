// Package client implements the gmaps.Client interface. Each endpoint
// client shares one pipeline: rate-limit admission, classification-driven
// retries, and typed decoding of both service generations.
package client

import (
	"strings"

	"github.com/geosuite-io/gmaps-client/internal/constants"
	inthttp "github.com/geosuite-io/gmaps-client/internal/http"
	"github.com/geosuite-io/gmaps-client/internal/ratelimit"
	"github.com/geosuite-io/gmaps-client/internal/retry"
	"github.com/geosuite-io/gmaps-client/pkg/gmaps"
)

// Client implements gmaps.Client.
type Client struct {
	geocoding gmaps.GeocodingClient
	elevation gmaps.ElevationClient
	timeZone  gmaps.TimeZoneClient
	places    gmaps.PlacesClient
}

// New wires a client from configuration. The rate limiter is owned here
// and passed by reference into every endpoint client; nothing is
// process-global.
func New(config *gmaps.Config) (*Client, error) {
	if config == nil {
		return nil, gmaps.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, gmaps.ErrAPIKeyRequired
	}

	logger := config.Logger
	if logger == nil {
		logger = gmaps.NoopLogger{}
	}

	policy := gmaps.DefaultBackoffPolicy()
	if config.Backoff != nil {
		policy = *config.Backoff
	}

	baseURL := strings.TrimSuffix(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	placesBaseURL := strings.TrimSuffix(config.PlacesBaseURL, "/")
	if placesBaseURL == "" {
		placesBaseURL = constants.DefaultPlacesBaseURL
	}

	legacyTransport := inthttp.NewClient(baseURL, config.HTTPClient, config.UserAgent, logger)
	placesTransport := inthttp.NewClient(placesBaseURL, config.HTTPClient, config.UserAgent, logger)

	p := &pipeline{
		limiter: ratelimit.New(config.RateLimits, logger),
		retrier: retry.New(policy, logger),
		logger:  logger,
		apiKey:  config.APIKey,
	}

	return &Client{
		geocoding: &GeocodingClient{pipeline: p, transport: legacyTransport},
		elevation: &ElevationClient{pipeline: p, transport: legacyTransport},
		timeZone:  &TimeZoneClient{pipeline: p, transport: legacyTransport},
		places:    &PlacesClient{pipeline: p, transport: placesTransport},
	}, nil
}

// Geocoding implements gmaps.Client.
func (c *Client) Geocoding() gmaps.GeocodingClient {
	return c.geocoding
}

// Elevation implements gmaps.Client.
func (c *Client) Elevation() gmaps.ElevationClient {
	return c.elevation
}

// TimeZone implements gmaps.Client.
func (c *Client) TimeZone() gmaps.TimeZoneClient {
	return c.timeZone
}

// Places implements gmaps.Client.
func (c *Client) Places() gmaps.PlacesClient {
	return c.places
}
