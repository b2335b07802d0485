package client

import (
	"context"
	"fmt"

	"github.com/geosuite-io/gmaps-client/internal/constants"
	inthttp "github.com/geosuite-io/gmaps-client/internal/http"
	"github.com/geosuite-io/gmaps-client/pkg/gmaps"
)

// TimeZoneClient implements gmaps.TimeZoneClient.
type TimeZoneClient struct {
	pipeline  *pipeline
	transport *inthttp.Client
}

var timeZoneScopes = []gmaps.Api{gmaps.ApiAll, gmaps.ApiTimeZone}

// TimeZone implements gmaps.TimeZoneClient.TimeZone.
func (c *TimeZoneClient) TimeZone(ctx context.Context, request *gmaps.TimeZoneRequest) (*gmaps.TimeZoneResponse, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	// ZERO_RESULTS here means no time zone data exists for the location,
	// which is an error for the caller, not an empty success.
	response, err := executeLegacy[gmaps.TimeZoneResponse](
		ctx, c.pipeline, c.transport, "time zone",
		timeZoneScopes, constants.TimeZonePath, request.QueryValues(), false,
	)
	if err != nil {
		return nil, fmt.Errorf("fetching time zone: %w", err)
	}

	return response, nil
}
