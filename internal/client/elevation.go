package client

import (
	"context"
	"fmt"

	"github.com/geosuite-io/gmaps-client/internal/constants"
	inthttp "github.com/geosuite-io/gmaps-client/internal/http"
	"github.com/geosuite-io/gmaps-client/pkg/gmaps"
)

// ElevationClient implements gmaps.ElevationClient.
type ElevationClient struct {
	pipeline  *pipeline
	transport *inthttp.Client
}

var elevationScopes = []gmaps.Api{gmaps.ApiAll, gmaps.ApiElevation}

// Elevation implements gmaps.ElevationClient.Elevation.
func (c *ElevationClient) Elevation(ctx context.Context, request *gmaps.ElevationRequest) (*gmaps.ElevationResponse, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	response, err := executeLegacy[gmaps.ElevationResponse](
		ctx, c.pipeline, c.transport, "elevation",
		elevationScopes, constants.ElevationPath, request.QueryValues(), false,
	)
	if err != nil {
		return nil, fmt.Errorf("fetching elevation: %w", err)
	}

	return response, nil
}
