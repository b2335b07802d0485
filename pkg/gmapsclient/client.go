// Package gmapsclient constructs working Google Maps Platform clients
// from a gmaps.Config.
package gmapsclient

import (
	"github.com/geosuite-io/gmaps-client/internal/client"
	"github.com/geosuite-io/gmaps-client/pkg/gmaps"
)

// New builds a client. The only required field is Config.APIKey; every
// other field has a working default.
func New(config *gmaps.Config) (gmaps.Client, error) {
	return client.New(config)
}
