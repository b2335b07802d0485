package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/geosuite-io/gmaps-client/pkg/gmaps"
	"github.com/geosuite-io/gmaps-client/pkg/gmapsclient"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Common static errors used throughout the commands package.
var (
	ErrAPIKeyRequired   = errors.New("API key is required (use --key or set GMAPS_KEY)")
	ErrInvalidLatLng    = errors.New("invalid coordinate, expected \"lat,lng\"")
	ErrNoLocationsGiven = errors.New("at least one location is required")
)

// newClient builds a library client from the CLI configuration.
func newClient() (gmaps.Client, error) {
	key := viper.GetString("key")
	if key == "" {
		return nil, ErrAPIKeyRequired
	}

	config := &gmaps.Config{
		APIKey:        key,
		BaseURL:       viper.GetString("base-url"),
		PlacesBaseURL: viper.GetString("places-base-url"),
	}

	// Optional overall throttle from the config file, e.g.
	// rate-limit: {requests: 50, per: 1s}.
	if requests := viper.GetInt("rate-limit.requests"); requests > 0 {
		per := viper.GetDuration("rate-limit.per")
		if per <= 0 {
			per = time.Second
		}

		config.WithRateLimit(gmaps.ApiAll, requests, per)
	}

	return gmapsclient.New(config)
}

// parseLatLng parses a "lat,lng" argument.
func parseLatLng(value string) (gmaps.LatLng, error) {
	parts := strings.SplitN(value, ",", 2)
	if len(parts) != 2 {
		return gmaps.LatLng{}, fmt.Errorf("%w: %q", ErrInvalidLatLng, value)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return gmaps.LatLng{}, fmt.Errorf("%w: %q", ErrInvalidLatLng, value)
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return gmaps.LatLng{}, fmt.Errorf("%w: %q", ErrInvalidLatLng, value)
	}

	return gmaps.LatLng{Lat: lat, Lng: lng}, nil
}

// renderStructured writes data as JSON or YAML when the configured output
// format asks for it. It reports whether it handled the output.
func renderStructured(data interface{}) (bool, error) {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return true, encoder.Encode(data)
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		return true, encoder.Encode(data)
	default:
		return false, nil
	}
}
