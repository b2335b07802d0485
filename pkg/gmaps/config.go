package gmaps

import (
	"net/http"
	"time"
)

// RateLimit caps how many requests may be admitted per window for one Api
// scope.
type RateLimit struct {
	// Requests is the admission budget per window.
	Requests int
	// Per is the window duration.
	Per time.Duration
}

// Config carries the client configuration consumed by
// pkg/gmapsclient.New.
type Config struct {
	// APIKey authenticates every request. Legacy endpoints receive it as
	// the "key" query parameter; new-generation endpoints as the
	// X-Goog-Api-Key header.
	APIKey string

	// BaseURL overrides the host for legacy endpoints
	// (default "https://maps.googleapis.com").
	BaseURL string
	// PlacesBaseURL overrides the host for new-generation Places endpoints
	// (default "https://places.googleapis.com").
	PlacesBaseURL string

	// HTTPClient is the underlying transport. net/http defaults with a
	// 30s timeout are used when nil. Per-attempt timeouts belong here;
	// if one fires it is treated as a transient transport failure.
	HTTPClient *http.Client

	// Backoff tunes the retry schedule. DefaultBackoffPolicy when nil.
	Backoff *BackoffPolicy

	// RateLimits configures per-scope admission windows. A scope with no
	// entry is not limited. An ApiAll entry is observed in addition to
	// the per-endpoint entry.
	RateLimits map[Api]RateLimit

	// Logger receives retry, throttling, and HTTP diagnostics. Silent
	// when nil.
	Logger Logger

	// UserAgent overrides the default User-Agent header.
	UserAgent string
}

// WithRateLimit sets the admission window for one Api scope and returns
// the config for chaining.
func (c *Config) WithRateLimit(api Api, requests int, per time.Duration) *Config {
	if c.RateLimits == nil {
		c.RateLimits = make(map[Api]RateLimit)
	}

	c.RateLimits[api] = RateLimit{Requests: requests, Per: per}

	return c
}
