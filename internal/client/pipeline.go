package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	inthttp "github.com/geosuite-io/gmaps-client/internal/http"
	"github.com/geosuite-io/gmaps-client/internal/constants"
	"github.com/geosuite-io/gmaps-client/internal/ratelimit"
	"github.com/geosuite-io/gmaps-client/internal/retry"
	"github.com/geosuite-io/gmaps-client/pkg/gmaps"
)

// pipeline composes the shared request machinery: rate-limit admission,
// then the retry loop around one transport exchange plus decode. It owns
// no state beyond wiring; all per-call state lives on the stack of the
// call itself.
type pipeline struct {
	limiter *ratelimit.Limiter
	retrier *retry.Executor
	logger  gmaps.Logger
	apiKey  string
}

// httpError converts a non-2xx response without a structured service
// error into the error taxonomy.
func httpError(resp *inthttp.Response) error {
	return &gmaps.HTTPError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       resp.Body,
	}
}

// legacyEnvelope is the status header every legacy-generation body
// carries alongside its payload.
type legacyEnvelope struct {
	Status       gmaps.Status `json:"status"`
	ErrorMessage string       `json:"error_message"`
}

// executeLegacy runs one logical call against a legacy-generation
// endpoint: admit against the rate limiter once, then retry the
// GET-decode-check sequence until success or a permanent classification.
// The API key travels as the "key" query parameter.
//
// zeroResultsOK controls whether a ZERO_RESULTS status decodes as an
// empty success (search-style endpoints) or surfaces as a StatusError.
func executeLegacy[T any](
	ctx context.Context,
	p *pipeline,
	transport *inthttp.Client,
	name string,
	scopes []gmaps.Api,
	path string,
	query url.Values,
	zeroResultsOK bool,
) (*T, error) {
	if err := p.limiter.Wait(ctx, scopes); err != nil {
		return nil, err
	}

	query.Set("key", p.apiKey)

	return retry.Do(ctx, p.retrier, name, func(ctx context.Context) (*T, error) {
		resp, err := transport.Get(ctx, path, query, nil)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, httpError(resp)
		}

		var envelope legacyEnvelope
		if err := json.Unmarshal(resp.Body, &envelope); err != nil {
			return nil, &gmaps.DecodeError{Err: err}
		}

		if envelope.Status != gmaps.StatusOK {
			if !zeroResultsOK || envelope.Status != gmaps.StatusZeroResults {
				return nil, &gmaps.StatusError{
					Status:  envelope.Status,
					Message: envelope.ErrorMessage,
				}
			}
		}

		var result T
		if err := json.Unmarshal(resp.Body, &result); err != nil {
			return nil, &gmaps.DecodeError{Err: err}
		}

		return &result, nil
	})
}

// executePlaces runs one logical call against a new-generation endpoint.
// The API key travels as the X-Goog-Api-Key header; errors arrive as
// non-2xx responses carrying a google.rpc.Status body.
func executePlaces[T any](
	ctx context.Context,
	p *pipeline,
	transport *inthttp.Client,
	name string,
	scopes []gmaps.Api,
	req *inthttp.Request,
) (*T, error) {
	if err := p.limiter.Wait(ctx, scopes); err != nil {
		return nil, err
	}

	if req.Headers == nil {
		req.Headers = http.Header{}
	}

	req.Headers.Set(constants.HeaderAPIKey, p.apiKey)

	return retry.Do(ctx, p.retrier, name, func(ctx context.Context) (*T, error) {
		resp, err := transport.Do(ctx, req)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			if apiErr, ok := gmaps.ParseAPIError(resp.Body); ok {
				return nil, apiErr
			}

			return nil, httpError(resp)
		}

		var result T
		if err := json.Unmarshal(resp.Body, &result); err != nil {
			return nil, &gmaps.DecodeError{Err: err}
		}

		return &result, nil
	})
}
