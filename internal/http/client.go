// Package http is the wire transport: it builds one HTTP request, sends
// it, and reads the body. It performs no retries, no rate limiting, and
// no interpretation of service errors; those belong to the layers above.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/geosuite-io/gmaps-client/internal/constants"
	"github.com/geosuite-io/gmaps-client/pkg/gmaps"
)

// Request describes one HTTP request to be sent.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers http.Header
	// Body is JSON-marshalled when non-nil.
	Body interface{}
}

// Response is the raw result of one HTTP exchange.
type Response struct {
	StatusCode int
	Status     string
	Headers    http.Header
	Body       []byte
}

// Client sends requests against a single base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	logger     gmaps.Logger
}

// NewClient builds a transport for the given base URL. A nil httpClient
// falls back to net/http defaults with a 30s timeout.
func NewClient(baseURL string, httpClient *http.Client, userAgent string, logger gmaps.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: constants.DefaultHTTPTimeout}
	}

	if userAgent == "" {
		userAgent = constants.DefaultUserAgent
	}

	if logger == nil {
		logger = gmaps.NoopLogger{}
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		userAgent:  userAgent,
		logger:     logger,
	}
}

// Do performs one HTTP exchange. Connection-level failures come back as
// *gmaps.TransportError; any HTTP response, success or not, comes back as
// a Response with a nil error so the caller can interpret the status and
// body.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var body io.Reader

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	for key, values := range req.Headers {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	c.logger.Debug("API request", map[string]interface{}{
		"method": req.Method,
		"path":   req.Path,
	})

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &gmaps.TransportError{Err: err}
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &gmaps.TransportError{Err: err}
	}

	c.logger.Debug("API response", map[string]interface{}{
		"method":      req.Method,
		"path":        req.Path,
		"status_code": httpResp.StatusCode,
	})

	return &Response{
		StatusCode: httpResp.StatusCode,
		Status:     httpResp.Status,
		Headers:    httpResp.Header,
		Body:       respBody,
	}, nil
}

// Get performs a GET exchange.
func (c *Client) Get(ctx context.Context, path string, query url.Values, headers http.Header) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:  http.MethodGet,
		Path:    path,
		Query:   query,
		Headers: headers,
	})
}

// Post performs a POST exchange with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}, headers http.Header) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:  http.MethodPost,
		Path:    path,
		Headers: headers,
		Body:    body,
	})
}
