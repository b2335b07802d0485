package gmaps

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Static errors for caller misuse. These signal a programming error in
// request construction, are surfaced immediately, and are never retried.
var (
	ErrAPIKeyRequired       = errors.New("API key is required")
	ErrConfigRequired       = errors.New("config is required")
	ErrQueryRequired        = errors.New("query text is required")
	ErrAddressRequired      = errors.New("address or components are required")
	ErrLocationRequired     = errors.New("location is required")
	ErrInputRequired        = errors.New("input text is required")
	ErrPlaceIDRequired      = errors.New("place ID is required")
	ErrFieldMaskRequired    = errors.New("field mask is required")
	ErrNoNextPage           = errors.New("no next page available")
	ErrSessionRequired      = errors.New("session is required")
	ErrInvalidSessionToken  = errors.New("invalid session token")
	ErrPageSizeOutOfRange   = errors.New("page size must be between 1 and 20")
	ErrConflictingLocations = errors.New("location bias and location restriction are mutually exclusive")
)

// TransportError wraps a connection-level failure: the request never
// produced an HTTP response (DNS, dial, TLS, timeout, broken pipe).
type TransportError struct {
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure: %v", e.Err)
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// HTTPError represents a non-2xx HTTP response whose body did not carry a
// structured service error.
type HTTPError struct {
	StatusCode int    `json:"status_code" yaml:"status_code"`
	Status     string `json:"status"      yaml:"status"`
	Body       []byte `json:"-"           yaml:"-"`
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d %s", e.StatusCode, e.Status)
}

// StatusError represents a structured error from a legacy-generation
// endpoint: the service answered HTTP 200 with a non-OK status string in
// the response body.
type StatusError struct {
	Status  Status `json:"status"                  yaml:"status"`
	Message string `json:"error_message,omitempty" yaml:"error_message,omitempty"`
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Message == "" {
		return string(e.Status)
	}

	return fmt.Sprintf("%s: %s", e.Status, e.Message)
}

// APIError represents a structured error from a new-generation endpoint,
// following the google.rpc.Status model: a canonical code, a status name,
// and a developer-facing message.
type APIError struct {
	Code    Code   `json:"code"    yaml:"code"`
	Status  string `json:"status"  yaml:"status"`
	Message string `json:"message" yaml:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s (code: %d)", e.Status, e.Message, e.Code)
}

// DecodeError wraps a failure to decode a response body. The response was
// received intact, so retrying the same request cannot help.
type DecodeError struct {
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response: %v", e.Err)
}

// Unwrap returns the underlying cause.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// apiErrorEnvelope is the wire shape of a new-generation error body.
type apiErrorEnvelope struct {
	Error struct {
		Code    Code   `json:"code"`
		Status  string `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

// ParseAPIError decodes a new-generation error body into an APIError.
// It returns false when the body does not carry the expected envelope.
func ParseAPIError(data []byte) (*APIError, bool) {
	var envelope apiErrorEnvelope

	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, false
	}

	if envelope.Error.Status == "" && envelope.Error.Code == CodeOK {
		return nil, false
	}

	return &APIError{
		Code:    envelope.Error.Code,
		Status:  envelope.Error.Status,
		Message: envelope.Error.Message,
	}, true
}

// IsNotFound checks whether the error reports a missing resource in either
// error generation.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == CodeNotFound
	}

	statusErr := &StatusError{}
	if errors.As(err, &statusErr) {
		return statusErr.Status == StatusNotFound
	}

	return false
}

// IsRequestDenied checks whether the error reports an authorization failure
// in either error generation.
func IsRequestDenied(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == CodePermissionDenied || apiErr.Code == CodeUnauthenticated
	}

	statusErr := &StatusError{}
	if errors.As(err, &statusErr) {
		return statusErr.Status == StatusRequestDenied
	}

	return false
}

// IsOverQueryLimit checks whether the error reports quota exhaustion in
// either error generation.
func IsOverQueryLimit(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == CodeResourceExhausted
	}

	statusErr := &StatusError{}
	if errors.As(err, &statusErr) {
		return statusErr.Status == StatusOverQueryLimit || statusErr.Status == StatusOverDailyLimit
	}

	httpErr := &HTTPError{}
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == 429
	}

	return false
}
