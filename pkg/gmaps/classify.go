package gmaps

import (
	"errors"
	"net/http"
)

// Classification tags a failure as retryable or not. It is a judgement
// about an existing error, not a new error type; the original error is
// what callers see.
type Classification int

const (
	// Permanent failures will not succeed without changing the request or
	// waiting for external state to change.
	Permanent Classification = iota
	// Transient failures may succeed if the same request is retried
	// unchanged.
	Transient
)

// String returns the classification name.
func (c Classification) String() string {
	if c == Transient {
		return "transient"
	}

	return "permanent"
}

// transientCodes is the canonical-code subset eligible for retries. The
// remaining eleven codes, CodeOK included, classify as Permanent.
var transientCodes = map[Code]bool{
	CodeCancelled:         true,
	CodeUnknown:           true,
	CodeDeadlineExceeded:  true,
	CodeResourceExhausted: true,
	CodeAborted:           true,
	CodeUnavailable:       true,
}

// Classify maps any failure produced by the request pipeline to Transient
// or Permanent. It is total: every error has exactly one classification,
// and errors of unrecognized shape default to Permanent so that unknown
// failures are surfaced rather than retried blindly.
//
// The rules, layer by layer:
//
//   - Transport failures (no HTTP response): Transient.
//   - HTTP 5xx and 429 without a structured body: Transient; any other
//     non-2xx status: Permanent.
//   - Legacy body status: only UNKNOWN_ERROR is Transient.
//   - Canonical codes: UNAVAILABLE, RESOURCE_EXHAUSTED, ABORTED,
//     DEADLINE_EXCEEDED, CANCELLED and UNKNOWN are Transient.
//   - Response decode failures: Permanent.
func Classify(err error) Classification {
	transportErr := &TransportError{}
	if errors.As(err, &transportErr) {
		return Transient
	}

	httpErr := &HTTPError{}
	if errors.As(err, &httpErr) {
		if httpErr.StatusCode >= http.StatusInternalServerError || httpErr.StatusCode == http.StatusTooManyRequests {
			return Transient
		}

		return Permanent
	}

	statusErr := &StatusError{}
	if errors.As(err, &statusErr) {
		if statusErr.Status == StatusUnknownError {
			return Transient
		}

		return Permanent
	}

	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		if transientCodes[apiErr.Code] {
			return Transient
		}

		return Permanent
	}

	return Permanent
}

// IsTransient reports whether the error classifies as Transient.
func IsTransient(err error) bool {
	return Classify(err) == Transient
}
