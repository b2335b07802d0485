package gmaps_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/geosuite-io/gmaps-client/pkg/gmaps"
	"github.com/stretchr/testify/assert"
)

func TestClassify_LegacyStatuses(t *testing.T) {
	t.Parallel()

	permanentStatuses := []gmaps.Status{
		gmaps.StatusZeroResults,
		gmaps.StatusOverQueryLimit,
		gmaps.StatusOverDailyLimit,
		gmaps.StatusRequestDenied,
		gmaps.StatusInvalidRequest,
		gmaps.StatusNotFound,
		gmaps.StatusMaxWaypointsExceeded,
		gmaps.StatusMaxRouteLengthExceeded,
	}

	for _, status := range permanentStatuses {
		status := status
		t.Run(string(status), func(t *testing.T) {
			t.Parallel()

			err := &gmaps.StatusError{Status: status}
			assert.Equal(t, gmaps.Permanent, gmaps.Classify(err))
		})
	}

	t.Run("UNKNOWN_ERROR is transient", func(t *testing.T) {
		t.Parallel()

		err := &gmaps.StatusError{Status: gmaps.StatusUnknownError}
		assert.Equal(t, gmaps.Transient, gmaps.Classify(err))
	})
}

func TestClassify_CanonicalCodes(t *testing.T) {
	t.Parallel()

	transientCodes := []gmaps.Code{
		gmaps.CodeCancelled,
		gmaps.CodeUnknown,
		gmaps.CodeDeadlineExceeded,
		gmaps.CodeResourceExhausted,
		gmaps.CodeAborted,
		gmaps.CodeUnavailable,
	}

	permanentCodes := []gmaps.Code{
		gmaps.CodeOK,
		gmaps.CodeInvalidArgument,
		gmaps.CodeNotFound,
		gmaps.CodeAlreadyExists,
		gmaps.CodePermissionDenied,
		gmaps.CodeFailedPrecondition,
		gmaps.CodeOutOfRange,
		gmaps.CodeUnimplemented,
		gmaps.CodeInternal,
		gmaps.CodeDataLoss,
		gmaps.CodeUnauthenticated,
	}

	for _, code := range transientCodes {
		code := code
		t.Run(code.String()+" is transient", func(t *testing.T) {
			t.Parallel()

			err := &gmaps.APIError{Code: code, Status: code.String()}
			assert.Equal(t, gmaps.Transient, gmaps.Classify(err))
		})
	}

	for _, code := range permanentCodes {
		code := code
		t.Run(code.String()+" is permanent", func(t *testing.T) {
			t.Parallel()

			err := &gmaps.APIError{Code: code, Status: code.String()}
			assert.Equal(t, gmaps.Permanent, gmaps.Classify(err))
		})
	}
}

func TestClassify_HTTPStatuses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		statusCode int
		expected   gmaps.Classification
	}{
		{statusCode: 500, expected: gmaps.Transient},
		{statusCode: 502, expected: gmaps.Transient},
		{statusCode: 503, expected: gmaps.Transient},
		{statusCode: 504, expected: gmaps.Transient},
		{statusCode: 429, expected: gmaps.Transient},
		{statusCode: 400, expected: gmaps.Permanent},
		{statusCode: 401, expected: gmaps.Permanent},
		{statusCode: 403, expected: gmaps.Permanent},
		{statusCode: 404, expected: gmaps.Permanent},
		{statusCode: 418, expected: gmaps.Permanent},
	}

	for _, test := range tests {
		test := test
		t.Run(fmt.Sprintf("HTTP %d", test.statusCode), func(t *testing.T) {
			t.Parallel()

			err := &gmaps.HTTPError{StatusCode: test.statusCode}
			assert.Equal(t, test.expected, gmaps.Classify(err))
		})
	}
}

func TestClassify_TransportAndDecode(t *testing.T) {
	t.Parallel()

	t.Run("transport failures are transient", func(t *testing.T) {
		t.Parallel()

		err := &gmaps.TransportError{Err: errors.New("connection refused")}
		assert.Equal(t, gmaps.Transient, gmaps.Classify(err))
	})

	t.Run("decode failures are permanent", func(t *testing.T) {
		t.Parallel()

		err := &gmaps.DecodeError{Err: errors.New("unexpected end of JSON input")}
		assert.Equal(t, gmaps.Permanent, gmaps.Classify(err))
	})

	t.Run("wrapped errors keep their classification", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("searching places: %w", &gmaps.TransportError{Err: errors.New("dial tcp: timeout")})
		assert.Equal(t, gmaps.Transient, gmaps.Classify(err))
	})

	t.Run("unrecognized errors default to permanent", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, gmaps.Permanent, gmaps.Classify(errors.New("some error")))
	})
}

func TestIsTransient(t *testing.T) {
	t.Parallel()

	assert.True(t, gmaps.IsTransient(&gmaps.TransportError{Err: errors.New("reset by peer")}))
	assert.False(t, gmaps.IsTransient(&gmaps.StatusError{Status: gmaps.StatusRequestDenied}))
}
