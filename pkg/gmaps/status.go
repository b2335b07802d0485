package gmaps

// Status is the closed set of status strings returned in the body of
// legacy-generation endpoints (Geocoding, Elevation, Time Zone, legacy
// Places). StatusOK never reaches error handling; it marks success.
type Status string

const (
	StatusOK                     Status = "OK"
	StatusZeroResults            Status = "ZERO_RESULTS"
	StatusOverQueryLimit         Status = "OVER_QUERY_LIMIT"
	StatusOverDailyLimit         Status = "OVER_DAILY_LIMIT"
	StatusRequestDenied          Status = "REQUEST_DENIED"
	StatusInvalidRequest         Status = "INVALID_REQUEST"
	StatusNotFound               Status = "NOT_FOUND"
	StatusMaxWaypointsExceeded   Status = "MAX_WAYPOINTS_EXCEEDED"
	StatusMaxRouteLengthExceeded Status = "MAX_ROUTE_LENGTH_EXCEEDED"
	StatusUnknownError           Status = "UNKNOWN_ERROR"
)

// Code is a canonical gRPC status code as used by new-generation endpoints
// following the google.rpc.Status error model.
type Code int

const (
	CodeOK                 Code = 0
	CodeCancelled          Code = 1
	CodeUnknown            Code = 2
	CodeInvalidArgument    Code = 3
	CodeDeadlineExceeded   Code = 4
	CodeNotFound           Code = 5
	CodeAlreadyExists      Code = 6
	CodePermissionDenied   Code = 7
	CodeResourceExhausted  Code = 8
	CodeFailedPrecondition Code = 9
	CodeAborted            Code = 10
	CodeOutOfRange         Code = 11
	CodeUnimplemented      Code = 12
	CodeInternal           Code = 13
	CodeUnavailable        Code = 14
	CodeDataLoss           Code = 15
	CodeUnauthenticated    Code = 16
)

// String returns the canonical status name for the code.
func (c Code) String() string {
	switch c {
	case CodeOK:
		return "OK"
	case CodeCancelled:
		return "CANCELLED"
	case CodeUnknown:
		return "UNKNOWN"
	case CodeInvalidArgument:
		return "INVALID_ARGUMENT"
	case CodeDeadlineExceeded:
		return "DEADLINE_EXCEEDED"
	case CodeNotFound:
		return "NOT_FOUND"
	case CodeAlreadyExists:
		return "ALREADY_EXISTS"
	case CodePermissionDenied:
		return "PERMISSION_DENIED"
	case CodeResourceExhausted:
		return "RESOURCE_EXHAUSTED"
	case CodeFailedPrecondition:
		return "FAILED_PRECONDITION"
	case CodeAborted:
		return "ABORTED"
	case CodeOutOfRange:
		return "OUT_OF_RANGE"
	case CodeUnimplemented:
		return "UNIMPLEMENTED"
	case CodeInternal:
		return "INTERNAL"
	case CodeUnavailable:
		return "UNAVAILABLE"
	case CodeDataLoss:
		return "DATA_LOSS"
	case CodeUnauthenticated:
		return "UNAUTHENTICATED"
	default:
		return "UNKNOWN_CODE"
	}
}
