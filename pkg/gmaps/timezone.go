package gmaps

import (
	"net/url"
	"strconv"
	"time"
)

// TimeZoneRequest asks the Time Zone API for time zone data at a
// coordinate and instant.
type TimeZoneRequest struct {
	// Location is the coordinate to look up.
	Location *LatLng `json:"location" yaml:"location"`
	// Timestamp is the instant used to resolve daylight-saving offsets.
	// The zero time means "now" and is filled in at execution.
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	// Language is a BCP-47 language code for the time zone name.
	Language string `json:"language,omitempty" yaml:"language,omitempty"`
}

// Validate reports caller misuse before any network activity.
func (r *TimeZoneRequest) Validate() error {
	if r.Location == nil {
		return ErrLocationRequired
	}

	return nil
}

// QueryValues renders the request as URL query parameters.
func (r *TimeZoneRequest) QueryValues() url.Values {
	timestamp := r.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	query := url.Values{}
	if r.Location != nil {
		query.Set("location", r.Location.String())
	}

	query.Set("timestamp", strconv.FormatInt(timestamp.Unix(), 10))

	if r.Language != "" {
		query.Set("language", r.Language)
	}

	return query
}

// TimeZoneResponse is the decoded Time Zone API response.
type TimeZoneResponse struct {
	// DstOffset is the daylight-saving offset in seconds.
	DstOffset int `json:"dstOffset" yaml:"dstOffset"`
	// RawOffset is the UTC offset in seconds, daylight saving excluded.
	RawOffset int `json:"rawOffset" yaml:"rawOffset"`
	// TimeZoneID is an IANA time zone identifier like "America/Toronto".
	TimeZoneID string `json:"timeZoneId" yaml:"timeZoneId"`
	// TimeZoneName is the long-form display name.
	TimeZoneName string `json:"timeZoneName" yaml:"timeZoneName"`
}
