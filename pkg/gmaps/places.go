package gmaps

import (
	"net/url"
	"strings"
)

// TextSearchRequest asks the Places Text Search endpoint for places
// matching a free-text query. The request is a plain value: it carries no
// client handle, so a stored copy can be re-issued later to continue
// pagination.
type TextSearchRequest struct {
	// Query is the text to search for, e.g. "pizza in New York".
	Query string `json:"textQuery" yaml:"textQuery"`
	// FieldMask lists the place fields to return, e.g.
	// "places.displayName". Sent as the X-Goog-FieldMask header, never in
	// the body. Required.
	FieldMask []string `json:"fieldMask" yaml:"fieldMask"`
	// LanguageCode is a BCP-47 language code for result text.
	LanguageCode string `json:"languageCode,omitempty" yaml:"languageCode,omitempty"`
	// PageSize caps results per page (1-20; service default 20).
	PageSize int `json:"pageSize,omitempty" yaml:"pageSize,omitempty"`
	// PageToken continues a previous search. Obtained from a response's
	// NextPageToken; all other parameters must match the original request.
	PageToken string `json:"pageToken,omitempty" yaml:"pageToken,omitempty"`
	// LocationBias favors results near a region. Mutually exclusive with
	// LocationRestriction.
	LocationBias *LocationBias `json:"locationBias,omitempty" yaml:"locationBias,omitempty"`
	// LocationRestriction hard-limits results to a region.
	LocationRestriction *LocationRestriction `json:"locationRestriction,omitempty" yaml:"locationRestriction,omitempty"`
	// IncludedType restricts results to one place type.
	IncludedType string `json:"includedType,omitempty" yaml:"includedType,omitempty"`
	// MinRating filters out places rated below this value (0.0-5.0).
	MinRating float64 `json:"minRating,omitempty" yaml:"minRating,omitempty"`
	// OpenNow filters to places open at query time.
	OpenNow bool `json:"openNow,omitempty" yaml:"openNow,omitempty"`
}

// Validate reports caller misuse before any network activity.
func (r *TextSearchRequest) Validate() error {
	if r.Query == "" {
		return ErrQueryRequired
	}

	if len(r.FieldMask) == 0 {
		return ErrFieldMaskRequired
	}

	if r.PageSize < 0 || r.PageSize > 20 {
		return ErrPageSizeOutOfRange
	}

	if r.LocationBias != nil && r.LocationRestriction != nil {
		return ErrConflictingLocations
	}

	return nil
}

// FieldMaskHeader renders the field mask as the X-Goog-FieldMask value.
func (r *TextSearchRequest) FieldMaskHeader() string {
	return strings.Join(r.FieldMask, ",")
}

// TextSearchResponse is the decoded Text Search response body.
type TextSearchResponse struct {
	Places []Place `json:"places" yaml:"places"`
	// NextPageToken is present when more results are available beyond this
	// page. Tokens are opaque and expire server-side; expiry is only
	// discovered by the error the follow-up request produces.
	NextPageToken string `json:"nextPageToken,omitempty" yaml:"nextPageToken,omitempty"`
}

// TextSearchPage pairs a Text Search response with a serializable snapshot
// of the request that produced it, so the next page can be fetched with
// every original parameter intact. The snapshot holds no transport handle
// and may be stored or marshalled freely.
type TextSearchPage struct {
	TextSearchResponse `yaml:",inline"`

	// Request is the snapshot of the originating request.
	Request TextSearchRequest `json:"request" yaml:"request"`
}

// HasNextPage reports whether a follow-up page can be requested.
func (p *TextSearchPage) HasNextPage() bool {
	return p.NextPageToken != ""
}

// NextRequest returns the stored request with only the page token
// replaced. It does not check HasNextPage.
func (p *TextSearchPage) NextRequest() TextSearchRequest {
	next := p.Request
	next.PageToken = p.NextPageToken

	return next
}

// AutocompleteRequest asks the Places Autocomplete endpoint for
// predictions matching partial input. Like TextSearchRequest it is a plain
// value snapshot.
type AutocompleteRequest struct {
	// Input is the text the user has typed so far.
	Input string `json:"input" yaml:"input"`
	// SessionToken groups the keystrokes of one autocomplete interaction
	// for billing. At most 36 URL-safe characters; it must be echoed
	// unchanged on every request of the session and on the terminal
	// place-details call. Generate one with NewSessionToken.
	SessionToken string `json:"sessionToken,omitempty" yaml:"sessionToken,omitempty"`
	// LanguageCode is a BCP-47 language code for prediction text.
	LanguageCode string `json:"languageCode,omitempty" yaml:"languageCode,omitempty"`
	// LocationBias favors predictions near a region.
	LocationBias *LocationBias `json:"locationBias,omitempty" yaml:"locationBias,omitempty"`
	// IncludedRegionCodes restricts predictions to the given regions.
	IncludedRegionCodes []string `json:"includedRegionCodes,omitempty" yaml:"includedRegionCodes,omitempty"`
}

// Validate reports caller misuse before any network activity.
func (r *AutocompleteRequest) Validate() error {
	if r.Input == "" {
		return ErrInputRequired
	}

	if r.SessionToken != "" && !ValidSessionToken(r.SessionToken) {
		return ErrInvalidSessionToken
	}

	return nil
}

// AutocompleteResponse is the decoded Autocomplete response body.
type AutocompleteResponse struct {
	Suggestions []Suggestion `json:"suggestions" yaml:"suggestions"`
}

// AutocompleteSession pairs an Autocomplete response with the snapshot of
// the request that produced it. Continuing the session reuses every stored
// parameter, the session token included, and overwrites only the input.
type AutocompleteSession struct {
	AutocompleteResponse `yaml:",inline"`

	// Request is the snapshot of the originating request.
	Request AutocompleteRequest `json:"request" yaml:"request"`
}

// ContinueWith returns the stored request with only the input replaced.
func (s *AutocompleteSession) ContinueWith(input string) AutocompleteRequest {
	next := s.Request
	next.Input = input

	return next
}

// PlaceDetailsRequest asks the Place Details endpoint for a single place.
// Passing the session token of an autocomplete sequence closes that
// session.
type PlaceDetailsRequest struct {
	// PlaceID identifies the place, e.g. "ChIJj61dQgK6j4AR4GeTYWZsKWw".
	PlaceID string `json:"placeId" yaml:"placeId"`
	// FieldMask lists the place fields to return. Required.
	FieldMask []string `json:"fieldMask" yaml:"fieldMask"`
	// SessionToken terminates the autocomplete session it belongs to.
	SessionToken string `json:"sessionToken,omitempty" yaml:"sessionToken,omitempty"`
	// LanguageCode is a BCP-47 language code for result text.
	LanguageCode string `json:"languageCode,omitempty" yaml:"languageCode,omitempty"`
}

// Validate reports caller misuse before any network activity.
func (r *PlaceDetailsRequest) Validate() error {
	if r.PlaceID == "" {
		return ErrPlaceIDRequired
	}

	if len(r.FieldMask) == 0 {
		return ErrFieldMaskRequired
	}

	if r.SessionToken != "" && !ValidSessionToken(r.SessionToken) {
		return ErrInvalidSessionToken
	}

	return nil
}

// FieldMaskHeader renders the field mask as the X-Goog-FieldMask value.
func (r *PlaceDetailsRequest) FieldMaskHeader() string {
	return strings.Join(r.FieldMask, ",")
}

// QueryValues renders the request's query parameters.
func (r *PlaceDetailsRequest) QueryValues() url.Values {
	query := url.Values{}
	if r.LanguageCode != "" {
		query.Set("languageCode", r.LanguageCode)
	}

	if r.SessionToken != "" {
		query.Set("sessionToken", r.SessionToken)
	}

	return query
}
