package gmaps_test

import (
	"encoding/json"
	"testing"

	"github.com/geosuite-io/gmaps-client/pkg/gmaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextSearchRequestValidate(t *testing.T) {
	t.Parallel()

	valid := func() gmaps.TextSearchRequest {
		return gmaps.TextSearchRequest{
			Query:     "pizza in New York",
			FieldMask: []string{"places.displayName", "places.formattedAddress"},
		}
	}

	t.Run("valid request", func(t *testing.T) {
		t.Parallel()

		req := valid()
		assert.NoError(t, req.Validate())
	})

	t.Run("missing query", func(t *testing.T) {
		t.Parallel()

		req := valid()
		req.Query = ""
		assert.ErrorIs(t, req.Validate(), gmaps.ErrQueryRequired)
	})

	t.Run("missing field mask", func(t *testing.T) {
		t.Parallel()

		req := valid()
		req.FieldMask = nil
		assert.ErrorIs(t, req.Validate(), gmaps.ErrFieldMaskRequired)
	})

	t.Run("page size too large", func(t *testing.T) {
		t.Parallel()

		req := valid()
		req.PageSize = 21
		assert.ErrorIs(t, req.Validate(), gmaps.ErrPageSizeOutOfRange)
	})

	t.Run("negative page size", func(t *testing.T) {
		t.Parallel()

		req := valid()
		req.PageSize = -1
		assert.ErrorIs(t, req.Validate(), gmaps.ErrPageSizeOutOfRange)
	})

	t.Run("bias and restriction together", func(t *testing.T) {
		t.Parallel()

		req := valid()
		req.LocationBias = &gmaps.LocationBias{
			Circle: &gmaps.Circle{Center: gmaps.Location{Latitude: 37.7, Longitude: -122.4}, Radius: 500},
		}
		req.LocationRestriction = &gmaps.LocationRestriction{
			Rectangle: &gmaps.Viewport{
				Low:  gmaps.Location{Latitude: 37.6, Longitude: -122.5},
				High: gmaps.Location{Latitude: 37.8, Longitude: -122.3},
			},
		}
		assert.ErrorIs(t, req.Validate(), gmaps.ErrConflictingLocations)
	})
}

func TestTextSearchRequestFieldMaskHeader(t *testing.T) {
	t.Parallel()

	req := gmaps.TextSearchRequest{
		Query:     "coffee",
		FieldMask: []string{"places.displayName", "places.id", "nextPageToken"},
	}

	assert.Equal(t, "places.displayName,places.id,nextPageToken", req.FieldMaskHeader())
}

func TestTextSearchPageNextRequest(t *testing.T) {
	t.Parallel()

	original := gmaps.TextSearchRequest{
		Query:        "ramen",
		FieldMask:    []string{"places.displayName", "nextPageToken"},
		LanguageCode: "ja",
		PageSize:     5,
		LocationBias: &gmaps.LocationBias{
			Circle: &gmaps.Circle{Center: gmaps.Location{Latitude: 35.68, Longitude: 139.76}, Radius: 2000},
		},
	}

	page := gmaps.TextSearchPage{
		TextSearchResponse: gmaps.TextSearchResponse{
			NextPageToken: "PAGE2",
		},
		Request: original,
	}

	require.True(t, page.HasNextPage())

	next := page.NextRequest()
	assert.Equal(t, "PAGE2", next.PageToken)

	// Every other parameter must survive unchanged.
	next.PageToken = original.PageToken
	assert.Equal(t, original, next)
}

func TestTextSearchPageHasNextPage(t *testing.T) {
	t.Parallel()

	page := gmaps.TextSearchPage{}
	assert.False(t, page.HasNextPage())
}

func TestTextSearchPageRoundTrip(t *testing.T) {
	t.Parallel()

	page := gmaps.TextSearchPage{
		TextSearchResponse: gmaps.TextSearchResponse{
			Places:        []gmaps.Place{{ID: "abc", FormattedAddress: "1 Main St"}},
			NextPageToken: "PAGE2",
		},
		Request: gmaps.TextSearchRequest{
			Query:     "books",
			FieldMask: []string{"places.id"},
			PageSize:  10,
		},
	}

	data, err := json.Marshal(&page)
	require.NoError(t, err)

	var restored gmaps.TextSearchPage
	require.NoError(t, json.Unmarshal(data, &restored))

	assert.Equal(t, page, restored)
	assert.Equal(t, "PAGE2", restored.NextRequest().PageToken)
}

func TestAutocompleteRequestValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid request", func(t *testing.T) {
		t.Parallel()

		req := gmaps.AutocompleteRequest{Input: "piz", SessionToken: gmaps.NewSessionToken()}
		assert.NoError(t, req.Validate())
	})

	t.Run("missing input", func(t *testing.T) {
		t.Parallel()

		req := gmaps.AutocompleteRequest{}
		assert.ErrorIs(t, req.Validate(), gmaps.ErrInputRequired)
	})

	t.Run("invalid session token", func(t *testing.T) {
		t.Parallel()

		req := gmaps.AutocompleteRequest{Input: "piz", SessionToken: "not a token!"}
		assert.ErrorIs(t, req.Validate(), gmaps.ErrInvalidSessionToken)
	})

	t.Run("token optional", func(t *testing.T) {
		t.Parallel()

		req := gmaps.AutocompleteRequest{Input: "piz"}
		assert.NoError(t, req.Validate())
	})
}

func TestAutocompleteSessionContinueWith(t *testing.T) {
	t.Parallel()

	token := gmaps.NewSessionToken()
	session := gmaps.AutocompleteSession{
		Request: gmaps.AutocompleteRequest{
			Input:               "piz",
			SessionToken:        token,
			LanguageCode:        "en",
			IncludedRegionCodes: []string{"us"},
		},
	}

	next := session.ContinueWith("pizza")

	assert.Equal(t, "pizza", next.Input)
	assert.Equal(t, token, next.SessionToken)
	assert.Equal(t, "en", next.LanguageCode)
	assert.Equal(t, []string{"us"}, next.IncludedRegionCodes)
}

func TestPlaceDetailsRequestValidate(t *testing.T) {
	t.Parallel()

	valid := func() gmaps.PlaceDetailsRequest {
		return gmaps.PlaceDetailsRequest{
			PlaceID:   "ChIJj61dQgK6j4AR4GeTYWZsKWw",
			FieldMask: []string{"displayName", "formattedAddress"},
		}
	}

	t.Run("valid request", func(t *testing.T) {
		t.Parallel()

		req := valid()
		assert.NoError(t, req.Validate())
	})

	t.Run("missing place id", func(t *testing.T) {
		t.Parallel()

		req := valid()
		req.PlaceID = ""
		assert.ErrorIs(t, req.Validate(), gmaps.ErrPlaceIDRequired)
	})

	t.Run("missing field mask", func(t *testing.T) {
		t.Parallel()

		req := valid()
		req.FieldMask = nil
		assert.ErrorIs(t, req.Validate(), gmaps.ErrFieldMaskRequired)
	})

	t.Run("invalid session token", func(t *testing.T) {
		t.Parallel()

		req := valid()
		req.SessionToken = "has spaces"
		assert.ErrorIs(t, req.Validate(), gmaps.ErrInvalidSessionToken)
	})
}

func TestPlaceDetailsRequestQueryValues(t *testing.T) {
	t.Parallel()

	req := gmaps.PlaceDetailsRequest{
		PlaceID:      "ChIJ123",
		FieldMask:    []string{"displayName"},
		SessionToken: "tok-1",
		LanguageCode: "de",
	}

	query := req.QueryValues()
	assert.Equal(t, "de", query.Get("languageCode"))
	assert.Equal(t, "tok-1", query.Get("sessionToken"))

	empty := gmaps.PlaceDetailsRequest{PlaceID: "ChIJ123", FieldMask: []string{"displayName"}}
	assert.Empty(t, empty.QueryValues())
}
