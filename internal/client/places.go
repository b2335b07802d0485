package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/geosuite-io/gmaps-client/internal/constants"
	inthttp "github.com/geosuite-io/gmaps-client/internal/http"
	"github.com/geosuite-io/gmaps-client/pkg/gmaps"
)

// PlacesClient implements gmaps.PlacesClient against the new-generation
// Places endpoints.
type PlacesClient struct {
	pipeline  *pipeline
	transport *inthttp.Client
}

var placesScopes = []gmaps.Api{gmaps.ApiAll, gmaps.ApiPlaces}

// textSearchBody is the wire shape of a text search request. The field
// mask travels in the X-Goog-FieldMask header, never in the body, so it
// is absent here.
type textSearchBody struct {
	TextQuery           string                     `json:"textQuery"`
	LanguageCode        string                     `json:"languageCode,omitempty"`
	PageSize            int                        `json:"pageSize,omitempty"`
	PageToken           string                     `json:"pageToken,omitempty"`
	LocationBias        *gmaps.LocationBias        `json:"locationBias,omitempty"`
	LocationRestriction *gmaps.LocationRestriction `json:"locationRestriction,omitempty"`
	IncludedType        string                     `json:"includedType,omitempty"`
	MinRating           float64                    `json:"minRating,omitempty"`
	OpenNow             bool                       `json:"openNow,omitempty"`
}

func newTextSearchBody(r gmaps.TextSearchRequest) textSearchBody {
	return textSearchBody{
		TextQuery:           r.Query,
		LanguageCode:        r.LanguageCode,
		PageSize:            r.PageSize,
		PageToken:           r.PageToken,
		LocationBias:        r.LocationBias,
		LocationRestriction: r.LocationRestriction,
		IncludedType:        r.IncludedType,
		MinRating:           r.MinRating,
		OpenNow:             r.OpenNow,
	}
}

// autocompleteBody is the wire shape of an autocomplete request.
type autocompleteBody struct {
	Input               string              `json:"input"`
	SessionToken        string              `json:"sessionToken,omitempty"`
	LanguageCode        string              `json:"languageCode,omitempty"`
	LocationBias        *gmaps.LocationBias `json:"locationBias,omitempty"`
	IncludedRegionCodes []string            `json:"includedRegionCodes,omitempty"`
}

func newAutocompleteBody(r gmaps.AutocompleteRequest) autocompleteBody {
	return autocompleteBody{
		Input:               r.Input,
		SessionToken:        r.SessionToken,
		LanguageCode:        r.LanguageCode,
		LocationBias:        r.LocationBias,
		IncludedRegionCodes: r.IncludedRegionCodes,
	}
}

// TextSearch implements gmaps.PlacesClient.TextSearch.
func (c *PlacesClient) TextSearch(ctx context.Context, request *gmaps.TextSearchRequest) (*gmaps.TextSearchPage, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	return c.textSearch(ctx, *request)
}

// textSearch issues one text search call and pairs the response with the
// request snapshot so it can be continued.
func (c *PlacesClient) textSearch(ctx context.Context, request gmaps.TextSearchRequest) (*gmaps.TextSearchPage, error) {
	headers := http.Header{}
	headers.Set(constants.HeaderFieldMask, request.FieldMaskHeader())

	body := newTextSearchBody(request)

	response, err := executePlaces[gmaps.TextSearchResponse](
		ctx, c.pipeline, c.transport, "text search", placesScopes,
		&inthttp.Request{
			Method:  http.MethodPost,
			Path:    constants.TextSearchPath,
			Headers: headers,
			Body:    &body,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("searching places: %w", err)
	}

	return &gmaps.TextSearchPage{
		TextSearchResponse: *response,
		Request:            request,
	}, nil
}

// NextPage implements gmaps.PlacesClient.NextPage. It re-enters the full
// rate-limit and retry pipeline with the stored request, replacing only
// the page token. An expired token is not detectable locally; the
// server's error is classified exactly like any other service error.
func (c *PlacesClient) NextPage(ctx context.Context, page *gmaps.TextSearchPage) (*gmaps.TextSearchPage, error) {
	if page == nil || !page.HasNextPage() {
		return nil, gmaps.ErrNoNextPage
	}

	return c.textSearch(ctx, page.NextRequest())
}

// AllPlaces implements gmaps.PlacesClient.AllPlaces.
func (c *PlacesClient) AllPlaces(ctx context.Context, request *gmaps.TextSearchRequest) ([]gmaps.Place, error) {
	page, err := c.TextSearch(ctx, request)
	if err != nil {
		return nil, err
	}

	places := append([]gmaps.Place(nil), page.Places...)

	// A defective server could hand out tokens forever; cap the chain.
	for follow := 0; page.HasNextPage() && follow < constants.MaxPageFollows; follow++ {
		page, err = c.NextPage(ctx, page)
		if err != nil {
			return nil, err
		}

		places = append(places, page.Places...)
	}

	return places, nil
}

// Autocomplete implements gmaps.PlacesClient.Autocomplete.
func (c *PlacesClient) Autocomplete(ctx context.Context, request *gmaps.AutocompleteRequest) (*gmaps.AutocompleteSession, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	body := newAutocompleteBody(*request)

	response, err := executePlaces[gmaps.AutocompleteResponse](
		ctx, c.pipeline, c.transport, "autocomplete", placesScopes,
		&inthttp.Request{
			Method: http.MethodPost,
			Path:   constants.AutocompletePath,
			Body:   &body,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("fetching autocomplete predictions: %w", err)
	}

	return &gmaps.AutocompleteSession{
		AutocompleteResponse: *response,
		Request:              *request,
	}, nil
}

// ContinueSession implements gmaps.PlacesClient.ContinueSession. Every
// stored parameter, the session token included, is reused byte-for-byte;
// only the input changes.
func (c *PlacesClient) ContinueSession(ctx context.Context, session *gmaps.AutocompleteSession, input string) (*gmaps.AutocompleteSession, error) {
	if session == nil {
		return nil, gmaps.ErrSessionRequired
	}

	next := session.ContinueWith(input)

	return c.Autocomplete(ctx, &next)
}

// PlaceDetails implements gmaps.PlacesClient.PlaceDetails.
func (c *PlacesClient) PlaceDetails(ctx context.Context, request *gmaps.PlaceDetailsRequest) (*gmaps.Place, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	headers := http.Header{}
	headers.Set(constants.HeaderFieldMask, request.FieldMaskHeader())

	place, err := executePlaces[gmaps.Place](
		ctx, c.pipeline, c.transport, "place details", placesScopes,
		&inthttp.Request{
			Method:  http.MethodGet,
			Path:    constants.PlaceDetailsPath + url.PathEscape(request.PlaceID),
			Query:   request.QueryValues(),
			Headers: headers,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("fetching place details: %w", err)
	}

	return place, nil
}
