// Package places wraps the Google Places, Place Details, and Geocoding
// web services behind a single client interface. Provider statuses are
// returned as values; only transport-level problems are errors, so
// callers decide how soft to fail.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rotisserie/eris"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api"

// Status is the provider-reported request status.
type Status string

// Statuses returned by the places and geocoding endpoints.
const (
	StatusOK             Status = "OK"
	StatusZeroResults    Status = "ZERO_RESULTS"
	StatusOverQueryLimit Status = "OVER_QUERY_LIMIT"
	StatusRequestDenied  Status = "REQUEST_DENIED"
	StatusInvalidRequest Status = "INVALID_REQUEST"
	StatusNotFound       Status = "NOT_FOUND"
	StatusUnknownError   Status = "UNKNOWN_ERROR"
)

// Successful reports whether the status carries usable results.
// ZERO_RESULTS is a successful empty page, not a failure.
func (s Status) Successful() bool {
	return s == StatusOK || s == StatusZeroResults
}

// LatLng is a coordinate pair as serialized by the provider.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Geometry holds the location block of a search result.
type Geometry struct {
	Location LatLng `json:"location"`
}

// Result is one establishment from a nearby search page.
type Result struct {
	PlaceID        string   `json:"place_id"`
	Name           string   `json:"name"`
	Geometry       Geometry `json:"geometry"`
	Types          []string `json:"types,omitempty"`
	Rating         float64  `json:"rating,omitempty"`
	BusinessStatus string   `json:"business_status,omitempty"`
	Vicinity       string   `json:"vicinity,omitempty"`
}

// NearbySearchRequest describes one nearby-search page fetch.
type NearbySearchRequest struct {
	Location  LatLng
	RadiusM   int
	Type      string
	PageToken string
}

// NearbySearchResponse is one page of nearby-search results.
type NearbySearchResponse struct {
	Results       []Result `json:"results"`
	Status        Status   `json:"status"`
	NextPageToken string   `json:"next_page_token,omitempty"`
	ErrorMessage  string   `json:"error_message,omitempty"`
}

// AddressComponent is one structured element of a formatted address.
type AddressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

// Details holds the fields requested from the details endpoint.
type Details struct {
	Name              string             `json:"name"`
	FormattedPhone    string             `json:"formatted_phone_number,omitempty"`
	Website           string             `json:"website,omitempty"`
	FormattedAddress  string             `json:"formatted_address,omitempty"`
	Rating            float64            `json:"rating,omitempty"`
	Types             []string           `json:"types,omitempty"`
	BusinessStatus    string             `json:"business_status,omitempty"`
	AddressComponents []AddressComponent `json:"address_components,omitempty"`
}

// DetailsResponse is the response from the details endpoint.
type DetailsResponse struct {
	Result       Details `json:"result"`
	Status       Status  `json:"status"`
	ErrorMessage string  `json:"error_message,omitempty"`
}

// GeocodeResult is one geocoding match.
type GeocodeResult struct {
	Geometry         Geometry `json:"geometry"`
	FormattedAddress string   `json:"formatted_address,omitempty"`
}

// GeocodeResponse is the response from the geocoding endpoint.
type GeocodeResponse struct {
	Results      []GeocodeResult `json:"results"`
	Status       Status          `json:"status"`
	ErrorMessage string          `json:"error_message,omitempty"`
}

// DetailsFields is the field set requested for lead qualification.
var DetailsFields = []string{
	"name",
	"formatted_phone_number",
	"website",
	"formatted_address",
	"rating",
	"types",
	"business_status",
	"address_components",
}

// Client performs places, details, and geocoding operations.
type Client interface {
	NearbySearch(ctx context.Context, req NearbySearchRequest) (*NearbySearchResponse, error)
	Details(ctx context.Context, placeID string, fields []string) (*DetailsResponse, error)
	Geocode(ctx context.Context, address string) (*GeocodeResponse, error)
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(u string) Option {
	return func(c *httpClient) {
		c.baseURL = u
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

type httpClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a places API client.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) NearbySearch(ctx context.Context, req NearbySearchRequest) (*NearbySearchResponse, error) {
	q := url.Values{}
	q.Set("location", fmt.Sprintf("%f,%f", req.Location.Lat, req.Location.Lng))
	q.Set("radius", fmt.Sprintf("%d", req.RadiusM))
	if req.Type != "" {
		q.Set("type", req.Type)
	}
	if req.PageToken != "" {
		q.Set("pagetoken", req.PageToken)
	}

	var resp NearbySearchResponse
	if err := c.get(ctx, "/place/nearbysearch/json", q, &resp); err != nil {
		return nil, eris.Wrap(err, "places: nearby search")
	}
	return &resp, nil
}

func (c *httpClient) Details(ctx context.Context, placeID string, fields []string) (*DetailsResponse, error) {
	q := url.Values{}
	q.Set("place_id", placeID)
	if len(fields) > 0 {
		q.Set("fields", strings.Join(fields, ","))
	}

	var resp DetailsResponse
	if err := c.get(ctx, "/place/details/json", q, &resp); err != nil {
		return nil, eris.Wrap(err, "places: details")
	}
	return &resp, nil
}

func (c *httpClient) Geocode(ctx context.Context, address string) (*GeocodeResponse, error) {
	q := url.Values{}
	q.Set("address", address)

	var resp GeocodeResponse
	if err := c.get(ctx, "/geocode/json", q, &resp); err != nil {
		return nil, eris.Wrap(err, "places: geocode")
	}
	return &resp, nil
}

func (c *httpClient) get(ctx context.Context, path string, q url.Values, out any) error {
	q.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return eris.Wrap(err, "create request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return eris.Wrap(err, "send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return eris.Wrap(err, "read response")
	}

	if resp.StatusCode != http.StatusOK {
		return eris.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return eris.Wrap(err, "unmarshal response")
	}
	return nil
}
