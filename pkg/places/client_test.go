package places

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearbySearch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/place/nearbysearch/json", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "500", r.URL.Query().Get("radius"))
		assert.Equal(t, "restaurant", r.URL.Query().Get("type"))
		assert.Contains(t, r.URL.Query().Get("location"), "53.34")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(NearbySearchResponse{
			Results: []Result{
				{
					PlaceID:        "ChIJ-cafe1",
					Name:           "Liffey Cafe",
					Geometry:       Geometry{Location: LatLng{Lat: 53.3501, Lng: -6.2610}},
					Types:          []string{"cafe", "food"},
					Rating:         4.4,
					BusinessStatus: "OPERATIONAL",
				},
			},
			Status:        StatusOK,
			NextPageToken: "page-2-token",
		})
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	resp, err := client.NearbySearch(context.Background(), NearbySearchRequest{
		Location: LatLng{Lat: 53.3498, Lng: -6.2603},
		RadiusM:  500,
		Type:     "restaurant",
	})

	require.NoError(t, err)
	assert.Equal(t, StatusOK, resp.Status)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "ChIJ-cafe1", resp.Results[0].PlaceID)
	assert.Equal(t, "Liffey Cafe", resp.Results[0].Name)
	assert.InDelta(t, 53.3501, resp.Results[0].Geometry.Location.Lat, 1e-9)
	assert.Equal(t, "page-2-token", resp.NextPageToken)
}

func TestNearbySearch_PageToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "page-2-token", r.URL.Query().Get("pagetoken"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(NearbySearchResponse{
			Results: []Result{{PlaceID: "ChIJ-page2"}},
			Status:  StatusOK,
		})
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	resp, err := client.NearbySearch(context.Background(), NearbySearchRequest{PageToken: "page-2-token"})

	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Empty(t, resp.NextPageToken)
}

func TestNearbySearch_NonOKStatusIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(NearbySearchResponse{
			Status:       StatusOverQueryLimit,
			ErrorMessage: "You have exceeded your daily request quota",
		})
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	resp, err := client.NearbySearch(context.Background(), NearbySearchRequest{})

	require.NoError(t, err)
	assert.Equal(t, StatusOverQueryLimit, resp.Status)
	assert.False(t, resp.Status.Successful())
}

func TestNearbySearch_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("backend exploded"))
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	resp, err := client.NearbySearch(context.Background(), NearbySearchRequest{})

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "500")
}

func TestDetails_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/place/details/json", r.URL.Path)
		assert.Equal(t, "ChIJ-cafe1", r.URL.Query().Get("place_id"))
		assert.Contains(t, r.URL.Query().Get("fields"), "formatted_phone_number")
		assert.Contains(t, r.URL.Query().Get("fields"), "business_status")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(DetailsResponse{
			Result: Details{
				Name:             "Liffey Cafe",
				FormattedPhone:   "01 234 5678",
				FormattedAddress: "1 Ormond Quay, Dublin 1, Ireland",
				Rating:           4.4,
				BusinessStatus:   "OPERATIONAL",
				AddressComponents: []AddressComponent{
					{LongName: "Ireland", ShortName: "IE", Types: []string{"country", "political"}},
				},
			},
			Status: StatusOK,
		})
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	resp, err := client.Details(context.Background(), "ChIJ-cafe1", DetailsFields)

	require.NoError(t, err)
	assert.Equal(t, StatusOK, resp.Status)
	assert.Equal(t, "01 234 5678", resp.Result.FormattedPhone)
	assert.Empty(t, resp.Result.Website)
	require.Len(t, resp.Result.AddressComponents, 1)
	assert.Equal(t, "IE", resp.Result.AddressComponents[0].ShortName)
}

func TestDetails_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(DetailsResponse{Status: StatusNotFound})
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	resp, err := client.Details(context.Background(), "ChIJ-gone", nil)

	require.NoError(t, err)
	assert.Equal(t, StatusNotFound, resp.Status)
}

func TestGeocode_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geocode/json", r.URL.Path)
		assert.Equal(t, "Dublin, Ireland", r.URL.Query().Get("address"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(GeocodeResponse{
			Results: []GeocodeResult{
				{Geometry: Geometry{Location: LatLng{Lat: 53.3498, Lng: -6.2603}}},
			},
			Status: StatusOK,
		})
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	resp, err := client.Geocode(context.Background(), "Dublin, Ireland")

	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.InDelta(t, 53.3498, resp.Results[0].Geometry.Location.Lat, 1e-9)
}

func TestGeocode_ZeroResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(GeocodeResponse{Status: StatusZeroResults})
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	resp, err := client.Geocode(context.Background(), "xyzzy nowhere")

	require.NoError(t, err)
	assert.Empty(t, resp.Results)
	assert.True(t, resp.Status.Successful())
}

func TestGeocode_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	resp, err := client.Geocode(ctx, "Dublin")

	assert.Error(t, err)
	assert.Nil(t, resp)
}
