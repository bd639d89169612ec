package search

import (
	"context"
	"sync"

	"github.com/webless-hunter/prospect-cli/internal/model"
	"github.com/webless-hunter/prospect-cli/pkg/places"
)

// fakePlacesClient is an in-package places.Client double with
// programmable behavior per method.
type fakePlacesClient struct {
	mu          sync.Mutex
	nearbyCalls []places.NearbySearchRequest
	nearbyFn    func(req places.NearbySearchRequest) (*places.NearbySearchResponse, error)

	detailsCalls []string
	detailsFn    func(placeID string) (*places.DetailsResponse, error)

	geocodeFn func(address string) (*places.GeocodeResponse, error)
}

func (f *fakePlacesClient) NearbySearch(_ context.Context, req places.NearbySearchRequest) (*places.NearbySearchResponse, error) {
	f.mu.Lock()
	f.nearbyCalls = append(f.nearbyCalls, req)
	f.mu.Unlock()
	if f.nearbyFn != nil {
		return f.nearbyFn(req)
	}
	return &places.NearbySearchResponse{Status: places.StatusZeroResults}, nil
}

func (f *fakePlacesClient) Details(_ context.Context, placeID string, _ []string) (*places.DetailsResponse, error) {
	f.mu.Lock()
	f.detailsCalls = append(f.detailsCalls, placeID)
	f.mu.Unlock()
	if f.detailsFn != nil {
		return f.detailsFn(placeID)
	}
	return &places.DetailsResponse{Status: places.StatusNotFound}, nil
}

func (f *fakePlacesClient) Geocode(_ context.Context, address string) (*places.GeocodeResponse, error) {
	if f.geocodeFn != nil {
		return f.geocodeFn(address)
	}
	return &places.GeocodeResponse{Status: places.StatusZeroResults}, nil
}

func (f *fakePlacesClient) nearbyCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.nearbyCalls)
}

// stubEnricher returns canned leads, or passes candidates through a
// function when set.
type stubEnricher struct {
	fn    func(candidates []model.Candidate) ([]model.Lead, error)
	calls int
}

func (s *stubEnricher) Enrich(_ context.Context, _ model.Coordinate, candidates []model.Candidate) ([]model.Lead, error) {
	s.calls++
	if s.fn != nil {
		return s.fn(candidates)
	}
	return nil, nil
}

// stubSaver records the last saved run.
type stubSaver struct {
	saved *model.SearchRun
	err   error
}

func (s *stubSaver) SaveRun(_ context.Context, run *model.SearchRun) error {
	s.saved = run
	return s.err
}

// resultAt builds a provider result located at the given coordinates.
func resultAt(id, name string, lat, lng, rating float64) places.Result {
	return places.Result{
		PlaceID:  id,
		Name:     name,
		Geometry: places.Geometry{Location: places.LatLng{Lat: lat, Lng: lng}},
		Types:    []string{"establishment"},
		Rating:   rating,
	}
}
