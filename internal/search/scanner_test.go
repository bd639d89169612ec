package search

import (
	"context"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webless-hunter/prospect-cli/internal/model"
	"github.com/webless-hunter/prospect-cli/pkg/places"
)

func newTestScanner(client places.Client) *Scanner {
	s := NewScanner(NewPagerWithInterval(client, time.Millisecond))
	s.typeDelay = 0
	return s
}

func TestScanner_WildcardExpansion(t *testing.T) {
	client := &fakePlacesClient{
		nearbyFn: func(req places.NearbySearchRequest) (*places.NearbySearchResponse, error) {
			return &places.NearbySearchResponse{
				Status:  places.StatusOK,
				Results: []places.Result{resultAt(req.Type+"-1", req.Type, 53.35, -6.26, 0)},
			}, nil
		},
	}
	s := newTestScanner(client)

	out := s.Scan(context.Background(), dublin, 500, TypeWildcard)
	require.Len(t, out, 4)

	var queried []string
	for _, call := range client.nearbyCalls {
		queried = append(queried, call.Type)
	}
	assert.Equal(t, []string{"establishment", "store", "food", "restaurant"}, queried)
}

func TestScanner_EmptyTypeActsAsWildcard(t *testing.T) {
	client := &fakePlacesClient{}
	s := newTestScanner(client)

	s.Scan(context.Background(), dublin, 500, "")
	assert.Equal(t, 4, client.nearbyCallCount())
}

func TestScanner_SpecificTypeSingleQuery(t *testing.T) {
	client := &fakePlacesClient{}
	s := newTestScanner(client)

	s.Scan(context.Background(), dublin, 500, "beauty_salon")
	require.Equal(t, 1, client.nearbyCallCount())
	assert.Equal(t, "beauty_salon", client.nearbyCalls[0].Type)
}

func TestScanner_FailedTypeDoesNotAbortSiblings(t *testing.T) {
	client := &fakePlacesClient{
		nearbyFn: func(req places.NearbySearchRequest) (*places.NearbySearchResponse, error) {
			if req.Type == "store" {
				return nil, eris.New("provider outage")
			}
			return &places.NearbySearchResponse{
				Status:  places.StatusOK,
				Results: []places.Result{resultAt(req.Type+"-1", req.Type, 53.35, -6.26, 0)},
			}, nil
		},
	}
	s := newTestScanner(client)

	out := s.Scan(context.Background(), dublin, 500, TypeWildcard)
	assert.Len(t, out, 3, "the failed type contributes nothing, the rest survive")
	assert.Equal(t, 4, client.nearbyCallCount())
}

func TestScanner_CanceledContextStopsEarly(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	client := &fakePlacesClient{}
	client.nearbyFn = func(req places.NearbySearchRequest) (*places.NearbySearchResponse, error) {
		cancel()
		return &places.NearbySearchResponse{Status: places.StatusOK}, nil
	}
	s := newTestScanner(client)

	s.Scan(ctx, model.Coordinate{}, 500, TypeWildcard)
	assert.Equal(t, 1, client.nearbyCallCount(), "remaining types skipped after cancellation")
}
