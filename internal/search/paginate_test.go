package search

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webless-hunter/prospect-cli/internal/model"
	"github.com/webless-hunter/prospect-cli/pkg/places"
)

func page(start, count int, nextToken string) *places.NearbySearchResponse {
	resp := &places.NearbySearchResponse{Status: places.StatusOK, NextPageToken: nextToken}
	for i := 0; i < count; i++ {
		id := fmt.Sprintf("place-%03d", start+i)
		resp.Results = append(resp.Results, resultAt(id, "Shop "+id, 53.35, -6.26, 4.0))
	}
	return resp
}

func TestPager_SinglePage(t *testing.T) {
	client := &fakePlacesClient{
		nearbyFn: func(req places.NearbySearchRequest) (*places.NearbySearchResponse, error) {
			return page(0, 3, ""), nil
		},
	}
	p := NewPagerWithInterval(client, time.Millisecond)

	out := p.Search(context.Background(), model.Coordinate{Lat: 53.35, Lng: -6.26}, 500, "restaurant")
	require.Len(t, out, 3)
	assert.Equal(t, "place-000", out[0].PlaceID)
	assert.Equal(t, 4.0, out[0].Rating)
	assert.Equal(t, 1, client.nearbyCallCount())

	sent := client.nearbyCalls[0]
	assert.Equal(t, 500, sent.RadiusM)
	assert.Equal(t, "restaurant", sent.Type)
	assert.Empty(t, sent.PageToken)
}

func TestPager_FollowsPageTokens(t *testing.T) {
	client := &fakePlacesClient{}
	client.nearbyFn = func(req places.NearbySearchRequest) (*places.NearbySearchResponse, error) {
		switch req.PageToken {
		case "":
			return page(0, 20, "token-1"), nil
		case "token-1":
			return page(20, 20, "token-2"), nil
		case "token-2":
			return page(40, 5, ""), nil
		default:
			return nil, eris.Errorf("unexpected token %q", req.PageToken)
		}
	}
	p := NewPagerWithInterval(client, time.Millisecond)

	out := p.Search(context.Background(), model.Coordinate{}, 1000, "store")
	assert.Len(t, out, 45)
	assert.Equal(t, 3, client.nearbyCallCount())
	assert.Equal(t, "place-044", out[44].PlaceID)
}

func TestPager_StopsAtResultCap(t *testing.T) {
	client := &fakePlacesClient{
		// Endless pagination: every page advertises another token.
		nearbyFn: func(req places.NearbySearchRequest) (*places.NearbySearchResponse, error) {
			return page(20*len(req.PageToken), 20, req.PageToken + "x"), nil
		},
	}
	p := NewPagerWithInterval(client, time.Millisecond)

	out := p.Search(context.Background(), model.Coordinate{}, 1000, "food")
	assert.Len(t, out, maxResultsPerQuery)
	assert.Equal(t, 3, client.nearbyCallCount())
}

func TestPager_PartialOnTransportError(t *testing.T) {
	client := &fakePlacesClient{}
	client.nearbyFn = func(req places.NearbySearchRequest) (*places.NearbySearchResponse, error) {
		if req.PageToken == "" {
			return page(0, 20, "token-1"), nil
		}
		return nil, eris.New("connection reset")
	}
	p := NewPagerWithInterval(client, time.Millisecond)

	out := p.Search(context.Background(), model.Coordinate{}, 1000, "store")
	assert.Len(t, out, 20, "results before the failure are kept")
}

func TestPager_PartialOnProviderStatus(t *testing.T) {
	client := &fakePlacesClient{}
	client.nearbyFn = func(req places.NearbySearchRequest) (*places.NearbySearchResponse, error) {
		if req.PageToken == "" {
			return page(0, 20, "token-1"), nil
		}
		return &places.NearbySearchResponse{Status: places.StatusOverQueryLimit}, nil
	}
	p := NewPagerWithInterval(client, time.Millisecond)

	out := p.Search(context.Background(), model.Coordinate{}, 1000, "store")
	assert.Len(t, out, 20)
}

func TestPager_ZeroResultsIsEmptySuccess(t *testing.T) {
	client := &fakePlacesClient{
		nearbyFn: func(places.NearbySearchRequest) (*places.NearbySearchResponse, error) {
			return &places.NearbySearchResponse{Status: places.StatusZeroResults}, nil
		},
	}
	p := NewPagerWithInterval(client, time.Millisecond)

	out := p.Search(context.Background(), model.Coordinate{}, 100, "restaurant")
	assert.Empty(t, out)
	assert.Equal(t, 1, client.nearbyCallCount())
}

func TestPager_CanceledContext(t *testing.T) {
	client := &fakePlacesClient{}
	p := NewPager(client)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := p.Search(ctx, model.Coordinate{}, 100, "restaurant")
	assert.Empty(t, out)
	assert.Zero(t, client.nearbyCallCount())
}
