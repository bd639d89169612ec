// Package search implements the expanding-radius deduplicated search:
// paginated nearby queries per business type, distance-verified dedup
// across radius tiers, and the orchestrator driving the full run.
package search

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/webless-hunter/prospect-cli/internal/model"
	"github.com/webless-hunter/prospect-cli/pkg/places"
)

// maxResultsPerQuery is the provider's hard ceiling per (radius, type)
// query: three pages of twenty.
const maxResultsPerQuery = 60

// defaultPageInterval is the wait the provider requires before a
// next_page_token becomes valid.
const defaultPageInterval = 2 * time.Second

// Pager fetches one nearby search, following pagination up to the
// result cap. Provider failures are soft: whatever accumulated so far
// is returned and the failure is logged, never raised.
type Pager struct {
	client       places.Client
	pageInterval time.Duration
}

// NewPager creates a Pager with the provider-mandated page interval.
func NewPager(client places.Client) *Pager {
	return &Pager{client: client, pageInterval: defaultPageInterval}
}

// NewPagerWithInterval creates a Pager with a custom page interval.
func NewPagerWithInterval(client places.Client, interval time.Duration) *Pager {
	return &Pager{client: client, pageInterval: interval}
}

// Search returns up to maxResultsPerQuery places for one (center,
// radius, type) query. The limiter starts full, so the first page is
// immediate and each following page waits out the token delay.
func (p *Pager) Search(ctx context.Context, center model.Coordinate, radiusM int, typeToken string) []model.Place {
	log := zap.L().With(
		zap.Int("radius_m", radiusM),
		zap.String("type", typeToken),
	)

	limiter := rate.NewLimiter(rate.Every(p.pageInterval), 1)

	var (
		out   []model.Place
		token string
	)
	for {
		if err := limiter.Wait(ctx); err != nil {
			return out
		}

		resp, err := p.client.NearbySearch(ctx, places.NearbySearchRequest{
			Location:  places.LatLng{Lat: center.Lat, Lng: center.Lng},
			RadiusM:   radiusM,
			Type:      typeToken,
			PageToken: token,
		})
		if err != nil {
			log.Warn("nearby search failed, returning partial results",
				zap.Int("accumulated", len(out)), zap.Error(err))
			return out
		}
		if !resp.Status.Successful() {
			log.Warn("nearby search returned non-OK status",
				zap.String("status", string(resp.Status)),
				zap.Int("accumulated", len(out)))
			return out
		}

		for _, r := range resp.Results {
			out = append(out, toPlace(r))
		}

		if resp.NextPageToken == "" || len(out) >= maxResultsPerQuery {
			return out
		}
		token = resp.NextPageToken
	}
}

func toPlace(r places.Result) model.Place {
	return model.Place{
		PlaceID: r.PlaceID,
		Name:    r.Name,
		Location: model.Coordinate{
			Lat: r.Geometry.Location.Lat,
			Lng: r.Geometry.Location.Lng,
		},
		Types:  r.Types,
		Rating: r.Rating,
	}
}
