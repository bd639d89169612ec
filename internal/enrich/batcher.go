// Package enrich qualifies deduplicated candidates into leads via the
// details endpoint: concurrent fixed-size batches, per-item soft
// failure, and the operational/phone/no-website gate.
package enrich

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/webless-hunter/prospect-cli/internal/model"
	"github.com/webless-hunter/prospect-cli/pkg/places"
)

const (
	// batchSize is the number of details lookups issued concurrently
	// and awaited jointly.
	batchSize = 10
	// defaultBatchDelay paces consecutive batches.
	defaultBatchDelay = 100 * time.Millisecond
	// statusOperational is the provider's flag for an open business.
	statusOperational = "OPERATIONAL"
)

// Batcher performs details lookups over a candidate set.
type Batcher struct {
	client     places.Client
	batchDelay time.Duration
	sleep      func(context.Context, time.Duration)
}

// Option configures the batcher.
type Option func(*Batcher)

// WithBatchDelay overrides the pacing delay between batches.
func WithBatchDelay(d time.Duration) Option {
	return func(b *Batcher) {
		b.batchDelay = d
	}
}

// NewBatcher creates a Batcher over the given places client.
func NewBatcher(client places.Client, opts ...Option) *Batcher {
	b := &Batcher{
		client:     client,
		batchDelay: defaultBatchDelay,
		sleep:      sleepCtx,
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Enrich looks up details for every candidate and returns the leads:
// operational businesses with a phone number and no website, sorted
// ascending by distance. A single lookup failing never affects its
// batch siblings; only context cancellation aborts the whole pass.
func (b *Batcher) Enrich(ctx context.Context, _ model.Coordinate, candidates []model.Candidate) ([]model.Lead, error) {
	log := zap.L().With(zap.String("component", "enrich"))

	var leads []model.Lead
	for start := 0; start < len(candidates); start += batchSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		end := min(start+batchSize, len(candidates))
		batch := candidates[start:end]

		// Slot-indexed results: batch completion order is unspecified,
		// correctness comes from the index and the final sort.
		results := make([]*model.Lead, len(batch))

		g, gctx := errgroup.WithContext(ctx)
		for i, cand := range batch {
			g.Go(func() error {
				lead, ok := b.qualify(gctx, cand)
				if ok {
					results[i] = &lead
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		for _, lead := range results {
			if lead != nil {
				leads = append(leads, *lead)
			}
		}

		log.Debug("batch complete",
			zap.Int("processed", end),
			zap.Int("total", len(candidates)),
			zap.Int("leads", len(leads)),
		)

		if end < len(candidates) {
			b.sleep(ctx, b.batchDelay)
		}
	}

	sort.Slice(leads, func(i, j int) bool {
		return leads[i].DistanceKM < leads[j].DistanceKM
	})
	return leads, nil
}

// qualify runs one details lookup and applies the lead gate. Failures
// are soft: logged and reported as not-a-lead.
func (b *Batcher) qualify(ctx context.Context, cand model.Candidate) (model.Lead, bool) {
	resp, err := b.client.Details(ctx, cand.PlaceID, places.DetailsFields)
	if err != nil {
		zap.L().Warn("details lookup failed",
			zap.String("place_id", cand.PlaceID),
			zap.String("name", cand.Name),
			zap.Error(err),
		)
		return model.Lead{}, false
	}
	if resp.Status != places.StatusOK {
		zap.L().Warn("details lookup returned non-OK status",
			zap.String("place_id", cand.PlaceID),
			zap.String("status", string(resp.Status)),
		)
		return model.Lead{}, false
	}

	d := resp.Result
	if d.BusinessStatus != statusOperational || d.FormattedPhone == "" || d.Website != "" {
		return model.Lead{}, false
	}

	return model.Lead{
		Candidate:      cand,
		Phone:          d.FormattedPhone,
		Address:        d.FormattedAddress,
		CountryCode:    countryCode(d.AddressComponents),
		BusinessType:   BusinessTypeLabel(d.Types),
		EstimatedValue: EstimatedValue(d.Rating),
		Priority:       PriorityScore(d.Rating, cand.DistanceKM),
	}, true
}

// countryCode extracts the lowercase ISO country code from structured
// address components, empty when absent.
func countryCode(components []places.AddressComponent) string {
	for _, c := range components {
		for _, t := range c.Types {
			if t == "country" {
				return strings.ToLower(c.ShortName)
			}
		}
	}
	return ""
}

func sleepCtx(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
