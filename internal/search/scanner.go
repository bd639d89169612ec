package search

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/webless-hunter/prospect-cli/internal/model"
)

// TypeWildcard selects the default spread of provider type tokens.
const TypeWildcard = "all"

// wildcardTypes is the fixed expansion of the wildcard selector.
var wildcardTypes = []string{"establishment", "store", "food", "restaurant"}

// defaultTypeDelay is the politeness pause between type-token queries.
const defaultTypeDelay = 200 * time.Millisecond

// Scanner runs one radius tier: serial per-type paginated queries,
// concatenated. A failed type query never aborts its siblings.
type Scanner struct {
	pager     *Pager
	typeDelay time.Duration
	sleep     func(context.Context, time.Duration)
}

// NewScanner creates a Scanner over the given pager.
func NewScanner(pager *Pager) *Scanner {
	return &Scanner{pager: pager, typeDelay: defaultTypeDelay, sleep: sleepCtx}
}

// Scan searches one radius for the given business-type selector and
// returns the concatenated results across type tokens.
func (s *Scanner) Scan(ctx context.Context, center model.Coordinate, radiusM int, businessType string) []model.Place {
	types := []string{businessType}
	if businessType == TypeWildcard || businessType == "" {
		types = wildcardTypes
	}

	var results []model.Place
	for i, typeToken := range types {
		if ctx.Err() != nil {
			break
		}
		found := s.pager.Search(ctx, center, radiusM, typeToken)
		results = append(results, found...)

		zap.L().Debug("type scan complete",
			zap.Int("radius_m", radiusM),
			zap.String("type", typeToken),
			zap.Int("found", len(found)),
		)

		if i < len(types)-1 {
			s.sleep(ctx, s.typeDelay)
		}
	}
	return results
}

// sleepCtx pauses for d or until the context is done.
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
