package search

import (
	"sort"

	"github.com/webless-hunter/prospect-cli/internal/geo"
	"github.com/webless-hunter/prospect-cli/internal/model"
)

// Ledger tracks place identifiers accepted anywhere in a run and
// enforces radius membership. The provider's radius parameter is
// advisory, so every result is distance-checked against the tier it
// arrived at. Radii are scanned in ascending order, which makes the
// first acceptance also the smallest containing tier.
type Ledger struct {
	seen map[string]struct{}
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{seen: make(map[string]struct{})}
}

// Accept verifies a place against the current radius tier. It returns
// the materialized Candidate and true on first acceptance; false when
// the identifier was already accepted or the place lies outside the
// tier's true radius.
func (l *Ledger) Accept(p model.Place, radiusM int, center model.Coordinate) (model.Candidate, bool) {
	if _, ok := l.seen[p.PlaceID]; ok {
		return model.Candidate{}, false
	}

	distanceKM := geo.DistanceKM(center, p.Location)
	if distanceKM > float64(radiusM)/1000.0 {
		return model.Candidate{}, false
	}

	l.seen[p.PlaceID] = struct{}{}
	return model.Candidate{
		Place:           p,
		DistanceKM:      distanceKM,
		AcceptedRadiusM: radiusM,
	}, true
}

// Len returns the number of accepted identifiers.
func (l *Ledger) Len() int {
	return len(l.seen)
}

// IDs returns the accepted identifiers in sorted order for stable
// serialization.
func (l *Ledger) IDs() []string {
	ids := make([]string, 0, len(l.seen))
	for id := range l.seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Restore seeds the ledger with previously accepted identifiers.
func (l *Ledger) Restore(ids []string) {
	for _, id := range ids {
		l.seen[id] = struct{}{}
	}
}

// Reset clears all accepted identifiers for a fresh run.
func (l *Ledger) Reset() {
	l.seen = make(map[string]struct{})
}
