package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webless-hunter/prospect-cli/internal/model"
)

var dublin = model.Coordinate{Lat: 53.3498, Lng: -6.2603}

func TestLedger_AcceptOnce(t *testing.T) {
	l := NewLedger()
	p := model.Place{PlaceID: "p1", Name: "Corner Cafe", Location: dublin}

	cand, ok := l.Accept(p, 100, dublin)
	require.True(t, ok)
	assert.Equal(t, "p1", cand.PlaceID)
	assert.Equal(t, 100, cand.AcceptedRadiusM)
	assert.Zero(t, cand.DistanceKM)

	// Same identifier at a wider tier is a duplicate.
	_, ok = l.Accept(p, 500, dublin)
	assert.False(t, ok)
	assert.Equal(t, 1, l.Len())
}

func TestLedger_RejectsOutsideRadius(t *testing.T) {
	l := NewLedger()
	// Roughly 1.2km north of the center.
	far := model.Place{PlaceID: "far", Location: model.Coordinate{Lat: 53.3606, Lng: -6.2603}}

	_, ok := l.Accept(far, 1000, dublin)
	assert.False(t, ok)
	assert.Zero(t, l.Len())

	// The same place fits a 2000m tier.
	cand, ok := l.Accept(far, 2000, dublin)
	require.True(t, ok)
	assert.Equal(t, 2000, cand.AcceptedRadiusM)
	assert.InDelta(t, 1.2, cand.DistanceKM, 0.05)
}

func TestLedger_BoundaryIsInclusive(t *testing.T) {
	l := NewLedger()
	// About 80m north: inside the 100m tier but well outside none.
	near := model.Place{PlaceID: "near", Location: model.Coordinate{Lat: 53.35052, Lng: -6.2603}}

	cand, ok := l.Accept(near, 100, dublin)
	require.True(t, ok)
	assert.Less(t, cand.DistanceKM, 0.1)
}

func TestLedger_IDsSortedAndRestore(t *testing.T) {
	l := NewLedger()
	for _, id := range []string{"charlie", "alpha", "bravo"} {
		_, ok := l.Accept(model.Place{PlaceID: id, Location: dublin}, 100, dublin)
		require.True(t, ok)
	}
	assert.Equal(t, []string{"alpha", "bravo", "charlie"}, l.IDs())

	fresh := NewLedger()
	fresh.Restore(l.IDs())
	_, ok := fresh.Accept(model.Place{PlaceID: "bravo", Location: dublin}, 100, dublin)
	assert.False(t, ok, "restored identifiers count as seen")

	fresh.Reset()
	_, ok = fresh.Accept(model.Place{PlaceID: "bravo", Location: dublin}, 100, dublin)
	assert.True(t, ok)
}
