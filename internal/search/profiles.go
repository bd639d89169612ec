package search

import (
	"sort"

	"github.com/rotisserie/eris"
)

// profileRadii holds the fixed intensity ladders, meters, ascending.
// Radii must ascend: the ledger's first-acceptance-wins rule depends on
// smaller tiers being scanned first.
var profileRadii = map[string][]int{
	"hyperlocal":   {100, 250, 500, 750, 1000},
	"neighborhood": {100, 250, 500, 1000, 1500, 2000},
	"district":     {100, 500, 1000, 2000, 3000, 5000},
	"citywide":     {100, 1000, 2000, 5000, 10000, 15000, 20000},
	"regional":     {100, 1000, 5000, 10000, 20000, 35000, 50000},
}

// ProfileRadii returns the radius ladder for a named intensity profile.
func ProfileRadii(name string) ([]int, error) {
	radii, ok := profileRadii[name]
	if !ok {
		return nil, eris.Errorf("search: unknown intensity profile %q (valid: %v)", name, ProfileNames())
	}
	return radii, nil
}

// ProfileNames lists the valid profile names in stable order.
func ProfileNames() []string {
	names := make([]string, 0, len(profileRadii))
	for name := range profileRadii {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
