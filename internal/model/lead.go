// Package model defines the typed values flowing through the prospecting
// pipeline: Place (raw search result) -> Candidate (radius-verified) ->
// Lead (enriched, websiteless). Each stage produces a new value; nothing
// mutates a shared bag across stages.
package model

import "time"

// Coordinate is a geographic point in floating-point degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place is a raw nearby-search result. Immutable once produced.
// A zero Rating means the provider returned no rating.
type Place struct {
	PlaceID  string     `json:"place_id"`
	Name     string     `json:"name"`
	Location Coordinate `json:"location"`
	Types    []string   `json:"types,omitempty"`
	Rating   float64    `json:"rating,omitempty"`
}

// Candidate is a Place confirmed to lie within the radius tier at which
// it was accepted. DistanceKM <= AcceptedRadiusM/1000 by construction.
type Candidate struct {
	Place
	DistanceKM      float64 `json:"distance_km"`
	AcceptedRadiusM int     `json:"accepted_radius_m"`
}

// Lead is a Candidate confirmed to be operational, reachable by phone,
// and lacking a website, carrying the derived sales-scoring fields.
type Lead struct {
	Candidate
	Phone          string  `json:"phone"`
	Address        string  `json:"address,omitempty"`
	CountryCode    string  `json:"country_code,omitempty"`
	BusinessType   string  `json:"business_type"`
	EstimatedValue int     `json:"estimated_value"`
	Priority       float64 `json:"priority"`
}

// Progress tracks the counters surfaced while a run advances.
type Progress struct {
	TotalAreas       int `json:"total_areas"`
	CompletedAreas   int `json:"completed_areas"`
	TotalBusinesses  int `json:"total_businesses"`
	PotentialClients int `json:"potential_clients"`
}

// SearchRun is the accumulated state of one search invocation. It is
// serialized wholesale for resume-after-restart; restoring it never
// replays provider queries, only display state.
type SearchRun struct {
	ID           string      `json:"id"`
	Center       Coordinate  `json:"center"`
	Profile      string      `json:"profile"`
	BusinessType string      `json:"business_type"`
	Progress     Progress    `json:"progress"`
	SeenPlaceIDs []string    `json:"seen_place_ids,omitempty"`
	AllFound     []Candidate `json:"all_found,omitempty"`
	Leads        []Lead      `json:"leads,omitempty"`
	View         string      `json:"view,omitempty"`
	CompletedAt  time.Time   `json:"completed_at,omitzero"`
}

// TotalEstimatedValue sums the estimated value across the lead list.
func (r *SearchRun) TotalEstimatedValue() int {
	total := 0
	for _, l := range r.Leads {
		total += l.EstimatedValue
	}
	return total
}

// Profile holds the onboarding data collected before first use.
type Profile struct {
	Name        string      `json:"name"`
	Role        string      `json:"role"`
	Country     string      `json:"country"`
	APIKey      string      `json:"api_key"`
	Location    *Coordinate `json:"location,omitempty"`
	CompletedAt time.Time   `json:"completed_at,omitzero"`
}
