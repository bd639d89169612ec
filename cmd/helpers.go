package main

import (
	"context"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/webless-hunter/prospect-cli/internal/config"
	"github.com/webless-hunter/prospect-cli/internal/model"
	"github.com/webless-hunter/prospect-cli/internal/state"
	"github.com/webless-hunter/prospect-cli/pkg/places"
)

// openState opens the configured persistence backend and ensures the
// schema exists.
func openState(ctx context.Context) (*state.Store, error) {
	switch cfg.Store.Driver {
	case "sqlite", "":
		kv, err := state.NewSQLite(cfg.Store.Path)
		if err != nil {
			return nil, err
		}
		if err := kv.Migrate(ctx); err != nil {
			kv.Close()
			return nil, err
		}
		return state.New(kv), nil
	case "postgres":
		kv, err := state.NewPostgres(ctx, cfg.Store.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := kv.Migrate(ctx); err != nil {
			kv.Close()
			return nil, err
		}
		return state.New(kv), nil
	default:
		return nil, eris.Errorf("unknown store driver %q (valid: sqlite, postgres)", cfg.Store.Driver)
	}
}

// resolveAPIKey prefers the configured key, falling back to the
// onboarding profile, and gates on key format either way.
func resolveAPIKey(ctx context.Context, store *state.Store) (string, error) {
	key := cfg.Places.APIKey
	if key == "" {
		profile, err := store.LoadProfile(ctx)
		if err != nil {
			return "", err
		}
		if profile != nil {
			key = profile.APIKey
		}
	}
	if key == "" {
		return "", eris.New("no API key configured: set places.api_key or run 'prospect-cli profile set'")
	}
	if err := config.ValidateAPIKey(key); err != nil {
		return "", err
	}
	return key, nil
}

// placesClient builds the provider client with any base-URL override.
func placesClient(apiKey string) places.Client {
	var opts []places.Option
	if cfg.Places.BaseURL != "" {
		opts = append(opts, places.WithBaseURL(cfg.Places.BaseURL))
	}
	return places.NewClient(apiKey, opts...)
}

// resolveCenter accepts "lat,lng" directly and geocodes anything else.
// A location that cannot be resolved blocks the run before any search.
func resolveCenter(ctx context.Context, client places.Client, location string) (model.Coordinate, error) {
	if coord, ok := parseLatLng(location); ok {
		return coord, nil
	}

	resp, err := client.Geocode(ctx, location)
	if err != nil {
		return model.Coordinate{}, eris.Wrap(err, "resolve location")
	}
	if !resp.Status.Successful() || len(resp.Results) == 0 {
		return model.Coordinate{}, eris.Errorf("location %q not found", location)
	}
	loc := resp.Results[0].Geometry.Location
	return model.Coordinate{Lat: loc.Lat, Lng: loc.Lng}, nil
}

func parseLatLng(s string) (model.Coordinate, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return model.Coordinate{}, false
	}
	lat, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lng, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil {
		return model.Coordinate{}, false
	}
	return model.Coordinate{Lat: lat, Lng: lng}, true
}
