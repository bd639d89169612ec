// Package state persists the search run and onboarding profile as
// JSON payloads in an opaque key-value store, so a finished search can
// be browsed again after restart without replaying provider queries.
package state

import (
	"context"
	"encoding/json"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/webless-hunter/prospect-cli/internal/model"
)

// Well-known keys. Each holds one JSON document.
const (
	keyRun     = "search_run"
	keyProfile = "profile"
)

// KV is an opaque string key-value store. Get reports absence via the
// boolean, not an error.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Close() error
}

// Store serializes runs and profiles over a KV backend.
type Store struct {
	kv KV
}

// New creates a Store over the given backend.
func New(kv KV) *Store {
	return &Store{kv: kv}
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.kv.Close()
}

// SaveRun persists the run under the well-known key.
func (s *Store) SaveRun(ctx context.Context, run *model.SearchRun) error {
	return s.save(ctx, keyRun, run)
}

// LoadRun restores the persisted run. Absence returns (nil, nil).
// A corrupt payload is treated as absence: discarded and removed.
func (s *Store) LoadRun(ctx context.Context) (*model.SearchRun, error) {
	var run model.SearchRun
	ok, err := s.load(ctx, keyRun, &run)
	if err != nil || !ok {
		return nil, err
	}
	return &run, nil
}

// ClearRun removes the persisted run.
func (s *Store) ClearRun(ctx context.Context) error {
	return eris.Wrap(s.kv.Remove(ctx, keyRun), "state: clear run")
}

// SaveProfile persists the onboarding profile.
func (s *Store) SaveProfile(ctx context.Context, p *model.Profile) error {
	return s.save(ctx, keyProfile, p)
}

// LoadProfile restores the onboarding profile. Absence returns (nil, nil).
func (s *Store) LoadProfile(ctx context.Context) (*model.Profile, error) {
	var p model.Profile
	ok, err := s.load(ctx, keyProfile, &p)
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}

func (s *Store) save(ctx context.Context, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return eris.Wrapf(err, "state: marshal %s", key)
	}
	return eris.Wrapf(s.kv.Set(ctx, key, string(payload)), "state: set %s", key)
}

func (s *Store) load(ctx context.Context, key string, v any) (bool, error) {
	payload, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return false, eris.Wrapf(err, "state: get %s", key)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(payload), v); err != nil {
		zap.L().Warn("discarding corrupt persisted state",
			zap.String("key", key), zap.Error(err))
		if removeErr := s.kv.Remove(ctx, key); removeErr != nil {
			return false, eris.Wrapf(removeErr, "state: remove corrupt %s", key)
		}
		return false, nil
	}
	return true, nil
}
