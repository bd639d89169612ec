package search

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/webless-hunter/prospect-cli/internal/model"
)

// defaultRadiusDelay is the pause between radius tiers, omitted after
// the final tier.
const defaultRadiusDelay = 1500 * time.Millisecond

// RunState is the orchestrator's lifecycle state.
type RunState int32

// Orchestrator lifecycle states. A new run may start only from Idle,
// Done, or Failed; there is no mid-flight cancellation beyond the
// context, so re-entry while active is rejected.
const (
	StateIdle RunState = iota
	StateScanning
	StateEnriching
	StateDone
	StateFailed
)

// String returns the human-readable state name.
func (s RunState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateScanning:
		return "scanning"
	case StateEnriching:
		return "enriching"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Enricher qualifies the accumulated candidates into leads.
type Enricher interface {
	Enrich(ctx context.Context, center model.Coordinate, candidates []model.Candidate) ([]model.Lead, error)
}

// Saver persists a completed run.
type Saver interface {
	SaveRun(ctx context.Context, run *model.SearchRun) error
}

// Request describes one search invocation.
type Request struct {
	Center       model.Coordinate
	Profile      string
	BusinessType string
}

// Orchestrator drives the expanding-radius pipeline: per-tier scans
// through the dedup ledger, then enrichment over the full candidate
// set, then persistence.
type Orchestrator struct {
	scanner     *Scanner
	enricher    Enricher
	saver       Saver
	radiusDelay time.Duration
	sleep       func(context.Context, time.Duration)
	onProgress  func(model.Progress)

	mu    sync.Mutex
	state RunState
}

// OrchestratorOption configures the orchestrator.
type OrchestratorOption func(*Orchestrator)

// WithRadiusDelay overrides the pause between radius tiers.
func WithRadiusDelay(d time.Duration) OrchestratorOption {
	return func(o *Orchestrator) {
		o.radiusDelay = d
	}
}

// WithProgress registers a callback invoked after every counter update.
func WithProgress(fn func(model.Progress)) OrchestratorOption {
	return func(o *Orchestrator) {
		o.onProgress = fn
	}
}

// NewOrchestrator creates an Orchestrator. The saver may be nil when
// persistence is not wanted.
func NewOrchestrator(scanner *Scanner, enricher Enricher, saver Saver, opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{
		scanner:     scanner,
		enricher:    enricher,
		saver:       saver,
		radiusDelay: defaultRadiusDelay,
		sleep:       sleepCtx,
		state:       StateIdle,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// State returns the current lifecycle state.
func (o *Orchestrator) State() RunState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

func (o *Orchestrator) setState(s RunState) {
	o.mu.Lock()
	o.state = s
	o.mu.Unlock()
}

// begin moves to Scanning, rejecting re-entry while a run is active.
func (o *Orchestrator) begin() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	switch o.state {
	case StateIdle, StateDone, StateFailed:
		o.state = StateScanning
		return nil
	default:
		return eris.Errorf("search: run already active (state %s)", o.state)
	}
}

// Run executes one full search. Every invocation starts from a clean
// ledger and fresh counters; previous results are not carried over.
func (o *Orchestrator) Run(ctx context.Context, req Request) (*model.SearchRun, error) {
	radii, err := ProfileRadii(req.Profile)
	if err != nil {
		return nil, err
	}
	if err := o.begin(); err != nil {
		return nil, err
	}

	run, err := o.run(ctx, req, radii)
	if err != nil {
		o.setState(StateFailed)
		return nil, err
	}
	o.setState(StateDone)
	return run, nil
}

func (o *Orchestrator) run(ctx context.Context, req Request, radii []int) (*model.SearchRun, error) {
	log := zap.L().With(
		zap.String("profile", req.Profile),
		zap.String("business_type", req.BusinessType),
		zap.Float64("lat", req.Center.Lat),
		zap.Float64("lng", req.Center.Lng),
	)

	ledger := NewLedger()
	run := &model.SearchRun{
		ID:           uuid.NewString(),
		Center:       req.Center,
		Profile:      req.Profile,
		BusinessType: req.BusinessType,
		View:         "table",
		Progress:     model.Progress{TotalAreas: len(radii)},
	}

	log.Info("starting expanding-radius search", zap.Int("tiers", len(radii)))

	for i, radiusM := range radii {
		if err := ctx.Err(); err != nil {
			return nil, eris.Wrap(err, "search: run canceled")
		}

		found := o.scanner.Scan(ctx, req.Center, radiusM, req.BusinessType)

		accepted := 0
		for _, p := range found {
			if cand, ok := ledger.Accept(p, radiusM, req.Center); ok {
				run.AllFound = append(run.AllFound, cand)
				accepted++
			}
		}

		run.Progress.CompletedAreas = i + 1
		run.Progress.TotalBusinesses = len(run.AllFound)
		o.progress(run.Progress)

		log.Info("radius tier complete",
			zap.Int("radius_m", radiusM),
			zap.Int("returned", len(found)),
			zap.Int("accepted", accepted),
			zap.Int("accumulated", len(run.AllFound)),
		)

		if i < len(radii)-1 {
			o.sleep(ctx, o.radiusDelay)
		}
	}

	// Enrichment walks candidates closest-first.
	sort.Slice(run.AllFound, func(i, j int) bool {
		return run.AllFound[i].DistanceKM < run.AllFound[j].DistanceKM
	})

	o.setState(StateEnriching)
	log.Info("enriching candidates", zap.Int("count", len(run.AllFound)))

	leads, err := o.enricher.Enrich(ctx, req.Center, run.AllFound)
	if err != nil {
		return nil, eris.Wrap(err, "search: enrichment")
	}
	run.Leads = leads
	run.Progress.PotentialClients = len(leads)
	o.progress(run.Progress)

	run.SeenPlaceIDs = ledger.IDs()
	run.CompletedAt = time.Now().UTC()

	if o.saver != nil {
		if err := o.saver.SaveRun(ctx, run); err != nil {
			log.Error("persisting run state failed", zap.Error(err))
		}
	}

	log.Info("search complete",
		zap.Int("businesses_found", run.Progress.TotalBusinesses),
		zap.Int("potential_clients", run.Progress.PotentialClients),
	)
	return run, nil
}

func (o *Orchestrator) progress(p model.Progress) {
	if o.onProgress != nil {
		o.onProgress(p)
	}
}
