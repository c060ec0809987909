// Package turn orchestrates one simulation turn over the shared aggregate.
//
// Within a turn the components advance in dependency order: provinces,
// consolidation, and succession bonds first, repression resolution next, the
// risk evaluator last. The evaluator must see the fully updated aggregate,
// so a province crossing its secession threshold this turn counts toward
// territorial collapse this same turn.
package turn

import (
	"math/rand"

	"github.com/louisbranch/vanguard.state/internal/platform/random"
	"github.com/louisbranch/vanguard.state/internal/regime"
	"github.com/louisbranch/vanguard.state/internal/regime/province"
	"github.com/louisbranch/vanguard.state/internal/regime/verdict"
)

// CampaignResolver applies external narrative resolution to the active
// repression campaign: arrests and executions accrued, costs, outcomes.
// It runs after component advancement and before the evaluator.
type CampaignResolver func(s *regime.State) error

// Engine advances the aggregate one turn at a time.
//
// The engine is single-threaded by design; it owns no aggregate state of its
// own beyond the evaluator config and the run's random stream.
type Engine struct {
	evaluator *verdict.Evaluator
	rng       *rand.Rand
	resolver  CampaignResolver
}

// Option configures an Engine.
type Option func(*Engine)

// WithCampaignResolver installs the external repression resolution hook.
func WithCampaignResolver(resolver CampaignResolver) Option {
	return func(e *Engine) {
		e.resolver = resolver
	}
}

// NewEngine creates a turn engine for a run with the given seed.
func NewEngine(cfg verdict.Config, seed int64, opts ...Option) *Engine {
	e := &Engine{
		evaluator: verdict.NewEvaluator(cfg),
		rng:       random.NewRand(seed),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AdvanceTurn processes one complete turn and returns the terminal verdict
// if the run has ended. Decision and narrative effects must already have
// been applied to the aggregate by the caller.
//
// Once a verdict is returned the caller stops invoking the engine; the
// engine itself keeps no memory of past verdicts.
func (e *Engine) AdvanceTurn(s *regime.State) (verdict.Verdict, bool, error) {
	s.Turn++

	for _, p := range s.Provinces {
		province.Advance(p, s.National.Stability, s.Turn)
	}

	s.Consolidation.RecordTurnInPosition()
	s.Consolidation.Recalculate()

	for _, b := range s.Bonds {
		b.AdvanceTurn(s.Turn, e.rng)
	}

	if e.resolver != nil {
		if _, ok := s.ActiveCampaign(); ok {
			if err := e.resolver(s); err != nil {
				return verdict.Verdict{}, false, err
			}
		}
	}

	// The evaluator runs last, exactly once per turn.
	v, ended := e.evaluator.Evaluate(s)
	return v, ended, nil
}

// Evaluate re-runs the risk evaluation without advancing the turn. Because
// the evaluator is pure, this returns the same result as the evaluation at
// the end of AdvanceTurn for unchanged state.
func (e *Engine) Evaluate(s *regime.State) (verdict.Verdict, bool) {
	return e.evaluator.Evaluate(s)
}
