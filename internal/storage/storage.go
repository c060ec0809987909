// Package storage defines persistence interfaces for run history.
//
// Persistence is a supporting concern: the simulation core operates purely
// on the in-memory aggregate, and the surrounding services record runs,
// per-turn journal entries, and terminal verdicts for later inspection.
package storage

import (
	"context"
	"time"

	apperrors "github.com/louisbranch/vanguard.state/internal/platform/errors"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = apperrors.New(apperrors.CodeNotFound, "record not found")

// Run is one simulation run record.
type Run struct {
	ID         string
	ScenarioID string
	Seed       int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TurnRecord is one journal entry summarizing an advanced turn.
type TurnRecord struct {
	RunID              string
	Turn               int
	Stability          int
	PopularSupport     int
	MilitaryLoyalty    int
	ConsolidationScore int
	SecededProvinces   int
	ActiveCampaign     bool
	RecordedAt         time.Time
}

// VerdictRecord is the persisted terminal verdict for a completed run.
type VerdictRecord struct {
	RunID                  string
	Condition              string
	Severity               string
	Cause                  string
	Turn                   int
	HighestRank            int
	RivalsDefeated         int
	PatronsOutlived        int
	MajorDecisions         int
	SurvivedAssassinations int
	Successions            int
	CreatedAt              time.Time
}

// RunStore persists runs, their turn journals, and terminal verdicts.
type RunStore interface {
	PutRun(ctx context.Context, run Run) error
	GetRun(ctx context.Context, id string) (Run, error)
	ListRuns(ctx context.Context) ([]Run, error)

	AppendTurnRecord(ctx context.Context, record TurnRecord) error
	ListTurnRecords(ctx context.Context, runID string) ([]TurnRecord, error)

	PutVerdict(ctx context.Context, record VerdictRecord) error
	GetVerdict(ctx context.Context, runID string) (VerdictRecord, error)
}
