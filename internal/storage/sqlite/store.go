// Package sqlite implements run-history persistence over SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	apperrors "github.com/louisbranch/vanguard.state/internal/platform/errors"
	"github.com/louisbranch/vanguard.state/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/vanguard.state/internal/storage"
	"github.com/louisbranch/vanguard.state/internal/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// toMillis normalizes timestamps into millisecond precision for storage.
func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// fromMillis restores millisecond precision and keeps UTC normalization.
func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Store implements storage.RunStore over a single SQLite file.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a run-history SQLite store and applies bundled migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return store, nil
}

// Close releases the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutRun inserts or updates a run record.
func (s *Store) PutRun(ctx context.Context, run storage.Run) error {
	if strings.TrimSpace(run.ID) == "" {
		return apperrors.New(apperrors.CodeRunEmptyID, "run id is required")
	}
	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO runs (id, scenario_id, seed, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    scenario_id = excluded.scenario_id,
    seed = excluded.seed,
    updated_at = excluded.updated_at
`, run.ID, run.ScenarioID, run.Seed, toMillis(run.CreatedAt), toMillis(run.UpdatedAt))
	if err != nil {
		return fmt.Errorf("put run: %w", err)
	}
	return nil
}

// GetRun fetches a run record by id.
func (s *Store) GetRun(ctx context.Context, id string) (storage.Run, error) {
	row := s.sqlDB.QueryRowContext(ctx, `
SELECT id, scenario_id, seed, created_at, updated_at
FROM runs WHERE id = ?
`, id)

	var run storage.Run
	var createdAt, updatedAt int64
	if err := row.Scan(&run.ID, &run.ScenarioID, &run.Seed, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Run{}, storage.ErrNotFound
		}
		return storage.Run{}, fmt.Errorf("get run: %w", err)
	}
	run.CreatedAt = fromMillis(createdAt)
	run.UpdatedAt = fromMillis(updatedAt)
	return run, nil
}

// ListRuns returns all run records ordered by creation time.
func (s *Store) ListRuns(ctx context.Context) ([]storage.Run, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, scenario_id, seed, created_at, updated_at
FROM runs ORDER BY created_at, id
`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []storage.Run
	for rows.Next() {
		var run storage.Run
		var createdAt, updatedAt int64
		if err := rows.Scan(&run.ID, &run.ScenarioID, &run.Seed, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.CreatedAt = fromMillis(createdAt)
		run.UpdatedAt = fromMillis(updatedAt)
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// AppendTurnRecord appends one turn journal entry.
func (s *Store) AppendTurnRecord(ctx context.Context, record storage.TurnRecord) error {
	active := 0
	if record.ActiveCampaign {
		active = 1
	}
	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO turn_records (
    run_id, turn, stability, popular_support, military_loyalty,
    consolidation_score, seceded_provinces, active_campaign, recorded_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`, record.RunID, record.Turn, record.Stability, record.PopularSupport,
		record.MilitaryLoyalty, record.ConsolidationScore, record.SecededProvinces,
		active, toMillis(record.RecordedAt))
	if err != nil {
		return fmt.Errorf("append turn record: %w", err)
	}
	return nil
}

// ListTurnRecords returns a run's journal in turn order.
func (s *Store) ListTurnRecords(ctx context.Context, runID string) ([]storage.TurnRecord, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT run_id, turn, stability, popular_support, military_loyalty,
       consolidation_score, seceded_provinces, active_campaign, recorded_at
FROM turn_records WHERE run_id = ? ORDER BY turn
`, runID)
	if err != nil {
		return nil, fmt.Errorf("list turn records: %w", err)
	}
	defer rows.Close()

	var records []storage.TurnRecord
	for rows.Next() {
		var record storage.TurnRecord
		var active int
		var recordedAt int64
		if err := rows.Scan(&record.RunID, &record.Turn, &record.Stability,
			&record.PopularSupport, &record.MilitaryLoyalty, &record.ConsolidationScore,
			&record.SecededProvinces, &active, &recordedAt); err != nil {
			return nil, fmt.Errorf("scan turn record: %w", err)
		}
		record.ActiveCampaign = active != 0
		record.RecordedAt = fromMillis(recordedAt)
		records = append(records, record)
	}
	return records, rows.Err()
}

// PutVerdict stores the terminal verdict for a run.
func (s *Store) PutVerdict(ctx context.Context, record storage.VerdictRecord) error {
	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO verdicts (
    run_id, condition, severity, cause, turn, highest_rank,
    rivals_defeated, patrons_outlived, major_decisions,
    survived_assassinations, successions, created_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(run_id) DO UPDATE SET
    condition = excluded.condition,
    severity = excluded.severity,
    cause = excluded.cause,
    turn = excluded.turn
`, record.RunID, record.Condition, record.Severity, record.Cause, record.Turn,
		record.HighestRank, record.RivalsDefeated, record.PatronsOutlived,
		record.MajorDecisions, record.SurvivedAssassinations, record.Successions,
		toMillis(record.CreatedAt))
	if err != nil {
		return fmt.Errorf("put verdict: %w", err)
	}
	return nil
}

// GetVerdict fetches the terminal verdict for a run.
func (s *Store) GetVerdict(ctx context.Context, runID string) (storage.VerdictRecord, error) {
	row := s.sqlDB.QueryRowContext(ctx, `
SELECT run_id, condition, severity, cause, turn, highest_rank,
       rivals_defeated, patrons_outlived, major_decisions,
       survived_assassinations, successions, created_at
FROM verdicts WHERE run_id = ?
`, runID)

	var record storage.VerdictRecord
	var createdAt int64
	if err := row.Scan(&record.RunID, &record.Condition, &record.Severity,
		&record.Cause, &record.Turn, &record.HighestRank, &record.RivalsDefeated,
		&record.PatronsOutlived, &record.MajorDecisions,
		&record.SurvivedAssassinations, &record.Successions, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.VerdictRecord{}, storage.ErrNotFound
		}
		return storage.VerdictRecord{}, fmt.Errorf("get verdict: %w", err)
	}
	record.CreatedAt = fromMillis(createdAt)
	return record, nil
}

// Ensure Store implements RunStore.
var _ storage.RunStore = (*Store)(nil)
