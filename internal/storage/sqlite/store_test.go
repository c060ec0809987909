package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/louisbranch/vanguard.state/internal/storage"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() unexpected error: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Close() unexpected error: %v", err)
		}
	})
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("Open with blank path should fail")
	}
}

func TestRunRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Millisecond)
	run := storage.Run{
		ID:         "run-1",
		ScenarioID: "velska.v1",
		Seed:       42,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := store.PutRun(ctx, run); err != nil {
		t.Fatalf("PutRun() unexpected error: %v", err)
	}

	got, err := store.GetRun(ctx, "run-1")
	if err != nil {
		t.Fatalf("GetRun() unexpected error: %v", err)
	}
	if got != run {
		t.Fatalf("GetRun() = %+v, want %+v", got, run)
	}

	// Upsert keeps the id stable and refreshes the rest.
	run.Seed = 43
	run.UpdatedAt = now.Add(time.Minute)
	if err := store.PutRun(ctx, run); err != nil {
		t.Fatalf("PutRun() upsert unexpected error: %v", err)
	}
	got, err = store.GetRun(ctx, "run-1")
	if err != nil {
		t.Fatalf("GetRun() unexpected error: %v", err)
	}
	if got.Seed != 43 || !got.UpdatedAt.Equal(run.UpdatedAt) {
		t.Fatalf("upsert not applied: %+v", got)
	}
}

func TestPutRunRequiresID(t *testing.T) {
	store := openTestStore(t)
	if err := store.PutRun(context.Background(), storage.Run{}); err == nil {
		t.Fatal("PutRun without id should fail")
	}
}

func TestGetRunNotFound(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.GetRun(context.Background(), "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("GetRun() error = %v, want ErrNotFound", err)
	}
}

func TestListRuns(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Millisecond)
	for i, id := range []string{"run-a", "run-b", "run-c"} {
		run := storage.Run{
			ID:         id,
			ScenarioID: "velska.v1",
			Seed:       int64(i),
			CreatedAt:  base.Add(time.Duration(i) * time.Second),
			UpdatedAt:  base.Add(time.Duration(i) * time.Second),
		}
		if err := store.PutRun(ctx, run); err != nil {
			t.Fatalf("PutRun() unexpected error: %v", err)
		}
	}

	runs, err := store.ListRuns(ctx)
	if err != nil {
		t.Fatalf("ListRuns() unexpected error: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("ListRuns() = %d runs, want 3", len(runs))
	}
	for i, id := range []string{"run-a", "run-b", "run-c"} {
		if runs[i].ID != id {
			t.Fatalf("runs[%d].ID = %q, want %q", i, runs[i].ID, id)
		}
	}
}

func TestTurnRecords(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Millisecond)
	if err := store.PutRun(ctx, storage.Run{ID: "run-1", ScenarioID: "velska.v1", CreatedAt: now, UpdatedAt: now}); err != nil {
		t.Fatalf("PutRun() unexpected error: %v", err)
	}

	for turn := 1; turn <= 3; turn++ {
		record := storage.TurnRecord{
			RunID:              "run-1",
			Turn:               turn,
			Stability:          60 - turn,
			PopularSupport:     55,
			MilitaryLoyalty:    65,
			ConsolidationScore: 20 + turn*2,
			SecededProvinces:   0,
			ActiveCampaign:     turn == 2,
			RecordedAt:         now.Add(time.Duration(turn) * time.Second),
		}
		if err := store.AppendTurnRecord(ctx, record); err != nil {
			t.Fatalf("AppendTurnRecord() unexpected error: %v", err)
		}
	}

	records, err := store.ListTurnRecords(ctx, "run-1")
	if err != nil {
		t.Fatalf("ListTurnRecords() unexpected error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("ListTurnRecords() = %d records, want 3", len(records))
	}
	for i, record := range records {
		if record.Turn != i+1 {
			t.Fatalf("records[%d].Turn = %d, want %d", i, record.Turn, i+1)
		}
	}
	if !records[1].ActiveCampaign {
		t.Fatal("turn 2 should be recorded with an active campaign")
	}
	if records[0].ActiveCampaign || records[2].ActiveCampaign {
		t.Fatal("turns 1 and 3 should not have an active campaign")
	}
	if records[0].Stability != 59 {
		t.Fatalf("records[0].Stability = %d, want 59", records[0].Stability)
	}
}

func TestVerdictRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Millisecond)
	if err := store.PutRun(ctx, storage.Run{ID: "run-1", ScenarioID: "velska.v1", CreatedAt: now, UpdatedAt: now}); err != nil {
		t.Fatalf("PutRun() unexpected error: %v", err)
	}

	record := storage.VerdictRecord{
		RunID:                  "run-1",
		Condition:              "military_coup",
		Severity:               "party_collapse",
		Cause:                  "2 senior officers have moved against the leadership",
		Turn:                   37,
		HighestRank:            10,
		RivalsDefeated:         2,
		PatronsOutlived:        1,
		MajorDecisions:         14,
		SurvivedAssassinations: 1,
		Successions:            0,
		CreatedAt:              now,
	}
	if err := store.PutVerdict(ctx, record); err != nil {
		t.Fatalf("PutVerdict() unexpected error: %v", err)
	}

	got, err := store.GetVerdict(ctx, "run-1")
	if err != nil {
		t.Fatalf("GetVerdict() unexpected error: %v", err)
	}
	if got != record {
		t.Fatalf("GetVerdict() = %+v, want %+v", got, record)
	}
}

func TestGetVerdictNotFound(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.GetVerdict(context.Background(), "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("GetVerdict() error = %v, want ErrNotFound", err)
	}
}
