// Package simulate parses simulate command flags and runs headless seeded
// simulations for balancing work.
package simulate

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	entrypoint "github.com/louisbranch/vanguard.state/internal/platform/cmd"
	"github.com/louisbranch/vanguard.state/internal/platform/id"
	"github.com/louisbranch/vanguard.state/internal/platform/random"
	"github.com/louisbranch/vanguard.state/internal/regime/turn"
	"github.com/louisbranch/vanguard.state/internal/regime/verdict"
	"github.com/louisbranch/vanguard.state/internal/scenario"
	"github.com/louisbranch/vanguard.state/internal/storage"
	"github.com/louisbranch/vanguard.state/internal/storage/sqlite"
)

// Config holds simulate command configuration.
type Config struct {
	Runs     int    `env:"VANGUARD_STATE_SIMULATE_RUNS" envDefault:"10"`
	MaxTurns int    `env:"VANGUARD_STATE_SIMULATE_MAX_TURNS" envDefault:"200"`
	Seed     int64  `env:"VANGUARD_STATE_SIMULATE_SEED"`
	DBPath   string `env:"VANGUARD_STATE_SIMULATE_DB"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Runs, "runs", cfg.Runs, "Number of runs to simulate")
	fs.IntVar(&cfg.MaxTurns, "max-turns", cfg.MaxTurns, "Turn cap per run")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Base seed (0 picks a random seed)")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite path for run history (empty disables persistence)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes the configured simulation batch.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSimulate, func(ctx context.Context) error {
		return runBatch(ctx, cfg)
	})
}

func runBatch(ctx context.Context, cfg Config) error {
	sc, err := scenario.Default()
	if err != nil {
		return fmt.Errorf("load scenario: %w", err)
	}

	var evalCfg verdict.Config
	if err := entrypoint.ParseConfig(&evalCfg); err != nil {
		return fmt.Errorf("load thresholds: %w", err)
	}

	var store storage.RunStore
	if cfg.DBPath != "" {
		sqlStore, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open run store: %w", err)
		}
		defer sqlStore.Close()
		store = sqlStore
	}

	baseSeed := cfg.Seed
	if baseSeed == 0 {
		baseSeed, err = random.NewSeed()
		if err != nil {
			return fmt.Errorf("generate seed: %w", err)
		}
	}

	histogram := make(map[verdict.Condition]int)
	survived := 0
	for i := 0; i < cfg.Runs; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		seed := baseSeed + int64(i)
		result, err := simulateRun(ctx, sc, evalCfg, store, seed, cfg.MaxTurns)
		if err != nil {
			return err
		}
		if result == nil {
			survived++
			continue
		}
		histogram[result.Condition]++
	}

	log.Printf("simulated %d runs from seed %d", cfg.Runs, baseSeed)
	log.Printf("survived to turn cap: %d", survived)
	for cond, count := range histogram {
		log.Printf("%s: %d", cond, count)
	}
	return nil
}

// simulateRun plays one run to its verdict or the turn cap. It returns nil
// when the run survives the cap.
func simulateRun(ctx context.Context, sc *scenario.Scenario, evalCfg verdict.Config, store storage.RunStore, seed int64, maxTurns int) (*verdict.Verdict, error) {
	runID, err := id.NewID()
	if err != nil {
		return nil, fmt.Errorf("generate run id: %w", err)
	}

	state := sc.BuildState(runID, seed)
	engine := turn.NewEngine(evalCfg, seed)

	if store != nil {
		now := time.Now().UTC()
		if err := store.PutRun(ctx, storage.Run{
			ID:         runID,
			ScenarioID: sc.ID,
			Seed:       seed,
			CreatedAt:  now,
			UpdatedAt:  now,
		}); err != nil {
			return nil, err
		}
	}

	for state.Turn < maxTurns {
		v, ended, err := engine.AdvanceTurn(state)
		if err != nil {
			return nil, err
		}

		if store != nil {
			_, activeCampaign := state.ActiveCampaign()
			if err := store.AppendTurnRecord(ctx, storage.TurnRecord{
				RunID:              runID,
				Turn:               state.Turn,
				Stability:          state.National.Stability,
				PopularSupport:     state.National.PopularSupport,
				MilitaryLoyalty:    state.National.MilitaryLoyalty,
				ConsolidationScore: state.Consolidation.Score,
				SecededProvinces:   state.SecededCount(),
				ActiveCampaign:     activeCampaign,
				RecordedAt:         time.Now().UTC(),
			}); err != nil {
				return nil, err
			}
		}

		if ended {
			if store != nil {
				if err := store.PutVerdict(ctx, storage.VerdictRecord{
					RunID:                  runID,
					Condition:              v.Condition.String(),
					Severity:               v.Condition.Severity().String(),
					Cause:                  v.Cause,
					Turn:                   state.Turn,
					HighestRank:            v.Stats.HighestRank,
					RivalsDefeated:         v.Stats.RivalsDefeated,
					PatronsOutlived:        v.Stats.PatronsOutlived,
					MajorDecisions:         v.Stats.MajorDecisions,
					SurvivedAssassinations: v.Stats.SurvivedAssassinations,
					Successions:            v.Stats.Successions,
					CreatedAt:              time.Now().UTC(),
				}); err != nil {
					return nil, err
				}
			}
			return &v, nil
		}
	}
	return nil, nil
}
