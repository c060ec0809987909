package verdict

import (
	"fmt"
	"math/rand"

	"github.com/louisbranch/vanguard.state/internal/platform/random"
	"github.com/louisbranch/vanguard.state/internal/regime"
	"github.com/louisbranch/vanguard.state/internal/regime/province"
)

// Config holds the tuned thresholds for every terminal condition. They are
// balancing content, so they load from the environment rather than being
// hard-coded.
type Config struct {
	WorldTensionLimit   int `env:"VANGUARD_STATE_WORLD_TENSION_LIMIT" envDefault:"100"`
	SecededLimit        int `env:"VANGUARD_STATE_SECEDED_LIMIT" envDefault:"3"`
	BorderSecededLimit  int `env:"VANGUARD_STATE_BORDER_SECEDED_LIMIT" envDefault:"2"`
	RevolutionStability int `env:"VANGUARD_STATE_REVOLUTION_STABILITY" envDefault:"30"`
	RevolutionSupport   int `env:"VANGUARD_STATE_REVOLUTION_SUPPORT" envDefault:"30"`

	CoupStability          int `env:"VANGUARD_STATE_COUP_STABILITY" envDefault:"30"`
	CoupMilitaryLoyalty    int `env:"VANGUARD_STATE_COUP_MILITARY_LOYALTY" envDefault:"40"`
	CoupMinHostileOfficers int `env:"VANGUARD_STATE_COUP_MIN_HOSTILE_OFFICERS" envDefault:"2"`
	HostileOfficerRank     int `env:"VANGUARD_STATE_HOSTILE_OFFICER_RANK" envDefault:"6"`
	HostileDisposition     int `env:"VANGUARD_STATE_HOSTILE_DISPOSITION" envDefault:"30"`

	CorruptionLevel         int `env:"VANGUARD_STATE_CORRUPTION_LEVEL" envDefault:"70"`
	CorruptionFavorStanding int `env:"VANGUARD_STATE_CORRUPTION_FAVOR_STANDING" envDefault:"50"`

	AssassinationRivalThreat int `env:"VANGUARD_STATE_ASSASSINATION_RIVAL_THREAT" envDefault:"80"`
	AssassinationNetwork     int `env:"VANGUARD_STATE_ASSASSINATION_NETWORK" envDefault:"10"`

	PurgePatronFavor       int `env:"VANGUARD_STATE_PURGE_PATRON_FAVOR" envDefault:"5"`
	PurgeStanding          int `env:"VANGUARD_STATE_PURGE_STANDING" envDefault:"10"`
	PurgeCoalitionStrength int `env:"VANGUARD_STATE_PURGE_COALITION_STRENGTH" envDefault:"80"`

	HeirDisposition int `env:"VANGUARD_STATE_HEIR_DISPOSITION" envDefault:"50"`
}

// DefaultConfig returns the default tuned thresholds.
func DefaultConfig() Config {
	return Config{
		WorldTensionLimit:        100,
		SecededLimit:             3,
		BorderSecededLimit:       2,
		RevolutionStability:      30,
		RevolutionSupport:        30,
		CoupStability:            30,
		CoupMilitaryLoyalty:      40,
		CoupMinHostileOfficers:   2,
		HostileOfficerRank:       6,
		HostileDisposition:       30,
		CorruptionLevel:          70,
		CorruptionFavorStanding:  50,
		AssassinationRivalThreat: 80,
		AssassinationNetwork:     10,
		PurgePatronFavor:         5,
		PurgeStanding:            10,
		PurgeCoalitionStrength:   80,
		HeirDisposition:          50,
	}
}

// Evaluator produces the single authoritative per-turn verdict.
//
// Evaluate is a pure function of the aggregate, the config, and the run
// seed: the coup roll draws from a source derived from the seed and the
// current turn, so re-evaluating unchanged state returns the same result.
type Evaluator struct {
	cfg Config
}

// NewEvaluator creates an evaluator with the given thresholds.
func NewEvaluator(cfg Config) *Evaluator {
	return &Evaluator{cfg: cfg}
}

// Evaluate checks the terminal conditions in fixed order and returns the
// verdict for the first that matches, or false when the run continues.
//
// System-level catastrophes that no heir can mitigate are checked before the
// personal failures that a viable heir suppresses. The aggregate is read
// only; assembling run statistics alters no state.
func (e *Evaluator) Evaluate(s *regime.State) (Verdict, bool) {
	if cond, cause, ok := e.check(s); ok {
		return Verdict{
			Condition: cond,
			Cause:     cause,
			Stats:     collectStats(s),
		}, true
	}
	return Verdict{}, false
}

func (e *Evaluator) check(s *regime.State) (Condition, string, bool) {
	// 1. Nuclear war.
	if s.Var(regime.VarWorldTension) >= e.cfg.WorldTensionLimit || s.Flags.Has(regime.FlagNuclearEscalation) {
		return ConditionNuclearWar, "world tension reached the point of no return", true
	}

	// 2. Territorial disintegration.
	if s.Flags.Has(regime.FlagTerritorialCollapse) {
		return ConditionTerritorialCollapse, "the union has dissolved", true
	}
	if seceded := s.SecededCount(); seceded >= e.cfg.SecededLimit {
		return ConditionTerritorialCollapse,
			fmt.Sprintf("%d provinces have seceded from the union", seceded), true
	}

	// 3. Capital falls.
	if s.Flags.Has(regime.FlagCapitalFallen) || s.Flags.Has(regime.FlagCapitalCaptured) {
		return ConditionCapitalFallen, "the capital has fallen", true
	}
	if capital, ok := s.CapitalProvince(); ok && capital.Status == province.StatusSeceded {
		return ConditionCapitalFallen, "the capital has broken away from the union", true
	}

	// 4. Foreign invasion.
	if s.Flags.Has(regime.FlagInvasionDefeat) {
		return ConditionForeignInvasion, "the armed forces have been defeated in the field", true
	}
	if s.SecededBorderCount() >= e.cfg.BorderSecededLimit && s.Flags.Has(regime.FlagForeignOccupation) {
		return ConditionForeignInvasion, "foreign troops occupy the broken border regions", true
	}

	// 5. Revolution. Both gates must hold simultaneously.
	if s.National.Stability <= e.cfg.RevolutionStability && s.National.PopularSupport <= e.cfg.RevolutionSupport {
		return ConditionRevolution, "the masses have risen against the party", true
	}

	// 6. Military coup.
	if cond, cause, ok := e.checkCoup(s); ok {
		return cond, cause, ok
	}

	heir := e.hasViableHeir(s)

	// 7. Corruption exposure.
	if !heir &&
		s.Flags.Has(regime.FlagCorruptionExposed) &&
		s.Personal.CorruptionLevel >= e.cfg.CorruptionLevel &&
		s.Personal.PatronFavor+s.Personal.Standing < e.cfg.CorruptionFavorStanding {
		return ConditionCorruptionExposed, "the corruption scandal has consumed the leadership", true
	}

	// 8. Assassination.
	if !heir &&
		s.Personal.RivalThreat >= e.cfg.AssassinationRivalThreat &&
		s.Personal.Network <= e.cfg.AssassinationNetwork {
		return ConditionAssassination, "rivals have struck down the unprotected leader", true
	}

	// 9. Natural death.
	if !heir && s.Flags.Has(regime.FlagDeathImminent) {
		return ConditionNaturalDeath, "the leader has died in office with no successor", true
	}

	// 10. Purge.
	if !heir &&
		s.Personal.PatronFavor <= e.cfg.PurgePatronFavor &&
		s.Personal.Standing <= e.cfg.PurgeStanding &&
		s.Var(regime.VarOppositionCoalition) >= e.cfg.PurgeCoalitionStrength {
		return ConditionPurged, "an opposing coalition has purged the leader", true
	}

	return ConditionUnspecified, "", false
}

// checkCoup applies the coup gates and, when no explicit flag decides it,
// a weighted roll that only fires with enough senior hostile officers.
func (e *Evaluator) checkCoup(s *regime.State) (Condition, string, bool) {
	stability := s.National.Stability
	military := s.National.MilitaryLoyalty
	if stability > e.cfg.CoupStability || military > e.cfg.CoupMilitaryLoyalty {
		return ConditionUnspecified, "", false
	}

	if s.Flags.Has(regime.FlagCoupLaunched) {
		return ConditionMilitaryCoup, "the generals have seized the government", true
	}

	hostile := s.HostileOfficerCount(e.cfg.HostileOfficerRank, e.cfg.HostileDisposition)
	if hostile < e.cfg.CoupMinHostileOfficers {
		return ConditionUnspecified, "", false
	}

	chance := (100-stability)/2 + (100-military)/2
	rng := rand.New(rand.NewSource(random.TurnSeed(s.Seed, s.Turn)))
	if rng.Intn(100) < chance {
		return ConditionMilitaryCoup,
			fmt.Sprintf("%d senior officers have moved against the leadership", hostile), true
	}
	return ConditionUnspecified, "", false
}

// hasViableHeir reports whether a designated heir exists, remains active,
// and meets the disposition bar.
//
// This deliberately ignores the succession bond's ReadyToSucceed predicate:
// viability here is about the party accepting the heir, not about the heir
// being prepared.
func (e *Evaluator) hasViableHeir(s *regime.State) bool {
	heir, ok := s.DesignatedHeir()
	if !ok {
		return false
	}
	return heir.Active() && heir.Disposition >= e.cfg.HeirDisposition
}

// collectStats assembles the run statistics snapshot. Pure read.
func collectStats(s *regime.State) Stats {
	return Stats{
		TurnsPlayed:            s.Turn,
		HighestRank:            s.HighestRank(),
		RivalsDefeated:         s.Tally.RivalsDefeated,
		PatronsOutlived:        s.Tally.PatronsOutlived,
		MajorDecisions:         s.Tally.MajorDecisions,
		SurvivedAssassinations: s.Tally.SurvivedAssassinations,
		Successions:            s.Tally.Successions,
	}
}
