// Package verdict decides, once per turn, whether the run has ended and why.
package verdict

// Condition tags the terminal condition that ended a run.
type Condition int

const (
	// ConditionUnspecified represents the absence of a verdict.
	ConditionUnspecified Condition = iota
	// ConditionNuclearWar is a global nuclear exchange.
	ConditionNuclearWar
	// ConditionTerritorialCollapse is the dissolution of the union.
	ConditionTerritorialCollapse
	// ConditionCapitalFallen is the loss of the capital.
	ConditionCapitalFallen
	// ConditionForeignInvasion is military defeat by a foreign power.
	ConditionForeignInvasion
	// ConditionRevolution is a popular uprising overthrowing the regime.
	ConditionRevolution
	// ConditionMilitaryCoup is the leader's removal by the armed forces.
	ConditionMilitaryCoup
	// ConditionCorruptionExposed is a fatal corruption scandal.
	ConditionCorruptionExposed
	// ConditionAssassination is the leader's murder by rivals.
	ConditionAssassination
	// ConditionNaturalDeath is the leader dying in office without an heir.
	ConditionNaturalDeath
	// ConditionPurged is the leader purged by an opposing coalition.
	ConditionPurged
)

func (c Condition) String() string {
	switch c {
	case ConditionNuclearWar:
		return "nuclear_war"
	case ConditionTerritorialCollapse:
		return "territorial_collapse"
	case ConditionCapitalFallen:
		return "capital_fallen"
	case ConditionForeignInvasion:
		return "foreign_invasion"
	case ConditionRevolution:
		return "revolution"
	case ConditionMilitaryCoup:
		return "military_coup"
	case ConditionCorruptionExposed:
		return "corruption_exposed"
	case ConditionAssassination:
		return "assassination"
	case ConditionNaturalDeath:
		return "natural_death"
	case ConditionPurged:
		return "purged"
	default:
		return "unspecified"
	}
}

// ParseCondition maps a stored string tag to its Condition. The boolean
// reports whether the tag is known.
func ParseCondition(tag string) (Condition, bool) {
	for c := ConditionNuclearWar; c <= ConditionPurged; c++ {
		if c.String() == tag {
			return c, true
		}
	}
	return ConditionUnspecified, false
}

// PreventableByHeir reports whether a viable designated heir suppresses this
// condition. System-level catastrophes are never preventable.
func (c Condition) PreventableByHeir() bool {
	switch c {
	case ConditionCorruptionExposed, ConditionAssassination, ConditionNaturalDeath, ConditionPurged:
		return true
	default:
		return false
	}
}

// SeverityClass groups conditions by how far the collapse reaches.
type SeverityClass int

const (
	// SeverityUnspecified represents an invalid severity value.
	SeverityUnspecified SeverityClass = iota
	// SeverityPersonalDefeat ends the leader but not the state.
	SeverityPersonalDefeat
	// SeverityPartyCollapse ends one-party rule.
	SeverityPartyCollapse
	// SeverityStateDissolution ends the state itself.
	SeverityStateDissolution
	// SeverityGlobalCatastrophe ends considerably more than the state.
	SeverityGlobalCatastrophe
)

func (s SeverityClass) String() string {
	switch s {
	case SeverityPersonalDefeat:
		return "personal_defeat"
	case SeverityPartyCollapse:
		return "party_collapse"
	case SeverityStateDissolution:
		return "state_dissolution"
	case SeverityGlobalCatastrophe:
		return "global_catastrophe"
	default:
		return "unspecified"
	}
}

// Severity returns the severity class of the condition.
func (c Condition) Severity() SeverityClass {
	switch c {
	case ConditionNuclearWar:
		return SeverityGlobalCatastrophe
	case ConditionTerritorialCollapse, ConditionCapitalFallen, ConditionForeignInvasion:
		return SeverityStateDissolution
	case ConditionRevolution, ConditionMilitaryCoup:
		return SeverityPartyCollapse
	case ConditionCorruptionExposed, ConditionAssassination, ConditionNaturalDeath, ConditionPurged:
		return SeverityPersonalDefeat
	default:
		return SeverityUnspecified
	}
}

// Stats is the snapshot of run statistics attached to a verdict.
type Stats struct {
	TurnsPlayed            int
	HighestRank            int
	RivalsDefeated         int
	PatronsOutlived        int
	MajorDecisions         int
	SurvivedAssassinations int
	Successions            int
}

// Verdict is the authoritative end-of-run decision. It is transient: the
// surrounding game loop renders it and stops invoking the evaluator.
type Verdict struct {
	Condition Condition
	Cause     string
	Stats     Stats
}
