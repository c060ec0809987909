package regime

// Var identifies a named numeric variable on the aggregate.
//
// The set is closed: narrative content that used to address these through
// free-form string keys goes through ParseVar at the scenario/storage
// boundary, so core paths never miss a lookup.
type Var int

const (
	// VarUnspecified represents an invalid variable.
	VarUnspecified Var = iota
	// VarWorldTension tracks escalation toward nuclear war, 0-100.
	VarWorldTension
	// VarOppositionCoalition tracks the strength of the coalition organizing
	// the leader's removal, 0-100.
	VarOppositionCoalition
)

func (v Var) String() string {
	switch v {
	case VarWorldTension:
		return "world_tension"
	case VarOppositionCoalition:
		return "opposition_coalition"
	default:
		return "unspecified"
	}
}

// ParseVar maps a stored string key to its Var. The boolean reports whether
// the key is known.
func ParseVar(key string) (Var, bool) {
	switch key {
	case "world_tension":
		return VarWorldTension, true
	case "opposition_coalition":
		return VarOppositionCoalition, true
	default:
		return VarUnspecified, false
	}
}

// Flag identifies a boolean condition raised by the narrative layer.
type Flag string

const (
	// FlagNuclearEscalation marks an explicit nuclear exchange.
	FlagNuclearEscalation Flag = "nuclear_escalation"
	// FlagTerritorialCollapse marks narrative-decreed dissolution of the union.
	FlagTerritorialCollapse Flag = "territorial_collapse"
	// FlagCapitalFallen marks narrative-decreed loss of the capital.
	FlagCapitalFallen Flag = "capital_fallen"
	// FlagCapitalCaptured marks the capital taken by a hostile force.
	FlagCapitalCaptured Flag = "capital_captured"
	// FlagInvasionDefeat marks explicit military defeat by a foreign power.
	FlagInvasionDefeat Flag = "invasion_defeat"
	// FlagForeignOccupation marks foreign troops on home territory.
	FlagForeignOccupation Flag = "foreign_occupation"
	// FlagCoupLaunched marks a narrative-decreed military coup.
	FlagCoupLaunched Flag = "coup_launched"
	// FlagCorruptionExposed marks the leader's corruption made public.
	FlagCorruptionExposed Flag = "corruption_exposed"
	// FlagDeathImminent marks the leader's failing health.
	FlagDeathImminent Flag = "death_imminent"
)

// Flags is the aggregate's set of raised conditions.
type Flags map[Flag]bool

// Has reports whether the flag is raised.
func (f Flags) Has(flag Flag) bool {
	return f[flag]
}

// Raise sets the flag.
func (f Flags) Raise(flag Flag) {
	f[flag] = true
}

// Clear unsets the flag.
func (f Flags) Clear(flag Flag) {
	delete(f, flag)
}
