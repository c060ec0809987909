// Package province models per-region secession pressure.
//
// Each governed territory carries a secession-progress counter that the turn
// loop advances as a function of national stability and the province's own
// scores. Status escalation through Advance is monotonic; only the explicit
// martial-law operations can reduce a province's status.
package province

// Category classifies a governed territory.
type Category int

const (
	// CategoryUnspecified represents an invalid category value.
	CategoryUnspecified Category = iota
	// CategoryCapital is the seat of government; it can never secede.
	CategoryCapital
	// CategoryIndustrial is a manufacturing heartland.
	CategoryIndustrial
	// CategoryAgricultural is a food-producing region.
	CategoryAgricultural
	// CategoryBorder is a frontier region exposed to foreign pressure.
	CategoryBorder
	// CategoryAutonomous is a nominally self-governing region.
	CategoryAutonomous
	// CategoryCoastal is a maritime trade region.
	CategoryCoastal
	// CategoryExtractive is a resource-extraction region.
	CategoryExtractive
)

func (c Category) String() string {
	switch c {
	case CategoryCapital:
		return "capital"
	case CategoryIndustrial:
		return "industrial"
	case CategoryAgricultural:
		return "agricultural"
	case CategoryBorder:
		return "border"
	case CategoryAutonomous:
		return "autonomous"
	case CategoryCoastal:
		return "coastal"
	case CategoryExtractive:
		return "extractive"
	default:
		return "unspecified"
	}
}

// Status describes a province's unrest stage.
type Status int

const (
	// StatusStable indicates no organized unrest.
	StatusStable Status = iota
	// StatusUnrest indicates scattered protest activity.
	StatusUnrest
	// StatusCrisis indicates sustained organized opposition.
	StatusCrisis
	// StatusRebellion indicates open armed resistance.
	StatusRebellion
	// StatusSeceding indicates an active secession movement.
	StatusSeceding
	// StatusSeceded indicates the province has left the union. Terminal.
	StatusSeceded
	// StatusMartialLaw indicates direct military administration.
	StatusMartialLaw
)

// Severity returns the escalation rank of the status on a 0-5 scale.
// Martial law ranks with rebellion: the per-turn escalation path must not
// downgrade a garrisoned province to rebellion while suppression is active.
func (s Status) Severity() int {
	switch s {
	case StatusStable:
		return 0
	case StatusUnrest:
		return 1
	case StatusCrisis:
		return 2
	case StatusRebellion, StatusMartialLaw:
		return 3
	case StatusSeceding:
		return 4
	case StatusSeceded:
		return 5
	default:
		return 0
	}
}

func (s Status) String() string {
	switch s {
	case StatusStable:
		return "stable"
	case StatusUnrest:
		return "unrest"
	case StatusCrisis:
		return "crisis"
	case StatusRebellion:
		return "rebellion"
	case StatusSeceding:
		return "seceding"
	case StatusSeceded:
		return "seceded"
	case StatusMartialLaw:
		return "martial_law"
	default:
		return "unspecified"
	}
}

// Governor is the optional local administrator record.
type Governor struct {
	Name            string
	Loyalty         int
	Competence      int
	Corruption      int
	LocalPopularity int
}

// Province is a governed territory owned by the regime-state aggregate.
// It is created at campaign start and mutated once per turn by Advance.
type Province struct {
	ID       string
	Name     string
	Category Category
	Status   Status

	// SecessionProgress tracks advancement toward leaving the union, 0-100.
	SecessionProgress int
	// TurnsInStatus counts consecutive turns spent in the current status.
	TurnsInStatus int

	PartyControl     int
	PopularLoyalty   int
	MilitaryPresence int
	AutonomyDesire   int

	DistinctCulture  bool
	DistinctLanguage bool
	Grievances       []string

	Governor *Governor
}

// Secession thresholds for status re-derivation.
const (
	secededProgress  = 100
	secedingProgress = 75
	rebellionProgress = 50
)

// CanSecede reports whether the province can accumulate secession pressure.
// The capital, content provinces, and provinces without a distinct culture
// never secede.
func (p *Province) CanSecede() bool {
	if p.Category == CategoryCapital {
		return false
	}
	if p.AutonomyDesire <= 50 {
		return false
	}
	return p.DistinctCulture
}

// StabilityScore derives an aggregate 0-100 stability measure from the
// province's control, loyalty, and garrison scores.
func (p *Province) StabilityScore() int {
	return (p.PartyControl + p.PopularLoyalty + p.MilitaryPresence) / 3
}

// Advance evolves the province's secession trajectory for one turn.
//
// A seceded province is terminal and never changes. Provinces that cannot
// secede have their progress forced to zero. Otherwise additive pressure
// contributions are summed, then a mutually exclusive status override or
// multiplier is applied, and progress is clamped to [0,100] before the
// status is re-derived. Status escalation here is monotonic.
func Advance(p *Province, nationalStability, turn int) {
	if p.Status == StatusSeceded {
		return
	}
	p.TurnsInStatus++

	if !p.CanSecede() {
		p.SecessionProgress = 0
		return
	}

	delta := 0
	switch {
	case p.AutonomyDesire > 70:
		delta += 3
	case p.AutonomyDesire > 50:
		delta += 1
	}
	switch {
	case nationalStability < 30:
		delta += 5
	case nationalStability < 50:
		delta += 2
	}
	if p.PartyControl < 30 {
		delta += 3
	}
	if p.PopularLoyalty < 30 {
		delta += 2
	}

	// Status overrides are evaluated after the additive pressure and are
	// mutually exclusive by current status. Suppression and natural
	// regression dominate all other pressure.
	switch p.Status {
	case StatusRebellion:
		delta *= 2
	case StatusSeceding:
		delta *= 3
	case StatusMartialLaw:
		delta = -5
	case StatusStable:
		delta = -2
	}

	p.SecessionProgress = clampScore(p.SecessionProgress + delta)

	switch {
	case p.SecessionProgress >= secededProgress:
		p.setStatus(StatusSeceded)
	case p.SecessionProgress >= secedingProgress && p.Status != StatusSeceding:
		p.setStatus(StatusSeceding)
	case p.SecessionProgress >= rebellionProgress && p.Status.Severity() < 3:
		p.setStatus(StatusRebellion)
	}
}

// ImposeMartialLaw places the province under direct military administration.
// All score adjustments are clamped, never rejected.
func (p *Province) ImposeMartialLaw() {
	if p.Status == StatusSeceded {
		return
	}
	p.setStatus(StatusMartialLaw)
	p.MilitaryPresence = clampScore(p.MilitaryPresence + 30)
	p.PartyControl = clampScore(p.PartyControl + 20)
	p.PopularLoyalty = clampScore(p.PopularLoyalty - 15)
	p.AutonomyDesire = clampScore(p.AutonomyDesire + 10)
}

// LiftMartialLaw ends military administration and re-derives the province
// status from its instability risk. Lifting draws down the garrison.
func (p *Province) LiftMartialLaw() {
	if p.Status != StatusMartialLaw {
		return
	}

	risk := 100 - p.StabilityScore() + p.AutonomyDesire/2 + len(p.Grievances)*5
	switch {
	case risk > 60:
		p.setStatus(StatusCrisis)
	case risk > 40:
		p.setStatus(StatusUnrest)
	default:
		p.setStatus(StatusStable)
	}
	p.MilitaryPresence = clampScore(p.MilitaryPresence - 20)
}

func (p *Province) setStatus(status Status) {
	if p.Status == status {
		return
	}
	p.Status = status
	p.TurnsInStatus = 0
}

func clampScore(v int) int {
	return min(max(v, 0), 100)
}
