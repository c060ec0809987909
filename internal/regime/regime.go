// Package regime holds the shared regime-state aggregate for one in-progress
// run.
//
// The aggregate is exclusively owned by the surrounding game loop: it is
// passed explicitly into every component call, mutated once per turn in
// dependency order, and read last by the risk evaluator. No component holds
// its own copy or hidden cross-turn state.
package regime

import (
	"github.com/louisbranch/vanguard.state/internal/regime/consolidation"
	"github.com/louisbranch/vanguard.state/internal/regime/province"
	"github.com/louisbranch/vanguard.state/internal/regime/repression"
	"github.com/louisbranch/vanguard.state/internal/regime/succession"
)

// National holds the nation-level stats, all 0-100.
type National struct {
	Stability             int
	PopularSupport        int
	MilitaryLoyalty       int
	EliteLoyalty          int
	Treasury              int
	IndustrialOutput      int
	FoodSupply            int
	InternationalStanding int
}

// Personal holds the leader's own stats, all 0-100.
type Personal struct {
	Standing        int
	PatronFavor     int
	RivalThreat     int
	Network         int
	CorruptionLevel int
}

// PositionRecord is one entry in the leader's career history.
type PositionRecord struct {
	Title    string
	Rank     int
	FromTurn int
	ToTurn   int
}

// RunTally accumulates run statistics surfaced in the terminal verdict.
type RunTally struct {
	RivalsDefeated         int
	PatronsOutlived        int
	MajorDecisions         int
	SurvivedAssassinations int
	Successions            int
}

// State is the regime-state aggregate for one run.
type State struct {
	RunID string
	Seed  int64
	Turn  int

	National National
	Personal Personal

	Vars  map[Var]int
	Flags Flags

	Provinces  []*province.Province
	Characters []*Character

	// DesignatedHeirID names the character formally designated to succeed
	// the leader. Empty when no heir is designated.
	DesignatedHeirID string

	Bonds         []*succession.Bond
	Campaigns     []*repression.Campaign
	Consolidation consolidation.Tracker

	Positions []PositionRecord
	Tally     RunTally
}

// NewState creates an empty aggregate for the given run.
func NewState(runID string, seed int64) *State {
	return &State{
		RunID: runID,
		Seed:  seed,
		Vars:  make(map[Var]int),
		Flags: make(Flags),
	}
}

// Var returns the value of a named variable, zero when unset.
func (s *State) Var(v Var) int {
	return s.Vars[v]
}

// SetVar sets a named variable, clamped to [0,100].
func (s *State) SetVar(v Var, value int) {
	s.Vars[v] = min(max(value, 0), 100)
}

// AdjustVar adds delta to a named variable, clamped to [0,100].
func (s *State) AdjustVar(v Var, delta int) {
	s.SetVar(v, s.Var(v)+delta)
}

// CharacterByID resolves a roster member.
func (s *State) CharacterByID(id string) (*Character, bool) {
	for _, c := range s.Characters {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}

// DesignatedHeir resolves the formally designated heir, if any.
func (s *State) DesignatedHeir() (*Character, bool) {
	if s.DesignatedHeirID == "" {
		return nil, false
	}
	return s.CharacterByID(s.DesignatedHeirID)
}

// HostileOfficerCount counts active military-aligned characters senior and
// hostile enough to move against the leader.
func (s *State) HostileOfficerCount(minRank, maxDisposition int) int {
	count := 0
	for _, c := range s.Characters {
		if c.Faction != FactionMilitary {
			continue
		}
		if !c.Active() {
			continue
		}
		if c.Rank >= minRank && c.Disposition < maxDisposition {
			count++
		}
	}
	return count
}

// CapitalProvince returns the capital, if the scenario defined one.
func (s *State) CapitalProvince() (*province.Province, bool) {
	for _, p := range s.Provinces {
		if p.Category == province.CategoryCapital {
			return p, true
		}
	}
	return nil, false
}

// SecededCount counts provinces that have left the union.
func (s *State) SecededCount() int {
	count := 0
	for _, p := range s.Provinces {
		if p.Status == province.StatusSeceded {
			count++
		}
	}
	return count
}

// SecededBorderCount counts seceded border-category provinces.
func (s *State) SecededBorderCount() int {
	count := 0
	for _, p := range s.Provinces {
		if p.Category == province.CategoryBorder && p.Status == province.StatusSeceded {
			count++
		}
	}
	return count
}

// ActiveCampaign returns the repression campaign currently in progress.
func (s *State) ActiveCampaign() (*repression.Campaign, bool) {
	if len(s.Campaigns) == 0 {
		return nil, false
	}
	last := s.Campaigns[len(s.Campaigns)-1]
	if !last.Active {
		return nil, false
	}
	return last, true
}

// HighestRank scans the position history for the highest rank ever held.
func (s *State) HighestRank() int {
	highest := 0
	for _, p := range s.Positions {
		if p.Rank > highest {
			highest = p.Rank
		}
	}
	return highest
}
