package regime

import (
	"testing"

	"github.com/louisbranch/vanguard.state/internal/regime/province"
	"github.com/louisbranch/vanguard.state/internal/regime/repression"
)

func TestVarsClamp(t *testing.T) {
	s := NewState("run-1", 1)

	s.SetVar(VarWorldTension, 150)
	if got := s.Var(VarWorldTension); got != 100 {
		t.Fatalf("Var = %d, want 100", got)
	}

	s.AdjustVar(VarWorldTension, -250)
	if got := s.Var(VarWorldTension); got != 0 {
		t.Fatalf("Var = %d, want 0", got)
	}

	if got := s.Var(VarOppositionCoalition); got != 0 {
		t.Fatalf("unset var = %d, want 0", got)
	}
}

func TestFlags(t *testing.T) {
	s := NewState("run-1", 1)

	if s.Flags.Has(FlagCoupLaunched) {
		t.Fatal("flag should start unraised")
	}
	s.Flags.Raise(FlagCoupLaunched)
	if !s.Flags.Has(FlagCoupLaunched) {
		t.Fatal("flag should be raised")
	}
	s.Flags.Clear(FlagCoupLaunched)
	if s.Flags.Has(FlagCoupLaunched) {
		t.Fatal("flag should be cleared")
	}
}

func TestParseVar(t *testing.T) {
	if v, ok := ParseVar("world_tension"); !ok || v != VarWorldTension {
		t.Fatalf("ParseVar(world_tension) = %v/%v", v, ok)
	}
	if v, ok := ParseVar("opposition_coalition"); !ok || v != VarOppositionCoalition {
		t.Fatalf("ParseVar(opposition_coalition) = %v/%v", v, ok)
	}
	if _, ok := ParseVar("harvest_quota"); ok {
		t.Fatal("ParseVar should reject unknown keys")
	}
}

func TestDesignatedHeir(t *testing.T) {
	s := NewState("run-1", 1)
	s.Characters = []*Character{
		{ID: "char-1", Name: "Orlova"},
	}

	if _, ok := s.DesignatedHeir(); ok {
		t.Fatal("no heir should be designated")
	}

	s.DesignatedHeirID = "char-1"
	heir, ok := s.DesignatedHeir()
	if !ok || heir.Name != "Orlova" {
		t.Fatalf("DesignatedHeir() = %v/%v", heir, ok)
	}

	s.DesignatedHeirID = "char-9"
	if _, ok := s.DesignatedHeir(); ok {
		t.Fatal("dangling heir reference should not resolve")
	}
}

func TestHostileOfficerCount(t *testing.T) {
	s := NewState("run-1", 1)
	s.Characters = []*Character{
		{ID: "a", Faction: FactionMilitary, Rank: 7, Disposition: 10},
		{ID: "b", Faction: FactionMilitary, Rank: 6, Disposition: 29},
		{ID: "c", Faction: FactionMilitary, Rank: 5, Disposition: 10},
		{ID: "d", Faction: FactionMilitary, Rank: 9, Disposition: 30},
		{ID: "e", Faction: FactionSecurity, Rank: 9, Disposition: 5},
		{ID: "f", Faction: FactionMilitary, Rank: 9, Disposition: 5, Status: CharacterDead},
	}

	if got := s.HostileOfficerCount(6, 30); got != 2 {
		t.Fatalf("HostileOfficerCount(6, 30) = %d, want 2", got)
	}
}

func TestProvinceCounts(t *testing.T) {
	s := NewState("run-1", 1)
	s.Provinces = []*province.Province{
		{ID: "cap", Category: province.CategoryCapital},
		{ID: "b1", Category: province.CategoryBorder, Status: province.StatusSeceded},
		{ID: "b2", Category: province.CategoryBorder, Status: province.StatusSeceding},
		{ID: "a1", Category: province.CategoryAutonomous, Status: province.StatusSeceded},
	}

	if got := s.SecededCount(); got != 2 {
		t.Fatalf("SecededCount() = %d, want 2", got)
	}
	if got := s.SecededBorderCount(); got != 1 {
		t.Fatalf("SecededBorderCount() = %d, want 1", got)
	}

	capital, ok := s.CapitalProvince()
	if !ok || capital.ID != "cap" {
		t.Fatalf("CapitalProvince() = %v/%v", capital, ok)
	}
}

func TestActiveCampaign(t *testing.T) {
	s := NewState("run-1", 1)

	if _, ok := s.ActiveCampaign(); ok {
		t.Fatal("no campaign should be active")
	}

	ended := &repression.Campaign{TargetSector: "press", EndTurn: 3}
	s.Campaigns = append(s.Campaigns, ended)
	if _, ok := s.ActiveCampaign(); ok {
		t.Fatal("an ended campaign is not active")
	}

	active := &repression.Campaign{TargetSector: "universities", Active: true}
	s.Campaigns = append(s.Campaigns, active)
	got, ok := s.ActiveCampaign()
	if !ok || got.TargetSector != "universities" {
		t.Fatalf("ActiveCampaign() = %v/%v", got, ok)
	}
}

func TestHighestRank(t *testing.T) {
	s := NewState("run-1", 1)
	if got := s.HighestRank(); got != 0 {
		t.Fatalf("HighestRank() = %d, want 0", got)
	}

	s.Positions = []PositionRecord{
		{Title: "District Organizer", Rank: 2},
		{Title: "General Secretary", Rank: 10},
		{Title: "Premier", Rank: 9},
	}
	if got := s.HighestRank(); got != 10 {
		t.Fatalf("HighestRank() = %d, want 10", got)
	}
}

func TestParseFaction(t *testing.T) {
	for f := FactionParty; f <= FactionTechnocrat; f++ {
		got, ok := ParseFaction(f.String())
		if !ok || got != f {
			t.Fatalf("ParseFaction(%q) = %v/%v", f.String(), got, ok)
		}
	}
	if _, ok := ParseFaction("clergy"); ok {
		t.Fatal("ParseFaction should reject unknown values")
	}
}
