package repression

import (
	"errors"
	"testing"

	apperrors "github.com/louisbranch/vanguard.state/internal/platform/errors"
)

func TestIntensityTiers(t *testing.T) {
	tests := []struct {
		intensity  Intensity
		quota      int
		multiplier float64
	}{
		{IntensityLimited, 5, 1.0},
		{IntensityModerate, 15, 1.5},
		{IntensitySweeping, 30, 2.5},
	}
	for _, tt := range tests {
		t.Run(tt.intensity.String(), func(t *testing.T) {
			if got := tt.intensity.ArrestQuota(); got != tt.quota {
				t.Fatalf("ArrestQuota() = %d, want %d", got, tt.quota)
			}
			if got := tt.intensity.RiskMultiplier(); got != tt.multiplier {
				t.Fatalf("RiskMultiplier() = %v, want %v", got, tt.multiplier)
			}
		})
	}
}

func TestStartValidation(t *testing.T) {
	if _, err := Start(nil, "  ", IntensityLimited, 1); !errors.Is(err, ErrEmptySector) {
		t.Fatalf("Start with blank sector = %v, want ErrEmptySector", err)
	}
	if _, err := Start(nil, "universities", IntensityUnspecified, 1); !errors.Is(err, ErrInvalidIntensity) {
		t.Fatalf("Start with unspecified intensity = %v, want ErrInvalidIntensity", err)
	}
	if _, err := Start(nil, "universities", Intensity(9), 1); !errors.Is(err, ErrInvalidIntensity) {
		t.Fatalf("Start with out-of-range intensity = %v, want ErrInvalidIntensity", err)
	}
}

func TestStartFirstCampaign(t *testing.T) {
	c, err := Start(nil, "army officer corps", IntensityModerate, 4)
	if err != nil {
		t.Fatalf("Start() unexpected error: %v", err)
	}
	if !c.Active {
		t.Fatal("new campaign should be active")
	}
	if c.TargetSector != "army officer corps" {
		t.Fatalf("TargetSector = %q", c.TargetSector)
	}
	if c.StartTurn != 4 {
		t.Fatalf("StartTurn = %d, want 4", c.StartTurn)
	}
}

func TestStartWhileActive(t *testing.T) {
	first, err := Start(nil, "universities", IntensityLimited, 1)
	if err != nil {
		t.Fatalf("Start() unexpected error: %v", err)
	}
	history := []*Campaign{first}

	if _, err := Start(history, "press", IntensityLimited, 2); !errors.Is(err, ErrStillActive) {
		t.Fatalf("Start while active = %v, want ErrStillActive", err)
	}
}

func TestStartCooldown(t *testing.T) {
	first, err := Start(nil, "universities", IntensityLimited, 1)
	if err != nil {
		t.Fatalf("Start() unexpected error: %v", err)
	}
	if err := first.End(5); err != nil {
		t.Fatalf("End() unexpected error: %v", err)
	}
	history := []*Campaign{first}

	// Turns 6 and 7 are inside the cooldown window.
	_, err = Start(history, "press", IntensityLimited, 7)
	if !apperrors.IsCode(err, apperrors.CodeCampaignCoolingDown) {
		t.Fatalf("Start during cooldown = %v, want cooling-down code", err)
	}
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("error is not *Error: %v", err)
	}
	if appErr.Metadata["TurnsRemaining"] != "1" {
		t.Fatalf("TurnsRemaining = %q, want %q", appErr.Metadata["TurnsRemaining"], "1")
	}

	// Exactly CooldownTurns after the end is allowed.
	if _, err := Start(history, "press", IntensityLimited, 8); err != nil {
		t.Fatalf("Start after cooldown = %v, want nil", err)
	}
}

func TestCanStart(t *testing.T) {
	if !CanStart(nil, 1) {
		t.Fatal("CanStart with no history should be true")
	}

	active := &Campaign{Active: true}
	if CanStart([]*Campaign{active}, 10) {
		t.Fatal("CanStart with an active campaign should be false")
	}

	ended := &Campaign{EndTurn: 5}
	if CanStart([]*Campaign{ended}, 7) {
		t.Fatal("CanStart inside the cooldown should be false")
	}
	if !CanStart([]*Campaign{ended}, 8) {
		t.Fatal("CanStart after the cooldown should be true")
	}
}

func TestAccrualAndQuota(t *testing.T) {
	c, err := Start(nil, "universities", IntensityModerate, 1)
	if err != nil {
		t.Fatalf("Start() unexpected error: %v", err)
	}

	if err := c.RecordArrests(10); err != nil {
		t.Fatalf("RecordArrests() unexpected error: %v", err)
	}
	if c.QuotaMet() {
		t.Fatal("quota should not be met at 10 of 15")
	}
	if err := c.RecordArrests(-3); err != nil {
		t.Fatalf("RecordArrests() unexpected error: %v", err)
	}
	if c.Arrests != 10 {
		t.Fatalf("Arrests = %d, negative input must be ignored", c.Arrests)
	}
	if err := c.RecordArrests(5); err != nil {
		t.Fatalf("RecordArrests() unexpected error: %v", err)
	}
	if !c.QuotaMet() {
		t.Fatal("quota should be met at 15 of 15")
	}

	if err := c.RecordExecutions(2); err != nil {
		t.Fatalf("RecordExecutions() unexpected error: %v", err)
	}
	if err := c.AccrueCosts(3, 2, 1); err != nil {
		t.Fatalf("AccrueCosts() unexpected error: %v", err)
	}
	if err := c.RecordOutcomes(1, 4, 2); err != nil {
		t.Fatalf("RecordOutcomes() unexpected error: %v", err)
	}

	if c.Executions != 2 {
		t.Fatalf("Executions = %d, want 2", c.Executions)
	}
	if c.Costs != (Costs{SectorLoyaltyLost: 3, ProductivityLost: 2, InternationalStandingLost: 1}) {
		t.Fatalf("Costs = %+v", c.Costs)
	}
	if c.Outcomes != (Outcomes{RivalsEliminated: 1, InnocentsArrested: 4, MartyrsCreated: 2}) {
		t.Fatalf("Outcomes = %+v", c.Outcomes)
	}
}

func TestEndedCampaignIsImmutable(t *testing.T) {
	c, err := Start(nil, "universities", IntensityLimited, 1)
	if err != nil {
		t.Fatalf("Start() unexpected error: %v", err)
	}
	if err := c.End(3); err != nil {
		t.Fatalf("End() unexpected error: %v", err)
	}
	if c.Active {
		t.Fatal("campaign should be inactive after End")
	}
	if c.EndTurn != 3 {
		t.Fatalf("EndTurn = %d, want 3", c.EndTurn)
	}

	if err := c.RecordArrests(1); !errors.Is(err, ErrEnded) {
		t.Fatalf("RecordArrests after End = %v, want ErrEnded", err)
	}
	if err := c.RecordExecutions(1); !errors.Is(err, ErrEnded) {
		t.Fatalf("RecordExecutions after End = %v, want ErrEnded", err)
	}
	if err := c.AccrueCosts(1, 1, 1); !errors.Is(err, ErrEnded) {
		t.Fatalf("AccrueCosts after End = %v, want ErrEnded", err)
	}
	if err := c.RecordOutcomes(1, 1, 1); !errors.Is(err, ErrEnded) {
		t.Fatalf("RecordOutcomes after End = %v, want ErrEnded", err)
	}
	if err := c.End(4); !errors.Is(err, ErrEnded) {
		t.Fatalf("double End = %v, want ErrEnded", err)
	}
	if c.Arrests != 0 {
		t.Fatalf("Arrests = %d, ended campaign must not mutate", c.Arrests)
	}
}
