// Package repression models bounded internal-security campaigns with arrest
// quotas, accruing costs, and a cooldown between campaigns.
package repression

import (
	"fmt"
	"strings"

	apperrors "github.com/louisbranch/vanguard.state/internal/platform/errors"
)

// Intensity fixes a campaign's arrest quota and risk multiplier.
type Intensity int

const (
	// IntensityUnspecified represents an invalid intensity value.
	IntensityUnspecified Intensity = iota
	// IntensityLimited is a narrow, targeted operation.
	IntensityLimited
	// IntensityModerate is a sector-wide operation.
	IntensityModerate
	// IntensitySweeping is a mass operation with indiscriminate reach.
	IntensitySweeping
)

// ArrestQuota returns the number of arrests the campaign is expected to make.
func (i Intensity) ArrestQuota() int {
	switch i {
	case IntensityLimited:
		return 5
	case IntensityModerate:
		return 15
	case IntensitySweeping:
		return 30
	default:
		return 0
	}
}

// RiskMultiplier scales how likely innocents are swept up. Consumed by
// narrative resolution outside the core.
func (i Intensity) RiskMultiplier() float64 {
	switch i {
	case IntensityLimited:
		return 1.0
	case IntensityModerate:
		return 1.5
	case IntensitySweeping:
		return 2.5
	default:
		return 0
	}
}

func (i Intensity) String() string {
	switch i {
	case IntensityLimited:
		return "limited"
	case IntensityModerate:
		return "moderate"
	case IntensitySweeping:
		return "sweeping"
	default:
		return "unspecified"
	}
}

// CooldownTurns is the minimum number of turns between the end of one
// campaign and the start of the next.
const CooldownTurns = 3

var (
	// ErrEmptySector indicates a campaign with no target sector.
	ErrEmptySector = apperrors.New(apperrors.CodeCampaignEmptySector, "target sector is required")
	// ErrInvalidIntensity indicates an unknown intensity tier.
	ErrInvalidIntensity = apperrors.New(apperrors.CodeCampaignInvalidIntensity, "intensity is invalid")
	// ErrStillActive indicates a prior campaign has not ended.
	ErrStillActive = apperrors.New(apperrors.CodeCampaignStillActive, "a campaign is still active")
	// ErrCoolingDown indicates the cooldown since the last campaign has not elapsed.
	ErrCoolingDown = apperrors.New(apperrors.CodeCampaignCoolingDown, "campaign cooldown has not elapsed")
	// ErrEnded indicates a mutation attempt on concluded campaign history.
	ErrEnded = apperrors.New(apperrors.CodeCampaignEnded, "campaign has ended")
)

// Costs accumulates what the campaign has burned through.
type Costs struct {
	SectorLoyaltyLost         int
	ProductivityLost          int
	InternationalStandingLost int
}

// Outcomes tallies what the campaign produced.
type Outcomes struct {
	RivalsEliminated  int
	InnocentsArrested int
	MartyrsCreated    int
}

// Campaign is one purge campaign. After End it becomes immutable history.
type Campaign struct {
	TargetSector string
	Intensity    Intensity
	StartTurn    int
	EndTurn      int
	Active       bool

	Arrests    int
	Executions int
	Costs      Costs
	Outcomes   Outcomes
}

// CanStart reports whether a new campaign may begin on the given turn.
//
// Creation requires that no prior campaign exists, or that the most recent
// campaign has ended and at least CooldownTurns have elapsed since its end.
func CanStart(history []*Campaign, turn int) bool {
	if len(history) == 0 {
		return true
	}
	last := history[len(history)-1]
	if last.Active {
		return false
	}
	return turn-last.EndTurn >= CooldownTurns
}

// Start creates a campaign by decree, enforcing the cooldown invariant
// against the prior campaign history.
func Start(history []*Campaign, sector string, intensity Intensity, turn int) (*Campaign, error) {
	sector = strings.TrimSpace(sector)
	if sector == "" {
		return nil, ErrEmptySector
	}
	if intensity < IntensityLimited || intensity > IntensitySweeping {
		return nil, ErrInvalidIntensity
	}
	if len(history) > 0 {
		last := history[len(history)-1]
		if last.Active {
			return nil, ErrStillActive
		}
		if remaining := CooldownTurns - (turn - last.EndTurn); remaining > 0 {
			return nil, apperrors.WithMetadata(
				apperrors.CodeCampaignCoolingDown,
				fmt.Sprintf("campaign cooldown has not elapsed: %d turns remaining", remaining),
				map[string]string{"TurnsRemaining": fmt.Sprintf("%d", remaining)},
			)
		}
	}

	return &Campaign{
		TargetSector: sector,
		Intensity:    intensity,
		StartTurn:    turn,
		Active:       true,
	}, nil
}

// RecordArrests accrues arrests directed by external resolution events.
func (c *Campaign) RecordArrests(n int) error {
	if !c.Active {
		return ErrEnded
	}
	c.Arrests += max(n, 0)
	return nil
}

// RecordExecutions accrues executions directed by external resolution events.
func (c *Campaign) RecordExecutions(n int) error {
	if !c.Active {
		return ErrEnded
	}
	c.Executions += max(n, 0)
	return nil
}

// AccrueCosts adds to the campaign's running costs.
func (c *Campaign) AccrueCosts(loyalty, productivity, standing int) error {
	if !c.Active {
		return ErrEnded
	}
	c.Costs.SectorLoyaltyLost += max(loyalty, 0)
	c.Costs.ProductivityLost += max(productivity, 0)
	c.Costs.InternationalStandingLost += max(standing, 0)
	return nil
}

// RecordOutcomes adds to the campaign's outcome tallies.
func (c *Campaign) RecordOutcomes(rivals, innocents, martyrs int) error {
	if !c.Active {
		return ErrEnded
	}
	c.Outcomes.RivalsEliminated += max(rivals, 0)
	c.Outcomes.InnocentsArrested += max(innocents, 0)
	c.Outcomes.MartyrsCreated += max(martyrs, 0)
	return nil
}

// QuotaMet reports whether arrests have reached the intensity's quota.
func (c *Campaign) QuotaMet() bool {
	return c.Arrests >= c.Intensity.ArrestQuota()
}

// End closes the campaign. Further mutation attempts return ErrEnded.
func (c *Campaign) End(turn int) error {
	if !c.Active {
		return ErrEnded
	}
	c.Active = false
	c.EndTurn = turn
	return nil
}
