// Package succession models the mentor/protege relationship with a groomed
// heir and the organic risk that the heir defects.
package succession

import (
	"math/rand"

	apperrors "github.com/louisbranch/vanguard.state/internal/platform/errors"
)

// MentorshipType describes how openly the protege is being cultivated.
type MentorshipType int

const (
	// MentorshipUnspecified represents an invalid mentorship value.
	MentorshipUnspecified MentorshipType = iota
	// MentorshipInformal is quiet patronage with no public signal.
	MentorshipInformal
	// MentorshipMentorship is an acknowledged working relationship.
	MentorshipMentorship
	// MentorshipGrooming is visible cultivation of a successor.
	MentorshipGrooming
	// MentorshipDesignated is the formally announced heir.
	MentorshipDesignated
)

// MinimumRank returns the lowest leader rank allowed to form a bond of this
// type.
func (m MentorshipType) MinimumRank() int {
	switch m {
	case MentorshipInformal:
		return 2
	case MentorshipMentorship:
		return 4
	case MentorshipGrooming:
		return 6
	case MentorshipDesignated:
		return 8
	default:
		return 0
	}
}

// Visibility returns how loudly the bond signals succession intent, 0-100.
// Higher visibility draws rival attention in the narrative layer.
func (m MentorshipType) Visibility() int {
	switch m {
	case MentorshipInformal:
		return 10
	case MentorshipMentorship:
		return 30
	case MentorshipGrooming:
		return 60
	case MentorshipDesignated:
		return 90
	default:
		return 0
	}
}

func (m MentorshipType) String() string {
	switch m {
	case MentorshipInformal:
		return "informal"
	case MentorshipMentorship:
		return "mentorship"
	case MentorshipGrooming:
		return "grooming"
	case MentorshipDesignated:
		return "designated"
	default:
		return "unspecified"
	}
}

var (
	// ErrInvalidMentorship indicates an unknown mentorship type.
	ErrInvalidMentorship = apperrors.New(apperrors.CodeBondInvalidMentorship, "mentorship type is invalid")
	// ErrRankTooLow indicates the mentor's rank does not permit this bond type.
	ErrRankTooLow = apperrors.New(apperrors.CodeBondRankTooLow, "rank too low for mentorship type")
)

// Neglect rule constants.
const (
	// neglectAfterTurns is how many turns without mentoring count as neglect.
	neglectAfterTurns = 2
	// rivalNeglectCount is the neglect count at which conversion is possible.
	rivalNeglectCount = 3
	// ambitionDriftChance is the fixed per-turn probability of ambition rising.
	ambitionDriftChance = 0.2
)

// Bond is one mentor-to-protege relationship.
//
// Terminated bonds stay in the aggregate as history: benign deactivation
// keeps BecameRival false, hostile conversion sets it along with the turn it
// occurred. Conversion is one-way.
type Bond struct {
	ProtegeID    string
	ProtegeName  string
	ProtegeTitle string

	Type     MentorshipType
	Strength int

	Ambition   int
	Competence int
	Loyalty    int

	StartTurn        int
	LastMentoredTurn int
	TurnsActive      int
	Neglect          int

	Active      bool
	BecameRival bool
	RivalTurn   int
}

// NewBond forms a bond with the given protege.
// The mentor's rank must meet the mentorship type's minimum.
func NewBond(protegeID, name, title string, mentorship MentorshipType, mentorRank, turn int) (*Bond, error) {
	if mentorship == MentorshipUnspecified {
		return nil, ErrInvalidMentorship
	}
	if mentorRank < mentorship.MinimumRank() {
		return nil, ErrRankTooLow
	}
	return &Bond{
		ProtegeID:        protegeID,
		ProtegeName:      name,
		ProtegeTitle:     title,
		Type:             mentorship,
		Strength:         20,
		Ambition:         40,
		Competence:       50,
		Loyalty:          60,
		StartTurn:        turn,
		LastMentoredTurn: turn,
		Active:           true,
	}, nil
}

// AdvanceTurn applies one turn of bond decay.
//
// Neglect sets in after two turns without mentoring: loyalty erodes, and a
// neglected, ambitious, disloyal protege irreversibly converts into a rival.
// Conversion fires at most once; advancing an inactive bond is a no-op.
// Independently, ambition may drift upward through rng. Ambition never
// decreases on its own.
func (b *Bond) AdvanceTurn(turn int, rng *rand.Rand) {
	if !b.Active {
		return
	}
	b.TurnsActive++

	if turn-b.LastMentoredTurn >= neglectAfterTurns {
		b.Neglect++
		b.Loyalty = max(b.Loyalty-5, 0)

		if b.Neglect >= rivalNeglectCount && b.Ambition > 70 && b.Loyalty < 40 {
			b.Active = false
			b.BecameRival = true
			b.RivalTurn = turn
			return
		}
	}

	if rng != nil && rng.Float64() < ambitionDriftChance {
		b.Ambition = min(b.Ambition+5, 100)
	}
}

// Mentor records deliberate attention to the protege. It is the only way to
// counteract neglect.
func (b *Bond) Mentor(turn, strengthBonus int) {
	if !b.Active {
		return
	}
	b.Neglect = max(b.Neglect-1, 0)
	b.Strength = min(b.Strength+strengthBonus, 100)
	b.Loyalty = min(b.Loyalty+5, 100)
	b.LastMentoredTurn = turn
}

// AdvocatePromotion applies the outcome of publicly backing the protege for
// promotion. Failure frustrates the protege.
func (b *Bond) AdvocatePromotion(success bool) {
	if !b.Active {
		return
	}
	if success {
		b.Strength = min(b.Strength+15, 100)
		b.Loyalty = min(b.Loyalty+10, 100)
		return
	}
	b.Strength = max(b.Strength-10, 0)
	b.Ambition = min(b.Ambition+10, 100)
}

// Deactivate ends the bond benignly.
func (b *Bond) Deactivate() {
	b.Active = false
}

// RivalRisk scores the defection danger on a 0-100 scale.
//
// This is a read-only diagnostic for the presentation layer. The actual
// conversion trigger is the fixed rule in AdvanceTurn, not a probability
// derived from this score.
func (b *Bond) RivalRisk() int {
	risk := 0
	switch {
	case b.Ambition > 70:
		risk += 30
	case b.Ambition > 50:
		risk += 15
	}
	switch {
	case b.Loyalty < 30:
		risk += 30
	case b.Loyalty < 50:
		risk += 15
	}
	risk += b.Neglect * 10
	switch {
	case b.Strength > 70:
		risk -= 20
	case b.Strength > 50:
		risk -= 10
	}
	return min(max(risk, 0), 100)
}

// ReadyToSucceed reports whether the protege could plausibly take over.
// Consumed externally to determine heir viability.
func (b *Bond) ReadyToSucceed() bool {
	return b.Strength >= 60 && b.Competence >= 50 && b.Loyalty >= 40
}
