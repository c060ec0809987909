// Package consolidation tracks how entrenched the incumbent leader is
// against removal.
package consolidation

// Score bounds.
const (
	ScoreMin = 0
	ScoreMax = 100
)

// Tracker holds the leader's consolidation counters and derived score.
//
// Counters are incremented by discrete events; callers must Recalculate
// afterward. The tracker never polls external state.
type Tracker struct {
	Score int

	TurnsInPosition     int
	LoyalAppointments   int
	SuccessfulPurges    int
	FailedPolicies      int
	EconomicCrises      int
	FactionalOpposition int
}

// RecordTurnInPosition counts one more turn survived in office.
func (t *Tracker) RecordTurnInPosition() {
	t.TurnsInPosition++
}

// RecordLoyalAppointment counts a loyalist placed in a key position.
func (t *Tracker) RecordLoyalAppointment() {
	t.LoyalAppointments++
}

// RecordPurgeOutcome counts a concluded repression campaign.
// Only successful purges strengthen the leader's grip.
func (t *Tracker) RecordPurgeOutcome(successful bool) {
	if successful {
		t.SuccessfulPurges++
	}
}

// RecordFailedPolicy counts a policy that publicly failed.
func (t *Tracker) RecordFailedPolicy() {
	t.FailedPolicies++
}

// RecordEconomicCrisis counts an economic crisis on the leader's watch.
func (t *Tracker) RecordEconomicCrisis() {
	t.EconomicCrises++
}

// RecordFactionalOpposition counts an organized factional challenge.
func (t *Tracker) RecordFactionalOpposition() {
	t.FactionalOpposition++
}

// Recalculate recomputes the consolidation score from the counters.
// It is a pure function of the counters and returns the new score.
func (t *Tracker) Recalculate() int {
	score := 20
	score += min(30, t.TurnsInPosition*2)
	score += min(25, t.LoyalAppointments*5)
	score += min(20, t.SuccessfulPurges*10)
	score -= t.FailedPolicies * 5
	score -= t.EconomicCrises * 10
	score -= t.FactionalOpposition * 3

	t.Score = min(max(score, ScoreMin), ScoreMax)
	return t.Score
}

// RemovalThreshold returns the percentage of the ruling council required to
// depose the leader, as a step function of the consolidation score.
// The value is consumed by voting logic outside the core.
func (t *Tracker) RemovalThreshold() int {
	switch {
	case t.Score <= 20:
		return 51
	case t.Score <= 40:
		return 60
	case t.Score <= 60:
		return 70
	case t.Score <= 80:
		return 80
	default:
		return 95
	}
}
