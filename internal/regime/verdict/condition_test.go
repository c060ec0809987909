package verdict

import "testing"

func TestConditionRoundTrip(t *testing.T) {
	for c := ConditionNuclearWar; c <= ConditionPurged; c++ {
		got, ok := ParseCondition(c.String())
		if !ok {
			t.Fatalf("ParseCondition(%q) not ok", c.String())
		}
		if got != c {
			t.Fatalf("ParseCondition(%q) = %v, want %v", c.String(), got, c)
		}
	}
	if _, ok := ParseCondition("abdication"); ok {
		t.Fatal("ParseCondition should reject unknown tags")
	}
}

func TestConditionSeverity(t *testing.T) {
	tests := []struct {
		condition Condition
		want      SeverityClass
	}{
		{ConditionNuclearWar, SeverityGlobalCatastrophe},
		{ConditionTerritorialCollapse, SeverityStateDissolution},
		{ConditionCapitalFallen, SeverityStateDissolution},
		{ConditionForeignInvasion, SeverityStateDissolution},
		{ConditionRevolution, SeverityPartyCollapse},
		{ConditionMilitaryCoup, SeverityPartyCollapse},
		{ConditionCorruptionExposed, SeverityPersonalDefeat},
		{ConditionAssassination, SeverityPersonalDefeat},
		{ConditionNaturalDeath, SeverityPersonalDefeat},
		{ConditionPurged, SeverityPersonalDefeat},
	}
	for _, tt := range tests {
		t.Run(tt.condition.String(), func(t *testing.T) {
			if got := tt.condition.Severity(); got != tt.want {
				t.Fatalf("Severity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConditionPreventableByHeir(t *testing.T) {
	preventable := map[Condition]bool{
		ConditionCorruptionExposed: true,
		ConditionAssassination:     true,
		ConditionNaturalDeath:      true,
		ConditionPurged:            true,
	}
	for c := ConditionNuclearWar; c <= ConditionPurged; c++ {
		if got := c.PreventableByHeir(); got != preventable[c] {
			t.Fatalf("%v.PreventableByHeir() = %v, want %v", c, got, preventable[c])
		}
	}
}
