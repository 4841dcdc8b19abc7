package models

import "testing"

func ptr(v int) *int { return &v }

func TestAvailabilityRulesValidate(t *testing.T) {
	tests := []struct {
		name    string
		rules   AvailabilityRules
		wantErr bool
	}{
		{"empty rules are valid", AvailabilityRules{}, false},
		{"full valid rules", AvailabilityRules{
			DaysOfWeek:         []int{0, 6},
			TimeRanges:         []TimeRange{{Start: 8.5, End: 18}},
			MinDurationMinutes: ptr(30),
			MaxDurationMinutes: ptr(120),
		}, false},
		{"day below range", AvailabilityRules{DaysOfWeek: []int{-1}}, true},
		{"day above range", AvailabilityRules{DaysOfWeek: []int{7}}, true},
		{"window start after end", AvailabilityRules{TimeRanges: []TimeRange{{Start: 17, End: 9}}}, true},
		{"window beyond midnight", AvailabilityRules{TimeRanges: []TimeRange{{Start: 20, End: 25}}}, true},
		{"negative window start", AvailabilityRules{TimeRanges: []TimeRange{{Start: -1, End: 9}}}, true},
		{"zero min duration", AvailabilityRules{MinDurationMinutes: ptr(0)}, true},
		{"zero max duration", AvailabilityRules{MaxDurationMinutes: ptr(0)}, true},
		{"min above max", AvailabilityRules{MinDurationMinutes: ptr(120), MaxDurationMinutes: ptr(60)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rules.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAvailabilityRulesPatchApply(t *testing.T) {
	base := AvailabilityRules{
		DaysOfWeek:         []int{1, 2, 3},
		TimeRanges:         []TimeRange{{Start: 9, End: 17}},
		MinDurationMinutes: ptr(30),
	}

	days := []int{0, 6}
	merged := AvailabilityRulesPatch{DaysOfWeek: &days}.Apply(base)

	if len(merged.DaysOfWeek) != 2 || merged.DaysOfWeek[0] != 0 {
		t.Errorf("patched days = %v, want [0 6]", merged.DaysOfWeek)
	}
	if len(merged.TimeRanges) != 1 {
		t.Error("unpatched time ranges were not preserved")
	}
	if merged.MinDurationMinutes == nil || *merged.MinDurationMinutes != 30 {
		t.Error("unpatched min duration was not preserved")
	}

	// An empty patch is the identity.
	same := AvailabilityRulesPatch{}.Apply(base)
	if len(same.DaysOfWeek) != 3 || same.MinDurationMinutes != base.MinDurationMinutes {
		t.Error("empty patch changed the rules")
	}
}
