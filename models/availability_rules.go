package models

import "fmt"

// TimeRange is a bookable window within a day, expressed in fractional hours
// (9.5 means 09:30). A booking must fit entirely inside a single range.
type TimeRange struct {
	Start float64 `bson:"start" json:"start"`
	End   float64 `bson:"end" json:"end"`
}

// AvailabilityRules encodes when a resource is open for booking, independent of
// existing reservations. Empty slices and zero pointers mean "unconstrained".
type AvailabilityRules struct {
	DaysOfWeek         []int       `bson:"days_of_week,omitempty" json:"daysOfWeek,omitempty"` // 0 = Sunday .. 6 = Saturday
	TimeRanges         []TimeRange `bson:"time_ranges,omitempty" json:"timeRanges,omitempty"`
	MinDurationMinutes *int        `bson:"min_duration_minutes,omitempty" json:"minDurationMinutes,omitempty"`
	MaxDurationMinutes *int        `bson:"max_duration_minutes,omitempty" json:"maxDurationMinutes,omitempty"`
}

// Validate checks the structural invariants of the rules themselves.
func (r AvailabilityRules) Validate() error {
	for _, d := range r.DaysOfWeek {
		if d < 0 || d > 6 {
			return fmt.Errorf("day of week %d out of range [0,6]", d)
		}
	}
	for _, tr := range r.TimeRanges {
		if tr.Start < 0 || tr.End > 24 {
			return fmt.Errorf("time range %.2f-%.2f outside [0,24]", tr.Start, tr.End)
		}
		if tr.Start >= tr.End {
			return fmt.Errorf("time range start %.2f must be before end %.2f", tr.Start, tr.End)
		}
	}
	if r.MinDurationMinutes != nil && *r.MinDurationMinutes <= 0 {
		return fmt.Errorf("min duration must be positive")
	}
	if r.MaxDurationMinutes != nil && *r.MaxDurationMinutes <= 0 {
		return fmt.Errorf("max duration must be positive")
	}
	if r.MinDurationMinutes != nil && r.MaxDurationMinutes != nil && *r.MinDurationMinutes > *r.MaxDurationMinutes {
		return fmt.Errorf("min duration %d exceeds max duration %d", *r.MinDurationMinutes, *r.MaxDurationMinutes)
	}
	return nil
}

// AvailabilityRulesPatch is a partial rules update; set fields replace the
// corresponding field of the stored rules, unset fields are preserved.
type AvailabilityRulesPatch struct {
	DaysOfWeek         *[]int       `json:"daysOfWeek,omitempty"`
	TimeRanges         *[]TimeRange `json:"timeRanges,omitempty"`
	MinDurationMinutes *int         `json:"minDurationMinutes,omitempty"`
	MaxDurationMinutes *int         `json:"maxDurationMinutes,omitempty"`
}

// Apply merges the patch into base and returns the result.
func (p AvailabilityRulesPatch) Apply(base AvailabilityRules) AvailabilityRules {
	out := base
	if p.DaysOfWeek != nil {
		out.DaysOfWeek = *p.DaysOfWeek
	}
	if p.TimeRanges != nil {
		out.TimeRanges = *p.TimeRanges
	}
	if p.MinDurationMinutes != nil {
		out.MinDurationMinutes = p.MinDurationMinutes
	}
	if p.MaxDurationMinutes != nil {
		out.MaxDurationMinutes = p.MaxDurationMinutes
	}
	return out
}
