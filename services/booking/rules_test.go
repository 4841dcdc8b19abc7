package booking

import (
	"testing"
	"time"

	"roomly/models"
	"roomly/services/apperr"
)

func intPtr(v int) *int { return &v }

// weekdayRules mirrors a typical office resource: Monday-Friday, 09:00-17:00,
// bookings between 30 minutes and 4 hours.
func weekdayRules() models.AvailabilityRules {
	return models.AvailabilityRules{
		DaysOfWeek:         []int{1, 2, 3, 4, 5},
		TimeRanges:         []models.TimeRange{{Start: 9, End: 17}},
		MinDurationMinutes: intPtr(30),
		MaxDurationMinutes: intPtr(240),
	}
}

func TestCheckRules(t *testing.T) {
	// 2026-09-07 is a Monday, 2026-09-12 a Saturday.
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

	at := func(day time.Time, hour, min int) time.Time {
		return day.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
	}

	tests := []struct {
		name    string
		rules   models.AvailabilityRules
		start   time.Time
		end     time.Time
		wantErr bool
	}{
		{
			name:  "weekday morning slot fits",
			rules: weekdayRules(),
			start: at(monday, 9, 0),
			end:   at(monday, 11, 0),
		},
		{
			name:    "saturday rejected by weekday mask",
			rules:   weekdayRules(),
			start:   at(saturday, 9, 0),
			end:     at(saturday, 11, 0),
			wantErr: true,
		},
		{
			name:    "slot overrunning closing time rejected",
			rules:   weekdayRules(),
			start:   at(monday, 16, 30),
			end:     at(monday, 17, 30),
			wantErr: true,
		},
		{
			name:    "below minimum duration rejected",
			rules:   weekdayRules(),
			start:   at(monday, 9, 0),
			end:     at(monday, 9, 15),
			wantErr: true,
		},
		{
			name:    "above maximum duration rejected",
			rules:   weekdayRules(),
			start:   at(monday, 9, 0),
			end:     at(monday, 14, 0),
			wantErr: true,
		},
		{
			name:  "exactly minimum duration accepted",
			rules: weekdayRules(),
			start: at(monday, 9, 0),
			end:   at(monday, 9, 30),
		},
		{
			name:  "slot flush with window edges accepted",
			rules: weekdayRules(),
			start: at(monday, 13, 0),
			end:   at(monday, 17, 0),
		},
		{
			name: "fractional-hour window honours half hours",
			rules: models.AvailabilityRules{
				TimeRanges: []models.TimeRange{{Start: 9.5, End: 12.5}},
			},
			start: at(monday, 9, 30),
			end:   at(monday, 12, 30),
		},
		{
			name: "slot spanning two adjacent windows rejected",
			rules: models.AvailabilityRules{
				TimeRanges: []models.TimeRange{{Start: 9, End: 12}, {Start: 12, End: 17}},
			},
			start:   at(monday, 11, 0),
			end:     at(monday, 13, 0),
			wantErr: true,
		},
		{
			name:  "empty rules allow anything",
			rules: models.AvailabilityRules{},
			start: at(saturday, 3, 0),
			end:   at(saturday, 23, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckRules(tt.rules, tt.start, tt.end)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("CheckRules(%v, %v) = nil, want error", tt.start, tt.end)
				}
				if kind := apperr.KindOf(err); kind != apperr.KindBusiness {
					t.Errorf("CheckRules error kind = %v, want business", kind)
				}
				return
			}
			if err != nil {
				t.Fatalf("CheckRules(%v, %v) = %v, want nil", tt.start, tt.end, err)
			}
		})
	}
}

func TestCheckRulesWeekdayMaskUsesStartDayOnly(t *testing.T) {
	// Friday 23:00 to Saturday 01:00: Friday is allowed, Saturday is not.
	friday := time.Date(2026, 9, 11, 23, 0, 0, 0, time.UTC)
	rules := models.AvailabilityRules{DaysOfWeek: []int{5}}

	if err := CheckRules(rules, friday, friday.Add(2*time.Hour)); err != nil {
		t.Fatalf("cross-midnight booking starting on an allowed day rejected: %v", err)
	}
}
