package booking

import (
	"fmt"
	"time"

	"roomly/models"
	"roomly/services/apperr"
)

// CheckRules decides whether [start,end) is structurally legal under the
// resource's availability rules, ignoring other bookings. It returns nil when
// the interval fits and a business error naming the violated rule otherwise.
//
// The weekday mask is evaluated against the start day only; a booking that
// begins on an allowed day and crosses midnight into a disallowed one is
// accepted. Time ranges use fractional hours and the booking must fit inside
// one single range; spanning two adjacent ranges is rejected.
func CheckRules(rules models.AvailabilityRules, start, end time.Time) error {
	duration := end.Sub(start).Minutes()

	if rules.MinDurationMinutes != nil && duration < float64(*rules.MinDurationMinutes) {
		return apperr.Business(fmt.Sprintf("booking duration %.0f minutes is below the minimum of %d minutes", duration, *rules.MinDurationMinutes))
	}
	if rules.MaxDurationMinutes != nil && duration > float64(*rules.MaxDurationMinutes) {
		return apperr.Business(fmt.Sprintf("booking duration %.0f minutes exceeds the maximum of %d minutes", duration, *rules.MaxDurationMinutes))
	}

	if len(rules.DaysOfWeek) > 0 {
		dow := int(start.Weekday())
		allowed := false
		for _, d := range rules.DaysOfWeek {
			if d == dow {
				allowed = true
				break
			}
		}
		if !allowed {
			return apperr.Business(fmt.Sprintf("resource is not bookable on %s", start.Weekday()))
		}
	}

	if len(rules.TimeRanges) > 0 {
		startHour := float64(start.Hour()) + float64(start.Minute())/60
		endHour := float64(end.Hour()) + float64(end.Minute())/60
		fits := false
		for _, tr := range rules.TimeRanges {
			if startHour >= tr.Start && endHour <= tr.End {
				fits = true
				break
			}
		}
		if !fits {
			return apperr.Business(fmt.Sprintf("interval %s-%s does not fit within the resource's bookable hours",
				start.Format("15:04"), end.Format("15:04")))
		}
	}

	return nil
}

// RulesFit is the boolean form of CheckRules.
func RulesFit(rules models.AvailabilityRules, start, end time.Time) bool {
	return CheckRules(rules, start, end) == nil
}
