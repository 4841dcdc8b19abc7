package booking

import (
	"context"
	"time"

	reservationRepo "roomly/database/repository/reservation"
	"roomly/models"
)

// ConflictChecker answers whether a candidate interval collides with an
// existing occupying reservation on the same resource. Overlap is half-open:
// a booking ending exactly when another starts is not a conflict.
type ConflictChecker struct {
	Repo reservationRepo.ReservationRepository
}

// HasConflict reports whether [start,end) overlaps an occupying reservation on
// the resource, and returns the first blocking reservation when it does.
// excludeID removes one reservation from the conflict set, used when a
// modification is re-validated against its own current slot.
//
// Standalone this is advisory; the write path re-runs the same check inside
// the storage transaction.
func (c *ConflictChecker) HasConflict(ctx context.Context, resourceID string, start, end time.Time, excludeID string) (bool, *models.Reservation, error) {
	overlapping, err := c.Repo.FindOverlapping(ctx, resourceID, start, end, excludeID)
	if err != nil {
		return false, nil, err
	}
	if len(overlapping) == 0 {
		return false, nil, nil
	}
	return true, &overlapping[0], nil
}
