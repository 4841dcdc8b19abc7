// File: database/repository/reservation/sweep.go
package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"roomly/models"
)

// BulkMarkPassed promotes occupying reservations whose end time has elapsed to
// the terminal "passed" status. Cancelled rows are never touched. The filter
// only matches rows that still need the transition, so repeated runs with no
// intervening writes report zero modifications.
func (r *mongoReservationRepo) BulkMarkPassed(ctx context.Context, now time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"status": bson.M{"$in": []string{models.ReservationStatusActive, models.ReservationStatusModified}},
		"end":    bson.M{"$lt": now},
	}
	update := bson.M{
		"$set": bson.M{
			"status":     models.ReservationStatusPassed,
			"updated_at": now,
		},
	}

	res, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to mark passed reservations: %w", err)
	}
	return res.ModifiedCount, nil
}
