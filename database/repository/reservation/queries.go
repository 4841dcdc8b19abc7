// File: database/repository/reservation/queries.go
package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"roomly/models"
)

// overlapFilter matches occupying reservations on the resource whose half-open
// interval [start,end) intersects the candidate interval. Back-to-back bookings
// (one ending exactly when another starts) do not match.
func overlapFilter(resourceID string, start, end time.Time, excludeID string) bson.M {
	filter := bson.M{
		"resource_id": resourceID,
		"status":      models.ReservationStatusActive,
		"start":       bson.M{"$lt": end},
		"end":         bson.M{"$gt": start},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}
	return filter
}

func (r *mongoReservationRepo) FindOverlapping(ctx context.Context, resourceID string, start, end time.Time, excludeID string) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})
	cursor, err := r.coll.Find(ctx, overlapFilter(resourceID, start, end, excludeID), opts)
	if err != nil {
		return nil, fmt.Errorf("overlap query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var overlapping []models.Reservation
	if err := cursor.All(ctx, &overlapping); err != nil {
		return nil, fmt.Errorf("error decoding overlap query result: %w", err)
	}
	return overlapping, nil
}

func (r *mongoReservationRepo) CountActiveFuture(ctx context.Context, resourceID string, now time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"resource_id": resourceID,
		"status":      bson.M{"$in": []string{models.ReservationStatusActive, models.ReservationStatusModified}},
		"end":         bson.M{"$gt": now},
	}
	return r.coll.CountDocuments(ctx, filter)
}

// CountByStatus groups all reservations by status.
func (r *mongoReservationRepo) CountByStatus(ctx context.Context) ([]models.StatusCount, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregation error: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.StatusCount
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("error decoding aggregation result: %w", err)
	}
	return results, nil
}

// AggregateResourceUsage sums reservation counts and booked hours per resource
// over occupying reservations.
func (r *mongoReservationRepo) AggregateResourceUsage(ctx context.Context) ([]models.ResourceUsage, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"status": bson.M{"$in": []string{models.ReservationStatusActive, models.ReservationStatusModified}},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":          "$resource_id",
			"reservations": bson.M{"$sum": 1},
			"booked_hours": bson.M{"$sum": bson.M{
				"$divide": bson.A{bson.M{"$subtract": bson.A{"$end", "$start"}}, 3600000},
			}},
		}}},
		{{Key: "$sort", Value: bson.M{"reservations": -1}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregation error: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.ResourceUsage
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("error decoding aggregation result: %w", err)
	}
	return results, nil
}

func (r *mongoReservationRepo) CountUpcoming(ctx context.Context, now time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"status": bson.M{"$in": []string{models.ReservationStatusActive, models.ReservationStatusModified}},
		"start":  bson.M{"$gt": now},
	}
	return r.coll.CountDocuments(ctx, filter)
}
