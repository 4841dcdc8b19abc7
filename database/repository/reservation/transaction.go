// File: database/repository/reservation/transaction.go
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

// ConflictError is returned when the in-transaction overlap check finds
// occupying reservations on the requested interval. Existing carries the
// conflicting rows so callers can report the blocking interval.
type ConflictError struct {
	Existing []models.Reservation
}

func (e *ConflictError) Error() string {
	if len(e.Existing) == 0 {
		return "reservation conflicts with an existing booking"
	}
	first := e.Existing[0]
	return fmt.Sprintf("reservation conflicts with an existing booking from %s to %s",
		first.Start.Format(time.RFC3339), first.End.Format(time.RFC3339))
}

func (r *mongoReservationRepo) overlappingInSession(sc mongo.SessionContext, resourceID string, start, end time.Time, excludeID string) ([]models.Reservation, error) {
	cursor, err := r.coll.Find(sc, overlapFilter(resourceID, start, end, excludeID))
	if err != nil {
		return nil, fmt.Errorf("overlap query failed: %w", err)
	}
	defer cursor.Close(sc)

	var overlapping []models.Reservation
	if err := cursor.All(sc, &overlapping); err != nil {
		return nil, fmt.Errorf("error decoding overlap query result: %w", err)
	}
	return overlapping, nil
}

// CreateTransactionally inserts the reservation only if the overlap check,
// re-run inside the session transaction, still comes back clean. Two
// concurrent creates for intersecting intervals therefore cannot both commit.
func (r *mongoReservationRepo) CreateTransactionally(ctx context.Context, rsv *models.Reservation) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	if rsv.ID == "" {
		rsv.ID = newReservationID()
	}
	now := time.Now().UTC()
	rsv.CreatedAt = now
	rsv.UpdatedAt = now

	txnFn := func(sc mongo.SessionContext) error {
		existing, err := r.overlappingInSession(sc, rsv.ResourceID, rsv.Start, rsv.End, "")
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return &ConflictError{Existing: existing}
		}
		if _, err := r.coll.InsertOne(sc, rsv); err != nil {
			return fmt.Errorf("insert reservation failed: %w", err)
		}
		return nil
	}

	return runInTransaction(ctx, sess, txnFn)
}

// UpdateTransactionally applies the field update only if the new interval,
// checked inside the transaction with the reservation itself excluded, is
// conflict-free.
func (r *mongoReservationRepo) UpdateTransactionally(ctx context.Context, id, resourceID string, start, end time.Time, fields bson.M) (*models.Reservation, error) {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	fields["updated_at"] = time.Now().UTC()
	var updated models.Reservation

	txnFn := func(sc mongo.SessionContext) error {
		existing, err := r.overlappingInSession(sc, resourceID, start, end, id)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return &ConflictError{Existing: existing}
		}
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		if err := r.coll.FindOneAndUpdate(sc, bson.M{"id": id}, bson.M{"$set": fields}, opts).Decode(&updated); err != nil {
			return fmt.Errorf("update reservation failed: %w", err)
		}
		return nil
	}

	if err := runInTransaction(ctx, sess, txnFn); err != nil {
		return nil, err
	}
	return &updated, nil
}

func runInTransaction(ctx context.Context, sess mongo.Session, txnFn func(mongo.SessionContext) error) error {
	var txnErr error
	err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			txnErr = err
			return err
		}
		return sc.CommitTransaction(sc)
	})
	if txnErr != nil {
		// Preserve the typed conflict instead of the session wrapper.
		return txnErr
	}
	if err != nil {
		return fmt.Errorf("reservation transaction failed: %w", err)
	}
	return nil
}
