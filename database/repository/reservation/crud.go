// File: database/repository/reservation/crud.go
package reservationRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"roomly/models"
)

func newReservationID() string { return uuid.New().String() }

func (r *mongoReservationRepo) Insert(ctx context.Context, rsv *models.Reservation) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if rsv.ID == "" {
		rsv.ID = newReservationID()
	}
	now := time.Now().UTC()
	rsv.CreatedAt = now
	rsv.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, rsv)
	return err
}

func (r *mongoReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var rsv models.Reservation
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&rsv); err != nil {
		return nil, err
	}
	return &rsv, nil
}

func (r *mongoReservationRepo) GetByIDForUser(ctx context.Context, id, userID string) (*models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var rsv models.Reservation
	if err := r.coll.FindOne(ctx, bson.M{"id": id, "user_id": userID}).Decode(&rsv); err != nil {
		return nil, err
	}
	return &rsv, nil
}

func (r *mongoReservationRepo) ListByUser(ctx context.Context, userID string, statuses []string) ([]models.Reservation, error) {
	filter := bson.M{"user_id": userID}
	if len(statuses) > 0 {
		filter["status"] = bson.M{"$in": statuses}
	}
	return r.find(ctx, filter)
}

func (r *mongoReservationRepo) ListByResource(ctx context.Context, resourceID string, from, to time.Time, statuses []string) ([]models.Reservation, error) {
	filter := bson.M{"resource_id": resourceID}
	if len(statuses) > 0 {
		filter["status"] = bson.M{"$in": statuses}
	}
	if !from.IsZero() || !to.IsZero() {
		window := bson.M{}
		if !to.IsZero() {
			window["$lt"] = to
		}
		filter["start"] = window
		if !from.IsZero() {
			filter["end"] = bson.M{"$gt": from}
		}
	}
	return r.find(ctx, filter)
}

func (r *mongoReservationRepo) ListAll(ctx context.Context, statuses []string) ([]models.Reservation, error) {
	filter := bson.M{}
	if len(statuses) > 0 {
		filter["status"] = bson.M{"$in": statuses}
	}
	return r.find(ctx, filter)
}

func (r *mongoReservationRepo) find(ctx context.Context, filter bson.M) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *mongoReservationRepo) UpdateFields(ctx context.Context, id string, fields bson.M) (*models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	fields["updated_at"] = time.Now().UTC()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Reservation
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": fields}, opts).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *mongoReservationRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
