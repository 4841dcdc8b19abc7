// File: database/repository/reservation/interface.go
package reservationRepo

import (
	"context"
	"time"

	"roomly/config"
	"roomly/database"
	"roomly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReservationRepository persists reservations and answers the overlap queries
// that back conflict detection. FindOverlapping and the transactional write
// methods consider only status "active" as occupying, mirroring the conflict
// scope of the write path.
type ReservationRepository interface {
	Insert(ctx context.Context, rsv *models.Reservation) error
	GetByID(ctx context.Context, id string) (*models.Reservation, error)
	// GetByIDForUser applies the ownership filter in the query itself so an
	// absent row and a foreign row are indistinguishable to the caller.
	GetByIDForUser(ctx context.Context, id, userID string) (*models.Reservation, error)
	ListByUser(ctx context.Context, userID string, statuses []string) ([]models.Reservation, error)
	ListByResource(ctx context.Context, resourceID string, from, to time.Time, statuses []string) ([]models.Reservation, error)
	ListAll(ctx context.Context, statuses []string) ([]models.Reservation, error)
	FindOverlapping(ctx context.Context, resourceID string, start, end time.Time, excludeID string) ([]models.Reservation, error)
	UpdateFields(ctx context.Context, id string, fields bson.M) (*models.Reservation, error)
	Delete(ctx context.Context, id string) error

	// CreateTransactionally re-runs the overlap check and inserts the
	// reservation inside one session transaction.
	CreateTransactionally(ctx context.Context, rsv *models.Reservation) error
	// UpdateTransactionally re-runs the overlap check (excluding the
	// reservation itself) and applies the field update inside one session
	// transaction, returning the updated document.
	UpdateTransactionally(ctx context.Context, id, resourceID string, start, end time.Time, fields bson.M) (*models.Reservation, error)

	// BulkMarkPassed transitions occupying reservations whose end time has
	// elapsed to "passed" and returns how many rows changed.
	BulkMarkPassed(ctx context.Context, now time.Time) (int64, error)

	// CountActiveFuture backs the resource deletion guard.
	CountActiveFuture(ctx context.Context, resourceID string, now time.Time) (int64, error)

	// Admin statistics aggregations.
	CountByStatus(ctx context.Context) ([]models.StatusCount, error)
	AggregateResourceUsage(ctx context.Context) ([]models.ResourceUsage, error)
	CountUpcoming(ctx context.Context, now time.Time) (int64, error)

	EnsureIndexes() error
}

type mongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo constructs a new MongoDB ReservationRepository.
func NewMongoReservationRepo() ReservationRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoReservationRepo{
		coll: db.Collection("reservations"),
	}
}
