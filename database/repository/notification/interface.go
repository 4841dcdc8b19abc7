// File: database/repository/notification/interface.go
package notificationRepo

import (
	"context"

	"roomly/config"
	"roomly/database"
	"roomly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// NotificationRepository stores write-once email delivery audit records.
type NotificationRepository interface {
	Insert(ctx context.Context, n *models.EmailNotification) error
	ListRecent(ctx context.Context, limit int64) ([]models.EmailNotification, error)
}

type mongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo constructs a new MongoDB NotificationRepository.
func NewMongoNotificationRepo() NotificationRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoNotificationRepo{
		coll: db.Collection("email_notifications"),
	}
}
