// File: database/repository/resource/interface.go
package resourceRepo

import (
	"context"

	"roomly/config"
	"roomly/database"
	"roomly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ResourceRepository persists bookable resources.
type ResourceRepository interface {
	Create(ctx context.Context, res *models.Resource) error
	GetByID(ctx context.Context, id string) (*models.Resource, error)
	List(ctx context.Context, city, status string) ([]models.Resource, error)
	Update(ctx context.Context, id string, fields bson.M) (*models.Resource, error)
	Delete(ctx context.Context, id string) error
	EnsureIndexes() error
}

type mongoResourceRepo struct {
	coll *mongo.Collection
}

// NewMongoResourceRepo constructs a new MongoDB ResourceRepository.
func NewMongoResourceRepo() ResourceRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoResourceRepo{
		coll: db.Collection("resources"),
	}
}
