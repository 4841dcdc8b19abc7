package resource

import (
	"context"

	reservationRepo "roomly/database/repository/reservation"
	resourceRepo "roomly/database/repository/resource"
	"roomly/models"
)

// CreateInput is the payload for a new resource.
type CreateInput struct {
	Name     string                   `json:"name" binding:"required"`
	Capacity int                      `json:"capacity"`
	City     string                   `json:"city"`
	Status   string                   `json:"status"`
	Rules    models.AvailabilityRules `json:"rules"`
}

// ResourceService is the admin CRUD surface for bookable resources.
type ResourceService interface {
	Create(ctx context.Context, in CreateInput) (*models.Resource, error)
	Get(ctx context.Context, id string) (*models.Resource, error)
	List(ctx context.Context, city, status string) ([]models.Resource, error)
	Update(ctx context.Context, id string, patch models.ResourcePatch) (*models.Resource, error)
	Delete(ctx context.Context, id string) error
}

// DefaultResourceService implements ResourceService.
type DefaultResourceService struct {
	Repo         resourceRepo.ResourceRepository
	Reservations reservationRepo.ReservationRepository
}
