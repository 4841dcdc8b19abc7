package booking

import (
	"context"
	"time"

	reservationRepo "roomly/database/repository/reservation"
	resourceRepo "roomly/database/repository/resource"
	"roomly/models"
	"roomly/services/notification"
)

// CreateInput is the payload for a new booking.
type CreateInput struct {
	ResourceID string    `json:"resourceId" binding:"required"`
	Start      time.Time `json:"start" binding:"required"`
	End        time.Time `json:"end" binding:"required"`
	Notes      string    `json:"notes"`
}

// BookingService is the write path for reservations plus the read queries
// that must see swept state.
type BookingService interface {
	Create(ctx context.Context, actor models.Actor, in CreateInput) (*models.Reservation, error)
	Update(ctx context.Context, actor models.Actor, id string, patch models.ReservationPatch) (*models.Reservation, error)
	Cancel(ctx context.Context, actor models.Actor, id string) (*models.Reservation, error)
	Delete(ctx context.Context, id string) error

	Get(ctx context.Context, actor models.Actor, id string) (*models.Reservation, error)
	ListMine(ctx context.Context, actor models.Actor, statuses []string) ([]models.Reservation, error)
	ListAll(ctx context.Context, statuses []string) ([]models.Reservation, error)
	ResourceSchedule(ctx context.Context, resourceID string, from, to time.Time) ([]models.Reservation, error)
	CheckAvailability(ctx context.Context, resourceID string, start, end time.Time) error

	Stats(ctx context.Context) (*models.PlatformStats, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Reservations reservationRepo.ReservationRepository
	Resources    resourceRepo.ResourceRepository
	Availability *AvailabilityService
	Sweeper      *Sweeper
	Notifier     notification.Dispatcher
	AdminEmail   string
}
