package booking

import (
	"context"
	"time"

	"roomly/models"
	"roomly/services/apperr"
)

// Get returns one reservation under the ownership rule.
func (s *DefaultBookingService) Get(ctx context.Context, actor models.Actor, id string) (*models.Reservation, error) {
	return s.loadOwned(ctx, actor, id)
}

// ListMine returns the caller's reservations, optionally filtered by status.
func (s *DefaultBookingService) ListMine(ctx context.Context, actor models.Actor, statuses []string) ([]models.Reservation, error) {
	s.sweep(ctx)
	reservations, err := s.Reservations.ListByUser(ctx, actor.UserID, statuses)
	if err != nil {
		return nil, apperr.Internal("failed to list reservations", err)
	}
	return reservations, nil
}

// ListAll returns every reservation; admin surface only.
func (s *DefaultBookingService) ListAll(ctx context.Context, statuses []string) ([]models.Reservation, error) {
	s.sweep(ctx)
	reservations, err := s.Reservations.ListAll(ctx, statuses)
	if err != nil {
		return nil, apperr.Internal("failed to list reservations", err)
	}
	return reservations, nil
}

// ResourceSchedule lists occupying reservations on a resource within a window,
// backing the public availability view.
func (s *DefaultBookingService) ResourceSchedule(ctx context.Context, resourceID string, from, to time.Time) ([]models.Reservation, error) {
	s.sweep(ctx)
	occupying := []string{models.ReservationStatusActive, models.ReservationStatusModified}
	reservations, err := s.Reservations.ListByResource(ctx, resourceID, from, to, occupying)
	if err != nil {
		return nil, apperr.Internal("failed to list resource schedule", err)
	}
	return reservations, nil
}

// CheckAvailability is the advisory read-path check: nil means the slot could
// be booked right now. The answer is not a hold; the write path re-validates.
func (s *DefaultBookingService) CheckAvailability(ctx context.Context, resourceID string, start, end time.Time) error {
	if !start.Before(end) {
		return apperr.Validation("start must be before end")
	}
	return s.Availability.Check(ctx, resourceID, start, end, "")
}

// Stats assembles the admin statistics payload from the aggregation queries.
func (s *DefaultBookingService) Stats(ctx context.Context) (*models.PlatformStats, error) {
	s.sweep(ctx)

	byStatus, err := s.Reservations.CountByStatus(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to aggregate status counts", err)
	}
	byResource, err := s.Reservations.AggregateResourceUsage(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to aggregate resource usage", err)
	}
	upcoming, err := s.Reservations.CountUpcoming(ctx, time.Now().UTC())
	if err != nil {
		return nil, apperr.Internal("failed to count upcoming reservations", err)
	}

	return &models.PlatformStats{
		ByStatus:   byStatus,
		ByResource: byResource,
		Upcoming:   upcoming,
	}, nil
}
