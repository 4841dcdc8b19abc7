package booking

import (
	"context"
	"errors"
	"time"

	reservationRepo "roomly/database/repository/reservation"
	"roomly/models"
	"roomly/services/apperr"
	"roomly/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Create validates and books a new reservation. The availability check runs
// twice: once up front for a specific rejection message, and again inside the
// storage transaction so two concurrent creates for intersecting intervals
// cannot both commit.
func (s *DefaultBookingService) Create(ctx context.Context, actor models.Actor, in CreateInput) (*models.Reservation, error) {
	if in.ResourceID == "" {
		return nil, apperr.Validation("resourceId is required")
	}
	if err := validateInterval(in.Start, in.End, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err := s.Availability.Check(ctx, in.ResourceID, in.Start, in.End, ""); err != nil {
		return nil, err
	}

	rsv := &models.Reservation{
		ResourceID: in.ResourceID,
		UserID:     actor.UserID,
		UserEmail:  actor.Email,
		Start:      in.Start.UTC(),
		End:        in.End.UTC(),
		Status:     models.ReservationStatusActive,
		Notes:      in.Notes,
	}

	if err := s.Reservations.CreateTransactionally(ctx, rsv); err != nil {
		return nil, translateTxnError(err)
	}

	s.notify(models.NotificationKindCreated, rsv, rsv.UserEmail)
	s.notify(models.NotificationKindAdminAlert, rsv, s.AdminEmail)
	return rsv, nil
}

// Update applies a partial update. Patched fields override, everything else is
// inherited from the stored reservation; when the interval or resource moves,
// the new window is re-validated with the reservation itself excluded from
// conflict detection.
func (s *DefaultBookingService) Update(ctx context.Context, actor models.Actor, id string, patch models.ReservationPatch) (*models.Reservation, error) {
	existing, err := s.loadOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := EnsureMutable(existing); err != nil {
		return nil, err
	}
	if patch.Empty() {
		return existing, nil
	}

	if !patch.ChangesInterval() {
		updated, err := s.Reservations.UpdateFields(ctx, id, bson.M{"notes": *patch.Notes})
		if err != nil {
			return nil, apperr.Internal("failed to update reservation", err)
		}
		s.notify(models.NotificationKindUpdated, updated, updated.UserEmail)
		return updated, nil
	}

	resourceID := existing.ResourceID
	if patch.ResourceID != nil {
		resourceID = *patch.ResourceID
	}
	start := existing.Start
	if patch.Start != nil {
		start = patch.Start.UTC()
	}
	end := existing.End
	if patch.End != nil {
		end = patch.End.UTC()
	}

	if err := validateInterval(start, end, time.Now().UTC()); err != nil {
		return nil, err
	}
	if err := s.Availability.Check(ctx, resourceID, start, end, id); err != nil {
		return nil, err
	}

	// Status is deliberately left unchanged by updates.
	fields := bson.M{
		"resource_id": resourceID,
		"start":       start,
		"end":         end,
	}
	if patch.Notes != nil {
		fields["notes"] = *patch.Notes
	}

	updated, err := s.Reservations.UpdateTransactionally(ctx, id, resourceID, start, end, fields)
	if err != nil {
		return nil, translateTxnError(err)
	}

	s.notify(models.NotificationKindUpdated, updated, updated.UserEmail)
	return updated, nil
}

// Cancel moves an occupying reservation to the terminal cancelled status.
func (s *DefaultBookingService) Cancel(ctx context.Context, actor models.Actor, id string) (*models.Reservation, error) {
	existing, err := s.loadOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := EnsureMutable(existing); err != nil {
		return nil, err
	}

	updated, err := s.Reservations.UpdateFields(ctx, id, bson.M{"status": models.ReservationStatusCancelled})
	if err != nil {
		return nil, apperr.Internal("failed to cancel reservation", err)
	}

	s.notify(models.NotificationKindCancelled, updated, updated.UserEmail)
	return updated, nil
}

// Delete removes a reservation unconditionally. Admin-only; route-gated.
func (s *DefaultBookingService) Delete(ctx context.Context, id string) error {
	if err := s.Reservations.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperr.NotFound("reservation not found")
		}
		return apperr.Internal("failed to delete reservation", err)
	}
	return nil
}

// loadOwned fetches a reservation applying the ownership rule: admins see any
// reservation, regular users only their own. A foreign reservation and a
// missing one yield the same not-found answer. A lazy sweep runs first so the
// caller never sees an occupying status past its end time.
func (s *DefaultBookingService) loadOwned(ctx context.Context, actor models.Actor, id string) (*models.Reservation, error) {
	s.sweep(ctx)

	var (
		rsv *models.Reservation
		err error
	)
	if actor.IsAdmin {
		rsv, err = s.Reservations.GetByID(ctx, id)
	} else {
		rsv, err = s.Reservations.GetByIDForUser(ctx, id, actor.UserID)
	}
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("reservation not found")
		}
		return nil, apperr.Internal("failed to load reservation", err)
	}
	return rsv, nil
}

// sweep opportunistically promotes elapsed reservations before a read. Sweep
// failures are logged and never block the caller.
func (s *DefaultBookingService) sweep(ctx context.Context) {
	if s.Sweeper == nil {
		return
	}
	if _, err := s.Sweeper.Sweep(ctx); err != nil {
		utils.GetLogger().Warn("opportunistic sweep failed", zap.Error(err))
	}
}

// notify dispatches a reservation email detached from the caller: the booking
// outcome is already decided and a slow or failing channel must not undo it.
func (s *DefaultBookingService) notify(kind string, rsv *models.Reservation, recipient string) {
	if s.Notifier == nil || recipient == "" {
		return
	}
	snapshot := *rsv
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		resourceName := snapshot.ResourceID
		if res, err := s.Resources.GetByID(ctx, snapshot.ResourceID); err == nil {
			resourceName = res.Name
		}

		if err := s.Notifier.Dispatch(ctx, kind, snapshot, resourceName, recipient); err != nil {
			utils.GetLogger().Warn("notification dispatch failed",
				zap.String("kind", kind),
				zap.String("reservationID", snapshot.ID),
				zap.Error(err))
		}
	}()
}

func validateInterval(start, end, now time.Time) error {
	if start.IsZero() || end.IsZero() {
		return apperr.Validation("start and end are required")
	}
	if !start.Before(end) {
		return apperr.Validation("start must be before end")
	}
	if start.Before(now) {
		return apperr.Business("bookings cannot start in the past")
	}
	return nil
}

// translateTxnError maps the repository's transactional conflict into the
// shared taxonomy so callers see the same error whether the pre-check or the
// in-transaction re-check lost the race.
func translateTxnError(err error) error {
	var conflict *reservationRepo.ConflictError
	if errors.As(err, &conflict) {
		var blocking *models.Reservation
		if len(conflict.Existing) > 0 {
			blocking = &conflict.Existing[0]
		}
		return apperr.Conflict("the requested slot is already booked", blocking)
	}
	if apperr.KindOf(err) != apperr.KindInternal {
		return err
	}
	return apperr.Internal("reservation write failed", err)
}
