package booking

import (
	"context"
	"time"

	resourceRepo "roomly/database/repository/resource"
	"roomly/models"
	"roomly/services/apperr"

	"go.mongodb.org/mongo-driver/mongo"
)

// AvailabilityService composes the structural rules check with conflict
// detection into the single booking precondition.
type AvailabilityService struct {
	Resources resourceRepo.ResourceRepository
	Conflicts *ConflictChecker
}

// Check returns nil when [start,end) can be booked on the resource: the
// resource must be in status "available", the interval must satisfy the
// resource's availability rules, and no occupying reservation may overlap it.
// The first failing condition short-circuits.
func (s *AvailabilityService) Check(ctx context.Context, resourceID string, start, end time.Time, excludeID string) error {
	res, err := s.Resources.GetByID(ctx, resourceID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return apperr.NotFound("resource not found")
		}
		return apperr.Internal("failed to load resource", err)
	}

	if res.Status != models.ResourceStatusAvailable {
		return apperr.Business("resource is not open for booking (status: " + res.Status + ")")
	}

	if err := CheckRules(res.Rules, start, end); err != nil {
		return err
	}

	conflict, blocking, err := s.Conflicts.HasConflict(ctx, resourceID, start, end, excludeID)
	if err != nil {
		return apperr.Internal("conflict check failed", err)
	}
	if conflict {
		return apperr.Conflict("the requested slot is already booked", blocking)
	}
	return nil
}

// IsAvailable is the advisory boolean form used by the read-only availability
// query. The write path must not rely on it alone.
func (s *AvailabilityService) IsAvailable(ctx context.Context, resourceID string, start, end time.Time, excludeID string) (bool, error) {
	err := s.Check(ctx, resourceID, start, end, excludeID)
	if err == nil {
		return true, nil
	}
	switch apperr.KindOf(err) {
	case apperr.KindBusiness, apperr.KindConflict:
		return false, nil
	}
	return false, err
}
