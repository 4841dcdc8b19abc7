package resource

import (
	"context"
	"errors"
	"time"

	"roomly/models"
	"roomly/services/apperr"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (s *DefaultResourceService) Create(ctx context.Context, in CreateInput) (*models.Resource, error) {
	if err := validateName(in.Name); err != nil {
		return nil, err
	}
	if in.Capacity < 0 {
		return nil, apperr.Validation("capacity must be a positive integer")
	}
	status := in.Status
	if status == "" {
		status = models.ResourceStatusAvailable
	}
	if !models.ValidResourceStatus(status) {
		return nil, apperr.Validation("unknown resource status: " + status)
	}
	if err := in.Rules.Validate(); err != nil {
		return nil, apperr.Validation(err.Error())
	}

	res := &models.Resource{
		Name:     in.Name,
		Capacity: in.Capacity,
		City:     in.City,
		Status:   status,
		Rules:    in.Rules,
	}
	if err := s.Repo.Create(ctx, res); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperr.Business("a resource with this name already exists")
		}
		return nil, apperr.Internal("failed to create resource", err)
	}
	return res, nil
}

func (s *DefaultResourceService) Get(ctx context.Context, id string) (*models.Resource, error) {
	res, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("resource not found")
		}
		return nil, apperr.Internal("failed to load resource", err)
	}
	return res, nil
}

func (s *DefaultResourceService) List(ctx context.Context, city, status string) ([]models.Resource, error) {
	resources, err := s.Repo.List(ctx, city, status)
	if err != nil {
		return nil, apperr.Internal("failed to list resources", err)
	}
	return resources, nil
}

// Update applies a partial update. Rules fields merge into the stored rules so
// an admin can adjust, say, the weekday mask without restating the time ranges.
func (s *DefaultResourceService) Update(ctx context.Context, id string, patch models.ResourcePatch) (*models.Resource, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := bson.M{}
	if patch.Name != nil {
		if err := validateName(*patch.Name); err != nil {
			return nil, err
		}
		fields["name"] = *patch.Name
	}
	if patch.Capacity != nil {
		if *patch.Capacity < 0 {
			return nil, apperr.Validation("capacity must be a positive integer")
		}
		fields["capacity"] = *patch.Capacity
	}
	if patch.City != nil {
		fields["city"] = *patch.City
	}
	if patch.Status != nil {
		if !models.ValidResourceStatus(*patch.Status) {
			return nil, apperr.Validation("unknown resource status: " + *patch.Status)
		}
		fields["status"] = *patch.Status
	}
	if patch.Rules != nil {
		merged := patch.Rules.Apply(existing.Rules)
		if err := merged.Validate(); err != nil {
			return nil, apperr.Validation(err.Error())
		}
		fields["rules"] = merged
	}
	if len(fields) == 0 {
		return existing, nil
	}

	updated, err := s.Repo.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("resource not found")
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperr.Business("a resource with this name already exists")
		}
		return nil, apperr.Internal("failed to update resource", err)
	}
	return updated, nil
}

// Delete removes a resource unless it still has occupying reservations ending
// in the future.
func (s *DefaultResourceService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	count, err := s.Reservations.CountActiveFuture(ctx, id, time.Now().UTC())
	if err != nil {
		return apperr.Internal("failed to check reservations for resource", err)
	}
	if count > 0 {
		return apperr.Business("resource still has active reservations and cannot be deleted")
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperr.NotFound("resource not found")
		}
		return apperr.Internal("failed to delete resource", err)
	}
	return nil
}

func validateName(name string) error {
	if name == "" {
		return apperr.Validation("resource name is required")
	}
	if len(name) > 255 {
		return apperr.Validation("resource name exceeds 255 characters")
	}
	return nil
}
