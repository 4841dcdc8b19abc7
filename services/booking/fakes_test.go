package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	reservationRepo "roomly/database/repository/reservation"
	"roomly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// fakeReservationRepo is an in-memory ReservationRepository mirroring the
// Mongo implementation's query semantics closely enough for the service tests.
type fakeReservationRepo struct {
	mu   sync.Mutex
	rows map[string]*models.Reservation
	seq  int
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{rows: make(map[string]*models.Reservation)}
}

func (f *fakeReservationRepo) nextID() string {
	f.seq++
	return fmt.Sprintf("rsv-%d", f.seq)
}

func (f *fakeReservationRepo) Insert(ctx context.Context, rsv *models.Reservation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if rsv.ID == "" {
		rsv.ID = f.nextID()
	}
	cp := *rsv
	f.rows[rsv.ID] = &cp
	return nil
}

func (f *fakeReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rsv, ok := f.rows[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *rsv
	return &cp, nil
}

func (f *fakeReservationRepo) GetByIDForUser(ctx context.Context, id, userID string) (*models.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rsv, ok := f.rows[id]
	if !ok || rsv.UserID != userID {
		return nil, mongo.ErrNoDocuments
	}
	cp := *rsv
	return &cp, nil
}

func matchesStatus(rsv *models.Reservation, statuses []string) bool {
	if len(statuses) == 0 {
		return true
	}
	for _, s := range statuses {
		if rsv.Status == s {
			return true
		}
	}
	return false
}

func (f *fakeReservationRepo) ListByUser(ctx context.Context, userID string, statuses []string) ([]models.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Reservation
	for _, rsv := range f.rows {
		if rsv.UserID == userID && matchesStatus(rsv, statuses) {
			out = append(out, *rsv)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) ListByResource(ctx context.Context, resourceID string, from, to time.Time, statuses []string) ([]models.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Reservation
	for _, rsv := range f.rows {
		if rsv.ResourceID == resourceID && rsv.Start.Before(to) && rsv.End.After(from) && matchesStatus(rsv, statuses) {
			out = append(out, *rsv)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) ListAll(ctx context.Context, statuses []string) ([]models.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Reservation
	for _, rsv := range f.rows {
		if matchesStatus(rsv, statuses) {
			out = append(out, *rsv)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) overlapping(resourceID string, start, end time.Time, excludeID string) []models.Reservation {
	var out []models.Reservation
	for _, rsv := range f.rows {
		if rsv.ID == excludeID || rsv.ResourceID != resourceID {
			continue
		}
		if rsv.Status != models.ReservationStatusActive {
			continue
		}
		if rsv.Start.Before(end) && rsv.End.After(start) {
			out = append(out, *rsv)
		}
	}
	return out
}

func (f *fakeReservationRepo) FindOverlapping(ctx context.Context, resourceID string, start, end time.Time, excludeID string) ([]models.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.overlapping(resourceID, start, end, excludeID), nil
}

func applyFields(rsv *models.Reservation, fields bson.M) {
	if v, ok := fields["notes"]; ok {
		rsv.Notes = v.(string)
	}
	if v, ok := fields["status"]; ok {
		rsv.Status = v.(string)
	}
	if v, ok := fields["resource_id"]; ok {
		rsv.ResourceID = v.(string)
	}
	if v, ok := fields["start"]; ok {
		rsv.Start = v.(time.Time)
	}
	if v, ok := fields["end"]; ok {
		rsv.End = v.(time.Time)
	}
	rsv.UpdatedAt = time.Now().UTC()
}

func (f *fakeReservationRepo) UpdateFields(ctx context.Context, id string, fields bson.M) (*models.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rsv, ok := f.rows[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	applyFields(rsv, fields)
	cp := *rsv
	return &cp, nil
}

func (f *fakeReservationRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeReservationRepo) CreateTransactionally(ctx context.Context, rsv *models.Reservation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing := f.overlapping(rsv.ResourceID, rsv.Start, rsv.End, ""); len(existing) > 0 {
		return &reservationRepo.ConflictError{Existing: existing}
	}
	if rsv.ID == "" {
		rsv.ID = f.nextID()
	}
	now := time.Now().UTC()
	rsv.CreatedAt = now
	rsv.UpdatedAt = now
	cp := *rsv
	f.rows[rsv.ID] = &cp
	return nil
}

func (f *fakeReservationRepo) UpdateTransactionally(ctx context.Context, id, resourceID string, start, end time.Time, fields bson.M) (*models.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing := f.overlapping(resourceID, start, end, id); len(existing) > 0 {
		return nil, &reservationRepo.ConflictError{Existing: existing}
	}
	rsv, ok := f.rows[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	applyFields(rsv, fields)
	cp := *rsv
	return &cp, nil
}

func (f *fakeReservationRepo) BulkMarkPassed(ctx context.Context, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, rsv := range f.rows {
		if rsv.Occupying() && rsv.End.Before(now) {
			rsv.Status = models.ReservationStatusPassed
			rsv.UpdatedAt = now
			count++
		}
	}
	return count, nil
}

func (f *fakeReservationRepo) CountActiveFuture(ctx context.Context, resourceID string, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, rsv := range f.rows {
		if rsv.ResourceID == resourceID && rsv.Occupying() && rsv.End.After(now) {
			count++
		}
	}
	return count, nil
}

func (f *fakeReservationRepo) CountByStatus(ctx context.Context) ([]models.StatusCount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := make(map[string]int64)
	for _, rsv := range f.rows {
		counts[rsv.Status]++
	}
	var out []models.StatusCount
	for status, count := range counts {
		out = append(out, models.StatusCount{Status: status, Count: count})
	}
	return out, nil
}

func (f *fakeReservationRepo) AggregateResourceUsage(ctx context.Context) ([]models.ResourceUsage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	type agg struct {
		count int64
		hours float64
	}
	usage := make(map[string]*agg)
	for _, rsv := range f.rows {
		if !rsv.Occupying() {
			continue
		}
		a, ok := usage[rsv.ResourceID]
		if !ok {
			a = &agg{}
			usage[rsv.ResourceID] = a
		}
		a.count++
		a.hours += rsv.End.Sub(rsv.Start).Hours()
	}
	var out []models.ResourceUsage
	for id, a := range usage {
		out = append(out, models.ResourceUsage{ResourceID: id, Reservations: a.count, BookedHours: a.hours})
	}
	return out, nil
}

func (f *fakeReservationRepo) CountUpcoming(ctx context.Context, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, rsv := range f.rows {
		if rsv.Occupying() && rsv.Start.After(now) {
			count++
		}
	}
	return count, nil
}

func (f *fakeReservationRepo) EnsureIndexes() error { return nil }

// fakeResourceRepo is an in-memory ResourceRepository.
type fakeResourceRepo struct {
	mu   sync.Mutex
	rows map[string]*models.Resource
}

func newFakeResourceRepo(resources ...*models.Resource) *fakeResourceRepo {
	f := &fakeResourceRepo{rows: make(map[string]*models.Resource)}
	for _, res := range resources {
		cp := *res
		f.rows[res.ID] = &cp
	}
	return f
}

func (f *fakeResourceRepo) Create(ctx context.Context, res *models.Resource) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *res
	f.rows[res.ID] = &cp
	return nil
}

func (f *fakeResourceRepo) GetByID(ctx context.Context, id string) (*models.Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	res, ok := f.rows[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *res
	return &cp, nil
}

func (f *fakeResourceRepo) List(ctx context.Context, city, status string) ([]models.Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Resource
	for _, res := range f.rows {
		if city != "" && res.City != city {
			continue
		}
		if status != "" && res.Status != status {
			continue
		}
		out = append(out, *res)
	}
	return out, nil
}

func (f *fakeResourceRepo) Update(ctx context.Context, id string, fields bson.M) (*models.Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	res, ok := f.rows[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	if v, ok := fields["name"]; ok {
		res.Name = v.(string)
	}
	if v, ok := fields["capacity"]; ok {
		res.Capacity = v.(int)
	}
	if v, ok := fields["city"]; ok {
		res.City = v.(string)
	}
	if v, ok := fields["status"]; ok {
		res.Status = v.(string)
	}
	if v, ok := fields["rules"]; ok {
		res.Rules = v.(models.AvailabilityRules)
	}
	res.UpdatedAt = time.Now().UTC()
	cp := *res
	return &cp, nil
}

func (f *fakeResourceRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeResourceRepo) EnsureIndexes() error { return nil }

// newTestService wires a booking service over the fakes with no notifier.
func newTestService(resources *fakeResourceRepo, reservations *fakeReservationRepo) *DefaultBookingService {
	checker := &ConflictChecker{Repo: reservations}
	return &DefaultBookingService{
		Reservations: reservations,
		Resources:    resources,
		Availability: &AvailabilityService{Resources: resources, Conflicts: checker},
		Sweeper:      &Sweeper{Repo: reservations},
	}
}

// openResource returns an unconstrained available resource for tests.
func openResource(id string) *models.Resource {
	return &models.Resource{
		ID:     id,
		Name:   "Room " + id,
		Status: models.ResourceStatusAvailable,
	}
}
