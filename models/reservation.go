package models

import "time"

// Reservation statuses. "active" and "modified" both occupy the resource;
// "cancelled" and "passed" are terminal. The update path leaves status
// untouched, so "modified" is accepted everywhere but never produced here —
// it exists for compatibility with the stored data shape.
const (
	ReservationStatusActive    = "active"
	ReservationStatusModified  = "modified"
	ReservationStatusCancelled = "cancelled"
	ReservationStatusPassed    = "passed"
)

// Reservation is a booked interval on a resource by a user.
type Reservation struct {
	ID         string    `bson:"id" json:"id"`                       // Unique reservation identifier (UUID)
	ResourceID string    `bson:"resource_id" json:"resourceId"`      // Resource being booked
	UserID     string    `bson:"user_id" json:"userId"`              // Owner; fixed at creation
	UserEmail  string    `bson:"user_email" json:"userEmail"`        // Notification recipient captured at creation
	Start      time.Time `bson:"start" json:"start"`                 // Interval start, inclusive
	End        time.Time `bson:"end" json:"end"`                     // Interval end, exclusive
	Status     string    `bson:"status" json:"status"`               // active | modified | cancelled | passed
	Notes      string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updatedAt"`
}

// Occupying reports whether the reservation counts toward conflicts and may
// still be mutated.
func (r Reservation) Occupying() bool {
	return r.Status == ReservationStatusActive || r.Status == ReservationStatusModified
}

// Terminal reports whether the reservation has reached a final status.
func (r Reservation) Terminal() bool {
	return r.Status == ReservationStatusCancelled || r.Status == ReservationStatusPassed
}

// ReservationPatch carries a partial update; nil fields inherit from the
// stored reservation.
type ReservationPatch struct {
	ResourceID *string    `json:"resourceId,omitempty"`
	Start      *time.Time `json:"start,omitempty"`
	End        *time.Time `json:"end,omitempty"`
	Notes      *string    `json:"notes,omitempty"`
}

// Empty reports whether the patch changes nothing.
func (p ReservationPatch) Empty() bool {
	return p.ResourceID == nil && p.Start == nil && p.End == nil && p.Notes == nil
}

// ChangesInterval reports whether applying the patch could move the
// reservation to a different resource or time window.
func (p ReservationPatch) ChangesInterval() bool {
	return p.ResourceID != nil || p.Start != nil || p.End != nil
}
