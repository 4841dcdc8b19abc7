package models

import "time"

// Resource statuses.
const (
	ResourceStatusAvailable   = "available"
	ResourceStatusMaintenance = "maintenance"
	ResourceStatusUnavailable = "unavailable"
)

// Resource represents a bookable room or facility.
type Resource struct {
	ID        string            `bson:"id" json:"id"`                                   // Unique resource identifier (UUID)
	Name      string            `bson:"name" json:"name"`                               // Unique display name, max 255 chars
	Capacity  int               `bson:"capacity,omitempty" json:"capacity,omitempty"`   // Seats/occupants; 0 means unspecified
	City      string            `bson:"city,omitempty" json:"city,omitempty"`           // Location / city
	Status    string            `bson:"status" json:"status"`                           // available | maintenance | unavailable
	Rules     AvailabilityRules `bson:"rules" json:"rules"`                             // Recurring booking windows and duration bounds
	CreatedAt time.Time         `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time         `bson:"updated_at" json:"updatedAt"`
}

// ValidStatus reports whether s is a known resource status.
func ValidResourceStatus(s string) bool {
	switch s {
	case ResourceStatusAvailable, ResourceStatusMaintenance, ResourceStatusUnavailable:
		return true
	}
	return false
}

// ResourcePatch carries a partial admin update. Nil fields are left untouched;
// Rules fields merge into the existing rules rather than replacing them wholesale.
type ResourcePatch struct {
	Name     *string                `json:"name,omitempty"`
	Capacity *int                   `json:"capacity,omitempty"`
	City     *string                `json:"city,omitempty"`
	Status   *string                `json:"status,omitempty"`
	Rules    *AvailabilityRulesPatch `json:"rules,omitempty"`
}
