package models

// StatusCount is one bucket of the reservations-by-status aggregation.
type StatusCount struct {
	Status string `bson:"_id" json:"status"`
	Count  int64  `bson:"count" json:"count"`
}

// ResourceUsage summarizes booked load per resource.
type ResourceUsage struct {
	ResourceID   string  `bson:"_id" json:"resourceId"`
	Reservations int64   `bson:"reservations" json:"reservations"`
	BookedHours  float64 `bson:"booked_hours" json:"bookedHours"`
}

// PlatformStats is the admin statistics payload.
type PlatformStats struct {
	ByStatus   []StatusCount   `json:"byStatus"`
	ByResource []ResourceUsage `json:"byResource"`
	Upcoming   int64           `json:"upcoming"` // occupying reservations starting in the future
}
