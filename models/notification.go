package models

import "time"

// Notification kinds sent over the email channel.
const (
	NotificationKindCreated    = "reservation_created"
	NotificationKindUpdated    = "reservation_updated"
	NotificationKindCancelled  = "reservation_cancelled"
	NotificationKindAdminAlert = "admin_alert"
)

// Delivery outcomes recorded per attempt.
const (
	NotificationStatusPending = "pending"
	NotificationStatusSent    = "sent"
	NotificationStatusFailed  = "failed"
)

// EmailNotification is a write-once audit record of one delivery attempt.
// It is never read back to drive business logic.
type EmailNotification struct {
	ID            string    `bson:"id" json:"id"`
	Kind          string    `bson:"kind" json:"kind"`
	Recipient     string    `bson:"recipient" json:"recipient"`
	ReservationID string    `bson:"reservation_id,omitempty" json:"reservationId,omitempty"`
	Status        string    `bson:"status" json:"status"` // pending | sent | failed
	Error         string    `bson:"error,omitempty" json:"error,omitempty"`
	SentAt        time.Time `bson:"sent_at" json:"sentAt"`
}

// EmailPayload is the task body queued for the email worker.
type EmailPayload struct {
	Kind          string `json:"kind"`
	Recipient     string `json:"recipient"`
	ReservationID string `json:"reservationId"`
	ResourceName  string `json:"resourceName"`
	Start         string `json:"start"`
	End           string `json:"end"`
	Status        string `json:"status"`
}
