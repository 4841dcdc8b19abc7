package notification

import (
	"context"

	"roomly/models"
)

// Dispatcher hands a reservation event to the outbound email channel. Dispatch
// only enqueues; rendering, delivery and the audit record happen in the mail
// worker. Callers on the booking path invoke it detached and never let its
// outcome affect the booking decision.
type Dispatcher interface {
	Dispatch(ctx context.Context, kind string, rsv models.Reservation, resourceName, recipient string) error
	Close() error
}

// Mailer delivers one rendered email.
type Mailer interface {
	Send(to, subject, body string) error
}
