package booking

import (
	"roomly/models"
	"roomly/services/apperr"
)

// legalTransitions is the closed reservation state machine. "cancelled" and
// "passed" are terminal; nothing leaves them. Updates preserve the current
// status, so "modified" is accepted as an occupying state but never produced
// by this codebase.
var legalTransitions = map[string][]string{
	models.ReservationStatusActive:    {models.ReservationStatusModified, models.ReservationStatusCancelled, models.ReservationStatusPassed},
	models.ReservationStatusModified:  {models.ReservationStatusModified, models.ReservationStatusCancelled, models.ReservationStatusPassed},
	models.ReservationStatusCancelled: {},
	models.ReservationStatusPassed:    {},
}

// CanTransition reports whether a reservation may move from one status to
// another.
func CanTransition(from, to string) bool {
	for _, t := range legalTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// EnsureMutable rejects mutation of reservations that have reached a terminal
// status, with a message naming the reason.
func EnsureMutable(rsv *models.Reservation) error {
	switch rsv.Status {
	case models.ReservationStatusActive, models.ReservationStatusModified:
		return nil
	case models.ReservationStatusCancelled:
		return apperr.Business("reservation has been cancelled and can no longer be changed")
	case models.ReservationStatusPassed:
		return apperr.Business("reservation has already passed and can no longer be changed")
	default:
		return apperr.Business("reservation is in an unknown status: " + rsv.Status)
	}
}
