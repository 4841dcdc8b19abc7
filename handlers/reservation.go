package handlers

import (
	"net/http"
	"strings"

	"roomly/middleware"
	"roomly/models"
	"roomly/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingService is wired in main after the database is initialised.
var BookingService booking.BookingService

// statusFilter parses a comma-separated ?status= query into a slice.
func statusFilter(c *gin.Context) []string {
	raw := c.Query("status")
	if raw == "" {
		return nil
	}
	var statuses []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			statuses = append(statuses, s)
		}
	}
	return statuses
}

// CreateReservationHandler books a slot on a resource for the authenticated
// user. Conflicting or rule-violating requests are rejected with the reason.
func CreateReservationHandler(c *gin.Context) {
	logger := getLogger(c)
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var in booking.CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		logger.Error("Invalid reservation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	rsv, err := BookingService.Create(c.Request.Context(), actor, in)
	if err != nil {
		logger.Warn("Reservation rejected",
			zap.String("resourceId", in.ResourceID),
			zap.String("userId", actor.UserID),
			zap.Error(err))
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rsv)
}

// ListMyReservationsHandler returns the authenticated user's reservations,
// optionally filtered by status.
func ListMyReservationsHandler(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	reservations, err := BookingService.ListMine(c.Request.Context(), actor, statusFilter(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": reservations})
}

// GetReservationHandler returns a single reservation. Non-admin callers can
// only see their own; anything else reads as not found.
func GetReservationHandler(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	rsv, err := BookingService.Get(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rsv)
}

// UpdateReservationHandler applies a partial update to a reservation. Moving
// the interval re-runs the full availability check atomically.
func UpdateReservationHandler(c *gin.Context) {
	logger := getLogger(c)
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	id := c.Param("id")

	var patch models.ReservationPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		logger.Error("Invalid reservation update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	rsv, err := BookingService.Update(c.Request.Context(), actor, id, patch)
	if err != nil {
		logger.Warn("Reservation update rejected", zap.String("id", id), zap.Error(err))
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rsv)
}

// CancelReservationHandler cancels a reservation, freeing its slot.
func CancelReservationHandler(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	rsv, err := BookingService.Cancel(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rsv)
}
