package handlers

import (
	"net/http"
	"strconv"

	notificationRepo "roomly/database/repository/notification"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotificationRepo is wired in main after the database is initialised.
var NotificationRepo notificationRepo.NotificationRepository

// ListAllReservationsHandler returns every reservation on the platform,
// optionally filtered by status. Admin only.
func ListAllReservationsHandler(c *gin.Context) {
	reservations, err := BookingService.ListAll(c.Request.Context(), statusFilter(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": reservations})
}

// DeleteReservationHandler permanently removes a reservation record. This is
// an admin repair operation; users cancel instead.
func DeleteReservationHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	if err := BookingService.Delete(c.Request.Context(), id); err != nil {
		logger.Error("Failed to delete reservation", zap.String("id", id), zap.Error(err))
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reservation deleted"})
}

// PlatformStatsHandler returns reservation counts by status and per-resource
// usage totals. Admin only.
func PlatformStatsHandler(c *gin.Context) {
	logger := getLogger(c)

	stats, err := BookingService.Stats(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute platform stats", zap.Error(err))
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListNotificationsHandler returns the most recent email delivery audit
// records. Admin only.
func ListNotificationsHandler(c *gin.Context) {
	var limit int64
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	notifications, err := NotificationRepo.ListRecent(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}
