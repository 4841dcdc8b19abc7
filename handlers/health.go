package handlers

import (
	"net/http"

	"roomly/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports process liveness plus the latest dependency snapshot
// from the background health monitor.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"dependencies": utils.GetHealthStatus(),
	})
}
