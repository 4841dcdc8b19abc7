package handlers

import (
	"net/http"

	"roomly/models"
	resourceSvc "roomly/services/resource"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ResourceService is wired in main after the database is initialised.
var ResourceService resourceSvc.ResourceService

// ListResourcesHandler returns all resources, optionally filtered by city
// and/or status.
func ListResourcesHandler(c *gin.Context) {
	logger := getLogger(c)

	city := c.Query("city")
	status := c.Query("status")

	resources, err := ResourceService.List(c.Request.Context(), city, status)
	if err != nil {
		logger.Error("Failed to list resources", zap.Error(err))
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"resources": resources})
}

// GetResourceHandler returns a single resource by ID.
func GetResourceHandler(c *gin.Context) {
	id := c.Param("id")

	res, err := ResourceService.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// CreateResourceHandler creates a new bookable resource. Admin only.
func CreateResourceHandler(c *gin.Context) {
	logger := getLogger(c)

	var in resourceSvc.CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		logger.Error("Invalid resource creation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	res, err := ResourceService.Create(c.Request.Context(), in)
	if err != nil {
		logger.Error("Failed to create resource", zap.String("name", in.Name), zap.Error(err))
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// UpdateResourceHandler applies a partial update to a resource. Admin only.
func UpdateResourceHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	var patch models.ResourcePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		logger.Error("Invalid resource update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	res, err := ResourceService.Update(c.Request.Context(), id, patch)
	if err != nil {
		logger.Error("Failed to update resource", zap.String("id", id), zap.Error(err))
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteResourceHandler removes a resource. Admin only; refused while the
// resource still has active future reservations.
func DeleteResourceHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	if err := ResourceService.Delete(c.Request.Context(), id); err != nil {
		logger.Error("Failed to delete resource", zap.String("id", id), zap.Error(err))
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Resource deleted"})
}
