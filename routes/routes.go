package routes

import (
	"time"

	"roomly/handlers"
	"roomly/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterResourceRoutes registers the resource catalog endpoints. Reads are
// open; mutations are admin-only.
func RegisterResourceRoutes(r *gin.Engine) {
	api := r.Group("/api/resources")
	{
		api.GET("", handlers.ListResourcesHandler)
		api.GET("/:id", handlers.GetResourceHandler)
		api.GET("/:id/availability", handlers.CheckAvailabilityHandler)
		api.GET("/:id/schedule", handlers.ResourceScheduleHandler)

		admin := api.Group("")
		admin.Use(middleware.AuthMiddleware(), middleware.AdminOnly())
		admin.POST("", handlers.CreateResourceHandler)
		admin.PATCH("/:id", handlers.UpdateResourceHandler)
		admin.DELETE("/:id", handlers.DeleteResourceHandler)
	}
}

// RegisterReservationRoutes registers the booking endpoints. All of them
// require an authenticated actor.
func RegisterReservationRoutes(r *gin.Engine) {
	api := r.Group("/api/reservations")
	{
		api.Use(middleware.AuthMiddleware())
		api.POST("", handlers.CreateReservationHandler)
		api.GET("", handlers.ListMyReservationsHandler)
		api.GET("/:id", handlers.GetReservationHandler)
		api.PATCH("/:id", handlers.UpdateReservationHandler)
		api.POST("/:id/cancel", handlers.CancelReservationHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AuthMiddleware(), middleware.AdminOnly())
		adminGroup.GET("/reservations", handlers.ListAllReservationsHandler)
		adminGroup.DELETE("/reservations/:id", handlers.DeleteReservationHandler)
		adminGroup.GET("/stats", handlers.PlatformStatsHandler)
		adminGroup.GET("/notifications", handlers.ListNotificationsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterResourceRoutes(r)
	RegisterReservationRoutes(r)
	RegisterAdminRoutes(r)
}
