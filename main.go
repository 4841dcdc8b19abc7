// File: roomly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roomly/config"
	"roomly/cron"
	"roomly/database"
	notificationRepoPkg "roomly/database/repository/notification"
	reservationRepoPkg "roomly/database/repository/reservation"
	resourceRepoPkg "roomly/database/repository/resource"
	"roomly/handlers"
	"roomly/middleware"
	"roomly/routes"
	"roomly/services/booking"
	"roomly/services/notification"
	"roomly/services/resource"
	"roomly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	resourceRepo := resourceRepoPkg.NewMongoResourceRepo()
	reservationRepo := reservationRepoPkg.NewMongoReservationRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()

	if err := resourceRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure resource indexes: %v", err)
	}
	if err := reservationRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure reservation indexes: %v", err)
	}

	// services.
	resourceService := &resource.DefaultResourceService{
		Repo:         resourceRepo,
		Reservations: reservationRepo,
	}

	conflictChecker := &booking.ConflictChecker{Repo: reservationRepo}
	availabilityService := &booking.AvailabilityService{
		Resources: resourceRepo,
		Conflicts: conflictChecker,
	}
	sweeper := &booking.Sweeper{Repo: reservationRepo}
	dispatcher := notification.NewAsynqDispatcher()

	bookingService := &booking.DefaultBookingService{
		Reservations: reservationRepo,
		Resources:    resourceRepo,
		Availability: availabilityService,
		Sweeper:      sweeper,
		Notifier:     dispatcher,
		AdminEmail:   config.AppConfig.AdminEmail,
	}

	// handlers.
	handlers.ResourceService = resourceService
	handlers.BookingService = bookingService
	handlers.NotificationRepo = notificationRepo

	routes.RegisterRoutes(router)

	// Background workers: mail delivery and the elapsed-reservation sweep.
	mailWorker := cron.NewMailWorker(notificationRepo, notification.SMTPMailer{})
	mailWorker.Start()

	sweepScheduler := booking.NewSweepScheduler(sweeper, config.AppConfig.SweepInterval)
	sweepScheduler.Start()

	utils.StartHealthMonitor(
		[]*redis.Client{utils.CacheClient, utils.AuthCacheClient},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	sweepScheduler.Stop()
	mailWorker.Shutdown()
	if err := dispatcher.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close notification dispatcher: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
