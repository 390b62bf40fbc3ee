package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tutorhive/config"
	"tutorhive/database"
	bookingRepo "tutorhive/database/repository/booking"
	courseRepo "tutorhive/database/repository/course"
	userRepo "tutorhive/database/repository/user"
	"tutorhive/handlers"
	"tutorhive/middleware"
	"tutorhive/routes"
	"tutorhive/services/meeting"
	"tutorhive/services/notification"
	"tutorhive/services/scheduling"
	"tutorhive/utils"
	"tutorhive/worker"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo()
	if err := bookings.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
	}
	courses := courseRepo.NewMongoCourseRepo()
	users := userRepo.NewMongoUserRepo()

	// external collaborators, both best-effort.
	var meetingSvc meeting.Service
	if svc, err := meeting.NewGoogleMeetService(
		context.Background(),
		config.AppConfig.GoogleClientID,
		config.AppConfig.GoogleClientSecret,
		config.AppConfig.GoogleTokenFile,
		config.AppConfig.GoogleCalendarID,
	); err != nil {
		logger.Warn("meeting provisioning disabled", zap.Error(err))
	} else {
		meetingSvc = svc
	}

	var notifier notification.NotificationService
	if svc, err := notification.NewSESNotificationService(notification.SESConfig{
		Region:          config.AppConfig.SESRegion,
		AccessKeyID:     config.AppConfig.SESAccessKeyID,
		SecretAccessKey: config.AppConfig.SESSecretAccessKey,
		FromAddress:     config.AppConfig.EmailFromAddress,
		FromName:        config.AppConfig.EmailFromName,
	}); err != nil {
		logger.Warn("booking emails disabled", zap.Error(err))
	} else {
		notifier = svc
	}

	// side-effect worker + queue client.
	worker.Start(worker.Deps{
		Bookings:        bookings,
		Courses:         courses,
		Users:           users,
		Meetings:        meetingSvc,
		Notifier:        notifier,
		DefaultTimezone: config.AppConfig.DefaultTimezone,
	})
	queue := worker.NewQueueClient()
	defer queue.Close()

	// scheduling engine.
	engine := &scheduling.DefaultSchedulingEngine{
		Bookings:        bookings,
		Courses:         courses,
		Users:           users,
		Cache:           utils.GetCacheClient(),
		Queue:           queue,
		DefaultTimezone: config.AppConfig.DefaultTimezone,
	}

	handlerBundle := &routes.Handlers{
		Availability: handlers.NewAvailabilityHandler(engine),
		Booking:      handlers.NewBookingHandler(engine),
		Course:       handlers.NewCourseHandler(courses),
	}
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
