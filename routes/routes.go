package routes

import (
	"net/http"
	"time"

	"tutorhive/handlers"
	"tutorhive/middleware"
	"tutorhive/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers bundles the endpoint handlers the router wires up.
type Handlers struct {
	Availability *handlers.AvailabilityHandler
	Booking      *handlers.BookingHandler
	Course       *handlers.CourseHandler
}

// RegisterCourseRoutes registers course and availability endpoints.
func RegisterCourseRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/courses")
	{
		// Browsing is public.
		api.GET("/:id", h.Course.GetCourse)
		api.GET("/:id/available-slots", h.Availability.GetAvailableSlots)

		// Template management requires authentication.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.POST("", h.Course.CreateCourse)
		protected.PUT("/:id/availability", h.Course.SetAvailability)
	}
}

// RegisterBookingRoutes registers booking admission and lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", h.Booking.CreateBooking)
		api.GET("/tutor/:id", h.Booking.GetTutorBookings)
		api.PATCH("/:id/complete", h.Booking.CompleteBooking)
		api.DELETE("/:id", h.Booking.CancelBooking)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, h *Handlers) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCourseRoutes(r, h)
	RegisterBookingRoutes(r, h)
	RegisterHealthRoute(r)
}
