package handlers

import (
	"net/http"

	"tutorhive/models"
	"tutorhive/services/scheduling"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves booking admission and lifecycle endpoints.
type BookingHandler struct {
	Scheduler scheduling.SchedulingService
}

func NewBookingHandler(scheduler scheduling.SchedulingService) *BookingHandler {
	return &BookingHandler{Scheduler: scheduler}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	booking, err := h.Scheduler.BookSlot(c.Request.Context(), input)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

// CancelBooking handles DELETE /api/bookings/:id.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	if err := h.Scheduler.CancelBooking(c.Request.Context(), c.Param("id")); err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.BookingCancelled})
}

// CompleteBooking handles PATCH /api/bookings/:id/complete.
func (h *BookingHandler) CompleteBooking(c *gin.Context) {
	if err := h.Scheduler.CompleteBooking(c.Request.Context(), c.Param("id")); err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.BookingCompleted})
}

// GetTutorBookings handles GET /api/bookings/tutor/:id.
func (h *BookingHandler) GetTutorBookings(c *gin.Context) {
	bookings, err := h.Scheduler.TutorBookings(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
