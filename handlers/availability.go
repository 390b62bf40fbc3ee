package handlers

import (
	"net/http"
	"strconv"
	"time"

	"tutorhive/services/scheduling"
	"tutorhive/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler serves course availability queries.
type AvailabilityHandler struct {
	Scheduler scheduling.SchedulingService
}

func NewAvailabilityHandler(scheduler scheduling.SchedulingService) *AvailabilityHandler {
	return &AvailabilityHandler{Scheduler: scheduler}
}

// GetAvailableSlots handles GET /api/courses/:id/available-slots.
// daysAhead defaults to 14 and slotMinutes to 60 when omitted.
func (h *AvailabilityHandler) GetAvailableSlots(c *gin.Context) {
	courseID := c.Param("id")

	daysAhead, ok := intQuery(c, "daysAhead", scheduling.DefaultHorizonDays)
	if !ok {
		return
	}
	slotMinutes, ok := intQuery(c, "slotMinutes", scheduling.DefaultSlotMinutes)
	if !ok {
		return
	}

	resp, err := h.Scheduler.AvailableSlots(c.Request.Context(), courseID, daysAhead, slotMinutes, time.Now())
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// intQuery parses an optional integer query parameter, writing a 400 response
// and returning ok=false when it is present but malformed.
func intQuery(c *gin.Context, name string, fallback int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		utils.JSONCodedError(c, http.StatusBadRequest, scheduling.CodeInvalidArgument,
			name+" must be an integer")
		return 0, false
	}
	return value, true
}
