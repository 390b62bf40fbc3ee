package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tutorhive/models"
	"tutorhive/services/scheduling"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubScheduler records calls and plays back canned results.
type stubScheduler struct {
	slots     *models.AvailableSlotsResponse
	slotsErr  error
	booking   *models.Booking
	bookErr   error
	lastInput models.BookingInput

	lastCourseID    string
	lastDaysAhead   int
	lastSlotMinutes int
	cancelled       []string
	completed       []string
}

func (s *stubScheduler) AvailableSlots(_ context.Context, courseID string, horizonDays, slotMinutes int, _ time.Time) (*models.AvailableSlotsResponse, error) {
	s.lastCourseID = courseID
	s.lastDaysAhead = horizonDays
	s.lastSlotMinutes = slotMinutes
	return s.slots, s.slotsErr
}

func (s *stubScheduler) BookSlot(_ context.Context, input models.BookingInput) (*models.Booking, error) {
	s.lastInput = input
	return s.booking, s.bookErr
}

func (s *stubScheduler) CancelBooking(_ context.Context, id string) error {
	s.cancelled = append(s.cancelled, id)
	return nil
}

func (s *stubScheduler) CompleteBooking(_ context.Context, id string) error {
	s.completed = append(s.completed, id)
	return nil
}

func (s *stubScheduler) TutorBookings(_ context.Context, _ string) ([]models.Booking, error) {
	return nil, nil
}

func newTestRouter(scheduler scheduling.SchedulingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	availability := NewAvailabilityHandler(scheduler)
	booking := NewBookingHandler(scheduler)
	r.GET("/api/courses/:id/available-slots", availability.GetAvailableSlots)
	r.POST("/api/bookings", booking.CreateBooking)
	r.DELETE("/api/bookings/:id", booking.CancelBooking)
	r.PATCH("/api/bookings/:id/complete", booking.CompleteBooking)
	return r
}

func TestGetAvailableSlotsDefaultsAndParams(t *testing.T) {
	stub := &stubScheduler{slots: &models.AvailableSlotsResponse{CourseID: "course-1", TutorID: "tutor-1", SlotMinutes: 60}}
	router := newTestRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/courses/course-1/available-slots", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "course-1", stub.lastCourseID)
	assert.Equal(t, scheduling.DefaultHorizonDays, stub.lastDaysAhead)
	assert.Equal(t, scheduling.DefaultSlotMinutes, stub.lastSlotMinutes)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/courses/course-1/available-slots?daysAhead=7&slotMinutes=30", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 7, stub.lastDaysAhead)
	assert.Equal(t, 30, stub.lastSlotMinutes)
}

func TestGetAvailableSlotsRejectsMalformedQuery(t *testing.T) {
	stub := &stubScheduler{}
	router := newTestRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/courses/course-1/available-slots?daysAhead=soon", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), scheduling.CodeInvalidArgument)
}

func TestCreateBookingSuccess(t *testing.T) {
	stub := &stubScheduler{booking: &models.Booking{ID: "b-1", Status: models.BookingConfirmed}}
	router := newTestRouter(stub)

	body := `{"tutorId":"tutor-1","studentId":"student-1","start":"2026-09-07T09:00:00Z","end":"2026-09-07T10:00:00Z"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "tutor-1", stub.lastInput.TutorID)
	assert.Contains(t, w.Body.String(), `"b-1"`)
}

func TestCreateBookingStatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"conflict", &scheduling.SchedulingError{Code: scheduling.CodeConflict, Message: "taken"}, http.StatusConflict},
		{"invalid range", &scheduling.SchedulingError{Code: scheduling.CodeInvalidRange, Message: "bad range"}, http.StatusBadRequest},
		{"invalid party", &scheduling.SchedulingError{Code: scheduling.CodeInvalidParty, Message: "bad party"}, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubScheduler{bookErr: tc.err}
			router := newTestRouter(stub)

			body := `{"tutorId":"tutor-1","studentId":"student-1","start":"2026-09-07T09:00:00Z","end":"2026-09-07T10:00:00Z"}`
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestCreateBookingRejectsMalformedJSON(t *testing.T) {
	stub := &stubScheduler{}
	router := newTestRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{"tutorId":`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingLifecycleEndpoints(t *testing.T) {
	stub := &stubScheduler{}
	router := newTestRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/b-1", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"b-1"}, stub.cancelled)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPatch, "/api/bookings/b-1/complete", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"b-1"}, stub.completed)
}
