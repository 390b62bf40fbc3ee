package bookingRepo

import (
	"context"
	"errors"
	"time"

	"tutorhive/models"
)

// ErrBookingConflict is returned by CreateIfFree when the requested range
// overlaps an existing non-cancelled booking for the same tutor.
var ErrBookingConflict = errors.New("booking range already taken")

// ErrAdmissionRace signals a transient write conflict between concurrent
// admissions; the caller may retry a bounded number of times.
var ErrAdmissionRace = errors.New("concurrent admission detected")

// BookingRepository defines data access for booking records.
type BookingRepository interface {
	// CreateIfFree inserts the booking unless it overlaps an existing
	// non-cancelled booking for the same tutor. The overlap check and the
	// insert are a single atomic step with respect to concurrent calls.
	CreateIfFree(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// FindOverlapping returns the tutor's non-cancelled bookings intersecting
	// the half-open window [from, to).
	FindOverlapping(ctx context.Context, tutorID string, from, to time.Time) ([]models.Booking, error)
	FindByTutor(ctx context.Context, tutorID string) ([]models.Booking, error)
	SetStatus(ctx context.Context, id, status string) error
	// AttachMeeting decorates a booking with external meeting metadata.
	AttachMeeting(ctx context.Context, id string, meeting models.MeetingInfo) error
}
