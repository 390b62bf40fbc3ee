package scheduling

import (
	"context"
	"errors"
	"time"

	bookingRepo "tutorhive/database/repository/booking"
	"tutorhive/models"
	"tutorhive/services/tasks"
	"tutorhive/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxAdmissionAttempts bounds retries when concurrent admissions race.
const maxAdmissionAttempts = 3

// BookSlot validates and durably admits a booking. The overlap check and the
// insert are atomic per tutor; on success the meeting-provisioning and
// confirmation-email tasks are queued best-effort, and their failure never
// invalidates the booking.
func (se *DefaultSchedulingEngine) BookSlot(ctx context.Context, input models.BookingInput) (*models.Booking, error) {
	logger := utils.GetLogger()

	if !input.End.After(input.Start) {
		return nil, newError(CodeInvalidRange, "booking end must be after start")
	}
	if input.TutorID == "" || input.StudentID == "" {
		return nil, newError(CodeInvalidParty, "tutor and student are required")
	}
	if input.TutorID == input.StudentID {
		return nil, newError(CodeInvalidParty, "tutor and student must be distinct")
	}
	if _, err := se.Users.GetByID(ctx, input.TutorID); err != nil {
		return nil, newError(CodeInvalidParty, "unknown tutor %s", input.TutorID)
	}
	if _, err := se.Users.GetByID(ctx, input.StudentID); err != nil {
		return nil, newError(CodeInvalidParty, "unknown student %s", input.StudentID)
	}

	booking := &models.Booking{
		ID:        uuid.New().String(),
		TutorID:   input.TutorID,
		StudentID: input.StudentID,
		CourseID:  input.CourseID,
		Start:     input.Start.UTC(),
		End:       input.End.UTC(),
		Status:    models.BookingConfirmed,
		CreatedAt: time.Now().UTC(),
	}

	for attempt := 1; ; attempt++ {
		err := se.Bookings.CreateIfFree(ctx, booking)
		if err == nil {
			break
		}
		if errors.Is(err, bookingRepo.ErrBookingConflict) {
			return nil, newError(CodeConflict, "requested range overlaps an existing booking for tutor %s", input.TutorID)
		}
		if errors.Is(err, bookingRepo.ErrAdmissionRace) && attempt < maxAdmissionAttempts {
			logger.Warn("admission race detected, retrying",
				zap.String("tutorID", input.TutorID), zap.Int("attempt", attempt))
			continue
		}
		return nil, err
	}

	se.invalidateAvailability(ctx, booking.TutorID)
	se.enqueueSideEffects(booking.ID)

	return booking, nil
}

// enqueueSideEffects queues meeting provisioning and the confirmation email.
// Queue failures are logged and swallowed: the booking is already durable.
func (se *DefaultSchedulingEngine) enqueueSideEffects(bookingID string) {
	if se.Queue == nil {
		return
	}
	logger := utils.GetLogger()

	if task, err := tasks.NewMeetingProvisionTask(bookingID); err == nil {
		if _, err := se.Queue.Enqueue(task); err != nil {
			logger.Error("failed to enqueue meeting provisioning",
				zap.String("bookingID", bookingID), zap.String("code", CodeUpstreamUnavailable), zap.Error(err))
		}
	}
	if task, err := tasks.NewBookingEmailTask(bookingID); err == nil {
		if _, err := se.Queue.Enqueue(task); err != nil {
			logger.Error("failed to enqueue confirmation email",
				zap.String("bookingID", bookingID), zap.String("code", CodeUpstreamUnavailable), zap.Error(err))
		}
	}
}

// CancelBooking soft-cancels a booking, freeing its range on the calendar.
func (se *DefaultSchedulingEngine) CancelBooking(ctx context.Context, id string) error {
	booking, err := se.Bookings.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := se.Bookings.SetStatus(ctx, id, models.BookingCancelled); err != nil {
		return err
	}
	se.invalidateAvailability(ctx, booking.TutorID)
	return nil
}

// CompleteBooking marks a lesson as held.
func (se *DefaultSchedulingEngine) CompleteBooking(ctx context.Context, id string) error {
	return se.Bookings.SetStatus(ctx, id, models.BookingCompleted)
}

// TutorBookings lists all bookings for a tutor, any status.
func (se *DefaultSchedulingEngine) TutorBookings(ctx context.Context, tutorID string) ([]models.Booking, error) {
	return se.Bookings.FindByTutor(ctx, tutorID)
}
