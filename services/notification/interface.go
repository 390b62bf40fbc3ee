package notification

import (
	"context"

	"tutorhive/models"
)

// NotificationService delivers best-effort booking emails. Failures are the
// caller's to log; they never affect the booking itself.
type NotificationService interface {
	SendBookingConfirmation(ctx context.Context, booking models.Booking, tutor, student models.User, courseTitle string) error
}
