package meeting

import (
	"context"

	"tutorhive/models"
)

// Details carries everything the provider needs to create a video meeting
// for an admitted booking.
type Details struct {
	Booking  models.Booking
	Tutor    models.User
	Student  models.User
	Title    string
	Timezone string // IANA zone the start/end strings are localized to
}

// Service provisions external video meetings. Implementations are invoked
// only after a booking is durably recorded; a failure here never un-books.
type Service interface {
	Schedule(ctx context.Context, details Details) (*models.MeetingInfo, error)
}
