package scheduling

import "tutorhive/models"

// FilterAvailable removes every candidate slot that overlaps one of the
// tutor's existing bookings. Bookings for other tutors are ignored; the
// caller is expected to have excluded cancelled bookings already.
func FilterAvailable(slots []models.GeneratedSlot, tutorID string, bookings []models.Booking) []models.GeneratedSlot {
	if len(bookings) == 0 {
		return slots
	}
	available := make([]models.GeneratedSlot, 0, len(slots))
	for _, slot := range slots {
		if !overlapsAny(slot, tutorID, bookings) {
			available = append(available, slot)
		}
	}
	return available
}

func overlapsAny(slot models.GeneratedSlot, tutorID string, bookings []models.Booking) bool {
	for _, b := range bookings {
		if b.TutorID != tutorID {
			continue
		}
		// Half-open intervals: touching endpoints are not an overlap.
		if slot.Start.Before(b.End) && slot.End.After(b.Start) {
			return true
		}
	}
	return false
}
