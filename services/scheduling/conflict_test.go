package scheduling

import (
	"testing"
	"time"

	"tutorhive/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotAt(day time.Time, startHour, endHour int) models.GeneratedSlot {
	return models.GeneratedSlot{
		Start: day.Add(time.Duration(startHour) * time.Hour),
		End:   day.Add(time.Duration(endHour) * time.Hour),
		Mode:  models.ModeOnline,
	}
}

func TestFilterAvailableBoundaryTouchIsNotAConflict(t *testing.T) {
	day := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	slots := []models.GeneratedSlot{
		slotAt(day, 13, 14), // ends exactly where the booking starts
		{Start: day.Add(13*time.Hour + 30*time.Minute), End: day.Add(14*time.Hour + 30*time.Minute), Mode: models.ModeOnline},
		slotAt(day, 15, 16), // starts exactly where the booking ends
	}
	bookings := []models.Booking{
		{TutorID: "tutor-1", Start: day.Add(14 * time.Hour), End: day.Add(15 * time.Hour), Status: models.BookingConfirmed},
	}

	available := FilterAvailable(slots, "tutor-1", bookings)
	require.Len(t, available, 2)
	assert.Equal(t, slots[0], available[0])
	assert.Equal(t, slots[2], available[1])
}

func TestFilterAvailableIgnoresOtherTutors(t *testing.T) {
	day := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	slots := []models.GeneratedSlot{slotAt(day, 9, 10)}
	bookings := []models.Booking{
		{TutorID: "someone-else", Start: day.Add(9 * time.Hour), End: day.Add(10 * time.Hour)},
	}

	available := FilterAvailable(slots, "tutor-1", bookings)
	assert.Equal(t, slots, available)
}

func TestFilterAvailableContainment(t *testing.T) {
	day := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	slots := []models.GeneratedSlot{
		slotAt(day, 9, 12), // fully contains the booking
		slotAt(day, 10, 11),
	}
	bookings := []models.Booking{
		{TutorID: "tutor-1", Start: day.Add(10 * time.Hour), End: day.Add(11 * time.Hour)},
	}

	available := FilterAvailable(slots, "tutor-1", bookings)
	assert.Empty(t, available)
}

func TestFilterAvailableIdempotent(t *testing.T) {
	day := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	slots := []models.GeneratedSlot{
		slotAt(day, 9, 10),
		slotAt(day, 10, 11),
	}
	bookings := []models.Booking{
		{TutorID: "tutor-1", Start: day.Add(9 * time.Hour), End: day.Add(10 * time.Hour)},
	}

	once := FilterAvailable(slots, "tutor-1", bookings)
	twice := FilterAvailable(once, "tutor-1", bookings)
	assert.Equal(t, once, twice)
}
