package scheduling

import (
	"testing"
	"time"

	"tutorhive/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// refMonday is a Monday; tests anchor day zero here so weekday matching is
// deterministic.
var refMonday = time.Date(2026, time.September, 7, 8, 30, 0, 0, time.UTC)

func TestGenerateSlotsMidnightRollover(t *testing.T) {
	blocks := []models.AvailabilityBlock{
		{Days: []string{"Mon"}, StartTime: "10:00PM", EndTime: "2:00AM", Mode: models.ModeOnline},
	}

	slots, err := GenerateSlots(blocks, 0, 60, refMonday, time.UTC)
	require.NoError(t, err)
	require.Len(t, slots, 4)

	assert.Equal(t, time.Date(2026, time.September, 7, 22, 0, 0, 0, time.UTC), slots[0].Start)
	assert.Equal(t, time.Date(2026, time.September, 8, 2, 0, 0, 0, time.UTC), slots[3].End)
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i].Start.After(slots[i-1].Start), "slots must be ascending")
		assert.Equal(t, slots[i-1].End, slots[i].Start, "slots must be contiguous")
	}
}

func TestGenerateSlotsNoPartialTrailingSlot(t *testing.T) {
	blocks := []models.AvailabilityBlock{
		{Days: []string{"Monday"}, StartTime: "9:00AM", EndTime: "10:30AM", Mode: models.ModeOnline},
	}

	slots, err := GenerateSlots(blocks, 0, 60, refMonday, time.UTC)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, time.Date(2026, time.September, 7, 9, 0, 0, 0, time.UTC), slots[0].Start)
	assert.Equal(t, time.Date(2026, time.September, 7, 10, 0, 0, 0, time.UTC), slots[0].End)
}

func TestGenerateSlotsEmptyTemplate(t *testing.T) {
	slots, err := GenerateSlots(nil, 14, 60, refMonday, time.UTC)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlotsWeekdayFiltering(t *testing.T) {
	blocks := []models.AvailabilityBlock{
		{Days: []string{"Tue", "THURSDAY"}, StartTime: "14:00", EndTime: "16:00", Mode: models.ModeOnline},
	}

	// Horizon of zero days on a Monday: the block never matches.
	slots, err := GenerateSlots(blocks, 0, 60, refMonday, time.UTC)
	require.NoError(t, err)
	assert.Empty(t, slots)

	// A week covers both listed days once: 2h at 60m each day.
	slots, err = GenerateSlots(blocks, 6, 60, refMonday, time.UTC)
	require.NoError(t, err)
	assert.Len(t, slots, 4)
	assert.Equal(t, time.Tuesday, slots[0].Start.Weekday())
	assert.Equal(t, time.Thursday, slots[3].Start.Weekday())
}

func TestGenerateSlotsSkipsMalformedBlock(t *testing.T) {
	blocks := []models.AvailabilityBlock{
		{Days: []string{"Mon"}, StartTime: "25:00", EndTime: "26:00", Mode: models.ModeOnline},
		{Days: []string{"Mon"}, StartTime: "9:00AM", EndTime: "11:00AM", Mode: models.ModeOnline},
	}

	slots, err := GenerateSlots(blocks, 0, 60, refMonday, time.UTC)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, 9, slots[0].Start.Hour())
}

func TestGenerateSlotsSortedAcrossBlocks(t *testing.T) {
	blocks := []models.AvailabilityBlock{
		{Days: []string{"Mon"}, StartTime: "3:00PM", EndTime: "5:00PM", Mode: models.ModeOnline},
		{Days: []string{"Mon"}, StartTime: "9:00AM", EndTime: "11:00AM", Mode: models.ModeOnline},
	}

	slots, err := GenerateSlots(blocks, 0, 60, refMonday, time.UTC)
	require.NoError(t, err)
	require.Len(t, slots, 4)
	for i := 1; i < len(slots); i++ {
		assert.False(t, slots[i].Start.Before(slots[i-1].Start))
	}
	assert.Equal(t, 9, slots[0].Start.Hour())
	assert.Equal(t, 16, slots[3].Start.Hour())
}

func TestGenerateSlotsTwelveAndTwentyFourHourEquivalent(t *testing.T) {
	twelve := []models.AvailabilityBlock{
		{Days: []string{"Mon"}, StartTime: "1:00PM", EndTime: "3:00PM", Mode: models.ModeOnline},
	}
	twentyFour := []models.AvailabilityBlock{
		{Days: []string{"Mon"}, StartTime: "13:00", EndTime: "15:00", Mode: models.ModeOnline},
	}

	a, err := GenerateSlots(twelve, 0, 30, refMonday, time.UTC)
	require.NoError(t, err)
	b, err := GenerateSlots(twentyFour, 0, 30, refMonday, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateSlotsLocationOnlyForInPerson(t *testing.T) {
	blocks := []models.AvailabilityBlock{
		{Days: []string{"Mon"}, StartTime: "9:00", EndTime: "10:00", Mode: models.ModeInPerson, Location: "Campus Library"},
		{Days: []string{"Mon"}, StartTime: "10:00", EndTime: "11:00", Mode: models.ModeOnline, Location: "ignored"},
	}

	slots, err := GenerateSlots(blocks, 0, 60, refMonday, time.UTC)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, "Campus Library", slots[0].Location)
	assert.Empty(t, slots[1].Location)
}

func TestGenerateSlotsRejectsBadParameters(t *testing.T) {
	_, err := GenerateSlots(nil, 7, 0, refMonday, time.UTC)
	require.Error(t, err)
	assert.Equal(t, CodeInvalidArgument, ErrorCode(err))

	_, err = GenerateSlots(nil, -1, 60, refMonday, time.UTC)
	require.Error(t, err)
	assert.Equal(t, CodeInvalidArgument, ErrorCode(err))
}
