package handlers

import (
	"testing"

	"tutorhive/models"
	"tutorhive/services/scheduling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBlocksFoldsSplitMarkers(t *testing.T) {
	inputs := []models.AvailabilityBlockInput{
		{Days: []string{"Mon"}, StartTime: "10:00", StartAmPm: "PM", EndTime: "2:00", EndAmPm: "AM"},
		{Days: []string{"Tue"}, StartTime: "14:00", EndTime: "16:00"},
	}

	blocks, err := normalizeBlocks(inputs)
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, "10:00 PM", blocks[0].StartTime)
	assert.Equal(t, "2:00 AM", blocks[0].EndTime)
	assert.Equal(t, "14:00", blocks[1].StartTime)
	assert.Equal(t, models.ModeOnline, blocks[0].Mode, "mode defaults to online")
}

func TestNormalizeBlocksRejectsBadClock(t *testing.T) {
	inputs := []models.AvailabilityBlockInput{
		{Days: []string{"Mon"}, StartTime: "25:00", EndTime: "26:00"},
	}

	_, err := normalizeBlocks(inputs)
	require.Error(t, err)
	assert.Equal(t, scheduling.CodeInvalidTimeFormat, scheduling.ErrorCode(err))
}

func TestNormalizeBlocksRequiresLocationInPerson(t *testing.T) {
	inputs := []models.AvailabilityBlockInput{
		{Days: []string{"Mon"}, StartTime: "9:00", EndTime: "11:00", Mode: models.ModeInPerson},
	}

	_, err := normalizeBlocks(inputs)
	require.Error(t, err)
	assert.Equal(t, scheduling.CodeInvalidArgument, scheduling.ErrorCode(err))

	inputs[0].Location = "Room 4"
	blocks, err := normalizeBlocks(inputs)
	require.NoError(t, err)
	assert.Equal(t, "Room 4", blocks[0].Location)
}
