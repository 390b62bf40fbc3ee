package scheduling

import (
	"sort"
	"strings"
	"time"

	"tutorhive/models"
	"tutorhive/utils"

	"go.uber.org/zap"
)

// Defaults applied at the HTTP boundary when the client omits the parameters.
const (
	DefaultHorizonDays = 14
	DefaultSlotMinutes = 60
)

// GenerateSlots expands a course's weekly availability template into concrete
// bookable slots for every day in [ref, ref + horizonDays], inclusive. Day
// boundaries and weekday names follow loc; ref anchors day zero. The result
// is sorted ascending by start time, stable across blocks, and contains no
// partial trailing slot shorter than slotMinutes.
//
// A block whose times fail to parse is skipped with a warning so one
// malformed block cannot suppress the rest of the template.
func GenerateSlots(
	blocks []models.AvailabilityBlock,
	horizonDays, slotMinutes int,
	ref time.Time,
	loc *time.Location,
) ([]models.GeneratedSlot, error) {
	if slotMinutes <= 0 {
		return nil, newError(CodeInvalidArgument, "slot duration must be positive, got %d", slotMinutes)
	}
	if horizonDays < 0 {
		return nil, newError(CodeInvalidArgument, "horizon days must be non-negative, got %d", horizonDays)
	}
	if loc == nil {
		loc = time.Local
	}

	logger := utils.GetLogger()
	duration := time.Duration(slotMinutes) * time.Minute

	ref = ref.In(loc)
	dayZero := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, loc)

	slots := []models.GeneratedSlot{}
	for d := 0; d <= horizonDays; d++ {
		day := dayZero.AddDate(0, 0, d)

		for _, block := range blocks {
			if !coversWeekday(block.Days, day.Weekday()) {
				continue
			}

			startMin, err := ParseClockTime(block.StartTime)
			if err != nil {
				logger.Warn("skipping availability block with bad start time",
					zap.String("startTime", block.StartTime), zap.Error(err))
				continue
			}
			endMin, err := ParseClockTime(block.EndTime)
			if err != nil {
				logger.Warn("skipping availability block with bad end time",
					zap.String("endTime", block.EndTime), zap.Error(err))
				continue
			}
			if endMin <= startMin {
				// Block crosses midnight; its end rolls into the next day.
				endMin += minutesPerDay
			}

			blockStart := day.Add(time.Duration(startMin) * time.Minute)
			blockEnd := day.Add(time.Duration(endMin) * time.Minute)

			location := ""
			if block.Mode == models.ModeInPerson {
				location = block.Location
			}

			for cursor := blockStart; !cursor.Add(duration).After(blockEnd); cursor = cursor.Add(duration) {
				slots = append(slots, models.GeneratedSlot{
					Start:    cursor,
					End:      cursor.Add(duration),
					Mode:     block.Mode,
					Location: location,
				})
			}
		}
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Start.Before(slots[j].Start)
	})

	return slots, nil
}

// coversWeekday matches weekday tokens loosely: "Mon", "monday" and "MONDAY"
// all cover time.Monday.
func coversWeekday(days []string, wd time.Weekday) bool {
	prefix := wd.String()[:3]
	for _, day := range days {
		token := strings.TrimSpace(day)
		if len(token) >= 3 && strings.EqualFold(token[:3], prefix) {
			return true
		}
	}
	return false
}
