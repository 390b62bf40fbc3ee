package scheduling

import (
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// ParseClockTime converts a wall-clock string to minutes since midnight.
// Both 12-hour ("10:00PM", "9:30 am") and 24-hour ("22:00") forms are
// accepted; with a marker the hour must be in [1,12].
func ParseClockTime(clock string) (int, error) {
	s := strings.TrimSpace(clock)
	if s == "" {
		return 0, newError(CodeInvalidTimeFormat, "empty clock time")
	}

	marker := ""
	if upper := strings.ToUpper(s); strings.HasSuffix(upper, "AM") || strings.HasSuffix(upper, "PM") {
		marker = upper[len(upper)-2:]
		s = strings.TrimSpace(s[:len(s)-2])
	}

	hourPart, minutePart, hasMinutes := strings.Cut(s, ":")
	hour, err := strconv.Atoi(strings.TrimSpace(hourPart))
	if err != nil {
		return 0, newError(CodeInvalidTimeFormat, "unparseable clock time %q", clock)
	}
	minute := 0
	if hasMinutes {
		minute, err = strconv.Atoi(strings.TrimSpace(minutePart))
		if err != nil || minute < 0 || minute > 59 {
			return 0, newError(CodeInvalidTimeFormat, "unparseable minutes in %q", clock)
		}
	}

	switch marker {
	case "":
		if hour < 0 || hour > 23 {
			return 0, newError(CodeInvalidTimeFormat, "hour out of range in %q", clock)
		}
	case "AM":
		if hour < 1 || hour > 12 {
			return 0, newError(CodeInvalidTimeFormat, "12-hour value out of range in %q", clock)
		}
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour < 1 || hour > 12 {
			return 0, newError(CodeInvalidTimeFormat, "12-hour value out of range in %q", clock)
		}
		if hour != 12 {
			hour += 12
		}
	}

	return hour*60 + minute, nil
}
