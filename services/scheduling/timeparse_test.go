package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime(t *testing.T) {
	cases := []struct {
		name  string
		clock string
		want  int
	}{
		{"morning with marker", "9:30AM", 9*60 + 30},
		{"evening with marker", "10:00PM", 22 * 60},
		{"noon", "12:00PM", 12 * 60},
		{"midnight", "12:00AM", 0},
		{"lowercase marker", "3:15pm", 15*60 + 15},
		{"marker with space", "7:45 am", 7*60 + 45},
		{"24 hour", "22:00", 22 * 60},
		{"24 hour morning", "09:05", 9*60 + 5},
		{"hour only 24h", "14", 14 * 60},
		{"hour only with marker", "2PM", 14 * 60},
		{"surrounding whitespace", "  11:00 AM ", 11 * 60},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseClockTime(tc.clock)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseClockTimeRejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name  string
		clock string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"not a number", "ten:00"},
		{"hour past 23 without marker", "24:00"},
		{"hour 0 with marker", "0:30PM"},
		{"hour 13 with marker", "13:00PM"},
		{"minutes past 59", "10:75"},
		{"negative minutes", "10:-5AM"},
		{"garbage suffix", "10:00XM:"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseClockTime(tc.clock)
			require.Error(t, err)
			assert.Equal(t, CodeInvalidTimeFormat, ErrorCode(err))
		})
	}
}
