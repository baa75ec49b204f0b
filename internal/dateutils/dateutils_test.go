package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDayFirst(t *testing.T) {
	tests := []struct {
		name       string
		dateStr    string
		expectedOk bool
		expectedY  int
		expectedM  time.Month
		expectedD  int
	}{
		{"Slash ambiguous reads day first", "01/02/2024", true, 2024, time.February, 1},
		{"Dash", "15-01-2023", true, 2023, time.January, 15},
		{"Dot", "15.01.2023", true, 2023, time.January, 15},
		{"ISO", "2023-01-15", true, 2023, time.January, 15},
		{"Unpadded", "1/2/2024", true, 2024, time.February, 1},
		{"Month name", "15 Jan 2023", true, 2023, time.January, 15},
		{"Surrounding space", "  15/01/2023  ", true, 2023, time.January, 15},
		{"Empty", "", false, 0, 0, 0},
		{"Garbage", "not a date", false, 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			date, err := ParseDayFirst(tc.dateStr)
			if tc.expectedOk {
				assert.NoError(t, err)
				assert.Equal(t, tc.expectedY, date.Year())
				assert.Equal(t, tc.expectedM, date.Month())
				assert.Equal(t, tc.expectedD, date.Day())
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestNormalizeDayFirst(t *testing.T) {
	tests := []struct {
		name     string
		dateStr  string
		expected string
	}{
		{"Slash", "01/02/2024", "01022024"},
		{"Dash same day", "1-2-2024", "01022024"},
		{"ISO", "2024-02-01", "01022024"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeDayFirst(tc.dateStr)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestNormalizeDayFirstInvalid(t *testing.T) {
	_, err := NormalizeDayFirst("31/31/2024")
	assert.Error(t, err)
}

func TestCompact(t *testing.T) {
	date := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "01012025", Compact(date))
}
