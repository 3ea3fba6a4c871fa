package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseISODate(t *testing.T) {
	tests := []struct {
		name        string
		dateStr     string
		expectedOk  bool
		expected    time.Time
		expectedFmt string
	}{
		{"date only", "2024-06-01", true, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), DateLayoutISO},
		{"padded", "  2024-06-01 ", true, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), DateLayoutISO},
		{"T separator", "2024-06-01T13:45:10", true, time.Date(2024, 6, 1, 13, 45, 10, 0, time.UTC), DateLayoutISOTime},
		{"space separator", "2024-06-01 13:45:10", true, time.Date(2024, 6, 1, 13, 45, 10, 0, time.UTC), DateLayoutISOSpaced},
		{"fractional seconds", "2024-06-01T13:45:10.5", true, time.Date(2024, 6, 1, 13, 45, 10, 500000000, time.UTC), DateLayoutISOTime},
		{"UTC offset", "2024-06-01T13:45:10Z", true, time.Date(2024, 6, 1, 13, 45, 10, 0, time.UTC), time.RFC3339Nano},
		{"empty", "", false, time.Time{}, ""},
		{"european", "01.06.2024", false, time.Time{}, ""},
		{"invalid month", "2024-13-01", false, time.Time{}, ""},
		{"garbage", "yesterday", false, time.Time{}, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			date, format, err := ParseISODate(tc.dateStr)

			if tc.expectedOk {
				assert.NoError(t, err)
				assert.True(t, tc.expected.Equal(date), "got %v", date)
				assert.Equal(t, tc.expectedFmt, format)
			} else {
				assert.Error(t, err)
				assert.True(t, date.IsZero())
			}
		})
	}
}

func TestParseISODate_WithOffset(t *testing.T) {
	date, _, err := ParseISODate("2024-06-01T23:30:00+03:00")
	assert.NoError(t, err)
	assert.Equal(t, 1, date.Day())
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), StartOfDay(date))
}

func TestStartOfDay(t *testing.T) {
	a := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2024, 6, 1, 18, 5, 0, 0, time.UTC)
	c := time.Date(2024, 6, 2, 0, 0, 0, 1, time.UTC)

	assert.Equal(t, StartOfDay(a), StartOfDay(b))
	assert.NotEqual(t, StartOfDay(a), StartOfDay(c))

	m := map[time.Time]int{}
	m[StartOfDay(a)]++
	m[StartOfDay(b)]++
	assert.Equal(t, 2, m[time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)])
}

func TestToISODate(t *testing.T) {
	assert.Equal(t, "2024-06-30", ToISODate(time.Date(2024, 6, 30, 23, 59, 0, 0, time.UTC)))
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 29, DaysBetween(start, time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, DaysBetween(start, start))
}
