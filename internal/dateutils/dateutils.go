// Package dateutils provides the date parsing and normalisation used by the
// loader, the aggregator and the generator.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Date layouts accepted for input dates.
const (
	DateLayoutISO       = "2006-01-02"
	DateLayoutISOTime   = "2006-01-02T15:04:05"
	DateLayoutISOSpaced = "2006-01-02 15:04:05"
)

// ISOFormats is tried in order by ParseISODate. Layouts without an offset
// are interpreted in UTC. Fractional seconds are accepted by time.Parse
// after the seconds field without a dedicated layout.
var ISOFormats = []string{
	DateLayoutISO,
	DateLayoutISOTime,
	DateLayoutISOSpaced,
	time.RFC3339Nano,
}

// ParseISODate parses an ISO-8601 date or date-time and returns the parsed
// time together with the layout that matched.
func ParseISODate(dateStr string) (time.Time, string, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}, "", fmt.Errorf("empty date")
	}

	for _, layout := range ISOFormats {
		if t, err := time.Parse(layout, dateStr); err == nil {
			return t, layout, nil
		}
	}

	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// StartOfDay returns midnight UTC of the calendar date t falls on in its own location.
// Times on the same calendar date map to the same value, so the result is safe as a map key.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// DaysBetween returns the whole number of days from start to end.
func DaysBetween(start, end time.Time) int {
	return int(StartOfDay(end).Sub(StartOfDay(start)).Hours() / 24)
}
