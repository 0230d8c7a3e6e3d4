// Package schedule derives bookable windows from a court's operating hours
// and merges them with persisted state. Everything here is pure: callers
// supply bookings, maintenance blocks and the clock, and get annotated
// windows back. Times are wall-clock "HH:MM" strings and dates "YYYY-MM-DD",
// matching how they are stored.
package schedule

import (
	"fmt"
	"time"
)

type WindowStatus string

const (
	StatusAvailable WindowStatus = "available"
	StatusBooked    WindowStatus = "booked"
	StatusBlocked   WindowStatus = "blocked"
	StatusPast      WindowStatus = "past"
)

// Window is one fixed-duration bookable interval on a court for a date.
type Window struct {
	StartTime string       `json:"start_time"`
	EndTime   string       `json:"end_time"`
	Price     float64      `json:"price"`
	Status    WindowStatus `json:"status"`
}

const (
	clockLayout = "15:04"
	dateLayout  = "2006-01-02"
)

// minuteOfDay parses "HH:MM" into minutes since midnight.
func minuteOfDay(s string) (int, bool) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

func formatMinute(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// ParseDate validates a "YYYY-MM-DD" date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// ValidClock reports whether s is a well-formed "HH:MM" wall-clock time.
func ValidClock(s string) bool {
	_, ok := minuteOfDay(s)
	return ok
}
