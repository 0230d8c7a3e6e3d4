package schedule

import (
	"time"

	"github.com/wuttipat/court-booking-service/internal/models"
)

// IsPast reports whether a window starting at startTime on date has already
// begun relative to now. This is the single definition of "in the past":
// any earlier date, or the same date with the start at or before the clock.
func IsPast(date, startTime string, now time.Time) bool {
	today := now.Format(dateLayout)
	if date < today {
		return true
	}
	if date > today {
		return false
	}
	start, ok := minuteOfDay(startTime)
	if !ok {
		return true
	}
	return start <= now.Hour()*60+now.Minute()
}

// Reconcile annotates generated windows with their status from current
// persisted state. Resolution order per window: past, then blocked, then
// booked, then available. It is a pure merge — safe to call repeatedly and
// always computed from the bookings and blocks handed in, never a cache.
func Reconcile(windows []Window, date string, bookings []models.Booking, blocks []models.MaintenanceBlock, now time.Time) []Window {
	booked := make(map[string]string, len(bookings))
	for _, b := range bookings {
		if b.Status == models.StatusBooked {
			booked[b.StartTime] = b.EndTime
		}
	}

	out := make([]Window, len(windows))
	for i, w := range windows {
		w.Status = StatusAvailable
		switch {
		case IsPast(date, w.StartTime, now):
			w.Status = StatusPast
		case overlapsBlock(w, blocks):
			w.Status = StatusBlocked
		case booked[w.StartTime] == w.EndTime:
			w.Status = StatusBooked
		}
		out[i] = w
	}
	return out
}

// overlapsBlock reports whether any maintenance block intersects the window.
// Any overlap blocks: the booking path rejects the same intersections, so a
// window the schedule shows as available is always actually bookable.
func overlapsBlock(w Window, blocks []models.MaintenanceBlock) bool {
	ws, ok1 := minuteOfDay(w.StartTime)
	we, ok2 := minuteOfDay(w.EndTime)
	if !ok1 || !ok2 {
		return false
	}
	for _, b := range blocks {
		bs, okS := minuteOfDay(b.StartTime)
		be, okE := minuteOfDay(b.EndTime)
		if okS && okE && bs < we && be > ws {
			return true
		}
	}
	return false
}
