package schedule

import (
	"time"

	"github.com/wuttipat/court-booking-service/internal/models"
)

// DefaultGranularity is the window length used when no override is given.
const DefaultGranularity = 60 * time.Minute

// SlotConfig overrides how windows are cut and priced for batch generation.
// The zero value means: court operating hours, 60-minute windows, the
// court's flat hourly rate, every weekday.
type SlotConfig struct {
	Granularity time.Duration
	Weekdays    []time.Weekday // empty = all days
	BasePrice   float64        // 0 = court's hourly rate
	PeakPrice   float64        // applied to windows starting at a PeakHours entry
	PeakHours   []string       // window start times, "HH:MM"
}

func (c *SlotConfig) granularityMinutes() int {
	if c == nil || c.Granularity <= 0 {
		return int(DefaultGranularity / time.Minute)
	}
	return int(c.Granularity / time.Minute)
}

func (c *SlotConfig) allowsWeekday(d time.Weekday) bool {
	if c == nil || len(c.Weekdays) == 0 {
		return true
	}
	for _, wd := range c.Weekdays {
		if wd == d {
			return true
		}
	}
	return false
}

// Generate cuts the court's operating span [open, close) into windows of one
// granularity unit each, in ascending start order. A close time at or before
// the open time yields no windows, as does a malformed operating-hours pair:
// generation fails closed rather than erroring. A trailing span shorter than
// the granularity is dropped — a window always equals exactly one unit.
// Prices pro-rate the hourly rate linearly for non-60-minute granularities.
func Generate(court *models.Court, date string, cfg *SlotConfig) []Window {
	open, okOpen := minuteOfDay(court.OpenTime)
	closeAt, okClose := minuteOfDay(court.CloseTime)
	if !okOpen || !okClose || closeAt <= open {
		return []Window{}
	}

	if day, err := ParseDate(date); err != nil || !cfg.allowsWeekday(day.Weekday()) {
		return []Window{}
	}

	rate := court.PricePerHour
	if cfg != nil && cfg.BasePrice > 0 {
		rate = cfg.BasePrice
	}

	gran := cfg.granularityMinutes()
	windows := make([]Window, 0, (closeAt-open)/gran)
	for start := open; start+gran <= closeAt; start += gran {
		startStr := formatMinute(start)
		price := rate * float64(gran) / 60
		if cfg != nil && cfg.PeakPrice > 0 && containsClock(cfg.PeakHours, startStr) {
			price = cfg.PeakPrice * float64(gran) / 60
		}
		windows = append(windows, Window{
			StartTime: startStr,
			EndTime:   formatMinute(start + gran),
			Price:     price,
			Status:    StatusAvailable,
		})
	}
	return windows
}

func containsClock(hours []string, start string) bool {
	for _, h := range hours {
		if h == start {
			return true
		}
	}
	return false
}
