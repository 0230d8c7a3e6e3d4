package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wuttipat/court-booking-service/internal/models"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04", value)
	require.NoError(t, err)
	return parsed
}

func TestIsPast(t *testing.T) {
	now := mustTime(t, "2026-09-07 10:30")

	assert.True(t, IsPast("2026-09-06", "23:00", now), "earlier date")
	assert.False(t, IsPast("2026-09-08", "00:00", now), "later date")
	assert.True(t, IsPast("2026-09-07", "09:00", now), "started earlier today")
	assert.True(t, IsPast("2026-09-07", "10:30", now), "starting right now")
	assert.False(t, IsPast("2026-09-07", "11:00", now), "starts later today")
}

func TestReconcileStatusPrecedence(t *testing.T) {
	court := testCourt()
	windows := Generate(court, "2026-09-07", nil)
	now := mustTime(t, "2026-09-07 08:30")

	bookings := []models.Booking{
		{CourtID: 1, Date: "2026-09-07", StartTime: "07:00", EndTime: "08:00", Status: models.StatusBooked},
		{CourtID: 1, Date: "2026-09-07", StartTime: "10:00", EndTime: "11:00", Status: models.StatusBooked},
		{CourtID: 1, Date: "2026-09-07", StartTime: "12:00", EndTime: "13:00", Status: models.StatusCancelled},
	}
	blocks := []models.MaintenanceBlock{
		{CourtID: 1, Date: "2026-09-07", StartTime: "14:00", EndTime: "16:00"},
	}

	out := Reconcile(windows, "2026-09-07", bookings, blocks, now)

	byStart := map[string]WindowStatus{}
	for _, w := range out {
		byStart[w.StartTime] = w.Status
	}

	// Windows at or before the clock are past, including the booked 07:00.
	assert.Equal(t, StatusPast, byStart["06:00"])
	assert.Equal(t, StatusPast, byStart["07:00"])
	assert.Equal(t, StatusPast, byStart["08:00"])

	assert.Equal(t, StatusAvailable, byStart["09:00"])
	assert.Equal(t, StatusBooked, byStart["10:00"])

	// Cancelled bookings do not occupy the window.
	assert.Equal(t, StatusAvailable, byStart["12:00"])

	// The block spans two whole windows.
	assert.Equal(t, StatusBlocked, byStart["14:00"])
	assert.Equal(t, StatusBlocked, byStart["15:00"])
	assert.Equal(t, StatusAvailable, byStart["16:00"])
}

func TestReconcileBlockBeatsBooking(t *testing.T) {
	windows := Generate(testCourt(), "2026-09-07", nil)
	now := mustTime(t, "2026-09-07 05:00")

	bookings := []models.Booking{
		{StartTime: "10:00", EndTime: "11:00", Status: models.StatusBooked},
	}
	blocks := []models.MaintenanceBlock{
		{StartTime: "10:00", EndTime: "11:00"},
	}

	out := Reconcile(windows, "2026-09-07", bookings, blocks, now)

	for _, w := range out {
		if w.StartTime == "10:00" {
			assert.Equal(t, StatusBlocked, w.Status)
		}
	}
}

func TestReconcilePartialBlockBlocksBothWindows(t *testing.T) {
	windows := Generate(testCourt(), "2026-09-07", nil)
	now := mustTime(t, "2026-09-07 05:00")

	// A block that straddles two windows removes both: any window the
	// schedule reports available must be bookable, and the booking path
	// rejects any block overlap.
	blocks := []models.MaintenanceBlock{
		{StartTime: "10:30", EndTime: "11:30"},
	}

	out := Reconcile(windows, "2026-09-07", nil, blocks, now)

	byStart := map[string]WindowStatus{}
	for _, w := range out {
		byStart[w.StartTime] = w.Status
	}
	assert.Equal(t, StatusAvailable, byStart["09:00"])
	assert.Equal(t, StatusBlocked, byStart["10:00"])
	assert.Equal(t, StatusBlocked, byStart["11:00"])
	assert.Equal(t, StatusAvailable, byStart["12:00"])
}

func TestReconcileFutureDateNothingPast(t *testing.T) {
	windows := Generate(testCourt(), "2026-09-08", nil)
	now := mustTime(t, "2026-09-07 23:59")

	out := Reconcile(windows, "2026-09-08", nil, nil, now)

	for _, w := range out {
		assert.Equal(t, StatusAvailable, w.Status)
	}
}
