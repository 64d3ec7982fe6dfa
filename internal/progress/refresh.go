package progress

import (
	"time"

	"github.com/blackwell-systems/gameverse/internal/model"
)

// StartOfDay returns local midnight at the start of t's day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// NextMidnight returns midnight at the start of the day after t.
func NextMidnight(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1)
}

// DayKey is the dailyLogs key for t's calendar day.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// NeedsRefresh reports whether list must be regenerated at now. All
// challenges share one expiry, so only the first is checked. A generation
// that expires at today's midnight or earlier is stale.
func NeedsRefresh(list []model.Challenge, now time.Time) bool {
	if len(list) == 0 {
		return true
	}
	return !list[0].ExpiresAt.After(StartOfDay(now))
}

// Refresh returns list unchanged when it is still current, otherwise a new
// generation built from templates that expires at the next midnight.
func Refresh(list, templates []model.Challenge, now time.Time) []model.Challenge {
	if !NeedsRefresh(list, now) {
		return list
	}
	return Generate(templates, now)
}

// Generate builds a fresh, uncompleted generation from templates.
func Generate(templates []model.Challenge, now time.Time) []model.Challenge {
	expires := NextMidnight(now)
	out := make([]model.Challenge, len(templates))
	for i, c := range templates {
		c.Completed = false
		c.CompletedAt = nil
		c.ExpiresAt = expires
		out[i] = c
	}
	return out
}
