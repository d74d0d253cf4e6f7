package service

import (
	"strconv"
	"strings"
	"time"

	"balance-planner/internal/model"
)

// IsCategorySuppressed reports whether tasks of the given category are hidden
// from derived views at the given instant. Only the work category is ever
// gated: once the wall clock reaches the configured end of work hours, work
// tasks disappear until the toggle is switched off or the day wraps. The
// boundary minute itself already suppresses.
//
// No timezone normalization happens here; now and the configured clock string
// are assumed to share the caller's local frame.
func IsCategorySuppressed(settings model.Settings, category model.Category, now time.Time) bool {
	if !settings.BlockWorkTasksAfterHours {
		return false
	}
	if category != model.CategoryWork {
		return false
	}
	endHour, endMinute, ok := parseClock(settings.WorkHoursEnd)
	if !ok {
		// An unparsable boundary leaves the gate open.
		return false
	}
	return now.Hour()*60+now.Minute() >= endHour*60+endMinute
}

// parseClock splits an "HH:MM" string into its two integer fields. Values out
// of clock range are returned as-is; the comparison above stays numeric.
func parseClock(s string) (hour, minute int, ok bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false
	}
	return hour, minute, true
}
