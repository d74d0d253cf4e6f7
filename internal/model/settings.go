package model

// Settings holds the user-level planner configuration. WorkHoursEnd is kept
// as the raw "HH:MM" string; callers that need the clock value parse it.
type Settings struct {
	BlockWorkTasksAfterHours bool
	WorkHoursEnd             string
	Notifications            bool
}

// DefaultSettings mirrors the planner's first-run configuration.
func DefaultSettings() Settings {
	return Settings{
		BlockWorkTasksAfterHours: true,
		WorkHoursEnd:             "17:00",
		Notifications:            true,
	}
}
