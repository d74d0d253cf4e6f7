package config

import (
	"os"
	"strconv"
	"strings"

	"balance-planner/internal/model"
)

// Config keeps runtime settings for the planner binary. InitialSettings only
// seeds the database on first run; afterwards the stored record wins.
type Config struct {
	DatabaseURL     string
	InitialSettings model.Settings
}

// Load reads configuration from environment variables with sane defaults.
func Load() Config {
	cfg := Config{
		DatabaseURL:     strings.TrimSpace(os.Getenv("DATABASE_URL")),
		InitialSettings: model.DefaultSettings(),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "balance_planner.db"
	}

	if end := strings.TrimSpace(os.Getenv("WORK_HOURS_END")); end != "" {
		cfg.InitialSettings.WorkHoursEnd = end
	}
	if block, ok := parseBool(os.Getenv("BLOCK_WORK_AFTER_HOURS")); ok {
		cfg.InitialSettings.BlockWorkTasksAfterHours = block
	}
	if notify, ok := parseBool(os.Getenv("NOTIFICATIONS")); ok {
		cfg.InitialSettings.Notifications = notify
	}

	return cfg
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
