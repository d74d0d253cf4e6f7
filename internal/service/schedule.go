package service

import (
	"time"

	"balance-planner/internal/model"
)

// CategoryStats summarizes completion for one category. Gating never changes
// these numbers; it affects what is displayed, not what exists.
type CategoryStats struct {
	Completed int
	Total     int
	Pending   int
}

// Progress is the completed share in [0, 1]; an empty category reports 0.
func (s CategoryStats) Progress() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total)
}

// StatsByCategory counts all tasks of the given category.
func StatsByCategory(tasks []model.Task, category model.Category) CategoryStats {
	var stats CategoryStats
	for _, t := range tasks {
		if t.Category != category {
			continue
		}
		stats.Total++
		if t.Completed {
			stats.Completed++
		}
	}
	stats.Pending = stats.Total - stats.Completed
	return stats
}

// DayBucket holds the incomplete tasks due on one calendar day of the week.
type DayBucket struct {
	Date  time.Time
	Tasks []model.Task
}

// WeekStats aggregates over every task due inside the 7-day window.
type WeekStats struct {
	Total               int
	Completed           int
	HighPriorityPending int
}

// WeekSchedule is the Monday-through-Sunday view around a reference instant.
type WeekSchedule struct {
	Days  [7]DayBucket
	Stats WeekStats
}

// WeeklySchedule buckets tasks into the ISO-style week containing now. Each
// bucket lists the incomplete tasks due exactly on that date; the stats cover
// completed tasks too. Both respect category suppression, evaluated at the
// reference instant, and anything due outside the window is ignored even when
// overdue.
func WeeklySchedule(tasks []model.Task, settings model.Settings, now time.Time) WeekSchedule {
	var week WeekSchedule
	start := model.WeekStart(now)
	for i := range week.Days {
		week.Days[i].Date = start.AddDate(0, 0, i)
	}
	end := start.AddDate(0, 0, 7)

	for _, t := range tasks {
		if IsCategorySuppressed(settings, t.Category, now) {
			continue
		}
		due := model.DateOnly(t.DueDate)
		if due.Before(start) || !due.Before(end) {
			continue
		}

		week.Stats.Total++
		if t.Completed {
			week.Stats.Completed++
		} else {
			if t.Priority == model.PriorityHigh {
				week.Stats.HighPriorityPending++
			}
			for i := range week.Days {
				if model.SameDay(due, week.Days[i].Date) {
					week.Days[i].Tasks = append(week.Days[i].Tasks, t)
					break
				}
			}
		}
	}
	return week
}
