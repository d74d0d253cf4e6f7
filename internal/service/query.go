package service

import (
	"sort"
	"time"

	"balance-planner/internal/model"
)

// FilteredAndSorted returns the display ordering of the collection: suppressed
// categories removed, an optional category filter applied (empty means all),
// then a stable three-key sort. Incomplete tasks come before completed ones,
// higher priorities before lower, earlier due dates before later; tasks equal
// on all three keys keep their insertion order. The input slice is never
// mutated.
func FilteredAndSorted(tasks []model.Task, settings model.Settings, now time.Time, category model.Category) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if IsCategorySuppressed(settings, t.Category, now) {
			continue
		}
		if category != "" && t.Category != category {
			continue
		}
		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		if ar, br := a.Priority.Rank(), b.Priority.Rank(); ar != br {
			return ar < br
		}
		return model.DateOnly(a.DueDate).Before(model.DateOnly(b.DueDate))
	})
	return out
}

// IsOverdue reports whether an incomplete task's due date lies strictly before
// today, comparing calendar dates rather than instants.
func IsOverdue(task model.Task, today time.Time) bool {
	if task.Completed {
		return false
	}
	return model.DateOnly(task.DueDate).Before(model.DateOnly(today))
}

// IsDueToday reports whether the task is due on today's calendar date.
func IsDueToday(task model.Task, today time.Time) bool {
	return model.SameDay(task.DueDate, today)
}
