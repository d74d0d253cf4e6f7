package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"balance-planner/internal/model"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.Local)
}

func task(id, title string, category model.Category, priority model.Priority, due time.Time, completed bool) model.Task {
	return model.Task{
		ID:        id,
		Title:     title,
		Category:  category,
		Priority:  priority,
		DueDate:   due,
		Completed: completed,
		CreatedAt: day(2025, time.November, 25),
	}
}

func ids(tasks []model.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestFilteredAndSortedHidesWorkAfterHours(t *testing.T) {
	tasks := []model.Task{
		task("home-1", "Groceries", model.CategoryHome, model.PriorityMedium, day(2025, time.November, 29), false),
		task("work-1", "Q4 deck", model.CategoryWork, model.PriorityHigh, day(2025, time.November, 29), false),
	}
	settings := gatingSettings(true, "16:00")

	afterHours := time.Date(2025, time.November, 29, 17, 0, 0, 0, time.Local)
	got := FilteredAndSorted(tasks, settings, afterHours, "")
	assert.Equal(t, []string{"home-1"}, ids(got))

	beforeHours := time.Date(2025, time.November, 29, 15, 59, 0, 0, time.Local)
	got = FilteredAndSorted(tasks, settings, beforeHours, "")
	assert.Equal(t, []string{"work-1", "home-1"}, ids(got), "high-priority work task ranks first before the boundary")
}

func TestFilteredAndSortedThreeKeyOrder(t *testing.T) {
	tasks := []model.Task{
		task("done-high", "a", model.CategoryHome, model.PriorityHigh, day(2025, time.November, 28), true),
		task("low-early", "b", model.CategoryHome, model.PriorityLow, day(2025, time.November, 27), false),
		task("high-late", "c", model.CategoryHome, model.PriorityHigh, day(2025, time.December, 2), false),
		task("high-early", "d", model.CategoryHome, model.PriorityHigh, day(2025, time.November, 28), false),
		task("medium", "e", model.CategoryHome, model.PriorityMedium, day(2025, time.November, 26), false),
	}

	got := FilteredAndSorted(tasks, model.Settings{}, day(2025, time.November, 29), "")
	assert.Equal(t, []string{"high-early", "high-late", "medium", "low-early", "done-high"}, ids(got))
}

func TestFilteredAndSortedIsStable(t *testing.T) {
	due := day(2025, time.November, 29)
	tasks := []model.Task{
		task("first", "a", model.CategoryHome, model.PriorityMedium, due, false),
		task("second", "b", model.CategoryPrivate, model.PriorityMedium, due, false),
		task("third", "c", model.CategoryHome, model.PriorityMedium, due, false),
	}

	once := FilteredAndSorted(tasks, model.Settings{}, due, "")
	assert.Equal(t, []string{"first", "second", "third"}, ids(once), "equal keys keep insertion order")

	twice := FilteredAndSorted(once, model.Settings{}, due, "")
	assert.Equal(t, ids(once), ids(twice), "sorting an already sorted sequence changes nothing")
}

func TestFilteredAndSortedCategoryFilter(t *testing.T) {
	tasks := []model.Task{
		task("p", "a", model.CategoryPrivate, model.PriorityMedium, day(2025, time.November, 29), false),
		task("w", "b", model.CategoryWork, model.PriorityMedium, day(2025, time.November, 29), false),
		task("h", "c", model.CategoryHome, model.PriorityMedium, day(2025, time.November, 29), false),
	}

	got := FilteredAndSorted(tasks, model.Settings{}, day(2025, time.November, 29), model.CategoryHome)
	assert.Equal(t, []string{"h"}, ids(got))

	got = FilteredAndSorted(tasks, model.Settings{}, day(2025, time.November, 29), "")
	assert.Len(t, got, 3, "empty filter keeps every category")
}

func TestFilteredAndSortedDoesNotMutateInput(t *testing.T) {
	tasks := []model.Task{
		task("z", "a", model.CategoryHome, model.PriorityLow, day(2025, time.December, 1), false),
		task("a", "b", model.CategoryHome, model.PriorityHigh, day(2025, time.November, 26), false),
	}
	before := ids(tasks)

	_ = FilteredAndSorted(tasks, model.Settings{}, day(2025, time.November, 29), "")
	require.Equal(t, before, ids(tasks))
}

func TestIsOverdue(t *testing.T) {
	today := day(2025, time.November, 29)

	overdue := task("x", "a", model.CategoryHome, model.PriorityLow, day(2025, time.November, 28), false)
	assert.True(t, IsOverdue(overdue, today))

	completedPast := task("x", "a", model.CategoryHome, model.PriorityLow, day(2025, time.November, 28), true)
	assert.False(t, IsOverdue(completedPast, today), "completed tasks are never overdue")

	dueToday := task("x", "a", model.CategoryHome, model.PriorityLow, today, false)
	assert.False(t, IsOverdue(dueToday, today))

	// Calendar comparison, not time-of-day: late in the due day is not overdue.
	lateToday := time.Date(2025, time.November, 29, 23, 30, 0, 0, time.Local)
	assert.False(t, IsOverdue(dueToday, lateToday))
}

func TestIsDueToday(t *testing.T) {
	today := day(2025, time.November, 29)

	assert.True(t, IsDueToday(task("x", "a", model.CategoryHome, model.PriorityLow, today, false), today))
	assert.False(t, IsDueToday(task("x", "a", model.CategoryHome, model.PriorityLow, day(2025, time.November, 30), false), today))
}
