package service

import (
	"fmt"
	"strings"
	"time"

	"balance-planner/internal/model"
)

// DailyOverview builds the plain-text dashboard for a single day: headline
// counts, per-category progress, and the pending list in display order.
func DailyOverview(tasks []model.Task, settings model.Settings, now time.Time) string {
	visible := FilteredAndSorted(tasks, settings, now, "")

	dueToday := 0
	highPriority := 0
	for _, t := range visible {
		if t.Completed {
			continue
		}
		if IsDueToday(t, now) {
			dueToday++
		}
		if t.Priority == model.PriorityHigh {
			highPriority++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Overview for %s\n", now.Format("Monday, 02 Jan 2006"))
	if IsCategorySuppressed(settings, model.CategoryWork, now) {
		b.WriteString("After-hours mode: work tasks are hidden.\n")
	}
	fmt.Fprintf(&b, "Due today: %d · High priority open: %d\n\n", dueToday, highPriority)

	for _, category := range []model.Category{model.CategoryPrivate, model.CategoryWork, model.CategoryHome} {
		stats := StatsByCategory(tasks, category)
		line := fmt.Sprintf("%-8s %d/%d done", category, stats.Completed, stats.Total)
		if stats.Pending > 0 {
			line += fmt.Sprintf(", %d pending", stats.Pending)
		}
		if IsCategorySuppressed(settings, category, now) {
			line += " (hidden)"
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	b.WriteString("\nTasks\n")
	if len(visible) == 0 {
		b.WriteString("  nothing to show\n")
	}
	for _, t := range visible {
		b.WriteString(formatTaskLine(t, now))
	}
	return strings.TrimRight(b.String(), "\n")
}

// WeeklyOverview renders the Monday-through-Sunday schedule around now.
func WeeklyOverview(tasks []model.Task, settings model.Settings, now time.Time) string {
	week := WeeklySchedule(tasks, settings, now)

	var b strings.Builder
	fmt.Fprintf(&b, "Week of %s\n", week.Days[0].Date.Format("02 Jan 2006"))
	fmt.Fprintf(&b, "Total: %d · Completed: %d · High priority open: %d\n\n",
		week.Stats.Total, week.Stats.Completed, week.Stats.HighPriorityPending)

	for _, day := range week.Days {
		label := strings.ToUpper(day.Date.Format("Mon"))
		fmt.Fprintf(&b, "%s %s — %d open\n", label, day.Date.Format("02 Jan"), len(day.Tasks))
		if model.SameDay(day.Date, now) && len(day.Tasks) == 0 {
			b.WriteString("  free today\n")
		}
		for _, t := range day.Tasks {
			fmt.Fprintf(&b, "  [%s] %s (%s)\n", t.Priority, t.Title, t.Category)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatTaskLine(t model.Task, now time.Time) string {
	var sb strings.Builder

	mark := "[ ]"
	if t.Completed {
		mark = "[x]"
	}
	fmt.Fprintf(&sb, "  %s %s  %s/%s", mark, t.Title, t.Category, t.Priority)

	switch {
	case IsOverdue(t, now):
		fmt.Fprintf(&sb, "  due %s — overdue", t.DueDate.Format("2006-01-02"))
	case IsDueToday(t, now):
		sb.WriteString("  due today")
	default:
		fmt.Fprintf(&sb, "  due %s", t.DueDate.Format("2006-01-02"))
	}

	if n := len(t.AssignedUsers); n > 0 {
		fmt.Fprintf(&sb, "  (%d assigned)", n)
	}
	sb.WriteByte('\n')
	return sb.String()
}
