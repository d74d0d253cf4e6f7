package model

import "time"

// Category is the closed set of life domains a task belongs to.
type Category string

const (
	CategoryPrivate Category = "private"
	CategoryWork    Category = "work"
	CategoryHome    Category = "home"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryPrivate, CategoryWork, CategoryHome:
		return true
	}
	return false
}

// Priority is the closed set of task priorities, ordered high > medium > low.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Rank maps priorities onto sort order: high=0, medium=1, low=2.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// Task represents a single item in the planner.
type Task struct {
	ID            string `gorm:"primaryKey"`
	Title         string
	Description   string
	Category      Category
	Priority      Priority
	DueDate       time.Time
	Completed     bool     `gorm:"default:false"`
	AssignedUsers []string `gorm:"serializer:json"`
	CreatedAt     time.Time
}

// DateOnly truncates t to calendar-day precision, keeping its location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// WeekStart returns the Monday of the week containing ref, at day precision.
// A Sunday ref belongs to the week that started six days earlier.
func WeekStart(ref time.Time) time.Time {
	offset := (int(ref.Weekday()) + 6) % 7
	return DateOnly(ref).AddDate(0, 0, -offset)
}
