package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"balance-planner/internal/model"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("task-%d", n)
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

func newTestStore() *Store {
	return New(fixedClock(date(2025, time.November, 29)), sequentialIDs())
}

func validInput() TaskInput {
	return TaskInput{
		Title:    "Prepare slides",
		Category: model.CategoryWork,
		Priority: model.PriorityHigh,
		DueDate:  date(2025, time.November, 30),
	}
}

func TestCreateAssignsIdentity(t *testing.T) {
	s := newTestStore()

	input := validInput()
	input.Title = "  Prepare slides  "
	task, err := s.Create(input)
	require.NoError(t, err)

	assert.Equal(t, "task-1", task.ID)
	assert.Equal(t, "Prepare slides", task.Title)
	assert.Equal(t, date(2025, time.November, 29), task.CreatedAt)
	assert.False(t, task.Completed)
	assert.Len(t, s.Tasks(), 1)
}

func TestCreateValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*TaskInput)
		want   error
	}{
		{"empty title", func(in *TaskInput) { in.Title = "" }, ErrValidation},
		{"whitespace title", func(in *TaskInput) { in.Title = "   " }, ErrValidation},
		{"unknown category", func(in *TaskInput) { in.Category = "errands" }, ErrValidation},
		{"unknown priority", func(in *TaskInput) { in.Priority = "urgent" }, ErrValidation},
		{"zero due date", func(in *TaskInput) { in.DueDate = time.Time{} }, ErrValidation},
		{"empty assignee", func(in *TaskInput) { in.AssignedUsers = []string{"Anna", " "} }, ErrValidation},
		{"duplicate assignee", func(in *TaskInput) { in.AssignedUsers = []string{"Anna", "Anna"} }, ErrDuplicateAssignee},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestStore()
			input := validInput()
			tc.mutate(&input)

			_, err := s.Create(input)
			require.ErrorIs(t, err, tc.want)
			assert.Empty(t, s.Tasks(), "failed create must not grow the collection")
		})
	}
}

func TestCreateIDsAreUnique(t *testing.T) {
	s := New(nil, nil) // default UUID source

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		task, err := s.Create(validInput())
		require.NoError(t, err)
		_, dup := seen[task.ID]
		require.False(t, dup, "id %q issued twice", task.ID)
		seen[task.ID] = struct{}{}
	}
}

func TestUpdateMergesOnlySuppliedFields(t *testing.T) {
	s := newTestStore()
	created, err := s.Create(validInput())
	require.NoError(t, err)

	newTitle := "Prepare slides v2"
	newPriority := model.PriorityLow
	updated, err := s.Update(created.ID, TaskPatch{Title: &newTitle, Priority: &newPriority})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Prepare slides v2", updated.Title)
	assert.Equal(t, model.PriorityLow, updated.Priority)
	assert.Equal(t, created.Category, updated.Category)
	assert.Equal(t, created.DueDate, updated.DueDate)
}

func TestUpdateIsAllOrNothing(t *testing.T) {
	s := newTestStore()
	created, err := s.Create(validInput())
	require.NoError(t, err)

	newTitle := "Changed"
	badCategory := model.Category("errands")
	_, err = s.Update(created.ID, TaskPatch{Title: &newTitle, Category: &badCategory})
	require.ErrorIs(t, err, ErrValidation)

	current, err := s.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, current, "failed update must leave the task untouched")
}

func TestUpdateUnknownID(t *testing.T) {
	s := newTestStore()
	_, err := s.Update("missing", TaskPatch{})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	s := newTestStore()
	created, err := s.Create(validInput())
	require.NoError(t, err)

	require.NoError(t, s.Delete(created.ID))
	assert.Empty(t, s.Tasks())

	err = s.Delete(created.ID)
	require.ErrorIs(t, err, ErrNotFound, "second delete of the same id must fail")

	_, err = s.Get(created.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteUnknownIDKeepsCollection(t *testing.T) {
	s := newTestStore()
	_, err := s.Create(validInput())
	require.NoError(t, err)

	require.ErrorIs(t, s.Delete("missing"), ErrNotFound)
	assert.Len(t, s.Tasks(), 1)
}

func TestToggleCompleteFlipsOnlyCompleted(t *testing.T) {
	s := newTestStore()
	created, err := s.Create(validInput())
	require.NoError(t, err)

	toggled, err := s.ToggleComplete(created.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	toggled.Completed = created.Completed
	assert.Equal(t, created, toggled, "toggle must not touch other fields")

	back, err := s.ToggleComplete(created.ID)
	require.NoError(t, err)
	assert.False(t, back.Completed)
}

func TestAssignees(t *testing.T) {
	s := newTestStore()
	created, err := s.Create(validInput())
	require.NoError(t, err)

	task, err := s.AddAssignee(created.ID, "Anna K.")
	require.NoError(t, err)
	assert.Equal(t, []string{"Anna K."}, task.AssignedUsers)

	_, err = s.AddAssignee(created.ID, "Anna K.")
	require.ErrorIs(t, err, ErrDuplicateAssignee)

	task, err = s.AddAssignee(created.ID, "Piotr M.")
	require.NoError(t, err)
	assert.Equal(t, []string{"Anna K.", "Piotr M."}, task.AssignedUsers)

	task, err = s.RemoveAssignee(created.ID, "Anna K.")
	require.NoError(t, err)
	assert.Equal(t, []string{"Piotr M."}, task.AssignedUsers)

	task, err = s.RemoveAssignee(created.ID, "Piotr M.")
	require.NoError(t, err)
	assert.Nil(t, task.AssignedUsers, "removing the last name leaves no container")
}

func TestUpdateSettingsPartialMerge(t *testing.T) {
	s := newTestStore()
	initial := s.Settings()

	end := "18:30"
	settings := s.UpdateSettings(SettingsPatch{WorkHoursEnd: &end})
	assert.Equal(t, "18:30", settings.WorkHoursEnd)
	assert.Equal(t, initial.BlockWorkTasksAfterHours, settings.BlockWorkTasksAfterHours)
	assert.Equal(t, initial.Notifications, settings.Notifications)

	// Malformed time strings are stored verbatim.
	bad := "soonish"
	settings = s.UpdateSettings(SettingsPatch{WorkHoursEnd: &bad})
	assert.Equal(t, "soonish", settings.WorkHoursEnd)
}

func TestLoadRestoresSnapshot(t *testing.T) {
	s := newTestStore()
	_, err := s.Create(validInput())
	require.NoError(t, err)

	snapshot := s.Tasks()
	settings := s.Settings()

	restored := New(nil, nil)
	restored.Load(snapshot, settings)
	assert.Equal(t, snapshot, restored.Tasks())
	assert.Equal(t, settings, restored.Settings())
}
