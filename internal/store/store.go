package store

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"balance-planner/internal/model"
)

// TaskInput represents data required to create a task.
type TaskInput struct {
	Title         string
	Description   string
	Category      model.Category
	Priority      model.Priority
	DueDate       time.Time
	Completed     bool
	AssignedUsers []string
}

// TaskPatch carries a partial update; nil fields are left untouched.
// ID and creation date are not patchable.
type TaskPatch struct {
	Title         *string
	Description   *string
	Category      *model.Category
	Priority      *model.Priority
	DueDate       *time.Time
	Completed     *bool
	AssignedUsers *[]string
}

// SettingsPatch carries a partial settings update; nil fields keep their
// current value. The time string is accepted as-is.
type SettingsPatch struct {
	BlockWorkTasksAfterHours *bool
	WorkHoursEnd             *string
	Notifications            *bool
}

// Store is the sole owner of the task collection and settings. It is
// single-threaded by contract; every mutation completes before returning and
// is immediately visible to subsequent reads.
type Store struct {
	tasks    []model.Task
	settings model.Settings
	now      func() time.Time
	newID    func() string
}

// New builds an empty store. now and newID are injectable for deterministic
// tests; nil picks the wall clock and UUID generation.
func New(now func() time.Time, newID func() string) *Store {
	if now == nil {
		now = time.Now
	}
	if newID == nil {
		newID = uuid.NewString
	}
	return &Store{
		settings: model.DefaultSettings(),
		now:      now,
		newID:    newID,
	}
}

// Load replaces the store contents with a previously persisted snapshot.
func (s *Store) Load(tasks []model.Task, settings model.Settings) {
	s.tasks = append([]model.Task(nil), tasks...)
	s.settings = settings
}

// Tasks returns a copy of the collection in insertion order.
func (s *Store) Tasks() []model.Task {
	return append([]model.Task(nil), s.tasks...)
}

// Settings returns the current settings record.
func (s *Store) Settings() model.Settings {
	return s.settings
}

// Get returns the task with the given id.
func (s *Store) Get(id string) (model.Task, error) {
	i := s.index(id)
	if i < 0 {
		return model.Task{}, notFound(id)
	}
	return s.tasks[i], nil
}

// Create validates the input, assigns a fresh id and today's creation date,
// and appends the task to the collection.
func (s *Store) Create(input TaskInput) (model.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.Task{}, validationf("title must not be empty")
	}
	if !input.Category.Valid() {
		return model.Task{}, validationf("unknown category %q", input.Category)
	}
	if !input.Priority.Valid() {
		return model.Task{}, validationf("unknown priority %q", input.Priority)
	}
	if input.DueDate.IsZero() {
		return model.Task{}, validationf("due date is required")
	}
	assignees, err := normalizeAssignees(input.AssignedUsers)
	if err != nil {
		return model.Task{}, err
	}

	task := model.Task{
		ID:            s.newID(),
		Title:         title,
		Description:   input.Description,
		Category:      input.Category,
		Priority:      input.Priority,
		DueDate:       model.DateOnly(input.DueDate),
		Completed:     input.Completed,
		AssignedUsers: assignees,
		CreatedAt:     model.DateOnly(s.now()),
	}
	s.tasks = append(s.tasks, task)
	return task, nil
}

// Update merges the supplied fields into an existing task. The patch is
// validated in full before anything is written, so a failed update leaves the
// task untouched.
func (s *Store) Update(id string, patch TaskPatch) (model.Task, error) {
	i := s.index(id)
	if i < 0 {
		return model.Task{}, notFound(id)
	}

	updated := s.tasks[i]
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return model.Task{}, validationf("title must not be empty")
		}
		updated.Title = title
	}
	if patch.Description != nil {
		updated.Description = *patch.Description
	}
	if patch.Category != nil {
		if !patch.Category.Valid() {
			return model.Task{}, validationf("unknown category %q", *patch.Category)
		}
		updated.Category = *patch.Category
	}
	if patch.Priority != nil {
		if !patch.Priority.Valid() {
			return model.Task{}, validationf("unknown priority %q", *patch.Priority)
		}
		updated.Priority = *patch.Priority
	}
	if patch.DueDate != nil {
		if patch.DueDate.IsZero() {
			return model.Task{}, validationf("due date is required")
		}
		updated.DueDate = model.DateOnly(*patch.DueDate)
	}
	if patch.Completed != nil {
		updated.Completed = *patch.Completed
	}
	if patch.AssignedUsers != nil {
		assignees, err := normalizeAssignees(*patch.AssignedUsers)
		if err != nil {
			return model.Task{}, err
		}
		updated.AssignedUsers = assignees
	}

	s.tasks[i] = updated
	return updated, nil
}

// Delete removes the task. Deleting an id twice fails the second time.
func (s *Store) Delete(id string) error {
	i := s.index(id)
	if i < 0 {
		return notFound(id)
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return nil
}

// ToggleComplete flips the completed flag and touches nothing else.
func (s *Store) ToggleComplete(id string) (model.Task, error) {
	i := s.index(id)
	if i < 0 {
		return model.Task{}, notFound(id)
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	return s.tasks[i], nil
}

// AddAssignee appends a display name to the task's assignee list.
func (s *Store) AddAssignee(id, name string) (model.Task, error) {
	i := s.index(id)
	if i < 0 {
		return model.Task{}, notFound(id)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Task{}, validationf("assignee name must not be empty")
	}
	for _, existing := range s.tasks[i].AssignedUsers {
		if existing == name {
			return model.Task{}, duplicateAssignee(name)
		}
	}
	s.tasks[i].AssignedUsers = append(s.tasks[i].AssignedUsers, name)
	return s.tasks[i], nil
}

// RemoveAssignee drops a display name from the task's assignee list. Removing
// the last name leaves the task with no assignee container at all.
func (s *Store) RemoveAssignee(id, name string) (model.Task, error) {
	i := s.index(id)
	if i < 0 {
		return model.Task{}, notFound(id)
	}
	kept := s.tasks[i].AssignedUsers[:0:0]
	for _, existing := range s.tasks[i].AssignedUsers {
		if existing != name {
			kept = append(kept, existing)
		}
	}
	if len(kept) == 0 {
		kept = nil
	}
	s.tasks[i].AssignedUsers = kept
	return s.tasks[i], nil
}

// UpdateSettings merges the supplied fields into the settings record. There is
// no validation beyond shape; a malformed time string is stored as given.
func (s *Store) UpdateSettings(patch SettingsPatch) model.Settings {
	if patch.BlockWorkTasksAfterHours != nil {
		s.settings.BlockWorkTasksAfterHours = *patch.BlockWorkTasksAfterHours
	}
	if patch.WorkHoursEnd != nil {
		s.settings.WorkHoursEnd = *patch.WorkHoursEnd
	}
	if patch.Notifications != nil {
		s.settings.Notifications = *patch.Notifications
	}
	return s.settings
}

func (s *Store) index(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// normalizeAssignees trims names and rejects empties and duplicates. An empty
// result collapses to nil so "no assignees" is absence, not an empty list.
func normalizeAssignees(names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			return nil, validationf("assignee name must not be empty")
		}
		if _, dup := seen[name]; dup {
			return nil, duplicateAssignee(name)
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out, nil
}
