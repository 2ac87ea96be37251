package task

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"ireminder/pkg/bus"
	"ireminder/pkg/dateutil"
	"ireminder/pkg/storage"
)

// record is the durable layout of the tasks record.
type record struct {
	Tasks     []Task     `json:"tasks"`
	Reminders []Reminder `json:"reminders"`
}

// Store holds the canonical task and reminder state. Every mutation is
// persisted through the records adapter before it commits, so a failed write
// leaves both memory and disk untouched. If changes is non-nil, a committed
// mutation publishes a change signal.
type Store struct {
	mu        sync.Mutex
	records   storage.Records
	changes   *bus.Bus
	now       func() time.Time
	tasks     []Task
	reminders []Reminder
}

// NewStore creates a Store. If changes is nil, change signals are disabled.
func NewStore(records storage.Records, changes *bus.Bus) *Store {
	return &Store{
		records: records,
		changes: changes,
		now:     time.Now,
	}
}

// Load hydrates the store from the durable record. A missing record is a
// fresh install, not an error.
func (s *Store) Load(ctx context.Context) error {
	data, err := s.records.Load(ctx, storage.KeyTasks)
	if errors.Is(err, storage.ErrNoRecord) {
		return nil
	}
	if err != nil {
		return err
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("decode tasks record: %w", err)
	}

	s.mu.Lock()
	s.tasks = rec.Tasks
	s.reminders = rec.Reminders
	s.mu.Unlock()
	return nil
}

// persistLocked writes the candidate state through and commits it on success.
// Callers must hold s.mu.
func (s *Store) persistLocked(ctx context.Context, tasks []Task, reminders []Reminder) error {
	data, err := json.Marshal(record{Tasks: tasks, Reminders: reminders})
	if err != nil {
		return fmt.Errorf("encode tasks record: %w", err)
	}
	if err := s.records.Save(ctx, storage.KeyTasks, data); err != nil {
		return err
	}
	s.tasks = tasks
	s.reminders = reminders
	return nil
}

func (s *Store) publish(kind string) {
	if s.changes != nil {
		s.changes.Publish(bus.Change{Source: "tasks", Kind: kind})
	}
}

// AddTask appends a new task with a fresh id and timestamps. A blank title is
// rejected before any state changes.
func (s *Store) AddTask(ctx context.Context, t Task) (Task, error) {
	if strings.TrimSpace(t.Title) == "" {
		return Task{}, ErrEmptyTitle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	t.ID = uuid.Must(uuid.NewV7()).String()
	t.Completed = false
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Priority == "" {
		t.Priority = Medium
	}

	tasks := append(append([]Task(nil), s.tasks...), t)
	if err := s.persistLocked(ctx, tasks, s.reminders); err != nil {
		return Task{}, err
	}
	s.publish("task.added")
	return t, nil
}

// UpdateTask merges a partial update into the task and refreshes updatedAt.
func (s *Store) UpdateTask(ctx context.Context, id string, patch TaskPatch) (Task, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return Task{}, ErrEmptyTitle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(id)
	if i < 0 {
		return Task{}, ErrNotFound
	}

	t := s.tasks[i]
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Completed != nil {
		t.Completed = *patch.Completed
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.DueDate != nil {
		due := *patch.DueDate
		t.DueDate = &due
	}
	if patch.DueTime != nil {
		t.DueTime = *patch.DueTime
	}
	if patch.Category != nil {
		t.Category = *patch.Category
	}
	if patch.EstimatedDuration != nil {
		t.EstimatedDuration = *patch.EstimatedDuration
	}
	t.UpdatedAt = s.now()

	tasks := append([]Task(nil), s.tasks...)
	tasks[i] = t
	if err := s.persistLocked(ctx, tasks, s.reminders); err != nil {
		return Task{}, err
	}
	s.publish("task.updated")
	return t, nil
}

// ToggleTask flips the task's completed flag and refreshes updatedAt. The
// returned task lets the caller announce a false→true completion.
func (s *Store) ToggleTask(ctx context.Context, id string) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(id)
	if i < 0 {
		return Task{}, ErrNotFound
	}

	t := s.tasks[i]
	t.Completed = !t.Completed
	t.UpdatedAt = s.now()

	tasks := append([]Task(nil), s.tasks...)
	tasks[i] = t
	if err := s.persistLocked(ctx, tasks, s.reminders); err != nil {
		return Task{}, err
	}
	s.publish("task.toggled")
	return t, nil
}

// DeleteTask removes the task and every reminder that references it.
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.taskIndex(id) < 0 {
		return ErrNotFound
	}

	tasks := make([]Task, 0, len(s.tasks)-1)
	for _, t := range s.tasks {
		if t.ID != id {
			tasks = append(tasks, t)
		}
	}
	reminders := make([]Reminder, 0, len(s.reminders))
	for _, r := range s.reminders {
		if r.TaskID != id {
			reminders = append(reminders, r)
		}
	}

	if err := s.persistLocked(ctx, tasks, reminders); err != nil {
		return err
	}
	s.publish("task.deleted")
	return nil
}

// AddReminder appends a new reminder with a fresh id and a zero snooze count.
func (s *Store) AddReminder(ctx context.Context, r Reminder) (Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.ID = uuid.Must(uuid.NewV7()).String()
	r.SnoozeCount = 0
	r.CreatedAt = s.now()

	reminders := append(append([]Reminder(nil), s.reminders...), r)
	if err := s.persistLocked(ctx, s.tasks, reminders); err != nil {
		return Reminder{}, err
	}
	s.publish("reminder.added")
	return r, nil
}

// UpdateReminder merges a partial update into the reminder.
func (s *Store) UpdateReminder(ctx context.Context, id string, patch ReminderPatch) (Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.reminderIndex(id)
	if i < 0 {
		return Reminder{}, ErrNotFound
	}

	r := s.reminders[i]
	if patch.Title != nil {
		r.Title = *patch.Title
	}
	if patch.Message != nil {
		r.Message = *patch.Message
	}
	if patch.ScheduledTime != nil {
		r.ScheduledTime = *patch.ScheduledTime
	}
	if patch.IsRecurring != nil {
		r.IsRecurring = *patch.IsRecurring
	}
	if patch.RecurringPattern != nil {
		r.RecurringPattern = *patch.RecurringPattern
	}
	if patch.IsCompleted != nil {
		r.IsCompleted = *patch.IsCompleted
	}

	reminders := append([]Reminder(nil), s.reminders...)
	reminders[i] = r
	if err := s.persistLocked(ctx, s.tasks, reminders); err != nil {
		return Reminder{}, err
	}
	s.publish("reminder.updated")
	return r, nil
}

// DeleteReminder removes a single reminder.
func (s *Store) DeleteReminder(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.reminderIndex(id)
	if i < 0 {
		return ErrNotFound
	}

	reminders := append(append([]Reminder(nil), s.reminders[:i]...), s.reminders[i+1:]...)
	if err := s.persistLocked(ctx, s.tasks, reminders); err != nil {
		return err
	}
	s.publish("reminder.deleted")
	return nil
}

// SnoozeReminder reschedules the reminder to now + minutes — always relative
// to now, never to the previous scheduled time — and increments its snooze
// count. Non-positive minutes are accepted.
func (s *Store) SnoozeReminder(ctx context.Context, id string, minutes int) (Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.reminderIndex(id)
	if i < 0 {
		return Reminder{}, ErrNotFound
	}

	r := s.reminders[i]
	r.ScheduledTime = s.now().Add(time.Duration(minutes) * time.Minute)
	r.SnoozeCount++

	reminders := append([]Reminder(nil), s.reminders...)
	reminders[i] = r
	if err := s.persistLocked(ctx, s.tasks, reminders); err != nil {
		return Reminder{}, err
	}
	s.publish("reminder.snoozed")
	return r, nil
}

// CompleteReminder marks a one-shot reminder completed. A recurring reminder
// instead rolls its scheduled time forward by its pattern and stays active.
func (s *Store) CompleteReminder(ctx context.Context, id string) (Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.reminderIndex(id)
	if i < 0 {
		return Reminder{}, ErrNotFound
	}

	r := s.reminders[i]
	if r.IsRecurring {
		switch r.RecurringPattern {
		case Daily:
			r.ScheduledTime = r.ScheduledTime.AddDate(0, 0, 1)
		case Weekly:
			r.ScheduledTime = r.ScheduledTime.AddDate(0, 0, 7)
		case Monthly:
			r.ScheduledTime = r.ScheduledTime.AddDate(0, 1, 0)
		default:
			r.IsCompleted = true
		}
	} else {
		r.IsCompleted = true
	}

	reminders := append([]Reminder(nil), s.reminders...)
	reminders[i] = r
	if err := s.persistLocked(ctx, s.tasks, reminders); err != nil {
		return Reminder{}, err
	}
	s.publish("reminder.completed")
	return r, nil
}

// GetTask returns a task by id.
func (s *Store) GetTask(id string) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(id)
	if i < 0 {
		return Task{}, ErrNotFound
	}
	return s.tasks[i], nil
}

// Tasks returns a snapshot of all tasks.
func (s *Store) Tasks() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Task(nil), s.tasks...)
}

// Reminders returns a snapshot of all reminders.
func (s *Store) Reminders() []Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Reminder(nil), s.reminders...)
}

// TasksByDate returns tasks whose due date falls on the same calendar day as
// date. Tasks without a due date are never matched.
func (s *Store) TasksByDate(date time.Time) []Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Task
	for _, t := range s.tasks {
		if t.DueDate != nil && dateutil.SameDay(*t.DueDate, date) {
			out = append(out, t)
		}
	}
	return out
}

// OverdueTasks returns incomplete tasks whose due date is strictly in the
// past. A completed task is never overdue, whatever its date.
func (s *Store) OverdueTasks() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var out []Task
	for _, t := range s.tasks {
		if t.Completed || t.DueDate == nil {
			continue
		}
		if dateutil.IsOverdue(*t.DueDate, now) {
			out = append(out, t)
		}
	}
	return out
}

// UpcomingReminders returns uncompleted reminders scheduled within the next
// hour, bounds inclusive.
func (s *Store) UpcomingReminders() []Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	nextHour := now.Add(time.Hour)
	var out []Reminder
	for _, r := range s.reminders {
		if r.IsCompleted {
			continue
		}
		if !r.ScheduledTime.Before(now) && !r.ScheduledTime.After(nextHour) {
			out = append(out, r)
		}
	}
	return out
}

// DueReminders returns uncompleted reminders whose scheduled time has passed.
func (s *Store) DueReminders() []Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var out []Reminder
	for _, r := range s.reminders {
		if !r.IsCompleted && !r.ScheduledTime.After(now) {
			out = append(out, r)
		}
	}
	return out
}

func (s *Store) taskIndex(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) reminderIndex(id string) int {
	for i := range s.reminders {
		if s.reminders[i].ID == id {
			return i
		}
	}
	return -1
}
