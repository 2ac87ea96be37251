// Package task owns the canonical task and reminder collections: CRUD with
// write-through persistence, the cascade from a task to its reminders, and
// the date/status queries the dashboard is built on.
package task

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when an id does not match any task or reminder.
	ErrNotFound = errors.New("not found")
	// ErrEmptyTitle is returned when a task title is empty or blank.
	ErrEmptyTitle = errors.New("title is empty")
)

// Priority is a task's urgency band, totally ordered low < medium < high < urgent.
type Priority string

const (
	Low    Priority = "low"
	Medium Priority = "medium"
	High   Priority = "high"
	Urgent Priority = "urgent"
)

// Weight returns the fixed sort weight: urgent=4, high=3, medium=2, low=1.
// Unknown priorities weigh 0 and sort last.
func (p Priority) Weight() int {
	switch p {
	case Urgent:
		return 4
	case High:
		return 3
	case Medium:
		return 2
	case Low:
		return 1
	}
	return 0
}

// RecurringPattern is how often a recurring reminder repeats.
type RecurringPattern string

const (
	Daily   RecurringPattern = "daily"
	Weekly  RecurringPattern = "weekly"
	Monthly RecurringPattern = "monthly"
)

// Task is a user-created to-do item.
type Task struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	Description       string     `json:"description,omitempty"`
	Completed         bool       `json:"completed"`
	Priority          Priority   `json:"priority"`
	DueDate           *time.Time `json:"dueDate,omitempty"`
	DueTime           string     `json:"dueTime,omitempty"` // clock time "HH:MM" on the due date
	Category          string     `json:"category,omitempty"`
	EstimatedDuration int        `json:"estimatedDuration,omitempty"` // minutes
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// Reminder is a time-triggered notice, optionally linked to a task.
type Reminder struct {
	ID               string           `json:"id"`
	TaskID           string           `json:"taskId,omitempty"`
	Title            string           `json:"title"`
	Message          string           `json:"message"`
	ScheduledTime    time.Time        `json:"scheduledTime"`
	IsRecurring      bool             `json:"isRecurring"`
	RecurringPattern RecurringPattern `json:"recurringPattern,omitempty"`
	IsCompleted      bool             `json:"isCompleted"`
	SnoozeCount      int              `json:"snoozeCount"`
	CreatedAt        time.Time        `json:"createdAt"`
}

// TaskPatch carries a partial task update. Nil fields are left unchanged.
type TaskPatch struct {
	Title             *string
	Description       *string
	Completed         *bool
	Priority          *Priority
	DueDate           *time.Time
	DueTime           *string
	Category          *string
	EstimatedDuration *int
}

// ReminderPatch carries a partial reminder update. Nil fields are left unchanged.
type ReminderPatch struct {
	Title            *string
	Message          *string
	ScheduledTime    *time.Time
	IsRecurring      *bool
	RecurringPattern *RecurringPattern
	IsCompleted      *bool
}
