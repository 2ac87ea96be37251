// Package wellness owns the daily self-ratings and per-day productivity
// snapshots, the process-wide last-break timestamp, and the rolling-window
// analytics derived from them.
package wellness

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when no entry exists for a day or id.
	ErrNotFound = errors.New("not found")
	// ErrRatingRange is returned when a mood/energy/stress rating is outside [1,5].
	ErrRatingRange = errors.New("rating out of range")
)

// Entry is a once-per-day self-report. Mood, energy and stress are each an
// integer in [1,5].
type Entry struct {
	ID     string    `json:"id"`
	Date   time.Time `json:"date"`
	Mood   int       `json:"mood"`
	Energy int       `json:"energy"`
	Stress int       `json:"stress"`
	Notes  string    `json:"notes,omitempty"`
}

func (e Entry) validate() error {
	for _, v := range []int{e.Mood, e.Energy, e.Stress} {
		if v < 1 || v > 5 {
			return ErrRatingRange
		}
	}
	return nil
}

// Stats is a once-per-day aggregate of task completion and focus time.
type Stats struct {
	Date           time.Time `json:"date"`
	TasksCompleted int       `json:"tasksCompleted"`
	TotalTasks     int       `json:"totalTasks"`
	FocusTime      int       `json:"focusTime"` // minutes
	BreaksTaken    int       `json:"breaksTaken"`
}

// EntryPatch carries a partial entry update. Nil fields are left unchanged.
type EntryPatch struct {
	Mood   *int
	Energy *int
	Stress *int
	Notes  *string
}
