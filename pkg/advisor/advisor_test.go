package advisor

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"ireminder/pkg/task"
)

func fixedEngine(now time.Time) *Engine {
	return &Engine{
		now:  func() time.Time { return now },
		pick: func(int) int { return 0 },
	}
}

// TestTaskOrderPicksHighestPriority checks the priority-then-due-date sort.
func TestTaskOrderPicksHighestPriority(t *testing.T) {
	now := time.Date(2026, 5, 4, 11, 0, 0, 0, time.Local)
	e := fixedEngine(now)

	early := now.Add(2 * time.Hour)
	late := now.Add(48 * time.Hour)
	tasks := []task.Task{
		{Title: "write report", Priority: task.Medium},
		{Title: "fix outage", Priority: task.Urgent, DueDate: &late},
		{Title: "page oncall", Priority: task.Urgent, DueDate: &early},
		{Title: "already done", Priority: task.Urgent, Completed: true},
	}

	rec := e.TaskOrder(tasks)
	if rec.Type != TypeTaskOrder || rec.Priority != 3 {
		t.Fatalf("unexpected recommendation: %+v", rec)
	}
	if rec.Title != "Focus on: page oncall" {
		t.Fatalf("wrong task chosen: %q", rec.Title)
	}
	if !strings.Contains(rec.Description, "is due soon") {
		t.Fatalf("due-date task should read as due soon: %q", rec.Description)
	}
}

// TestTaskOrderDueDateBeatsUndated checks that at equal priority a task with
// a due date outranks one without, whichever order they were added in.
func TestTaskOrderDueDateBeatsUndated(t *testing.T) {
	now := time.Date(2026, 5, 4, 11, 0, 0, 0, time.Local)
	e := fixedEngine(now)

	due := now.Add(24 * time.Hour)
	tasks := []task.Task{
		{Title: "undated", Priority: task.High},
		{Title: "dated", Priority: task.High, DueDate: &due},
	}

	rec := e.TaskOrder(tasks)
	if rec.Title != "Focus on: dated" {
		t.Fatalf("dated task must outrank undated one at equal priority, got %q", rec.Title)
	}

	// Reversed input order must not change the outcome.
	rec = e.TaskOrder([]task.Task{tasks[1], tasks[0]})
	if rec.Title != "Focus on: dated" {
		t.Fatalf("order-dependent tie-break: got %q", rec.Title)
	}
}

// TestTaskOrderAllCaughtUp checks the empty and all-completed cases.
func TestTaskOrderAllCaughtUp(t *testing.T) {
	e := fixedEngine(time.Date(2026, 5, 4, 11, 0, 0, 0, time.Local))

	for _, tasks := range [][]task.Task{
		nil,
		{{Title: "done", Completed: true}},
	} {
		rec := e.TaskOrder(tasks)
		if rec.Title != "All caught up!" || rec.Priority != 1 {
			t.Fatalf("expected all-caught-up note, got %+v", rec)
		}
	}
}

// TestTaskOrderTimeOfDayBands checks the four hour bands of the suggestion.
func TestTaskOrderTimeOfDayBands(t *testing.T) {
	tasks := []task.Task{{Title: "a", Priority: task.High}}
	cases := []struct {
		hour int
		want string
	}{
		{8, "Start your day strong"},
		{11, "Perfect time to tackle"},
		{15, "Keep the momentum going"},
		{20, "Finish strong"},
	}
	for _, tc := range cases {
		e := fixedEngine(time.Date(2026, 5, 4, tc.hour, 0, 0, 0, time.Local))
		rec := e.TaskOrder(tasks)
		if !strings.Contains(rec.Description, tc.want) {
			t.Fatalf("hour %d: description %q missing %q", tc.hour, rec.Description, tc.want)
		}
	}
}

// TestBreakSuppressedWithinWindow checks the 45-minute suppression and the
// 120-minute assumption when no break was ever logged.
func TestBreakSuppressedWithinWindow(t *testing.T) {
	now := time.Date(2026, 5, 4, 11, 0, 0, 0, time.Local)
	e := fixedEngine(now)

	recent := now.Add(-20 * time.Minute)
	if _, ok := e.Break(&recent); ok {
		t.Fatal("break recommended 20 minutes after the last one")
	}

	old := now.Add(-90 * time.Minute)
	rec, ok := e.Break(&old)
	if !ok {
		t.Fatal("expected a break 90 minutes after the last one")
	}
	if rec.Priority != 2 || !strings.Contains(rec.Description, "90 minutes") {
		t.Fatalf("unexpected break recommendation: %+v", rec)
	}

	rec, ok = e.Break(nil)
	if !ok || !strings.Contains(rec.Description, "120 minutes") {
		t.Fatalf("nil last break should assume 120 minutes: %+v, ok=%v", rec, ok)
	}
}

// TestSuggestBreakNeverOutranksTaskWithDefaultWeights checks the selection
// rule: a pending break (priority 2) only beats the task recommendation when
// the task side is the all-caught-up note (priority 1).
func TestSuggestBreakNeverOutranksTaskWithDefaultWeights(t *testing.T) {
	now := time.Date(2026, 5, 4, 11, 0, 0, 0, time.Local)
	e := fixedEngine(now)

	tasks := []task.Task{{Title: "a", Priority: task.Low}}
	rec := e.Suggest(tasks, nil)
	if rec.Type != TypeTaskOrder {
		t.Fatalf("with open tasks the task recommendation must win, got %+v", rec)
	}

	rec = e.Suggest(nil, nil)
	if rec.Type != TypeBreak {
		t.Fatalf("with no open tasks an overdue break must win, got %+v", rec)
	}

	recent := now.Add(-10 * time.Minute)
	rec = e.Suggest(nil, &recent)
	if rec.Type != TypeTaskOrder {
		t.Fatalf("suppressed break must fall back to the task side, got %+v", rec)
	}
}

// TestWellnessPrecedence checks stress, then energy, then mood, then praise.
func TestWellnessPrecedence(t *testing.T) {
	e := fixedEngine(time.Date(2026, 5, 4, 11, 0, 0, 0, time.Local))

	cases := []struct {
		mood, energy, stress int
		title                string
		priority             int
	}{
		{1, 1, 5, "Stress Management", 3},
		{1, 2, 3, "Energy Boost", 2},
		{2, 4, 3, "Mood Lift", 2},
		{4, 4, 2, "Keep up the great work!", 1},
	}
	for _, tc := range cases {
		rec := e.Wellness(tc.mood, tc.energy, tc.stress)
		if rec.Title != tc.title || rec.Priority != tc.priority {
			t.Fatalf("mood=%d energy=%d stress=%d: got %q/%d, want %q/%d",
				tc.mood, tc.energy, tc.stress, rec.Title, rec.Priority, tc.title, tc.priority)
		}
	}
}

// TestFocusBuckets checks the completion-rate bands and the zero-total rule.
func TestFocusBuckets(t *testing.T) {
	e := fixedEngine(time.Date(2026, 5, 4, 11, 0, 0, 0, time.Local))

	cases := []struct {
		completed, total int
		title            string
		priority         int
	}{
		{8, 10, "Excellent progress!", 1},
		{5, 10, "Good momentum", 2},
		{1, 4, "Time to focus", 2},
		{0, 10, "Fresh start opportunity", 3},
		{0, 0, "Fresh start opportunity", 3},
	}
	for _, tc := range cases {
		rec := e.Focus(tc.completed, tc.total)
		if rec.Title != tc.title || rec.Priority != tc.priority {
			t.Fatalf("%d/%d: got %q/%d, want %q/%d",
				tc.completed, tc.total, rec.Title, rec.Priority, tc.title, tc.priority)
		}
	}
}

// TestMotivationalQuoteCoversPool checks every pick index maps to a distinct
// quote and the real engine returns one of them.
func TestMotivationalQuoteCoversPool(t *testing.T) {
	e := fixedEngine(time.Now())
	seen := make(map[string]bool)
	for i := range quotes {
		e.pick = func(int) int { return i }
		seen[e.MotivationalQuote()] = true
	}
	if len(seen) != len(quotes) {
		t.Fatalf("expected %d distinct quotes, saw %d", len(quotes), len(seen))
	}

	e.pick = rand.Intn
	if q := e.MotivationalQuote(); !seen[q] {
		t.Fatalf("quote %q not in pool", q)
	}
}
