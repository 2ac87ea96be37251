package app

import (
	"context"
	"testing"
	"time"

	"ireminder/pkg/bus"
	"ireminder/pkg/settings"
	"ireminder/pkg/storage"
	"ireminder/pkg/task"
	"ireminder/pkg/wellness"
)

type memRecords struct {
	data map[string][]byte
}

func newMemRecords() *memRecords {
	return &memRecords{data: make(map[string][]byte)}
}

func (m *memRecords) Load(_ context.Context, key string) ([]byte, error) {
	v, ok := m.data[key]
	if !ok {
		return nil, storage.ErrNoRecord
	}
	return v, nil
}

func (m *memRecords) Save(_ context.Context, key string, value []byte) error {
	m.data[key] = value
	return nil
}

// captureNotifier grants permission and records every notification it is
// asked to show.
type captureNotifier struct {
	titles []string
}

func (c *captureNotifier) RequestPermission(context.Context) bool { return true }

func (c *captureNotifier) Show(_ context.Context, title, _, _ string, _ bool) error {
	c.titles = append(c.titles, title)
	return nil
}

func newTestApp(t *testing.T) (*App, *captureNotifier) {
	t.Helper()
	rec := newMemRecords()
	changes := bus.New()
	a := New(
		task.NewStore(rec, changes),
		wellness.NewStore(rec, changes),
		settings.NewStore(rec, changes),
		changes,
	)
	shown := &captureNotifier{}
	a.desktop = shown

	// Keep tests quiet: no voice, no break nudges.
	off := false
	if _, err := a.Settings.Update(context.Background(), settings.Patch{
		VoiceOutput:    &off,
		BreakReminders: &off,
	}); err != nil {
		t.Fatalf("settings: %v", err)
	}
	return a, shown
}

// TestDispatchDueReminders checks a due reminder is notified and completed,
// while a future one is left alone.
func TestDispatchDueReminders(t *testing.T) {
	ctx := context.Background()
	a, shown := newTestApp(t)

	due, err := a.Tasks.AddReminder(ctx, task.Reminder{
		Title:         "stand up",
		ScheduledTime: time.Now().Add(-time.Minute),
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := a.Tasks.AddReminder(ctx, task.Reminder{
		Title:         "later",
		ScheduledTime: time.Now().Add(time.Hour),
	}); err != nil {
		t.Fatalf("add: %v", err)
	}

	a.poll(ctx)

	if len(shown.titles) != 1 || shown.titles[0] != "⏰ stand up" {
		t.Fatalf("unexpected notifications: %v", shown.titles)
	}
	for _, r := range a.Tasks.Reminders() {
		if r.ID == due.ID && !r.IsCompleted {
			t.Fatal("due reminder was not completed")
		}
		if r.Title == "later" && r.IsCompleted {
			t.Fatal("future reminder was completed")
		}
	}
}

// TestDispatchHonorsNotificationSetting checks disabled notifications still
// complete the reminder but show nothing.
func TestDispatchHonorsNotificationSetting(t *testing.T) {
	ctx := context.Background()
	a, shown := newTestApp(t)

	off := false
	if _, err := a.Settings.Update(ctx, settings.Patch{Notifications: &off}); err != nil {
		t.Fatalf("settings: %v", err)
	}
	if _, err := a.Tasks.AddReminder(ctx, task.Reminder{
		Title:         "quiet",
		ScheduledTime: time.Now().Add(-time.Minute),
	}); err != nil {
		t.Fatalf("add: %v", err)
	}

	a.poll(ctx)

	if len(shown.titles) != 0 {
		t.Fatalf("notifications shown while disabled: %v", shown.titles)
	}
	if rems := a.Tasks.DueReminders(); len(rems) != 0 {
		t.Fatalf("due reminder not completed: %+v", rems)
	}
}

// TestDueTaskNotifiedOnce checks an open task past its due time is notified
// exactly once across polls, and a completed one never is.
func TestDueTaskNotifiedOnce(t *testing.T) {
	ctx := context.Background()
	a, shown := newTestApp(t)

	now := time.Now()
	today := now
	if _, err := a.Tasks.AddTask(ctx, task.Task{
		Title:   "submit report",
		DueDate: &today,
		DueTime: "00:00",
	}); err != nil {
		t.Fatalf("add: %v", err)
	}
	done, err := a.Tasks.AddTask(ctx, task.Task{
		Title:   "already handled",
		DueDate: &today,
		DueTime: "00:00",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := a.Tasks.ToggleTask(ctx, done.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	a.poll(ctx)
	a.poll(ctx)

	count := 0
	for _, title := range shown.titles {
		if title == "📋 Task Due" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one task-due notification, got %d (%v)", count, shown.titles)
	}
}

// TestWelcomeShowsMotivation checks startup delivers a motivational
// notification.
func TestWelcomeShowsMotivation(t *testing.T) {
	a, shown := newTestApp(t)

	a.Welcome(context.Background())

	if len(shown.titles) != 1 || shown.titles[0] != "✨ Stay Motivated" {
		t.Fatalf("expected a motivation notification, got %v", shown.titles)
	}
}

// TestSuggestionRefresh checks the cached suggestion tracks the task store.
func TestSuggestionRefresh(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestApp(t)

	a.refreshSuggestion()
	if got := a.Suggestion(); got.Title == "" {
		t.Fatal("expected a suggestion even with no tasks")
	}

	if _, err := a.Tasks.AddTask(ctx, task.Task{Title: "file taxes", Priority: task.Urgent}); err != nil {
		t.Fatalf("add: %v", err)
	}
	a.refreshSuggestion()
	if got := a.Suggestion(); got.Title != "Focus on: file taxes" {
		t.Fatalf("suggestion did not track the store: %+v", got)
	}
}

// TestWithinWorkingHours checks the inclusive start and exclusive end.
func TestWithinWorkingHours(t *testing.T) {
	hours := settings.WorkingHours{Start: "09:00", End: "17:00"}
	day := time.Date(2026, 7, 1, 0, 0, 0, 0, time.Local)

	cases := []struct {
		at   time.Time
		want bool
	}{
		{day.Add(8 * time.Hour), false},
		{day.Add(9 * time.Hour), true},
		{day.Add(12 * time.Hour), true},
		{day.Add(17 * time.Hour), false},
		{day.Add(22 * time.Hour), false},
	}
	for _, tc := range cases {
		if got := withinWorkingHours(tc.at, hours); got != tc.want {
			t.Fatalf("withinWorkingHours(%v) = %v, want %v", tc.at, got, tc.want)
		}
	}
}

// TestBreakNudgeRecordsBreakTime checks a nudge sets the last-break time so
// the next poll inside the interval stays quiet.
func TestBreakNudgeRecordsBreakTime(t *testing.T) {
	ctx := context.Background()
	a, shown := newTestApp(t)

	on := true
	allDay := settings.WorkingHours{Start: "00:00", End: "23:59"}
	if _, err := a.Settings.Update(ctx, settings.Patch{
		BreakReminders: &on,
		WorkingHours:   &allDay,
	}); err != nil {
		t.Fatalf("settings: %v", err)
	}

	a.poll(ctx)
	if len(shown.titles) != 1 || shown.titles[0] != "🧘 Break Time" {
		t.Fatalf("expected one break nudge, got %v", shown.titles)
	}
	if a.Wellness.LastBreakTime() == nil {
		t.Fatal("nudge did not record the break time")
	}

	a.poll(ctx)
	if len(shown.titles) != 1 {
		t.Fatalf("renudged inside the interval: %v", shown.titles)
	}
}
