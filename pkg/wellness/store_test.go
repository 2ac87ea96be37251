package wellness

import (
	"context"
	"errors"
	"testing"
	"time"

	"ireminder/pkg/storage"
)

// memRecords is an in-memory storage.Records for tests.
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

func fixedStore(now time.Time) *Store {
	s := NewStore(newMemRecords(), nil)
	s.now = func() time.Time { return now }
	return s
}

// TestAddEntryUpsertsByDay checks that two entries on the same calendar day
// collapse to one, with the second write winning.
func TestAddEntryUpsertsByDay(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2026, 4, 2, 9, 0, 0, 0, time.Local)
	s := fixedStore(day)

	if _, err := s.AddEntry(ctx, Entry{Date: day, Mood: 2, Energy: 2, Stress: 2}); err != nil {
		t.Fatalf("first add: %v", err)
	}
	second, err := s.AddEntry(ctx, Entry{Date: day.Add(5 * time.Hour), Mood: 5, Energy: 4, Stress: 1})
	if err != nil {
		t.Fatalf("second add: %v", err)
	}

	got, err := s.EntryFor(day)
	if err != nil {
		t.Fatalf("EntryFor: %v", err)
	}
	if got.ID != second.ID || got.Mood != 5 {
		t.Fatalf("expected second entry to win, got %+v", got)
	}
}

// TestAddEntryRejectsOutOfRangeRatings checks the 1..5 rating bounds.
func TestAddEntryRejectsOutOfRangeRatings(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2026, 4, 2, 9, 0, 0, 0, time.Local)
	s := fixedStore(day)

	for _, e := range []Entry{
		{Date: day, Mood: 0, Energy: 3, Stress: 3},
		{Date: day, Mood: 3, Energy: 6, Stress: 3},
		{Date: day, Mood: 3, Energy: 3, Stress: -1},
	} {
		if _, err := s.AddEntry(ctx, e); !errors.Is(err, ErrRatingRange) {
			t.Fatalf("entry %+v: expected ErrRatingRange, got %v", e, err)
		}
	}
	if _, err := s.EntryFor(day); !errors.Is(err, ErrNotFound) {
		t.Fatalf("rejected entry must not be stored, got %v", err)
	}
}

// TestUpdateEntryPreservesID checks that partial updates keep the id and
// untouched fields.
func TestUpdateEntryPreservesID(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2026, 4, 2, 9, 0, 0, 0, time.Local)
	s := fixedStore(day)

	added, err := s.AddEntry(ctx, Entry{Date: day, Mood: 2, Energy: 3, Stress: 4, Notes: "rough"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	mood := 4
	got, err := s.UpdateEntry(ctx, added.ID, EntryPatch{Mood: &mood})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.ID != added.ID {
		t.Fatalf("id changed: %q != %q", got.ID, added.ID)
	}
	if got.Mood != 4 || got.Energy != 3 || got.Notes != "rough" {
		t.Fatalf("unexpected merged entry: %+v", got)
	}

	if _, err := s.UpdateEntry(ctx, "missing", EntryPatch{Mood: &mood}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// TestAverages checks the trailing-window means and the 0-on-empty rule.
func TestAverages(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 4, 10, 12, 0, 0, 0, time.Local)
	s := fixedStore(now)

	if got := s.AverageMood(7); got != 0 {
		t.Fatalf("empty window: want 0, got %v", got)
	}

	moods := []int{5, 3, 1}
	for i, m := range moods {
		e := Entry{Date: now.AddDate(0, 0, -i), Mood: m, Energy: 3, Stress: 3}
		if _, err := s.AddEntry(ctx, e); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}
	// An old entry outside the window must not count.
	if _, err := s.AddEntry(ctx, Entry{Date: now.AddDate(0, 0, -30), Mood: 1, Energy: 1, Stress: 5}); err != nil {
		t.Fatalf("add old: %v", err)
	}

	if got := s.AverageMood(7); got != 3.0 {
		t.Fatalf("AverageMood(7) = %v, want 3.0", got)
	}
	if got := s.AverageEnergy(7); got != 3.0 {
		t.Fatalf("AverageEnergy(7) = %v, want 3.0", got)
	}
}

// TestCompletionRate checks the percentage over trailing stats and the
// zero-total rule.
func TestCompletionRate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 4, 10, 12, 0, 0, 0, time.Local)
	s := fixedStore(now)

	if got := s.CompletionRate(7); got != 0 {
		t.Fatalf("no stats: want 0, got %v", got)
	}

	if err := s.AddStats(ctx, Stats{Date: now, TasksCompleted: 3, TotalTasks: 4}); err != nil {
		t.Fatalf("add stats: %v", err)
	}
	if err := s.AddStats(ctx, Stats{Date: now.AddDate(0, 0, -1), TasksCompleted: 1, TotalTasks: 4}); err != nil {
		t.Fatalf("add stats: %v", err)
	}

	if got := s.CompletionRate(7); got != 50.0 {
		t.Fatalf("CompletionRate(7) = %v, want 50.0", got)
	}
}

// TestWeeklyStatsSpan checks the 7-day window and date ordering.
func TestWeeklyStatsSpan(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 4, 6, 0, 0, 0, 0, time.Local)
	s := fixedStore(start)

	for _, d := range []int{6, 0, 3, 7, -1} {
		st := Stats{Date: start.AddDate(0, 0, d), TotalTasks: d + 10}
		if err := s.AddStats(ctx, st); err != nil {
			t.Fatalf("add stats: %v", err)
		}
	}

	got := s.WeeklyStats(start)
	if len(got) != 3 {
		t.Fatalf("expected 3 stats in week, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Date.Before(got[i-1].Date) {
			t.Fatalf("stats out of order: %v before %v", got[i].Date, got[i-1].Date)
		}
	}
}

// TestLastBreakLifecycle checks nil-until-set, update, and reset.
func TestLastBreakLifecycle(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 4, 10, 12, 0, 0, 0, time.Local)
	s := fixedStore(now)

	if s.LastBreakTime() != nil {
		t.Fatal("expected nil before first break")
	}
	if err := s.UpdateLastBreakTime(ctx); err != nil {
		t.Fatalf("update: %v", err)
	}
	got := s.LastBreakTime()
	if got == nil || !got.Equal(now) {
		t.Fatalf("LastBreakTime = %v, want %v", got, now)
	}
	if err := s.ResetLastBreakTime(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if s.LastBreakTime() != nil {
		t.Fatal("expected nil after reset")
	}
}

// TestLoadRoundTrip checks that a second store hydrated from the same records
// sees the first store's state.
func TestLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 4, 10, 12, 0, 0, 0, time.Local)
	rec := newMemRecords()

	s1 := NewStore(rec, nil)
	s1.now = func() time.Time { return now }
	if _, err := s1.AddEntry(ctx, Entry{Date: now, Mood: 4, Energy: 4, Stress: 2}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s1.UpdateLastBreakTime(ctx); err != nil {
		t.Fatalf("break: %v", err)
	}

	s2 := NewStore(rec, nil)
	s2.now = func() time.Time { return now }
	if err := s2.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	e, err := s2.EntryFor(now)
	if err != nil {
		t.Fatalf("EntryFor after load: %v", err)
	}
	if e.Mood != 4 {
		t.Fatalf("unexpected entry after load: %+v", e)
	}
	if lb := s2.LastBreakTime(); lb == nil || !lb.Equal(now) {
		t.Fatalf("LastBreakTime after load = %v, want %v", lb, now)
	}
}
