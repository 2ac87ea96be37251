package wellness

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"ireminder/pkg/bus"
	"ireminder/pkg/dateutil"
	"ireminder/pkg/storage"
)

// record is the durable layout of the wellness record. Entries and stats are
// stored as date-sorted arrays; in memory they live in day-keyed maps so the
// one-entry-per-day invariant is structural.
type record struct {
	WellnessEntries   []Entry    `json:"wellnessEntries"`
	ProductivityStats []Stats    `json:"productivityStats"`
	LastBreakTime     *time.Time `json:"lastBreakTime"`
}

// Store holds wellness entries and productivity stats keyed by calendar day,
// plus the last-break timestamp (nil until the first break is logged).
type Store struct {
	mu        sync.Mutex
	records   storage.Records
	changes   *bus.Bus
	now       func() time.Time
	entries   map[string]Entry
	stats     map[string]Stats
	lastBreak *time.Time
}

// NewStore creates a Store. If changes is nil, change signals are disabled.
func NewStore(records storage.Records, changes *bus.Bus) *Store {
	return &Store{
		records: records,
		changes: changes,
		now:     time.Now,
		entries: make(map[string]Entry),
		stats:   make(map[string]Stats),
	}
}

// Load hydrates the store from the durable record.
func (s *Store) Load(ctx context.Context) error {
	data, err := s.records.Load(ctx, storage.KeyWellness)
	if errors.Is(err, storage.ErrNoRecord) {
		return nil
	}
	if err != nil {
		return err
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("decode wellness record: %w", err)
	}

	s.mu.Lock()
	s.entries = make(map[string]Entry, len(rec.WellnessEntries))
	for _, e := range rec.WellnessEntries {
		s.entries[dateutil.DayKey(e.Date)] = e
	}
	s.stats = make(map[string]Stats, len(rec.ProductivityStats))
	for _, st := range rec.ProductivityStats {
		s.stats[dateutil.DayKey(st.Date)] = st
	}
	s.lastBreak = rec.LastBreakTime
	s.mu.Unlock()
	return nil
}

// persistLocked writes the candidate state through and commits it on success.
// Callers must hold s.mu.
func (s *Store) persistLocked(ctx context.Context, entries map[string]Entry, stats map[string]Stats, lastBreak *time.Time) error {
	rec := record{
		WellnessEntries:   make([]Entry, 0, len(entries)),
		ProductivityStats: make([]Stats, 0, len(stats)),
		LastBreakTime:     lastBreak,
	}
	for _, e := range entries {
		rec.WellnessEntries = append(rec.WellnessEntries, e)
	}
	sort.Slice(rec.WellnessEntries, func(i, j int) bool {
		return rec.WellnessEntries[i].Date.Before(rec.WellnessEntries[j].Date)
	})
	for _, st := range stats {
		rec.ProductivityStats = append(rec.ProductivityStats, st)
	}
	sort.Slice(rec.ProductivityStats, func(i, j int) bool {
		return rec.ProductivityStats[i].Date.Before(rec.ProductivityStats[j].Date)
	})

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode wellness record: %w", err)
	}
	if err := s.records.Save(ctx, storage.KeyWellness, data); err != nil {
		return err
	}
	s.entries = entries
	s.stats = stats
	s.lastBreak = lastBreak
	return nil
}

func (s *Store) publish(kind string) {
	if s.changes != nil {
		s.changes.Publish(bus.Change{Source: "wellness", Kind: kind})
	}
}

// AddEntry upserts the entry for its calendar day. Writing a day that already
// has an entry replaces it in place under a fresh id; use UpdateEntry to edit
// an existing entry while preserving its id.
func (s *Store) AddEntry(ctx context.Context, e Entry) (Entry, error) {
	if err := e.validate(); err != nil {
		return Entry{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = uuid.Must(uuid.NewV7()).String()

	entries := cloneEntries(s.entries)
	entries[dateutil.DayKey(e.Date)] = e
	if err := s.persistLocked(ctx, entries, s.stats, s.lastBreak); err != nil {
		return Entry{}, err
	}
	s.publish("entry.upserted")
	return e, nil
}

// UpdateEntry merges a partial update into the entry with the given id,
// preserving the id and day slot.
func (s *Store) UpdateEntry(ctx context.Context, id string, patch EntryPatch) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := ""
	for k, e := range s.entries {
		if e.ID == id {
			key = k
			break
		}
	}
	if key == "" {
		return Entry{}, ErrNotFound
	}

	e := s.entries[key]
	if patch.Mood != nil {
		e.Mood = *patch.Mood
	}
	if patch.Energy != nil {
		e.Energy = *patch.Energy
	}
	if patch.Stress != nil {
		e.Stress = *patch.Stress
	}
	if patch.Notes != nil {
		e.Notes = *patch.Notes
	}
	if err := e.validate(); err != nil {
		return Entry{}, err
	}

	entries := cloneEntries(s.entries)
	entries[key] = e
	if err := s.persistLocked(ctx, entries, s.stats, s.lastBreak); err != nil {
		return Entry{}, err
	}
	s.publish("entry.updated")
	return e, nil
}

// EntryFor returns the entry for date's calendar day.
func (s *Store) EntryFor(date time.Time) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[dateutil.DayKey(date)]
	if !ok {
		return Entry{}, ErrNotFound
	}
	return e, nil
}

// AddStats upserts the productivity stats for their calendar day.
func (s *Store) AddStats(ctx context.Context, st Stats) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := cloneStats(s.stats)
	stats[dateutil.DayKey(st.Date)] = st
	if err := s.persistLocked(ctx, s.entries, stats, s.lastBreak); err != nil {
		return err
	}
	s.publish("stats.upserted")
	return nil
}

// StatsFor returns the productivity stats for date's calendar day.
func (s *Store) StatsFor(date time.Time) (Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.stats[dateutil.DayKey(date)]
	if !ok {
		return Stats{}, ErrNotFound
	}
	return st, nil
}

// WeeklyStats returns the stats for the 7-day span starting at start, in
// date order.
func (s *Store) WeeklyStats(start time.Time) []Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	from := dateutil.DayStart(start)
	to := from.AddDate(0, 0, 7)
	var out []Stats
	for _, st := range s.stats {
		if !st.Date.Before(from) && st.Date.Before(to) {
			out = append(out, st)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// UpdateLastBreakTime records that a break was just taken.
func (s *Store) UpdateLastBreakTime(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if err := s.persistLocked(ctx, s.entries, s.stats, &now); err != nil {
		return err
	}
	s.publish("break.logged")
	return nil
}

// ResetLastBreakTime clears the last-break timestamp back to unset.
func (s *Store) ResetLastBreakTime(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persistLocked(ctx, s.entries, s.stats, nil); err != nil {
		return err
	}
	s.publish("break.reset")
	return nil
}

// LastBreakTime returns the last-break timestamp, or nil if no break has been
// logged since the last reset.
func (s *Store) LastBreakTime() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastBreak == nil {
		return nil
	}
	t := *s.lastBreak
	return &t
}

// AverageMood returns the mean mood over entries in the trailing window of
// the given number of days, or 0 when the window is empty.
func (s *Store) AverageMood(days int) float64 {
	return s.average(days, func(e Entry) int { return e.Mood })
}

// AverageEnergy returns the mean energy over the trailing window, or 0 when
// the window is empty.
func (s *Store) AverageEnergy(days int) float64 {
	return s.average(days, func(e Entry) int { return e.Energy })
}

// AverageStress returns the mean stress over the trailing window, or 0 when
// the window is empty.
func (s *Store) AverageStress(days int) float64 {
	return s.average(days, func(e Entry) int { return e.Stress })
}

func (s *Store) average(days int, field func(Entry) int) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().AddDate(0, 0, -days)
	sum, n := 0, 0
	for _, e := range s.entries {
		if !e.Date.Before(cutoff) {
			sum += field(e)
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

// CompletionRate returns 100 × completed/total over the stats in the trailing
// window, or 0 when no tasks were recorded.
func (s *Store) CompletionRate(days int) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().AddDate(0, 0, -days)
	completed, total := 0, 0
	for _, st := range s.stats {
		if !st.Date.Before(cutoff) {
			completed += st.TasksCompleted
			total += st.TotalTasks
		}
	}
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}

func cloneEntries(m map[string]Entry) map[string]Entry {
	out := make(map[string]Entry, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneStats(m map[string]Stats) map[string]Stats {
	out := make(map[string]Stats, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}
