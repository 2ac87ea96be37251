// Package settings holds the user preference record: notification and voice
// toggles, theme, working hours, and break cadence.
package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"ireminder/pkg/bus"
	"ireminder/pkg/dateutil"
	"ireminder/pkg/storage"
)

// WorkingHours is a daily window in "HH:MM" 24-hour form.
type WorkingHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Settings is the full preference set. It is persisted as a single record and
// replaced wholesale on update.
type Settings struct {
	Notifications  bool         `json:"notifications"`
	VoiceOutput    bool         `json:"voiceOutput"`
	Theme          string       `json:"theme"`
	WorkingHours   WorkingHours `json:"workingHours"`
	BreakReminders bool         `json:"breakReminders"`
	BreakInterval  int          `json:"breakInterval"`
}

// Patch is a partial settings update; nil fields are left unchanged.
type Patch struct {
	Notifications  *bool
	VoiceOutput    *bool
	Theme          *string
	WorkingHours   *WorkingHours
	BreakReminders *bool
	BreakInterval  *int
}

// Defaults returns the out-of-the-box settings.
func Defaults() Settings {
	return Settings{
		Notifications:  true,
		VoiceOutput:    true,
		Theme:          "light",
		WorkingHours:   WorkingHours{Start: "09:00", End: "17:00"},
		BreakReminders: true,
		BreakInterval:  60,
	}
}

// ErrInvalid reports a settings value that failed validation.
var ErrInvalid = errors.New("settings: invalid value")

func validate(s Settings) error {
	switch s.Theme {
	case "light", "dark":
	default:
		return fmt.Errorf("%w: theme %q", ErrInvalid, s.Theme)
	}
	if s.BreakInterval <= 0 {
		return fmt.Errorf("%w: break interval %d", ErrInvalid, s.BreakInterval)
	}
	base := time.Time{}
	if _, err := dateutil.AtTime(base, s.WorkingHours.Start); err != nil {
		return fmt.Errorf("%w: working hours start: %v", ErrInvalid, err)
	}
	if _, err := dateutil.AtTime(base, s.WorkingHours.End); err != nil {
		return fmt.Errorf("%w: working hours end: %v", ErrInvalid, err)
	}
	return nil
}

// Store keeps the settings record in memory with write-through persistence.
type Store struct {
	mu      sync.Mutex
	records storage.Records
	changes *bus.Bus
	current Settings
}

// NewStore creates a Store holding the defaults until Load or Update.
func NewStore(records storage.Records, changes *bus.Bus) *Store {
	return &Store{records: records, changes: changes, current: Defaults()}
}

// Load hydrates the settings from the durable record; a missing record keeps
// the defaults.
func (s *Store) Load(ctx context.Context) error {
	data, err := s.records.Load(ctx, storage.KeySettings)
	if errors.Is(err, storage.ErrNoRecord) {
		return nil
	}
	if err != nil {
		return err
	}

	var loaded Settings
	if err := json.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("decode settings record: %w", err)
	}

	s.mu.Lock()
	s.current = loaded
	s.mu.Unlock()
	return nil
}

// Get returns the current settings.
func (s *Store) Get() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Update merges a partial update into the settings and persists the result.
func (s *Store) Update(ctx context.Context, patch Patch) (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current
	if patch.Notifications != nil {
		next.Notifications = *patch.Notifications
	}
	if patch.VoiceOutput != nil {
		next.VoiceOutput = *patch.VoiceOutput
	}
	if patch.Theme != nil {
		next.Theme = *patch.Theme
	}
	if patch.WorkingHours != nil {
		next.WorkingHours = *patch.WorkingHours
	}
	if patch.BreakReminders != nil {
		next.BreakReminders = *patch.BreakReminders
	}
	if patch.BreakInterval != nil {
		next.BreakInterval = *patch.BreakInterval
	}
	if err := validate(next); err != nil {
		return Settings{}, err
	}

	if err := s.persistLocked(ctx, next); err != nil {
		return Settings{}, err
	}
	s.publish("updated")
	return next, nil
}

// Reset restores and persists the defaults.
func (s *Store) Reset(ctx context.Context) (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persistLocked(ctx, Defaults()); err != nil {
		return Settings{}, err
	}
	s.publish("reset")
	return s.current, nil
}

func (s *Store) persistLocked(ctx context.Context, next Settings) error {
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode settings record: %w", err)
	}
	if err := s.records.Save(ctx, storage.KeySettings, data); err != nil {
		return err
	}
	s.current = next
	return nil
}

func (s *Store) publish(kind string) {
	if s.changes != nil {
		s.changes.Publish(bus.Change{Source: "settings", Kind: kind})
	}
}
