// Package app runs the companion loop that:
// - Polls the task store every 30 seconds for due reminders
// - Delivers desktop notifications and voice announcements for them
// - Nudges for breaks on the configured interval inside working hours
// - Keeps the current coaching suggestion fresh as stores change
package app

import (
	"context"
	"log"
	"sync"
	"time"

	"ireminder/pkg/advisor"
	"ireminder/pkg/bus"
	"ireminder/pkg/dateutil"
	"ireminder/pkg/notify"
	"ireminder/pkg/settings"
	"ireminder/pkg/task"
	"ireminder/pkg/voice"
	"ireminder/pkg/wellness"
)

// App wires the stores, the advisor, and the delivery channels together.
type App struct {
	Tasks    *task.Store
	Wellness *wellness.Store
	Settings *settings.Store
	Advisor  *advisor.Engine
	Changes  *bus.Bus

	desktop notify.Notifier
	speaker voice.Speaker

	mu          sync.Mutex
	suggestion  advisor.Recommendation
	notifiedDue map[string]bool
}

// New creates an App.
func New(tasks *task.Store, well *wellness.Store, prefs *settings.Store, changes *bus.Bus) *App {
	return &App{
		Tasks:    tasks,
		Wellness: well,
		Settings: prefs,
		Advisor:  advisor.NewEngine(),
		Changes:  changes,
		desktop:     notify.Desktop{},
		speaker:     voice.NewSystem(),
		notifiedDue: make(map[string]bool),
	}
}

// Run dispatches reminders and break nudges until ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	log.Println("app: running, watching for due reminders")

	// Catch up immediately on startup
	a.poll(ctx)
	a.refreshSuggestion()

	changes := a.Changes.Subscribe()
	defer a.Changes.Unsubscribe(changes)

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("app: shutting down")
			return
		case <-changes:
			a.refreshSuggestion()
		case <-ticker.C:
			a.poll(ctx)
			a.refreshSuggestion()
		}
	}
}

// poll dispatches every due reminder and, when the interval has elapsed
// inside working hours, a break nudge.
func (a *App) poll(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("app: panic in poll: %v", r)
		}
	}()

	a.dispatchDueReminders(ctx)
	a.dispatchDueTasks(ctx)
	a.maybeNudgeBreak(ctx)
}

// dispatchDueReminders notifies and voices each due reminder, then completes
// it — recurring reminders roll forward to their next occurrence.
func (a *App) dispatchDueReminders(ctx context.Context) {
	prefs := a.Settings.Get()

	for _, r := range a.Tasks.DueReminders() {
		log.Printf("app: reminder due: %s", r.Title)

		if err := notify.Reminder(ctx, a.notifier(prefs), r.Title, r.Message, r.ID); err != nil {
			log.Printf("app: notify reminder %s: %v", r.ID, err)
		}
		if err := voice.Reminder(ctx, a.speakerFor(prefs), r.Title, r.Message); err != nil {
			log.Printf("app: speak reminder %s: %v", r.ID, err)
		}
		if _, err := a.Tasks.CompleteReminder(ctx, r.ID); err != nil {
			log.Printf("app: complete reminder %s: %v", r.ID, err)
		}
	}
}

// dispatchDueTasks notifies once for each open task whose due time on today's
// date has passed.
func (a *App) dispatchDueTasks(ctx context.Context) {
	prefs := a.Settings.Get()
	now := time.Now()

	for _, t := range a.Tasks.TasksByDate(now) {
		if t.Completed || t.DueTime == "" || a.notifiedDue[t.ID] {
			continue
		}
		dueAt, err := dateutil.AtTime(*t.DueDate, t.DueTime)
		if err != nil {
			log.Printf("app: task %s due time: %v", t.ID, err)
			continue
		}
		if now.Before(dueAt) {
			continue
		}

		log.Printf("app: task due: %s", t.Title)
		if err := notify.TaskDue(ctx, a.notifier(prefs), t.Title, dateutil.FormatDateTime(dueAt, now)); err != nil {
			log.Printf("app: notify task due %s: %v", t.ID, err)
		}
		a.notifiedDue[t.ID] = true
	}
}

// maybeNudgeBreak sends a break nudge when break reminders are on, the
// configured interval has elapsed since the last break, and the current time
// falls inside working hours. The nudge itself resets the interval so the
// user is not renudged every poll.
func (a *App) maybeNudgeBreak(ctx context.Context) {
	prefs := a.Settings.Get()
	if !prefs.BreakReminders {
		return
	}

	now := time.Now()
	if !withinWorkingHours(now, prefs.WorkingHours) {
		return
	}

	elapsed := time.Duration(prefs.BreakInterval) * time.Minute
	if last := a.Wellness.LastBreakTime(); last != nil && now.Sub(*last) < elapsed {
		return
	}

	log.Println("app: break interval elapsed, nudging")
	if err := notify.BreakTime(ctx, a.notifier(prefs)); err != nil {
		log.Printf("app: notify break: %v", err)
	}
	if err := voice.BreakReminder(ctx, a.speaker); err != nil {
		log.Printf("app: speak break: %v", err)
	}
	if err := a.Wellness.UpdateLastBreakTime(ctx); err != nil {
		log.Printf("app: record break nudge: %v", err)
	}
}

func withinWorkingHours(now time.Time, hours settings.WorkingHours) bool {
	start, err := dateutil.AtTime(now, hours.Start)
	if err != nil {
		return true
	}
	end, err := dateutil.AtTime(now, hours.End)
	if err != nil {
		return true
	}
	return !now.Before(start) && now.Before(end)
}

// notifier returns the real notifier, or a discard when notifications are
// disabled in settings.
func (a *App) notifier(prefs settings.Settings) notify.Notifier {
	if !prefs.Notifications {
		return notify.Discard{}
	}
	return a.desktop
}

// speakerFor returns the real speaker, or a silent one when voice output is
// disabled in settings.
func (a *App) speakerFor(prefs settings.Settings) voice.Speaker {
	if !prefs.VoiceOutput {
		return voice.Silent{}
	}
	return a.speaker
}

func (a *App) refreshSuggestion() {
	rec := a.Advisor.Suggest(a.Tasks.Tasks(), a.Wellness.LastBreakTime())

	a.mu.Lock()
	a.suggestion = rec
	a.mu.Unlock()
}

// Suggestion returns the current coaching suggestion, refreshed by the run
// loop as stores change.
func (a *App) Suggestion() advisor.Recommendation {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.suggestion
}

// WellnessAdvice derives advice from today's check-in, or praise defaults
// when no entry exists yet.
func (a *App) WellnessAdvice() advisor.Recommendation {
	entry, err := a.Wellness.EntryFor(time.Now())
	if err != nil {
		return a.Advisor.Wellness(3, 3, 3)
	}
	return a.Advisor.Wellness(entry.Mood, entry.Energy, entry.Stress)
}

// FocusAdvice derives advice from today's productivity stats.
func (a *App) FocusAdvice() advisor.Recommendation {
	stats, err := a.Wellness.StatsFor(time.Now())
	if err != nil {
		return a.Advisor.Focus(0, 0)
	}
	return a.Advisor.Focus(stats.TasksCompleted, stats.TotalTasks)
}

// AnnounceCompletion voices a just-completed task when voice output is on.
func (a *App) AnnounceCompletion(ctx context.Context, t task.Task) {
	if err := voice.TaskComplete(ctx, a.speakerFor(a.Settings.Get()), t.Title); err != nil {
		log.Printf("app: announce completion: %v", err)
	}
}

// Welcome greets the user on startup and shows the day's motivational quote.
func (a *App) Welcome(ctx context.Context) {
	prefs := a.Settings.Get()
	if err := voice.Welcome(ctx, a.speakerFor(prefs), time.Now()); err != nil {
		log.Printf("app: welcome: %v", err)
	}
	if err := notify.Motivation(ctx, a.notifier(prefs), a.Advisor.MotivationalQuote()); err != nil {
		log.Printf("app: motivation: %v", err)
	}
}
