// Package voice speaks reminders and greetings out loud through the system
// text-to-speech command.
package voice

import (
	"context"
	"fmt"
	"math/rand"
	"os/exec"
	"runtime"
	"strconv"
	"sync"
	"time"
)

// Speaker voices a line of text. Rate is relative to normal speed, 1.0 being
// normal.
type Speaker interface {
	Speak(ctx context.Context, text string, rate float64) error
}

// runCmdFn runs a prepared command. Injectable for tests.
var runCmdFn = func(cmd *exec.Cmd) error { return cmd.Run() }

// baseWPM is the words-per-minute that a relative rate of 1.0 maps to.
const baseWPM = 175

// System speaks through `say` on macOS and `espeak` elsewhere. It is safe for
// concurrent use; speech requests are serialized.
type System struct {
	mu sync.Mutex
}

// NewSystem creates a System speaker.
func NewSystem() *System {
	return &System{}
}

func (s *System) Speak(ctx context.Context, text string, rate float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	wpm := strconv.Itoa(int(rate * baseWPM))
	var cmd *exec.Cmd
	if runtime.GOOS == "darwin" {
		cmd = exec.CommandContext(ctx, "say", "-r", wpm, text)
	} else {
		cmd = exec.CommandContext(ctx, "espeak", "-s", wpm, text)
	}
	if err := runCmdFn(cmd); err != nil {
		return fmt.Errorf("speak: %w", err)
	}
	return nil
}

// Silent says nothing. Used when voice output is disabled in settings.
type Silent struct{}

func (Silent) Speak(context.Context, string, float64) error { return nil }

// Reminder voices a due reminder, slightly slower than normal.
func Reminder(ctx context.Context, s Speaker, title, message string) error {
	text := "Reminder: " + title
	if message != "" {
		text = fmt.Sprintf("Reminder: %s. %s", title, message)
	}
	return s.Speak(ctx, text, 0.9)
}

// TaskComplete celebrates a finished task, a touch faster than normal.
func TaskComplete(ctx context.Context, s Speaker, taskTitle string) error {
	return s.Speak(ctx, "Great job! You completed: "+taskTitle, 1.1)
}

// Welcome greets the user by time of day.
func Welcome(ctx context.Context, s Speaker, now time.Time) error {
	greeting := "Good evening"
	switch hour := now.Hour(); {
	case hour < 12:
		greeting = "Good morning"
	case hour < 17:
		greeting = "Good afternoon"
	}
	return s.Speak(ctx, greeting+"! Welcome to iReminder. How can I help you stay productive today?", 1)
}

var breakLines = []string{
	"Time for a break! Step away from your work and recharge.",
	"Break time! Your mind and body will thank you for taking a moment to rest.",
	"It's time to pause and take a well-deserved break.",
}

// BreakReminder voices one of the canned break nudges.
func BreakReminder(ctx context.Context, s Speaker) error {
	return s.Speak(ctx, breakLines[rand.Intn(len(breakLines))], 0.9)
}
