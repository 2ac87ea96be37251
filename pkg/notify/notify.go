// Package notify delivers desktop notifications for due reminders, due
// tasks, break nudges, and motivational messages.
package notify

import (
	"context"
	"fmt"
	"os/exec"
)

// Notifier shows a notification to the user. RequestPermission reports
// whether notifications may be shown at all; a refusal is not an error, the
// notification is simply withheld. Tag deduplicates repeated notifications of
// the same kind; requireInteraction asks the desktop to keep the notification
// up until dismissed.
type Notifier interface {
	RequestPermission(ctx context.Context) bool
	Show(ctx context.Context, title, body, tag string, requireInteraction bool) error
}

// runCmdFn runs a prepared command. Injectable for tests.
var runCmdFn = func(cmd *exec.Cmd) error { return cmd.Run() }

// Desktop sends notifications through notify-send.
type Desktop struct{}

// RequestPermission always grants: notify-send needs no user consent.
func (Desktop) RequestPermission(context.Context) bool { return true }

func (Desktop) Show(ctx context.Context, title, body, tag string, requireInteraction bool) error {
	args := []string{"--app-name", "iReminder"}
	if tag != "" {
		args = append(args, "--hint", "string:x-canonical-private-synchronous:"+tag)
	}
	if requireInteraction {
		args = append(args, "--urgency", "critical")
	}
	args = append(args, title, body)

	cmd := exec.CommandContext(ctx, "notify-send", args...)
	if err := runCmdFn(cmd); err != nil {
		return fmt.Errorf("notify-send: %w", err)
	}
	return nil
}

// Discard refuses permission and drops every notification. Used when
// notifications are disabled in settings.
type Discard struct{}

func (Discard) RequestPermission(context.Context) bool { return false }

func (Discard) Show(context.Context, string, string, string, bool) error { return nil }

// show withholds the notification when permission is refused.
func show(ctx context.Context, n Notifier, title, body, tag string, requireInteraction bool) error {
	if !n.RequestPermission(ctx) {
		return nil
	}
	return n.Show(ctx, title, body, tag, requireInteraction)
}

// Reminder shows a due reminder. It stays up until dismissed so the user can
// act on it.
func Reminder(ctx context.Context, n Notifier, title, message, reminderID string) error {
	return show(ctx, n, "⏰ "+title, message, "reminder-"+reminderID, true)
}

// TaskDue shows that a task has reached its due time.
func TaskDue(ctx context.Context, n Notifier, taskTitle, dueTime string) error {
	body := fmt.Sprintf("%q is due %s", taskTitle, dueTime)
	return show(ctx, n, "📋 Task Due", body, "task-due", false)
}

// BreakTime nudges the user to take a break.
func BreakTime(ctx context.Context, n Notifier) error {
	return show(ctx, n, "🧘 Break Time", "Time to take a break and recharge!", "break-reminder", false)
}

// Motivation shows a motivational message.
func Motivation(ctx context.Context, n Notifier, message string) error {
	return show(ctx, n, "✨ Stay Motivated", message, "motivation", false)
}
