// Package dateutil provides the calendar arithmetic the stores and the
// advisor agree on: calendar-day comparison, overdue checks, and the
// human-readable formats shown in the UI.
package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DayKeyLayout is the canonical calendar-day key used for per-day upserts.
const DayKeyLayout = "2006-01-02"

// DayKey returns the calendar-day key for t in local time.
func DayKey(t time.Time) string {
	return t.Local().Format(DayKeyLayout)
}

// SameDay reports whether a and b fall on the same calendar day in local time.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// IsOverdue reports whether t is strictly before now.
func IsOverdue(t, now time.Time) bool {
	return t.Before(now)
}

// DayStart returns midnight at the start of t's calendar day.
func DayStart(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// FormatDate renders t relative to now: "Today", "Tomorrow", "Yesterday",
// or "Jan 2, 2006" for anything further out.
func FormatDate(t, now time.Time) string {
	switch {
	case SameDay(t, now):
		return "Today"
	case SameDay(t, now.AddDate(0, 0, 1)):
		return "Tomorrow"
	case SameDay(t, now.AddDate(0, 0, -1)):
		return "Yesterday"
	}
	return t.Local().Format("Jan 2, 2006")
}

// FormatTime renders t as a 12-hour clock time, e.g. "3:04 PM".
func FormatTime(t time.Time) string {
	return t.Local().Format("3:04 PM")
}

// FormatDateTime combines FormatDate and FormatTime: "Today at 3:04 PM".
func FormatDateTime(t, now time.Time) string {
	return FormatDate(t, now) + " at " + FormatTime(t)
}

// TimeUntil renders the distance from now to t in the largest whole unit:
// "3 days", "2 hours", "1 minute". Past instants render as "Overdue" and
// sub-minute distances as "Now".
func TimeUntil(t, now time.Time) string {
	diff := t.Sub(now)
	if diff < 0 {
		return "Overdue"
	}

	minutes := int(diff / time.Minute)
	hours := minutes / 60
	days := hours / 24

	switch {
	case days > 0:
		return plural(days, "day")
	case hours > 0:
		return plural(hours, "hour")
	case minutes > 0:
		return plural(minutes, "minute")
	}
	return "Now"
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return strconv.Itoa(n) + " " + unit + "s"
}

// AtTime places a "HH:MM" clock time onto base's calendar day.
func AtTime(base time.Time, hhmm string) (time.Time, error) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("invalid time %q: want HH:MM", hhmm)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return time.Time{}, fmt.Errorf("invalid hour in %q", hhmm)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return time.Time{}, fmt.Errorf("invalid minute in %q", hhmm)
	}
	y, m, d := base.Local().Date()
	return time.Date(y, m, d, hour, minute, 0, 0, base.Location()), nil
}
