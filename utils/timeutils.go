package utils

import (
	"errors"
	"fmt"
	"time"
)

// MinuteUnit is appended to every formatted duration.
const MinuteUnit = "分"

const clockLayout = "15:04"

// ErrInvalidClock is returned when a time token has the HH:MM shape but is
// not a valid wall-clock time.
var ErrInvalidClock = errors.New("invalid clock time")

// ParseClock parses an hour and minute pair into a date-agnostic time.
// The hour may have one or two digits, the minute must have two.
func ParseClock(hour, minute string) (time.Time, error) {
	t, err := time.Parse(clockLayout, hour+":"+minute)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %s:%s: %v", ErrInvalidClock, hour, minute, err)
	}
	return t, nil
}

// ClockDelta returns the elapsed time from one clock reading to another.
// Going back by more than half a day is taken to cross midnight and wraps.
// A smaller step back has no meaningful duration and reports false.
func ClockDelta(from, to time.Time) (time.Duration, bool) {
	d := to.Sub(from)
	if d >= 0 {
		return d, true
	}
	if d <= -12*time.Hour {
		return d + 24*time.Hour, true
	}
	return 0, false
}

// FormatDuration renders a leg duration as "<m>分" below an hour and
// "<h>:<mm>分" otherwise.
func FormatDuration(d time.Duration) string {
	total := int64(d / time.Second)
	mm := (total / 60) % 60
	hh := total / 3600
	if hh == 0 {
		return fmt.Sprintf("%d%s", mm, MinuteUnit)
	}
	return fmt.Sprintf("%d:%02d%s", hh, mm, MinuteUnit)
}
