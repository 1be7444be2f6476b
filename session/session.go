// Package session gates decisions to a trading-venue time-of-day window.
// Timestamps are compared as-is: the feed is responsible for delivering bars
// in the venue's timezone, and no conversion happens here.
package session

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time within a day.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// Parse reads "HH:MM" or "HH:MM:SS".
func Parse(s string) (TimeOfDay, error) {
	var td TimeOfDay
	switch len(s) {
	case 5:
		if _, err := fmt.Sscanf(s, "%02d:%02d", &td.Hour, &td.Minute); err != nil {
			return TimeOfDay{}, fmt.Errorf("invalid time of day %q: %w", s, err)
		}
	case 8:
		if _, err := fmt.Sscanf(s, "%02d:%02d:%02d", &td.Hour, &td.Minute, &td.Second); err != nil {
			return TimeOfDay{}, fmt.Errorf("invalid time of day %q: %w", s, err)
		}
	default:
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: want HH:MM or HH:MM:SS", s)
	}
	if td.Hour < 0 || td.Hour > 23 || td.Minute < 0 || td.Minute > 59 || td.Second < 0 || td.Second > 59 {
		return TimeOfDay{}, fmt.Errorf("time of day %q out of range", s)
	}
	return td, nil
}

// MustParse is Parse for literals in configuration defaults.
func MustParse(s string) TimeOfDay {
	td, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return td
}

func (td TimeOfDay) Seconds() int {
	return td.Hour*3600 + td.Minute*60 + td.Second
}

func (td TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", td.Hour, td.Minute, td.Second)
}

// Window is a trading session with inclusive bounds. Start must not be after
// End; overnight wrap is not supported.
type Window struct {
	Start TimeOfDay
	End   TimeOfDay
}

// Contains reports whether t's time-of-day falls inside the window. Both
// bounds are in-session; one second outside either bound is not.
func (w Window) Contains(t time.Time) bool {
	sec := t.Hour()*3600 + t.Minute()*60 + t.Second()
	return sec >= w.Start.Seconds() && sec <= w.End.Seconds()
}

// Valid reports whether the window is well-formed.
func (w Window) Valid() bool {
	return w.Start.Seconds() <= w.End.Seconds()
}
