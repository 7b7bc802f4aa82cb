package model

import (
	"fmt"
	"time"
)

const (
	kickoffDateFormat  = "2006-01-02"
	kickoffClockFormat = "15:04"

	// KickoffWireFormat is how the backend expects start_time values:
	// UTC with microseconds and a literal Z suffix.
	KickoffWireFormat = "2006-01-02T15:04:05.000000Z"
)

// ParseKickoff converts a wall-clock date and time-of-day in the named IANA
// zone into the corresponding UTC instant, honoring whatever offset and DST
// rules the zone has on that date.
func ParseKickoff(date, clock, zone string) (time.Time, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return time.Time{}, fmt.Errorf("unknown time zone %q: %w", zone, err)
	}

	if _, err := time.Parse(kickoffDateFormat, date); err != nil {
		return time.Time{}, &ParseError{Input: date, Reason: "want YYYY-MM-DD"}
	}
	if _, err := time.Parse(kickoffClockFormat, clock); err != nil {
		return time.Time{}, &ParseError{Input: clock, Reason: "want HH:MM"}
	}

	t, err := time.ParseInLocation(kickoffDateFormat+" "+kickoffClockFormat, date+" "+clock, loc)
	if err != nil {
		return time.Time{}, &ParseError{Input: date + " " + clock, Reason: err.Error()}
	}
	return t.UTC(), nil
}

// FormatKickoff renders an instant in the backend's wire format.
func FormatKickoff(t time.Time) string {
	return t.UTC().Format(KickoffWireFormat)
}
