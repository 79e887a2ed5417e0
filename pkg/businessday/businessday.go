// Package businessday computes the instants at which a "business day" begins.
// A business day starts at local midnight of a named timezone shifted by a signed
// offset, so it rarely lines up with a UTC calendar date.
package businessday

import (
	"time"
	// distroless images ship without a zoneinfo database.
	_ "time/tzdata"
)

// MaxOffsetSeconds bounds the accepted reset offset in both directions.
const MaxOffsetSeconds = 24 * 60 * 60

// Location resolves an IANA timezone name. Unknown or empty names resolve to UTC
// and ok is false.
func Location(name string) (loc *time.Location, ok bool) {
	if name == "" {
		return time.UTC, false
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC, false
	}

	return loc, true
}

// Start returns the UTC instant at which the business day containing now began,
// for the timezone called name and a reset offset of offsetSeconds past local midnight.
func Start(name string, offsetSeconds int, now time.Time) time.Time {
	loc, _ := Location(name)

	return start(loc, clamp(offsetSeconds), now)
}

// start shifts now back by the offset to find the logical local date, anchors on
// midnight of that date, then restores the offset to get the actual reset instant.
func start(loc *time.Location, offset time.Duration, now time.Time) time.Time {
	y, m, d := now.In(loc).Add(-offset).Date()

	return time.Date(y, m, d, 0, 0, 0, 0, loc).Add(offset).UTC()
}

func next(loc *time.Location, offset time.Duration, now time.Time) time.Time {
	y, m, d := now.In(loc).Add(-offset).Date()

	return time.Date(y, m, d+1, 0, 0, 0, 0, loc).Add(offset).UTC()
}

func clamp(offsetSeconds int) time.Duration {
	switch {
	case offsetSeconds > MaxOffsetSeconds:
		offsetSeconds = MaxOffsetSeconds
	case offsetSeconds < -MaxOffsetSeconds:
		offsetSeconds = -MaxOffsetSeconds
	}

	return time.Duration(offsetSeconds) * time.Second
}

// Calendar is a resolved timezone and reset offset. It is immutable and safe for
// concurrent use.
type Calendar struct {
	loc    *time.Location
	offset time.Duration
}

// NewCalendar resolves the timezone once. When the name is unknown the calendar
// falls back to UTC and ok is false so callers can report the misconfiguration.
func NewCalendar(name string, offsetSeconds int) (cal Calendar, ok bool) {
	loc, ok := Location(name)

	return Calendar{loc: loc, offset: clamp(offsetSeconds)}, ok
}

// Start returns the UTC start of the business day containing now.
func (c Calendar) Start(now time.Time) time.Time {
	return start(c.location(), c.offset, now)
}

// Next returns the UTC start of the business day following the one containing now.
func (c Calendar) Next(now time.Time) time.Time {
	return next(c.location(), c.offset, now)
}

// Location returns the resolved timezone.
func (c Calendar) Location() *time.Location {
	return c.location()
}

// Offset returns the reset offset past local midnight.
func (c Calendar) Offset() time.Duration {
	return c.offset
}

func (c Calendar) location() *time.Location {
	if c.loc == nil {
		return time.UTC
	}

	return c.loc
}
