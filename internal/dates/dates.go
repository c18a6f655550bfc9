// Package dates anchors all calendar arithmetic to a single named timezone.
// The club's "day" is always its home zone's day, independent of where this
// code runs, so every derived value goes through a Resolver rather than the
// host-local clock.
package dates

import (
	"fmt"
	"sync"
	"time"
)

// ISOLayout defines the canonical date format (YYYY-MM-DD).
const ISOLayout = "2006-01-02"

// DefaultZone is the franchise's home timezone.
const DefaultZone = "America/Los_Angeles"

// Style selects a display format for a Date.
type Style int

const (
	StyleISO Style = iota
	StyleDisplay
	StyleShort
	StyleMonthTitle
)

// Date is a civil year-month-day triple. It carries no timezone of its own;
// interpretation as an instant always goes through a Resolver.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseISO parses a YYYY-MM-DD string into a Date.
func ParseISO(value string) (Date, error) {
	t, err := time.Parse(ISOLayout, value)
	if err != nil {
		return Date{}, err
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// ISO formats the date as YYYY-MM-DD.
func (d Date) ISO() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Shift returns the date n calendar days away. Arithmetic is done on the
// calendar itself (noon-anchored to stay clear of DST boundary effects), so
// a transition day is neither skipped nor repeated.
func (d Date) Shift(n int) Date {
	t := time.Date(d.Year, d.Month, d.Day+n, 12, 0, 0, 0, time.UTC)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Weekday returns the calendar weekday of the date.
func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC).Weekday()
}

// Before reports whether d falls earlier on the calendar than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// MonthBounds returns the first and last days of the date's month.
func MonthBounds(d Date) (Date, Date) {
	first := Date{Year: d.Year, Month: d.Month, Day: 1}
	last := first.Shift(daysIn(d.Year, d.Month) - 1)
	return first, last
}

func daysIn(year int, month time.Month) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 12, 0, 0, 0, time.UTC).Day()
}

// Resolver converts instants to civil dates in one fixed zone and formats
// them. UTC offsets are cached per date since calendar rendering hits the
// same dates repeatedly.
type Resolver struct {
	loc *time.Location

	mu      sync.Mutex
	offsets map[Date]int
}

// NewResolver builds a Resolver for a named IANA zone. An empty name uses
// the default franchise zone.
func NewResolver(zone string) (*Resolver, error) {
	if zone == "" {
		zone = DefaultZone
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("dates: load zone %q: %w", zone, err)
	}
	return &Resolver{
		loc:     loc,
		offsets: make(map[Date]int),
	}, nil
}

// Location exposes the anchor zone.
func (r *Resolver) Location() *time.Location {
	return r.loc
}

// Resolve returns the civil date of the instant in the anchor zone.
func (r *Resolver) Resolve(instant time.Time) Date {
	local := instant.In(r.loc)
	return Date{Year: local.Year(), Month: local.Month(), Day: local.Day()}
}

// StartOfDay returns the instant at which the civil date begins in the
// anchor zone. On a DST transition day this is still the zone's actual
// midnight, whatever offset applies.
func (r *Resolver) StartOfDay(d Date) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, r.loc)
}

// EndOfDay returns the last instant before the next civil day begins.
func (r *Resolver) EndOfDay(d Date) time.Time {
	next := d.Shift(1)
	return r.StartOfDay(next).Add(-time.Nanosecond)
}

// Offset returns the zone's UTC offset in seconds for the given date,
// sampled at noon to land on the date's steady-state offset.
func (r *Resolver) Offset(d Date) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if off, ok := r.offsets[d]; ok {
		return off
	}
	_, off := time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, r.loc).Zone()
	r.offsets[d] = off
	return off
}

// Format renders the date in the requested style. Output depends only on
// the date and the anchor zone, never on the host timezone.
func (r *Resolver) Format(d Date, style Style) string {
	anchor := time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, r.loc)
	switch style {
	case StyleDisplay:
		return anchor.Format("Monday, January 2, 2006")
	case StyleShort:
		return anchor.Format("Jan 2")
	case StyleMonthTitle:
		return anchor.Format("January 2006")
	default:
		return d.ISO()
	}
}
