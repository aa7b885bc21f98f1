// Copyright 2024 Gleb Gorelov. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package datetimeutils provides stateless conversion and query
// operations between absolute instants and timezone-naive local
// date/time values, together with calendar boundary queries, field
// extraction, pattern based formatting and inclusive range membership
// checks. All values are immutable and every operation returns a
// freshly constructed value. Ambient defaults (time zone, locale and
// current time) are resolved at each call, never cached; see Config.
package datetimeutils

import (
	"fmt"
	"time"
)

// Kind distinguishes the three flavours of Instant. A plain instant
// is an ordinary absolute point in time. Time-only and date-only
// instants carry just a wall clock reading or just a calendar date;
// conversions that need exactly that precision read it back directly
// rather than projecting through a time zone.
type Kind int

const (
	KindPlain Kind = iota
	KindTimeOnly
	KindDateOnly
)

func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindTimeOnly:
		return "time-only"
	case KindDateOnly:
		return "date-only"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Instant is an absolute point in time represented as milliseconds
// since the Unix epoch, independent of any time zone, tagged with a
// Kind. Tagged instants store their wall clock reading projected at
// UTC so that it can be recovered without consulting a zone.
// Instants carry no validity notion beyond their numeric range and
// are never mutated after construction.
type Instant struct {
	msec int64
	kind Kind
}

// InstantOf returns the plain Instant for the given time, truncated
// to millisecond precision.
func InstantOf(t time.Time) Instant {
	return Instant{msec: t.UnixMilli()}
}

// InstantOfUnixMilli returns the plain Instant for the given number
// of milliseconds since the Unix epoch.
func InstantOfUnixMilli(msec int64) Instant {
	return Instant{msec: msec}
}

// TimeOnlyInstant returns a time-only Instant carrying the given wall
// clock time. The reading is anchored to the epoch day at UTC.
func TimeOnlyInstant(t LocalTime) Instant {
	when := time.Date(1970, 1, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
	return Instant{msec: when.UnixMilli(), kind: KindTimeOnly}
}

// DateOnlyInstant returns a date-only Instant carrying the given
// calendar date. The reading is anchored to midnight at UTC.
func DateOnlyInstant(d LocalDate) Instant {
	when := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	return Instant{msec: when.UnixMilli(), kind: KindDateOnly}
}

// Kind returns the tag carried by the instant.
func (d Instant) Kind() Kind {
	return d.kind
}

// UnixMilli returns the instant as milliseconds since the Unix epoch.
func (d Instant) UnixMilli() int64 {
	return d.msec
}

// Time returns the instant as a time.Time at UTC. Use Time().In to
// project it into another zone.
func (d Instant) Time() time.Time {
	return time.UnixMilli(d.msec).UTC()
}

// Millisecond returns the sub-second component of the instant in the
// range 0-999.
func (d Instant) Millisecond() int {
	return int(((d.msec % 1000) + 1000) % 1000)
}

// Before returns true if d is strictly before e. The Kind tags are
// ignored for ordering.
func (d Instant) Before(e Instant) bool {
	return d.msec < e.msec
}

// After returns true if d is strictly after e.
func (d Instant) After(e Instant) bool {
	return d.msec > e.msec
}

// Equal returns true if d and e denote the same point in time,
// regardless of their Kind tags.
func (d Instant) Equal(e Instant) bool {
	return d.msec == e.msec
}

func (d Instant) String() string {
	return d.Time().Format("2006-01-02T15:04:05.000Z")
}
