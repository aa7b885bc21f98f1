// Copyright 2024 Gleb Gorelov. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetimeutils

import "time"

// ToLocalTime returns the wall clock time displayed by the instant in
// the given zone. A nil tz selects the default zone. A time-only
// instant already carries exactly the needed precision and its
// reading is returned directly, ignoring tz.
func (c Config) ToLocalTime(d Instant, tz *time.Location) LocalTime {
	if d.Kind() == KindTimeOnly {
		return LocalTimeOf(d.Time())
	}
	return LocalTimeOf(d.Time().In(c.zone(tz)))
}

// ToLocalDate returns the calendar date displayed by the instant in
// the given zone. A nil tz selects the default zone. A date-only
// instant's reading is returned directly, ignoring tz.
func (c Config) ToLocalDate(d Instant, tz *time.Location) LocalDate {
	if d.Kind() == KindDateOnly {
		return LocalDateOf(d.Time())
	}
	return LocalDateOf(d.Time().In(c.zone(tz)))
}

// ToLocalDateTime returns the date and time displayed by the instant
// in the given zone. A nil tz selects the default zone. There is no
// tag shortcut: the instant is always projected through the zone.
func (c Config) ToLocalDateTime(d Instant, tz *time.Location) LocalDateTime {
	return LocalDateTimeOf(d.Time().In(c.zone(tz)))
}

// FromLocalTime returns the instant that displays the given wall
// clock time on the given date in the given zone. A zero date means
// the current date, determined afresh on every call. A nil tz selects
// the default zone.
func (c Config) FromLocalTime(t LocalTime, date LocalDate, tz *time.Location) Instant {
	loc := c.zone(tz)
	if date.IsZero() {
		date = LocalDateOf(c.now().In(loc))
	}
	return InstantOf(time.Date(date.Year, time.Month(date.Month), date.Day, t.Hour(), t.Minute(), t.Second(), 0, loc))
}

// FromLocalDate returns the instant at the start of the given day in
// the given zone. When the zone's rules skip midnight the first valid
// moment of the day is returned, per time.Date. A nil tz selects the
// default zone.
func (c Config) FromLocalDate(d LocalDate, tz *time.Location) Instant {
	return InstantOf(time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, c.zone(tz)))
}

// FromLocalDateTime returns the instant that displays the given wall
// clock reading in the given zone. A nil tz selects the default zone.
func (c Config) FromLocalDateTime(dt LocalDateTime, tz *time.Location) Instant {
	return InstantOf(time.Date(dt.Date.Year, time.Month(dt.Date.Month), dt.Date.Day,
		dt.Time.Hour(), dt.Time.Minute(), dt.Time.Second(), 0, c.zone(tz)))
}

// WithoutTime truncates the instant to the start of its calendar day
// in the default zone. Applying it twice yields the same result as
// applying it once.
func (c Config) WithoutTime(d Instant) Instant {
	return c.FromLocalDate(c.ToLocalDate(d, nil), nil)
}

// ToLocalTime is ToLocalTime on the zero Config.
func ToLocalTime(d Instant, tz *time.Location) LocalTime {
	return Config{}.ToLocalTime(d, tz)
}

// ToLocalDate is ToLocalDate on the zero Config.
func ToLocalDate(d Instant, tz *time.Location) LocalDate {
	return Config{}.ToLocalDate(d, tz)
}

// ToLocalDateTime is ToLocalDateTime on the zero Config.
func ToLocalDateTime(d Instant, tz *time.Location) LocalDateTime {
	return Config{}.ToLocalDateTime(d, tz)
}

// FromLocalTime is FromLocalTime on the zero Config.
func FromLocalTime(t LocalTime, date LocalDate, tz *time.Location) Instant {
	return Config{}.FromLocalTime(t, date, tz)
}

// FromLocalDate is FromLocalDate on the zero Config.
func FromLocalDate(d LocalDate, tz *time.Location) Instant {
	return Config{}.FromLocalDate(d, tz)
}

// FromLocalDateTime is FromLocalDateTime on the zero Config.
func FromLocalDateTime(dt LocalDateTime, tz *time.Location) Instant {
	return Config{}.FromLocalDateTime(dt, tz)
}

// WithoutTime is WithoutTime on the zero Config.
func WithoutTime(d Instant) Instant {
	return Config{}.WithoutTime(d)
}
