// Copyright 2024 Gleb Gorelov. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetimeutils

import (
	"time"

	"github.com/jinzhu/now"

	"github.com/glebfox/datetimeutils/locale"
)

func (c Config) weekCalc(d Instant, weekStart time.Weekday) *now.Now {
	tz := c.zone(nil)
	// Resolve the calendar date first so that a date-only instant
	// keeps its reading rather than being projected through the zone.
	date := c.ToLocalDate(d, nil)
	conf := &now.Config{WeekStartDay: weekStart, TimeLocation: tz}
	return conf.With(time.Date(date.Year, time.Month(date.Month), date.Day, 0, 0, 0, 0, tz))
}

// FirstDayOfWeek returns the instant at the start of the day that
// begins the week containing d. The weekday a week begins on is the
// locale's convention: Monday for ISO style locales, Sunday for US
// style ones. A zero loc selects the default locale.
func (c Config) FirstDayOfWeek(d Instant, loc locale.Locale) Instant {
	return InstantOf(c.weekCalc(d, c.locale(loc).FirstDay()).BeginningOfWeek())
}

// LastDayOfWeek returns the instant at the start of the last day of
// the week containing d, ie. FirstDayOfWeek plus six days. A zero loc
// selects the default locale.
func (c Config) LastDayOfWeek(d Instant, loc locale.Locale) Instant {
	first := c.ToLocalDate(c.FirstDayOfWeek(d, loc), nil)
	return c.FromLocalDate(first.AddDays(6), nil)
}

// FirstDayOfMonth returns the instant at the start of day 1 of the
// month containing d.
func (c Config) FirstDayOfMonth(d Instant) Instant {
	return InstantOf(c.weekCalc(d, time.Monday).BeginningOfMonth())
}

// LastDayOfMonth returns the instant at the start of the last day of
// the month containing d, accounting for leap years.
func (c Config) LastDayOfMonth(d Instant) Instant {
	n := c.weekCalc(d, time.Monday)
	return InstantOf(n.Config.With(n.EndOfMonth()).BeginningOfDay())
}

// FirstDayOfWeek is FirstDayOfWeek on the zero Config.
func FirstDayOfWeek(d Instant, loc locale.Locale) Instant {
	return Config{}.FirstDayOfWeek(d, loc)
}

// LastDayOfWeek is LastDayOfWeek on the zero Config.
func LastDayOfWeek(d Instant, loc locale.Locale) Instant {
	return Config{}.LastDayOfWeek(d, loc)
}

// FirstDayOfMonth is FirstDayOfMonth on the zero Config.
func FirstDayOfMonth(d Instant) Instant {
	return Config{}.FirstDayOfMonth(d)
}

// LastDayOfMonth is LastDayOfMonth on the zero Config.
func LastDayOfMonth(d Instant) Instant {
	return Config{}.LastDayOfMonth(d)
}
