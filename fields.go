// Copyright 2024 Gleb Gorelov. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetimeutils

import (
	"strconv"
	"time"

	"github.com/glebfox/datetimeutils/locale"
)

// MonthName returns the display name of the instant's month, such as
// "January" or "Jan" depending on style. A zero loc selects the
// default locale. When the locale has no textual mapping the numeric
// month value is returned as a string.
func (c Config) MonthName(d Instant, style locale.Style, loc locale.Locale) string {
	month := c.ToLocalDate(d, nil).Month
	if name, ok := c.locale(loc).MonthName(time.Month(month), style); ok {
		return name
	}
	return strconv.Itoa(int(month))
}

// DayOfMonth returns the day of the month for the instant, from 1 to 31.
func (c Config) DayOfMonth(d Instant) int {
	return c.ToLocalDate(d, nil).Day
}

// Year returns the year for the instant.
func (c Config) Year(d Instant) int {
	return c.ToLocalDate(d, nil).Year
}

// DayOfWeek returns the day of the week for the instant, numbered
// following ISO 8601 from 1 (Monday) to 7 (Sunday). The numbering
// does not depend on any locale.
func (c Config) DayOfWeek(d Instant) int {
	wd := c.ToLocalDate(d, nil).Weekday()
	if wd == time.Sunday {
		return 7
	}
	return int(wd)
}

// MonthName is MonthName on the zero Config.
func MonthName(d Instant, style locale.Style, loc locale.Locale) string {
	return Config{}.MonthName(d, style, loc)
}

// DayOfMonth is DayOfMonth on the zero Config.
func DayOfMonth(d Instant) int {
	return Config{}.DayOfMonth(d)
}

// Year is Year on the zero Config.
func Year(d Instant) int {
	return Config{}.Year(d)
}

// DayOfWeek is DayOfWeek on the zero Config.
func DayOfWeek(d Instant) int {
	return Config{}.DayOfWeek(d)
}
