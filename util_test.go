// Copyright 2024 Gleb Gorelov. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetimeutils_test

import (
	"time"

	"github.com/glebfox/datetimeutils"
	"github.com/glebfox/datetimeutils/locale"
)

func newLocalDate(y, m, d int) datetimeutils.LocalDate {
	return datetimeutils.NewLocalDate(y, datetimeutils.Month(m), d)
}

func newLocalTime(h, m, s int) datetimeutils.LocalTime {
	return datetimeutils.NewLocalTime(h, m, s)
}

func instantAt(y, m, d, h, mi, s int, tz *time.Location) datetimeutils.Instant {
	return datetimeutils.InstantOf(time.Date(y, time.Month(m), d, h, mi, s, 0, tz))
}

// utcConfig pins the ambient zone to UTC so that tests do not depend
// on the timezone of the machine they run on.
func utcConfig() datetimeutils.Config {
	return datetimeutils.Config{
		TZ: func() *time.Location { return time.UTC },
	}
}

var (
	enUS = locale.MustParse("en-US")
	deDE = locale.MustParse("de-DE")
)
