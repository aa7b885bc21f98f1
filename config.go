// Copyright 2024 Gleb Gorelov. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetimeutils

import (
	"time"

	"github.com/glebfox/datetimeutils/locale"
)

// Config supplies the ambient defaults consulted when an operation is
// called without an explicit zone or locale. Nil fields fall back to
// the process wide configuration: time.Local, locale.System and
// time.Now. The functions are invoked on every call so that changes
// to the process configuration take effect immediately; nothing is
// cached. The zero Config is ready to use and is what the package
// level functions operate on. Tests substitute their own functions
// instead of mutating process state.
type Config struct {
	TZ     func() *time.Location
	Locale func() locale.Locale
	Now    func() time.Time
}

func (c Config) zone(tz *time.Location) *time.Location {
	if tz != nil {
		return tz
	}
	if c.TZ != nil {
		return c.TZ()
	}
	return time.Local
}

func (c Config) locale(loc locale.Locale) locale.Locale {
	if !loc.IsZero() {
		return loc
	}
	if c.Locale != nil {
		return c.Locale()
	}
	return locale.System()
}

func (c Config) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}
