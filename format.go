// Copyright 2024 Gleb Gorelov. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetimeutils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/glebfox/datetimeutils/locale"
)

// ErrInvalidPattern is returned by Format for malformed patterns.
var ErrInvalidPattern = errors.New("invalid format pattern")

var english = locale.MustParse("en")

// Format renders the instant's wall clock representation in the
// default zone according to a date pattern. Pattern letters denote
// fields:
//
//	y  year         M  month         d  day of month
//	H  hour (0-23)  h  hour (1-12)   m  minute
//	s  second       S  millisecond   E  day of week name
//	a  AM/PM marker
//
// A letter repeated n times selects the field width; three 'M' or
// fewer than four 'E' select abbreviated names, more select full
// names. Text enclosed in single quotes is copied verbatim and ''
// produces a single quote. Any other ASCII letter is reserved and
// yields an error wrapping ErrInvalidPattern, as does an unterminated
// quote. A zero loc selects the default locale, which governs month
// and day names and the AM/PM markers.
func (c Config) Format(d Instant, pattern string, loc locale.Locale) (string, error) {
	dt := c.ToLocalDateTime(d, nil)
	l := c.locale(loc)
	var out strings.Builder
	for i := 0; i < len(pattern); {
		ch := pattern[i]
		switch {
		case ch == '\'':
			literal, n, err := consumeQuoted(pattern[i:])
			if err != nil {
				return "", err
			}
			out.WriteString(literal)
			i += n
		case isPatternLetter(ch):
			j := i + 1
			for j < len(pattern) && pattern[j] == ch {
				j++
			}
			if err := appendField(&out, ch, j-i, d, dt, l); err != nil {
				return "", err
			}
			i = j
		default:
			out.WriteByte(ch)
			i++
		}
	}
	return out.String(), nil
}

// Format is Format on the zero Config.
func Format(d Instant, pattern string, loc locale.Locale) (string, error) {
	return Config{}.Format(d, pattern, loc)
}

func isPatternLetter(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

func consumeQuoted(s string) (string, int, error) {
	if len(s) >= 2 && s[1] == '\'' {
		return "'", 2, nil
	}
	var b strings.Builder
	for i := 1; i < len(s); i++ {
		if s[i] != '\'' {
			b.WriteByte(s[i])
			continue
		}
		if i+1 < len(s) && s[i+1] == '\'' {
			b.WriteByte('\'')
			i++
			continue
		}
		return b.String(), i + 1, nil
	}
	return "", 0, fmt.Errorf("%w: unterminated quote", ErrInvalidPattern)
}

func appendField(out *strings.Builder, ch byte, count int, d Instant, dt LocalDateTime, l locale.Locale) error {
	switch ch {
	case 'y':
		year := dt.Date.Year
		if count == 2 {
			fmt.Fprintf(out, "%02d", ((year%100)+100)%100)
			return nil
		}
		fmt.Fprintf(out, "%0*d", count, year)
	case 'M':
		if count >= 3 {
			style := locale.Abbreviated
			if count >= 4 {
				style = locale.Full
			}
			out.WriteString(monthDisplayName(time.Month(dt.Date.Month), style, l))
			return nil
		}
		fmt.Fprintf(out, "%0*d", count, int(dt.Date.Month))
	case 'd':
		fmt.Fprintf(out, "%0*d", count, dt.Date.Day)
	case 'H':
		fmt.Fprintf(out, "%0*d", count, dt.Time.Hour())
	case 'h':
		hour := dt.Time.Hour() % 12
		if hour == 0 {
			hour = 12
		}
		fmt.Fprintf(out, "%0*d", count, hour)
	case 'm':
		fmt.Fprintf(out, "%0*d", count, dt.Time.Minute())
	case 's':
		fmt.Fprintf(out, "%0*d", count, dt.Time.Second())
	case 'S':
		fmt.Fprintf(out, "%0*d", count, d.Millisecond())
	case 'E':
		style := locale.Abbreviated
		if count >= 4 {
			style = locale.Full
		}
		name, ok := l.WeekdayName(dt.Date.Weekday(), style)
		if !ok {
			name, _ = english.WeekdayName(dt.Date.Weekday(), style)
		}
		out.WriteString(name)
	case 'a':
		am, pm, ok := l.DayPeriods()
		if !ok {
			am, pm, _ = english.DayPeriods()
		}
		if dt.Time.Hour() < 12 {
			out.WriteString(am)
			return nil
		}
		out.WriteString(pm)
	default:
		return fmt.Errorf("%w: unknown pattern letter %q", ErrInvalidPattern, string(ch))
	}
	return nil
}

func monthDisplayName(m time.Month, style locale.Style, l locale.Locale) string {
	if name, ok := l.MonthName(m, style); ok {
		return name
	}
	name, _ := english.MonthName(m, style)
	return name
}
