// Copyright 2024 Gleb Gorelov. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetimeutils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// LocalTime represents a wall clock time within a day, with no date
// and no time zone.
type LocalTime uint32

// NewLocalTime creates a new LocalTime from the specified hour, minute and second.
func NewLocalTime(hour, minute, second int) LocalTime {
	return LocalTime(hour<<16 | minute<<8 | second)
}

// LocalTimeOf returns the LocalTime displayed by the given time in
// its location.
func LocalTimeOf(when time.Time) LocalTime {
	return NewLocalTime(when.Hour(), when.Minute(), when.Second())
}

func (t LocalTime) Hour() int {
	return int(t >> 16)
}

func (t LocalTime) Minute() int {
	return int(t >> 8 & 0xff)
}

func (t LocalTime) Second() int {
	return int(t & 0xff)
}

func (t LocalTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

func isDigits(s string) bool {
	for _, c := range s {
		if !unicode.IsNumber(c) {
			return false
		}
	}
	return true
}

func (t *LocalTime) parseHour(h string, ampmState int) (int, error) {
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour: %s", h)
	}
	if ampmState != 0 && hour > 12 {
		return 0, fmt.Errorf("invalid hour: %s with am/pm", h)
	}
	if ampmState == 1 && hour == 12 {
		hour = 0
	}
	if ampmState == 2 && hour < 12 {
		hour += 12
	}
	return hour, nil
}

func (t *LocalTime) parseHourMinuteSec(h, m, s string, ampmState int) error {
	if !isDigits(s) || !isDigits(h) || !isDigits(m) {
		return fmt.Errorf("invalid second: %s", s)
	}
	hour, err := t.parseHour(h, ampmState)
	if err != nil {
		return err
	}
	minute, err := strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return fmt.Errorf("invalid minute: %s", m)
	}
	sec, err := strconv.Atoi(s)
	if err != nil || sec < 0 || sec > 59 {
		return fmt.Errorf("invalid second: %s", s)
	}
	*t = NewLocalTime(hour, minute, sec)
	return nil
}

// Parse val in formats '08[:12[:10]][am|pm]'
func (t *LocalTime) Parse(val string) error {
	if len(val) == 0 {
		return fmt.Errorf("empty value, expected '08[:12][:10][am|pm]'")
	}
	tl := strings.TrimSpace(strings.ToLower(val))
	ampmState := 0
	if strings.HasSuffix(tl, "am") {
		val = strings.TrimSpace(tl[:len(tl)-2])
		ampmState = 1
	}
	if strings.HasSuffix(tl, "pm") {
		val = strings.TrimSpace(tl[:len(tl)-2])
		ampmState = 2
	}
	parts := strings.Split(val, ":")
	switch len(parts) {
	case 1:
		return t.parseHourMinuteSec(parts[0], "0", "0", ampmState)
	case 2:
		return t.parseHourMinuteSec(parts[0], parts[1], "0", ampmState)
	case 3:
		return t.parseHourMinuteSec(parts[0], parts[1], parts[2], ampmState)
	}
	return fmt.Errorf("invalid format, expected '08:12[:10]'")
}
