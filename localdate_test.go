// Copyright 2024 Gleb Gorelov. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetimeutils_test

import (
	"testing"
	"time"

	"github.com/glebfox/datetimeutils"
)

func TestMonthParse(t *testing.T) {
	for _, tc := range []struct {
		val   string
		month datetimeutils.Month
	}{
		{"01", 1},
		{"1", 1},
		{"Jan", 1},
		{"jan", 1},
		{"JANUARY", 1},
		{"Dec", 12},
	} {
		var m datetimeutils.Month
		if err := m.Parse(tc.val); err != nil {
			t.Errorf("failed: %v: %v", tc.val, err)
			continue
		}
		if got, want := m, tc.month; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
	}

	for _, tc := range []string{"", "13", "0", "Janissary", "Mars"} {
		var m datetimeutils.Month
		if err := m.Parse(tc); err == nil {
			t.Errorf("failed to return an error: %v", tc)
		}
	}

	// An empty name must not match as a prefix of January.
	if _, err := datetimeutils.ParseMonth(""); err == nil {
		t.Errorf("failed to return an error for an empty month name")
	}
}

func TestDaysInMonth(t *testing.T) {
	for _, tc := range []struct {
		year, month, days int
	}{
		{2015, 2, 28},
		{2016, 2, 29},
		{2020, 2, 29},
		{2021, 2, 28},
		{2000, 2, 29},
		{1900, 2, 28},
		{2021, 1, 31},
		{2021, 4, 30},
		{2021, 12, 31},
	} {
		if got, want := datetimeutils.DaysInMonth(tc.year, datetimeutils.Month(tc.month)), tc.days; got != want {
			t.Errorf("%v/%v: got %v, want %v", tc.year, tc.month, got, want)
		}
	}
}

func TestLocalDateParse(t *testing.T) {
	for _, tc := range []struct {
		val  string
		when datetimeutils.LocalDate
	}{
		{"2020-02-29", newLocalDate(2020, 2, 29)},
		{"2001-07-04", newLocalDate(2001, 7, 4)},
		{"1969-12-31", newLocalDate(1969, 12, 31)},
	} {
		var d datetimeutils.LocalDate
		if err := d.Parse(tc.val); err != nil {
			t.Errorf("failed: %v: %v", tc.val, err)
			continue
		}
		if got, want := d, tc.when; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
		if got, want := d.String(), tc.val; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}

	for _, tc := range []string{
		"",
		"2020-02-30",
		"2021-02-29",
		"2020-13-01",
		"2020-00-01",
		"2020/01/01",
		"01-02",
	} {
		var d datetimeutils.LocalDate
		if err := d.Parse(tc); err == nil {
			t.Errorf("failed to return an error: %v", tc)
		}
	}
}

func TestLocalDateAddDays(t *testing.T) {
	nd := newLocalDate
	for _, tc := range []struct {
		date datetimeutils.LocalDate
		n    int
		want datetimeutils.LocalDate
	}{
		{nd(2020, 2, 28), 1, nd(2020, 2, 29)},
		{nd(2021, 2, 28), 1, nd(2021, 3, 1)},
		{nd(2020, 12, 31), 1, nd(2021, 1, 1)},
		{nd(2020, 1, 1), -1, nd(2019, 12, 31)},
		{nd(2020, 2, 3), 6, nd(2020, 2, 9)},
	} {
		if got, want := tc.date.AddDays(tc.n), tc.want; got != want {
			t.Errorf("%v + %v: got %v, want %v", tc.date, tc.n, got, want)
		}
	}
}

func TestLocalDateWeekday(t *testing.T) {
	if got, want := newLocalDate(2020, 8, 24).Weekday(), time.Monday; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := newLocalDate(2020, 2, 9).Weekday(), time.Sunday; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLocalDateTimeParse(t *testing.T) {
	var dt datetimeutils.LocalDateTime
	if err := dt.Parse("2001-07-04T12:08:56"); err != nil {
		t.Fatalf("failed: %v", err)
	}
	want := datetimeutils.NewLocalDateTime(newLocalDate(2001, 7, 4), newLocalTime(12, 8, 56))
	if got := dt; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := dt.String(), "2001-07-04T12:08:56"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	for _, tc := range []string{"", "2001-07-04", "2001-07-04 12:08:56", "2001-07-04T25:00:00"} {
		var dt datetimeutils.LocalDateTime
		if err := dt.Parse(tc); err == nil {
			t.Errorf("failed to return an error: %v", tc)
		}
	}
}
