// Copyright 2024 Gleb Gorelov. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetimeutils_test

import (
	"testing"
	"time"

	"github.com/glebfox/datetimeutils"
)

func TestLocalTimeParse(t *testing.T) {
	for _, tc := range []struct {
		val  string
		when datetimeutils.LocalTime
	}{
		{"08:12", newLocalTime(8, 12, 0)},
		{"20:01", newLocalTime(20, 1, 0)},
		{"08:12:13", newLocalTime(8, 12, 13)},
		{"8", newLocalTime(8, 0, 0)},
		{"08:12am", newLocalTime(8, 12, 0)},
		{"08:12pm", newLocalTime(20, 12, 0)},
		{"12:00pm", newLocalTime(12, 0, 0)},
		{"12:00am", newLocalTime(0, 0, 0)},
	} {
		var tod datetimeutils.LocalTime
		if err := tod.Parse(tc.val); err != nil {
			t.Errorf("failed: %v: %v", tc.val, err)
			continue
		}
		if got, want := tod, tc.when; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
	}

	for _, tc := range []string{
		"",
		"08:61",
		"08 16",
		"24:00",
		"13:00am",
		"08:12:13:14",
	} {
		var tod datetimeutils.LocalTime
		if err := tod.Parse(tc); err == nil {
			t.Errorf("failed to return an error: %v", tc)
		}
	}
}

func TestLocalTimeFields(t *testing.T) {
	tod := newLocalTime(13, 45, 59)
	if got, want := tod.Hour(), 13; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := tod.Minute(), 45; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := tod.Second(), 59; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := tod.String(), "13:45:59"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLocalTimeOf(t *testing.T) {
	when := time.Date(2020, 8, 24, 17, 30, 12, 0, time.UTC)
	if got, want := datetimeutils.LocalTimeOf(when), newLocalTime(17, 30, 12); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
