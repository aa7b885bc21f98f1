// Copyright 2024 Gleb Gorelov. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetimeutils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Month as an int, January is 1.
type Month time.Month

var (
	daysInMonth     []int // days in each month
	daysInMonthLeap []int // days in each month of a leap year
	months          = []string{"january", "february", "march", "april", "may", "june", "july", "august", "september", "october", "november", "december"}
)

func daysInMonthForYearInit(year int, month int) int {
	switch month {
	case 2:
		return DaysInFeb(year)
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func init() {
	daysInMonth = make([]int, 12)
	daysInMonthLeap = make([]int, 12)
	for i := 0; i < 12; i++ {
		daysInMonth[i] = daysInMonthForYearInit(2023, i+1)
		daysInMonthLeap[i] = daysInMonthForYearInit(2024, i+1)
	}
}

// ParseNumericMonth parses a 1 or 2 digit numeric month value in the range 1-12.
func ParseNumericMonth(val string) (Month, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, err
	}
	if n < 1 || n > 12 {
		return 0, fmt.Errorf("invalid month: %d", n)
	}
	return Month(n), nil
}

// ParseMonth parses a month name of the form "Jan" to "Dec" or any other longer
// prefixes of "January" to "December" in either lower or upper case.
func ParseMonth(val string) (Month, error) {
	if len(val) == 0 {
		return 0, fmt.Errorf("empty value, expected a month name")
	}
	lc := strings.ToLower(val)
	for i := range months {
		if strings.HasPrefix(months[i], lc) {
			return Month(i + 1), nil
		}
	}
	return 0, fmt.Errorf("invalid month: %s", val)
}

// Parse parses a month in either numeric or month name format.
func (m *Month) Parse(val string) error {
	if n, err := ParseNumericMonth(val); err == nil {
		*m = n
		return nil
	}
	n, err := ParseMonth(val)
	if err != nil {
		return err
	}
	*m = n
	return nil
}

// IsLeap returns true if the given year is a leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	if IsLeap(year) {
		return 29
	}
	return 28
}

// DaysInMonth returns the number of days in the given month for the given year.
func DaysInMonth(year int, month Month) int {
	if IsLeap(year) {
		return daysInMonthLeap[month-1]
	}
	return daysInMonth[month-1]
}

// LocalDate represents a calendar date in the proleptic Gregorian
// calendar with no time of day and no time zone. The fields are
// assumed to describe a valid date; no validation is performed at
// construction and out of range fields are normalized per time.Date
// when the date is converted.
type LocalDate struct {
	Year  int
	Month Month
	Day   int
}

// NewLocalDate returns the LocalDate for the given year, month and day.
func NewLocalDate(year int, month Month, day int) LocalDate {
	return LocalDate{Year: year, Month: month, Day: day}
}

// LocalDateOf returns the LocalDate displayed by the given time in
// its location.
func LocalDateOf(when time.Time) LocalDate {
	return LocalDate{Year: when.Year(), Month: Month(when.Month()), Day: when.Day()}
}

// IsZero returns true for the zero LocalDate.
func (d LocalDate) IsZero() bool {
	return d == LocalDate{}
}

func (d LocalDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Parse a date in the format '2006-01-02'.
func (d *LocalDate) Parse(val string) error {
	parts := strings.Split(val, "-")
	if len(parts) != 3 {
		return fmt.Errorf("invalid date %q, expected format '2006-01-02'", val)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return fmt.Errorf("invalid year: %s", parts[0])
	}
	month, err := ParseNumericMonth(parts[1])
	if err != nil {
		return err
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return fmt.Errorf("invalid day: %s", parts[2])
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return fmt.Errorf("invalid day for %v %v: %d", year, month, day)
	}
	d.Year, d.Month, d.Day = year, month, day
	return nil
}

// AddDays returns the date n days after d, n may be negative.
func (d LocalDate) AddDays(n int) LocalDate {
	return LocalDateOf(time.Date(d.Year, time.Month(d.Month), d.Day+n, 0, 0, 0, 0, time.UTC))
}

// Weekday returns the day of the week for the date.
func (d LocalDate) Weekday() time.Weekday {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

// Before returns true if d is before e.
func (d LocalDate) Before(e LocalDate) bool {
	if d.Year != e.Year {
		return d.Year < e.Year
	}
	if d.Month != e.Month {
		return d.Month < e.Month
	}
	return d.Day < e.Day
}

// LocalDateTime pairs a LocalDate with a LocalTime, with no time zone.
type LocalDateTime struct {
	Date LocalDate
	Time LocalTime
}

// NewLocalDateTime returns the LocalDateTime for the given date and time.
func NewLocalDateTime(date LocalDate, tod LocalTime) LocalDateTime {
	return LocalDateTime{Date: date, Time: tod}
}

// LocalDateTimeOf returns the LocalDateTime displayed by the given
// time in its location.
func LocalDateTimeOf(when time.Time) LocalDateTime {
	return LocalDateTime{Date: LocalDateOf(when), Time: LocalTimeOf(when)}
}

func (dt LocalDateTime) String() string {
	return fmt.Sprintf("%sT%s", dt.Date, dt.Time)
}

// Parse a date-time in the format '2006-01-02T15:04:05'.
func (dt *LocalDateTime) Parse(val string) error {
	parts := strings.SplitN(val, "T", 2)
	if len(parts) != 2 {
		return fmt.Errorf("invalid date-time %q, expected format '2006-01-02T15:04:05'", val)
	}
	var date LocalDate
	if err := date.Parse(parts[0]); err != nil {
		return err
	}
	var tod LocalTime
	if err := tod.Parse(parts[1]); err != nil {
		return err
	}
	dt.Date, dt.Time = date, tod
	return nil
}
