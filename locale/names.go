// Copyright 2024 Gleb Gorelov. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package locale

import (
	"time"

	"golang.org/x/text/language"
)

// Style selects the length of a textual name.
type Style int

const (
	Full Style = iota
	Abbreviated
)

// names holds the calendar vocabulary for one language. Weekday
// slices are indexed by time.Weekday, months by time.Month - 1.
type names struct {
	months       [12]string
	monthsAbbr   [12]string
	weekdays     [7]string
	weekdaysAbbr [7]string
	am, pm       string
}

var supported = []language.Tag{
	language.English,
	language.German,
	language.Spanish,
	language.French,
	language.Russian,
}

var matcher = language.NewMatcher(supported)

var bundles = map[language.Tag]*names{
	language.English: {
		months:       [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
		monthsAbbr:   [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		weekdays:     [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		weekdaysAbbr: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		am:           "AM",
		pm:           "PM",
	},
	language.German: {
		months:       [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
		monthsAbbr:   [12]string{"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni", "Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez."},
		weekdays:     [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
		weekdaysAbbr: [7]string{"So.", "Mo.", "Di.", "Mi.", "Do.", "Fr.", "Sa."},
		am:           "AM",
		pm:           "PM",
	},
	language.Spanish: {
		months:       [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
		monthsAbbr:   [12]string{"ene.", "feb.", "mar.", "abr.", "may.", "jun.", "jul.", "ago.", "sept.", "oct.", "nov.", "dic."},
		weekdays:     [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
		weekdaysAbbr: [7]string{"dom.", "lun.", "mar.", "mié.", "jue.", "vie.", "sáb."},
		am:           "a. m.",
		pm:           "p. m.",
	},
	language.French: {
		months:       [12]string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
		monthsAbbr:   [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
		weekdays:     [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
		weekdaysAbbr: [7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
		am:           "AM",
		pm:           "PM",
	},
	language.Russian: {
		months:       [12]string{"январь", "февраль", "март", "апрель", "май", "июнь", "июль", "август", "сентябрь", "октябрь", "ноябрь", "декабрь"},
		monthsAbbr:   [12]string{"янв.", "февр.", "март", "апр.", "май", "июнь", "июль", "авг.", "сент.", "окт.", "нояб.", "дек."},
		weekdays:     [7]string{"воскресенье", "понедельник", "вторник", "среда", "четверг", "пятница", "суббота"},
		weekdaysAbbr: [7]string{"вс", "пн", "вт", "ср", "чт", "пт", "сб"},
		am:           "AM",
		pm:           "PM",
	},
}

func (l Locale) lookup() (*names, bool) {
	_, i, conf := matcher.Match(l.tag)
	if conf == language.No {
		return nil, false
	}
	return bundles[supported[i]], true
}

// MonthName returns the display name for the given month. ok is false
// when the locale has no textual mapping, in which case callers fall
// back to the numeric month value.
func (l Locale) MonthName(m time.Month, style Style) (string, bool) {
	n, ok := l.lookup()
	if !ok {
		return "", false
	}
	if style == Abbreviated {
		return n.monthsAbbr[m-1], true
	}
	return n.months[m-1], true
}

// WeekdayName returns the display name for the given weekday.
func (l Locale) WeekdayName(d time.Weekday, style Style) (string, bool) {
	n, ok := l.lookup()
	if !ok {
		return "", false
	}
	if style == Abbreviated {
		return n.weekdaysAbbr[d], true
	}
	return n.weekdays[d], true
}

// DayPeriods returns the AM and PM markers for the locale.
func (l Locale) DayPeriods() (am, pm string, ok bool) {
	n, ok := l.lookup()
	if !ok {
		return "", "", false
	}
	return n.am, n.pm, true
}
