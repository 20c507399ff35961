// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package gnsstime provides calendar date, time of day and date-time values
// together with conversions between the calendar and the time references
// used in satellite navigation and general timestamping: GPS and BeiDou
// week/seconds-of-week, GPS and BeiDou seconds, fractional day of year,
// Julian and Modified Julian dates and Unix timestamps.
//
// All values lie on a single continuous UTC time line on which leap seconds
// are not modeled. The offsets between UTC, GPS time and BeiDou time are
// fixed constants.
package gnsstime

import (
	"cmp"
	"fmt"

	"cloudeng.io/datetime"
)

// Month as an int, 1 for January through 12 for December.
type Month = datetime.Month

// IsLeap returns true if the given year is a leap year in the proleptic
// Gregorian calendar.
func IsLeap(year int) bool {
	return datetime.IsLeap(year)
}

// DaysInMonth returns the number of days in the given month for the given
// year, or zero if month is not in the range 1-12.
func DaysInMonth(year int, month Month) int {
	if month < 1 || month > 12 {
		return 0
	}
	return int(datetime.DaysInMonth(year, month))
}

// CalendarDate represents a day in the proleptic Gregorian calendar. It is
// stored as the number of days since 1970-01-01 and hence the zero value
// is 1970-01-01. CalendarDate values are comparable.
type CalendarDate struct {
	days int64
}

// NewCalendarDate returns the CalendarDate for the specified year, month
// and day. It returns an error that matches ErrInvalidDate if the triple
// is not a calendar day, eg. February 30.
func NewCalendarDate(year int, month Month, day int) (CalendarDate, error) {
	if day < 1 || day > DaysInMonth(year, month) {
		return CalendarDate{}, invalidDate(year, month, day)
	}
	return CalendarDate{days: daysFromCivil(int64(year), int64(month), int64(day))}, nil
}

// MustNewCalendarDate is like NewCalendarDate but panics on an invalid date.
func MustNewCalendarDate(year int, month Month, day int) CalendarDate {
	cd, err := NewCalendarDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return cd
}

// CalendarDateFromDays returns the CalendarDate that is the specified number
// of days from 1970-01-01.
func CalendarDateFromDays(days int64) CalendarDate {
	return CalendarDate{days: days}
}

// DaysSinceEpoch returns the number of days since 1970-01-01, negative
// for earlier dates.
func (cd CalendarDate) DaysSinceEpoch() int64 {
	return cd.days
}

// Date returns the year, month and day.
func (cd CalendarDate) Date() (year int, month Month, day int) {
	y, m, d := civilFromDays(cd.days)
	return int(y), Month(m), int(d)
}

func (cd CalendarDate) Year() int {
	y, _, _ := cd.Date()
	return y
}

func (cd CalendarDate) Month() Month {
	_, m, _ := cd.Date()
	return m
}

func (cd CalendarDate) Day() int {
	_, _, d := cd.Date()
	return d
}

// SetYear replaces the year. The date is left unchanged and an error
// returned if the result is not a calendar day, eg. setting the year
// of February 29 to a non-leap year.
func (cd *CalendarDate) SetYear(year int) error {
	_, m, d := cd.Date()
	return cd.set(year, m, d)
}

// SetMonth replaces the month, see SetYear for the handling of invalid dates.
func (cd *CalendarDate) SetMonth(month Month) error {
	y, _, d := cd.Date()
	return cd.set(y, month, d)
}

// SetDay replaces the day, see SetYear for the handling of invalid dates.
func (cd *CalendarDate) SetDay(day int) error {
	y, m, _ := cd.Date()
	return cd.set(y, m, day)
}

func (cd *CalendarDate) set(year int, month Month, day int) error {
	nd, err := NewCalendarDate(year, month, day)
	if err != nil {
		return err
	}
	*cd = nd
	return nil
}

// DayOfYear returns the day of the year, 1-365 for non-leap years and
// 1-366 for leap years.
func (cd CalendarDate) DayOfYear() int {
	y := cd.Year()
	return int(cd.days-daysFromCivil(int64(y), 1, 1)) + 1
}

// Weekday returns the ISO day of the week, 1 for Monday through 7 for Sunday.
func (cd CalendarDate) Weekday() int {
	// 1970-01-01 was a Thursday.
	return int(floorMod(cd.days+3, 7)) + 1
}

// AddDays returns the date n days after cd, or before it for negative n.
func (cd CalendarDate) AddDays(n int) CalendarDate {
	return CalendarDate{days: cd.days + int64(n)}
}

// Compare returns -1, 0 or +1 if cd is before, the same as, or after o.
func (cd CalendarDate) Compare(o CalendarDate) int {
	return cmp.Compare(cd.days, o.days)
}

func (cd CalendarDate) Before(o CalendarDate) bool {
	return cd.days < o.days
}

func (cd CalendarDate) After(o CalendarDate) bool {
	return cd.days > o.days
}

func (cd CalendarDate) Equal(o CalendarDate) bool {
	return cd.days == o.days
}

func (cd CalendarDate) String() string {
	y, m, d := cd.Date()
	return fmt.Sprintf("%04d-%02d-%02d", y, int(m), d)
}

// daysFromCivil returns the number of days since 1970-01-01 for a
// proleptic Gregorian year, month and day using 400 year eras with
// years starting in March so that the leap day is the last day of a year.
func daysFromCivil(y, m, d int64) int64 {
	if m <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400
	mp := (m + 9) % 12
	doy := (153*mp+2)/5 + d - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// civilFromDays is the inverse of daysFromCivil.
func civilFromDays(days int64) (y, m, d int64) {
	z := days + 719468
	era := floorDiv(z, 146097)
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d = doy - (153*mp+2)/5 + 1
	m = mp + 3
	if mp >= 10 {
		m = mp - 9
	}
	y = yoe + era*400
	if m <= 2 {
		y++
	}
	return
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
