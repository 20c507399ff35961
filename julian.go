// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gnsstime

import (
	"math"
	"time"
)

// UnixTimestamp returns the seconds since the Unix epoch, negative for
// instants before 1970.
func (dt DateTime) UnixTimestamp() float64 {
	return float64(dt.t.Unix()) + float64(dt.t.Nanosecond())/1e9
}

// FromUnixTimestamp returns the DateTime for a Unix timestamp in seconds.
func FromUnixTimestamp(ts float64) DateTime {
	return fromUnix(splitSeconds(ts))
}

// JulianDate returns the Julian date, 2440587.5 at the Unix epoch.
// Note that a float64 Julian date for the current era has a resolution of
// about 40 microseconds.
func (dt DateTime) JulianDate() float64 {
	return JulianDateUnixEpoch + dt.UnixTimestamp()/SecondsPerDay
}

// FromJulianDate returns the DateTime for a Julian date.
func FromJulianDate(jd float64) DateTime {
	return FromUnixTimestamp((jd - JulianDateUnixEpoch) * SecondsPerDay)
}

// MJD returns the Modified Julian Date, ie. the Julian date less 2400000.5.
func (dt DateTime) MJD() float64 {
	return MJDUnixEpoch + dt.UnixTimestamp()/SecondsPerDay
}

// FromMJD returns the DateTime for a Modified Julian Date.
func FromMJD(mjd float64) DateTime {
	return FromUnixTimestamp((mjd - MJDUnixEpoch) * SecondsPerDay)
}

// DayOfYear returns the day of the year, starting at 1 for January 1.
func (dt DateTime) DayOfYear() int {
	return dt.Date().DayOfYear()
}

// YearDOY returns the year and the fractional day of year, the integer
// part is DayOfYear and the fraction is the elapsed part of the day.
func (dt DateTime) YearDOY() (year int, doy float64) {
	days, tod := dt.split()
	cd := CalendarDate{days: days}
	return cd.Year(), float64(cd.DayOfYear()) + float64(tod)/float64(24*time.Hour)
}

// FromYearDOY returns the DateTime for a year and fractional day of year.
// The day of year is not limited to the given year, eg. day 366 of a
// non-leap year is January 1 of the following year.
func FromYearDOY(year int, doy float64) DateTime {
	day := math.Floor(doy)
	frac := doy - day
	days := daysFromCivil(int64(year), 1, 1) + int64(day) - 1
	offset := time.Duration(math.Round(frac * float64(24*time.Hour)))
	return Compose(CalendarDate{days: days}, TimeOfDay(offset))
}

// DayOfWeek returns the ISO day of the week, 1 for Monday through 7
// for Sunday.
func (dt DateTime) DayOfWeek() int {
	return dt.Date().Weekday()
}

// WeekOfYear returns a 1-based week number computed as
// (DayOfYear-1 + weekday of January 1) / 7 + 1 where the weekday of
// January 1 counts from 0 for Sunday. Weeks therefore start on Sunday
// and the first, possibly partial, week of the year is week 1.
// This is not the ISO 8601 week number.
func (dt DateTime) WeekOfYear() int {
	cd := dt.Date()
	jan1 := CalendarDateFromDays(daysFromCivil(int64(cd.Year()), 1, 1))
	sundayBased := jan1.Weekday() % 7
	return (cd.DayOfYear()-1+sundayBased)/7 + 1
}
