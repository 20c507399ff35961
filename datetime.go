// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gnsstime

import (
	"time"
)

// DateTime represents an instant on a continuous UTC time line with
// nanosecond resolution. Leap seconds are not modeled. The zero value
// is January 1, year 1, 00:00:00 UTC. DateTime values are comparable
// with == provided they are created by this package.
type DateTime struct {
	t time.Time
}

func fromUnix(sec, nsec int64) DateTime {
	return DateTime{t: time.Unix(sec, nsec).UTC()}
}

// FromTime returns the DateTime for the same instant as t.
func FromTime(t time.Time) DateTime {
	return DateTime{t: t.UTC().Round(0)}
}

// NewDateTime returns the DateTime for the specified calendar date and time
// of day. The date must be a valid calendar day, the hour, minute, second
// and nanosecond are added to midnight of that day and are carried if out
// of their usual ranges.
func NewDateTime(year int, month Month, day, hour, minute, second, nanosecond int) (DateTime, error) {
	cd, err := NewCalendarDate(year, month, day)
	if err != nil {
		return DateTime{}, err
	}
	tod := TimeOfDay(time.Duration(hour)*time.Hour +
		time.Duration(minute)*time.Minute +
		time.Duration(second)*time.Second +
		time.Duration(nanosecond))
	return Compose(cd, tod), nil
}

// MustNewDateTime is like NewDateTime but panics on an invalid date.
func MustNewDateTime(year int, month Month, day, hour, minute, second, nanosecond int) DateTime {
	dt, err := NewDateTime(year, month, day, hour, minute, second, nanosecond)
	if err != nil {
		panic(err)
	}
	return dt
}

// Compose returns the DateTime that is tod after midnight on date.
func Compose(date CalendarDate, tod TimeOfDay) DateTime {
	return fromUnix(date.days*SecondsPerDay, 0).AddDuration(time.Duration(tod))
}

// StdTime returns the instant as a time.Time in UTC.
func (dt DateTime) StdTime() time.Time {
	return dt.t
}

// split returns the whole days since the Unix epoch and the remainder.
func (dt DateTime) split() (days int64, tod TimeOfDay) {
	sec := dt.t.Unix()
	days = floorDiv(sec, SecondsPerDay)
	rem := sec - days*SecondsPerDay
	return days, TimeOfDay(time.Duration(rem)*time.Second + time.Duration(dt.t.Nanosecond()))
}

// Date returns the calendar date of the instant.
func (dt DateTime) Date() CalendarDate {
	days, _ := dt.split()
	return CalendarDate{days: days}
}

// TimeOfDay returns the offset of the instant from the preceding midnight,
// which is always in the range [0, 24h).
func (dt DateTime) TimeOfDay() TimeOfDay {
	_, tod := dt.split()
	return tod
}

func (dt DateTime) Year() int {
	return dt.Date().Year()
}

func (dt DateTime) Month() Month {
	return dt.Date().Month()
}

func (dt DateTime) Day() int {
	return dt.Date().Day()
}

func (dt DateTime) Hour() int {
	return dt.TimeOfDay().Hour()
}

func (dt DateTime) Minute() int {
	return dt.TimeOfDay().Minute()
}

// Second returns the whole seconds, see Millisecond, Microsecond and
// Nanosecond for the sub-second part.
func (dt DateTime) Second() int {
	return int(dt.TimeOfDay().seconds() / time.Second)
}

func (dt DateTime) Millisecond() int {
	return dt.t.Nanosecond() / 1e6
}

func (dt DateTime) Microsecond() int {
	return dt.t.Nanosecond() / 1e3 % 1e3
}

func (dt DateTime) Nanosecond() int {
	return dt.t.Nanosecond() % 1e3
}

func (dt *DateTime) setDate(fn func(*CalendarDate) error) error {
	days, tod := dt.split()
	cd := CalendarDate{days: days}
	if err := fn(&cd); err != nil {
		return err
	}
	*dt = Compose(cd, tod)
	return nil
}

func (dt *DateTime) setTime(fn func(*TimeOfDay)) {
	days, tod := dt.split()
	fn(&tod)
	*dt = Compose(CalendarDate{days: days}, tod)
}

// SetYear replaces the year. The DateTime is left unchanged and an error
// matching ErrInvalidDate returned if the new date is not a calendar day.
func (dt *DateTime) SetYear(year int) error {
	return dt.setDate(func(cd *CalendarDate) error { return cd.SetYear(year) })
}

// SetMonth replaces the month, see SetYear for the handling of invalid dates.
func (dt *DateTime) SetMonth(month Month) error {
	return dt.setDate(func(cd *CalendarDate) error { return cd.SetMonth(month) })
}

// SetDay replaces the day, see SetYear for the handling of invalid dates.
func (dt *DateTime) SetDay(day int) error {
	return dt.setDate(func(cd *CalendarDate) error { return cd.SetDay(day) })
}

// SetHour replaces the hour. Values outside of 0-23 carry into
// the date.
func (dt *DateTime) SetHour(hour int) {
	dt.setTime(func(tod *TimeOfDay) { tod.SetHour(hour) })
}

// SetMinute replaces the minute. Values outside of 0-59 carry into
// the hour.
func (dt *DateTime) SetMinute(minute int) {
	dt.setTime(func(tod *TimeOfDay) { tod.SetMinute(minute) })
}

// SetSecond replaces the whole seconds leaving the sub-second part unchanged.
// Values outside of 0-59 carry into the minute.
func (dt *DateTime) SetSecond(second int) {
	dt.setTime(func(tod *TimeOfDay) {
		frac := tod.seconds() % time.Second
		tod.rebuild(tod.Hour(), tod.Minute(), time.Duration(second)*time.Second+frac)
	})
}

func (dt *DateTime) setSubsecond(nsec int64) {
	*dt = fromUnix(dt.t.Unix(), 0).AddDuration(time.Duration(nsec))
}

// SetMillisecond replaces the milliseconds leaving the whole seconds,
// microseconds and nanoseconds unchanged.
func (dt *DateTime) SetMillisecond(ms int) {
	ns := int64(dt.t.Nanosecond())
	dt.setSubsecond(int64(ms)*1e6 + ns%1e6)
}

// SetMicrosecond replaces the microseconds leaving the whole seconds,
// milliseconds and nanoseconds unchanged.
func (dt *DateTime) SetMicrosecond(us int) {
	ns := int64(dt.t.Nanosecond())
	dt.setSubsecond(ns/1e6*1e6 + int64(us)*1e3 + ns%1e3)
}

// SetNanosecond replaces the nanoseconds leaving all other fields unchanged.
func (dt *DateTime) SetNanosecond(n int) {
	ns := int64(dt.t.Nanosecond())
	dt.setSubsecond(ns/1e3*1e3 + int64(n))
}

// Add returns the DateTime tod later than dt.
func (dt DateTime) Add(tod TimeOfDay) DateTime {
	return dt.AddDuration(time.Duration(tod))
}

// Sub returns the DateTime tod earlier than dt.
func (dt DateTime) Sub(tod TimeOfDay) DateTime {
	return dt.AddDuration(-time.Duration(tod))
}

// AddDuration returns the DateTime d later than dt.
func (dt DateTime) AddDuration(d time.Duration) DateTime {
	return DateTime{t: dt.t.Add(d)}
}

// AddDays returns the DateTime n whole days later than dt.
func (dt DateTime) AddDays(n int) DateTime {
	return DateTime{t: dt.t.Add(time.Duration(n) * 24 * time.Hour)}
}

// AddDate adds the specified years, months and days. Like time.Time.AddDate
// the result is normalized, eg. October 31 plus one month is December 1.
func (dt DateTime) AddDate(years, months, days int) DateTime {
	return DateTime{t: dt.t.AddDate(years, months, days)}
}

// Since returns dt-o, saturating at the limits of time.Duration.
func (dt DateTime) Since(o DateTime) time.Duration {
	return dt.t.Sub(o.t)
}

// Compare returns -1, 0 or +1 if dt is before, the same as, or after o.
func (dt DateTime) Compare(o DateTime) int {
	return dt.t.Compare(o.t)
}

func (dt DateTime) Before(o DateTime) bool {
	return dt.t.Before(o.t)
}

func (dt DateTime) After(o DateTime) bool {
	return dt.t.After(o.t)
}

func (dt DateTime) Equal(o DateTime) bool {
	return dt.t.Equal(o.t)
}

// String returns the instant as YYYY-MM-DD HH:MM:SS.sss.
func (dt DateTime) String() string {
	days, tod := dt.split()
	return CalendarDate{days: days}.String() + " " + tod.String()
}
