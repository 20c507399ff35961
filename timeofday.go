// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gnsstime

import (
	"cmp"
	"fmt"
	"math"
	"time"
)

// TimeOfDay represents a time of day as the offset from midnight with
// nanosecond resolution. It is not limited to a single day: the sum of
// two TimeOfDay values may exceed 24 hours and Hour will then
// return a value greater than 23.
type TimeOfDay time.Duration

// NewTimeOfDay creates a new TimeOfDay from the specified hour, minute and
// fractional second. Values outside of the usual ranges are carried,
// eg. minute 75 is 1 hour and 15 minutes.
func NewTimeOfDay(hour, minute int, second float64) TimeOfDay {
	return TimeOfDay(time.Duration(hour)*time.Hour +
		time.Duration(minute)*time.Minute +
		secondsToDuration(second))
}

// TimeOfDayFromDuration returns the TimeOfDay that is d after midnight.
func TimeOfDayFromDuration(d time.Duration) TimeOfDay {
	return TimeOfDay(d)
}

// Duration returns the offset from midnight.
func (t TimeOfDay) Duration() time.Duration {
	return time.Duration(t)
}

func (t TimeOfDay) Hour() int {
	return int(time.Duration(t) / time.Hour)
}

func (t TimeOfDay) Minute() int {
	return int((time.Duration(t) - time.Duration(t.Hour())*time.Hour) / time.Minute)
}

// Second returns the seconds, including any fractional part.
func (t TimeOfDay) Second() float64 {
	return t.seconds().Seconds()
}

// Nanoseconds returns the seconds, including any fractional part, as an
// exact count of nanoseconds.
func (t TimeOfDay) Nanoseconds() int64 {
	return int64(t.seconds())
}

// seconds returns the exact remainder after whole hours and minutes.
func (t TimeOfDay) seconds() time.Duration {
	return time.Duration(t) - time.Duration(t.Hour())*time.Hour - time.Duration(t.Minute())*time.Minute
}

func (t *TimeOfDay) rebuild(hour, minute int, seconds time.Duration) {
	*t = TimeOfDay(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute + seconds)
}

// SetHour replaces the hour leaving the minute and second unchanged.
func (t *TimeOfDay) SetHour(hour int) {
	t.rebuild(hour, t.Minute(), t.seconds())
}

// SetMinute replaces the minute leaving the hour and second unchanged.
func (t *TimeOfDay) SetMinute(minute int) {
	t.rebuild(t.Hour(), minute, t.seconds())
}

// SetSecond replaces the second, including any fractional part, leaving the
// hour and minute unchanged.
func (t *TimeOfDay) SetSecond(second float64) {
	t.rebuild(t.Hour(), t.Minute(), secondsToDuration(second))
}

// Add returns t+o, no wrap around at 24 hours is applied.
func (t TimeOfDay) Add(o TimeOfDay) TimeOfDay {
	return t + o
}

// Sub returns t-o, the result may be negative.
func (t TimeOfDay) Sub(o TimeOfDay) TimeOfDay {
	return t - o
}

// Compare returns -1, 0 or +1 if t is before, the same as, or after o.
func (t TimeOfDay) Compare(o TimeOfDay) int {
	return cmp.Compare(t, o)
}

func (t TimeOfDay) Before(o TimeOfDay) bool {
	return t < o
}

func (t TimeOfDay) After(o TimeOfDay) bool {
	return t > o
}

// String returns the time of day as HH:MM:SS.sss with the milliseconds
// truncated.
func (t TimeOfDay) String() string {
	sign := ""
	if t < 0 {
		sign, t = "-", -t
	}
	s := t.seconds()
	return fmt.Sprintf("%s%02d:%02d:%02d.%03d", sign, t.Hour(), t.Minute(),
		int64(s/time.Second), int64(s%time.Second/time.Millisecond))
}

// splitSeconds splits a real number of seconds into whole seconds, rounded
// towards negative infinity, and nanoseconds rounded to the nearest
// nanosecond.
func splitSeconds(s float64) (sec, nsec int64) {
	whole := math.Floor(s)
	nsec = int64(math.Round((s - whole) * 1e9))
	sec = int64(whole)
	if nsec >= 1e9 {
		sec++
		nsec -= 1e9
	}
	return
}

func secondsToDuration(s float64) time.Duration {
	sec, nsec := splitSeconds(s)
	return time.Duration(sec)*time.Second + time.Duration(nsec)
}
