// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gnsstime_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	cerrors "cloudeng.io/errors"
	"cloudeng.io/gnsstime"
)

type fields struct {
	year  int
	month gnsstime.Month
	day   int

	hour, minute, second int
	ms, us, ns           int
}

func (f fields) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d %03d.%03d.%03d",
		f.year, f.month, f.day, f.hour, f.minute, f.second, f.ms, f.us, f.ns)
}

func fieldsOf(dt gnsstime.DateTime) fields {
	return fields{
		year:   dt.Year(),
		month:  dt.Month(),
		day:    dt.Day(),
		hour:   dt.Hour(),
		minute: dt.Minute(),
		second: dt.Second(),
		ms:     dt.Millisecond(),
		us:     dt.Microsecond(),
		ns:     dt.Nanosecond(),
	}
}

func expectFields(t *testing.T, dt gnsstime.DateTime, want fields) {
	t.Helper()
	if got := fieldsOf(dt); got != want {
		t.Errorf("%v: got %v, want %v", cerrors.Caller(2, 1), got, want)
	}
}

func TestDateTimeFields(t *testing.T) {
	dt := gnsstime.MustNewDateTime(2025, 2, 7, 11, 30, 45, 123456789)
	expectFields(t, dt, fields{2025, 2, 7, 11, 30, 45, 123, 456, 789})
	if got, want := dt.String(), "2025-02-07 11:30:45.123"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	composed := gnsstime.Compose(gnsstime.MustNewCalendarDate(2025, 2, 7), gnsstime.NewTimeOfDay(11, 30, 45.123456789))
	if got, want := composed, dt; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := dt.Date(), gnsstime.MustNewCalendarDate(2025, 2, 7); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := dt.TimeOfDay(), gnsstime.NewTimeOfDay(11, 30, 45.123456789); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	std := time.Date(2025, 2, 7, 12, 30, 45, 123456789, time.FixedZone("CET", 3600))
	if got, want := gnsstime.FromTime(std), dt; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := dt.StdTime(), std; !got.Equal(want) || got.Location() != time.UTC {
		t.Errorf("got %v, want %v", got, want)
	}

	var zero gnsstime.DateTime
	if got, want := zero.String(), "0001-01-01 00:00:00.000"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	before := gnsstime.MustNewDateTime(1969, 12, 31, 23, 59, 59, 999999999)
	expectFields(t, before, fields{1969, 12, 31, 23, 59, 59, 999, 999, 999})
	if got, want := before.AddDuration(1), gnsstime.UnixEpoch; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDateTimeCarry(t *testing.T) {
	dt := gnsstime.MustNewDateTime(2024, 12, 31, 23, 59, 59, 1e9)
	expectFields(t, dt, fields{2025, 1, 1, 0, 0, 0, 0, 0, 0})

	dt = gnsstime.MustNewDateTime(2025, 3, 1, -1, 0, 0, 0)
	expectFields(t, dt, fields{2025, 2, 28, 23, 0, 0, 0, 0, 0})

	if _, err := gnsstime.NewDateTime(2025, 2, 29, 0, 0, 0, 0); !errors.Is(err, gnsstime.ErrInvalidDate) {
		t.Errorf("missing or wrong error: %v", err)
	}
}

func TestDateTimeArithmetic(t *testing.T) {
	dt := gnsstime.MustNewDateTime(2025, 2, 7, 11, 30, 45, 123456789)
	want := fields{2025, 2, 8, 12, 15, 55, 123, 579, 789}

	next := dt.AddDays(1).AddDuration(45*time.Minute + 10*time.Second + 123*time.Microsecond)
	expectFields(t, next, want)

	next = dt.AddDays(1).Add(gnsstime.NewTimeOfDay(0, 45, 10.000123))
	expectFields(t, next, want)

	mod := dt
	if err := mod.SetDay(mod.Day() + 1); err != nil {
		t.Fatal(err)
	}
	mod.SetMinute(mod.Minute() + 45)
	mod.SetSecond(mod.Second() + 10)
	mod.SetMicrosecond(mod.Microsecond() + 123)
	expectFields(t, mod, want)
	if got, want := mod, next; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	if got, want := next.Since(dt), 24*time.Hour+45*time.Minute+10*time.Second+123*time.Microsecond; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	for _, tod := range []gnsstime.TimeOfDay{
		0,
		1,
		gnsstime.NewTimeOfDay(0, 0, 0.999999999),
		gnsstime.NewTimeOfDay(23, 59, 59),
		gnsstime.NewTimeOfDay(1000, 0, 0),
	} {
		if got, want := dt.Add(tod).Sub(tod), dt; got != want {
			t.Errorf("%v: got %v, want %v", tod, got, want)
		}
		if got, want := dt.Add(tod).Since(dt), tod.Duration(); got != want {
			t.Errorf("%v: got %v, want %v", tod, got, want)
		}
	}

	expectFields(t, dt.AddDate(0, 1, 0), fields{2025, 3, 7, 11, 30, 45, 123, 456, 789})
	expectFields(t, dt.AddDays(-38), fields{2024, 12, 31, 11, 30, 45, 123, 456, 789})
}

func TestDateTimeSetters(t *testing.T) {
	orig := gnsstime.MustNewDateTime(2024, 2, 29, 11, 30, 45, 123456789)

	for _, tc := range []struct {
		set  func(dt *gnsstime.DateTime)
		want fields
	}{
		{func(dt *gnsstime.DateTime) { _ = dt.SetYear(2028) }, fields{2028, 2, 29, 11, 30, 45, 123, 456, 789}},
		{func(dt *gnsstime.DateTime) { _ = dt.SetMonth(3) }, fields{2024, 3, 29, 11, 30, 45, 123, 456, 789}},
		{func(dt *gnsstime.DateTime) { _ = dt.SetDay(1) }, fields{2024, 2, 1, 11, 30, 45, 123, 456, 789}},
		{func(dt *gnsstime.DateTime) { dt.SetHour(0) }, fields{2024, 2, 29, 0, 30, 45, 123, 456, 789}},
		{func(dt *gnsstime.DateTime) { dt.SetMinute(1) }, fields{2024, 2, 29, 11, 1, 45, 123, 456, 789}},
		{func(dt *gnsstime.DateTime) { dt.SetSecond(2) }, fields{2024, 2, 29, 11, 30, 2, 123, 456, 789}},
		{func(dt *gnsstime.DateTime) { dt.SetMillisecond(999) }, fields{2024, 2, 29, 11, 30, 45, 999, 456, 789}},
		{func(dt *gnsstime.DateTime) { dt.SetMicrosecond(0) }, fields{2024, 2, 29, 11, 30, 45, 123, 0, 789}},
		{func(dt *gnsstime.DateTime) { dt.SetNanosecond(1) }, fields{2024, 2, 29, 11, 30, 45, 123, 456, 1}},
		// Out of range time fields carry.
		{func(dt *gnsstime.DateTime) { dt.SetHour(24) }, fields{2024, 3, 1, 0, 30, 45, 123, 456, 789}},
		{func(dt *gnsstime.DateTime) { dt.SetMinute(-1) }, fields{2024, 2, 29, 10, 59, 45, 123, 456, 789}},
		{func(dt *gnsstime.DateTime) { dt.SetSecond(60) }, fields{2024, 2, 29, 11, 31, 0, 123, 456, 789}},
		{func(dt *gnsstime.DateTime) { dt.SetNanosecond(1000) }, fields{2024, 2, 29, 11, 30, 45, 123, 457, 0}},
		{func(dt *gnsstime.DateTime) { dt.SetMillisecond(1000) }, fields{2024, 2, 29, 11, 30, 46, 0, 456, 789}},
	} {
		dt := orig
		tc.set(&dt)
		expectFields(t, dt, tc.want)
	}

	dt := orig
	if err := dt.SetYear(2025); !errors.Is(err, gnsstime.ErrInvalidDate) {
		t.Errorf("missing or wrong error: %v", err)
	}
	if err := dt.SetMonth(4); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := dt.SetDay(31); !errors.Is(err, gnsstime.ErrInvalidDate) {
		t.Errorf("missing or wrong error: %v", err)
	}
	expectFields(t, dt, fields{2024, 4, 29, 11, 30, 45, 123, 456, 789})
}

func TestDateTimeOrdering(t *testing.T) {
	a := gnsstime.MustNewDateTime(2025, 2, 7, 11, 30, 45, 0)
	b := a.AddDuration(1)
	if !a.Before(b) || !b.After(a) || a.Compare(b) != -1 || b.Compare(a) != 1 {
		t.Errorf("ordering is broken for %v and %v", a, b)
	}
	if a.Compare(a) != 0 || !a.Equal(a) || a.Equal(b) {
		t.Errorf("equality is broken for %v and %v", a, b)
	}
	if !gnsstime.GPSEpoch.After(gnsstime.UnixEpoch) || !gnsstime.BDSEpoch.After(gnsstime.GPSEpoch) {
		t.Errorf("epochs are out of order")
	}
}
