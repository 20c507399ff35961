// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"cloudeng.io/errors"
	"cloudeng.io/gnsstime"
	"cloudeng.io/logging/ctxlog"
)

type command struct {
	out io.Writer
	now func() time.Time
}

// args parses numeric command line arguments, accumulating any errors.
type args struct {
	values []string
	errs   errors.M
}

func (a *args) int(i int, name string) int {
	v, err := strconv.Atoi(a.values[i])
	if err != nil {
		a.errs.Append(fmt.Errorf("%v: %q is not an integer", name, a.values[i]))
	}
	return v
}

func (a *args) float(i int, name string) float64 {
	v, err := strconv.ParseFloat(a.values[i], 64)
	if err != nil {
		a.errs.Append(fmt.Errorf("%v: %q is not a number", name, a.values[i]))
	}
	return v
}

func (a *args) err() error {
	return a.errs.Err()
}

// conversion parses the command line arguments for a single command and
// returns the instant they represent.
type conversion func(a *args) (gnsstime.DateTime, error)

var conversions = map[string]conversion{
	"date":        fromDate,
	"gps":         fromWeekSOW(gnsstime.FromGPSWeekSOW),
	"gps-seconds": fromSeconds(gnsstime.FromGPSSeconds),
	"bds":         fromWeekSOW(gnsstime.FromBDSWeekSOW),
	"bds-seconds": fromSeconds(gnsstime.FromBDSSeconds),
	"doy":         fromDOY,
	"jd":          fromSeconds(gnsstime.FromJulianDate),
	"mjd":         fromSeconds(gnsstime.FromMJD),
	"unix":        fromSeconds(gnsstime.FromUnixTimestamp),
}

func fromDate(a *args) (gnsstime.DateTime, error) {
	if n := len(a.values); n != 3 && n != 6 {
		return gnsstime.DateTime{}, fmt.Errorf("date: expected <year> <month> <day> [<hour> <minute> <second>], got %v arguments", n)
	}
	year, month, day := a.int(0, "year"), a.int(1, "month"), a.int(2, "day")
	var tod gnsstime.TimeOfDay
	if len(a.values) == 6 {
		tod = gnsstime.NewTimeOfDay(a.int(3, "hour"), a.int(4, "minute"), a.float(5, "second"))
	}
	if err := a.err(); err != nil {
		return gnsstime.DateTime{}, err
	}
	cd, err := gnsstime.NewCalendarDate(year, gnsstime.Month(month), day)
	if err != nil {
		return gnsstime.DateTime{}, err
	}
	return gnsstime.Compose(cd, tod), nil
}

func fromWeekSOW(fn func(int, float64) gnsstime.DateTime) conversion {
	return func(a *args) (gnsstime.DateTime, error) {
		week, sow := a.int(0, "week"), a.float(1, "sow")
		if err := a.err(); err != nil {
			return gnsstime.DateTime{}, err
		}
		return fn(week, sow), nil
	}
}

func fromSeconds(fn func(float64) gnsstime.DateTime) conversion {
	return func(a *args) (gnsstime.DateTime, error) {
		v := a.float(0, "value")
		if err := a.err(); err != nil {
			return gnsstime.DateTime{}, err
		}
		return fn(v), nil
	}
}

func fromDOY(a *args) (gnsstime.DateTime, error) {
	year, doy := a.int(0, "year"), a.float(1, "doy")
	if err := a.err(); err != nil {
		return gnsstime.DateTime{}, err
	}
	return gnsstime.FromYearDOY(year, doy), nil
}

func (c *command) converter(name string, conv conversion) func(context.Context, any, []string) error {
	return func(ctx context.Context, values any, argv []string) error {
		cf := values.(*CommonFlags)
		ctx, logger, _, format, err := cf.setup(ctx)
		if err != nil {
			return err
		}
		defer logger.Close() //nolint:errcheck
		dt, err := conv(&args{values: argv})
		if err != nil {
			ctxlog.Logger(ctx).Error("conversion failed", "command", name, "args", argv, "error", err)
			return err
		}
		ctxlog.Logger(ctx).Debug("converted", "command", name, "args", argv, "datetime", dt.String())
		return write(c.out, format, dt.Views())
	}
}

func (c *command) current(ctx context.Context, values any, _ []string) error {
	cf := values.(*CommonFlags)
	ctx, logger, _, format, err := cf.setup(ctx)
	if err != nil {
		return err
	}
	defer logger.Close() //nolint:errcheck
	dt := gnsstime.FromTime(c.now())
	ctxlog.Logger(ctx).Debug("now", "datetime", dt.String())
	return write(c.out, format, dt.Views())
}
