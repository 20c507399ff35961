// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strings"

	"cloudeng.io/gnsstime"
	"cloudeng.io/gnsstime/epochs"
	"cloudeng.io/logging/ctxlog"
)

type epoch struct {
	DateTime      string  `json:"datetime" yaml:"datetime"`
	GPSWeek       int     `json:"gps_week" yaml:"gps_week"`
	GPSSOW        float64 `json:"gps_sow" yaml:"gps_sow"`
	UnixTimestamp float64 `json:"unix_timestamp" yaml:"unix_timestamp"`
}

type epochList []epoch

func (el epochList) String() string {
	var out strings.Builder
	for _, e := range el {
		fmt.Fprintf(&out, "%s %d %s\n", e.DateTime, e.GPSWeek, formatFloat(e.GPSSOW))
	}
	return out.String()
}

func (c *command) epochs(ctx context.Context, values any, argv []string) error {
	ef := values.(*epochsFlags)
	ctx, logger, cfg, format, err := ef.setup(ctx)
	if err != nil {
		return err
	}
	defer logger.Close() //nolint:errcheck
	interval, err := ef.interval(cfg)
	if err != nil {
		return err
	}
	a := &args{values: argv}
	start, end := a.float(0, "start"), a.float(1, "end")
	if err := a.err(); err != nil {
		return err
	}
	grid := epochs.Grid{
		Start:    gnsstime.FromUnixTimestamp(start),
		End:      gnsstime.FromUnixTimestamp(end),
		Interval: interval,
	}
	el := epochList{}
	for e := range grid.Epochs() {
		week, sow := e.GPSWeekSOW()
		el = append(el, epoch{
			DateTime:      e.String(),
			GPSWeek:       week,
			GPSSOW:        sow,
			UnixTimestamp: e.UnixTimestamp(),
		})
	}
	ctxlog.Logger(ctx).Debug("epochs", "start", grid.Start.String(), "end", grid.End.String(), "interval", interval.String(), "count", len(el))
	return write(c.out, format, el)
}
