// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command gnsstime converts between calendar dates and the time scales
// used for satellite navigation: GPS and BeiDou week and seconds of week,
// GPS and BeiDou seconds, fractional day of year, Julian and Modified
// Julian dates and Unix timestamps. Each command prints every
// representation of the requested instant.
package main

import (
	"context"
	"os"
	"time"

	"cloudeng.io/cmdutil/subcmd"
)

const spec = `name: gnsstime
summary: convert between calendar dates and GNSS time scales
commands:
  - name: date
    summary: convert a UTC calendar date, optionally followed by the hour, minute and fractional second
    arguments:
      - <year>
      - <month>
      - <day>
      - ...
  - name: gps
    summary: convert a GPS week and seconds of week
    arguments:
      - <week>
      - <sow>
  - name: gps-seconds
    summary: convert seconds since the GPS epoch
    arguments:
      - <seconds>
  - name: bds
    summary: convert a BeiDou week and seconds of week
    arguments:
      - <week>
      - <sow>
  - name: bds-seconds
    summary: convert seconds since the BeiDou epoch
    arguments:
      - <seconds>
  - name: doy
    summary: convert a year and fractional day of year
    arguments:
      - <year>
      - <doy>
  - name: jd
    summary: convert a Julian date
    arguments:
      - <julian-date>
  - name: mjd
    summary: convert a Modified Julian Date
    arguments:
      - <mjd>
  - name: unix
    summary: convert a Unix timestamp in seconds
    arguments:
      - <timestamp>
  - name: now
    summary: display the current time
  - name: epochs
    summary: list the GPS aligned epochs between two Unix timestamps
    arguments:
      - <start>
      - <end>
`

func cli(cmd *command) *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(spec)
	for name, conv := range conversions {
		cmdSet.Set(name).MustRunnerAndFlagSet(cmd.converter(name, conv),
			subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	}
	cmdSet.Set("now").MustRunnerAndFlagSet(cmd.current,
		subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("epochs").MustRunnerAndFlagSet(cmd.epochs,
		subcmd.MustRegisteredFlagSet(&epochsFlags{}))
	return cmdSet
}

func main() {
	subcmd.Dispatch(context.Background(), cli(&command{out: os.Stdout, now: time.Now}))
}
