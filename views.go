// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gnsstime

import (
	"fmt"
	"strconv"
	"strings"
)

// Views contains all of the representations of a single instant.
type Views struct {
	DateTime      string  `json:"datetime" yaml:"datetime"`
	Nanoseconds   int     `json:"nanoseconds" yaml:"nanoseconds"`
	GPSWeek       int     `json:"gps_week" yaml:"gps_week"`
	GPSSOW        float64 `json:"gps_sow" yaml:"gps_sow"`
	GPSSeconds    float64 `json:"gps_seconds" yaml:"gps_seconds"`
	BDSWeek       int     `json:"bds_week" yaml:"bds_week"`
	BDSSOW        float64 `json:"bds_sow" yaml:"bds_sow"`
	BDSSeconds    float64 `json:"bds_seconds" yaml:"bds_seconds"`
	Year          int     `json:"year" yaml:"year"`
	DOY           float64 `json:"doy" yaml:"doy"`
	JulianDate    float64 `json:"julian_date" yaml:"julian_date"`
	MJD           float64 `json:"mjd" yaml:"mjd"`
	UnixTimestamp float64 `json:"unix_timestamp" yaml:"unix_timestamp"`
	WeekOfYear    int     `json:"week_of_year" yaml:"week_of_year"`
	DayOfWeek     int     `json:"day_of_week" yaml:"day_of_week"`
}

// Views returns all of the representations of dt.
func (dt DateTime) Views() Views {
	v := Views{
		DateTime:      dt.String(),
		Nanoseconds:   dt.t.Nanosecond(),
		GPSSeconds:    dt.GPSSeconds(),
		BDSSeconds:    dt.BDSSeconds(),
		JulianDate:    dt.JulianDate(),
		MJD:           dt.MJD(),
		UnixTimestamp: dt.UnixTimestamp(),
		WeekOfYear:    dt.WeekOfYear(),
		DayOfWeek:     dt.DayOfWeek(),
	}
	v.GPSWeek, v.GPSSOW = dt.GPSWeekSOW()
	v.BDSWeek, v.BDSSOW = dt.BDSWeekSOW()
	v.Year, v.DOY = dt.YearDOY()
	return v
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// String returns a multi-line, human readable, rendering of all of the
// representations.
func (v Views) String() string {
	var out strings.Builder
	out.WriteString("========= DateTime Value =========\n")
	fmt.Fprintf(&out, "DateTime:         %s (%09dns)\n", v.DateTime, v.Nanoseconds)
	fmt.Fprintf(&out, "GPS Week and SOW: %d %s\n", v.GPSWeek, formatFloat(v.GPSSOW))
	fmt.Fprintf(&out, "GPS Seconds:      %s\n", formatFloat(v.GPSSeconds))
	fmt.Fprintf(&out, "BDS Week and SOW: %d %s\n", v.BDSWeek, formatFloat(v.BDSSOW))
	fmt.Fprintf(&out, "BDS Seconds:      %s\n", formatFloat(v.BDSSeconds))
	fmt.Fprintf(&out, "Year and DOY:     %d %s\n", v.Year, formatFloat(v.DOY))
	fmt.Fprintf(&out, "Julian Date:      %s\n", formatFloat(v.JulianDate))
	fmt.Fprintf(&out, "MJD:              %s\n", formatFloat(v.MJD))
	fmt.Fprintf(&out, "Unix Timestamp:   %s\n", formatFloat(v.UnixTimestamp))
	fmt.Fprintf(&out, "Week of Year:     %d\n", v.WeekOfYear)
	fmt.Fprintf(&out, "Day of Week:      %d\n", v.DayOfWeek)
	out.WriteString("==================================\n")
	return out.String()
}
