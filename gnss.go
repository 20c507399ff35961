// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gnsstime

import "time"

const (
	gpsUTCLeapSeconds   = int64(GPSUTCLeap / time.Second)
	bdsGPSOffsetSeconds = float64(BDSGPSOffset / time.Second)
)

// gps returns the whole seconds of GPS time since the GPS epoch and the
// nanoseconds.
func (dt DateTime) gps() (sec, nsec int64) {
	return dt.t.Unix() - gpsEpochUnix + gpsUTCLeapSeconds, int64(dt.t.Nanosecond())
}

func fromGPS(sec, nsec int64) DateTime {
	return fromUnix(sec+gpsEpochUnix-gpsUTCLeapSeconds, nsec)
}

// GPSWeekSOW returns the GPS week number and the seconds of week, which are
// in the range [0, 604800). Instants before the GPS epoch have negative
// week numbers.
func (dt DateTime) GPSWeekSOW() (week int, sow float64) {
	sec, nsec := dt.gps()
	w := floorDiv(sec, SecondsPerWeek)
	return int(w), float64(sec-w*SecondsPerWeek) + float64(nsec)/1e9
}

// GPSSeconds returns the seconds of GPS time since the GPS epoch,
// ie. 604800*week + sow.
func (dt DateTime) GPSSeconds() float64 {
	sec, nsec := dt.gps()
	return float64(sec) + float64(nsec)/1e9
}

// FromGPSWeekSOW returns the DateTime for a GPS week and seconds of week.
// Any values are accepted, sow outside of a single week simply carries
// into the adjacent weeks.
func FromGPSWeekSOW(week int, sow float64) DateTime {
	sec, nsec := splitSeconds(sow)
	return fromGPS(int64(week)*SecondsPerWeek+sec, nsec)
}

// FromGPSSeconds returns the DateTime for the seconds of GPS time since
// the GPS epoch.
func FromGPSSeconds(gpsSec float64) DateTime {
	return fromGPS(splitSeconds(gpsSec))
}

// BDSWeekSOW returns the BeiDou week number and seconds of week derived from
// the GPS week and seconds of week. The seconds of week are not normalized
// and are in the range [-14, 604786).
func (dt DateTime) BDSWeekSOW() (week int, sow float64) {
	week, sow = dt.GPSWeekSOW()
	return week - BDSGPSWeeks, sow - bdsGPSOffsetSeconds
}

// BDSSeconds returns 604800*week + sow for the BeiDou week and seconds
// of week.
func (dt DateTime) BDSSeconds() float64 {
	week, sow := dt.BDSWeekSOW()
	return SecondsPerWeek*float64(week) + sow
}

// FromBDSWeekSOW returns the DateTime for a BeiDou week and seconds of week.
func FromBDSWeekSOW(week int, sow float64) DateTime {
	return FromGPSWeekSOW(week+BDSGPSWeeks, sow+bdsGPSOffsetSeconds)
}

// FromBDSSeconds returns the DateTime for the seconds of BeiDou time since
// the BeiDou epoch.
func FromBDSSeconds(bdsSec float64) DateTime {
	return FromGPSSeconds(bdsSec + SecondsPerWeek*BDSGPSWeeks + bdsGPSOffsetSeconds)
}
