// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gnsstime

import "time"

const (
	SecondsPerDay  = 86400
	SecondsPerWeek = 7 * SecondsPerDay

	// GPSUTCLeap is the fixed offset of GPS time ahead of UTC.
	GPSUTCLeap = 18 * time.Second
	// BDSGPSOffset is the fixed offset of GPS time ahead of BeiDou time.
	BDSGPSOffset = 14 * time.Second
	// BDSGPSWeeks is the number of GPS weeks between the GPS and BeiDou epochs.
	BDSGPSWeeks = 1356

	// JulianDateUnixEpoch is the Julian date of 1970-01-01T00:00:00 UTC.
	JulianDateUnixEpoch = 2440587.5
	// MJDUnixEpoch is the Modified Julian Date of 1970-01-01T00:00:00 UTC.
	MJDUnixEpoch = 40587.0
)

// Seconds between the Unix epoch and the GPS and BeiDou epochs.
const (
	gpsEpochUnix = 315964800  // 1980-01-06
	bdsEpochUnix = 1136073600 // 2006-01-01
)

var (
	UnixEpoch = fromUnix(0, 0)
	GPSEpoch  = fromUnix(gpsEpochUnix, 0)
	BDSEpoch  = fromUnix(bdsEpochUnix, 0)
)
