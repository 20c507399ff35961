// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gnsstime

import (
	"fmt"

	"cloudeng.io/errors"
)

// ErrInvalidDate is returned when a year, month and day do not form
// a day in the Gregorian calendar.
var ErrInvalidDate = errors.New("invalid date")

// InvalidDateError records the year, month and day that were rejected.
// It matches ErrInvalidDate when used with errors.Is.
type InvalidDateError struct {
	Year  int
	Month Month
	Day   int
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("%v: %04d-%02d-%02d", ErrInvalidDate, e.Year, int(e.Month), e.Day)
}

func (e *InvalidDateError) Is(target error) bool {
	return target == ErrInvalidDate
}

func invalidDate(year int, month Month, day int) error {
	return &InvalidDateError{Year: year, Month: month, Day: day}
}
