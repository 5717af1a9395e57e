package models

import (
	"fmt"
	"math"
	"time"
)

// The 1900 date system counts days from 1899-12-30 so that serial 61 is
// 1900-03-01. Lotus 1-2-3 treated 1900 as a leap year and the spreadsheet
// formats kept the phantom 1900-02-29 as serial 60, which shifts every date
// before March 1900 down by one: 1900-01-01 is serial 1.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

const (
	firstSerialYear = 1900
	// leapBugSerial is the serial of the phantom 1900-02-29.
	leapBugSerial = 60
	secondsPerDay = 24 * 60 * 60
)

// DateSerial converts the wall-clock time of t (in its own location) to a
// 1900-system date serial: whole days since the epoch plus the time of day as
// a fraction. Dates before 1900-01-01 cannot be represented.
func DateSerial(t time.Time) (float64, error) {
	y, m, d := t.Date()
	if y < firstSerialYear {
		return 0, fmt.Errorf("%w: %s", ErrDateRange, t.Format(time.RFC3339))
	}
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	days := math.Round(day.Sub(serialEpoch).Hours() / 24)
	if days <= leapBugSerial {
		days--
	}
	h, min, s := t.Clock()
	frac := (float64(h*3600+min*60+s) + float64(t.Nanosecond())/1e9) / secondsPerDay
	return days + frac, nil
}

// SerialTime converts a 1900-system date serial back to a wall-clock time in
// UTC, rounded to the millisecond. The phantom serial 60 maps to 1900-02-28.
func SerialTime(serial float64) (time.Time, error) {
	if serial < 0 || math.IsNaN(serial) || math.IsInf(serial, 0) {
		return time.Time{}, fmt.Errorf("%w: serial %v", ErrDateRange, serial)
	}
	days := math.Floor(serial)
	frac := serial - days
	if days < leapBugSerial {
		days++
	}
	ms := math.Round(frac * secondsPerDay * 1000)
	return serialEpoch.
		AddDate(0, 0, int(days)).
		Add(time.Duration(ms) * time.Millisecond), nil
}
