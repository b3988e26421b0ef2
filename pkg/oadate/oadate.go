// Package oadate converts between time.Time and the serial-day ("OA
// date") representation spreadsheets use: a floating point count of days
// from a fixed epoch, with the fractional part encoding the time of day.
package oadate

import (
	"math"
	"time"
)

// Mode selects the workbook date system.
type Mode int

const (
	// Mode1900 is the default date system with epoch 1899-12-30, chosen
	// so serial 1 lands on 1900-01-01 despite the historical leap-year
	// bug carried by the 1900 system.
	Mode1900 Mode = iota
	// Mode1904 is the Macintosh date system with epoch 1904-01-01.
	Mode1904
)

var epochs = [2]time.Time{
	time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC),
	time.Date(1904, time.January, 1, 0, 0, 0, 0, time.UTC),
}

// Epoch returns serial day zero for the mode.
func (m Mode) Epoch() time.Time {
	if m == Mode1904 {
		return epochs[1]
	}
	return epochs[0]
}

// FromTime returns the serial-day representation of t in mode m.
func (m Mode) FromTime(t time.Time) float64 {
	epoch := m.Epoch()
	secs := float64(t.Unix()-epoch.Unix()) + float64(t.Nanosecond())/1e9
	return secs / 86400
}

// ToTime converts a serial day back to a time.Time in UTC.  The time of
// day is rounded to the nearest millisecond, which absorbs the float64
// noise serial arithmetic accumulates without disturbing any real-world
// timestamp.
func (m Mode) ToTime(serial float64) time.Time {
	days := math.Floor(serial)
	frac := serial - days
	ms := math.Round(frac * 86400 * 1000)
	return m.Epoch().AddDate(0, 0, int(days)).Add(time.Duration(ms) * time.Millisecond)
}
