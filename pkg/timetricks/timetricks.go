// Package timetricks has small helpers for moving Unix timestamps between
// UTC and a spot's local time. The forecast provider reports timestamps in
// UTC seconds; everything shown to a person is local to the spot.
package timetricks

import (
	"fmt"
	"time"
)

// LocalFormat is the wall-clock format used everywhere a localized time is
// stored or displayed.
const LocalFormat = "2006-01-02 15:04:05"

// FormatLocal renders a Unix timestamp as a LocalFormat string in loc.
func FormatLocal(unix int64, loc *time.Location) string {
	return time.Unix(unix, 0).In(loc).Format(LocalFormat)
}

// LocalHour returns the hour of day (0-23) of a Unix timestamp in loc.
func LocalHour(unix int64, loc *time.Location) int {
	return time.Unix(unix, 0).In(loc).Hour()
}

// FixedZone builds a location from a raw UTC offset in hours. Weather
// samples carry their own offset per record instead of a zone name, and the
// offset may be fractional (e.g. +5.5 for IST).
func FixedZone(offsetHours float64) *time.Location {
	return time.FixedZone(fmt.Sprintf("UTC%+g", offsetHours), int(offsetHours*3600))
}
