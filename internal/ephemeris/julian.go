package ephemeris

import (
	"math"
	"time"
)

// J2000 is the Julian Day of 2000-01-01T12:00:00 UTC.
const J2000 = 2451545.0

// DaysPerCentury is the length of a Julian century in days.
const DaysPerCentury = 36525.0

const secondsPerDay = 86400.0

// JulianDay converts an instant to a Julian Day using the proleptic
// Gregorian calendar (Meeus, Astronomical Algorithms ch. 7). The time of day
// contributes the day fraction; sub-second precision is dropped.
func JulianDay(t time.Time) float64 {
	t = t.UTC()
	y, m := t.Year(), int(t.Month())
	if m <= 2 {
		y--
		m += 12
	}
	a := math.Floor(float64(y) / 100)
	b := 2 - a + math.Floor(a/4)

	seconds := t.Hour()*3600 + t.Minute()*60 + t.Second()
	day := float64(t.Day()) + float64(seconds)/secondsPerDay

	return math.Floor(365.25*float64(y+4716)) + math.Floor(30.6001*float64(m+1)) + day + b - 1524.5
}

// TimeOf converts a Julian Day back to a UTC instant, rounded to the second.
func TimeOf(jd float64) time.Time {
	offset := (jd - J2000) * secondsPerDay
	epoch := time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)
	return epoch.Add(time.Duration(math.Round(offset)) * time.Second)
}

// Centuries returns Julian centuries elapsed since J2000.
func Centuries(jd float64) float64 {
	return (jd - J2000) / DaysPerCentury
}

// Normalize folds any finite angle into [0, 360).
func Normalize(deg float64) float64 {
	r := math.Mod(deg, 360)
	if r < 0 {
		r += 360
	}
	// math.Mod of a tiny negative value can round back up to exactly 360.
	if r >= 360 {
		r = 0
	}
	return r
}

func sinDeg(deg float64) float64 { return math.Sin(deg * math.Pi / 180) }
func cosDeg(deg float64) float64 { return math.Cos(deg * math.Pi / 180) }
