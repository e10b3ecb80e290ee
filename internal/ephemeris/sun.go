package ephemeris

// SunSpeed is the mean daily motion of the Sun in degrees, used as a
// constant speed for every chart.
const SunSpeed = 0.9856

// sunMeanAnomaly is shared by the solar and lunar series.
func sunMeanAnomaly(t float64) float64 {
	return 357.52911 + 35999.05029*t - 0.0001537*t*t
}

// sun computes the apparent geocentric longitude of the Sun with the
// low-precision series of Meeus ch. 25 (about 0.01 degree).
func sun(t float64) Position {
	l0 := 280.46646 + 36000.76983*t + 0.0003032*t*t
	m := sunMeanAnomaly(t)

	c := (1.914602-0.004817*t-0.000014*t*t)*sinDeg(m) +
		(0.019993-0.000101*t)*sinDeg(2*m) +
		0.000289*sinDeg(3*m)

	trueLong := l0 + c
	omega := 125.04 - 1934.136*t
	apparent := trueLong - 0.00569 - 0.00478*sinDeg(omega)

	e := 0.016708634 - 0.000042037*t - 0.0000001267*t*t
	nu := m + c
	r := 1.000001018 * (1 - e*e) / (1 + e*cosDeg(nu))

	return Position{
		Body:      Sun,
		Longitude: Normalize(apparent),
		Latitude:  0,
		Distance:  r,
		Speed:     SunSpeed,
	}
}
