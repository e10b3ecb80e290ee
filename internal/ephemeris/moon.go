package ephemeris

// Lunar distance and speed are fixed means. The chart only consumes lunar
// longitude, so the model does not carry a perturbation series for them.
const (
	MoonDistanceKM = 384400.0
	MoonSpeed      = 13.176
)

// moon computes the geocentric lunar longitude from its mean longitude plus
// the six largest periodic terms, and latitude from four terms. Accuracy is
// a few tenths of a degree, which is coarse on purpose.
func moon(t float64) Position {
	lp := 218.3164477 + 481267.88123421*t // mean longitude
	d := 297.8501921 + 445267.1114034*t   // mean elongation
	m := sunMeanAnomaly(t)
	mp := 134.9633964 + 477198.8675055*t // mean anomaly
	f := 93.2720950 + 483202.0175233*t   // argument of latitude

	lon := lp +
		6.289*sinDeg(mp) +
		1.274*sinDeg(2*d-mp) +
		0.658*sinDeg(2*d) +
		0.214*sinDeg(2*mp) -
		0.186*sinDeg(m) -
		0.114*sinDeg(2*f)

	lat := 5.128*sinDeg(f) +
		0.281*sinDeg(mp+f) +
		0.278*sinDeg(mp-f) +
		0.173*sinDeg(2*d-f)

	return Position{
		Body:      Moon,
		Longitude: Normalize(lon),
		Latitude:  lat,
		Distance:  MoonDistanceKM,
		Speed:     MoonSpeed,
	}
}
