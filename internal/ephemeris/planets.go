package ephemeris

import "math"

// Elements are the fixed orbital constants of the single-ellipse planet
// model. Angles are degrees at J2000; SemiMajorAxis is in AU and Period in
// days.
type Elements struct {
	SemiMajorAxis float64
	Period        float64
	Eccentricity  float64
	Inclination   float64
	Node          float64 // longitude of the ascending node
	Perihelion    float64 // argument of perihelion
	MeanAnomaly   float64 // mean anomaly at J2000
}

// planetElements holds the model constants for Mercury through Pluto.
var planetElements = map[Body]Elements{
	Mercury: {SemiMajorAxis: 0.387098, Period: 87.969, Eccentricity: 0.205630, Inclination: 7.005, Node: 48.331, Perihelion: 29.124, MeanAnomaly: 174.795},
	Venus:   {SemiMajorAxis: 0.723332, Period: 224.701, Eccentricity: 0.006772, Inclination: 3.39458, Node: 76.680, Perihelion: 54.884, MeanAnomaly: 50.115},
	Mars:    {SemiMajorAxis: 1.523679, Period: 686.980, Eccentricity: 0.0934, Inclination: 1.850, Node: 49.558, Perihelion: 286.502, MeanAnomaly: 19.373},
	Jupiter: {SemiMajorAxis: 5.2044, Period: 4332.59, Eccentricity: 0.0489, Inclination: 1.303, Node: 100.464, Perihelion: 273.867, MeanAnomaly: 20.020},
	Saturn:  {SemiMajorAxis: 9.5826, Period: 10759.22, Eccentricity: 0.0565, Inclination: 2.485, Node: 113.665, Perihelion: 339.392, MeanAnomaly: 317.020},
	Uranus:  {SemiMajorAxis: 19.2184, Period: 30688.5, Eccentricity: 0.046381, Inclination: 0.773, Node: 74.006, Perihelion: 96.998857, MeanAnomaly: 142.2386},
	Neptune: {SemiMajorAxis: 30.110387, Period: 60195, Eccentricity: 0.009456, Inclination: 1.767975, Node: 131.784, Perihelion: 276.336, MeanAnomaly: 256.228},
	Pluto:   {SemiMajorAxis: 39.482, Period: 90560, Eccentricity: 0.2488, Inclination: 17.16, Node: 110.299, Perihelion: 113.834, MeanAnomaly: 14.53},
}

// ElementsOf returns the orbital constants for a planet.
func ElementsOf(b Body) (Elements, bool) {
	e, ok := planetElements[b]
	return e, ok
}

// planet evaluates the single-ellipse model. The eccentric anomaly uses one
// Kepler iteration and the latitude is inclination·sin(E+ω) rather than a
// true orbital-plane projection. Both simplifications are intentional.
func planet(b Body, el Elements, t float64) Position {
	m := (360/el.Period)*t*DaysPerCentury + el.MeanAnomaly
	k := el.Eccentricity * 180 / math.Pi
	e := m + k*sinDeg(m)

	return Position{
		Body:      b,
		Longitude: Normalize(e + el.Perihelion + el.Node),
		Latitude:  el.Inclination * sinDeg(e+el.Perihelion),
		Distance:  el.SemiMajorAxis * (1 - el.Eccentricity*cosDeg(e)),
		Speed:     360 / el.Period,
	}
}
