// Package ephemeris computes simplified ecliptic positions of the Sun, Moon,
// mean lunar nodes and the planets Mercury through Pluto from closed-form,
// low-order series. It trades accuracy for determinism and constant cost:
// every position is a pure function of the Julian Day.
package ephemeris

import (
	"math"

	"github.com/papapumpkin/bodygraph/internal/birth"
	"github.com/papapumpkin/bodygraph/internal/fault"
)

// Calculator evaluates the ephemeris. It holds no state and is safe for
// concurrent use; the zero value is ready to use.
type Calculator struct{}

// NewCalculator returns a Calculator.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Compute returns the personality snapshot for a birth moment. It rejects
// instants outside the supported range with a *fault.ValidationError.
func (c *Calculator) Compute(m birth.Moment) (Snapshot, error) {
	if err := birth.CheckInstant(m.UTC); err != nil {
		return Snapshot{}, err
	}
	return c.At(JulianDay(m.UTC), Personality)
}

// At returns the snapshot for an arbitrary Julian Day, tagged with epoch.
// Any non-finite result aborts with a *fault.CalculationError.
func (c *Calculator) At(jd float64, epoch Epoch) (Snapshot, error) {
	if math.IsNaN(jd) || math.IsInf(jd, 0) {
		return Snapshot{}, &fault.CalculationError{Body: "julian_day", Quantity: "value", Value: jd, Err: fault.ErrNonFinite}
	}
	t := Centuries(jd)

	positions := make(map[Body]Position, len(ComputedBodies))
	positions[Sun] = sun(t)
	positions[Moon] = moon(t)
	north, south := nodes(t)
	positions[NorthNode] = north
	positions[SouthNode] = south
	for b, el := range planetElements {
		positions[b] = planet(b, el, t)
	}

	for _, b := range ComputedBodies {
		if err := checkFinite(positions[b]); err != nil {
			return Snapshot{}, err
		}
	}

	return Snapshot{
		Epoch:     epoch,
		JulianDay: jd,
		Time:      TimeOf(jd),
		Positions: positions,
	}, nil
}

func checkFinite(p Position) error {
	fields := []struct {
		name string
		v    float64
	}{
		{"longitude", p.Longitude},
		{"latitude", p.Latitude},
		{"distance", p.Distance},
		{"speed", p.Speed},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return &fault.CalculationError{Body: string(p.Body), Quantity: f.name, Value: f.v, Err: fault.ErrNonFinite}
		}
	}
	return nil
}
