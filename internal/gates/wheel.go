// Package gates maps ecliptic longitudes onto the 64-gate wheel and turns an
// ephemeris snapshot into the 13 gate/line activations of one epoch.
package gates

import (
	"math"

	"github.com/papapumpkin/bodygraph/internal/ephemeris"
)

// Wheel geometry. The first slot (gate 41) starts at 2° Aquarius.
const (
	WheelOffset = 302.0
	GateWidth   = 360.0 / 64
	LineWidth   = GateWidth / 6
	GateCount   = 64
	LineCount   = 6
)

// wheel lists the gates in slot order, counter-clockwise from WheelOffset.
var wheel = [GateCount]int{
	41, 19, 13, 49, 30, 55, 37, 63,
	22, 36, 25, 17, 21, 51, 42, 3,
	27, 24, 2, 23, 8, 20, 16, 35,
	45, 12, 15, 52, 39, 53, 62, 56,
	31, 33, 7, 4, 29, 59, 40, 64,
	47, 6, 46, 18, 48, 57, 32, 50,
	28, 44, 1, 43, 14, 34, 9, 5,
	26, 11, 10, 58, 38, 54, 61, 60,
}

// Wheel returns the gates in slot order.
func Wheel() [GateCount]int {
	return wheel
}

// Map returns the gate and line for an ecliptic longitude. It is total over
// finite input: the longitude is normalised first and the line is clamped to
// [1, 6] so slot-boundary rounding cannot escape the range.
func Map(longitude float64) (gate, line int) {
	pos := ephemeris.Normalize(longitude - WheelOffset)

	slot := int(math.Floor(pos / GateWidth))
	slot = clamp(slot, 0, GateCount-1)

	within := pos - float64(slot)*GateWidth
	line = int(math.Floor(within/LineWidth)) + 1
	line = clamp(line, 1, LineCount)

	return wheel[slot], line
}

// SlotStart returns the longitude at which gate begins, and false when gate
// is not on the wheel.
func SlotStart(gate int) (float64, bool) {
	for i, g := range wheel {
		if g == gate {
			return ephemeris.Normalize(WheelOffset + float64(i)*GateWidth), true
		}
	}
	return 0, false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
