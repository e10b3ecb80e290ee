package gates

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/papapumpkin/bodygraph/internal/ephemeris"
	"github.com/papapumpkin/bodygraph/internal/fault"
)

// PointsPerEpoch is the number of activations produced for each epoch.
const PointsPerEpoch = 13

// Points lists the chart points in output order. Earth is derived from the
// Sun; every other point is read from the snapshot.
var Points = [PointsPerEpoch]ephemeris.Body{
	ephemeris.Sun,
	ephemeris.Earth,
	ephemeris.Moon,
	ephemeris.NorthNode,
	ephemeris.SouthNode,
	ephemeris.Mercury,
	ephemeris.Venus,
	ephemeris.Mars,
	ephemeris.Jupiter,
	ephemeris.Saturn,
	ephemeris.Uranus,
	ephemeris.Neptune,
	ephemeris.Pluto,
}

// Activation is one chart point landing on a gate and line.
type Activation struct {
	Body      ephemeris.Body
	Epoch     ephemeris.Epoch
	Gate      int
	Line      int
	Longitude float64
}

// String formats the activation as "<gate>.<line>".
func (a Activation) String() string {
	return strconv.Itoa(a.Gate) + "." + strconv.Itoa(a.Line)
}

// Activations is the ordered set of activations for one epoch.
type Activations []Activation

// Find returns the activation for body.
func (as Activations) Find(body ephemeris.Body) (Activation, bool) {
	for _, a := range as {
		if a.Body == body {
			return a, true
		}
	}
	return Activation{}, false
}

// Gates returns the distinct activated gate numbers in ascending order.
func (as Activations) Gates() []int {
	seen := make(map[int]bool, len(as))
	var out []int
	for _, a := range as {
		if !seen[a.Gate] {
			seen[a.Gate] = true
			out = append(out, a.Gate)
		}
	}
	sort.Ints(out)
	return out
}

// Strings formats every activation as "<gate>.<line>", keeping point order.
func (as Activations) Strings() []string {
	out := make([]string, len(as))
	for i, a := range as {
		out[i] = a.String()
	}
	return out
}

// Activate maps every chart point of a snapshot onto the wheel. Earth is
// placed exactly opposite the Sun.
func Activate(s ephemeris.Snapshot) (Activations, error) {
	out := make(Activations, 0, PointsPerEpoch)
	for _, body := range Points {
		lon, err := longitudeOf(s, body)
		if err != nil {
			return nil, err
		}
		gate, line := Map(lon)
		out = append(out, Activation{
			Body:      body,
			Epoch:     s.Epoch,
			Gate:      gate,
			Line:      line,
			Longitude: lon,
		})
	}
	return out, nil
}

// EarthLongitude returns the synthetic Earth longitude for a Sun longitude.
func EarthLongitude(sunLongitude float64) float64 {
	return ephemeris.Normalize(sunLongitude + 180)
}

func longitudeOf(s ephemeris.Snapshot, body ephemeris.Body) (float64, error) {
	source := body
	if body == ephemeris.Earth {
		source = ephemeris.Sun
	}
	p, ok := s.Position(source)
	if !ok {
		return 0, &fault.ConsistencyError{
			Table:  "snapshot",
			Detail: fmt.Sprintf("%s epoch has no %s position", s.Epoch, source),
			Err:    fault.ErrTableGap,
		}
	}
	if body == ephemeris.Earth {
		return EarthLongitude(p.Longitude), nil
	}
	return p.Longitude, nil
}
