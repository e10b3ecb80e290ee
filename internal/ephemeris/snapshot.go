package ephemeris

import "time"

// Body identifies a chart point.
type Body string

// Chart points. Earth is never computed by the ephemeris; it is derived
// from the Sun downstream and listed here so every stage shares one name.
const (
	Sun       Body = "sun"
	Earth     Body = "earth"
	Moon      Body = "moon"
	NorthNode Body = "north_node"
	SouthNode Body = "south_node"
	Mercury   Body = "mercury"
	Venus     Body = "venus"
	Mars      Body = "mars"
	Jupiter   Body = "jupiter"
	Saturn    Body = "saturn"
	Uranus    Body = "uranus"
	Neptune   Body = "neptune"
	Pluto     Body = "pluto"
)

// ComputedBodies lists every body a Snapshot holds, in computation order.
var ComputedBodies = [...]Body{
	Sun, Moon, NorthNode, SouthNode,
	Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto,
}

// Epoch tags which of the two chart instants a snapshot belongs to.
type Epoch string

// The two chart epochs.
const (
	Personality Epoch = "personality" // birth instant, conscious
	Design      Epoch = "design"      // offset instant, unconscious
)

// Position is the ecliptic position of one body at one instant. Longitude
// is always in [0, 360).
type Position struct {
	Body      Body    `json:"body" yaml:"body" toml:"body"`
	Longitude float64 `json:"longitude" yaml:"longitude" toml:"longitude"`
	Latitude  float64 `json:"latitude" yaml:"latitude" toml:"latitude"`
	Distance  float64 `json:"distance" yaml:"distance" toml:"distance"` // AU, km for the Moon
	Speed     float64 `json:"speed" yaml:"speed" toml:"speed"`          // degrees per day
}

// Snapshot holds the positions of every computed body at one Julian Day.
type Snapshot struct {
	Epoch     Epoch             `json:"epoch" yaml:"epoch" toml:"epoch"`
	JulianDay float64           `json:"julian_day" yaml:"julian_day" toml:"julian_day"`
	Time      time.Time         `json:"time" yaml:"time" toml:"time"`
	Positions map[Body]Position `json:"positions" yaml:"positions" toml:"positions"`
}

// Position returns the position of b and whether the snapshot holds it.
func (s Snapshot) Position(b Body) (Position, bool) {
	p, ok := s.Positions[b]
	return p, ok
}
