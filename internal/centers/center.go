// Package centers holds the gate-to-center and channel reference tables and
// builds the per-chart center graph: which gates are active in each center,
// which channels are complete, and which centers those channels define.
package centers

import "fmt"

// Center is one of the nine bodygraph centers. The zero value is not a
// center and marks a gap in the reference tables.
type Center int

// The nine centers, top of the bodygraph to bottom.
const (
	Head Center = iota + 1
	Ajna
	Throat
	G
	Heart
	SolarPlexus
	Sacral
	Spleen
	Root
)

// Count is the number of centers.
const Count = 9

// All lists the centers in canonical order.
var All = [Count]Center{Head, Ajna, Throat, G, Heart, SolarPlexus, Sacral, Spleen, Root}

var centerKeys = [...]string{
	Head:        "head",
	Ajna:        "ajna",
	Throat:      "throat",
	G:           "g",
	Heart:       "heart",
	SolarPlexus: "solar_plexus",
	Sacral:      "sacral",
	Spleen:      "spleen",
	Root:        "root",
}

var centerTitles = [...]string{
	Head:        "Head",
	Ajna:        "Ajna",
	Throat:      "Throat",
	G:           "G",
	Heart:       "Heart",
	SolarPlexus: "Solar Plexus",
	Sacral:      "Sacral",
	Spleen:      "Spleen",
	Root:        "Root",
}

// Valid reports whether c is one of the nine centers.
func (c Center) Valid() bool {
	return c >= Head && c <= Root
}

// String returns the snake_case key used in serialized charts.
func (c Center) String() string {
	if !c.Valid() {
		return fmt.Sprintf("center(%d)", int(c))
	}
	return centerKeys[c]
}

// Title returns the display name, e.g. "Solar Plexus".
func (c Center) Title() string {
	if !c.Valid() {
		return c.String()
	}
	return centerTitles[c]
}

// IsMotor reports whether c is one of the four motor centers.
func (c Center) IsMotor() bool {
	switch c {
	case Sacral, Heart, SolarPlexus, Root:
		return true
	}
	return false
}

// index returns the arena slot of c.
func (c Center) index() int {
	return int(c) - 1
}
