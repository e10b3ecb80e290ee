package bodygraph

import "strconv"

// Type is the energy type of a chart.
type Type string

// Chart types, in classification order.
const (
	Reflector            Type = "Reflector"
	ManifestingGenerator Type = "Manifesting Generator"
	Manifestor           Type = "Manifestor"
	Generator            Type = "Generator"
	Projector            Type = "Projector"
)

// Types lists every chart type in classification order.
var Types = [...]Type{Reflector, ManifestingGenerator, Manifestor, Generator, Projector}

// Authority is the decision-making authority of a chart.
type Authority string

// Authorities, in precedence order.
const (
	Emotional     Authority = "Emotional"
	Sacral        Authority = "Sacral"
	Splenic       Authority = "Splenic"
	Ego           Authority = "Ego"
	SelfProjected Authority = "Self-Projected"
	Mental        Authority = "Mental"
	Lunar         Authority = "Lunar"
)

// Authorities lists every authority in precedence order.
var Authorities = [...]Authority{Emotional, Sacral, Splenic, Ego, SelfProjected, Mental, Lunar}

// Definition describes how the defined centers hang together.
type Definition string

// Definition kinds by number of connected regions.
const (
	NoDefinition Definition = "No Definition"
	Single       Definition = "Single"
	Split        Definition = "Split"
	TripleSplit  Definition = "Triple Split"
)

// Profile pairs the conscious personality Sun line with the unconscious
// design Earth line.
type Profile struct {
	Conscious   int
	Unconscious int
}

// String formats the profile as "N/M".
func (p Profile) String() string {
	return strconv.Itoa(p.Conscious) + "/" + strconv.Itoa(p.Unconscious)
}
