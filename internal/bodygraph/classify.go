package bodygraph

import (
	"fmt"

	"github.com/papapumpkin/bodygraph/internal/centers"
)

// Classifier turns a center graph into a Bodygraph. It holds only the
// parsed catalog and is safe for concurrent use.
type Classifier struct {
	catalog catalog
}

// NewClassifier parses the embedded catalog and checks that it covers every
// type, authority, and profile line.
func NewClassifier() (*Classifier, error) {
	c, err := parseCatalog(catalogTOML)
	if err != nil {
		return nil, err
	}
	return &Classifier{catalog: c}, nil
}

// Classify derives the full chart record from g. Profile, cross and gate
// lists all read the activations g was built from.
func (c *Classifier) Classify(g *centers.Graph) (Bodygraph, error) {
	personality, design := g.Personality(), g.Design()
	profile, err := ProfileOf(personality, design)
	if err != nil {
		return Bodygraph{}, err
	}
	cross, err := CrossOf(personality, design)
	if err != nil {
		return Bodygraph{}, err
	}
	profileName, err := c.ProfileName(profile)
	if err != nil {
		return Bodygraph{}, err
	}

	typ := TypeOf(g)
	auth := AuthorityOf(g)

	tt, ok := c.catalog.Types[string(typ)]
	if !ok {
		return Bodygraph{}, gap(fmt.Sprintf("type %q has no text", typ))
	}
	at, ok := c.catalog.Authorities[string(auth)]
	if !ok {
		return Bodygraph{}, gap(fmt.Sprintf("authority %q has no text", auth))
	}

	return Bodygraph{
		Type:         typ,
		Profile:      profile.String(),
		ProfileName:  profileName,
		Authority:    auth,
		Strategy:     tt.Strategy,
		Definition:   DefinitionOf(g),
		NotSelfTheme: tt.NotSelf,
		LifePurpose:  tt.Purpose + ". " + at.Guidance + ".",
		Cross:        cross,
		Centers:      centersOf(g),
		Gates:        gateListsOf(personality, design),
	}, nil
}

// ProfileName returns the presentational label of p, e.g. "Martyr/Heretic".
func (c *Classifier) ProfileName(p Profile) (string, error) {
	a, err := c.catalog.lineLabel(p.Conscious)
	if err != nil {
		return "", err
	}
	b, err := c.catalog.lineLabel(p.Unconscious)
	if err != nil {
		return "", err
	}
	return a + "/" + b, nil
}

// TypeOf classifies g. The first matching rule wins:
//
//  1. no defined center: Reflector
//  2. Sacral and Throat joined by a completed channel: Manifesting Generator
//  3. Throat and a non-Sacral motor defined, Sacral undefined: Manifestor
//  4. Sacral defined: Generator
//  5. otherwise: Projector
//
// Sacral and Throat both defined through unrelated channels is a Generator.
func TypeOf(g *centers.Graph) Type {
	sacral := g.Defined(centers.Sacral)
	throat := g.Defined(centers.Throat)

	switch {
	case g.DefinedCount() == 0:
		return Reflector
	case sacral && throat && sacralToThroat(g):
		return ManifestingGenerator
	case throat && !sacral && (g.Defined(centers.Heart) || g.Defined(centers.Root) || g.Defined(centers.SolarPlexus)):
		return Manifestor
	case sacral:
		return Generator
	default:
		return Projector
	}
}

func sacralToThroat(g *centers.Graph) bool {
	for _, ch := range g.Completed() {
		if ch.Connects(centers.Sacral, centers.Throat) {
			return true
		}
	}
	return false
}

// authorityOrder is the precedence of defined centers for authority.
var authorityOrder = [...]struct {
	center    centers.Center
	authority Authority
}{
	{centers.SolarPlexus, Emotional},
	{centers.Sacral, Sacral},
	{centers.Spleen, Splenic},
	{centers.Heart, Ego},
	{centers.G, SelfProjected},
	{centers.Throat, Mental},
	{centers.Ajna, Mental},
	{centers.Head, Mental},
}

// AuthorityOf returns the authority of the highest-precedence defined
// center, or Lunar when no center is defined.
func AuthorityOf(g *centers.Graph) Authority {
	for _, e := range authorityOrder {
		if g.Defined(e.center) {
			return e.authority
		}
	}
	return Lunar
}

// DefinitionOf counts the connected regions of defined centers.
func DefinitionOf(g *centers.Graph) Definition {
	switch n := len(g.Components()); {
	case n == 0:
		return NoDefinition
	case n == 1:
		return Single
	case n == 2:
		return Split
	default:
		return TripleSplit
	}
}
