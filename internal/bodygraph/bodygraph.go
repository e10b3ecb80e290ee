// Package bodygraph classifies a center graph into the final chart record:
// type, authority, profile, definition, incarnation cross and the
// presentational strategy, not-self theme and life purpose text.
package bodygraph

import (
	"github.com/papapumpkin/bodygraph/internal/centers"
	"github.com/papapumpkin/bodygraph/internal/gates"
)

// Bodygraph is the serialized chart record.
type Bodygraph struct {
	Type         Type       `json:"type" yaml:"type" toml:"type"`
	Profile      string     `json:"profile" yaml:"profile" toml:"profile"`
	ProfileName  string     `json:"profile_name" yaml:"profile_name" toml:"profile_name"`
	Authority    Authority  `json:"authority" yaml:"authority" toml:"authority"`
	Strategy     string     `json:"strategy" yaml:"strategy" toml:"strategy"`
	Definition   Definition `json:"definition" yaml:"definition" toml:"definition"`
	NotSelfTheme string     `json:"not_self_theme" yaml:"not_self_theme" toml:"not_self_theme"`
	LifePurpose  string     `json:"life_purpose" yaml:"life_purpose" toml:"life_purpose"`
	Cross        Cross      `json:"incarnation_cross" yaml:"incarnation_cross" toml:"incarnation_cross"`
	Centers      Centers    `json:"centers" yaml:"centers" toml:"centers"`
	Gates        GateLists  `json:"gates" yaml:"gates" toml:"gates"`
}

// CenterState is the serialized state of one center.
type CenterState struct {
	Defined  bool     `json:"defined" yaml:"defined" toml:"defined"`
	Gates    []int    `json:"gates" yaml:"gates" toml:"gates"`
	Channels [][2]int `json:"channels" yaml:"channels" toml:"channels"`
}

// Centers holds every center state under its serialized key, in canonical
// order.
type Centers struct {
	Head        CenterState `json:"head" yaml:"head" toml:"head"`
	Ajna        CenterState `json:"ajna" yaml:"ajna" toml:"ajna"`
	Throat      CenterState `json:"throat" yaml:"throat" toml:"throat"`
	G           CenterState `json:"g" yaml:"g" toml:"g"`
	Heart       CenterState `json:"heart" yaml:"heart" toml:"heart"`
	SolarPlexus CenterState `json:"solar_plexus" yaml:"solar_plexus" toml:"solar_plexus"`
	Sacral      CenterState `json:"sacral" yaml:"sacral" toml:"sacral"`
	Spleen      CenterState `json:"spleen" yaml:"spleen" toml:"spleen"`
	Root        CenterState `json:"root" yaml:"root" toml:"root"`
}

// Get returns the state stored for c.
func (cs *Centers) Get(c centers.Center) CenterState {
	if p := cs.slot(c); p != nil {
		return *p
	}
	return CenterState{}
}

func (cs *Centers) slot(c centers.Center) *CenterState {
	switch c {
	case centers.Head:
		return &cs.Head
	case centers.Ajna:
		return &cs.Ajna
	case centers.Throat:
		return &cs.Throat
	case centers.G:
		return &cs.G
	case centers.Heart:
		return &cs.Heart
	case centers.SolarPlexus:
		return &cs.SolarPlexus
	case centers.Sacral:
		return &cs.Sacral
	case centers.Spleen:
		return &cs.Spleen
	case centers.Root:
		return &cs.Root
	}
	return nil
}

// GateLists holds the two 13-entry "<gate>.<line>" lists.
type GateLists struct {
	ConsciousPersonality []string `json:"conscious_personality" yaml:"conscious_personality" toml:"conscious_personality"`
	UnconsciousDesign    []string `json:"unconscious_design" yaml:"unconscious_design" toml:"unconscious_design"`
}

func centersOf(g *centers.Graph) Centers {
	var out Centers
	for _, st := range g.States() {
		p := out.slot(st.Center)
		if p == nil {
			continue
		}
		p.Defined = st.Defined
		p.Gates = append([]int{}, st.Gates...)
		p.Channels = make([][2]int, 0, len(st.Channels))
		for _, ch := range st.Channels {
			p.Channels = append(p.Channels, ch.Pair())
		}
	}
	return out
}

func gateListsOf(personality, design gates.Activations) GateLists {
	return GateLists{
		ConsciousPersonality: personality.Strings(),
		UnconsciousDesign:    design.Strings(),
	}
}
