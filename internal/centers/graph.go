package centers

import (
	"sort"

	"github.com/papapumpkin/bodygraph/internal/gates"
	"github.com/papapumpkin/bodygraph/internal/graph"
)

// State is the per-chart state of one center.
type State struct {
	Center   Center
	Defined  bool
	Gates    []int     // activated gates held by the center, ascending
	Channels []Channel // completed channels touching the center
}

// Graph is the center graph of one chart. It is immutable once built.
type Graph struct {
	states      [Count]State
	completed   []Channel
	active      map[int]bool
	personality gates.Activations
	design      gates.Activations
}

// Build derives the center graph from the personality and design
// activations. Activated gates are the union of both sets. Every activated
// gate is recorded under its center as a loose gate; a channel whose two
// gates are both active is completed and defines both of its centers.
func Build(personality, design gates.Activations) (*Graph, error) {
	g := &Graph{
		active:      make(map[int]bool),
		personality: personality,
		design:      design,
	}
	for i, c := range All {
		g.states[i].Center = c
	}

	for _, set := range []gates.Activations{personality, design} {
		for _, a := range set {
			if g.active[a.Gate] {
				continue
			}
			c, err := CenterOf(a.Gate)
			if err != nil {
				return nil, err
			}
			g.active[a.Gate] = true
			st := &g.states[c.index()]
			st.Gates = append(st.Gates, a.Gate)
		}
	}
	for i := range g.states {
		sort.Ints(g.states[i].Gates)
	}

	for _, ch := range channels {
		if !g.active[ch.A] || !g.active[ch.B] {
			continue
		}
		a, b, err := ch.Centers()
		if err != nil {
			return nil, err
		}
		g.completed = append(g.completed, ch)
		for _, c := range []Center{a, b} {
			st := &g.states[c.index()]
			st.Defined = true
			st.Channels = append(st.Channels, ch)
		}
	}
	return g, nil
}

// State returns the state of center c. An invalid center yields a zero State.
func (g *Graph) State(c Center) State {
	if !c.Valid() {
		return State{}
	}
	return g.states[c.index()]
}

// States returns every center state in canonical order.
func (g *Graph) States() []State {
	out := make([]State, Count)
	copy(out, g.states[:])
	return out
}

// Defined reports whether center c is defined.
func (g *Graph) Defined(c Center) bool {
	return c.Valid() && g.states[c.index()].Defined
}

// DefinedCenters returns the defined centers in canonical order.
func (g *Graph) DefinedCenters() []Center {
	var out []Center
	for _, st := range g.states {
		if st.Defined {
			out = append(out, st.Center)
		}
	}
	return out
}

// DefinedCount returns the number of defined centers.
func (g *Graph) DefinedCount() int {
	return len(g.DefinedCenters())
}

// Completed returns the completed channels in canonical order.
func (g *Graph) Completed() []Channel {
	out := make([]Channel, len(g.completed))
	copy(out, g.completed)
	return out
}

// HasChannel reports whether the channel joining gates x and y is complete.
func (g *Graph) HasChannel(x, y int) bool {
	want := NewChannel(x, y)
	for _, ch := range g.completed {
		if ch == want {
			return true
		}
	}
	return false
}

// Active reports whether gate is activated in either epoch.
func (g *Graph) Active(gate int) bool {
	return g.active[gate]
}

// ActivatedGates returns every activated gate in ascending order.
func (g *Graph) ActivatedGates() []int {
	out := make([]int, 0, len(g.active))
	for gate := range g.active {
		out = append(out, gate)
	}
	sort.Ints(out)
	return out
}

// Personality returns the personality activations the graph was built from.
func (g *Graph) Personality() gates.Activations {
	return g.personality
}

// Design returns the design activations the graph was built from.
func (g *Graph) Design() gates.Activations {
	return g.design
}

// Components returns the connected regions of the defined centers, joined
// by completed channels. Each region lists its centers in canonical order
// and regions are ordered by their first center.
func (g *Graph) Components() [][]Center {
	uf := graph.NewUnionFind[Center]()
	for _, st := range g.states {
		if st.Defined {
			uf.Add(st.Center)
		}
	}
	for _, ch := range g.completed {
		a, b, err := ch.Centers()
		if err != nil {
			continue
		}
		uf.Union(a, b)
	}
	return uf.Components()
}
