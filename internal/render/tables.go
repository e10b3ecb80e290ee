package render

import (
	"fmt"
	"strings"

	"github.com/papapumpkin/bodygraph/internal/centers"
	"github.com/papapumpkin/bodygraph/internal/gates"
)

// WheelSlot is one gate on the wheel.
type WheelSlot struct {
	Gate   int     `json:"gate" yaml:"gate" toml:"gate"`
	Start  float64 `json:"start" yaml:"start" toml:"start"`
	Center string  `json:"center" yaml:"center" toml:"center"`
}

// ChannelRow is one canonical channel and the centers it joins.
type ChannelRow struct {
	Gates   [2]int    `json:"gates" yaml:"gates" toml:"gates"`
	Centers [2]string `json:"centers" yaml:"centers" toml:"centers"`
}

// Tables is the reference data exposed by `bodygraph tables` and
// GET /v1/tables.
type Tables struct {
	WheelOffset float64          `json:"wheel_offset" yaml:"wheel_offset" toml:"wheel_offset"`
	Wheel       []WheelSlot      `json:"wheel" yaml:"wheel" toml:"wheel"`
	Centers     map[string][]int `json:"centers" yaml:"centers" toml:"centers"`
	Channels    []ChannelRow     `json:"channels" yaml:"channels" toml:"channels"`
}

// NewTables collects the reference tables in wheel order.
func NewTables() (Tables, error) {
	t := Tables{
		WheelOffset: gates.WheelOffset,
		Centers:     make(map[string][]int, centers.Count),
	}
	for _, g := range gates.Wheel() {
		start, _ := gates.SlotStart(g)
		c, err := centers.CenterOf(g)
		if err != nil {
			return Tables{}, err
		}
		t.Wheel = append(t.Wheel, WheelSlot{Gate: g, Start: start, Center: c.String()})
	}
	for _, c := range centers.All {
		t.Centers[c.String()] = centers.GatesOf(c)
	}
	for _, ch := range centers.Channels() {
		a, b, err := ch.Centers()
		if err != nil {
			return Tables{}, err
		}
		t.Channels = append(t.Channels, ChannelRow{Gates: ch.Pair(), Centers: [2]string{a.String(), b.String()}})
	}
	return t, nil
}

// TablesText renders the tables for the terminal.
func TablesText(t Tables) string {
	var b strings.Builder

	b.WriteString(styleHeading.Render(fmt.Sprintf("Wheel (gate 41 at %.0f°)", t.WheelOffset)))
	b.WriteString("\n")
	for i, s := range t.Wheel {
		b.WriteString(fmt.Sprintf("%3d %8.3f°  %-13s", s.Gate, s.Start, s.Center))
		if i%4 == 3 {
			b.WriteString("\n")
		}
	}

	b.WriteString(styleHeading.Render("Centers"))
	b.WriteString("\n")
	for _, c := range centers.All {
		gs := t.Centers[c.String()]
		parts := make([]string, len(gs))
		for i, g := range gs {
			parts[i] = fmt.Sprint(g)
		}
		b.WriteString(row(c.Title(), strings.Join(parts, " ")))
		b.WriteString("\n")
	}

	b.WriteString(styleHeading.Render("Channels"))
	b.WriteString("\n")
	for _, ch := range t.Channels {
		b.WriteString(fmt.Sprintf("%2d-%-2d  %s - %s\n", ch.Gates[0], ch.Gates[1], ch.Centers[0], ch.Centers[1]))
	}
	return b.String()
}
