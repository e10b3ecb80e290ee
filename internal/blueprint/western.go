package blueprint

import (
	"math"

	"github.com/papapumpkin/bodygraph/internal/ephemeris"
)

type sign struct {
	name     string
	element  string
	modality string
}

var zodiac = [12]sign{
	{"Aries", "Fire", "Cardinal"},
	{"Taurus", "Earth", "Fixed"},
	{"Gemini", "Air", "Mutable"},
	{"Cancer", "Water", "Cardinal"},
	{"Leo", "Fire", "Fixed"},
	{"Virgo", "Earth", "Mutable"},
	{"Libra", "Air", "Cardinal"},
	{"Scorpio", "Water", "Fixed"},
	{"Sagittarius", "Fire", "Mutable"},
	{"Capricorn", "Earth", "Cardinal"},
	{"Aquarius", "Air", "Fixed"},
	{"Pisces", "Water", "Mutable"},
}

// Placement is a body's tropical sign and the degree within it.
type Placement struct {
	Sign     string  `json:"sign" yaml:"sign" toml:"sign"`
	Degree   float64 `json:"degree" yaml:"degree" toml:"degree"`
	Element  string  `json:"element" yaml:"element" toml:"element"`
	Modality string  `json:"modality" yaml:"modality" toml:"modality"`
}

// Western holds the Sun and Moon placements of the personality epoch.
type Western struct {
	Sun  Placement `json:"sun" yaml:"sun" toml:"sun"`
	Moon Placement `json:"moon" yaml:"moon" toml:"moon"`
}

// PlacementOf returns the tropical sign holding longitude. The degree is
// rounded to two decimals.
func PlacementOf(longitude float64) Placement {
	lon := ephemeris.Normalize(longitude)
	idx := int(lon / 30)
	if idx > 11 {
		idx = 11
	}
	s := zodiac[idx]
	return Placement{
		Sign:     s.name,
		Degree:   math.Round((lon-float64(idx)*30)*100) / 100,
		Element:  s.element,
		Modality: s.modality,
	}
}

// WesternOf reads the Sun and Moon placements from a personality snapshot.
func WesternOf(s ephemeris.Snapshot) (Western, error) {
	sun, err := position(s, ephemeris.Sun)
	if err != nil {
		return Western{}, err
	}
	moon, err := position(s, ephemeris.Moon)
	if err != nil {
		return Western{}, err
	}
	return Western{Sun: PlacementOf(sun.Longitude), Moon: PlacementOf(moon.Longitude)}, nil
}
