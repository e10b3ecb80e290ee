package bodygraph

import (
	"fmt"

	"github.com/papapumpkin/bodygraph/internal/ephemeris"
	"github.com/papapumpkin/bodygraph/internal/fault"
	"github.com/papapumpkin/bodygraph/internal/gates"
)

// CrossAngle is the geometry of an incarnation cross.
type CrossAngle string

// Cross angles.
const (
	RightAngle    CrossAngle = "Right Angle"
	Juxtaposition CrossAngle = "Juxtaposition"
	LeftAngle     CrossAngle = "Left Angle"
)

// Cross is the incarnation cross: the Sun and Earth gates of both epochs.
// Gates holds personality Sun, personality Earth, design Sun, design Earth.
type Cross struct {
	Angle CrossAngle `json:"angle" yaml:"angle" toml:"angle"`
	Gates []int      `json:"gates" yaml:"gates" toml:"gates"`
	Name  string     `json:"name" yaml:"name" toml:"name"`
}

// ProfileOf reads the profile from the personality Sun line and the design
// Earth line.
func ProfileOf(personality, design gates.Activations) (Profile, error) {
	sun, err := find(personality, ephemeris.Personality, ephemeris.Sun)
	if err != nil {
		return Profile{}, err
	}
	earth, err := find(design, ephemeris.Design, ephemeris.Earth)
	if err != nil {
		return Profile{}, err
	}
	return Profile{Conscious: sun.Line, Unconscious: earth.Line}, nil
}

// AngleOf returns the cross angle for p. Conscious lines 1 to 3 are right
// angle, 5 and 6 left angle; line 4 is juxtaposition over an unconscious
// line 1 and right angle otherwise.
func AngleOf(p Profile) CrossAngle {
	switch {
	case p.Conscious >= 5:
		return LeftAngle
	case p.Conscious == 4 && p.Unconscious == 1:
		return Juxtaposition
	default:
		return RightAngle
	}
}

// CrossOf builds the incarnation cross from the Sun and Earth activations
// of both epochs.
func CrossOf(personality, design gates.Activations) (Cross, error) {
	var quartet []int
	for _, pick := range []struct {
		acts  gates.Activations
		epoch ephemeris.Epoch
		body  ephemeris.Body
	}{
		{personality, ephemeris.Personality, ephemeris.Sun},
		{personality, ephemeris.Personality, ephemeris.Earth},
		{design, ephemeris.Design, ephemeris.Sun},
		{design, ephemeris.Design, ephemeris.Earth},
	} {
		a, err := find(pick.acts, pick.epoch, pick.body)
		if err != nil {
			return Cross{}, err
		}
		quartet = append(quartet, a.Gate)
	}

	p, err := ProfileOf(personality, design)
	if err != nil {
		return Cross{}, err
	}
	angle := AngleOf(p)
	return Cross{
		Angle: angle,
		Gates: quartet,
		Name:  fmt.Sprintf("%s Cross (%d/%d | %d/%d)", angle, quartet[0], quartet[1], quartet[2], quartet[3]),
	}, nil
}

func find(as gates.Activations, epoch ephemeris.Epoch, b ephemeris.Body) (gates.Activation, error) {
	a, ok := as.Find(b)
	if !ok {
		return gates.Activation{}, &fault.ConsistencyError{
			Table:  "activations",
			Detail: fmt.Sprintf("%s has no %s activation", epoch, b),
			Err:    fault.ErrTableGap,
		}
	}
	return a, nil
}
