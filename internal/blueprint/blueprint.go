// Package blueprint bundles a bodygraph with the profiles that travel
// alongside it: western Sun and Moon signs, the Chinese zodiac sign, the
// numerology life path and the MBTI cognition profile.
package blueprint

import (
	"fmt"
	"strings"

	"github.com/papapumpkin/bodygraph/internal/birth"
	"github.com/papapumpkin/bodygraph/internal/bodygraph"
	"github.com/papapumpkin/bodygraph/internal/ephemeris"
	"github.com/papapumpkin/bodygraph/internal/fault"
)

// UserMeta echoes the request identity and civil birth data.
type UserMeta struct {
	Name           string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	PreferredName  string `json:"preferred_name,omitempty" yaml:"preferred_name,omitempty" toml:"preferred_name,omitempty"`
	BirthDate      string `json:"birth_date" yaml:"birth_date" toml:"birth_date"`
	BirthTimeLocal string `json:"birth_time_local" yaml:"birth_time_local" toml:"birth_time_local"`
	Timezone       string `json:"timezone" yaml:"timezone" toml:"timezone"`
	BirthLocation  string `json:"birth_location,omitempty" yaml:"birth_location,omitempty" toml:"birth_location,omitempty"`
}

// Blueprint is the full profile for one birth moment.
type Blueprint struct {
	UserMeta    UserMeta            `json:"user_meta" yaml:"user_meta" toml:"user_meta"`
	Cognition   Cognition           `json:"cognition_mbti" yaml:"cognition_mbti" toml:"cognition_mbti"`
	HumanDesign bodygraph.Bodygraph `json:"human_design" yaml:"human_design" toml:"human_design"`
	Western     Western             `json:"western" yaml:"western" toml:"western"`
	Chinese     Chinese             `json:"chinese" yaml:"chinese" toml:"chinese"`
	Numerology  Numerology          `json:"numerology" yaml:"numerology" toml:"numerology"`
}

// Assemble builds the blueprint for req, whose validated moment is m, from
// the personality snapshot and classified bodygraph. The Chinese sign and
// numerology use the civil (local) date.
func Assemble(req birth.Request, m birth.Moment, personality ephemeris.Snapshot, bg bodygraph.Bodygraph) (Blueprint, error) {
	w, err := WesternOf(personality)
	if err != nil {
		return Blueprint{}, err
	}
	return Blueprint{
		UserMeta: UserMeta{
			Name:           req.Name,
			PreferredName:  PreferredName(req.Name),
			BirthDate:      m.Date,
			BirthTimeLocal: m.Clock,
			Timezone:       m.Zone,
			BirthLocation:  m.Location,
		},
		Cognition:   CognitionOf(req.MBTI),
		HumanDesign: bg,
		Western:     w,
		Chinese:     ChineseOf(m.Local.Year()),
		Numerology:  NumerologyOf(m.Local),
	}, nil
}

// PreferredName returns the first word of a full name.
func PreferredName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func position(s ephemeris.Snapshot, b ephemeris.Body) (ephemeris.Position, error) {
	p, ok := s.Position(b)
	if !ok {
		return ephemeris.Position{}, &fault.ConsistencyError{
			Table:  "snapshot",
			Detail: fmt.Sprintf("%s epoch has no %s position", s.Epoch, b),
			Err:    fault.ErrTableGap,
		}
	}
	return p, nil
}
