package bodygraph

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/papapumpkin/bodygraph/internal/ephemeris"
	"github.com/papapumpkin/bodygraph/internal/fault"
	"github.com/papapumpkin/bodygraph/internal/gates"
)

func TestProfileOf(t *testing.T) {
	t.Parallel()

	personality := gates.Activations{
		{Body: ephemeris.Sun, Epoch: ephemeris.Personality, Gate: 25, Line: 3},
		{Body: ephemeris.Earth, Epoch: ephemeris.Personality, Gate: 46, Line: 3},
	}
	design := gates.Activations{
		{Body: ephemeris.Sun, Epoch: ephemeris.Design, Gate: 58, Line: 5},
		{Body: ephemeris.Earth, Epoch: ephemeris.Design, Gate: 52, Line: 5},
	}
	p, err := ProfileOf(personality, design)
	if err != nil {
		t.Fatalf("ProfileOf: %v", err)
	}
	if p.String() != "3/5" {
		t.Errorf("profile = %s, want 3/5", p)
	}

	c, err := NewClassifier()
	if err != nil {
		t.Fatalf("NewClassifier: %v", err)
	}
	name, err := c.ProfileName(p)
	if err != nil {
		t.Fatalf("ProfileName: %v", err)
	}
	if name != "Martyr/Heretic" {
		t.Errorf("ProfileName = %q, want Martyr/Heretic", name)
	}

	if _, err := c.ProfileName(Profile{Conscious: 7, Unconscious: 1}); !errors.Is(err, fault.ErrTableGap) {
		t.Errorf("ProfileName(7/1) err = %v, want ErrTableGap", err)
	}
}

func TestProfileMissingPoints(t *testing.T) {
	t.Parallel()

	sunOnly := gates.Activations{{Body: ephemeris.Sun, Gate: 1, Line: 1}}
	earthOnly := gates.Activations{{Body: ephemeris.Earth, Gate: 2, Line: 1}}
	tests := []struct {
		name        string
		personality gates.Activations
		design      gates.Activations
	}{
		{"no personality sun", earthOnly, earthOnly},
		{"no design earth", sunOnly, sunOnly},
		{"no design", sunOnly, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ProfileOf(tt.personality, tt.design)
			var ce *fault.ConsistencyError
			if !errors.As(err, &ce) {
				t.Fatalf("err = %v, want *ConsistencyError", err)
			}
		})
	}
}

func TestAngleOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		profile Profile
		want    CrossAngle
	}{
		{Profile{1, 3}, RightAngle},
		{Profile{2, 4}, RightAngle},
		{Profile{3, 5}, RightAngle},
		{Profile{4, 6}, RightAngle},
		{Profile{4, 1}, Juxtaposition},
		{Profile{5, 1}, LeftAngle},
		{Profile{6, 2}, LeftAngle},
	}
	for _, tt := range tests {
		if got := AngleOf(tt.profile); got != tt.want {
			t.Errorf("AngleOf(%s) = %q, want %q", tt.profile, got, tt.want)
		}
	}
}

func TestCrossOf(t *testing.T) {
	t.Parallel()

	personality := gates.Activations{
		{Body: ephemeris.Sun, Epoch: ephemeris.Personality, Gate: 13, Line: 4},
		{Body: ephemeris.Earth, Epoch: ephemeris.Personality, Gate: 7, Line: 4},
	}
	design := gates.Activations{
		{Body: ephemeris.Sun, Epoch: ephemeris.Design, Gate: 1, Line: 1},
		{Body: ephemeris.Earth, Epoch: ephemeris.Design, Gate: 2, Line: 1},
	}
	got, err := CrossOf(personality, design)
	if err != nil {
		t.Fatalf("CrossOf: %v", err)
	}
	want := Cross{
		Angle: Juxtaposition,
		Gates: []int{13, 7, 1, 2},
		Name:  "Juxtaposition Cross (13/7 | 1/2)",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("cross mismatch (-want +got):\n%s", diff)
	}

	if _, err := CrossOf(personality, design[:1]); !errors.Is(err, fault.ErrTableGap) {
		t.Errorf("CrossOf without design Earth: err = %v, want ErrTableGap", err)
	}
}
