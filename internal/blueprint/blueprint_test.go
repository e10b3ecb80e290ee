package blueprint

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/papapumpkin/bodygraph/internal/birth"
	"github.com/papapumpkin/bodygraph/internal/bodygraph"
	"github.com/papapumpkin/bodygraph/internal/ephemeris"
	"github.com/papapumpkin/bodygraph/internal/fault"
)

func TestPlacementOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lon  float64
		want Placement
	}{
		{0, Placement{"Aries", 0, "Fire", "Cardinal"}},
		{45.5, Placement{"Taurus", 15.5, "Earth", "Fixed"}},
		{300, Placement{"Aquarius", 0, "Air", "Fixed"}},
		{-10, Placement{"Pisces", 20, "Water", "Mutable"}},
		{199.90895, Placement{"Libra", 19.91, "Air", "Cardinal"}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, PlacementOf(tt.lon)); diff != "" {
			t.Errorf("PlacementOf(%v) mismatch (-want +got):\n%s", tt.lon, diff)
		}
	}
}

func TestChineseOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		year int
		want Chinese
	}{
		{1990, Chinese{"Horse", "Metal", "Yang"}},
		{2000, Chinese{"Dragon", "Metal", "Yang"}},
		{1985, Chinese{"Ox", "Wood", "Yin"}},
		{1984, Chinese{"Rat", "Wood", "Yang"}},
		{2023, Chinese{"Rabbit", "Water", "Yin"}},
	}
	for _, tt := range tests {
		if got := ChineseOf(tt.year); got != tt.want {
			t.Errorf("ChineseOf(%d) = %+v, want %+v", tt.year, got, tt.want)
		}
	}
}

func TestLifePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		date   string
		want   int
		master bool
	}{
		{"1990-07-15", 5, false},
		{"2000-01-08", 11, true},
		{"2000-09-29", 22, true},
		{"1969-07-01", 33, true},
		{"1985-11-29", 9, false},
	}
	for _, tt := range tests {
		d, err := time.Parse("2006-01-02", tt.date)
		if err != nil {
			t.Fatal(err)
		}
		n := NumerologyOf(d)
		if n.LifePath != tt.want || n.Master != tt.master {
			t.Errorf("%s: life path %d (master %v), want %d (master %v)", tt.date, n.LifePath, n.Master, tt.want, tt.master)
		}
		if n.BirthDay != d.Day() {
			t.Errorf("%s: birth day %d", tt.date, n.BirthDay)
		}
	}
}

func TestAssemble(t *testing.T) {
	t.Parallel()

	m, err := birth.Parse("1990-07-15", "23:30", "-05:00")
	if err != nil {
		t.Fatal(err)
	}
	m.Location = "Chicago"
	snap := ephemeris.Snapshot{
		Epoch: ephemeris.Personality,
		Positions: map[ephemeris.Body]ephemeris.Position{
			ephemeris.Sun:  {Body: ephemeris.Sun, Longitude: 113.2},
			ephemeris.Moon: {Body: ephemeris.Moon, Longitude: 310.0},
		},
	}
	bg := bodygraph.Bodygraph{Type: bodygraph.Projector}

	bp, err := Assemble(birth.Request{Name: "Ada King Lovelace", MBTI: "entp"}, m, snap, bg)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	wantMeta := UserMeta{
		Name:           "Ada King Lovelace",
		PreferredName:  "Ada",
		BirthDate:      "1990-07-15",
		BirthTimeLocal: "23:30:00",
		Timezone:       m.Zone,
		BirthLocation:  "Chicago",
	}
	if diff := cmp.Diff(wantMeta, bp.UserMeta); diff != "" {
		t.Errorf("UserMeta mismatch (-want +got):\n%s", diff)
	}
	if bp.Western.Sun.Sign != "Cancer" || bp.Western.Moon.Sign != "Aquarius" {
		t.Errorf("western = %+v", bp.Western)
	}
	// The civil date decides the numerology even though UTC is the next day.
	if bp.Numerology.BirthDay != 15 {
		t.Errorf("birth day = %d, want 15", bp.Numerology.BirthDay)
	}
	if bp.Cognition.Type != "ENTP" || bp.Cognition.DominantFunction != "Extraverted Intuition (Ne)" {
		t.Errorf("cognition = %+v", bp.Cognition)
	}
	if bp.Chinese.Animal != "Horse" || bp.HumanDesign.Type != bodygraph.Projector {
		t.Errorf("chinese = %+v, type = %q", bp.Chinese, bp.HumanDesign.Type)
	}
}

func TestAssembleMissingMoon(t *testing.T) {
	t.Parallel()

	snap := ephemeris.Snapshot{
		Epoch:     ephemeris.Personality,
		Positions: map[ephemeris.Body]ephemeris.Position{ephemeris.Sun: {Body: ephemeris.Sun}},
	}
	_, err := Assemble(birth.Request{}, birth.Moment{}, snap, bodygraph.Bodygraph{})
	if !errors.Is(err, fault.ErrTableGap) {
		t.Errorf("err = %v, want ErrTableGap", err)
	}
}

func TestPreferredName(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]string{"": "", "  Grace  Hopper": "Grace", "Linus": "Linus"} {
		if got := PreferredName(in); got != want {
			t.Errorf("PreferredName(%q) = %q, want %q", in, got, want)
		}
	}
}
