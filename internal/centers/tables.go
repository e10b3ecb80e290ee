package centers

import (
	"fmt"
	"strconv"

	"github.com/papapumpkin/bodygraph/internal/fault"
)

// gateCenter maps every gate (index 1..64) to the center that holds it.
// Index 0 is unused.
var gateCenter = [65]Center{
	64: Head, 61: Head, 63: Head,

	47: Ajna, 24: Ajna, 4: Ajna, 17: Ajna, 43: Ajna, 11: Ajna,

	62: Throat, 23: Throat, 56: Throat, 35: Throat, 12: Throat, 45: Throat,
	33: Throat, 8: Throat, 31: Throat, 20: Throat, 16: Throat,

	1: G, 13: G, 25: G, 46: G, 2: G, 15: G, 10: G, 7: G,

	21: Heart, 40: Heart, 26: Heart, 51: Heart,

	36: SolarPlexus, 22: SolarPlexus, 37: SolarPlexus, 6: SolarPlexus,
	49: SolarPlexus, 55: SolarPlexus, 30: SolarPlexus,

	34: Sacral, 5: Sacral, 14: Sacral, 29: Sacral, 59: Sacral,
	9: Sacral, 3: Sacral, 42: Sacral, 27: Sacral,

	48: Spleen, 57: Spleen, 44: Spleen, 50: Spleen, 32: Spleen, 28: Spleen, 18: Spleen,

	53: Root, 60: Root, 52: Root, 19: Root, 39: Root, 41: Root, 58: Root, 38: Root, 54: Root,
}

// Channel is an unordered gate pair, stored with the lower gate first.
type Channel struct {
	A int
	B int
}

// NewChannel returns the channel joining gates x and y in canonical order.
func NewChannel(x, y int) Channel {
	if x > y {
		x, y = y, x
	}
	return Channel{A: x, B: y}
}

// String formats the channel as "A-B".
func (ch Channel) String() string {
	return strconv.Itoa(ch.A) + "-" + strconv.Itoa(ch.B)
}

// Pair returns the channel gates as a two-element array.
func (ch Channel) Pair() [2]int {
	return [2]int{ch.A, ch.B}
}

// Centers returns the two centers the channel connects, derived from the
// gate-to-center table.
func (ch Channel) Centers() (Center, Center, error) {
	a, err := CenterOf(ch.A)
	if err != nil {
		return 0, 0, err
	}
	b, err := CenterOf(ch.B)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// Connects reports whether the channel joins centers x and y, in either
// direction.
func (ch Channel) Connects(x, y Center) bool {
	a, b, err := ch.Centers()
	if err != nil {
		return false
	}
	return (a == x && b == y) || (a == y && b == x)
}

// channels is the canonical set of 36 channels.
var channels = [...]Channel{
	{1, 8}, {2, 14}, {3, 60}, {4, 63}, {5, 15}, {6, 59},
	{7, 31}, {9, 52}, {10, 20}, {10, 34}, {10, 57}, {11, 56},
	{12, 22}, {13, 33}, {16, 48}, {17, 62}, {18, 58}, {19, 49},
	{20, 34}, {20, 57}, {21, 45}, {23, 43}, {24, 61}, {25, 51},
	{26, 44}, {27, 50}, {28, 38}, {29, 46}, {30, 41}, {32, 54},
	{34, 57}, {35, 36}, {37, 40}, {39, 55}, {42, 53}, {47, 64},
}

// ChannelCount is the number of canonical channels.
const ChannelCount = 36

// Channels returns a copy of the canonical channel list, ordered by gates.
func Channels() []Channel {
	out := make([]Channel, len(channels))
	copy(out, channels[:])
	return out
}

// CenterOf returns the center holding gate. A gate outside 1..64, or one the
// table does not map, is a *fault.ConsistencyError.
func CenterOf(gate int) (Center, error) {
	if gate < 1 || gate >= len(gateCenter) {
		return 0, &fault.ConsistencyError{
			Table:  "gate-to-center",
			Detail: fmt.Sprintf("gate %d is not on the wheel", gate),
			Err:    fault.ErrTableGap,
		}
	}
	c := gateCenter[gate]
	if !c.Valid() {
		return 0, &fault.ConsistencyError{
			Table:  "gate-to-center",
			Detail: fmt.Sprintf("gate %d has no center", gate),
			Err:    fault.ErrTableGap,
		}
	}
	return c, nil
}

// GatesOf returns every gate held by c in ascending order.
func GatesOf(c Center) []int {
	var out []int
	for g := 1; g < len(gateCenter); g++ {
		if gateCenter[g] == c {
			out = append(out, g)
		}
	}
	return out
}

// CheckTables verifies that the reference tables are internally consistent:
// every gate maps to exactly one center, there are exactly 36 distinct
// channels, and every channel joins two different centers.
func CheckTables() error {
	for g := 1; g <= 64; g++ {
		if _, err := CenterOf(g); err != nil {
			return err
		}
	}

	seen := make(map[Channel]bool, len(channels))
	for _, ch := range channels {
		canon := NewChannel(ch.A, ch.B)
		if canon != ch {
			return &fault.ConsistencyError{Table: "channels", Detail: fmt.Sprintf("channel %s is not in canonical order", ch), Err: fault.ErrDuplicateEntry}
		}
		if seen[ch] {
			return &fault.ConsistencyError{Table: "channels", Detail: fmt.Sprintf("channel %s listed twice", ch), Err: fault.ErrDuplicateEntry}
		}
		seen[ch] = true

		a, b, err := ch.Centers()
		if err != nil {
			return err
		}
		if a == b {
			return &fault.ConsistencyError{Table: "channels", Detail: fmt.Sprintf("channel %s stays inside %s", ch, a), Err: fault.ErrTableGap}
		}
	}
	if len(seen) != ChannelCount {
		return &fault.ConsistencyError{Table: "channels", Detail: fmt.Sprintf("%d channels, want %d", len(seen), ChannelCount), Err: fault.ErrTableGap}
	}
	return nil
}
