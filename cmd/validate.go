package cmd

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/bodygraph/internal/bodygraph"
	"github.com/papapumpkin/bodygraph/internal/centers"
	"github.com/papapumpkin/bodygraph/internal/engine"
	"github.com/papapumpkin/bodygraph/internal/ephemeris"
	"github.com/papapumpkin/bodygraph/internal/gates"
	"github.com/papapumpkin/bodygraph/internal/ui"
)

var errChecksFailed = errors.New("validation failed")

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the reference tables, the text catalog and the ephemeris",
	Args:  cobra.NoArgs,
	RunE: func(*cobra.Command, []string) error {
		results := runChecks()
		ui.New().ValidateResult(results)
		for _, r := range results {
			if r.Err != nil {
				return errChecksFailed
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runChecks() []ui.CheckResult {
	return []ui.CheckResult{
		{Name: "gate and channel tables", Err: centers.CheckTables()},
		{Name: "gate wheel", Err: checkWheel()},
		{Name: "text catalog", Err: bodygraph.CheckCatalog()},
		{Name: "ephemeris at J2000", Err: checkEphemeris()},
	}
}

// checkWheel verifies that every gate occupies exactly one wheel slot and
// that the slot start maps back to the same gate on line 1.
func checkWheel() error {
	seen := make(map[int]bool, gates.GateCount)
	for _, g := range gates.Wheel() {
		if seen[g] {
			return fmt.Errorf("gate %d appears twice on the wheel", g)
		}
		seen[g] = true
		start, ok := gates.SlotStart(g)
		if !ok {
			return fmt.Errorf("gate %d has no slot", g)
		}
		if got, line := gates.Map(start + 1e-9); got != g || line != 1 {
			return fmt.Errorf("slot start of gate %d maps to %d.%d", g, got, line)
		}
	}
	if len(seen) != gates.GateCount {
		return fmt.Errorf("wheel holds %d gates, want %d", len(seen), gates.GateCount)
	}
	return nil
}

// checkEphemeris computes the J2000.0 snapshot and compares the Sun with its
// known apparent longitude.
func checkEphemeris() error {
	const want = 280.37
	snap, err := ephemeris.NewCalculator().At(ephemeris.J2000, ephemeris.Personality)
	if err != nil {
		return err
	}
	sun, ok := snap.Position(ephemeris.Sun)
	if !ok {
		return errors.New("snapshot has no sun")
	}
	if d := math.Abs(sun.Longitude - want); d > 0.1 {
		return fmt.Errorf("sun at %.4f°, want %.2f° ± 0.1", sun.Longitude, want)
	}
	if _, err := engine.New(nil); err != nil {
		return err
	}
	return nil
}
