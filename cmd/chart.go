package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/bodygraph/internal/engine"
	"github.com/papapumpkin/bodygraph/internal/ephemeris"
	"github.com/papapumpkin/bodygraph/internal/gates"
	"github.com/papapumpkin/bodygraph/internal/render"
)

var chartCmd = &cobra.Command{
	Use:   "chart [DATE TIME [ZONE]]",
	Short: "Compute a bodygraph",
	Long: `Computes the bodygraph for one birth moment and writes it to stdout.

  bodygraph chart 1990-06-15 14:30 Europe/Berlin
  bodygraph chart --date 1990-06-15 --time 14:30 --tz +02:00 -o text`,
	Args: cobra.MaximumNArgs(3),
	RunE: runChart,
}

func init() {
	addBirthFlags(chartCmd)
	chartCmd.Flags().Bool("activations", false, "also list the 26 activations with their longitudes")
	rootCmd.AddCommand(chartCmd)
}

func runChart(c *cobra.Command, args []string) error {
	e, err := engine.New(logger)
	if err != nil {
		return err
	}
	chart, err := e.Request(birthRequest(c, args), cfg.DefaultTimezone)
	if err != nil {
		return err
	}
	if err := render.Write(c.OutOrStdout(), cfg.OutputFormat, chart.Bodygraph); err != nil {
		return err
	}
	if show, _ := c.Flags().GetBool("activations"); show {
		return writeActivations(c.OutOrStdout(), chart)
	}
	return nil
}

// writeActivations lists both activation sets as plain text.
func writeActivations(w io.Writer, chart *engine.Chart) error {
	sets := []struct {
		title string
		snap  ephemeris.Snapshot
		acts  gates.Activations
	}{
		{"personality", chart.Personality, chart.PersonalityGates},
		{"design", chart.Design, chart.DesignGates},
	}
	for _, s := range sets {
		if _, err := fmt.Fprintf(w, "\n%s  %s  jd %.5f\n", s.title, s.snap.Time.UTC().Format("2006-01-02 15:04:05 UTC"), s.snap.JulianDay); err != nil {
			return err
		}
		for _, a := range s.acts {
			if _, err := fmt.Fprintf(w, "  %-11s %5s  %8.4f°\n", a.Body, a.String(), a.Longitude); err != nil {
				return err
			}
		}
	}
	return nil
}
