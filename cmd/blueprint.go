package cmd

import (
	"github.com/spf13/cobra"

	"github.com/papapumpkin/bodygraph/internal/engine"
	"github.com/papapumpkin/bodygraph/internal/render"
)

var blueprintCmd = &cobra.Command{
	Use:   "blueprint [DATE TIME [ZONE]]",
	Short: "Compute a bodygraph with western, Chinese and numerology profiles",
	Args:  cobra.MaximumNArgs(3),
	RunE:  runBlueprint,
}

func init() {
	addBirthFlags(blueprintCmd)
	rootCmd.AddCommand(blueprintCmd)
}

func runBlueprint(c *cobra.Command, args []string) error {
	e, err := engine.New(logger)
	if err != nil {
		return err
	}
	bp, err := e.Blueprint(birthRequest(c, args), cfg.DefaultTimezone)
	if err != nil {
		return err
	}
	return render.Write(c.OutOrStdout(), cfg.OutputFormat, bp)
}
