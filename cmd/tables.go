package cmd

import (
	"github.com/spf13/cobra"

	"github.com/papapumpkin/bodygraph/internal/render"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Print the gate wheel, gate-to-center map and channel list",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		tab, err := render.NewTables()
		if err != nil {
			return err
		}
		return render.Write(c.OutOrStdout(), cfg.OutputFormat, tab)
	},
}

func init() {
	rootCmd.AddCommand(tablesCmd)
}
