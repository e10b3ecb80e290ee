package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/bodygraph/internal/engine"
	"github.com/papapumpkin/bodygraph/internal/inbox"
	"github.com/papapumpkin/bodygraph/internal/telemetry"
	"github.com/papapumpkin/bodygraph/internal/ui"
)

var watchCmd = &cobra.Command{
	Use:   "watch DIR",
	Short: "Compute a chart for every *.toml request dropped into DIR",
	Long: `Watches DIR and writes NAME.chart.json next to every NAME.toml birth
request, rewriting it whenever the request changes and removing it when the
request is deleted. A request file looks like:

  name     = "Ada Lovelace"
  date     = "1815-12-10"
  time     = "12:00"
  timezone = "Europe/London"`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().Duration("debounce", 0, "quiet period before a changed file is read (default 100ms)")
	_ = viper.BindPFlag("watch.debounce", watchCmd.Flags().Lookup("debounce"))
	rootCmd.AddCommand(watchCmd)
}

func runWatch(_ *cobra.Command, args []string) error {
	printer := ui.New()
	dir := args[0]

	e, err := engine.New(logger)
	if err != nil {
		return err
	}
	em, err := telemetry.Open(cfg.Telemetry.Path)
	if err != nil {
		return err
	}
	defer em.Close()

	w, err := inbox.NewWatcher(dir, cfg.Watch.Debounce)
	if err != nil {
		return err
	}

	ctx, cancel := setupSignalContext(printer)
	defer cancel()

	printer.Watching(dir)
	p := inbox.NewProcessor(e, cfg.DefaultTimezone, logger, em)
	return p.Run(ctx, w, func(r inbox.Result) {
		switch {
		case r.Err != nil:
			printer.ChartFailed(r.File, r.Err)
		case r.Kind == inbox.ChangeRemoved:
			printer.Info("removed " + r.Output)
		default:
			printer.ChartDone(r.File, string(r.Chart.Bodygraph.Type), r.Output)
		}
	})
}
