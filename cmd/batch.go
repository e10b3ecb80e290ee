package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/bodygraph/internal/batch"
	"github.com/papapumpkin/bodygraph/internal/birth"
	"github.com/papapumpkin/bodygraph/internal/engine"
	"github.com/papapumpkin/bodygraph/internal/metrics"
	"github.com/papapumpkin/bodygraph/internal/telemetry"
	"github.com/papapumpkin/bodygraph/internal/ui"
)

var batchCmd = &cobra.Command{
	Use:   "batch FILE",
	Short: "Compute charts for every request in a JSONL or YAML file",
	Long: `Reads birth requests from FILE (or stdin when FILE is "-") and writes one
JSON outcome per line. A failing request is reported in its outcome line and
does not stop the run.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().String("out", "", "write outcomes to this file instead of stdout")
	batchCmd.Flags().String("input-format", "", "jsonl or yaml (default: from the file extension)")
	batchCmd.Flags().String("metrics-file", "", "write a Prometheus textfile snapshot here after the run")
	batchCmd.Flags().Int("workers", 0, "concurrent workers (default 4)")
	_ = viper.BindPFlag("batch.workers", batchCmd.Flags().Lookup("workers"))
	rootCmd.AddCommand(batchCmd)
}

func runBatch(c *cobra.Command, args []string) error {
	printer := ui.New()
	inputFormat, _ := c.Flags().GetString("input-format")
	outPath, _ := c.Flags().GetString("out")
	metricsPath, _ := c.Flags().GetString("metrics-file")

	reqs, err := readBatchInput(c.InOrStdin(), args[0], inputFormat)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	e, err := engine.New(logger, engine.WithRecorder(m))
	if err != nil {
		return err
	}
	em, err := telemetry.Open(cfg.Telemetry.Path)
	if err != nil {
		return err
	}
	defer em.Close()

	ctx, cancel := setupSignalContext(printer)
	defer cancel()

	start := time.Now()
	runner := batch.NewRunner(e, cfg.Batch.Workers, logger,
		batch.WithDefaultZone(cfg.DefaultTimezone),
		batch.WithEmitter(em),
		batch.WithRecorder(m),
	)
	outcomes, runErr := runner.Run(ctx, reqs)

	out := c.OutOrStdout()
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating %s: %w", outPath, err)
		}
		defer f.Close()
		out = f
	}
	if err := batch.WriteJSONL(out, outcomes); err != nil {
		return err
	}

	failed := 0
	for _, o := range outcomes {
		if o.ID != "" && !o.OK() {
			failed++
			printer.ChartFailed(o.ID, errors.New(o.Error))
		}
	}
	printer.BatchSummary(ui.BatchSummaryData{
		Total:    len(reqs),
		Failed:   failed,
		Duration: time.Since(start),
		Output:   outPath,
	})
	if metricsPath != "" {
		if err := prometheus.WriteToTextfile(metricsPath, reg); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}
	return runErr
}

// readBatchInput reads requests from path, or from stdin when path is "-".
func readBatchInput(stdin io.Reader, path, format string) ([]birth.Request, error) {
	if format == "" {
		format = batch.FormatFor(path)
	}
	if path == "-" {
		return batch.ReadRequests(stdin, format)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return batch.ReadRequests(f, format)
}
