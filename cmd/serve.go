package cmd

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/papapumpkin/bodygraph/internal/engine"
	"github.com/papapumpkin/bodygraph/internal/metrics"
	"github.com/papapumpkin/bodygraph/internal/server"
	"github.com/papapumpkin/bodygraph/internal/telemetry"
	"github.com/papapumpkin/bodygraph/internal/ui"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the chart API over HTTP",
	Long: `Serves the chart API until interrupted:

  POST /v1/bodygraph   birth request in, bodygraph out
  POST /v1/blueprint   birth request in, blueprint out
  GET  /v1/tables      reference tables
  GET  /healthz        liveness
  GET  /metrics        Prometheus metrics

POST and table endpoints take ?format=json|yaml|toml.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8080)")
	_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	rootCmd.AddCommand(serveCmd)
}

func runServe(*cobra.Command, []string) error {
	printer := ui.New()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	e, err := engine.New(logger, engine.WithRecorder(m))
	if err != nil {
		return err
	}
	srv, err := server.New(e, logger,
		server.WithDefaultZone(cfg.DefaultTimezone),
		server.WithRecorder(m),
		server.WithGatherer(reg),
	)
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

	return srv.ListenAndServe(ctx, cfg.Server.Addr, cfg.Server.ReadHeaderTimeout, func() {
		printer.Listening(cfg.Server.Addr)
		if err := em.Emit(telemetry.Event{Kind: telemetry.KindServerStart, Data: map[string]string{"addr": cfg.Server.Addr}}); err != nil {
			logger.Warn("telemetry write failed", zap.Error(err))
		}
	})
}
