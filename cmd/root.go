package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/papapumpkin/bodygraph/internal/config"
	"github.com/papapumpkin/bodygraph/internal/logging"
)

// Set by PersistentPreRunE for every subcommand.
var (
	cfg    config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "bodygraph",
	Short: "Human Design bodygraph calculator",
	Long: `Bodygraph computes a Human Design chart from a birth date, time and timezone:
two ephemeris snapshots 88 days apart, 26 gate activations, the nine-center
graph and its type, profile, authority and definition.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) { _ = logger.Sync() },
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default .bodygraph.yaml)")
	pf.BoolP("verbose", "v", false, "verbose output")
	pf.StringP("format", "o", "", "output format: json, yaml, toml or text")
	pf.String("timezone", "", "default timezone for requests that name none")
	pf.String("telemetry", "", "append JSONL telemetry events to this file")

	_ = viper.BindPFlag("verbose", pf.Lookup("verbose"))
	_ = viper.BindPFlag("output_format", pf.Lookup("format"))
	_ = viper.BindPFlag("default_timezone", pf.Lookup("timezone"))
	_ = viper.BindPFlag("telemetry.path", pf.Lookup("telemetry"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".bodygraph")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("BODYGRAPH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// setup loads configuration and builds the logger.
func setup(*cobra.Command, []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return err
	}
	logger, err = logging.New(cfg.Log, cfg.Verbose)
	if err != nil {
		return err
	}
	logger.Debug("config loaded",
		zap.String("config_file", viper.ConfigFileUsed()),
		zap.String("default_timezone", cfg.DefaultTimezone),
		zap.String("output_format", cfg.OutputFormat),
	)
	return nil
}
