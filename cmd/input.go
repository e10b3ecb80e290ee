package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/papapumpkin/bodygraph/internal/birth"
	"github.com/papapumpkin/bodygraph/internal/ui"
)

// addBirthFlags registers the flags that describe one birth moment.
func addBirthFlags(c *cobra.Command) {
	c.Flags().String("name", "", "name of the person")
	c.Flags().String("date", "", "birth date, YYYY-MM-DD")
	c.Flags().String("time", "", "birth time, HH:MM[:SS]")
	c.Flags().String("tz", "", "birth timezone: UTC, ±HH:MM or an IANA name")
	c.Flags().String("location", "", "birth place, echoed in the output")
	c.Flags().Float64("lat", 0, "birth latitude")
	c.Flags().Float64("lon", 0, "birth longitude")
	c.Flags().String("mbti", "", "MBTI type for the blueprint, e.g. ENTP")
}

// birthRequest builds a request from positional DATE TIME [ZONE] arguments,
// with flags filling in or overriding them.
func birthRequest(c *cobra.Command, args []string) birth.Request {
	var req birth.Request
	if len(args) > 0 {
		req.Date = args[0]
	}
	if len(args) > 1 {
		req.Time = args[1]
	}
	if len(args) > 2 {
		req.Timezone = args[2]
	}

	f := c.Flags()
	if v, _ := f.GetString("date"); v != "" {
		req.Date = v
	}
	if v, _ := f.GetString("time"); v != "" {
		req.Time = v
	}
	if v, _ := f.GetString("tz"); v != "" {
		req.Timezone = v
	}
	req.Name, _ = f.GetString("name")
	req.Location, _ = f.GetString("location")
	req.MBTI, _ = f.GetString("mbti")
	req.Latitude = changedFloat(f, "lat")
	req.Longitude = changedFloat(f, "lon")
	return req
}

// changedFloat returns the value of a float flag the user set, or nil.
func changedFloat(f *pflag.FlagSet, name string) *float64 {
	if !f.Changed(name) {
		return nil
	}
	v, err := f.GetFloat64(name)
	if err != nil {
		return nil
	}
	return &v
}

// setupSignalContext returns a context cancelled on SIGINT or SIGTERM.
func setupSignalContext(printer *ui.Printer) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			printer.Info("\nshutting down...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()
	return ctx, cancel
}
