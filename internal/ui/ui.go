// Package ui prints human-facing status lines to stderr. Chart output goes
// to stdout through the render package; everything here is commentary.
package ui

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/papapumpkin/bodygraph/internal/telemetry"
)

// ANSI color codes.
const (
	reset   = "\033[0m"
	bold    = "\033[1m"
	dim     = "\033[2m"
	yellow  = "\033[33m"
	green   = "\033[32m"
	red     = "\033[31m"
	cyan    = "\033[36m"
	magenta = "\033[35m"
)

// Printer writes status output to stderr.
type Printer struct{}

// New returns a Printer.
func New() *Printer {
	return &Printer{}
}

// Banner prints the program banner.
func (p *Printer) Banner() {
	fmt.Fprintln(os.Stderr, bold+cyan+"  ╔═══════════════════════════════════╗"+reset)
	fmt.Fprintln(os.Stderr, bold+cyan+"  ║"+reset+bold+"   BODYGRAPH  "+dim+"chart engine"+reset+bold+cyan+"         ║"+reset)
	fmt.Fprintln(os.Stderr, bold+cyan+"  ╚═══════════════════════════════════╝"+reset)
	fmt.Fprintln(os.Stderr)
}

// Error prints an error line.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(os.Stderr, red+bold+"error: "+reset+"%s\n", msg)
}

// Info prints a dimmed informational line.
func (p *Printer) Info(msg string) {
	fmt.Fprintf(os.Stderr, dim+"%s"+reset+"\n", msg)
}

// CheckResult is the outcome of one validation check.
type CheckResult struct {
	Name string
	Err  error
}

// ValidateResult prints each check and a closing verdict.
func (p *Printer) ValidateResult(checks []CheckResult) {
	failed := 0
	for _, c := range checks {
		if c.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "  "+red+"✗ %s"+reset+" — %v\n", c.Name, c.Err)
			continue
		}
		fmt.Fprintf(os.Stderr, "  "+green+"✓ %s"+reset+"\n", c.Name)
	}
	if failed == 0 {
		fmt.Fprintf(os.Stderr, green+bold+"✓ tables consistent"+reset+" — %d check(s) passed\n", len(checks))
		return
	}
	fmt.Fprintf(os.Stderr, red+bold+"✗ %d of %d check(s) failed"+reset+"\n", failed, len(checks))
}

// ChartDone prints one computed chart.
func (p *Printer) ChartDone(item, chartType, dest string) {
	if dest != "" {
		fmt.Fprintf(os.Stderr, green+"✓ %s"+reset+" %s "+dim+"→ %s"+reset+"\n", item, chartType, dest)
		return
	}
	fmt.Fprintf(os.Stderr, green+"✓ %s"+reset+" %s\n", item, chartType)
}

// ChartFailed prints one failed chart.
func (p *Printer) ChartFailed(item string, err error) {
	fmt.Fprintf(os.Stderr, red+"✗ %s"+reset+" — %v\n", item, err)
}

// BatchSummaryData holds the totals of a batch run.
type BatchSummaryData struct {
	Total    int
	Failed   int
	Duration time.Duration
	Output   string
}

// BatchSummary prints the totals after a batch run.
func (p *Printer) BatchSummary(d BatchSummaryData) {
	color := green
	if d.Failed > 0 {
		color = yellow
	}
	fmt.Fprintf(os.Stderr, "\n"+dim+"┌─ "+reset+bold+"batch"+reset+dim+" ─────────────────────────────"+reset+"\n")
	fmt.Fprintf(os.Stderr, dim+"│"+reset+"  charts: "+color+bold+"%d ok"+reset+", %d failed\n", d.Total-d.Failed, d.Failed)
	fmt.Fprintf(os.Stderr, dim+"│"+reset+"  duration: %.1fs\n", d.Duration.Seconds())
	if d.Output != "" {
		fmt.Fprintf(os.Stderr, dim+"│"+reset+"  output: %s\n", d.Output)
	}
	fmt.Fprintln(os.Stderr, dim+"└──────────────────────────────────────"+reset)
}

// Listening prints the server address.
func (p *Printer) Listening(addr string) {
	fmt.Fprintf(os.Stderr, cyan+"◆ listening"+reset+" on %s\n", addr)
}

// Watching prints the watched inbox directory.
func (p *Printer) Watching(dir string) {
	fmt.Fprintf(os.Stderr, cyan+"◆ watching"+reset+" %s "+dim+"(ctrl-c to stop)"+reset+"\n", dir)
}

// EventLine formats a telemetry event as a single line without color.
func EventLine(evt telemetry.Event) string {
	line := evt.Timestamp.UTC().Format("15:04:05.000") + " " + fmt.Sprintf("%-13s", evt.Kind)
	if evt.RunID != "" {
		line += " run=" + evt.RunID
	}
	if evt.ItemID != "" {
		line += " item=" + evt.ItemID
	}
	if evt.Data != nil {
		if data, err := json.Marshal(evt.Data); err == nil {
			line += " " + string(data)
		}
	}
	return line
}

// Event prints a telemetry event, colored by kind.
func (p *Printer) Event(evt telemetry.Event) {
	color := dim
	switch evt.Kind {
	case telemetry.KindChartDone, telemetry.KindBatchDone:
		color = green
	case telemetry.KindChartFailed:
		color = red
	case telemetry.KindBatchStart, telemetry.KindServerStart:
		color = magenta
	case telemetry.KindInboxChange:
		color = cyan
	}
	fmt.Fprintln(os.Stderr, color+EventLine(evt)+reset)
}
