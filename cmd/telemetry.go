package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/papapumpkin/bodygraph/internal/telemetry"
	"github.com/papapumpkin/bodygraph/internal/ui"
)

var telemetryCmd = &cobra.Command{
	Use:   "telemetry [FILE]",
	Short: "View the JSONL telemetry journal",
	Long: `Reads and formats the JSONL telemetry journal written by batch, watch and
serve. FILE defaults to the configured telemetry path.
With --follow (-f), watches the file for new events (like tail -f).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTelemetry,
}

func init() {
	telemetryCmd.Flags().BoolP("follow", "f", false, "follow the file for new events")
	telemetryCmd.Flags().String("kind", "", "only show events of this kind")
	rootCmd.AddCommand(telemetryCmd)
}

func runTelemetry(c *cobra.Command, args []string) error {
	follow, _ := c.Flags().GetBool("follow")
	kind, _ := c.Flags().GetString("kind")

	path := cfg.Telemetry.Path
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		return errors.New("telemetry: no file given and telemetry.path is not set")
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("telemetry: open %s: %w", path, err)
	}
	defer f.Close()

	reader := bufio.NewReader(f)
	if err := printEvents(c.OutOrStdout(), reader, kind); err != nil {
		return err
	}
	if !follow {
		return nil
	}

	ctx, cancel := setupSignalContext(ui.New())
	defer cancel()
	return tailFollow(ctx, c.OutOrStdout(), reader, path, kind)
}

// printEvents prints every complete event line available from r.
func printEvents(w io.Writer, r *bufio.Reader, kind string) error {
	for {
		line, err := r.ReadString('\n')
		if strings.TrimSpace(line) != "" {
			printEvent(w, line, kind)
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("telemetry: read: %w", err)
		}
	}
}

// tailFollow watches the file for new data using fsnotify and prints new
// events until ctx is cancelled.
func tailFollow(ctx context.Context, w io.Writer, r *bufio.Reader, path, kind string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("telemetry: create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("telemetry: watch %s: %w", path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) {
				continue
			}
			if err := printEvents(w, r, kind); err != nil {
				return err
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("telemetry: watch %s: %w", path, err)
		}
	}
}

// printEvent decodes one JSONL line and prints it, skipping kinds other than
// kind when kind is set. Undecodable lines are echoed with a ??? marker.
func printEvent(w io.Writer, line, kind string) {
	events, err := telemetry.Read(strings.NewReader(line))
	if err != nil || len(events) != 1 {
		fmt.Fprintf(w, "??? %s\n", strings.TrimSpace(line))
		return
	}
	if kind != "" && events[0].Kind != kind {
		return
	}
	fmt.Fprintln(w, ui.EventLine(events[0]))
}
