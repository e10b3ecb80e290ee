// Package inbox turns a directory into a chart queue: every *.toml birth
// request dropped into it gets a <name>.chart.json written beside it, and
// the chart is rewritten whenever the request changes.
package inbox

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"

	"github.com/papapumpkin/bodygraph/internal/birth"
	"github.com/papapumpkin/bodygraph/internal/engine"
	"github.com/papapumpkin/bodygraph/internal/render"
	"github.com/papapumpkin/bodygraph/internal/telemetry"
)

// Computer computes one chart. *engine.Engine satisfies it.
type Computer interface {
	Request(req birth.Request, defaultZone string) (*engine.Chart, error)
}

// Result reports what happened to one request file.
type Result struct {
	Kind   ChangeKind
	File   string
	Output string
	Chart  *engine.Chart
	Err    error
}

// Processor computes charts for inbox request files.
type Processor struct {
	computer    Computer
	defaultZone string
	logger      *zap.Logger
	emitter     *telemetry.Emitter
}

// NewProcessor returns a Processor. A nil logger discards logs and a nil
// emitter journals nothing.
func NewProcessor(c Computer, defaultZone string, logger *zap.Logger, em *telemetry.Emitter) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{computer: c, defaultZone: defaultZone, logger: logger, emitter: em}
}

// ReadRequest decodes one TOML request file. Unknown keys are rejected.
func ReadRequest(path string) (birth.Request, error) {
	f, err := os.Open(path)
	if err != nil {
		return birth.Request{}, err
	}
	defer f.Close()

	var req birth.Request
	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(&req); err != nil {
		return birth.Request{}, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	return req, nil
}

// Handle applies one change. A written request is computed and its chart
// written atomically; a removed request has its chart deleted.
func (p *Processor) Handle(c Change) Result {
	res := Result{Kind: c.Kind, File: c.File, Output: OutputPath(c.File)}
	p.journal(telemetry.Event{Kind: telemetry.KindInboxChange, ItemID: filepath.Base(c.File), Data: map[string]string{"change": c.Kind.String()}})

	if c.Kind == ChangeRemoved {
		if err := os.Remove(res.Output); err != nil && !errors.Is(err, fs.ErrNotExist) {
			res.Err = err
		}
		p.logger.Info("request removed", zap.String("file", c.File))
		return res
	}

	res.Chart, res.Err = p.compute(c.File, res.Output)
	id := filepath.Base(c.File)
	if res.Err != nil {
		p.logger.Warn("inbox chart failed", zap.String("file", c.File), zap.Error(res.Err))
		p.journal(telemetry.Event{Kind: telemetry.KindChartFailed, ItemID: id, Data: map[string]string{"error": res.Err.Error()}})
		return res
	}
	p.logger.Info("inbox chart written", zap.String("file", res.Output), zap.String("type", string(res.Chart.Bodygraph.Type)))
	p.journal(telemetry.Event{Kind: telemetry.KindChartDone, ItemID: id, Data: map[string]string{"type": string(res.Chart.Bodygraph.Type), "output": res.Output}})
	return res
}

func (p *Processor) compute(file, output string) (*engine.Chart, error) {
	req, err := ReadRequest(file)
	if err != nil {
		return nil, err
	}
	chart, err := p.computer.Request(req, p.defaultZone)
	if err != nil {
		return nil, err
	}
	if err := writeChart(output, chart); err != nil {
		return nil, err
	}
	return chart, nil
}

func writeChart(path string, chart *engine.Chart) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".chart-*.tmp")
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := render.Write(tmp, render.JSON, chart.Bodygraph); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing chart file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("writing chart file: %w", err)
	}
	return nil
}

func (p *Processor) journal(evt telemetry.Event) {
	if err := p.emitter.Emit(evt); err != nil {
		p.logger.Warn("telemetry write failed", zap.Error(err))
	}
}

// Scan handles every request file already in dir, in name order.
func (p *Processor) Scan(dir string) ([]Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading inbox: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && IsRequestFile(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	results := make([]Result, 0, len(names))
	for _, name := range names {
		results = append(results, p.Handle(Change{Kind: ChangeWritten, File: filepath.Join(dir, name)}))
	}
	return results, nil
}

// Run starts w, handles the files already in w.Dir, then handles changes
// until ctx is cancelled. Each result is passed to onResult when it is
// non-nil. Run stops the watcher before returning.
func (p *Processor) Run(ctx context.Context, w *Watcher, onResult func(Result)) error {
	if onResult == nil {
		onResult = func(Result) {}
	}
	if err := w.Start(); err != nil {
		w.watcher.Close()
		return fmt.Errorf("watching %s: %w", w.Dir, err)
	}
	results, err := p.Scan(w.Dir)
	if err != nil {
		w.drain()
		return err
	}
	for _, r := range results {
		onResult(r)
	}

	for {
		select {
		case <-ctx.Done():
			w.drain()
			return nil
		case c, ok := <-w.Changes:
			if !ok {
				return nil
			}
			onResult(p.Handle(c))
		}
	}
}
