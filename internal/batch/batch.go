// Package batch computes many charts on a bounded worker pool. Outcomes keep
// input order; a failing item is recorded and never stops the run.
package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/papapumpkin/bodygraph/internal/birth"
	"github.com/papapumpkin/bodygraph/internal/bodygraph"
	"github.com/papapumpkin/bodygraph/internal/engine"
	"github.com/papapumpkin/bodygraph/internal/telemetry"
)

// Computer computes one chart. *engine.Engine satisfies it.
type Computer interface {
	Request(req birth.Request, defaultZone string) (*engine.Chart, error)
}

// ItemRecorder counts item outcomes. *metrics.Metrics satisfies it.
type ItemRecorder interface {
	ObserveBatchItem(ok bool)
}

// Outcome is the result of one item: a chart or an error, never both.
type Outcome struct {
	Index int                  `json:"index"`
	ID    string               `json:"id"`
	Name  string               `json:"name,omitempty"`
	Chart *bodygraph.Bodygraph `json:"chart,omitempty"`
	Error string               `json:"error,omitempty"`
}

// OK reports whether the item produced a chart.
func (o Outcome) OK() bool {
	return o.Error == ""
}

// Runner runs batches.
type Runner struct {
	computer    Computer
	workers     int
	defaultZone string
	logger      *zap.Logger
	emitter     *telemetry.Emitter
	recorder    ItemRecorder
}

// Option configures a Runner.
type Option func(*Runner)

// WithEmitter journals run and item events to em.
func WithEmitter(em *telemetry.Emitter) Option {
	return func(r *Runner) { r.emitter = em }
}

// WithRecorder reports item outcomes to rec.
func WithRecorder(rec ItemRecorder) Option {
	return func(r *Runner) { r.recorder = rec }
}

// WithDefaultZone sets the timezone used for requests that name none.
func WithDefaultZone(zone string) Option {
	return func(r *Runner) { r.defaultZone = zone }
}

// NewRunner returns a Runner using at most workers goroutines. A
// non-positive worker count means one.
func NewRunner(c Computer, workers int, logger *zap.Logger, opts ...Option) *Runner {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Runner{computer: c, workers: workers, logger: logger}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run computes every request. Items missing an ID get a random UUID. Run
// returns early only when ctx is cancelled; outcomes computed by then are
// returned with the context error.
func (r *Runner) Run(ctx context.Context, reqs []birth.Request) ([]Outcome, error) {
	runID := uuid.NewString()
	start := time.Now()
	r.emit(telemetry.Event{Kind: telemetry.KindBatchStart, RunID: runID, Data: map[string]int{"items": len(reqs), "workers": r.workers}})
	r.logger.Info("batch started", zap.String("run", runID), zap.Int("items", len(reqs)), zap.Int("workers", r.workers))

	outcomes := make([]Outcome, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, req := range reqs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = r.one(runID, i, req)
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	failed := 0
	for _, o := range outcomes {
		if o.ID != "" && !o.OK() {
			failed++
		}
	}
	r.emit(telemetry.Event{Kind: telemetry.KindBatchDone, RunID: runID, Data: map[string]any{
		"items":       len(reqs),
		"failed":      failed,
		"duration_ms": time.Since(start).Milliseconds(),
	}})
	r.logger.Info("batch done", zap.String("run", runID), zap.Int("failed", failed), zap.Duration("took", time.Since(start)))

	if err != nil {
		return outcomes, fmt.Errorf("batch interrupted: %w", err)
	}
	return outcomes, nil
}

func (r *Runner) one(runID string, index int, req birth.Request) Outcome {
	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}
	o := Outcome{Index: index, ID: id, Name: req.Name}

	chart, err := r.computer.Request(req, r.defaultZone)
	if err != nil {
		o.Error = err.Error()
		r.logger.Warn("chart failed", zap.String("item", id), zap.Error(err))
		r.emit(telemetry.Event{Kind: telemetry.KindChartFailed, RunID: runID, ItemID: id, Data: map[string]string{"error": o.Error}})
		if r.recorder != nil {
			r.recorder.ObserveBatchItem(false)
		}
		return o
	}

	bg := chart.Bodygraph
	o.Chart = &bg
	r.logger.Debug("chart done", zap.String("item", id), zap.String("type", string(bg.Type)))
	r.emit(telemetry.Event{Kind: telemetry.KindChartDone, RunID: runID, ItemID: id, Data: map[string]string{"type": string(bg.Type), "profile": bg.Profile}})
	if r.recorder != nil {
		r.recorder.ObserveBatchItem(true)
	}
	return o
}

func (r *Runner) emit(evt telemetry.Event) {
	if err := r.emitter.Emit(evt); err != nil {
		r.logger.Warn("telemetry write failed", zap.Error(err))
	}
}

// WriteJSONL writes one outcome per line. Items skipped by cancellation
// are omitted.
func WriteJSONL(w io.Writer, outcomes []Outcome) error {
	enc := json.NewEncoder(w)
	for _, o := range outcomes {
		if o.ID == "" {
			continue
		}
		if err := enc.Encode(o); err != nil {
			return fmt.Errorf("writing outcome %d: %w", o.Index, err)
		}
	}
	return nil
}
