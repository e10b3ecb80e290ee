// Package engine runs the chart pipeline: one birth moment in, two
// ephemeris snapshots, two activation sets, a center graph and a classified
// bodygraph out. An Engine holds only immutable tables and is safe for
// concurrent use.
package engine

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/papapumpkin/bodygraph/internal/birth"
	"github.com/papapumpkin/bodygraph/internal/blueprint"
	"github.com/papapumpkin/bodygraph/internal/bodygraph"
	"github.com/papapumpkin/bodygraph/internal/centers"
	"github.com/papapumpkin/bodygraph/internal/ephemeris"
	"github.com/papapumpkin/bodygraph/internal/gates"
)

// Recorder receives chart outcomes. *metrics.Metrics satisfies it.
type Recorder interface {
	ObserveChart(chartType string, d time.Duration)
	ObserveFailure(err error)
}

// Chart is every intermediate product of one pipeline run.
type Chart struct {
	Moment           birth.Moment
	Personality      ephemeris.Snapshot
	Design           ephemeris.Snapshot
	PersonalityGates gates.Activations
	DesignGates      gates.Activations
	Graph            *centers.Graph
	Bodygraph        bodygraph.Bodygraph
}

// Engine computes charts.
type Engine struct {
	calc       *ephemeris.Calculator
	design     *ephemeris.DesignResolver
	classifier *bodygraph.Classifier
	logger     *zap.Logger
	recorder   Recorder
}

// Option configures an Engine.
type Option func(*Engine)

// WithRecorder reports every chart outcome to r.
func WithRecorder(r Recorder) Option {
	return func(e *Engine) { e.recorder = r }
}

// New checks the reference tables and the text catalog and returns a ready
// engine. A nil logger is replaced with a no-op logger.
func New(logger *zap.Logger, opts ...Option) (*Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := centers.CheckTables(); err != nil {
		return nil, fmt.Errorf("checking reference tables: %w", err)
	}
	classifier, err := bodygraph.NewClassifier()
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	calc := ephemeris.NewCalculator()
	e := &Engine{
		calc:       calc,
		design:     ephemeris.NewDesignResolver(calc),
		classifier: classifier,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Compute runs the full pipeline for m. No partial chart is ever returned.
func (e *Engine) Compute(m birth.Moment) (*Chart, error) {
	start := time.Now()
	c, err := e.compute(m)
	if err != nil {
		e.logger.Debug("chart failed", zap.String("utc", m.UTC.Format(time.RFC3339)), zap.Error(err))
		if e.recorder != nil {
			e.recorder.ObserveFailure(err)
		}
		return nil, err
	}
	if e.recorder != nil {
		e.recorder.ObserveChart(string(c.Bodygraph.Type), time.Since(start))
	}
	return c, nil
}

func (e *Engine) compute(m birth.Moment) (*Chart, error) {
	personality, err := e.calc.Compute(m)
	if err != nil {
		return nil, err
	}
	design, err := e.design.Resolve(personality)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("ephemeris",
		zap.Float64("personality_jd", personality.JulianDay),
		zap.Float64("design_jd", design.JulianDay),
	)

	pGates, err := gates.Activate(personality)
	if err != nil {
		return nil, err
	}
	dGates, err := gates.Activate(design)
	if err != nil {
		return nil, err
	}

	g, err := centers.Build(pGates, dGates)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("center graph",
		zap.Int("activated_gates", len(g.ActivatedGates())),
		zap.Int("channels", len(g.Completed())),
		zap.Int("defined_centers", g.DefinedCount()),
	)

	bg, err := e.classifier.Classify(g)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("classified",
		zap.String("type", string(bg.Type)),
		zap.String("authority", string(bg.Authority)),
		zap.String("profile", bg.Profile),
	)

	return &Chart{
		Moment:           m,
		Personality:      personality,
		Design:           design,
		PersonalityGates: pGates,
		DesignGates:      dGates,
		Graph:            g,
		Bodygraph:        bg,
	}, nil
}

// Request validates req, resolving an empty timezone to defaultZone, and
// computes its chart.
func (e *Engine) Request(req birth.Request, defaultZone string) (*Chart, error) {
	m, err := req.Moment(defaultZone)
	if err != nil {
		if e.recorder != nil {
			e.recorder.ObserveFailure(err)
		}
		return nil, err
	}
	return e.Compute(m)
}

// Blueprint computes the chart for req and bundles it with the western,
// Chinese, numerology and MBTI profiles.
func (e *Engine) Blueprint(req birth.Request, defaultZone string) (blueprint.Blueprint, error) {
	c, err := e.Request(req, defaultZone)
	if err != nil {
		return blueprint.Blueprint{}, err
	}
	return blueprint.Assemble(req, c.Moment, c.Personality, c.Bodygraph)
}
