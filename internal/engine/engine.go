package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/jbeda/geom"

	"github.com/qelectrotech/dxf2elmt-vadoola/internal/classify"
	"github.com/qelectrotech/dxf2elmt-vadoola/internal/drawing"
	"github.com/qelectrotech/dxf2elmt-vadoola/internal/spline"
	"github.com/qelectrotech/dxf2elmt-vadoola/internal/typeid"
)

// Options control a conversion.
type Options struct {
	// SplineStep is the number of segments each spline is cut into,
	// at most MaxSplineStep.
	SplineStep int
	// DynamicText emits text entities as editable dynamic text fields.
	DynamicText bool
	// MaxBlockDepth bounds nested block expansion.
	MaxBlockDepth int
	// Strict fails the conversion on the first entity that cannot be built.
	Strict bool
	// Thresholds tune polygon classification.
	Thresholds classify.Thresholds
}

const (
	DefaultSplineStep    = 20
	DefaultMaxBlockDepth = 32

	MaxSplineStep = spline.MaxSteps
)

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		SplineStep:    DefaultSplineStep,
		DynamicText:   true,
		MaxBlockDepth: DefaultMaxBlockDepth,
		Thresholds:    classify.DefaultThresholds,
	}
}

func (o Options) withDefaults() Options {
	if o.SplineStep <= 0 {
		o.SplineStep = DefaultSplineStep
	}
	if o.MaxBlockDepth <= 0 {
		o.MaxBlockDepth = DefaultMaxBlockDepth
	}
	if o.Thresholds == (classify.Thresholds{}) {
		o.Thresholds = classify.DefaultThresholds
	}
	return o
}

// Stats counts what happened to the top-level entities of a drawing.
type Stats struct {
	Converted     map[drawing.EntityKind]int
	Skipped       map[Reason]int
	SkippedByKind map[drawing.EntityKind]int
}

func newStats() Stats {
	return Stats{
		Converted:     make(map[drawing.EntityKind]int),
		Skipped:       make(map[Reason]int),
		SkippedByKind: make(map[drawing.EntityKind]int),
	}
}

func (s Stats) skip(kind drawing.EntityKind, err error) {
	s.Skipped[ReasonOf(err)]++
	s.SkippedByKind[kind]++
}

// TotalConverted returns the number of entities that produced a shape.
func (s Stats) TotalConverted() int {
	n := 0
	for _, c := range s.Converted {
		n += c
	}
	return n
}

// TotalSkipped returns the number of entities that were dropped.
func (s Stats) TotalSkipped() int {
	n := 0
	for _, c := range s.Skipped {
		n += c
	}
	return n
}

// Kinds returns every kind seen, converted or skipped, in sorted order.
func (s Stats) Kinds() []drawing.EntityKind {
	seen := make(map[drawing.EntityKind]struct{})
	for k := range s.Converted {
		seen[k] = struct{}{}
	}
	for k := range s.SkippedByKind {
		seen[k] = struct{}{}
	}
	return slices.Sorted(maps.Keys(seen))
}

// Result is a converted drawing.
type Result struct {
	ID     string
	Name   string
	Tree   *Tree
	Bounds geom.Rect
	Canvas Canvas
	Stats  Stats
}

// Convert builds every top-level entity of d, scales the result to output
// units and sizes the canvas. Entities that fail are counted and skipped
// unless opts.Strict is set.
func Convert(d *drawing.Drawing, opts Options) (*Result, error) {
	if d == nil {
		return nil, errors.New("convert: nil drawing")
	}
	opts = opts.withDefaults()
	b := NewBuilder(d, opts)

	res := &Result{
		ID:    typeid.NewConversionID(),
		Name:  d.Name,
		Tree:  &Tree{},
		Stats: newStats(),
	}

	for _, e := range d.Entities {
		s, err := b.Build(e, Identity())
		if err != nil {
			if opts.Strict {
				return nil, fmt.Errorf("convert %q: %w", d.Name, err)
			}
			res.Stats.skip(e.Kind, err)
			if errors.Is(err, ErrUnsupportedEntity) {
				slog.Debug("skip unsupported entity", "drawing", d.Name, "kind", e.Kind, "handle", e.Handle)
			} else {
				slog.Warn("skip entity", "drawing", d.Name, "kind", e.Kind, "handle", e.Handle, "reason", ReasonOf(err), "error", err)
			}
			continue
		}
		res.Stats.Converted[e.Kind]++
		res.Tree.Add(s)
	}

	scale, ok := UnitScale(d.Unit)
	if !ok {
		slog.Warn("unknown drawing unit, assuming millimeters", "drawing", d.Name, "unit", d.Unit)
	}
	res.Tree.Scale(scale)
	res.Bounds = res.Tree.Bounds()
	res.Canvas = SizeCanvas(res.Bounds)

	slog.Debug("drawing converted",
		"id", res.ID,
		"drawing", d.Name,
		"shapes", res.Tree.Len(),
		"skipped", res.Stats.TotalSkipped(),
		"width", res.Canvas.Width,
		"height", res.Canvas.Height,
	)
	return res, nil
}
