// Package shape holds the output primitives of a converted drawing. Every
// coordinate stored here is already in output space: Y grows downwards and
// all block offsets and scale factors have been applied.
package shape

import (
	"iter"
	"math"

	"github.com/jbeda/geom"
)

// Shape is implemented by every primitive and by Group.
type Shape interface {
	// Scale multiplies positions and sizes in place.
	Scale(fx, fy float64)

	LeftBound() float64
	RightBound() float64
	TopBound() float64
	BotBound() float64
}

// Weight is the stroke weight of a primitive.
type Weight string

const (
	WeightNormal Weight = "normal"
	WeightThin   Weight = "thin"
)

// Source stroke thickness above which an entity is drawn with a normal
// weight instead of a thin one.
const (
	ThinArc      = 0.1
	ThinPolyline = 0.1
	ThinSpline   = 0.1
	ThinCircle   = 0.5
	ThinEllipse  = 0.5
	ThinSolid    = 0.5
	ThinLine     = 0.5
)

// WeightFor picks the stroke weight for a source thickness.
func WeightFor(thickness, threshold float64) Weight {
	if thickness > threshold {
		return WeightNormal
	}
	return WeightThin
}

type Style struct {
	Antialias bool
	Weight    Weight
}

// NewStyle returns a non-antialiased style for the given source thickness.
func NewStyle(thickness, threshold float64) Style {
	return Style{Weight: WeightFor(thickness, threshold)}
}

func (s Style) String() string {
	w := s.Weight
	if w == "" {
		w = WeightThin
	}
	return "line-style:normal;line-weight:" + string(w) + ";filling:none;color:black"
}

// Bounds returns the extent of s as a rectangle.
func Bounds(s Shape) geom.Rect {
	return geom.Rect{
		Min: geom.Coord{X: s.LeftBound(), Y: s.TopBound()},
		Max: geom.Coord{X: s.RightBound(), Y: s.BotBound()},
	}
}

// All yields the primitives of s depth-first, expanding groups inline.
func All(s Shape) iter.Seq[Shape] {
	return func(yield func(Shape) bool) {
		walk(s, yield)
	}
}

func walk(s Shape, yield func(Shape) bool) bool {
	if g, ok := s.(*Group); ok {
		for _, c := range g.Children {
			if !walk(c, yield) {
				return false
			}
		}
		return true
	}
	return yield(s)
}

// extreme folds candidates into a minimum or maximum. NaN candidates are
// skipped and an empty fold reports 0.
type extreme struct {
	v   float64
	ok  bool
	max bool
}

func (e *extreme) add(v float64) {
	if math.IsNaN(v) {
		return
	}
	if !e.ok || (e.max && v > e.v) || (!e.max && v < e.v) {
		e.v, e.ok = v, true
	}
}

func (e *extreme) value() float64 {
	if !e.ok {
		return 0
	}
	return e.v
}
