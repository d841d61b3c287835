package engine

import (
	"math"

	"github.com/jbeda/geom"

	"github.com/qelectrotech/dxf2elmt-vadoola/internal/drawing"
)

// Transform maps block-local source coordinates into drawing coordinates:
//
//	x' = OffsetX + ScaleX*x
//	y' = OffsetY + ScaleY*y
//
// Scale factors are independent per axis and there is no rotation.
type Transform struct {
	OffsetX, OffsetY float64
	ScaleX, ScaleY   float64
}

// Identity returns the transform of top-level entities.
func Identity() Transform {
	return Transform{ScaleX: 1, ScaleY: 1}
}

// Compose returns the transform for the entities of a block placed at loc
// with scale factors (sx, sy). The offset moves by loc - base, measured in
// the parent's scale; the scales multiply.
func (t Transform) Compose(loc, base drawing.Point, sx, sy float64) Transform {
	return Transform{
		OffsetX: t.OffsetX + t.ScaleX*(loc.X-base.X),
		OffsetY: t.OffsetY + t.ScaleY*(loc.Y-base.Y),
		ScaleX:  t.ScaleX * sx,
		ScaleY:  t.ScaleY * sy,
	}
}

// Apply transforms a source point. The result is still Y-up.
func (t Transform) Apply(p drawing.Point) geom.Coord {
	return geom.Coord{
		X: t.OffsetX + t.ScaleX*p.X,
		Y: t.OffsetY + t.ScaleY*p.Y,
	}
}

// Place transforms a source point into output space, flipping the Y axis.
func (t Transform) Place(p drawing.Point) geom.Coord {
	return flip(t.Apply(p))
}

// Size scales a source length along each axis.
func (t Transform) Size(l float64) (w, h float64) {
	return l * math.Abs(t.ScaleX), l * math.Abs(t.ScaleY)
}

func flip(c geom.Coord) geom.Coord {
	return geom.Coord{X: c.X, Y: -c.Y}
}
