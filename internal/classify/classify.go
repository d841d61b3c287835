// Package classify recognizes closed polylines that are really circles or
// axis-aligned rectangles.
package classify

import (
	"math"

	"github.com/jbeda/geom"

	"github.com/qelectrotech/dxf2elmt-vadoola/internal/shape"
)

// Thresholds tune the recognizers. The circularity band was picked
// empirically.
type Thresholds struct {
	// Thinness ratios inside [CircularityMin, CircularityMax] count as circles.
	CircularityMin float64
	CircularityMax float64
	// AxisTolerance is the largest coordinate drift still treated as an
	// axis-aligned edge.
	AxisTolerance float64
}

var DefaultThresholds = Thresholds{
	CircularityMin: 0.98,
	CircularityMax: 1.02,
	AxisTolerance:  1e-9,
}

// Classify turns the vertices of a polyline into a Rectangle, an Ellipse or
// a generic Polygon, tried in that order. Only closed rings are promoted; a
// ring whose last vertex repeats the first counts as closed.
func Classify(pts []geom.Coord, closed bool, style shape.Style, th Thresholds) shape.Shape {
	ring, isRing := closedRing(pts, closed)
	if isRing && len(ring) >= 3 {
		box := boundingBox(ring)
		if IsRectangle(ring, th.AxisTolerance) {
			return &shape.Rectangle{
				X:      box.Min.X,
				Y:      box.Min.Y,
				Width:  box.Width(),
				Height: box.Height(),
				Style:  style,
			}
		}
		if IsCircular(ring, th) {
			return &shape.Ellipse{
				X:      box.Min.X,
				Y:      box.Min.Y,
				Width:  box.Width(),
				Height: box.Height(),
				Style:  style,
			}
		}
	}
	return &shape.Polygon{
		Points: pts,
		Closed: closed,
		Style:  style,
	}
}

func closedRing(pts []geom.Coord, closed bool) ([]geom.Coord, bool) {
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		return pts[:len(pts)-1], true
	}
	return pts, closed
}

func boundingBox(pts []geom.Coord) geom.Rect {
	r := geom.Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r.ExpandToContainCoord(p)
	}
	return r
}

// Perimeter sums the edge lengths of the closed ring pts.
func Perimeter(pts []geom.Coord) float64 {
	var sum float64
	for i, p := range pts {
		sum += p.DistanceFrom(pts[(i+1)%len(pts)])
	}
	return sum
}

// Area is the unsigned shoelace area of the closed ring pts.
func Area(pts []geom.Coord) float64 {
	var sum float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return math.Abs(sum) / 2
}

// Thinness returns 4πA/P² for the closed ring pts. ok is false when the
// ratio is undefined.
func Thinness(pts []geom.Coord) (ratio float64, ok bool) {
	if len(pts) < 3 {
		return 0, false
	}
	p := Perimeter(pts)
	if p == 0 || math.IsNaN(p) || math.IsInf(p, 0) {
		return 0, false
	}
	ratio = 4 * math.Pi * Area(pts) / (p * p)
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return 0, false
	}
	return ratio, true
}

// IsCircular reports whether the thinness ratio of pts falls in the
// circularity band.
func IsCircular(pts []geom.Coord, th Thresholds) bool {
	ratio, ok := Thinness(pts)
	return ok && ratio >= th.CircularityMin && ratio <= th.CircularityMax
}

// IsRectangle reports whether the closed ring pts has four non-empty edges
// alternating between horizontal and vertical.
func IsRectangle(pts []geom.Coord, tol float64) bool {
	if len(pts) != 4 {
		return false
	}
	var firstHorizontal bool
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		dx, dy := math.Abs(q.X-p.X), math.Abs(q.Y-p.Y)
		horizontal := dy <= tol && dx > tol
		vertical := dx <= tol && dy > tol
		if !horizontal && !vertical {
			return false
		}
		if i == 0 {
			firstHorizontal = horizontal
			continue
		}
		// Edges alternate, so edge i is horizontal exactly when its parity
		// matches the first edge.
		if horizontal != (firstHorizontal == (i%2 == 0)) {
			return false
		}
	}
	return true
}
