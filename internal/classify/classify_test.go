package classify

import (
	"math"
	"testing"

	"github.com/jbeda/geom"
	"github.com/maruel/ut"

	"github.com/qelectrotech/dxf2elmt-vadoola/internal/shape"
)

func regularPolygon(n int, cx, cy, r float64) []geom.Coord {
	pts := make([]geom.Coord, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = geom.Coord{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)}
	}
	return pts
}

func TestSixteenGonIsCircle(t *testing.T) {
	t.Parallel()
	pts := regularPolygon(16, 3, -4, 10)
	ratio, ok := Thinness(pts)
	ut.AssertEqual(t, true, ok)
	if ratio < 0.98 || ratio > 1.02 {
		t.Fatalf("thinness %f outside circularity band", ratio)
	}

	s := Classify(pts, true, shape.Style{}, DefaultThresholds)
	e, ok := s.(*shape.Ellipse)
	if !ok {
		t.Fatalf("got %T, want *shape.Ellipse", s)
	}
	if math.Abs(e.Width-20) > 0.4 || math.Abs(e.Height-20) > 0.4 {
		t.Errorf("size %fx%f not within 2%% of 20", e.Width, e.Height)
	}
	ut.AssertEqual(t, -7.0, e.X)
}

func TestAxisAlignedQuadIsRectangle(t *testing.T) {
	t.Parallel()
	data := [][]geom.Coord{
		{{X: 1, Y: 2}, {X: 6, Y: 2}, {X: 6, Y: 5}, {X: 1, Y: 5}},
		{{X: 1, Y: 2}, {X: 1, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 2}},
		{{X: 6, Y: 5}, {X: 1, Y: 5}, {X: 1, Y: 2}, {X: 6, Y: 2}, {X: 6, Y: 5}},
	}
	for i, pts := range data {
		s := Classify(pts, true, shape.Style{Weight: shape.WeightNormal}, DefaultThresholds)
		ut.AssertEqualIndex(t, i, &shape.Rectangle{
			X: 1, Y: 2, Width: 5, Height: 3,
			Style: shape.Style{Weight: shape.WeightNormal},
		}, s)
	}
}

func TestClosedByRepeatedVertex(t *testing.T) {
	t.Parallel()
	pts := []geom.Coord{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}, {X: 0, Y: 0}}
	_, ok := Classify(pts, false, shape.Style{}, DefaultThresholds).(*shape.Rectangle)
	ut.AssertEqual(t, true, ok)
}

func TestFallbackPolygon(t *testing.T) {
	t.Parallel()
	data := []struct {
		pts    []geom.Coord
		closed bool
	}{
		// Triangle.
		{[]geom.Coord{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 3}}, true},
		// Open square outline.
		{[]geom.Coord{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}, false},
		// Rotated square.
		{[]geom.Coord{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 2}}, true},
		// All vertices coincide.
		{[]geom.Coord{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 1}}, true},
		// Open 16-gon.
		{regularPolygon(16, 0, 0, 10), false},
	}
	for i, line := range data {
		s := Classify(line.pts, line.closed, shape.Style{}, DefaultThresholds)
		p, ok := s.(*shape.Polygon)
		ut.AssertEqualIndex(t, i, true, ok)
		if ok {
			ut.AssertEqualIndex(t, i, line.pts, p.Points)
			ut.AssertEqualIndex(t, i, line.closed, p.Closed)
		}
	}
}

func TestThinnessGuards(t *testing.T) {
	t.Parallel()
	data := [][]geom.Coord{
		nil,
		{{X: 0, Y: 0}, {X: 1, Y: 1}},
		{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 0}},
		{{X: math.Inf(1), Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 1}},
		{{X: math.NaN(), Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 1}},
	}
	for i, pts := range data {
		_, ok := Thinness(pts)
		ut.AssertEqualIndex(t, i, false, ok)
	}
}

func TestRectangleRatioOutsideCircleBand(t *testing.T) {
	t.Parallel()
	ratio, ok := Thinness([]geom.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}})
	ut.AssertEqual(t, true, ok)
	if ratio >= DefaultThresholds.CircularityMin {
		t.Fatalf("square thinness %f reaches the circle band", ratio)
	}
}

func TestIsRectangleRejects(t *testing.T) {
	t.Parallel()
	data := [][]geom.Coord{
		{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}},
		{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 2}},
		{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 2}, {X: 0, Y: 2}},
	}
	for i, pts := range data {
		ut.AssertEqualIndex(t, i, false, IsRectangle(pts, DefaultThresholds.AxisTolerance))
	}
}

func TestCustomThresholds(t *testing.T) {
	t.Parallel()
	hexagon := regularPolygon(6, 0, 0, 5)
	_, ok := Classify(hexagon, true, shape.Style{}, DefaultThresholds).(*shape.Polygon)
	ut.AssertEqual(t, true, ok)

	loose := DefaultThresholds
	loose.CircularityMin = 0.9
	_, ok = Classify(hexagon, true, shape.Style{}, loose).(*shape.Ellipse)
	ut.AssertEqual(t, true, ok)
}
