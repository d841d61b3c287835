// Package spline approximates B-spline curves with polylines.
package spline

import (
	"errors"
	"fmt"
	"math"

	"github.com/jbeda/geom"
)

// ErrDegenerate is returned for curves that cannot yield at least two points.
var ErrDegenerate = errors.New("degenerate curve")

// MaxSteps bounds the step count accepted by Tessellate.
const MaxSteps = 10000

// Tessellate evaluates the B-spline of the given degree at steps evenly
// spaced parameters of its knot domain [t_min, t_max) and closes the
// polyline with the point at t_max. At most steps+1 points are returned.
func Tessellate(degree int, ctrl []geom.Coord, knots []float64, steps int) ([]geom.Coord, error) {
	if err := validate(degree, ctrl, knots, steps); err != nil {
		return nil, err
	}

	n := len(ctrl)
	tMin, tMax := knots[degree], knots[n]
	step := (tMax - tMin) / float64(steps)

	pts := make([]geom.Coord, 0, steps+1)
	for i := 0; i < steps; i++ {
		t := tMin + float64(i)*step
		if t >= tMax {
			break
		}
		pts = append(pts, deBoor(degree, ctrl, knots, t))
	}
	pts = append(pts, deBoor(degree, ctrl, knots, tMax))

	if len(pts) < 2 {
		return nil, fmt.Errorf("%w: %d point(s)", ErrDegenerate, len(pts))
	}
	return pts, nil
}

func validate(degree int, ctrl []geom.Coord, knots []float64, steps int) error {
	switch {
	case steps < 1 || steps > MaxSteps:
		return fmt.Errorf("%w: step count %d outside [1, %d]", ErrDegenerate, steps, MaxSteps)
	case degree < 1:
		return fmt.Errorf("%w: degree %d", ErrDegenerate, degree)
	case len(ctrl) <= degree:
		return fmt.Errorf("%w: %d control points for degree %d", ErrDegenerate, len(ctrl), degree)
	case len(knots) != len(ctrl)+degree+1:
		return fmt.Errorf("%w: %d knots, want %d", ErrDegenerate, len(knots), len(ctrl)+degree+1)
	}
	for i, k := range knots {
		if math.IsNaN(k) || math.IsInf(k, 0) {
			return fmt.Errorf("%w: knot %d is not finite", ErrDegenerate, i)
		}
		if i > 0 && k < knots[i-1] {
			return fmt.Errorf("%w: knots decrease at %d", ErrDegenerate, i)
		}
	}
	if !(knots[degree] < knots[len(ctrl)]) {
		return fmt.Errorf("%w: empty knot domain", ErrDegenerate)
	}
	return nil
}

// span returns k such that knots[k] <= t < knots[k+1] within the domain.
// At the upper end of the domain the last non-empty span is used.
func span(degree, n int, knots []float64, t float64) int {
	if t >= knots[n] {
		k := n - 1
		for k > degree && knots[k] == knots[k+1] {
			k--
		}
		return k
	}
	k := degree
	for k < n-1 && knots[k+1] <= t {
		k++
	}
	return k
}

func deBoor(degree int, ctrl []geom.Coord, knots []float64, t float64) geom.Coord {
	k := span(degree, len(ctrl), knots, t)

	d := make([]geom.Coord, degree+1)
	copy(d, ctrl[k-degree:k+1])

	for r := 1; r <= degree; r++ {
		for j := degree; j >= r; j-- {
			lo := knots[j+k-degree]
			hi := knots[j+1+k-r]
			alpha := 0.0
			if hi != lo {
				alpha = (t - lo) / (hi - lo)
			}
			d[j] = d[j-1].Times(1 - alpha).Plus(d[j].Times(alpha))
		}
	}
	return d[degree]
}
