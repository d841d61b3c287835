package engine

import "github.com/qelectrotech/dxf2elmt-vadoola/internal/drawing"

// OutputUnitsPerMillimeter calibrates the output grid.
const OutputUnitsPerMillimeter = 2.0

// UnitScale returns the factor converting drawing units to output units.
// Unknown units are treated as millimeters and reported with ok == false.
func UnitScale(u drawing.Unit) (scale float64, ok bool) {
	mm, ok := u.Millimeters()
	return mm * OutputUnitsPerMillimeter, ok
}
