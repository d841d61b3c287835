package drawing

import (
	"encoding/json"

	"github.com/qelectrotech/dxf2elmt-vadoola/internal/typeid"
)

// NewSampleDrawing returns a small normally-open contact symbol drawn in
// millimeters. It uses every supported entity kind and places a terminal
// block twice, once nested inside another block.
func NewSampleDrawing() *Drawing {
	entity := func(kind EntityKind, thickness float64, data string) Entity {
		return Entity{
			Kind:      kind,
			Handle:    typeid.NewEntityHandle(),
			Layer:     "0",
			Thickness: thickness,
			Data:      json.RawMessage(data),
		}
	}

	return &Drawing{
		Name: "contact_no",
		Unit: UnitMillimeters,
		Entities: []Entity{
			entity(KindLine, 0.6, `{"p1": {"x": 0, "y": 0}, "p2": {"x": 0, "y": -8}}`),
			entity(KindLine, 0.6, `{"p1": {"x": 0, "y": -14}, "p2": {"x": 0, "y": -22}}`),
			entity(KindLine, 0.6, `{"p1": {"x": 0, "y": -14}, "p2": {"x": -4, "y": -7}}`),
			entity(KindArc, 0, `{"center": {"x": 0, "y": -11}, "radius": 1, "startAngle": 270, "endAngle": 90}`),
			entity(KindCircle, 0, `{"center": {"x": 8, "y": -11}, "radius": 1.5}`),
			entity(KindEllipse, 0, `{"center": {"x": -8, "y": -11}, "majorAxis": {"x": 2, "y": 0}, "minorAxisRatio": 0.5}`),
			entity(KindSolid, 0, `{"corners": [{"x": -1, "y": -23}, {"x": 1, "y": -23}, {"x": 1, "y": -24}, {"x": -1, "y": -24}]}`),
			entity(KindLwPolyline, 0, `{"vertices": [{"x": -6, "y": 2}, {"x": 6, "y": 2}, {"x": 6, "y": -24}, {"x": -6, "y": -24}], "closed": true}`),
			entity(KindPolyline, 0.2, `{"vertices": [{"x": -4, "y": -3}, {"x": -2, "y": -5}, {"x": -4, "y": -7}]}`),
			entity(KindSpline, 0, `{"degree": 3, "controlPoints": [{"x": 3, "y": -3}, {"x": 4, "y": -1}, {"x": 5, "y": -5}, {"x": 6, "y": -3}], "knots": [0, 0, 0, 0, 1, 1, 1, 1]}`),
			entity(KindLeader, 0, `{"vertices": [{"x": 8, "y": -9}, {"x": 10, "y": -5}, {"x": 13, "y": -5}]}`),
			entity(KindText, 0, `{"location": {"x": 10, "y": -4}, "value": "K1", "height": 2.5, "rotation": 0, "styleName": "STANDARD"}`),
			entity(KindInsert, 0, `{"name": "terminal", "location": {"x": 0, "y": 0}, "xScale": 1, "yScale": 1}`),
			entity(KindInsert, 0, `{"name": "terminal_pair", "location": {"x": 0, "y": -22}, "xScale": 1, "yScale": 1}`),
		},
		Blocks: []Block{
			{
				Name:      "terminal",
				BasePoint: Point{X: 0, Y: 0},
				Entities: []Entity{
					entity(KindCircle, 0, `{"center": {"x": 0, "y": 0}, "radius": 0.5}`),
				},
			},
			{
				Name:      "terminal_pair",
				BasePoint: Point{X: 0, Y: 0},
				Entities: []Entity{
					entity(KindInsert, 0, `{"name": "terminal", "location": {"x": 0, "y": 0}, "xScale": 1, "yScale": 1}`),
					entity(KindLine, 0, `{"p1": {"x": -1, "y": 0}, "p2": {"x": 1, "y": 0}}`),
				},
			},
		},
	}
}
