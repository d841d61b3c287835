package drawing

import (
	"encoding/json"
	"fmt"
	"io"
)

// Drawing is a parsed vector drawing as handed over by the DXF reader.
type Drawing struct {
	Name     string   `json:"name"`
	Unit     Unit     `json:"unit"`
	Entities []Entity `json:"entities"`
	Blocks   []Block  `json:"blocks"`
}

type EntityKind string

const (
	KindCircle     EntityKind = "CIRCLE"
	KindEllipse    EntityKind = "ELLIPSE"
	KindLine       EntityKind = "LINE"
	KindArc        EntityKind = "ARC"
	KindSolid      EntityKind = "SOLID"
	KindSpline     EntityKind = "SPLINE"
	KindPolyline   EntityKind = "POLYLINE"
	KindLwPolyline EntityKind = "LWPOLYLINE"
	KindText       EntityKind = "TEXT"
	KindInsert     EntityKind = "INSERT"
	KindLeader     EntityKind = "LEADER"
)

// Entity is one drawing primitive. Common attributes live on the entity itself,
// the kind-specific geometry stays encoded in Data until Decode is called.
type Entity struct {
	Kind      EntityKind      `json:"kind"`
	Handle    string          `json:"handle,omitempty"`
	Layer     string          `json:"layer,omitempty"`
	Color     uint32          `json:"color"`
	Thickness float64         `json:"thickness"`
	Data      json.RawMessage `json:"data"`
}

// Block is a named, reusable list of entities placed by INSERT entities.
type Block struct {
	Name      string   `json:"name"`
	BasePoint Point    `json:"basePoint"`
	Entities  []Entity `json:"entities"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z,omitempty"`
}

type Circle struct {
	Center Point   `json:"center"`
	Radius float64 `json:"radius"`
}

type Ellipse struct {
	Center         Point   `json:"center"`
	MajorAxis      Point   `json:"majorAxis"`
	MinorAxisRatio float64 `json:"minorAxisRatio"`
}

type Line struct {
	P1 Point `json:"p1"`
	P2 Point `json:"p2"`
}

// Arc angles are in degrees, counter-clockwise from the positive X axis.
type Arc struct {
	Center     Point   `json:"center"`
	Radius     float64 `json:"radius"`
	StartAngle float64 `json:"startAngle"`
	EndAngle   float64 `json:"endAngle"`
}

type Solid struct {
	Corners [4]Point `json:"corners"`
}

type Spline struct {
	Degree        int       `json:"degree"`
	ControlPoints []Point   `json:"controlPoints"`
	Knots         []float64 `json:"knots"`
	Closed        bool      `json:"closed,omitempty"`
}

// Polyline carries the vertices of both POLYLINE and LWPOLYLINE entities.
type Polyline struct {
	Vertices []Point `json:"vertices"`
	Closed   bool    `json:"closed,omitempty"`
}

type Text struct {
	Location  Point   `json:"location"`
	Value     string  `json:"value"`
	Height    float64 `json:"height"`
	Rotation  float64 `json:"rotation"`
	StyleName string  `json:"styleName"`
}

// Insert places the block Name at Location. A zero scale factor means 1.
type Insert struct {
	Name     string  `json:"name"`
	Location Point   `json:"location"`
	XScale   float64 `json:"xScale"`
	YScale   float64 `json:"yScale"`
	Rotation float64 `json:"rotation,omitempty"`
}

type Leader struct {
	Vertices []Point `json:"vertices"`
}

// Scales returns the insert scale factors with unset values defaulted to 1.
func (i Insert) Scales() (float64, float64) {
	sx, sy := i.XScale, i.YScale
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return sx, sy
}

// NewEntity creates an entity of the given kind with data as its geometry.
// It panics if data cannot be encoded, such as a NaN coordinate.
func NewEntity(kind EntityKind, data any) Entity {
	raw, err := json.Marshal(data)
	if err != nil {
		panic(fmt.Sprintf("drawing: encode %s geometry: %v", kind, err))
	}
	return Entity{Kind: kind, Data: raw}
}

// Decode unmarshals the entity geometry into v.
func (e Entity) Decode(v any) error {
	if len(e.Data) == 0 {
		return fmt.Errorf("%s entity %q has no geometry", e.Kind, e.Handle)
	}
	if err := json.Unmarshal(e.Data, v); err != nil {
		return fmt.Errorf("decode %s entity %q: %w", e.Kind, e.Handle, err)
	}
	return nil
}

// Block returns the first block named name.
func (d *Drawing) Block(name string) (*Block, bool) {
	for i := range d.Blocks {
		if d.Blocks[i].Name == name {
			return &d.Blocks[i], true
		}
	}
	return nil, false
}

// Load decodes a drawing from JSON.
func Load(r io.Reader) (*Drawing, error) {
	var d Drawing
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("decode drawing: %w", err)
	}
	if d.Unit == "" {
		d.Unit = UnitUnitless
	}
	return &d, nil
}
