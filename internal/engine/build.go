package engine

import (
	"fmt"
	"math"

	"github.com/jbeda/geom"

	"github.com/qelectrotech/dxf2elmt-vadoola/internal/classify"
	"github.com/qelectrotech/dxf2elmt-vadoola/internal/drawing"
	"github.com/qelectrotech/dxf2elmt-vadoola/internal/shape"
	"github.com/qelectrotech/dxf2elmt-vadoola/internal/spline"
	"github.com/qelectrotech/dxf2elmt-vadoola/internal/typeid"
)

// Builder converts the entities of one drawing into shapes.
type Builder struct {
	drawing *drawing.Drawing
	opts    Options
}

// NewBuilder creates a builder resolving block references against d.
func NewBuilder(d *drawing.Drawing, opts Options) *Builder {
	return &Builder{drawing: d, opts: opts.withDefaults()}
}

// Build converts a single entity placed by t. Inserts expand into groups.
// Failures are returned as *EntityError.
func (b *Builder) Build(e drawing.Entity, t Transform) (shape.Shape, error) {
	return b.build(e, t, nil)
}

// build threads stack, the names of the blocks currently being expanded,
// through nested inserts.
func (b *Builder) build(e drawing.Entity, t Transform, stack []string) (shape.Shape, error) {
	s, err := b.dispatch(e, t, stack)
	if err != nil {
		return nil, &EntityError{Kind: e.Kind, Handle: e.Handle, Err: err}
	}
	return s, nil
}

func (b *Builder) dispatch(e drawing.Entity, t Transform, stack []string) (shape.Shape, error) {
	switch e.Kind {
	case drawing.KindCircle:
		return b.circle(e, t)
	case drawing.KindEllipse:
		return b.ellipse(e, t)
	case drawing.KindLine:
		return b.line(e, t)
	case drawing.KindArc:
		return b.arc(e, t)
	case drawing.KindSolid:
		return b.solid(e, t)
	case drawing.KindSpline:
		return b.spline(e, t)
	case drawing.KindPolyline, drawing.KindLwPolyline:
		return b.polyline(e, t)
	case drawing.KindText:
		return b.text(e, t)
	case drawing.KindInsert:
		return b.expand(e, t, stack)
	case drawing.KindLeader:
		return b.leader(e, t)
	default:
		return nil, ErrUnsupportedEntity
	}
}

// decode unmarshals the geometry of e, tagging failures as malformed.
func decode(e drawing.Entity, v any) error {
	if err := e.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedEntity, err)
	}
	return nil
}

func (b *Builder) circle(e drawing.Entity, t Transform) (shape.Shape, error) {
	var c drawing.Circle
	if err := decode(e, &c); err != nil {
		return nil, err
	}
	center := t.Place(c.Center)
	rx, ry := t.Size(c.Radius)
	return &shape.Ellipse{
		X:      center.X - rx,
		Y:      center.Y - ry,
		Width:  2 * rx,
		Height: 2 * ry,
		Style:  shape.NewStyle(e.Thickness, shape.ThinCircle),
	}, nil
}

// ellipseAxisTolerance bounds the slope of a major axis still treated as
// horizontal or vertical.
const ellipseAxisTolerance = 1e-9

func (b *Builder) ellipse(e drawing.Entity, t Transform) (shape.Shape, error) {
	var el drawing.Ellipse
	if err := decode(e, &el); err != nil {
		return nil, err
	}
	major := geom.Coord{X: el.MajorAxis.X, Y: el.MajorAxis.Y}
	a := major.Magnitude()
	if a == 0 || el.MinorAxisRatio <= 0 {
		return nil, fmt.Errorf("%w: ellipse axis %v ratio %v", ErrDegenerateGeometry, major, el.MinorAxisRatio)
	}
	style := shape.NewStyle(e.Thickness, shape.ThinEllipse)
	minor := a * el.MinorAxisRatio

	var halfW, halfH float64
	switch {
	case math.Abs(major.Y) <= ellipseAxisTolerance*a:
		halfW, halfH = a, minor
	case math.Abs(major.X) <= ellipseAxisTolerance*a:
		halfW, halfH = minor, a
	default:
		// The output ellipse is axis-aligned; a tilted one is traced instead.
		return &shape.Polygon{
			Points: tiltedEllipse(el, t, b.opts.SplineStep),
			Closed: true,
			Style:  style,
		}, nil
	}

	center := t.Place(el.Center)
	rx, _ := t.Size(halfW)
	_, ry := t.Size(halfH)
	return &shape.Ellipse{
		X:      center.X - rx,
		Y:      center.Y - ry,
		Width:  2 * rx,
		Height: 2 * ry,
		Style:  style,
	}, nil
}

// tiltedEllipse samples n points around a rotated ellipse in output space.
func tiltedEllipse(el drawing.Ellipse, t Transform, n int) []geom.Coord {
	n = min(max(n, 8), MaxSplineStep)
	major := geom.Coord{X: el.MajorAxis.X, Y: el.MajorAxis.Y}
	minor := geom.Coord{X: -major.Y, Y: major.X}.Times(el.MinorAxisRatio)
	center := geom.Coord{X: el.Center.X, Y: el.Center.Y}

	pts := make([]geom.Coord, n)
	for i := range pts {
		theta := 2 * math.Pi * float64(i) / float64(n)
		p := center.Plus(major.Times(math.Cos(theta))).Plus(minor.Times(math.Sin(theta)))
		pts[i] = t.Place(drawing.Point{X: p.X, Y: p.Y})
	}
	return pts
}

func (b *Builder) line(e drawing.Entity, t Transform) (shape.Shape, error) {
	var l drawing.Line
	if err := decode(e, &l); err != nil {
		return nil, err
	}
	p1, p2 := t.Place(l.P1), t.Place(l.P2)
	return shape.NewLine(p1.X, p1.Y, p2.X, p2.Y, shape.NewStyle(e.Thickness, shape.ThinLine)), nil
}

func (b *Builder) arc(e drawing.Entity, t Transform) (shape.Shape, error) {
	var a drawing.Arc
	if err := decode(e, &a); err != nil {
		return nil, err
	}
	center := t.Place(a.Center)
	rx, ry := t.Size(a.Radius)

	sweep := a.EndAngle - a.StartAngle
	if a.StartAngle > a.EndAngle {
		sweep = 360 - a.StartAngle + a.EndAngle
	}
	return &shape.Arc{
		X:      center.X - rx,
		Y:      center.Y - ry,
		Width:  2 * rx,
		Height: 2 * ry,
		Start:  math.Abs(a.StartAngle),
		Angle:  math.Abs(sweep),
		Style:  shape.NewStyle(e.Thickness, shape.ThinArc),
	}, nil
}

func (b *Builder) solid(e drawing.Entity, t Transform) (shape.Shape, error) {
	var s drawing.Solid
	if err := decode(e, &s); err != nil {
		return nil, err
	}
	pts := make([]geom.Coord, len(s.Corners))
	for i, c := range s.Corners {
		pts[i] = t.Place(c)
	}
	return &shape.Polygon{
		Points: pts,
		Closed: true,
		Style:  shape.NewStyle(e.Thickness, shape.ThinSolid),
	}, nil
}

func (b *Builder) spline(e drawing.Entity, t Transform) (shape.Shape, error) {
	var sp drawing.Spline
	if err := decode(e, &sp); err != nil {
		return nil, err
	}
	ctrl := make([]geom.Coord, len(sp.ControlPoints))
	for i, p := range sp.ControlPoints {
		ctrl[i] = geom.Coord{X: p.X, Y: p.Y}
	}
	curve, err := spline.Tessellate(sp.Degree, ctrl, sp.Knots, b.opts.SplineStep)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDegenerateGeometry, err)
	}
	for i, p := range curve {
		curve[i] = t.Place(drawing.Point{X: p.X, Y: p.Y})
	}
	return &shape.Polygon{
		Points: curve,
		Closed: sp.Closed,
		Style:  shape.NewStyle(e.Thickness, shape.ThinSpline),
	}, nil
}

func (b *Builder) polyline(e drawing.Entity, t Transform) (shape.Shape, error) {
	var pl drawing.Polyline
	if err := decode(e, &pl); err != nil {
		return nil, err
	}
	style := shape.NewStyle(e.Thickness, shape.ThinPolyline)

	switch len(pl.Vertices) {
	case 0, 1:
		return nil, fmt.Errorf("%w: polyline with %d vertices", ErrDegenerateGeometry, len(pl.Vertices))
	case 2:
		p1, p2 := t.Place(pl.Vertices[0]), t.Place(pl.Vertices[1])
		return shape.NewLine(p1.X, p1.Y, p2.X, p2.Y, style), nil
	}

	pts := make([]geom.Coord, len(pl.Vertices))
	for i, v := range pl.Vertices {
		pts[i] = t.Place(v)
	}
	return classify.Classify(pts, pl.Closed, style, b.opts.Thresholds), nil
}

func (b *Builder) text(e drawing.Entity, t Transform) (shape.Shape, error) {
	var tx drawing.Text
	if err := decode(e, &tx); err != nil {
		return nil, err
	}
	at := t.Place(tx.Location)
	_, size := t.Size(tx.Height)
	font := shape.Font{Family: fontFamily(tx.StyleName), Size: size}
	value := normalizeText(tx.Value)

	if !b.opts.DynamicText {
		return &shape.Text{
			X:        at.X,
			Y:        at.Y,
			Rotation: textRotation(tx.Rotation),
			Color:    shape.Color(e.Color),
			Font:     font,
			Value:    value,
		}, nil
	}
	dt := shape.NewDynamicText(at.X, at.Y, tx.Location.Z, value, font, shape.Color(e.Color))
	dt.Rotation = textRotation(tx.Rotation)
	return dt, nil
}

// leader draws one line per pair of consecutive vertices.
func (b *Builder) leader(e drawing.Entity, t Transform) (shape.Shape, error) {
	var ld drawing.Leader
	if err := decode(e, &ld); err != nil {
		return nil, err
	}
	if len(ld.Vertices) < 2 {
		return nil, fmt.Errorf("%w: leader with %d vertices", ErrDegenerateGeometry, len(ld.Vertices))
	}
	style := shape.NewStyle(e.Thickness, shape.ThinLine)
	g := &shape.Group{ID: typeid.NewGroupID(), Name: "leader"}
	prev := t.Place(ld.Vertices[0])
	for _, v := range ld.Vertices[1:] {
		next := t.Place(v)
		g.Add(shape.NewLine(prev.X, prev.Y, next.X, next.Y, style))
		prev = next
	}
	return g, nil
}
