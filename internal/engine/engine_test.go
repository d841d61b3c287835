package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/maruel/ut"

	"github.com/qelectrotech/dxf2elmt-vadoola/internal/drawing"
	"github.com/qelectrotech/dxf2elmt-vadoola/internal/shape"
)

func TestConvertSample(t *testing.T) {
	t.Parallel()
	d := drawing.NewSampleDrawing()
	res, err := Convert(d, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	ut.AssertEqual(t, "contact_no", res.Name)
	ut.AssertEqual(t, true, strings.HasPrefix(res.ID, "conv_"))
	ut.AssertEqual(t, len(d.Entities), res.Stats.TotalConverted())
	ut.AssertEqual(t, 0, res.Stats.TotalSkipped())
	ut.AssertEqual(t, 3, res.Stats.Converted[drawing.KindLine])
	ut.AssertEqual(t, 2, res.Stats.Converted[drawing.KindInsert])
	ut.AssertEqual(t, len(d.Entities), len(res.Tree.Shapes))

	if float64(res.Canvas.Width) < res.Bounds.Width() || float64(res.Canvas.Height) < res.Bounds.Height() {
		t.Errorf("canvas %+v smaller than bounds %v", res.Canvas, res.Bounds)
	}
	ut.AssertEqual(t, 0, res.Canvas.Width%10)
	ut.AssertEqual(t, 0, res.Canvas.Height%10)

	// The closed axis-aligned outline is promoted to a rectangle.
	_, ok := res.Tree.Shapes[7].(*shape.Rectangle)
	ut.AssertEqual(t, true, ok)
}

func TestConvertScalesToOutputUnits(t *testing.T) {
	t.Parallel()
	data := []struct {
		unit drawing.Unit
		x2   float64
	}{
		{drawing.UnitMillimeters, 2},
		{drawing.UnitUnitless, 2},
		{drawing.Unit("furlongs"), 2},
		{drawing.UnitCentimeters, 20},
		{drawing.UnitInches, 50.8},
	}
	for i, line := range data {
		d := &drawing.Drawing{Unit: line.unit, Entities: []drawing.Entity{
			drawing.NewEntity(drawing.KindLine, drawing.Line{P2: pt(1, 0)}),
		}}
		res, err := Convert(d, DefaultOptions())
		if err != nil {
			t.Fatal(err)
		}
		l := res.Tree.Shapes[0].(*shape.Line)
		ut.AssertEqualIndex(t, i, line.x2, l.X2)
	}
}

func TestConvertFlipsY(t *testing.T) {
	t.Parallel()
	d := &drawing.Drawing{Unit: drawing.UnitMillimeters, Entities: []drawing.Entity{
		drawing.NewEntity(drawing.KindLine, drawing.Line{P1: pt(0, 0), P2: pt(0, -8)}),
	}}
	res, err := Convert(d, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	l := res.Tree.Shapes[0].(*shape.Line)
	ut.AssertEqual(t, 16.0, l.Y2)
	ut.AssertEqual(t, 16.0, res.Bounds.Max.Y)
}

func TestConvertSkipsFailures(t *testing.T) {
	t.Parallel()
	d := &drawing.Drawing{
		Unit: drawing.UnitMillimeters,
		Entities: []drawing.Entity{
			{Kind: "HATCH"},
			insert("missing", 0, 0, 1, 1),
			drawing.NewEntity(drawing.KindLwPolyline, drawing.Polyline{Vertices: []drawing.Point{pt(1, 1)}}),
			line(0, 0, 1, 1),
		},
	}
	res, err := Convert(d, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	ut.AssertEqual(t, 1, res.Stats.TotalConverted())
	ut.AssertEqual(t, 3, res.Stats.TotalSkipped())
	ut.AssertEqual(t, map[Reason]int{
		ReasonUnsupported:  1,
		ReasonMissingBlock: 1,
		ReasonDegenerate:   1,
	}, res.Stats.Skipped)
	ut.AssertEqual(t, []drawing.EntityKind{"HATCH", drawing.KindInsert, drawing.KindLine, drawing.KindLwPolyline}, res.Stats.Kinds())
}

func TestConvertStrict(t *testing.T) {
	t.Parallel()
	d := &drawing.Drawing{Name: "bad", Entities: []drawing.Entity{line(0, 0, 1, 1), {Kind: "HATCH"}}}
	opts := DefaultOptions()
	opts.Strict = true
	_, err := Convert(d, opts)
	ut.AssertEqual(t, true, errors.Is(err, ErrUnsupportedEntity))

	var ee *EntityError
	ut.AssertEqual(t, true, errors.As(err, &ee))
	ut.AssertEqual(t, drawing.EntityKind("HATCH"), ee.Kind)
}

func TestConvertEmpty(t *testing.T) {
	t.Parallel()
	res, err := Convert(&drawing.Drawing{}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	ut.AssertEqual(t, 0, res.Tree.Len())
	ut.AssertEqual(t, Canvas{Width: 10, Height: 10, HotspotX: 5, HotspotY: 5}, res.Canvas)

	_, err = Convert(nil, DefaultOptions())
	ut.AssertEqual(t, true, err != nil)
}

func TestOptionsDefaults(t *testing.T) {
	t.Parallel()
	o := Options{}.withDefaults()
	ut.AssertEqual(t, DefaultSplineStep, o.SplineStep)
	ut.AssertEqual(t, DefaultMaxBlockDepth, o.MaxBlockDepth)
	ut.AssertEqual(t, false, o.DynamicText)
	ut.AssertEqual(t, DefaultOptions().Thresholds, o.Thresholds)
}

func TestTransformCompose(t *testing.T) {
	t.Parallel()
	child := Identity().Compose(pt(10, 10), pt(0, 0), 2, 2)
	ut.AssertEqual(t, Transform{OffsetX: 10, OffsetY: 10, ScaleX: 2, ScaleY: 2}, child)

	grand := child.Compose(pt(3, 1), pt(1, 1), 0.5, -1)
	ut.AssertEqual(t, Transform{OffsetX: 14, OffsetY: 10, ScaleX: 1, ScaleY: -2}, grand)

	w, h := grand.Size(2)
	ut.AssertEqual(t, 2.0, w)
	ut.AssertEqual(t, 4.0, h)
}
