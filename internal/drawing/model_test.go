package drawing

import (
	"math"
	"strings"
	"testing"

	"github.com/maruel/ut"
)

func TestLoad(t *testing.T) {
	t.Parallel()
	src := `{
		"name": "relay",
		"unit": "inches",
		"entities": [
			{"kind": "LINE", "handle": "1F", "color": 255, "thickness": 0.7,
			 "data": {"p1": {"x": 1, "y": 2}, "p2": {"x": 3, "y": 4}}}
		],
		"blocks": [{"name": "coil", "basePoint": {"x": 5, "y": 6}, "entities": []}]
	}`
	d, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	ut.AssertEqual(t, "relay", d.Name)
	ut.AssertEqual(t, UnitInches, d.Unit)
	ut.AssertEqual(t, 1, len(d.Entities))
	ut.AssertEqual(t, KindLine, d.Entities[0].Kind)
	ut.AssertEqual(t, uint32(255), d.Entities[0].Color)

	var line Line
	if err := d.Entities[0].Decode(&line); err != nil {
		t.Fatal(err)
	}
	ut.AssertEqual(t, Line{P1: Point{X: 1, Y: 2}, P2: Point{X: 3, Y: 4}}, line)

	b, ok := d.Block("coil")
	ut.AssertEqual(t, true, ok)
	ut.AssertEqual(t, Point{X: 5, Y: 6}, b.BasePoint)
}

func TestLoadDefaultsUnit(t *testing.T) {
	t.Parallel()
	d, err := Load(strings.NewReader(`{"entities": []}`))
	if err != nil {
		t.Fatal(err)
	}
	ut.AssertEqual(t, UnitUnitless, d.Unit)
}

func TestLoadInvalid(t *testing.T) {
	t.Parallel()
	if _, err := Load(strings.NewReader(`{"entities": [`)); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestDecodeMissingData(t *testing.T) {
	t.Parallel()
	var c Circle
	if err := (Entity{Kind: KindCircle, Handle: "A"}).Decode(&c); err == nil {
		t.Fatal("expected error for entity without geometry")
	}
}

func TestBlockFirstMatchWins(t *testing.T) {
	t.Parallel()
	d := &Drawing{Blocks: []Block{
		{Name: "dup", BasePoint: Point{X: 1}},
		{Name: "dup", BasePoint: Point{X: 2}},
	}}
	b, ok := d.Block("dup")
	ut.AssertEqual(t, true, ok)
	ut.AssertEqual(t, 1.0, b.BasePoint.X)
	_, ok = d.Block("Dup")
	ut.AssertEqual(t, false, ok)
}

func TestInsertScales(t *testing.T) {
	t.Parallel()
	data := []struct {
		in     Insert
		sx, sy float64
	}{
		{Insert{}, 1, 1},
		{Insert{XScale: 2}, 2, 1},
		{Insert{XScale: -1, YScale: 3}, -1, 3},
	}
	for i, line := range data {
		sx, sy := line.in.Scales()
		ut.AssertEqualIndex(t, i, line.sx, sx)
		ut.AssertEqualIndex(t, i, line.sy, sy)
	}
}

func TestUnitMillimeters(t *testing.T) {
	t.Parallel()
	data := []struct {
		unit Unit
		mm   float64
		ok   bool
	}{
		{UnitMillimeters, 1, true},
		{UnitInches, 25.4, true},
		{UnitMeters, 1000, true},
		{UnitUnitless, 1, true},
		{Unit("furlongs"), 1, false},
	}
	for i, line := range data {
		mm, ok := line.unit.Millimeters()
		ut.AssertEqualIndex(t, i, line.mm, mm)
		ut.AssertEqualIndex(t, i, line.ok, ok)
	}
}

func TestSampleDrawingDecodes(t *testing.T) {
	t.Parallel()
	d := NewSampleDrawing()
	for i, e := range d.Entities {
		var raw map[string]any
		if err := e.Decode(&raw); err != nil {
			t.Errorf("%d: %v", i, err)
		}
	}
	_, ok := d.Block("terminal_pair")
	ut.AssertEqual(t, true, ok)
}

func TestNewEntityUnencodable(t *testing.T) {
	t.Parallel()
	defer func() {
		r := recover()
		ut.AssertEqual(t, true, r != nil)
		ut.AssertEqual(t, true, strings.Contains(r.(string), "LINE"))
	}()
	NewEntity(KindLine, Line{P2: Point{X: math.NaN()}})
	t.Fatal("expected panic")
}
