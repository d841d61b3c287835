package shape

import "math"

// Arc is a circular or elliptic arc inscribed in its bounding box. Start and
// Angle are in degrees.
type Arc struct {
	X, Y          float64
	Width, Height float64
	Start, Angle  float64
	Style         Style
}

func (a *Arc) Scale(fx, fy float64) {
	a.X *= fx
	a.Y *= fy
	a.Width *= fx
	a.Height *= fy
}

func (a *Arc) LeftBound() float64  { return a.X }
func (a *Arc) RightBound() float64 { return a.X + a.Width }
func (a *Arc) TopBound() float64   { return a.Y }
func (a *Arc) BotBound() float64   { return a.Y + a.Height }

// Ellipse is described by its axis-aligned bounding box.
type Ellipse struct {
	X, Y          float64
	Width, Height float64
	Style         Style
}

func (e *Ellipse) Scale(fx, fy float64) {
	e.X *= fx
	e.Y *= fy
	e.Width *= fx
	e.Height *= fy
}

func (e *Ellipse) LeftBound() float64  { return e.X }
func (e *Ellipse) RightBound() float64 { return e.X + e.Width }
func (e *Ellipse) TopBound() float64   { return e.Y }
func (e *Ellipse) BotBound() float64   { return e.Y + e.Height }

// Rectangle is axis-aligned. RX and RY are corner radii.
type Rectangle struct {
	X, Y          float64
	Width, Height float64
	RX, RY        float64
	Style         Style
}

func (r *Rectangle) Scale(fx, fy float64) {
	r.X *= fx
	r.Y *= fy
	r.Width *= fx
	r.Height *= fy
	r.RX *= fx
	r.RY *= fy
}

func (r *Rectangle) LeftBound() float64  { return r.X }
func (r *Rectangle) RightBound() float64 { return r.X + r.Width }
func (r *Rectangle) TopBound() float64   { return r.Y }
func (r *Rectangle) BotBound() float64   { return r.Y + r.Height }

// LineEnd decorates a line extremity.
type LineEnd string

const (
	EndNone          LineEnd = "none"
	EndSimpleArrow   LineEnd = "simple"
	EndTriangleArrow LineEnd = "triangle"
	EndCircle        LineEnd = "circle"
	EndDiamond       LineEnd = "diamond"
)

// DefaultEndLength is the length of a line end decoration.
const DefaultEndLength = 1.5

type Line struct {
	X1, Y1     float64
	X2, Y2     float64
	Length1    float64
	Length2    float64
	End1, End2 LineEnd
	Style      Style
}

// NewLine returns an undecorated line between two output points.
func NewLine(x1, y1, x2, y2 float64, style Style) *Line {
	return &Line{
		X1: x1, Y1: y1,
		X2: x2, Y2: y2,
		Length1: DefaultEndLength,
		Length2: DefaultEndLength,
		End1:    EndNone,
		End2:    EndNone,
		Style:   style,
	}
}

func (l *Line) Scale(fx, fy float64) {
	l.X1 *= fx
	l.Y1 *= fy
	l.X2 *= fx
	l.Y2 *= fy
}

func (l *Line) LeftBound() float64  { return math.Min(l.X1, l.X2) }
func (l *Line) RightBound() float64 { return math.Max(l.X1, l.X2) }
func (l *Line) TopBound() float64   { return math.Min(l.Y1, l.Y2) }
func (l *Line) BotBound() float64   { return math.Max(l.Y1, l.Y2) }
