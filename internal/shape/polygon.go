package shape

import "github.com/jbeda/geom"

// Polygon is an open or closed sequence of vertices.
type Polygon struct {
	Points []geom.Coord
	Closed bool
	Style  Style
}

func (p *Polygon) Scale(fx, fy float64) {
	for i := range p.Points {
		p.Points[i].X *= fx
		p.Points[i].Y *= fy
	}
}

func (p *Polygon) LeftBound() float64 {
	e := extreme{}
	for _, pt := range p.Points {
		e.add(pt.X)
	}
	return e.value()
}

func (p *Polygon) RightBound() float64 {
	e := extreme{max: true}
	for _, pt := range p.Points {
		e.add(pt.X)
	}
	return e.value()
}

func (p *Polygon) TopBound() float64 {
	e := extreme{}
	for _, pt := range p.Points {
		e.add(pt.Y)
	}
	return e.value()
}

func (p *Polygon) BotBound() float64 {
	e := extreme{max: true}
	for _, pt := range p.Points {
		e.add(pt.Y)
	}
	return e.value()
}
