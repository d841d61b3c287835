package shape

// Group owns an ordered list of shapes. It is produced for expanded block
// instances and for entities drawn with several primitives.
type Group struct {
	ID       string
	Name     string
	Children []Shape
}

// Add appends s to the group.
func (g *Group) Add(s Shape) *Group {
	g.Children = append(g.Children, s)
	return g
}

// Empty reports whether the group holds no primitive at any depth.
func (g *Group) Empty() bool {
	for range All(g) {
		return false
	}
	return true
}

// bounded returns the children that contribute to the group extent; empty
// subgroups are left out.
func (g *Group) bounded() []Shape {
	out := make([]Shape, 0, len(g.Children))
	for _, c := range g.Children {
		if sub, ok := c.(*Group); ok && sub.Empty() {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (g *Group) Scale(fx, fy float64) {
	for _, c := range g.Children {
		c.Scale(fx, fy)
	}
}

func (g *Group) LeftBound() float64 {
	e := extreme{}
	for _, c := range g.bounded() {
		e.add(c.LeftBound())
	}
	return e.value()
}

func (g *Group) RightBound() float64 {
	e := extreme{max: true}
	for _, c := range g.bounded() {
		e.add(c.RightBound())
	}
	return e.value()
}

func (g *Group) TopBound() float64 {
	e := extreme{}
	for _, c := range g.bounded() {
		e.add(c.TopBound())
	}
	return e.value()
}

func (g *Group) BotBound() float64 {
	e := extreme{max: true}
	for _, c := range g.bounded() {
		e.add(c.BotBound())
	}
	return e.value()
}
