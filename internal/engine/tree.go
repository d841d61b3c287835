package engine

import (
	"iter"

	"github.com/jbeda/geom"

	"github.com/qelectrotech/dxf2elmt-vadoola/internal/shape"
)

// Tree is the converted drawing: the top-level shapes in entity order.
// Groups inside it own their children exclusively.
type Tree struct {
	Shapes []shape.Shape
}

// Add appends a top-level shape.
func (t *Tree) Add(s shape.Shape) {
	t.Shapes = append(t.Shapes, s)
}

// Scale applies a uniform factor to every shape of the tree.
func (t *Tree) Scale(f float64) {
	t.root().Scale(f, f)
}

// Bounds returns the extent of the whole tree. An empty tree has zero bounds.
func (t *Tree) Bounds() geom.Rect {
	return shape.Bounds(t.root())
}

// All yields every primitive depth-first with groups expanded inline.
func (t *Tree) All() iter.Seq[shape.Shape] {
	return shape.All(t.root())
}

// Len returns the number of primitives in the tree.
func (t *Tree) Len() int {
	n := 0
	for range t.All() {
		n++
	}
	return n
}

func (t *Tree) root() *shape.Group {
	return &shape.Group{Children: t.Shapes}
}
