package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/qelectrotech/dxf2elmt-vadoola/internal/drawing"
	"github.com/qelectrotech/dxf2elmt-vadoola/internal/shape"
	"github.com/qelectrotech/dxf2elmt-vadoola/internal/typeid"
)

// expand resolves an insert against the block table and builds the block's
// entities into a group. stack holds the blocks already being expanded
// above this insert.
//
// Children that fail are dropped, except for recursion failures: those
// abort the whole top-level instance.
func (b *Builder) expand(e drawing.Entity, t Transform, stack []string) (shape.Shape, error) {
	var ins drawing.Insert
	if err := decode(e, &ins); err != nil {
		return nil, err
	}

	blk, ok := b.drawing.Block(ins.Name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingBlock, ins.Name)
	}
	if slices.Contains(stack, ins.Name) {
		cycle := append(slices.Clone(stack), ins.Name)
		return nil, fmt.Errorf("%w: cycle %s", ErrRecursionLimit, strings.Join(cycle, " -> "))
	}
	if len(stack) >= b.opts.MaxBlockDepth {
		return nil, fmt.Errorf("%w: depth %d at %q", ErrRecursionLimit, len(stack), ins.Name)
	}
	if ins.Rotation != 0 {
		slog.Debug("insert rotation ignored", "block", ins.Name, "handle", e.Handle, "rotation", ins.Rotation)
	}

	sx, sy := ins.Scales()
	child := t.Compose(ins.Location, blk.BasePoint, sx, sy)
	stack = append(slices.Clip(stack), ins.Name)

	g := &shape.Group{ID: typeid.NewGroupID(), Name: blk.Name}
	for _, ce := range blk.Entities {
		s, err := b.build(ce, child, stack)
		if err != nil {
			if errors.Is(err, ErrRecursionLimit) {
				return nil, err
			}
			slog.Debug("skip block entity", "block", blk.Name, "kind", ce.Kind, "handle", ce.Handle, "error", err)
			continue
		}
		g.Add(s)
	}
	return g, nil
}
