package engine

import (
	"errors"
	"fmt"

	"github.com/qelectrotech/dxf2elmt-vadoola/internal/drawing"
)

var (
	ErrUnsupportedEntity  = errors.New("unsupported entity")
	ErrMalformedEntity    = errors.New("malformed entity")
	ErrDegenerateGeometry = errors.New("degenerate geometry")
	ErrMissingBlock       = errors.New("missing block")
	ErrRecursionLimit     = errors.New("block recursion limit exceeded")
)

// EntityError records which entity failed to convert.
type EntityError struct {
	Kind   drawing.EntityKind
	Handle string
	Err    error
}

func (e *EntityError) Error() string {
	if e.Handle == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Handle, e.Err)
}

func (e *EntityError) Unwrap() error { return e.Err }

// Reason buckets conversion failures for reporting.
type Reason string

const (
	ReasonUnsupported    Reason = "unsupported"
	ReasonMalformed      Reason = "malformed"
	ReasonDegenerate     Reason = "degenerate"
	ReasonMissingBlock   Reason = "missing_block"
	ReasonRecursionLimit Reason = "recursion_limit"
	ReasonOther          Reason = "other"
)

// ReasonOf maps an error returned by the builder to its bucket. A recursion
// failure wins over the other reasons since it aborts a whole instance.
func ReasonOf(err error) Reason {
	switch {
	case errors.Is(err, ErrRecursionLimit):
		return ReasonRecursionLimit
	case errors.Is(err, ErrMissingBlock):
		return ReasonMissingBlock
	case errors.Is(err, ErrUnsupportedEntity):
		return ReasonUnsupported
	case errors.Is(err, ErrDegenerateGeometry):
		return ReasonDegenerate
	case errors.Is(err, ErrMalformedEntity):
		return ReasonMalformed
	default:
		return ReasonOther
	}
}
