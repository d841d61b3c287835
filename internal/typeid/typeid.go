// Package typeid mints the prefixed identifiers used for conversions,
// block groups and sample entity handles.
package typeid

import (
	"go.jetify.com/typeid/v2"
)

const (
	PrefixConversion = "conv"
	PrefixGroup      = "grp"
	PrefixEntity     = "ent"
)

func New(prefix string) string {
	id := typeid.MustGenerate(prefix)
	return id.String()
}

func NewConversionID() string { return New(PrefixConversion) }
func NewGroupID() string      { return New(PrefixGroup) }
func NewEntityHandle() string { return New(PrefixEntity) }
