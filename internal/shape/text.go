package shape

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// Color is a 24-bit RGB value.
type Color uint32

// Hex formats the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xffffff)
}

// Font describes a text face by family and point size.
type Font struct {
	Family string
	Size   float64
}

// String renders the font in the descriptor format read by the symbol editor.
func (f Font) String() string {
	return fmt.Sprintf("%s,%d,-1,5,0,0,0,0,0,0,normal", f.Family, int(math.Ceil(f.Size)))
}

type HAlignment string

const (
	AlignLeft    HAlignment = "AlignLeft"
	AlignHCenter HAlignment = "AlignHCenter"
	AlignRight   HAlignment = "AlignRight"
)

type VAlignment string

const (
	AlignTop     VAlignment = "AlignTop"
	AlignVCenter VAlignment = "AlignVCenter"
	AlignBottom  VAlignment = "AlignBottom"
)

// Text is a static text label anchored at (X, Y).
type Text struct {
	X, Y     float64
	Rotation float64
	Color    Color
	Font     Font
	Value    string
}

func (t *Text) Scale(fx, fy float64) {
	t.X *= fx
	t.Y *= fy
	t.Font.Size *= math.Abs(fy)
}

func (t *Text) LeftBound() float64  { return t.X }
func (t *Text) RightBound() float64 { return t.X }
func (t *Text) TopBound() float64   { return t.Y }
func (t *Text) BotBound() float64   { return t.Y }

// DynamicText is an editable text field.
type DynamicText struct {
	X, Y, Z            float64
	Rotation           float64
	UUID               uuid.UUID
	Font               Font
	HAlign             HAlignment
	VAlign             VAlignment
	TextFrom           string
	Frame              bool
	TextWidth          int
	KeepVisualRotation bool
	InfoName           string
	Color              Color
	Value              string
}

// NewDynamicText returns a centered user text field with a fresh UUID.
func NewDynamicText(x, y, z float64, value string, font Font, color Color) *DynamicText {
	return &DynamicText{
		X: x, Y: y, Z: z,
		UUID:      uuid.New(),
		Font:      font,
		HAlign:    AlignHCenter,
		VAlign:    AlignVCenter,
		TextFrom:  "UserText",
		TextWidth: -1,
		Color:     color,
		Value:     value,
	}
}

func (t *DynamicText) Scale(fx, fy float64) {
	t.X *= fx
	t.Y *= fy
	t.Font.Size *= math.Abs(fy)
}

func (t *DynamicText) LeftBound() float64  { return t.X }
func (t *DynamicText) RightBound() float64 { return t.X }
func (t *DynamicText) TopBound() float64   { return t.Y }
func (t *DynamicText) BotBound() float64   { return t.Y }
