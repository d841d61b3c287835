// Package elmt writes converted drawings as QElectroTech element
// definitions.
package elmt

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/qelectrotech/dxf2elmt-vadoola/internal/drawing"
	"github.com/qelectrotech/dxf2elmt-vadoola/internal/engine"
	"github.com/qelectrotech/dxf2elmt-vadoola/internal/shape"
)

const (
	Version      = "0.80"
	Informations = "Created using dxf2elmt!"
)

type Definition struct {
	XMLName      xml.Name    `xml:"definition"`
	Type         string      `xml:"type,attr"`
	Width        int         `xml:"width,attr"`
	Height       int         `xml:"height,attr"`
	HotspotX     int         `xml:"hotspot_x,attr"`
	HotspotY     int         `xml:"hotspot_y,attr"`
	Version      string      `xml:"version,attr"`
	LinkType     string      `xml:"link_type,attr"`
	UUID         ElementUUID `xml:"uuid"`
	Names        []Name      `xml:"names>name"`
	Informations string      `xml:"informations"`
	Description  Description `xml:"description"`
}

type ElementUUID struct {
	Value string `xml:"uuid,attr"`
}

type Name struct {
	Lang  string `xml:"lang,attr"`
	Value string `xml:",chardata"`
}

// Description holds the primitives of the element in drawing order.
type Description struct {
	Shapes []shape.Shape
}

// NewDefinition wraps a conversion result. An empty name falls back to the
// drawing name.
func NewDefinition(name string, res *engine.Result) *Definition {
	if name == "" {
		name = res.Name
	}
	d := &Definition{
		Type:         "element",
		Width:        res.Canvas.Width,
		Height:       res.Canvas.Height,
		HotspotX:     res.Canvas.HotspotX,
		HotspotY:     res.Canvas.HotspotY,
		Version:      Version,
		LinkType:     "simple",
		UUID:         ElementUUID{Value: braced(uuid.New())},
		Names:        []Name{{Lang: "en", Value: name}},
		Informations: Informations,
	}
	for s := range res.Tree.All() {
		d.Description.Shapes = append(d.Description.Shapes, s)
	}
	return d
}

// Write encodes def as an indented XML document.
func Write(w io.Writer, def *Definition) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(def); err != nil {
		return fmt.Errorf("encode definition: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Convert converts d with opts and writes the resulting element to w.
func Convert(w io.Writer, d *drawing.Drawing, name string, opts engine.Options) (*engine.Result, error) {
	res, err := engine.Convert(d, opts)
	if err != nil {
		return nil, err
	}
	if err := Write(w, NewDefinition(name, res)); err != nil {
		return nil, err
	}
	return res, nil
}

func (d Description) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, s := range d.Shapes {
		el, err := element(s)
		if err != nil {
			return err
		}
		if err := e.Encode(el); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

func braced(id uuid.UUID) string {
	return "{" + id.String() + "}"
}
