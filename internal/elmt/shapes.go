package elmt

import (
	"encoding/xml"
	"fmt"
	"math"
	"strconv"

	"github.com/qelectrotech/dxf2elmt-vadoola/internal/shape"
)

// num is written rounded to two decimals in its shortest form.
type num float64

func (n num) MarshalXMLAttr(name xml.Name) (xml.Attr, error) {
	return xml.Attr{Name: name, Value: formatNum(float64(n))}, nil
}

func formatNum(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	v = math.Round(v*100) / 100
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type arcElement struct {
	XMLName   xml.Name `xml:"arc"`
	X         num      `xml:"x,attr"`
	Y         num      `xml:"y,attr"`
	Width     num      `xml:"width,attr"`
	Height    num      `xml:"height,attr"`
	Start     num      `xml:"start,attr"`
	Angle     num      `xml:"angle,attr"`
	Antialias bool     `xml:"antialias,attr"`
	Style     string   `xml:"style,attr"`
}

type ellipseElement struct {
	XMLName   xml.Name `xml:"ellipse"`
	X         num      `xml:"x,attr"`
	Y         num      `xml:"y,attr"`
	Width     num      `xml:"width,attr"`
	Height    num      `xml:"height,attr"`
	Antialias bool     `xml:"antialias,attr"`
	Style     string   `xml:"style,attr"`
}

type lineElement struct {
	XMLName   xml.Name `xml:"line"`
	X1        num      `xml:"x1,attr"`
	Y1        num      `xml:"y1,attr"`
	Length1   num      `xml:"length1,attr"`
	End1      string   `xml:"end1,attr"`
	X2        num      `xml:"x2,attr"`
	Y2        num      `xml:"y2,attr"`
	Length2   num      `xml:"length2,attr"`
	End2      string   `xml:"end2,attr"`
	Antialias bool     `xml:"antialias,attr"`
	Style     string   `xml:"style,attr"`
}

type rectElement struct {
	XMLName   xml.Name `xml:"rect"`
	X         num      `xml:"x,attr"`
	Y         num      `xml:"y,attr"`
	RX        num      `xml:"rx,attr"`
	RY        num      `xml:"ry,attr"`
	Width     num      `xml:"width,attr"`
	Height    num      `xml:"height,attr"`
	Antialias bool     `xml:"antialias,attr"`
	Style     string   `xml:"style,attr"`
}

type textElement struct {
	XMLName  xml.Name `xml:"text"`
	X        num      `xml:"x,attr"`
	Y        num      `xml:"y,attr"`
	Rotation num      `xml:"rotation,attr"`
	Color    string   `xml:"color,attr"`
	Font     string   `xml:"font,attr"`
	Text     string   `xml:"text,attr"`
}

type dynamicTextElement struct {
	XMLName            xml.Name `xml:"dynamic_text"`
	X                  num      `xml:"x,attr"`
	Y                  num      `xml:"y,attr"`
	Z                  num      `xml:"z,attr"`
	Rotation           num      `xml:"rotation,attr"`
	UUID               string   `xml:"uuid,attr"`
	Font               string   `xml:"font,attr"`
	HAlign             string   `xml:"Halignment,attr"`
	VAlign             string   `xml:"Valignment,attr"`
	TextFrom           string   `xml:"text_from,attr"`
	Frame              bool     `xml:"frame,attr"`
	TextWidth          int      `xml:"text_width,attr"`
	KeepVisualRotation bool     `xml:"keep_visual_rotation,attr,omitempty"`
	Text               string   `xml:"text"`
	InfoName           string   `xml:"info_name,omitempty"`
	Color              string   `xml:"color"`
}

// polygonElement numbers its vertex attributes, so it is encoded by hand.
type polygonElement struct {
	p *shape.Polygon
}

func (el polygonElement) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start = xml.StartElement{Name: xml.Name{Local: "polygon"}}
	for i, c := range el.p.Points {
		start.Attr = append(start.Attr,
			attr(fmt.Sprintf("x%d", i+1), formatNum(c.X)),
			attr(fmt.Sprintf("y%d", i+1), formatNum(c.Y)),
		)
	}
	if !el.p.Closed {
		start.Attr = append(start.Attr, attr("closed", "false"))
	}
	start.Attr = append(start.Attr,
		attr("antialias", strconv.FormatBool(el.p.Style.Antialias)),
		attr("style", el.p.Style.String()),
	)
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	return e.EncodeToken(start.End())
}

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

// element maps a primitive to its XML form.
func element(s shape.Shape) (any, error) {
	switch s := s.(type) {
	case *shape.Arc:
		return arcElement{
			X: num(s.X), Y: num(s.Y),
			Width: num(s.Width), Height: num(s.Height),
			Start: num(s.Start), Angle: num(s.Angle),
			Antialias: s.Style.Antialias,
			Style:     s.Style.String(),
		}, nil
	case *shape.Ellipse:
		return ellipseElement{
			X: num(s.X), Y: num(s.Y),
			Width: num(s.Width), Height: num(s.Height),
			Antialias: s.Style.Antialias,
			Style:     s.Style.String(),
		}, nil
	case *shape.Line:
		return lineElement{
			X1: num(s.X1), Y1: num(s.Y1),
			Length1: num(s.Length1), End1: string(s.End1),
			X2: num(s.X2), Y2: num(s.Y2),
			Length2: num(s.Length2), End2: string(s.End2),
			Antialias: s.Style.Antialias,
			Style:     s.Style.String(),
		}, nil
	case *shape.Rectangle:
		return rectElement{
			X: num(s.X), Y: num(s.Y),
			RX: num(s.RX), RY: num(s.RY),
			Width: num(s.Width), Height: num(s.Height),
			Antialias: s.Style.Antialias,
			Style:     s.Style.String(),
		}, nil
	case *shape.Polygon:
		return polygonElement{p: s}, nil
	case *shape.Text:
		return textElement{
			X: num(s.X), Y: num(s.Y),
			Rotation: num(s.Rotation),
			Color:    s.Color.Hex(),
			Font:     s.Font.String(),
			Text:     s.Value,
		}, nil
	case *shape.DynamicText:
		return dynamicTextElement{
			X: num(s.X), Y: num(s.Y), Z: num(s.Z),
			Rotation:           num(s.Rotation),
			UUID:               braced(s.UUID),
			Font:               s.Font.String(),
			HAlign:             string(s.HAlign),
			VAlign:             string(s.VAlign),
			TextFrom:           s.TextFrom,
			Frame:              s.Frame,
			TextWidth:          s.TextWidth,
			KeepVisualRotation: s.KeepVisualRotation,
			Text:               s.Value,
			InfoName:           s.InfoName,
			Color:              s.Color.Hex(),
		}, nil
	default:
		return nil, fmt.Errorf("elmt: no element for %T", s)
	}
}
