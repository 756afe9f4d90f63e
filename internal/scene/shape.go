// Package scene projects a sketch and its placement preview into a flat list
// of vector shapes that hosts draw (raylib, fyne) or export (SVG).
package scene

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/philipparndt/gokin/pkg/geometry"
)

// Paint is the fill and outline of a shape
type Paint struct {
	Fill        string // #rrggbb
	Stroke      string // #rrggbb
	StrokeWidth float64
	Opacity     float64 // 1 = opaque
}

// Shape is one drawable element
type Shape interface {
	shape()
	Style() Paint
}

// Bar is a rotated rectangle; beams are drawn as bars
type Bar struct {
	Paint
	Rect geometry.RotatedRect[geometry.Model]
}

// Circle is a filled, outlined circle
type Circle struct {
	Paint
	Center geometry.ModelPoint
	Radius float64
}

// Box is an axis-aligned rectangle centred on Center with rounded corners
type Box struct {
	Paint
	Center        geometry.ModelPoint
	Width, Height float64
	Corner        float64
}

// Polygon is a closed outline
type Polygon struct {
	Paint
	Points []geometry.ModelPoint
}

func (Bar) shape()     {}
func (Circle) shape()  {}
func (Box) shape()     {}
func (Polygon) shape() {}

func (s Bar) Style() Paint     { return s.Paint }
func (s Circle) Style() Paint  { return s.Paint }
func (s Box) Style() Paint     { return s.Paint }
func (s Polygon) Style() Paint { return s.Paint }

// Scene is an ordered list of shapes, back to front
type Scene struct {
	Shapes  []Shape
	Caption string
}

// ParseHexColor converts a #rrggbb string and an opacity in [0,1] into a color
func ParseHexColor(hex string, opacity float64) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return color.NRGBA{R: r, G: g, B: b, A: uint8(opacity*255 + 0.5)}, nil
}
