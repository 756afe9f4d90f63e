package scene

import (
	"github.com/philipparndt/gokin/internal/editor"
	"github.com/philipparndt/gokin/pkg/geometry"
	"github.com/philipparndt/gokin/pkg/sketch"
	"github.com/samber/lo"
)

// Style holds colors and marker sizes in model units
type Style struct {
	Fill       string // beams, pivot centres
	Stroke     string // outlines
	Accent     string // joint bodies
	Background string // ghost centres, canvas
	Ground     string

	StrokeWidth  float64
	BeamWidth    float64
	PivotRadius  float64
	HandleSize   float64
	SliderWidth  float64
	SliderHeight float64
	GroundSize   float64
	GhostOpacity float64
}

// DefaultStyle is the blue/orange palette of the sketcher
func DefaultStyle() Style {
	return Style{
		Fill:         "#b7e2ff",
		Stroke:       "#001d59",
		Accent:       "#ffbe80",
		Background:   "#ffedc6",
		Ground:       "#db5000",
		StrokeWidth:  2,
		BeamWidth:    editor.DefaultBeamWidth,
		PivotRadius:  8,
		HandleSize:   8,
		SliderWidth:  26,
		SliderHeight: 14,
		GroundSize:   10,
		GhostOpacity: 0.6,
	}
}

func (s Style) paint(fill string) Paint {
	return Paint{Fill: fill, Stroke: s.Stroke, StrokeWidth: s.StrokeWidth, Opacity: 1}
}

func (s Style) ghost(fill string) Paint {
	p := s.paint(fill)
	p.Opacity = s.GhostOpacity
	return p
}

// Project builds the scene for a graph and the current preview: beams,
// then joints, then the preview on top.
func Project(g *sketch.Graph, preview editor.Preview, style Style) Scene {
	var shapes []Shape

	for _, b := range g.Beams() {
		start, end := g.Endpoints(b.ID)
		shapes = append(shapes, style.beam(start, end, style.paint(style.Fill)))
	}

	pivotNodes := lo.Map(g.Pivots(), func(p sketch.Pivot, _ int) sketch.NodeID { return p.Node })
	for _, n := range pivotNodes {
		shapes = append(shapes, style.pivot(g.Node(n).Pos, style.paint(style.Accent), style.paint(style.Fill))...)
	}
	for _, s := range g.Sliders() {
		shapes = append(shapes, style.slider(g.Node(s.Node).Pos, style.paint(style.Accent), style.paint(style.Fill))...)
	}
	for _, gr := range g.Grounds() {
		shapes = append(shapes, style.ground(g.Node(gr.Node).Pos, style.paint(style.Ground)))
	}

	shapes = append(shapes, style.preview(preview)...)
	return Scene{Shapes: shapes}
}

func (s Style) preview(p editor.Preview) []Shape {
	switch p.Kind {
	case editor.PreviewPivot:
		return s.pivot(p.At, s.ghost(s.Accent), s.ghost(s.Background))
	case editor.PreviewSlider:
		return s.slider(p.At, s.ghost(s.Accent), s.ghost(s.Background))
	case editor.PreviewGround:
		return []Shape{s.ground(p.At, s.ghost(s.Ground))}
	case editor.PreviewBeamStart:
		return []Shape{Box{
			Paint:  s.ghost(s.Fill),
			Center: p.At,
			Width:  s.HandleSize,
			Height: s.HandleSize,
		}}
	case editor.PreviewBeam:
		return []Shape{s.beam(p.From, p.At, s.ghost(s.Fill))}
	default:
		return nil
	}
}

func (s Style) beam(a, b geometry.ModelPoint, paint Paint) Shape {
	return Bar{Paint: paint, Rect: geometry.BeamRect(a, b, s.BeamWidth)}
}

// Concentric circles
func (s Style) pivot(at geometry.ModelPoint, outer, inner Paint) []Shape {
	return []Shape{
		Circle{Paint: outer, Center: at, Radius: s.PivotRadius},
		Circle{Paint: inner, Center: at, Radius: s.PivotRadius / 2},
	}
}

func (s Style) slider(at geometry.ModelPoint, outer, inner Paint) []Shape {
	return []Shape{
		Box{Paint: outer, Center: at, Width: s.SliderWidth, Height: s.SliderHeight, Corner: 2},
		Box{Paint: inner, Center: at, Width: s.SliderWidth * 8 / 13, Height: s.SliderHeight * 3 / 7, Corner: 1},
	}
}

// Triangle hanging below the node
func (s Style) ground(at geometry.ModelPoint, paint Paint) Shape {
	size := s.GroundSize
	return Polygon{Paint: paint, Points: []geometry.ModelPoint{
		at,
		at.Add(geometry.Vec[geometry.Model](size, size*1.5)),
		at.Add(geometry.Vec[geometry.Model](-size, size*1.5)),
	}}
}
