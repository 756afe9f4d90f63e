// Package viewer provides a fyne widget that shows and edits a sketch
// through an editor.Editor.
package viewer

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gokin/internal/editor"
	"github.com/philipparndt/gokin/internal/scene"
	"github.com/philipparndt/gokin/pkg/geometry"
)

const zoomStep = 1.1

// SketchView draws the editor's scene and forwards pointer input to it
type SketchView struct {
	widget.BaseWidget
	editor  *editor.Editor
	style   scene.Style
	cancel  func()
	panning *fyne.Position // last position of a middle-button pan
}

var (
	_ desktop.Mouseable   = (*SketchView)(nil)
	_ desktop.Hoverable   = (*SketchView)(nil)
	_ fyne.Draggable      = (*SketchView)(nil)
	_ fyne.Scrollable     = (*SketchView)(nil)
	_ fyne.WidgetRenderer = (*sketchRenderer)(nil)
)

// NewSketchView creates the widget; it refreshes whenever the editor
// notifies
func NewSketchView(ed *editor.Editor, style scene.Style) *SketchView {
	v := &SketchView{editor: ed, style: style}
	v.ExtendBaseWidget(v)
	v.cancel = ed.Subscribe(v.Refresh)
	return v
}

// Close stops listening to the editor
func (v *SketchView) Close() {
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
}

// CreateRenderer creates the renderer for the widget
func (v *SketchView) CreateRenderer() fyne.WidgetRenderer {
	r := &sketchRenderer{view: v, background: canvas.NewRectangle(v.color(v.style.Background, 1))}
	r.Refresh()
	return r
}

func screenPoint(p fyne.Position) geometry.ScreenPoint {
	return geometry.Pt[geometry.Screen](float64(p.X), float64(p.Y))
}

func button(b desktop.MouseButton) editor.Button {
	switch b {
	case desktop.MouseButtonSecondary:
		return editor.ButtonSecondary
	case desktop.MouseButtonTertiary:
		return editor.ButtonMiddle
	default:
		return editor.ButtonPrimary
	}
}

// MouseDown implements desktop.Mouseable
func (v *SketchView) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button == desktop.MouseButtonTertiary {
		pos := ev.Position
		v.panning = &pos
	}
	v.editor.Handle(editor.PointerDown{Pos: screenPoint(ev.Position), Button: button(ev.Button)})
}

// MouseUp implements desktop.Mouseable
func (v *SketchView) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button == desktop.MouseButtonTertiary {
		v.panning = nil
	}
	v.editor.Handle(editor.PointerUp{Pos: screenPoint(ev.Position), Button: button(ev.Button)})
}

// MouseIn implements desktop.Hoverable
func (v *SketchView) MouseIn(ev *desktop.MouseEvent) {
	v.editor.Handle(editor.PointerMove{Pos: screenPoint(ev.Position)})
}

// MouseMoved implements desktop.Hoverable
func (v *SketchView) MouseMoved(ev *desktop.MouseEvent) {
	v.pointerMoved(ev.Position)
}

// MouseOut implements desktop.Hoverable
func (v *SketchView) MouseOut() {}

// Dragged keeps the cursor moving while a button is held
func (v *SketchView) Dragged(ev *fyne.DragEvent) {
	v.pointerMoved(ev.Position)
}

// DragEnd implements fyne.Draggable
func (v *SketchView) DragEnd() {}

func (v *SketchView) pointerMoved(pos fyne.Position) {
	if v.panning != nil {
		delta := geometry.Vec[geometry.Screen](float64(pos.X-v.panning.X), float64(pos.Y-v.panning.Y))
		v.panning = &pos
		v.editor.SetViewport(v.editor.Viewport().Pan(delta))
		return
	}
	v.editor.Handle(editor.PointerMove{Pos: screenPoint(pos)})
}

// Scrolled zooms around the pointer
func (v *SketchView) Scrolled(ev *fyne.ScrollEvent) {
	notches := float64(ev.Scrolled.DY) / 10
	vp := v.editor.Viewport().ZoomAt(screenPoint(ev.Position), math.Pow(zoomStep, notches))
	v.editor.SetViewport(vp)
}

func (v *SketchView) color(hex string, opacity float64) color.Color {
	c, err := scene.ParseHexColor(hex, opacity)
	if err != nil {
		return color.NRGBA{R: 255, B: 255, A: 255}
	}
	return c
}

// sketchRenderer implements fyne.WidgetRenderer
type sketchRenderer struct {
	view       *SketchView
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func (r *sketchRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *sketchRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

// Refresh rebuilds the canvas objects from the projected scene
func (r *sketchRenderer) Refresh() {
	v := r.view
	vp := v.editor.Viewport()
	s := scene.Project(v.editor.Graph(), v.editor.Preview(), v.style)

	r.objects = append(r.objects[:0], r.background)
	for _, shape := range s.Shapes {
		r.objects = append(r.objects, v.objects(shape, vp)...)
	}
	canvas.Refresh(v)
}

func (r *sketchRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *sketchRenderer) Destroy() {
	r.view.Close()
}

func pos(p geometry.ScreenPoint) fyne.Position {
	return fyne.NewPos(float32(p.X), float32(p.Y))
}

// objects converts one shape to fyne primitives. Bars become two stacked
// thick lines (outline, then fill); the ground triangle is outlined only.
func (v *SketchView) objects(shape scene.Shape, vp geometry.Viewport) []fyne.CanvasObject {
	paint := shape.Style()
	fill := v.color(paint.Fill, paint.Opacity)
	stroke := v.color(paint.Stroke, paint.Opacity)
	sw := float32(vp.ScaleToScreen(paint.StrokeWidth))

	switch sh := shape.(type) {
	case scene.Bar:
		a := pos(vp.ToScreen(sh.Rect.Origin))
		b := pos(vp.ToScreen(sh.Rect.End()))
		width := float32(vp.ScaleToScreen(sh.Rect.Width))

		outline := canvas.NewLine(stroke)
		outline.Position1, outline.Position2 = a, b
		outline.StrokeWidth = width + sw
		body := canvas.NewLine(fill)
		body.Position1, body.Position2 = a, b
		body.StrokeWidth = width - sw
		return []fyne.CanvasObject{outline, body}

	case scene.Circle:
		c := pos(vp.ToScreen(sh.Center))
		r := float32(vp.ScaleToScreen(sh.Radius))
		circle := canvas.NewCircle(fill)
		circle.StrokeColor = stroke
		circle.StrokeWidth = sw
		circle.Position1 = fyne.NewPos(c.X-r, c.Y-r)
		circle.Position2 = fyne.NewPos(c.X+r, c.Y+r)
		return []fyne.CanvasObject{circle}

	case scene.Box:
		c := pos(vp.ToScreen(sh.Center))
		w := float32(vp.ScaleToScreen(sh.Width))
		h := float32(vp.ScaleToScreen(sh.Height))
		rect := canvas.NewRectangle(fill)
		rect.StrokeColor = stroke
		rect.StrokeWidth = sw
		rect.CornerRadius = float32(vp.ScaleToScreen(sh.Corner))
		rect.Move(fyne.NewPos(c.X-w/2, c.Y-h/2))
		rect.Resize(fyne.NewSize(w, h))
		return []fyne.CanvasObject{rect}

	case scene.Polygon:
		objs := make([]fyne.CanvasObject, 0, len(sh.Points))
		for i := range sh.Points {
			line := canvas.NewLine(fill)
			line.Position1 = pos(vp.ToScreen(sh.Points[i]))
			line.Position2 = pos(vp.ToScreen(sh.Points[(i+1)%len(sh.Points)]))
			line.StrokeWidth = 2 * sw
			objs = append(objs, line)
		}
		return objs
	}
	return nil
}
