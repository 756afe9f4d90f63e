package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gokin/internal/scene"
	"github.com/philipparndt/gokin/pkg/geometry"
)

// drawScene draws the projected sketch back to front, projecting again
// only after the editor has notified a change
func (app *App) drawScene() {
	vp := app.Editor.Viewport()
	if app.UI.dirty {
		app.UI.scene = scene.Project(app.Editor.Graph(), app.Editor.Preview(), app.Style)
		app.UI.dirty = false
	}

	for _, shape := range app.UI.scene.Shapes {
		paint := shape.Style()
		fill := app.color(paint.Fill, paint.Opacity)
		stroke := app.color(paint.Stroke, paint.Opacity)
		sw := float32(vp.ScaleToScreen(paint.StrokeWidth))

		switch sh := shape.(type) {
		case scene.Bar:
			drawBar(vp, sh, fill, stroke, sw)
		case scene.Circle:
			c := vec2(vp.ToScreen(sh.Center))
			r := float32(vp.ScaleToScreen(sh.Radius))
			rl.DrawCircleV(c, r+sw/2, stroke)
			rl.DrawCircleV(c, r-sw/2, fill)
		case scene.Box:
			drawBox(vp, sh, fill, stroke, sw)
		case scene.Polygon:
			drawPolygon(vp, sh, fill, stroke, sw)
		}
	}
}

func drawBar(vp geometry.Viewport, b scene.Bar, fill, stroke rl.Color, sw float32) {
	o := vec2(vp.ToScreen(b.Rect.Origin))
	length := float32(vp.ScaleToScreen(b.Rect.Length))
	width := float32(vp.ScaleToScreen(b.Rect.Width))

	rl.DrawRectanglePro(
		rl.Rectangle{X: o.X, Y: o.Y, Width: length, Height: width},
		rl.Vector2{X: 0, Y: width / 2},
		float32(b.Rect.Degrees()),
		fill,
	)

	corners := b.Rect.Corners()
	for i := range corners {
		a := vec2(vp.ToScreen(corners[i]))
		c := vec2(vp.ToScreen(corners[(i+1)%len(corners)]))
		rl.DrawLineEx(a, c, sw, stroke)
	}
}

func drawBox(vp geometry.Viewport, b scene.Box, fill, stroke rl.Color, sw float32) {
	c := vec2(vp.ToScreen(b.Center))
	w := float32(vp.ScaleToScreen(b.Width))
	h := float32(vp.ScaleToScreen(b.Height))
	corner := float32(vp.ScaleToScreen(b.Corner))

	outer := rl.Rectangle{X: c.X - w/2 - sw/2, Y: c.Y - h/2 - sw/2, Width: w + sw, Height: h + sw}
	inner := rl.Rectangle{X: c.X - w/2 + sw/2, Y: c.Y - h/2 + sw/2, Width: w - sw, Height: h - sw}
	rl.DrawRectangleRounded(outer, roundness(corner, outer), 6, stroke)
	rl.DrawRectangleRounded(inner, roundness(corner, inner), 6, fill)
}

// raylib expresses corner radius relative to the shorter side
func roundness(radius float32, r rl.Rectangle) float32 {
	short := min(r.Width, r.Height)
	if short <= 0 {
		return 0
	}
	return min(1, 2*radius/short)
}

func drawPolygon(vp geometry.Viewport, p scene.Polygon, fill, stroke rl.Color, sw float32) {
	pts := make([]rl.Vector2, len(p.Points))
	for i, pt := range p.Points {
		pts[i] = vec2(vp.ToScreen(pt))
	}

	// Fan triangulation; raylib culls clockwise triangles
	for i := 1; i+1 < len(pts); i++ {
		a, b, c := pts[0], pts[i], pts[i+1]
		if (b.X-a.X)*(c.Y-a.Y)-(b.Y-a.Y)*(c.X-a.X) > 0 {
			b, c = c, b
		}
		rl.DrawTriangle(a, b, c, fill)
	}
	for i := range pts {
		rl.DrawLineEx(pts[i], pts[(i+1)%len(pts)], sw, stroke)
	}
}

// color converts and caches a hex color. Invalid colors draw magenta.
func (app *App) color(hex string, opacity float64) rl.Color {
	key := colorKey{hex: hex, opacity: opacity}
	if c, ok := app.UI.colors[key]; ok {
		return c
	}
	c := rl.Magenta
	if nrgba, err := scene.ParseHexColor(hex, opacity); err == nil {
		c = rl.NewColor(nrgba.R, nrgba.G, nrgba.B, nrgba.A)
	}
	app.UI.colors[key] = c
	return c
}
