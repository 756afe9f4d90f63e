package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gokin/pkg/geometry"
)

const zoomStep = 1.1

// resetView returns to the identity mapping
func (app *App) resetView() {
	app.Editor.SetViewport(geometry.NewViewport())
}

// doPan moves the view by a mouse delta in pixels
func (app *App) doPan(delta rl.Vector2) {
	vp := app.Editor.Viewport().Pan(geometry.Vec[geometry.Screen](float64(delta.X), float64(delta.Y)))
	app.Editor.SetViewport(vp)
}

// doZoom zooms by wheel notches around the mouse position
func (app *App) doZoom(wheel float32, at rl.Vector2) {
	factor := math.Pow(zoomStep, float64(wheel))
	vp := app.Editor.Viewport().ZoomAt(screenPoint(at), factor)
	app.Editor.SetViewport(vp)
}

func screenPoint(v rl.Vector2) geometry.ScreenPoint {
	return geometry.Pt[geometry.Screen](float64(v.X), float64(v.Y))
}

func vec2(p geometry.ScreenPoint) rl.Vector2 {
	return rl.Vector2{X: float32(p.X), Y: float32(p.Y)}
}
