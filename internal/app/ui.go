package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gokin/internal/editor"
	"github.com/philipparndt/gokin/version"
)

const (
	toolbarHeight = 36
	buttonWidth   = 90
	buttonPadding = 6
	fontSize      = 16
)

type toolbarButton struct {
	label    string
	shortcut string
	bounds   rl.Rectangle
	tool     *editor.Tool // nil for actions
	action   func(*App)
}

func selectTool(t editor.Tool) func(*App) {
	return func(app *App) { app.Editor.SelectTool(t) }
}

// layoutToolbar creates the button row across the top of the window
func (app *App) layoutToolbar() {
	type entry struct {
		label, shortcut string
		tool            editor.Tool
		isTool          bool
		action          func(*App)
	}
	entries := []entry{
		{"Pivot", "P", editor.ToolPivot, true, selectTool(editor.ToolPivot)},
		{"Slider", "S", editor.ToolSlider, true, selectTool(editor.ToolSlider)},
		{"Ground", "G", editor.ToolGround, true, selectTool(editor.ToolGround)},
		{"Beam", "B", editor.ToolBeam, true, selectTool(editor.ToolBeam)},
		{"Clear all", "Del", 0, false, func(app *App) { app.Editor.Clear() }},
	}

	app.UI.buttons = app.UI.buttons[:0]
	x := float32(buttonPadding)
	for _, e := range entries {
		b := toolbarButton{
			label:    e.label,
			shortcut: e.shortcut,
			bounds:   rl.Rectangle{X: x, Y: buttonPadding, Width: buttonWidth, Height: toolbarHeight - 2*buttonPadding},
			action:   e.action,
		}
		if e.isTool {
			t := e.tool
			b.tool = &t
		}
		app.UI.buttons = append(app.UI.buttons, b)
		x += buttonWidth + buttonPadding
	}
}

func (app *App) toolbarButtonAt(pos rl.Vector2) (toolbarButton, bool) {
	for _, b := range app.UI.buttons {
		if rl.CheckCollisionPointRec(pos, b.bounds) {
			return b, true
		}
	}
	return toolbarButton{}, false
}

// activeTool maps the mode back to the toolbar entry it came from
func activeTool(m editor.Mode) (editor.Tool, bool) {
	switch m.(type) {
	case editor.PlacingPivot:
		return editor.ToolPivot, true
	case editor.PlacingSlider:
		return editor.ToolSlider, true
	case editor.PlacingGround:
		return editor.ToolGround, true
	case editor.PlacingBeamStart, editor.PlacingBeamEnd:
		return editor.ToolBeam, true
	}
	return 0, false
}

// drawUI draws the toolbar and the status lines
func (app *App) drawUI() {
	screenWidth := int32(rl.GetScreenWidth())
	screenHeight := int32(rl.GetScreenHeight())

	rl.DrawRectangle(0, 0, screenWidth, toolbarHeight, app.color(app.Style.Stroke, 1))

	active, hasActive := activeTool(app.Editor.Mode())
	mouse := rl.GetMousePosition()
	for _, b := range app.UI.buttons {
		bg := app.color(app.Style.Fill, 1)
		if b.tool != nil && hasActive && *b.tool == active {
			bg = app.color(app.Style.Accent, 1)
		} else if rl.CheckCollisionPointRec(mouse, b.bounds) {
			bg = app.color(app.Style.Background, 1)
		}
		rl.DrawRectangleRec(b.bounds, bg)

		text := fmt.Sprintf("%s (%s)", b.label, b.shortcut)
		tw := rl.MeasureText(text, fontSize-2)
		rl.DrawText(text, int32(b.bounds.X)+(int32(b.bounds.Width)-tw)/2, int32(b.bounds.Y)+5, fontSize-2, app.color(app.Style.Stroke, 1))
	}

	versionText := "gokin " + version.GetVersion()
	rl.DrawText(versionText, screenWidth-rl.MeasureText(versionText, fontSize-2)-10, 10, fontSize-2, rl.RayWhite)

	// Debug line
	y := screenHeight - 2*(fontSize+6)
	rl.DrawText(app.Editor.Debug(), 10, y, fontSize, app.color(app.Style.Stroke, 1))
	y += fontSize + 6

	help := "Esc: cancel  Middle drag: pan  Wheel: zoom  Home: reset view"
	if app.Script.lastError != "" {
		rl.DrawText("Script error: "+app.Script.lastError, 10, y, fontSize-2, rl.Red)
	} else {
		rl.DrawText(help, 10, y, fontSize-2, rl.DarkGray)
	}
}
