package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gokin/internal/editor"
)

// keyPoller adapts raylib's polled keyboard to editor.KeySource
type keyPoller struct {
	handlers map[int]func(editor.KeyDown)
	next     int
}

func newKeyPoller() *keyPoller {
	return &keyPoller{handlers: make(map[int]func(editor.KeyDown))}
}

func (k *keyPoller) SubscribeKeys(handler func(editor.KeyDown)) func() {
	id := k.next
	k.next++
	k.handlers[id] = handler
	return func() { delete(k.handlers, id) }
}

// poll forwards this frame's key presses to the subscribers
func (k *keyPoller) poll() {
	if !rl.IsKeyPressed(rl.KeyEscape) {
		return
	}
	ev := editor.KeyDown{Key: editor.KeyEscape, Mods: currentModifiers()}
	for _, h := range k.handlers {
		h(ev)
	}
}

func currentModifiers() editor.Modifiers {
	return editor.Modifiers{
		Ctrl:  rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl),
		Alt:   rl.IsKeyDown(rl.KeyLeftAlt) || rl.IsKeyDown(rl.KeyRightAlt),
		Shift: rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift),
		Meta:  rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper),
	}
}

// handleInput processes user input
func (app *App) handleInput() {
	mouse := rl.GetMousePosition()
	moved := mouse != app.Interaction.lastMousePos
	app.Interaction.lastMousePos = mouse
	mods := currentModifiers()

	// Tool shortcuts
	if !mods.Any() {
		switch {
		case rl.IsKeyPressed(rl.KeyP):
			app.Editor.SelectTool(editor.ToolPivot)
		case rl.IsKeyPressed(rl.KeyS):
			app.Editor.SelectTool(editor.ToolSlider)
		case rl.IsKeyPressed(rl.KeyG):
			app.Editor.SelectTool(editor.ToolGround)
		case rl.IsKeyPressed(rl.KeyB):
			app.Editor.SelectTool(editor.ToolBeam)
		case rl.IsKeyPressed(rl.KeyDelete):
			app.Editor.Clear()
		case rl.IsKeyPressed(rl.KeyHome):
			app.resetView()
		}
	}

	app.Keys.poll()

	// Panning with the middle mouse button
	if rl.IsMouseButtonPressed(rl.MouseMiddleButton) {
		app.Interaction.isPanning = true
	}
	if rl.IsMouseButtonReleased(rl.MouseMiddleButton) {
		app.Interaction.isPanning = false
	}
	if app.Interaction.isPanning {
		if delta := rl.GetMouseDelta(); delta.X != 0 || delta.Y != 0 {
			app.doPan(delta)
		}
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		app.doZoom(wheel, mouse)
	}

	// Toolbar clicks never reach the canvas
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		if button, ok := app.toolbarButtonAt(mouse); ok {
			app.Interaction.overToolbar = true
			button.action(app)
			return
		}
	}
	if app.Interaction.overToolbar {
		if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
			app.Interaction.overToolbar = false
		}
		return
	}

	pos := screenPoint(mouse)
	if moved {
		app.Editor.Handle(editor.PointerMove{Pos: pos})
	}
	for _, b := range []struct {
		rl     rl.MouseButton
		editor editor.Button
	}{
		{rl.MouseLeftButton, editor.ButtonPrimary},
		{rl.MouseRightButton, editor.ButtonSecondary},
	} {
		if rl.IsMouseButtonPressed(b.rl) {
			app.Editor.Handle(editor.PointerDown{Pos: pos, Button: b.editor})
		}
		if rl.IsMouseButtonReleased(b.rl) {
			app.Editor.Handle(editor.PointerUp{Pos: pos, Button: b.editor})
		}
	}
}
