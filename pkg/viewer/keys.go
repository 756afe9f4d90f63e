package viewer

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/philipparndt/gokin/internal/editor"
)

// CanvasKeys delivers a window canvas's typed keys to an editor. Only one
// handler is installed at a time; unsubscribing removes it from the canvas.
type CanvasKeys struct {
	Canvas fyne.Canvas
	// Modifiers reports the modifier keys held during a press. Defaults to
	// asking the desktop driver.
	Modifiers func() fyne.KeyModifier
}

// SubscribeKeys implements editor.KeySource
func (k CanvasKeys) SubscribeKeys(handler func(editor.KeyDown)) func() {
	mods := k.Modifiers
	if mods == nil {
		mods = driverModifiers
	}

	k.Canvas.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		handler(editor.KeyDown{Key: key(ev.Name), Mods: modifiers(mods())})
	})
	return func() { k.Canvas.SetOnTypedKey(nil) }
}

func key(name fyne.KeyName) editor.Key {
	if name == fyne.KeyEscape {
		return editor.KeyEscape
	}
	return editor.KeyOther
}

func modifiers(m fyne.KeyModifier) editor.Modifiers {
	return editor.Modifiers{
		Ctrl:  m&fyne.KeyModifierControl != 0,
		Alt:   m&fyne.KeyModifierAlt != 0,
		Shift: m&fyne.KeyModifierShift != 0,
		Meta:  m&fyne.KeyModifierSuper != 0,
	}
}

func driverModifiers() fyne.KeyModifier {
	app := fyne.CurrentApp()
	if app == nil {
		return 0
	}
	if d, ok := app.Driver().(desktop.Driver); ok {
		return d.CurrentKeyModifiers()
	}
	return 0
}
