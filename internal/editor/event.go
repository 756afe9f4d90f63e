package editor

import (
	"fmt"

	"github.com/philipparndt/gokin/pkg/geometry"
)

// Event is an input delivered by the host
type Event interface {
	event()
}

// Button identifies a pointer button. Only ButtonPrimary drives the editor.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	case ButtonMiddle:
		return "middle"
	default:
		return fmt.Sprintf("Button(%d)", int(b))
	}
}

// Key identifies a keyboard key. Only KeyEscape drives the editor.
type Key int

const (
	KeyOther Key = iota
	KeyEscape
)

// Modifiers are the modifier keys held during a key press
type Modifiers struct {
	Ctrl  bool
	Alt   bool
	Shift bool
	Meta  bool
}

// Any reports whether at least one modifier is held
func (m Modifiers) Any() bool {
	return m.Ctrl || m.Alt || m.Shift || m.Meta
}

// ToolSelected is a toolbar click
type ToolSelected struct {
	Tool Tool
}

// PointerMove carries the cursor position in screen space
type PointerMove struct {
	Pos geometry.ScreenPoint
}

// PointerDown is a button press
type PointerDown struct {
	Pos    geometry.ScreenPoint
	Button Button
}

// PointerUp is a button release
type PointerUp struct {
	Pos    geometry.ScreenPoint
	Button Button
}

// KeyDown is a key press
type KeyDown struct {
	Key  Key
	Mods Modifiers
}

func (ToolSelected) event() {}
func (PointerMove) event()  {}
func (PointerDown) event()  {}
func (PointerUp) event()    {}
func (KeyDown) event()      {}
