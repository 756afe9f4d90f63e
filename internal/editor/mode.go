package editor

import (
	"fmt"

	"github.com/philipparndt/gokin/pkg/geometry"
	"github.com/philipparndt/gokin/pkg/sketch"
)

// Mode is the editor's modal state
type Mode interface {
	fmt.Stringer
	mode()
}

// Idle waits for a tool selection or a press on a beam
type Idle struct{}

// PlacingPivot shows a ghost pivot under the cursor
type PlacingPivot struct{}

// PlacingSlider shows a ghost slider under the cursor
type PlacingSlider struct{}

// PlacingGround shows a ghost ground under the cursor
type PlacingGround struct{}

// PlacingBeamStart waits for the first endpoint of a beam
type PlacingBeamStart struct{}

// PlacingBeamEnd has captured the (possibly snapped) first endpoint
type PlacingBeamEnd struct {
	Start geometry.ModelPoint
}

// Moving drags a beam. Each endpoint follows the cursor at the offset it
// had when the drag started; the beam length is not preserved.
type Moving struct {
	Beam        sketch.BeamID
	StartOffset geometry.ModelVector
	EndOffset   geometry.ModelVector
}

func (Idle) mode()             {}
func (PlacingPivot) mode()     {}
func (PlacingSlider) mode()    {}
func (PlacingGround) mode()    {}
func (PlacingBeamStart) mode() {}
func (PlacingBeamEnd) mode()   {}
func (Moving) mode()           {}

func (Idle) String() string             { return "Idle" }
func (PlacingPivot) String() string     { return "PlacingPivot" }
func (PlacingSlider) String() string    { return "PlacingSlider" }
func (PlacingGround) String() string    { return "PlacingGround" }
func (PlacingBeamStart) String() string { return "PlacingBeamStart" }

func (m PlacingBeamEnd) String() string {
	return fmt.Sprintf("PlacingBeamEnd{start: %v}", m.Start)
}

func (m Moving) String() string {
	return fmt.Sprintf("Moving{beam: %d, start: %v, end: %v}", m.Beam, m.StartOffset, m.EndOffset)
}

// Tool is a toolbar entry
type Tool int

const (
	ToolPivot Tool = iota
	ToolSlider
	ToolGround
	ToolBeam
)

func (t Tool) String() string {
	switch t {
	case ToolPivot:
		return "pivot"
	case ToolSlider:
		return "slider"
	case ToolGround:
		return "ground"
	case ToolBeam:
		return "beam"
	default:
		return fmt.Sprintf("Tool(%d)", int(t))
	}
}

// ParseTool maps a toolbar name to a Tool
func ParseTool(name string) (Tool, error) {
	for _, t := range []Tool{ToolPivot, ToolSlider, ToolGround, ToolBeam} {
		if t.String() == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown tool %q", name)
}

func (t Tool) mode() Mode {
	switch t {
	case ToolPivot:
		return PlacingPivot{}
	case ToolSlider:
		return PlacingSlider{}
	case ToolGround:
		return PlacingGround{}
	case ToolBeam:
		return PlacingBeamStart{}
	default:
		return Idle{}
	}
}
