package editor

import "github.com/philipparndt/gokin/pkg/geometry"

// PreviewKind names the ghost shape shown while placing
type PreviewKind int

const (
	PreviewNone PreviewKind = iota
	PreviewPivot
	PreviewSlider
	PreviewGround
	PreviewBeamStart // handle at the (snapped) start point
	PreviewBeam      // segment From -> At
)

// Preview describes the uncommitted shape under the cursor. It is derived
// from the mode and cursor on demand and never stored in the graph.
type Preview struct {
	Kind PreviewKind
	At   geometry.ModelPoint
	From geometry.ModelPoint // PreviewBeam only
}

// Preview returns the current placement preview
func (e *Editor) Preview() Preview {
	switch m := e.mode.(type) {
	case PlacingPivot:
		return Preview{Kind: PreviewPivot, At: e.cursor}
	case PlacingSlider:
		return Preview{Kind: PreviewSlider, At: e.cursor}
	case PlacingGround:
		return Preview{Kind: PreviewGround, At: e.cursor}
	case PlacingBeamStart:
		return Preview{Kind: PreviewBeamStart, At: e.graph.Snap(e.cursor)}
	case PlacingBeamEnd:
		return Preview{Kind: PreviewBeam, From: m.Start, At: e.graph.Snap(e.cursor)}
	default:
		return Preview{}
	}
}
