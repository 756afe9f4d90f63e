// Package sketch holds the mechanism sketch: an append-only graph of nodes,
// beams and joint records, plus the snap index used to deduplicate nodes.
package sketch

import (
	"fmt"

	"github.com/philipparndt/gokin/pkg/geometry"
)

// DefaultSnapRadius is the distance below which a placement reuses a node
const DefaultSnapRadius = 12.0

type (
	NodeID        int
	BeamID        int
	PivotID       int
	SliderID      int
	GroundID      int
	CoincidenceID int
	FixationID    int
)

// Node is a point of the mechanism. Its position only changes while a beam
// is dragged.
type Node struct {
	ID  NodeID
	Pos geometry.ModelPoint
}

// Beam is a rigid segment. RestLength is measured once at creation and never
// recomputed from live positions.
type Beam struct {
	ID         BeamID
	Start      NodeID
	End        NodeID
	RestLength float64
}

// Other returns the endpoint opposite n
func (b Beam) Other(n NodeID) NodeID {
	if b.Start == n {
		return b.End
	}
	return b.Start
}

// Pivot marks a node shared by several beams. The adjacent beams are not
// stored; see Graph.PivotBeams.
type Pivot struct {
	ID   PivotID
	Node NodeID
}

// Slider lets Beams slide through a node
type Slider struct {
	ID    SliderID
	Node  NodeID
	Beams []BeamID
}

// ElementKind names what a ground record pins down
type ElementKind int

const (
	ElementBeam ElementKind = iota
	ElementSlider
	ElementPivot
	ElementSlidep
)

func (k ElementKind) String() string {
	switch k {
	case ElementBeam:
		return "beam"
	case ElementSlider:
		return "slider"
	case ElementPivot:
		return "pivot"
	case ElementSlidep:
		return "slidep"
	default:
		return fmt.Sprintf("ElementKind(%d)", int(k))
	}
}

// Ground fixes an element to the world at a node. Target indexes the
// collection selected by Kind.
type Ground struct {
	ID     GroundID
	Node   NodeID
	Kind   ElementKind
	Target int
}

// Coincidence keeps a node on a beam
type Coincidence struct {
	ID   CoincidenceID
	Node NodeID
	Beam BeamID
}

// Fixation welds two beams together
type Fixation struct {
	ID    FixationID
	BeamA BeamID
	BeamB BeamID
}
