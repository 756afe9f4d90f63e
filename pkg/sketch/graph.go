package sketch

import (
	"fmt"
	"slices"

	"github.com/philipparndt/gokin/pkg/geometry"
	"github.com/samber/lo"
)

// Graph owns every record of a sketch. Collections are append-only: ids are
// indices and stay valid for the lifetime of the graph (until Clear).
//
// Passing an id the graph did not hand out is a programming error and
// panics; user input can never produce one.
type Graph struct {
	nodes        []Node
	beams        []Beam
	pivots       []Pivot
	sliders      []Slider
	grounds      []Ground
	coincidences []Coincidence
	fixations    []Fixation

	pivotAt map[NodeID]PivotID
	index   SnapIndex
}

// Option configures a Graph
type Option func(*Graph)

// WithSnapIndex replaces the default first-match index
func WithSnapIndex(index SnapIndex) Option {
	return func(g *Graph) {
		g.index = index
	}
}

// New creates an empty graph snapping with DefaultSnapRadius
func New(opts ...Option) *Graph {
	g := &Graph{
		pivotAt: make(map[NodeID]PivotID),
		index:   NewLinearIndex(DefaultSnapRadius),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SnapRadius returns the radius used for node reuse
func (g *Graph) SnapRadius() float64 {
	return g.index.Radius()
}

// Near returns the node a placement at pos would snap to
func (g *Graph) Near(pos geometry.ModelPoint) (NodeID, bool) {
	return g.index.FindNear(pos)
}

// Snap returns the position of the node near pos, or pos itself
func (g *Graph) Snap(pos geometry.ModelPoint) geometry.ModelPoint {
	if id, ok := g.Near(pos); ok {
		return g.nodes[id].Pos
	}
	return pos
}

// ResolveOrCreateNode returns the node a placement at pos lands on. A reused
// node becomes a pivot (once); otherwise a new node is appended at pos.
func (g *Graph) ResolveOrCreateNode(pos geometry.ModelPoint) NodeID {
	if id, ok := g.index.FindNear(pos); ok {
		g.recordPivot(id)
		return id
	}
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, Node{ID: id, Pos: pos})
	g.index.Add(id, pos)
	return id
}

// Distinct reports whether placements at a and b would resolve to two
// different nodes, i.e. whether a beam from a to b can be committed.
func (g *Graph) Distinct(a, b geometry.ModelPoint) bool {
	idA, okA := g.Near(a)
	idB, okB := g.Near(b)
	if okA && okB {
		return idA != idB
	}
	// A node created at a would capture b
	return a.Distance(b) >= g.index.Radius()
}

func (g *Graph) recordPivot(node NodeID) {
	if _, ok := g.pivotAt[node]; ok {
		return
	}
	id := PivotID(len(g.pivots))
	g.pivots = append(g.pivots, Pivot{ID: id, Node: node})
	g.pivotAt[node] = id
}

// AddBeam appends a beam between two distinct nodes. RestLength is the
// distance between their current positions.
func (g *Graph) AddBeam(start, end NodeID) BeamID {
	a := g.mustNode(start)
	b := g.mustNode(end)
	if start == end {
		panic(fmt.Sprintf("sketch: beam endpoints must differ (node %d)", start))
	}
	id := BeamID(len(g.beams))
	g.beams = append(g.beams, Beam{
		ID:         id,
		Start:      start,
		End:        end,
		RestLength: a.Pos.Distance(b.Pos),
	})
	return id
}

// MoveNode overwrites a node position
func (g *Graph) MoveNode(id NodeID, pos geometry.ModelPoint) {
	g.mustNode(id)
	g.nodes[id].Pos = pos
	g.index.Move(id, pos)
}

// AddSlider records a slider at node guiding beams
func (g *Graph) AddSlider(node NodeID, beams ...BeamID) SliderID {
	g.mustNode(node)
	for _, b := range beams {
		g.mustBeam(b)
	}
	id := SliderID(len(g.sliders))
	g.sliders = append(g.sliders, Slider{ID: id, Node: node, Beams: slices.Clone(beams)})
	return id
}

// AddGround records a ground for the element kind/target at node
func (g *Graph) AddGround(node NodeID, kind ElementKind, target int) GroundID {
	g.mustNode(node)
	switch kind {
	case ElementBeam:
		g.mustBeam(BeamID(target))
	case ElementSlider:
		if target < 0 || target >= len(g.sliders) {
			panic(fmt.Sprintf("sketch: slider %d out of range (have %d)", target, len(g.sliders)))
		}
	case ElementPivot:
		if target < 0 || target >= len(g.pivots) {
			panic(fmt.Sprintf("sketch: pivot %d out of range (have %d)", target, len(g.pivots)))
		}
	}
	id := GroundID(len(g.grounds))
	g.grounds = append(g.grounds, Ground{ID: id, Node: node, Kind: kind, Target: target})
	return id
}

// AddCoincidence records that node lies on beam
func (g *Graph) AddCoincidence(node NodeID, beam BeamID) CoincidenceID {
	g.mustNode(node)
	g.mustBeam(beam)
	id := CoincidenceID(len(g.coincidences))
	g.coincidences = append(g.coincidences, Coincidence{ID: id, Node: node, Beam: beam})
	return id
}

// AddFixation welds two beams
func (g *Graph) AddFixation(a, b BeamID) FixationID {
	g.mustBeam(a)
	g.mustBeam(b)
	id := FixationID(len(g.fixations))
	g.fixations = append(g.fixations, Fixation{ID: id, BeamA: a, BeamB: b})
	return id
}

// Clear drops every record and resets the snap index
func (g *Graph) Clear() {
	g.nodes = nil
	g.beams = nil
	g.pivots = nil
	g.sliders = nil
	g.grounds = nil
	g.coincidences = nil
	g.fixations = nil
	g.pivotAt = make(map[NodeID]PivotID)
	g.index.Reset()
}

// Node returns a node by id
func (g *Graph) Node(id NodeID) Node {
	return g.mustNode(id)
}

// Beam returns a beam by id
func (g *Graph) Beam(id BeamID) Beam {
	return g.mustBeam(id)
}

// Endpoints returns the current positions of a beam's nodes
func (g *Graph) Endpoints(id BeamID) (geometry.ModelPoint, geometry.ModelPoint) {
	b := g.mustBeam(id)
	return g.nodes[b.Start].Pos, g.nodes[b.End].Pos
}

// BeamsAt returns the beams incident to node, in creation order
func (g *Graph) BeamsAt(node NodeID) []BeamID {
	g.mustNode(node)
	return lo.FilterMap(g.beams, func(b Beam, _ int) (BeamID, bool) {
		return b.ID, b.Start == node || b.End == node
	})
}

// PivotBeams returns the beams currently meeting at a pivot. It is derived
// on every call, so beams attached after the pivot was recorded are included.
func (g *Graph) PivotBeams(id PivotID) []BeamID {
	if id < 0 || int(id) >= len(g.pivots) {
		panic(fmt.Sprintf("sketch: pivot %d out of range (have %d)", id, len(g.pivots)))
	}
	return g.BeamsAt(g.pivots[id].Node)
}

// PivotAt returns the pivot recorded for node, if any
func (g *Graph) PivotAt(node NodeID) (PivotID, bool) {
	id, ok := g.pivotAt[node]
	return id, ok
}

// BeamAt returns the topmost (most recently added) beam whose hit
// rectangle of the given width contains pos
func (g *Graph) BeamAt(pos geometry.ModelPoint, width float64) (BeamID, bool) {
	for i := len(g.beams) - 1; i >= 0; i-- {
		b := g.beams[i]
		rect := geometry.BeamRect(g.nodes[b.Start].Pos, g.nodes[b.End].Pos, width)
		if rect.Contains(pos) {
			return b.ID, true
		}
	}
	return 0, false
}

// Nodes returns a copy of all nodes in ID order
func (g *Graph) Nodes() []Node { return slices.Clone(g.nodes) }

// Beams returns a copy of all beams in ID order
func (g *Graph) Beams() []Beam { return slices.Clone(g.beams) }

// Pivots returns a copy of all pivots
func (g *Graph) Pivots() []Pivot { return slices.Clone(g.pivots) }

// Sliders returns a copy of all sliders
func (g *Graph) Sliders() []Slider { return slices.Clone(g.sliders) }

// Grounds returns a copy of all grounds
func (g *Graph) Grounds() []Ground { return slices.Clone(g.grounds) }

// Coincidences returns a copy of all coincidence constraints
func (g *Graph) Coincidences() []Coincidence { return slices.Clone(g.coincidences) }

// Fixations returns a copy of all fixation constraints
func (g *Graph) Fixations() []Fixation { return slices.Clone(g.fixations) }

// NodeCount is the number of nodes
func (g *Graph) NodeCount() int { return len(g.nodes) }

// BeamCount is the number of beams
func (g *Graph) BeamCount() int { return len(g.beams) }

// PivotCount is the number of pivots
func (g *Graph) PivotCount() int { return len(g.pivots) }

func (g *Graph) mustNode(id NodeID) Node {
	if id < 0 || int(id) >= len(g.nodes) {
		panic(fmt.Sprintf("sketch: node %d out of range (have %d)", id, len(g.nodes)))
	}
	return g.nodes[id]
}

func (g *Graph) mustBeam(id BeamID) Beam {
	if id < 0 || int(id) >= len(g.beams) {
		panic(fmt.Sprintf("sketch: beam %d out of range (have %d)", id, len(g.beams)))
	}
	return g.beams[id]
}
