package sketch

import "github.com/philipparndt/gokin/pkg/geometry"

// SnapIndex answers "is there a node close to this position?" for the graph.
// The graph keeps it in sync through Add, Move and Reset.
type SnapIndex interface {
	Add(id NodeID, pos geometry.ModelPoint)
	Move(id NodeID, pos geometry.ModelPoint)
	Reset()
	FindNear(pos geometry.ModelPoint) (NodeID, bool)
	Radius() float64
}

// LinearIndex scans every node and returns the first one (lowest id) closer
// than the radius. This is first-match, not nearest-match: when two nodes are
// both in range the older one wins even if the newer one is closer. That is
// fine for sketches of a few dozen nodes; past a few hundred use RTreeIndex.
type LinearIndex struct {
	radius    float64
	positions []geometry.ModelPoint
}

// NewLinearIndex creates a first-match index with the given snap radius
func NewLinearIndex(radius float64) *LinearIndex {
	return &LinearIndex{radius: radius}
}

func (l *LinearIndex) Add(id NodeID, pos geometry.ModelPoint) {
	if int(id) != len(l.positions) {
		panic("sketch: snap index out of sync")
	}
	l.positions = append(l.positions, pos)
}

func (l *LinearIndex) Move(id NodeID, pos geometry.ModelPoint) {
	l.positions[id] = pos
}

func (l *LinearIndex) Reset() {
	l.positions = nil
}

func (l *LinearIndex) FindNear(pos geometry.ModelPoint) (NodeID, bool) {
	for i, p := range l.positions {
		if p.Distance(pos) < l.radius {
			return NodeID(i), true
		}
	}
	return 0, false
}

func (l *LinearIndex) Radius() float64 {
	return l.radius
}
