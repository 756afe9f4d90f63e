package sketch

import (
	"github.com/dhconnelly/rtreego"
	"github.com/philipparndt/gokin/pkg/geometry"
)

const (
	rtreeMinChildren = 25
	rtreeMaxChildren = 50
	pointTolerance   = 0.01
)

type rtreeEntry struct {
	id  NodeID
	pos geometry.ModelPoint
}

func (e *rtreeEntry) Bounds() rtreego.Rect {
	return rtreego.Point{e.pos.X, e.pos.Y}.ToRect(pointTolerance)
}

// RTreeIndex is a nearest-match snap index backed by an R-tree. Among the
// nodes strictly inside the radius it returns the closest one; equal
// distances go to the lower id.
type RTreeIndex struct {
	radius  float64
	tree    *rtreego.Rtree
	entries []*rtreeEntry
}

// NewRTreeIndex creates a nearest-match index with the given snap radius
func NewRTreeIndex(radius float64) *RTreeIndex {
	return &RTreeIndex{
		radius: radius,
		tree:   rtreego.NewTree(2, rtreeMinChildren, rtreeMaxChildren),
	}
}

func (r *RTreeIndex) Add(id NodeID, pos geometry.ModelPoint) {
	if int(id) != len(r.entries) {
		panic("sketch: snap index out of sync")
	}
	e := &rtreeEntry{id: id, pos: pos}
	r.entries = append(r.entries, e)
	r.tree.Insert(e)
}

func (r *RTreeIndex) Move(id NodeID, pos geometry.ModelPoint) {
	e := r.entries[id]
	// Delete locates the entry by its current bounds, so remove before updating
	r.tree.Delete(e)
	e.pos = pos
	r.tree.Insert(e)
}

func (r *RTreeIndex) Reset() {
	r.tree = rtreego.NewTree(2, rtreeMinChildren, rtreeMaxChildren)
	r.entries = nil
}

func (r *RTreeIndex) FindNear(pos geometry.ModelPoint) (NodeID, bool) {
	box := rtreego.Point{pos.X, pos.Y}.ToRect(r.radius)

	best := NodeID(-1)
	bestDist := r.radius
	for _, s := range r.tree.SearchIntersect(box) {
		e := s.(*rtreeEntry)
		d := e.pos.Distance(pos)
		if d >= r.radius {
			continue
		}
		if best < 0 || d < bestDist || (d == bestDist && e.id < best) {
			best, bestDist = e.id, d
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

func (r *RTreeIndex) Radius() float64 {
	return r.radius
}
