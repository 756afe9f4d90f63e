package sketch

import (
	"math"
	"testing"

	"github.com/philipparndt/gokin/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pt(x, y float64) geometry.ModelPoint {
	return geometry.Pt[geometry.Model](x, y)
}

func TestResolveReusesNodeWithinRadius(t *testing.T) {
	g := New()

	first := g.ResolveOrCreateNode(pt(100, 100))
	near := g.ResolveOrCreateNode(pt(105, 103)) // ~5.83 away
	far := g.ResolveOrCreateNode(pt(120, 100))  // 20 away

	assert.Equal(t, first, near)
	assert.NotEqual(t, first, far)
	assert.Equal(t, 2, g.NodeCount())
}

func TestResolveRadiusIsStrict(t *testing.T) {
	g := New()

	a := g.ResolveOrCreateNode(pt(0, 0))
	b := g.ResolveOrCreateNode(pt(DefaultSnapRadius, 0))

	assert.NotEqual(t, a, b, "a point exactly on the radius must not snap")
}

func TestResolveRecordsPivotOnlyOnReuse(t *testing.T) {
	g := New()

	n := g.ResolveOrCreateNode(pt(0, 0))
	assert.Equal(t, 0, g.PivotCount(), "fresh node must not be a pivot")

	again := g.ResolveOrCreateNode(pt(1, 1))
	require.Equal(t, n, again)
	require.Equal(t, 1, g.PivotCount())

	id, ok := g.PivotAt(n)
	require.True(t, ok)
	assert.Equal(t, n, g.Pivots()[id].Node)
}

func TestResolveSamePositionTwice(t *testing.T) {
	g := New()
	g.ResolveOrCreateNode(pt(10, 10))

	before := g.NodeCount()
	a := g.ResolveOrCreateNode(pt(10, 10))
	b := g.ResolveOrCreateNode(pt(10, 10))

	assert.Equal(t, a, b)
	assert.Equal(t, before, g.NodeCount())
	assert.Equal(t, 1, g.PivotCount(), "pivot records are not duplicated")
}

func TestFirstMatchPrefersLowerID(t *testing.T) {
	g := New()
	a := g.ResolveOrCreateNode(pt(0, 0))
	b := g.ResolveOrCreateNode(pt(20, 0))

	// 11 from a, 9 from b: both in range, first match wins
	got, ok := g.Near(pt(11, 0))
	require.True(t, ok)
	assert.Equal(t, a, got)
	assert.NotEqual(t, b, got)
}

func TestAddBeamStoresRestLength(t *testing.T) {
	g := New()
	a := g.ResolveOrCreateNode(pt(0, 0))
	b := g.ResolveOrCreateNode(pt(30, 40))

	id := g.AddBeam(a, b)

	assert.Equal(t, 1, g.BeamCount())
	beam := g.Beam(id)
	assert.Equal(t, a, beam.Start)
	assert.Equal(t, b, beam.End)
	assert.InDelta(t, 50.0, beam.RestLength, 1e-10)

	// Rest length is a snapshot
	g.MoveNode(b, pt(300, 400))
	assert.InDelta(t, 50.0, g.Beam(id).RestLength, 1e-10)
}

func TestAddBeamPanicsOnInvalidIDs(t *testing.T) {
	g := New()
	a := g.ResolveOrCreateNode(pt(0, 0))

	assert.Panics(t, func() { g.AddBeam(a, a) })
	assert.Panics(t, func() { g.AddBeam(a, 7) })
	assert.Panics(t, func() { g.AddBeam(-1, a) })
	assert.Equal(t, 0, g.BeamCount())
}

func TestMoveNodeUpdatesSnapping(t *testing.T) {
	g := New()
	n := g.ResolveOrCreateNode(pt(0, 0))

	g.MoveNode(n, pt(200, 200))

	_, ok := g.Near(pt(0, 0))
	assert.False(t, ok, "old position must no longer snap")
	got, ok := g.Near(pt(201, 199))
	require.True(t, ok)
	assert.Equal(t, n, got)
	assert.Equal(t, pt(200, 200), g.Node(n).Pos)
	assert.Panics(t, func() { g.MoveNode(5, pt(0, 0)) })
}

func TestPivotBeamsIsDerived(t *testing.T) {
	g := New()
	hub := g.ResolveOrCreateNode(pt(0, 0))
	a := g.ResolveOrCreateNode(pt(50, 0))
	b0 := g.AddBeam(hub, a)

	// Snap onto the hub, making it a pivot
	require.Equal(t, hub, g.ResolveOrCreateNode(pt(2, 2)))
	c := g.ResolveOrCreateNode(pt(0, 50))
	b1 := g.AddBeam(hub, c)

	pivot, ok := g.PivotAt(hub)
	require.True(t, ok)
	assert.Equal(t, []BeamID{b0, b1}, g.PivotBeams(pivot))

	// A beam attached later shows up without re-recording the pivot
	d := g.ResolveOrCreateNode(pt(-50, 0))
	b2 := g.AddBeam(d, hub)
	assert.Equal(t, []BeamID{b0, b1, b2}, g.PivotBeams(pivot))
	assert.Equal(t, 1, g.PivotCount())
}

func TestBeamAtReturnsTopmost(t *testing.T) {
	g := New()
	a := g.ResolveOrCreateNode(pt(0, 0))
	b := g.ResolveOrCreateNode(pt(100, 0))
	c := g.ResolveOrCreateNode(pt(50, -50))
	d := g.ResolveOrCreateNode(pt(50, 50))
	horizontal := g.AddBeam(a, b)
	vertical := g.AddBeam(c, d)

	got, ok := g.BeamAt(pt(50, 1), 8)
	require.True(t, ok)
	assert.Equal(t, vertical, got)

	got, ok = g.BeamAt(pt(20, -3), 8)
	require.True(t, ok)
	assert.Equal(t, horizontal, got)

	_, ok = g.BeamAt(pt(20, 10), 8)
	assert.False(t, ok)
}

func TestDistinct(t *testing.T) {
	g := New()
	g.ResolveOrCreateNode(pt(0, 0))
	g.ResolveOrCreateNode(pt(100, 0))

	assert.False(t, g.Distinct(pt(1, 1), pt(-2, 3)), "both snap to the same node")
	assert.True(t, g.Distinct(pt(1, 1), pt(99, 0)), "two different existing nodes")
	assert.True(t, g.Distinct(pt(0, 0), pt(50, 50)), "new node far away")
	assert.False(t, g.Distinct(pt(300, 300), pt(305, 300)), "new start would capture the end")
}

func TestAuxiliaryRecords(t *testing.T) {
	g := New()
	a := g.ResolveOrCreateNode(pt(0, 0))
	b := g.ResolveOrCreateNode(pt(40, 0))
	c := g.ResolveOrCreateNode(pt(40, 40))
	b0 := g.AddBeam(a, b)
	b1 := g.AddBeam(b, c)

	s := g.AddSlider(b, b0)
	g.AddGround(a, ElementBeam, int(b0))
	g.AddGround(b, ElementSlider, int(s))
	g.AddCoincidence(c, b0)
	g.AddFixation(b0, b1)

	assert.Len(t, g.Sliders(), 1)
	assert.Len(t, g.Grounds(), 2)
	assert.Len(t, g.Coincidences(), 1)
	assert.Len(t, g.Fixations(), 1)
	assert.NoError(t, g.Validate())

	assert.Panics(t, func() { g.AddSlider(9) })
	assert.Panics(t, func() { g.AddGround(a, ElementPivot, 0) })
	assert.Panics(t, func() { g.AddCoincidence(a, 5) })
	assert.Panics(t, func() { g.AddFixation(b0, 2) })
}

func TestSliderBeamsAreCopied(t *testing.T) {
	g := New()
	a := g.ResolveOrCreateNode(pt(0, 0))
	b := g.ResolveOrCreateNode(pt(40, 0))
	beams := []BeamID{g.AddBeam(a, b)}

	g.AddSlider(a, beams...)
	beams[0] = 99

	assert.Equal(t, []BeamID{0}, g.Sliders()[0].Beams)
}

func TestValidateReportsCorruption(t *testing.T) {
	g := New()
	g.ResolveOrCreateNode(pt(0, 0))
	g.beams = append(g.beams, Beam{ID: 0, Start: 0, End: 3, RestLength: math.NaN()})
	g.pivots = append(g.pivots, Pivot{ID: 0, Node: 0})
	g.pivots = append(g.pivots, Pivot{ID: 1, Node: -1})

	err := g.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "beam 0: node 3 out of range")
	assert.Contains(t, err.Error(), "invalid rest length")
	assert.Contains(t, err.Error(), "pivot 1: node -1 out of range")
}

func TestClear(t *testing.T) {
	g := New()
	a := g.ResolveOrCreateNode(pt(0, 0))
	b := g.ResolveOrCreateNode(pt(40, 0))
	g.AddBeam(a, b)
	g.ResolveOrCreateNode(pt(0, 0))

	g.Clear()

	assert.Zero(t, g.NodeCount())
	assert.Zero(t, g.BeamCount())
	assert.Zero(t, g.PivotCount())
	_, ok := g.Near(pt(0, 0))
	assert.False(t, ok)
	assert.Equal(t, NodeID(0), g.ResolveOrCreateNode(pt(0, 0)))
}

func TestAccessorsReturnCopies(t *testing.T) {
	g := New()
	g.ResolveOrCreateNode(pt(1, 2))

	g.ResolveOrCreateNode(pt(50, 2))
	g.AddBeam(0, 1)

	nodes := g.Nodes()
	nodes[0].Pos = pt(9, 9)
	beams := g.Beams()
	beams[0].End = 0

	assert.Equal(t, pt(1, 2), g.Node(0).Pos)
	assert.Equal(t, NodeID(1), g.Beams()[0].End)
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.BeamCount())
	assert.Equal(t, 0, g.PivotCount())
}
