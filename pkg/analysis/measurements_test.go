package analysis

import (
	"testing"

	"github.com/philipparndt/gokin/pkg/geometry"
	"github.com/philipparndt/gokin/pkg/sketch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mp(x, y float64) geometry.ModelPoint { return geometry.Pt[geometry.Model](x, y) }

// four-bar: ground pivots at (0,0) and (100,0), crank 30, coupler, rocker 60
func fourBar(t *testing.T) *sketch.Graph {
	t.Helper()
	g := sketch.New()
	a := g.ResolveOrCreateNode(mp(0, 0))
	b := g.ResolveOrCreateNode(mp(0, 30))
	crank := g.AddBeam(a, b)
	b = g.ResolveOrCreateNode(mp(0, 30))
	c := g.ResolveOrCreateNode(mp(100, 60))
	g.AddBeam(b, c)
	c = g.ResolveOrCreateNode(mp(100, 60))
	d := g.ResolveOrCreateNode(mp(100, 0))
	rocker := g.AddBeam(c, d)
	g.AddGround(a, sketch.ElementBeam, int(crank))
	g.AddGround(d, sketch.ElementBeam, int(rocker))
	return g
}

func TestAnalyzeEmpty(t *testing.T) {
	r := AnalyzeSketch(sketch.New())
	assert.Zero(t, r.BeamCount)
	assert.Zero(t, r.MinBeamLength)
	assert.Zero(t, r.AvgBeamLength)
	assert.Equal(t, Bounds{}, r.Bounds)
	assert.Empty(t, FindLongestBeams(r, 3))
}

func TestAnalyzeFourBar(t *testing.T) {
	r := AnalyzeSketch(fourBar(t))

	assert.Equal(t, 4, r.NodeCount)
	assert.Equal(t, 3, r.BeamCount)
	assert.Equal(t, 2, r.PivotCount)
	assert.Equal(t, 2, r.GroundCount)
	assert.Equal(t, 2, r.MaxNodeDegree)

	assert.Equal(t, mp(0, 0), r.Bounds.Min)
	assert.Equal(t, mp(100, 60), r.Bounds.Max)
	assert.Equal(t, mp(50, 30), r.Bounds.Center())

	assert.InDelta(t, 30, r.MinBeamLength, 1e-9)
	assert.InDelta(t, 104.403065, r.MaxBeamLength, 1e-6)
	assert.InDelta(t, (30+60+104.403065)/3, r.AvgBeamLength, 1e-6)
	assert.Zero(t, r.MaxStrain)
}

func TestStrainAfterNodeMove(t *testing.T) {
	g := fourBar(t)
	g.MoveNode(1, mp(0, 40))

	r := AnalyzeSketch(g)
	assert.InDelta(t, 10, r.AllBeams[0].Strain(), 1e-9)
	assert.GreaterOrEqual(t, r.MaxStrain, 10.0)
}

func TestFindBeams(t *testing.T) {
	r := AnalyzeSketch(fourBar(t))

	longest := FindLongestBeams(r, 2)
	require.Len(t, longest, 2)
	assert.Equal(t, sketch.BeamID(1), longest[0].ID)
	assert.Equal(t, sketch.BeamID(2), longest[1].ID)

	shortest := FindShortestBeams(r, 10)
	require.Len(t, shortest, 3)
	assert.Equal(t, sketch.BeamID(0), shortest[0].ID)

	assert.Len(t, r.AllBeams, 3, "sorting works on a copy")
	assert.Equal(t, sketch.BeamID(0), r.AllBeams[0].ID)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "1.500 units", FormatMeasurement(1.5, ""))
	assert.Equal(t, "(1.000, -2.000)", FormatPoint(mp(1, -2)))
}
