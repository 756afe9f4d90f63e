package scene

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/philipparndt/gokin/internal/editor"
	"github.com/philipparndt/gokin/pkg/geometry"
	"github.com/philipparndt/gokin/pkg/sketch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mp(x, y float64) geometry.ModelPoint { return geometry.Pt[geometry.Model](x, y) }

func TestProjectEmpty(t *testing.T) {
	s := Project(sketch.New(), editor.Preview{}, DefaultStyle())
	assert.Empty(t, s.Shapes)
}

func TestProjectBeamAndPivot(t *testing.T) {
	g := sketch.New()
	a := g.ResolveOrCreateNode(mp(0, 0))
	b := g.ResolveOrCreateNode(mp(100, 0))
	g.AddBeam(a, b)
	g.ResolveOrCreateNode(mp(100, 0)) // reuse records a pivot

	style := DefaultStyle()
	got := Project(g, editor.Preview{}, style)

	solid := style.paint(style.Fill)
	want := Scene{Shapes: []Shape{
		Bar{Paint: solid, Rect: geometry.RotatedRect[geometry.Model]{
			Origin: mp(0, 0), Length: 100, Width: style.BeamWidth,
		}},
		Circle{Paint: style.paint(style.Accent), Center: mp(100, 0), Radius: style.PivotRadius},
		Circle{Paint: solid, Center: mp(100, 0), Radius: style.PivotRadius / 2},
	}}

	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("Project() mismatch (-want +got):\n%s", diff)
	}
}

func TestProjectOrder(t *testing.T) {
	g := sketch.New()
	a := g.ResolveOrCreateNode(mp(0, 0))
	b := g.ResolveOrCreateNode(mp(50, 50))
	beam := g.AddBeam(a, b)
	g.AddSlider(a, beam)
	g.AddGround(b, sketch.ElementBeam, int(beam))

	s := Project(g, editor.Preview{Kind: editor.PreviewPivot, At: mp(200, 200)}, DefaultStyle())
	require.Len(t, s.Shapes, 1+2+1+2)

	assert.IsType(t, Bar{}, s.Shapes[0])
	assert.IsType(t, Box{}, s.Shapes[1])
	assert.IsType(t, Box{}, s.Shapes[2])
	assert.IsType(t, Polygon{}, s.Shapes[3])
	assert.IsType(t, Circle{}, s.Shapes[4], "preview drawn last")
}

func TestProjectPreviewIsGhost(t *testing.T) {
	style := DefaultStyle()
	tests := []struct {
		name    string
		preview editor.Preview
		shapes  int
	}{
		{"pivot", editor.Preview{Kind: editor.PreviewPivot, At: mp(1, 1)}, 2},
		{"slider", editor.Preview{Kind: editor.PreviewSlider, At: mp(1, 1)}, 2},
		{"ground", editor.Preview{Kind: editor.PreviewGround, At: mp(1, 1)}, 1},
		{"beam start", editor.Preview{Kind: editor.PreviewBeamStart, At: mp(1, 1)}, 1},
		{"beam", editor.Preview{Kind: editor.PreviewBeam, From: mp(0, 0), At: mp(40, 0)}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Project(sketch.New(), tt.preview, style)
			require.Len(t, s.Shapes, tt.shapes)
			for _, sh := range s.Shapes {
				assert.InDelta(t, style.GhostOpacity, sh.Style().Opacity, 1e-9)
			}
		})
	}
}

func TestProjectGhostBeamGeometry(t *testing.T) {
	style := DefaultStyle()
	s := Project(sketch.New(), editor.Preview{Kind: editor.PreviewBeam, From: mp(10, 10), At: mp(10, 50)}, style)
	require.Len(t, s.Shapes, 1)

	bar, ok := s.Shapes[0].(Bar)
	require.True(t, ok)
	assert.InDelta(t, 40, bar.Rect.Length, 1e-9)
	assert.InDelta(t, 90, bar.Rect.Degrees(), 1e-9)
	assert.Equal(t, mp(10, 10), bar.Rect.Origin)
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#ffbe80", 0.6)
	require.NoError(t, err)
	assert.Equal(t, uint8(0xff), c.R)
	assert.Equal(t, uint8(0xbe), c.G)
	assert.Equal(t, uint8(0x80), c.B)
	assert.Equal(t, uint8(153), c.A)

	c, err = ParseHexColor("#000000", 7)
	require.NoError(t, err)
	assert.Equal(t, uint8(255), c.A)

	_, err = ParseHexColor("orange", 1)
	assert.Error(t, err)
}
