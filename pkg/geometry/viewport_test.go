package geometry

import (
	"math"
	"testing"
)

func TestViewportIdentity(t *testing.T) {
	var v Viewport
	m := v.ToModel(Pt[Screen](12, 34))

	if m != Pt[Model](12, 34) {
		t.Errorf("zero viewport should be identity, got %v", m)
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := NewViewport().Pan(Vec[Screen](100, -50)).ZoomAt(Pt[Screen](300, 200), 2.5)

	s := Pt[Screen](417, 93)
	back := v.ToScreen(v.ToModel(s))
	if back.Distance(s) > 1e-9 {
		t.Errorf("round trip failed: expected %v, got %v", s, back)
	}
}

func TestViewportZoomKeepsAnchor(t *testing.T) {
	v := NewViewport()
	anchor := Pt[Screen](200, 150)
	before := v.ToModel(anchor)

	v = v.ZoomAt(anchor, 3)
	after := v.ToModel(anchor)

	if before.Distance(after) > 1e-9 {
		t.Errorf("zoom moved anchor: before %v, after %v", before, after)
	}
	if math.Abs(v.ScaleToScreen(10)-30) > 1e-10 {
		t.Errorf("ScaleToScreen failed: expected 30, got %v", v.ScaleToScreen(10))
	}
}

func TestViewportZoomClamped(t *testing.T) {
	v := NewViewport().ZoomAt(Pt[Screen](0, 0), 1000)
	if v.Zoom != MaxZoom {
		t.Errorf("zoom should clamp to %v, got %v", MaxZoom, v.Zoom)
	}

	v = NewViewport().ZoomAt(Pt[Screen](0, 0), 0.0001)
	if v.Zoom != MinZoom {
		t.Errorf("zoom should clamp to %v, got %v", MinZoom, v.Zoom)
	}
}
