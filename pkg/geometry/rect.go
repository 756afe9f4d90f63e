package geometry

import "math"

// RotatedRect is a Length x Width rectangle whose long axis starts at Origin
// and points along Angle. The rectangle is centred on that axis, so a beam
// between a and b is BeamRect(a, b, width).
type RotatedRect[S Space] struct {
	Origin Point[S]
	Length float64
	Width  float64
	Angle  float64 // radians from +X
}

// BeamRect returns the rectangle spanning a to b with the given width
func BeamRect[S Space](a, b Point[S], width float64) RotatedRect[S] {
	delta := b.Sub(a)
	return RotatedRect[S]{
		Origin: a,
		Length: delta.Length(),
		Width:  width,
		Angle:  delta.Angle(),
	}
}

// Degrees returns the rotation in degrees, as SVG and raylib expect it
func (r RotatedRect[S]) Degrees() float64 {
	return r.Angle * 180 / math.Pi
}

// End returns the far end of the long axis
func (r RotatedRect[S]) End() Point[S] {
	return r.Origin.Add(Vector[S]{X: r.Length}.Rotate(r.Angle))
}

// Corners returns the four corners in drawing order, starting at the
// corner to the right of Origin (negative local Y)
func (r RotatedRect[S]) Corners() [4]Point[S] {
	half := r.Width / 2
	local := [4]Vector[S]{
		{X: 0, Y: -half},
		{X: r.Length, Y: -half},
		{X: r.Length, Y: half},
		{X: 0, Y: half},
	}
	var out [4]Point[S]
	for i, v := range local {
		out[i] = r.Origin.Add(v.Rotate(r.Angle))
	}
	return out
}

// Contains reports whether p lies inside or on the rectangle
func (r RotatedRect[S]) Contains(p Point[S]) bool {
	// Undo the rotation so the test is axis-aligned
	local := p.Sub(r.Origin).Rotate(-r.Angle)
	half := r.Width / 2
	return local.X >= 0 && local.X <= r.Length &&
		local.Y >= -half && local.Y <= half
}
