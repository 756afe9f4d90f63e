// Package geometry provides the 2D primitives used by the sketcher.
//
// Points and vectors carry a coordinate-space tag so raw pointer coordinates
// (Screen) cannot be mixed into sketch computations (Model) without going
// through a Viewport.
package geometry

import (
	"fmt"
	"math"
)

// Screen tags coordinates in input/screen space (pixels, as delivered by the host)
type Screen struct{}

// Model tags coordinates in sketch space
type Model struct{}

// Space is the set of coordinate-space tags
type Space interface {
	Screen | Model
}

// Point is a position in space S
type Point[S Space] struct {
	X, Y float64
}

// Vector is a displacement in space S
type Vector[S Space] struct {
	X, Y float64
}

type (
	ScreenPoint  = Point[Screen]
	ScreenVector = Vector[Screen]
	ModelPoint   = Point[Model]
	ModelVector  = Vector[Model]
)

// Pt creates a point in space S
func Pt[S Space](x, y float64) Point[S] {
	return Point[S]{X: x, Y: y}
}

// Vec creates a vector in space S
func Vec[S Space](x, y float64) Vector[S] {
	return Vector[S]{X: x, Y: y}
}

// Sub returns the vector from other to p
func (p Point[S]) Sub(other Point[S]) Vector[S] {
	return Vector[S]{X: p.X - other.X, Y: p.Y - other.Y}
}

// Add returns p displaced by v
func (p Point[S]) Add(v Vector[S]) Point[S] {
	return Point[S]{X: p.X + v.X, Y: p.Y + v.Y}
}

// Distance returns the Euclidean distance between two points
func (p Point[S]) Distance(other Point[S]) float64 {
	return p.Sub(other).Length()
}

// RotateAbout rotates p by angle radians around center
func (p Point[S]) RotateAbout(center Point[S], angle float64) Point[S] {
	return center.Add(p.Sub(center).Rotate(angle))
}

// Lerp interpolates between p (t=0) and other (t=1)
func (p Point[S]) Lerp(other Point[S], t float64) Point[S] {
	return p.Add(other.Sub(p).Mul(t))
}

func (p Point[S]) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Add returns the sum of two vectors
func (v Vector[S]) Add(other Vector[S]) Vector[S] {
	return Vector[S]{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference between two vectors
func (v Vector[S]) Sub(other Vector[S]) Vector[S] {
	return Vector[S]{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul multiplies the vector by a scalar
func (v Vector[S]) Mul(scalar float64) Vector[S] {
	return Vector[S]{X: v.X * scalar, Y: v.Y * scalar}
}

// Dot returns the dot product of two vectors
func (v Vector[S]) Dot(other Vector[S]) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Length returns the magnitude of the vector
func (v Vector[S]) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Angle returns the angle of the vector from the +X axis in radians, in (-Pi, Pi]
func (v Vector[S]) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Rotate returns the vector rotated counter-clockwise by angle radians
func (v Vector[S]) Rotate(angle float64) Vector[S] {
	sin, cos := math.Sincos(angle)
	return Vector[S]{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Normalize returns a unit vector in the same direction
func (v Vector[S]) Normalize() Vector[S] {
	length := v.Length()
	if length == 0 {
		return Vector[S]{}
	}
	return v.Mul(1.0 / length)
}

func (v Vector[S]) String() string {
	return fmt.Sprintf("<%g, %g>", v.X, v.Y)
}
