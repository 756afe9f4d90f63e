package geometry

const (
	MinZoom = 0.1
	MaxZoom = 20.0
)

// Viewport maps model space onto the screen: screen = model*Zoom + Offset.
// It is the only sanctioned conversion between the two spaces.
type Viewport struct {
	Offset ScreenVector
	Zoom   float64
}

// NewViewport returns the identity viewport
func NewViewport() Viewport {
	return Viewport{Zoom: 1}
}

// ToModel converts a screen position into model space
func (v Viewport) ToModel(p ScreenPoint) ModelPoint {
	zoom := v.zoom()
	return ModelPoint{
		X: (p.X - v.Offset.X) / zoom,
		Y: (p.Y - v.Offset.Y) / zoom,
	}
}

// ToScreen converts a model position into screen space
func (v Viewport) ToScreen(p ModelPoint) ScreenPoint {
	zoom := v.zoom()
	return ScreenPoint{
		X: p.X*zoom + v.Offset.X,
		Y: p.Y*zoom + v.Offset.Y,
	}
}

// ScaleToScreen converts a model length into pixels
func (v Viewport) ScaleToScreen(length float64) float64 {
	return length * v.zoom()
}

// Pan moves the view by a screen-space delta
func (v Viewport) Pan(delta ScreenVector) Viewport {
	v.Offset = v.Offset.Add(delta)
	return v
}

// ZoomAt scales the view by factor while keeping the model point under
// anchor fixed on screen
func (v Viewport) ZoomAt(anchor ScreenPoint, factor float64) Viewport {
	fixed := v.ToModel(anchor)
	zoom := v.zoom() * factor
	if zoom < MinZoom {
		zoom = MinZoom
	}
	if zoom > MaxZoom {
		zoom = MaxZoom
	}
	v.Zoom = zoom
	v.Offset = ScreenVector{X: anchor.X - fixed.X*zoom, Y: anchor.Y - fixed.Y*zoom}
	return v
}

// zero value behaves as identity
func (v Viewport) zoom() float64 {
	if v.Zoom == 0 {
		return 1
	}
	return v.Zoom
}
