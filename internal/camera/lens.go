package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Lens holds the field-of-view state driven by scroll input. Fov is in
// degrees and stays within [Min, Max].
type Lens struct {
	Fov  float32
	Min  float32
	Max  float32
	Near float32
	Far  float32
}

// NewLens returns the lens every demo starts with: 45 degrees, zoomable down
// to 1 degree.
func NewLens() Lens {
	return Lens{Fov: 45, Min: 1, Max: 45, Near: 0.1, Far: 100}
}

// Zoom applies a scroll delta as fov = clamp(fov - delta, Min, Max) and
// reports whether the field of view changed.
func (l *Lens) Zoom(delta float32) bool {
	old := l.Fov
	l.Fov = math32.Min(math32.Max(l.Fov-delta, l.Min), l.Max)
	return l.Fov != old
}

// Projection returns the perspective matrix for the current field of view.
func (l Lens) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(l.Fov), aspect, l.Near, l.Far)
}
