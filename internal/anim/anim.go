// Package anim holds the per-frame animation state the demos update between
// draw calls: the screensaver's bouncing offset and the pulsing color used by
// the shader demos.
package anim

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Bouncer accumulates a translation offset and reflects the velocity when the
// offset leaves the bounds on an axis. Both axes are checked independently; a
// hit on one never touches the other. The offset itself is not clamped, so a
// long frame can leave it past the bound for more than one step.
type Bouncer struct {
	Velocity mgl32.Vec2
	Offset   mgl32.Vec2
	Bounds   mgl32.Vec2
}

// Advance accumulates Velocity scaled by the elapsed time and reports, per
// axis, whether the offset crossed the bound this step.
func (b *Bouncer) Advance(dt float32) (bouncedX, bouncedY bool) {
	b.Offset = b.Offset.Add(b.Velocity.Mul(dt))

	if b.Offset.X() > b.Bounds.X() || b.Offset.X() < -b.Bounds.X() {
		b.Velocity[0] = -b.Velocity[0]
		bouncedX = true
	}
	if b.Offset.Y() > b.Bounds.Y() || b.Offset.Y() < -b.Bounds.Y() {
		b.Velocity[1] = -b.Velocity[1]
		bouncedY = true
	}

	return bouncedX, bouncedY
}

// RandomColor draws each channel from [10, 245] out of 255, an opaque color
// that never gets close to pure black or white.
func RandomColor(rng *rand.Rand) mgl32.Vec4 {
	const lo, hi = 10, 245

	channel := func() float32 {
		return float32(lo+rng.IntN(hi-lo+1)) / 255
	}

	return mgl32.Vec4{channel(), channel(), channel(), 1}
}

// Pulse maps elapsed seconds onto [0, 1] as sin(t)/2 + 0.5.
func Pulse(t float32) float32 {
	return math32.Sin(t)/2 + 0.5
}
