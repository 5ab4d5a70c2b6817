package anim

import (
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBouncer() Bouncer {
	return Bouncer{
		Velocity: mgl32.Vec2{0.5, 0.25},
		Bounds:   mgl32.Vec2{0.78, 0.8},
	}
}

func TestBouncerNoBounceInsideBounds(t *testing.T) {
	b := newBouncer()

	bx, by := b.Advance(0.1)

	assert.False(t, bx)
	assert.False(t, by)
	assert.InDelta(t, 0.05, b.Offset.X(), 1e-6)
	assert.InDelta(t, 0.025, b.Offset.Y(), 1e-6)
}

func TestBouncerReflectsOnlyCrossedAxis(t *testing.T) {
	b := newBouncer()
	b.Offset = mgl32.Vec2{0.77, 0}

	bx, by := b.Advance(0.1)

	require.True(t, bx)
	require.False(t, by)
	assert.Equal(t, float32(-0.5), b.Velocity.X())
	assert.Equal(t, float32(0.25), b.Velocity.Y(), "Y axis must be untouched by an X bounce")
}

func TestBouncerNegativeBound(t *testing.T) {
	b := newBouncer()
	b.Velocity = mgl32.Vec2{-0.5, 0.25}
	b.Offset = mgl32.Vec2{-0.77, 0}

	bx, _ := b.Advance(0.1)

	require.True(t, bx)
	assert.Equal(t, float32(0.5), b.Velocity.X())
}

func TestBouncerBothAxesSameFrame(t *testing.T) {
	b := newBouncer()
	b.Offset = mgl32.Vec2{0.77, 0.79}

	bx, by := b.Advance(0.1)

	assert.True(t, bx)
	assert.True(t, by)
	assert.Equal(t, float32(-0.5), b.Velocity.X())
	assert.Equal(t, float32(-0.25), b.Velocity.Y())
}

func TestBouncerOffsetNotClamped(t *testing.T) {
	b := newBouncer()
	b.Offset = mgl32.Vec2{0.77, 0}

	b.Advance(1) // a very long frame overshoots well past the bound

	assert.Greater(t, b.Offset.X(), b.Bounds.X())
}

func TestRandomColorStaysAwayFromExtremes(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 1000; i++ {
		c := RandomColor(rng)
		for ch := 0; ch < 3; ch++ {
			assert.GreaterOrEqual(t, c[ch], float32(10)/255)
			assert.LessOrEqual(t, c[ch], float32(245)/255)
		}
		assert.Equal(t, float32(1), c[3])
	}
}

func TestPulse(t *testing.T) {
	assert.InDelta(t, 0.5, Pulse(0), 1e-6)

	for _, tt := range []float32{0, 0.3, 1, 2.5, 10, 100} {
		v := Pulse(tt)
		assert.GreaterOrEqual(t, v, float32(0))
		assert.LessOrEqual(t, v, float32(1))
	}
}
