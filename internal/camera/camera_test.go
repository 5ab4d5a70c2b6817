package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func assertMat4InDelta(t *testing.T, want, got mgl32.Mat4) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-5)
	}
}

func TestViewAtOriginIsIdentity(t *testing.T) {
	c := New(mgl32.Vec3{})
	assertMat4InDelta(t, mgl32.Ident4(), c.View())
}

func TestViewTranslatesByPosition(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 3})
	assertMat4InDelta(t, mgl32.Translate3D(0, 0, 3), c.View())
}

func TestTranslateMovesAlongLocalAxes(t *testing.T) {
	c := New(mgl32.Vec3{})
	c.Translate(mgl32.Vec3{1, 0, 0})

	assert.InDelta(t, 1, c.Position().X(), 1e-5)
	assert.InDelta(t, 0, c.Position().Y(), 1e-5)
	assert.InDelta(t, 0, c.Position().Z(), 1e-5)
}

func TestTranslateAfterYawFollowsOrientation(t *testing.T) {
	c := New(mgl32.Vec3{})
	c.Yaw(mgl32.DegToRad(90))
	c.Translate(mgl32.Vec3{0, 0, 1})

	// After a quarter turn around Y, local +Z points along world +/-X.
	pos := c.Position()
	assert.InDelta(t, 0, pos.Y(), 1e-5)
	assert.InDelta(t, 1, pos.Len(), 1e-5)
	assert.InDelta(t, 0, pos.Z(), 1e-5)
}

func TestRollKeepsPosition(t *testing.T) {
	c := New(mgl32.Vec3{1, 2, 3})
	c.Roll(0.5)

	assert.Equal(t, mgl32.Vec3{1, 2, 3}, c.Position())
}

func TestPitchChangesView(t *testing.T) {
	c := New(mgl32.Vec3{})
	before := c.View()
	c.Pitch(0.25)

	assert.NotEqual(t, before, c.View())
}
