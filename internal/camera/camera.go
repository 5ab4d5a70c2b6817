// Package camera implements the free-flying quaternion camera and the
// field-of-view state behind the perspective projection.
package camera

import "github.com/go-gl/mathgl/mgl32"

// Camera is a position plus orientation; the view matrix is rebuilt from both
// on demand.
type Camera struct {
	pos    mgl32.Vec3
	orient mgl32.Quat
}

func New(pos mgl32.Vec3) *Camera {
	return &Camera{pos: pos, orient: mgl32.QuatIdent()}
}

func (c *Camera) Position() mgl32.Vec3 {
	return c.pos
}

// View returns the world-to-camera matrix.
func (c *Camera) View() mgl32.Mat4 {
	return c.orient.Mat4().Mul4(mgl32.Translate3D(c.pos.X(), c.pos.Y(), c.pos.Z()))
}

// Translate moves the camera along v expressed in camera-local axes.
func (c *Camera) Translate(v mgl32.Vec3) {
	c.pos = c.pos.Add(c.orient.Inverse().Rotate(v))
}

func (c *Camera) rotate(angle float32, axis mgl32.Vec3) {
	c.orient = c.orient.Mul(mgl32.QuatRotate(angle, c.orient.Inverse().Rotate(axis)))
}

// Yaw rotates around the camera-local Y axis by angle radians.
func (c *Camera) Yaw(angle float32) {
	c.rotate(angle, mgl32.Vec3{0, 1, 0})
}

// Pitch rotates around the camera-local X axis by angle radians.
func (c *Camera) Pitch(angle float32) {
	c.rotate(angle, mgl32.Vec3{1, 0, 0})
}

// Roll rotates around the camera-local Z axis by angle radians.
func (c *Camera) Roll(angle float32) {
	c.rotate(angle, mgl32.Vec3{0, 0, 1})
}
