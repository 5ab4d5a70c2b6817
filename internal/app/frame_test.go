package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()

	assert.Equal(t, "LearnOpenGL", cfg.Title)
	assert.Equal(t, 1280, cfg.Width)
	assert.Equal(t, 720, cfg.Height)
	assert.Equal(t, 3, cfg.GLMajor)
	assert.Equal(t, 3, cfg.GLMinor)
	assert.False(t, cfg.FixedSize)
	assert.Equal(t, Black, cfg.ClearColor)
}

func TestConfigExplicitValuesKept(t *testing.T) {
	cfg := Config{Title: "demo", Width: 640, Height: 480, GLMajor: 4, GLMinor: 6}.withDefaults()

	assert.Equal(t, "demo", cfg.Title)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 480, cfg.Height)
	assert.Equal(t, 4, cfg.GLMajor)
	assert.Equal(t, 6, cfg.GLMinor)
}

func TestResizeFoldsIntoState(t *testing.T) {
	var s frameState
	s.onResize(800, 600)

	assert.True(t, s.resized)
	assert.Equal(t, 800, s.width)
	assert.Equal(t, 600, s.height)

	s.beginFrame()

	assert.False(t, s.resized, "resize flag is per frame")
	assert.Equal(t, 800, s.width, "size persists across frames")
}

func TestScrollAccumulatesWithinFrame(t *testing.T) {
	var s frameState
	s.onScroll(1)
	s.onScroll(2.5)

	assert.Equal(t, float32(3.5), s.scrollY)

	s.beginFrame()
	assert.Zero(t, s.scrollY)
}

func TestDragDeltaOnlyWhileButtonHeld(t *testing.T) {
	var s frameState

	s.onCursor(10, 10)
	assert.Zero(t, s.dragDX)
	assert.Zero(t, s.dragDY)

	s.onButton(true, 100, 100)
	s.onCursor(110, 90)

	assert.Equal(t, float32(10), s.dragDX)
	assert.Equal(t, float32(10), s.dragDY, "upward cursor motion is positive")

	s.onButton(false, 110, 90)
	s.beginFrame()
	s.onCursor(200, 200)

	assert.Zero(t, s.dragDX)
	assert.Zero(t, s.dragDY)
}

func TestDragAnchorResetsOnPress(t *testing.T) {
	var s frameState

	s.onButton(true, 0, 0)
	s.onCursor(5, 0)
	s.onButton(false, 5, 0)
	s.beginFrame()

	// A new press re-anchors; the cursor jump between drags must not count.
	s.onButton(true, 50, 50)
	s.onCursor(51, 50)

	assert.Equal(t, float32(1), s.dragDX)
	assert.Equal(t, float32(0), s.dragDY)
}
