package app

import "github.com/go-gl/glfw/v3.3/glfw"

// frameState is the event fold: window callbacks write into it, the frame
// loop resets the per-frame parts before polling and the Frame reads it.
// Kept free of any glfw handle so the folding rules are testable on their
// own.
type frameState struct {
	width, height int
	resized       bool

	scrollY float32

	dragging       bool
	lastX, lastY   float32
	dragDX, dragDY float32
}

// beginFrame clears the per-frame accumulators. Size and drag anchor persist
// across frames.
func (s *frameState) beginFrame() {
	s.resized = false
	s.scrollY = 0
	s.dragDX, s.dragDY = 0, 0
}

func (s *frameState) onResize(w, h int) {
	s.width, s.height = w, h
	s.resized = true
}

func (s *frameState) onScroll(dy float32) {
	s.scrollY += dy
}

func (s *frameState) onButton(pressed bool, x, y float32) {
	s.dragging = pressed
	if pressed {
		s.lastX, s.lastY = x, y
	}
}

func (s *frameState) onCursor(x, y float32) {
	if !s.dragging {
		return
	}
	s.dragDX += x - s.lastX
	// Screen Y grows downward, camera pitch up is positive.
	s.dragDY += s.lastY - y
	s.lastX, s.lastY = x, y
}

// Frame is one iteration of the loop: the time since the previous frame, the
// total elapsed time and accessors for the input state folded during event
// polling.
type Frame struct {
	app *App

	// Delta is the elapsed time since the previous frame in seconds.
	Delta float32
	// Elapsed is the time in seconds since the graphics runtime was
	// initialized, the clock every demo animates against.
	Elapsed float32
}

// Size returns the current window size in pixels.
func (f *Frame) Size() (width, height int) {
	return f.app.state.width, f.app.state.height
}

// Resized reports whether the window size changed during this frame's event
// processing.
func (f *Frame) Resized() bool {
	return f.app.state.resized
}

// Scroll returns the vertical scroll delta accumulated this frame.
func (f *Frame) Scroll() float32 {
	return f.app.state.scrollY
}

// Drag returns the cursor movement accumulated this frame while the left
// button was held, with upward movement positive in y.
func (f *Frame) Drag() (dx, dy float32) {
	return f.app.state.dragDX, f.app.state.dragDY
}

// KeyDown reports whether the key is currently held.
func (f *Frame) KeyDown(key glfw.Key) bool {
	return f.app.window.GetKey(key) == glfw.Press
}
