// Package app owns the shared window/context setup and the frame loop every
// demo runs inside. A demo supplies a Config and a per-frame step function;
// everything else - context hints, event polling, delta time, clearing,
// presenting - lives here once instead of in each main.
package app

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Color is the RGBA color struct shared by clear colors and demo state.
type Color struct {
	R, G, B, A float32
}

var (
	Black = Color{0, 0, 0, 1}
	White = Color{1, 1, 1, 1}
)

// Config describes the window and context a demo wants. Zero values fall
// back to the defaults shared by all demos: 1280x720, OpenGL 3.3 core,
// resizable, black clear color.
type Config struct {
	Title      string
	Width      int
	Height     int
	GLMajor    int
	GLMinor    int
	FixedSize  bool
	DepthTest  bool
	ClearColor Color
}

func (c Config) withDefaults() Config {
	if c.Title == "" {
		c.Title = "LearnOpenGL"
	}
	if c.Width == 0 {
		c.Width = 1280
	}
	if c.Height == 0 {
		c.Height = 720
	}
	if c.GLMajor == 0 {
		c.GLMajor, c.GLMinor = 3, 3
	}
	if c.ClearColor == (Color{}) {
		c.ClearColor = Black
	}
	return c
}

// App is the scoped handle around the window, the GL context and the folded
// per-frame input state.
type App struct {
	cfg    Config
	window *glfw.Window
	state  frameState
}

// New initializes glfw, creates the window and context described by cfg and
// loads the GL function pointers. Any failure here is unrecoverable for a
// demo; callers exit immediately after logging.
func New(cfg Config) (*App, error) {
	cfg = cfg.withDefaults()

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	resizable := glfw.True
	if cfg.FixedSize {
		resizable = glfw.False
	}
	glfw.WindowHint(glfw.Resizable, resizable)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("load opengl: %w", err)
	}

	a := &App{cfg: cfg, window: window}
	a.state.width, a.state.height = cfg.Width, cfg.Height
	a.installCallbacks()

	slog.Info("opengl context ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	var attribs int32
	gl.GetIntegerv(gl.MAX_VERTEX_ATTRIBS, &attribs)
	slog.Info("max vertex attributes", "count", attribs)

	if cfg.DepthTest {
		gl.Enable(gl.DEPTH_TEST)
	}

	fbWidth, fbHeight := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))

	return a, nil
}

func (a *App) installCallbacks() {
	a.window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gl.Viewport(0, 0, int32(w), int32(h))
		a.state.onResize(w, h)
	})
	a.window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})
	a.window.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		a.state.onScroll(float32(yoff))
	})
	a.window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		x, y := w.GetCursorPos()
		a.state.onButton(action == glfw.Press, float32(x), float32(y))
	})
	a.window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		a.state.onCursor(float32(x), float32(y))
	})
}

// loop runs iterate until shouldClose reports true or iterate fails. The
// close request is checked only between iterations: one set during an
// iteration lets that iteration finish and prevents the next from starting.
func loop(shouldClose func() bool, iterate func() error) error {
	for !shouldClose() {
		if err := iterate(); err != nil {
			return err
		}
	}
	return nil
}

// Run drives the frame loop: drain events, advance time, clear, call step,
// present. It returns once a close request or Escape has been seen, checked
// at the top of each iteration, or as soon as step fails.
func (a *App) Run(step func(*Frame) error) error {
	last := glfw.GetTime()

	return loop(a.window.ShouldClose, func() error {
		a.state.beginFrame()
		glfw.PollEvents()

		now := glfw.GetTime()
		frame := &Frame{app: a, Delta: float32(now - last), Elapsed: float32(now)}
		last = now

		c := a.cfg.ClearColor
		gl.ClearColor(c.R, c.G, c.B, c.A)
		mask := uint32(gl.COLOR_BUFFER_BIT)
		if a.cfg.DepthTest {
			mask |= gl.DEPTH_BUFFER_BIT
		}
		gl.Clear(mask)

		if err := step(frame); err != nil {
			return err
		}

		a.window.SwapBuffers()
		return nil
	})
}

// Close destroys the window and tears down glfw. It is the single shutdown
// path for everything New acquired.
func (a *App) Close() {
	a.window.Destroy()
	glfw.Terminate()
}
