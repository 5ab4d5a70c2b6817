// Ten textured cubes viewed through a free-flying quaternion camera: arrow
// keys and W/S translate, Q/E roll, left-drag looks around, scrolling zooms
// the field of view between 1 and 45 degrees.
package main

import (
	"log"
	"log/slog"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/AlexandruIca/LearnOpenGL/internal/app"
	"github.com/AlexandruIca/LearnOpenGL/internal/camera"
	"github.com/AlexandruIca/LearnOpenGL/internal/geometry"
	"github.com/AlexandruIca/LearnOpenGL/internal/shader"
	"github.com/AlexandruIca/LearnOpenGL/internal/texture"
)

const (
	translateOffset = 0.5
	rollOffset      = 0.5
	dragSensitivity = 0.001
)

var cubePositions = []mgl32.Vec3{
	{0, 0, 0}, {2, 5, -15},
	{-1.5, -2.2, -2.5}, {-3.8, -2, -12.3},
	{2.4, -0.4, -3.5}, {-1.7, 3, -7.5},
	{1.3, -2, -2.5}, {1.5, 2, -2.5},
	{1.5, 0.2, -1.5}, {-1.3, 1, -1.5},
}

func init() {
	runtime.LockOSThread()
}

func main() {
	a, err := app.New(app.Config{Title: "HelloTriangle!", DepthTest: true})
	if err != nil {
		log.Fatalf("setup: %v", err)
	}
	defer a.Close()

	cube := geometry.NewMesh(cubeVertices, sequentialIndices(36), 3, 2)
	defer cube.Close()

	program := shader.Load("shader.vs.glsl", "shader.fs.glsl")
	defer program.Close()

	container, err := texture.Load("container.jpg", texture.Options{})
	if err != nil {
		slog.Error("could not load texture", "err", err)
	}
	defer container.Close()

	face, err := texture.Load("awesomeface.png", texture.Options{FlipVertically: true})
	if err != nil {
		slog.Error("could not load texture", "err", err)
	}
	defer face.Close()

	cam := camera.New(mgl32.Vec3{0, 0, 3})
	lens := camera.NewLens()

	width, height := 1280, 720
	aspect := func() float32 { return float32(width) / float32(height) }

	program.Use()
	program.SetInt("texture1", 0)
	program.SetInt("texture2", 1)
	program.SetMat4("projection", lens.Projection(aspect()))
	shader.Unbind()

	err = a.Run(func(f *app.Frame) error {
		if f.Resized() {
			width, height = f.Size()
			program.Use()
			program.SetMat4("projection", lens.Projection(aspect()))
			shader.Unbind()
		}
		if delta := f.Scroll(); delta != 0 && lens.Zoom(delta) {
			program.Use()
			program.SetMat4("projection", lens.Projection(aspect()))
			shader.Unbind()
		}

		speed := 50 * f.Delta
		if f.KeyDown(glfw.KeyUp) {
			cam.Translate(mgl32.Vec3{0, 0, translateOffset * speed})
		}
		if f.KeyDown(glfw.KeyDown) {
			cam.Translate(mgl32.Vec3{0, 0, -translateOffset * speed})
		}
		if f.KeyDown(glfw.KeyLeft) {
			cam.Translate(mgl32.Vec3{translateOffset * speed, 0, 0})
		}
		if f.KeyDown(glfw.KeyRight) {
			cam.Translate(mgl32.Vec3{-translateOffset * speed, 0, 0})
		}
		if f.KeyDown(glfw.KeyW) {
			cam.Translate(mgl32.Vec3{0, -translateOffset * speed, 0})
		}
		if f.KeyDown(glfw.KeyS) {
			cam.Translate(mgl32.Vec3{0, translateOffset * speed, 0})
		}
		if f.KeyDown(glfw.KeyQ) {
			cam.Roll(rollOffset * speed)
		}
		if f.KeyDown(glfw.KeyE) {
			cam.Roll(-rollOffset * speed)
		}

		if dx, dy := f.Drag(); dx != 0 || dy != 0 {
			cam.Yaw(-dx * dragSensitivity)
			cam.Pitch(dy * dragSensitivity)
		}

		container.Bind(0)
		face.Bind(1)

		program.Use()
		program.SetMat4("view", cam.View())

		for i, pos := range cubePositions {
			angle := mgl32.DegToRad(float32(i)*20) * f.Elapsed
			model := mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).
				Mul4(mgl32.HomogRotate3D(angle, mgl32.Vec3{1, 0.3, 0.5}.Normalize()))
			program.SetMat4("model", model)
			cube.Draw()
		}

		shader.Unbind()
		texture.Unbind()
		return nil
	})
	if err != nil {
		log.Fatalf("run: %v", err)
	}
}

func sequentialIndices(n int) []uint32 {
	indices := make([]uint32, n)
	for i := range indices {
		indices[i] = uint32(i)
	}
	return indices
}
