// Two textures mixed on a quad that spins around the Z axis as time passes.
package main

import (
	"log"
	"log/slog"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/AlexandruIca/LearnOpenGL/internal/app"
	"github.com/AlexandruIca/LearnOpenGL/internal/geometry"
	"github.com/AlexandruIca/LearnOpenGL/internal/shader"
	"github.com/AlexandruIca/LearnOpenGL/internal/texture"
)

func init() {
	runtime.LockOSThread()
}

// The translate factor is zero, so the quad rotates in place; the
// translate-then-rotate order is kept for the day the factor changes.
const translateFactor = 0.0

func spinTransform(t float32) mgl32.Mat4 {
	return mgl32.Translate3D(translateFactor, -translateFactor, 0).
		Mul4(mgl32.HomogRotate3DZ(t))
}

func main() {
	a, err := app.New(app.Config{Title: "HelloTriangle!"})
	if err != nil {
		log.Fatalf("setup: %v", err)
	}
	defer a.Close()

	quad := geometry.NewMesh(
		[]float32{
			// positions  // colors  // texture coords
			0.5, 0.5, 0, 1, 0, 0, 1, 1,
			0.5, -0.5, 0, 0, 1, 0, 1, 0,
			-0.5, -0.5, 0, 0, 0, 1, 0, 0,
			-0.5, 0.5, 0, 1, 1, 0, 0, 1,
		},
		[]uint32{0, 1, 3, 1, 2, 3},
		3, 3, 2,
	)
	defer quad.Close()

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

	program.Use()
	program.SetInt("texture1", 0)
	program.SetInt("texture2", 1)
	shader.Unbind()

	err = a.Run(func(f *app.Frame) error {
		transform := spinTransform(f.Elapsed)

		container.Bind(0)
		face.Bind(1)

		program.Use()
		program.SetMat4("transform", transform)
		quad.Draw()

		shader.Unbind()
		texture.Unbind()
		return nil
	})
	if err != nil {
		log.Fatalf("run: %v", err)
	}
}
