// The DVD logo screensaver: a textured quad drifts across the screen and
// reflects off invisible walls, picking a fresh random tint on every bounce.
package main

import (
	"log"
	"log/slog"
	"math/rand/v2"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/AlexandruIca/LearnOpenGL/internal/anim"
	"github.com/AlexandruIca/LearnOpenGL/internal/app"
	"github.com/AlexandruIca/LearnOpenGL/internal/geometry"
	"github.com/AlexandruIca/LearnOpenGL/internal/shader"
	"github.com/AlexandruIca/LearnOpenGL/internal/texture"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	a, err := app.New(app.Config{Title: "HelloTriangle!"})
	if err != nil {
		log.Fatalf("setup: %v", err)
	}
	defer a.Close()

	quad := geometry.NewMesh(
		[]float32{
			// positions  // texture coords
			0.5, 0.5, 0, 1, 1,
			0.5, -0.5, 0, 1, 0,
			-0.5, -0.5, 0, 0, 0,
			-0.5, 0.5, 0, 0, 1,
		},
		[]uint32{0, 1, 3, 1, 2, 3},
		3, 2,
	)
	defer quad.Close()

	program := shader.Load("shader.vs.glsl", "shader.fs.glsl")
	defer program.Close()

	logo, err := texture.Load("DVD_ScrrenSaver2.png", texture.Options{FlipVertically: true})
	if err != nil {
		slog.Error("could not load texture", "err", err)
	}
	defer logo.Close()

	program.Use()
	program.SetInt("texture_sample", 0)
	program.SetVec4("objColor", mgl32.Vec4{1, 1, 1, 1})
	shader.Unbind()

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

	bouncer := anim.Bouncer{
		Velocity: mgl32.Vec2{0.5, 0.25},
		Bounds:   mgl32.Vec2{0.78, 0.8},
	}

	const scaleX = 0.5

	err = a.Run(func(f *app.Frame) error {
		transform := mgl32.Translate3D(bouncer.Offset.X(), bouncer.Offset.Y(), 0).
			Mul4(mgl32.Scale3D(scaleX, 1, 1))

		bouncedX, bouncedY := bouncer.Advance(f.Delta)

		logo.Bind(0)
		program.Use()

		// Two bounces in one frame re-randomize twice; the last write wins.
		if bouncedX {
			program.SetVec4("objColor", anim.RandomColor(rng))
		}
		if bouncedY {
			program.SetVec4("objColor", anim.RandomColor(rng))
		}

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
