// A quad textured with container.jpg, shader sources loaded from files.
package main

import (
	"log"
	"log/slog"
	"runtime"

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

	program := shader.Load("shader.vs", "shader.fs")
	defer program.Close()

	tex, err := texture.Load("container.jpg", texture.Options{})
	if err != nil {
		slog.Error("could not load texture", "err", err)
	}
	defer tex.Close()

	err = a.Run(func(*app.Frame) error {
		tex.Bind(0)
		program.Use()

		quad.Draw()

		shader.Unbind()
		texture.Unbind()
		return nil
	})
	if err != nil {
		log.Fatalf("run: %v", err)
	}
}
