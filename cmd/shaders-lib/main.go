// The same colored triangle as cmd/shaders, with the shader sources loaded
// from files next to the executable and the pulsing value written through the
// program wrapper.
package main

import (
	"log"
	"runtime"

	"github.com/AlexandruIca/LearnOpenGL/internal/anim"
	"github.com/AlexandruIca/LearnOpenGL/internal/app"
	"github.com/AlexandruIca/LearnOpenGL/internal/geometry"
	"github.com/AlexandruIca/LearnOpenGL/internal/shader"
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

	triangle := geometry.NewMesh(
		[]float32{
			// positions  // colors
			0.5, -0.5, 0, 1, 0, 0,
			-0.5, -0.5, 0, 0, 1, 0,
			0, 0.5, 0, 0, 0, 1,
		},
		[]uint32{0, 1, 2},
		3, 3,
	)
	defer triangle.Close()

	program := shader.Load("shader.vs", "shader.fs")
	defer program.Close()

	err = a.Run(func(f *app.Frame) error {
		program.Use()
		program.SetFloat("ourColor", anim.Pulse(f.Elapsed))
		triangle.Draw()
		shader.Unbind()
		return nil
	})
	if err != nil {
		log.Fatalf("run: %v", err)
	}
}
