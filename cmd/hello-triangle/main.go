// An indexed quad with inline shaders and a fixed fragment color.
package main

import (
	"log"
	"runtime"

	"github.com/AlexandruIca/LearnOpenGL/internal/app"
	"github.com/AlexandruIca/LearnOpenGL/internal/geometry"
	"github.com/AlexandruIca/LearnOpenGL/internal/shader"
)

const vertexSource = `
#version 460 core

layout(location = 0) in vec3 pos;

void main() {
    gl_Position = vec4(pos.xyz, 1.0);
}
`

const fragmentSource = `
#version 460 core

out vec4 fragColor;

void main() {
    fragColor = vec4(1.0f, 0.5f, 0.25f, 1.0f);
}
`

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
			0.5, 0.5, 0,
			0.5, -0.5, 0,
			-0.5, -0.5, 0,
			-0.5, 0.5, 0,
		},
		[]uint32{0, 1, 3, 1, 2, 3},
		3,
	)
	defer quad.Close()

	program := shader.New(vertexSource, fragmentSource)
	defer program.Close()

	err = a.Run(func(*app.Frame) error {
		program.Use()
		quad.Draw()
		shader.Unbind()
		return nil
	})
	if err != nil {
		log.Fatalf("run: %v", err)
	}
}
