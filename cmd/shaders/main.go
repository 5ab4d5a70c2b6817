// A vertex-colored triangle that also tries to pulse a color uniform every
// frame. The shaders declare ourColor as a varying, not a uniform, so the
// lookup resolves to the not-found sentinel and the write drops silently -
// the triangle keeps its vertex colors.
package main

import (
	"log"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/AlexandruIca/LearnOpenGL/internal/anim"
	"github.com/AlexandruIca/LearnOpenGL/internal/app"
	"github.com/AlexandruIca/LearnOpenGL/internal/geometry"
	"github.com/AlexandruIca/LearnOpenGL/internal/shader"
)

const vertexSource = `
#version 330 core

layout(location = 0) in vec3 pos;
layout(location = 1) in vec3 color;

out vec3 ourColor;

void main() {
    gl_Position = vec4(pos.xyz, 1.0);
    ourColor = color;
}
`

const fragmentSource = `
#version 330 core

out vec4 fragColor;
in vec3 ourColor;

void main() {
    fragColor = vec4(ourColor, 1.0);
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

	program := shader.New(vertexSource, fragmentSource)
	defer program.Close()

	err = a.Run(func(f *app.Frame) error {
		program.Use()

		// Raw lookup and write, predating the typed setters the later
		// demos use.
		green := anim.Pulse(f.Elapsed)
		location := gl.GetUniformLocation(program.Handle(), gl.Str("ourColor\x00"))
		gl.Uniform4f(location, 0, green, 0, 1)

		triangle.Draw()
		shader.Unbind()
		return nil
	})
	if err != nil {
		log.Fatalf("run: %v", err)
	}
}
