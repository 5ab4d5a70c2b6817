// Package shader wraps a compiled-and-linked GL shader program and its
// uniform-setting surface.
//
// Compile and link failures are logged, not returned: a Program always comes
// back usable enough to bind, which keeps every demo reaching its render loop
// even with a broken shader. Callers must not assume a constructed Program is
// actually renderable.
package shader

import (
	"log/slog"
	"os"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Program owns one linked GL program. Uniform locations are looked up by name
// and cached per program.
type Program struct {
	id        uint32
	locations map[string]int32
}

// current mirrors the context's current-program slot host-side so that a
// uniform write on an unbound program can be caught instead of silently
// landing on whichever program happens to be active.
var current uint32

// New compiles both stages and links them into one program. The transient
// stage objects are deleted once the program is linked.
func New(vertexSrc, fragmentSrc string) *Program {
	vs := compile(gl.VERTEX_SHADER, vertexSrc)
	fs := compile(gl.FRAGMENT_SHADER, fragmentSrc)

	id := gl.CreateProgram()
	gl.AttachShader(id, vs)
	gl.AttachShader(id, fs)
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		slog.Error("program link failed", "log", infoLog(id, gl.GetProgramiv, gl.GetProgramInfoLog))
	}

	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	return &Program{id: id, locations: make(map[string]int32)}
}

// Load builds a program from two whole-file shader sources. A file that
// cannot be read is logged and treated as empty source; the difference only
// shows up in the compile diagnostics.
func Load(vsPath, fsPath string) *Program {
	return New(readSource(vsPath), readSource(fsPath))
}

func readSource(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Error("could not read shader source", "path", path, "err", err)
		return ""
	}
	return string(data)
}

func compile(stage uint32, source string) uint32 {
	sh := gl.CreateShader(stage)

	src, free := gl.Strs(source + "\x00")
	gl.ShaderSource(sh, 1, src, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		slog.Error("shader compile failed",
			"stage", stageName(stage),
			"log", infoLog(sh, gl.GetShaderiv, gl.GetShaderInfoLog))
	}

	return sh
}

func stageName(stage uint32) string {
	if stage == gl.VERTEX_SHADER {
		return "vertex"
	}
	return "fragment"
}

func infoLog(object uint32, getiv func(uint32, uint32, *int32), getLog func(uint32, int32, *int32, *uint8)) string {
	var length int32
	getiv(object, gl.INFO_LOG_LENGTH, &length)
	if length == 0 {
		return ""
	}

	buf := strings.Repeat("\x00", int(length+1))
	getLog(object, length, nil, gl.Str(buf))

	return strings.TrimRight(buf, "\x00")
}

// Handle exposes the raw GL program name for callers that talk to the
// context directly instead of going through the typed setters.
func (p *Program) Handle() uint32 {
	return p.id
}

// Use makes this program the one used by subsequent draw calls.
func (p *Program) Use() {
	gl.UseProgram(p.id)
	current = p.id
}

// Unbind clears the context's current-program slot.
func Unbind() {
	gl.UseProgram(0)
	current = 0
}

// location resolves a uniform name. Writes on a program that is not the
// currently bound one are rejected with a warning; unknown names come back as
// the GL sentinel and the write drops silently inside the driver.
func (p *Program) location(name string) (int32, bool) {
	if p.id != current {
		slog.Warn("uniform write on unbound program", "uniform", name)
		return 0, false
	}

	loc, ok := p.locations[name]
	if !ok {
		loc = gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
		p.locations[name] = loc
	}
	return loc, true
}

func (p *Program) SetBool(name string, value bool) {
	var v int32
	if value {
		v = 1
	}
	if loc, ok := p.location(name); ok {
		gl.Uniform1i(loc, v)
	}
}

func (p *Program) SetInt(name string, value int32) {
	if loc, ok := p.location(name); ok {
		gl.Uniform1i(loc, value)
	}
}

func (p *Program) SetFloat(name string, value float32) {
	if loc, ok := p.location(name); ok {
		gl.Uniform1f(loc, value)
	}
}

func (p *Program) SetVec4(name string, value mgl32.Vec4) {
	if loc, ok := p.location(name); ok {
		gl.Uniform4f(loc, value.X(), value.Y(), value.Z(), value.W())
	}
}

func (p *Program) SetMat4(name string, value mgl32.Mat4) {
	if loc, ok := p.location(name); ok {
		gl.UniformMatrix4fv(loc, 1, false, &value[0])
	}
}

// Close releases the GL program, unbinding it first if it is still current.
func (p *Program) Close() {
	if current == p.id {
		Unbind()
	}
	gl.DeleteProgram(p.id)
	p.id = 0
}
