// Package geometry owns the GPU buffer objects behind each demo's fixed
// vertex data.
package geometry

import "github.com/go-gl/gl/v3.3-core/gl"

// Mesh bundles a vertex array with its vertex and index buffers and issues
// one indexed draw call per Draw.
type Mesh struct {
	vao   uint32
	vbo   uint32
	ibo   uint32
	count int32
}

// NewMesh uploads interleaved float32 vertices and uint32 indices. attribs
// lists the float component count of each attribute in layout-location order;
// the stride is derived from the sum.
func NewMesh(vertices []float32, indices []uint32, attribs ...int32) *Mesh {
	m := &Mesh{count: int32(len(indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	var stride int32
	for _, size := range attribs {
		stride += size * 4
	}

	var offset uintptr
	for i, size := range attribs {
		gl.VertexAttribPointerWithOffset(uint32(i), size, gl.FLOAT, false, stride, offset)
		gl.EnableVertexAttribArray(uint32(i))
		offset += uintptr(size) * 4
	}

	// The element buffer binding is captured by the vertex array, so it has
	// to happen before the vertex array is unbound.
	gl.GenBuffers(1, &m.ibo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return m
}

// Draw binds the vertex array, issues one indexed draw call and unbinds it
// again, leaving the context in a defined state for whatever runs next.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// Close releases the vertex array and both buffers.
func (m *Mesh) Close() {
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ibo)
}
