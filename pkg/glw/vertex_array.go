package glw

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"

	"github.com/kjkrol/magiebleue/pkg/mesh"
)

// VertexArray wraps a vertex array object together with the vertex buffer
// attached to it.
// https://www.khronos.org/opengl/wiki/Vertex_Specification#Vertex_Array_Object
type VertexArray struct {
	ID     uint32
	vbo    *Buffer
	count  int32
	layout mesh.Layout
}

func NewVertexArray() (*VertexArray, error) {
	var id uint32
	gl.GenVertexArrays(1, &id)
	if id == 0 {
		return nil, errors.Wrap(ErrZeroHandle, "vertex array")
	}
	return &VertexArray{ID: id}, nil
}

// Bind makes this the current vertex array.
func (va *VertexArray) Bind() {
	gl.BindVertexArray(va.ID)
}

// ClearVertexArrayBinding unbinds the current vertex array.
func ClearVertexArrayBinding() {
	gl.BindVertexArray(0)
}

// AttachVertices uploads interleaved position/uv/normal vertices and enables
// the three attributes of mesh.VertexLayout.
func (va *VertexArray) AttachVertices(vertices []mesh.Vertex) error {
	return attach(va, vertices, mesh.VertexLayout)
}

// AttachTexturedPoints uploads position/uv vertices laid out as
// mesh.TexturedPointLayout.
func (va *VertexArray) AttachTexturedPoints(points []mesh.TexturedPoint) error {
	return attach(va, points, mesh.TexturedPointLayout)
}

func attach[T any](va *VertexArray, data []T, layout mesh.Layout) error {
	if va.vbo == nil {
		vbo, err := NewBuffer()
		if err != nil {
			return errors.Wrap(err, "attach vertices")
		}
		va.vbo = vbo
	}
	va.Bind()
	va.vbo.Bind(Array)
	BufferData(Array, data, StaticDraw)
	ApplyLayout(layout)
	ClearVertexArrayBinding()
	ClearBufferBinding(Array)

	va.count = int32(len(data))
	va.layout = layout
	return nil
}

// ApplyLayout points and enables every attribute of layout for the buffer
// bound to Array in the current vertex array.
func ApplyLayout(layout mesh.Layout) {
	for _, attr := range layout.Attributes {
		gl.VertexAttribPointer(attr.Index, attr.Size, gl.FLOAT, false, layout.Stride, gl.PtrOffset(attr.Offset))
		gl.EnableVertexAttribArray(attr.Index)
	}
}

// Count is the number of vertices attached.
func (va *VertexArray) Count() int32 {
	return va.count
}

func (va *VertexArray) Layout() mesh.Layout {
	return va.layout
}

// Draw binds the vertex array and draws all attached vertices.
func (va *VertexArray) Draw(mode Primitive) {
	va.DrawRange(mode, 0, va.count)
}

func (va *VertexArray) DrawRange(mode Primitive, first, count int32) {
	if count <= 0 {
		return
	}
	va.Bind()
	gl.DrawArrays(uint32(mode), first, count)
}

// Delete frees the vertex array and its vertex buffer.
func (va *VertexArray) Delete() {
	if va == nil {
		return
	}
	va.vbo.Delete()
	va.vbo = nil
	if va.ID != 0 {
		gl.DeleteVertexArrays(1, &va.ID)
		va.ID = 0
	}
	va.count = 0
}
