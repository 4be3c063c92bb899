package glw

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"
)

// BufferType is a buffer binding target.
type BufferType uint32

const (
	// Array holds vertex data.
	Array BufferType = gl.ARRAY_BUFFER
	// ElementArray holds indices into the vertex data.
	ElementArray BufferType = gl.ELEMENT_ARRAY_BUFFER
)

// BufferUsage hints how the buffer contents are written and read.
// See https://registry.khronos.org/OpenGL-Refpages/gl4/html/glBufferData.xhtml
type BufferUsage uint32

const (
	// StaticDraw is set once and drawn many times.
	StaticDraw BufferUsage = gl.STATIC_DRAW
	// DynamicDraw is changed often and drawn many times.
	DynamicDraw BufferUsage = gl.DYNAMIC_DRAW
	// StreamDraw is set once and drawn at most a few times.
	StreamDraw  BufferUsage = gl.STREAM_DRAW
	StaticRead  BufferUsage = gl.STATIC_READ
	DynamicRead BufferUsage = gl.DYNAMIC_READ
	StreamRead  BufferUsage = gl.STREAM_READ
	StaticCopy  BufferUsage = gl.STATIC_COPY
	DynamicCopy BufferUsage = gl.DYNAMIC_COPY
	StreamCopy  BufferUsage = gl.STREAM_COPY
)

// Buffer wraps a generic buffer object.
// https://www.khronos.org/opengl/wiki/Buffer_Object
type Buffer struct {
	ID uint32
}

func NewBuffer() (*Buffer, error) {
	var id uint32
	gl.GenBuffers(1, &id)
	if id == 0 {
		return nil, errors.Wrap(ErrZeroHandle, "buffer")
	}
	return &Buffer{ID: id}, nil
}

// Bind binds the buffer to the given target.
func (b *Buffer) Bind(ty BufferType) {
	gl.BindBuffer(uint32(ty), b.ID)
}

func (b *Buffer) Delete() {
	if b == nil || b.ID == 0 {
		return
	}
	gl.DeleteBuffers(1, &b.ID)
	b.ID = 0
}

// ClearBufferBinding unbinds whatever buffer is bound to ty.
func ClearBufferBinding(ty BufferType) {
	gl.BindBuffer(uint32(ty), 0)
}

// BufferData uploads data into the buffer bound to ty.
func BufferData[T any](ty BufferType, data []T, usage BufferUsage) {
	if len(data) == 0 {
		gl.BufferData(uint32(ty), 0, nil, uint32(usage))
		return
	}
	size := len(data) * int(unsafe.Sizeof(data[0]))
	gl.BufferData(uint32(ty), size, gl.Ptr(data), uint32(usage))
}
