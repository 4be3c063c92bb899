package glw

import "github.com/go-gl/gl/v4.1-core/gl"

// Primitive is the topology used to assemble vertices when drawing.
type Primitive uint32

const (
	Points        Primitive = gl.POINTS
	Lines         Primitive = gl.LINES
	LineStrip     Primitive = gl.LINE_STRIP
	Triangles     Primitive = gl.TRIANGLES
	TriangleStrip Primitive = gl.TRIANGLE_STRIP
	TriangleFan   Primitive = gl.TRIANGLE_FAN
	// Patches feeds the tessellation stages; see SetPatchVertices.
	Patches Primitive = gl.PATCHES
)
