package glw

import (
	"image/color"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/kjkrol/magiebleue/pkg/logging"
)

// ClearMask selects which buffers Clear resets.
type ClearMask uint32

const (
	ColorBuffer   ClearMask = gl.COLOR_BUFFER_BIT
	DepthBuffer   ClearMask = gl.DEPTH_BUFFER_BIT
	StencilBuffer ClearMask = gl.STENCIL_BUFFER_BIT
)

// Capability is a server-side GL capability toggled with Enable/Disable.
type Capability uint32

const (
	DepthTest Capability = gl.DEPTH_TEST
	CullFace  Capability = gl.CULL_FACE
	Blend     Capability = gl.BLEND
)

// PolygonMode is how polygons are rasterised.
type PolygonMode uint32

const (
	// Point renders only vertices.
	Point PolygonMode = gl.POINT
	// Line renders only edges.
	Line PolygonMode = gl.LINE
	// Fill renders filled polygons.
	Fill PolygonMode = gl.FILL
)

func SetClearColor(c mgl32.Vec4) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
}

// ColorVec converts c to normalised RGBA floats.
func ColorVec(c color.Color) mgl32.Vec4 {
	if c == nil {
		return mgl32.Vec4{}
	}
	r, g, b, a := c.RGBA()
	const inv = 1.0 / 65535.0
	return mgl32.Vec4{
		float32(r) * inv,
		float32(g) * inv,
		float32(b) * inv,
		float32(a) * inv,
	}
}

func Clear(mask ClearMask) {
	gl.Clear(uint32(mask))
}

func Enable(c Capability) {
	gl.Enable(uint32(c))
}

func Disable(c Capability) {
	gl.Disable(uint32(c))
}

// Viewport sets the viewport to the whole framebuffer of the given size.
func Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// SetPolygonMode applies mode to front and back faces.
func SetPolygonMode(mode PolygonMode) {
	gl.PolygonMode(gl.FRONT_AND_BACK, uint32(mode))
}

// SetPatchVertices sets the number of control points per patch.
func SetPatchVertices(n int) {
	gl.PatchParameteri(gl.PATCH_VERTICES, int32(n))
}

// CheckErrors drains the GL error queue, logging every code with context.
// It returns the codes seen, oldest first.
func CheckErrors(context string) []uint32 {
	if context == "" {
		context = "no context"
	}
	var codes []uint32
	for {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			return codes
		}
		logging.Logger().Error("GL error", "context", context, "code", code, "name", errorName(code))
		codes = append(codes, code)
	}
}

func errorName(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "OUT_OF_MEMORY"
	case gl.STACK_OVERFLOW:
		return "STACK_OVERFLOW"
	case gl.STACK_UNDERFLOW:
		return "STACK_UNDERFLOW"
	default:
		return "UNKNOWN"
	}
}
