package mesh

import "github.com/go-gl/mathgl/mgl32"

// Vertex is one interleaved vertex: position (3), texture coordinates (2)
// and normal (3).
type Vertex [8]float32

// TexturedPoint is a position (3) followed by texture coordinates (2).
type TexturedPoint [5]float32

func NewVertex(position mgl32.Vec3, uv mgl32.Vec2, normal mgl32.Vec3) Vertex {
	return Vertex{
		position[0], position[1], position[2],
		uv[0], uv[1],
		normal[0], normal[1], normal[2],
	}
}

func (v Vertex) Position() mgl32.Vec3 {
	return mgl32.Vec3{v[0], v[1], v[2]}
}

func (v Vertex) UV() mgl32.Vec2 {
	return mgl32.Vec2{v[3], v[4]}
}

func (v Vertex) Normal() mgl32.Vec3 {
	return mgl32.Vec3{v[5], v[6], v[7]}
}
