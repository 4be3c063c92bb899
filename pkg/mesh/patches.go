package mesh

import "github.com/go-gl/mathgl/mgl32"

// PatchVertices is the number of control points per heightmap patch.
const PatchVertices = 4

var up = mgl32.Vec3{0, 1, 0}

// GenPatches appends resolution*resolution quad patches to dst. The patches
// tile a size x size square on the XZ plane starting at origin. Each patch
// contributes PatchVertices vertices ordered (i,j) (i+1,j) (i,j+1) (i+1,j+1),
// texture coordinates span [0,1] over the whole grid and normals point up.
func GenPatches(dst []Vertex, resolution int, size float32, origin mgl32.Vec3) []Vertex {
	if resolution <= 0 {
		return dst
	}
	step := size / float32(resolution)
	rez := float32(resolution)
	corner := func(i, j int) Vertex {
		pos := origin.Add(mgl32.Vec3{float32(i) * step, 0, float32(j) * step})
		uv := mgl32.Vec2{float32(i) / rez, float32(j) / rez}
		return NewVertex(pos, uv, up)
	}
	for i := 0; i < resolution; i++ {
		for j := 0; j < resolution; j++ {
			dst = append(dst,
				corner(i, j),
				corner(i+1, j),
				corner(i, j+1),
				corner(i+1, j+1),
			)
		}
	}
	return dst
}

// PlaneQuad returns a square on the XZ plane centred on the origin, wound for
// drawing as a triangle fan.
func PlaneQuad(half float32) [4]Vertex {
	return [4]Vertex{
		NewVertex(mgl32.Vec3{-half, 0, -half}, mgl32.Vec2{0, 0}, up),
		NewVertex(mgl32.Vec3{half, 0, -half}, mgl32.Vec2{1, 0}, up),
		NewVertex(mgl32.Vec3{half, 0, half}, mgl32.Vec2{1, 1}, up),
		NewVertex(mgl32.Vec3{-half, 0, half}, mgl32.Vec2{0, 1}, up),
	}
}
