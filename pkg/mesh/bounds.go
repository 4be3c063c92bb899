package mesh

import "github.com/go-gl/mathgl/mgl32"

// Bounds returns the axis aligned box enclosing the positions of vertices.
// Both corners are zero for an empty slice.
func Bounds(vertices []Vertex) (lo, hi mgl32.Vec3) {
	if len(vertices) == 0 {
		return lo, hi
	}
	lo = vertices[0].Position()
	hi = lo
	for _, v := range vertices[1:] {
		p := v.Position()
		for i := range p {
			lo[i] = min(lo[i], p[i])
			hi[i] = max(hi[i], p[i])
		}
	}
	return lo, hi
}

// FitMatrix scales and translates the box [lo, hi] so it is centred on the
// origin with its largest side equal to size.
func FitMatrix(lo, hi mgl32.Vec3, size float32) mgl32.Mat4 {
	extent := hi.Sub(lo)
	side := max(extent[0], extent[1], extent[2])
	if side == 0 {
		return mgl32.Translate3D(-lo[0], -lo[1], -lo[2])
	}
	centre := lo.Add(hi).Mul(0.5)
	s := size / side
	return mgl32.Scale3D(s, s, s).Mul4(mgl32.Translate3D(-centre[0], -centre[1], -centre[2]))
}
