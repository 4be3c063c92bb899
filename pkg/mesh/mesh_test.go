package mesh_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjkrol/magiebleue/pkg/mesh"
)

func TestVertexLayout(t *testing.T) {
	l := mesh.VertexLayout
	require.Len(t, l.Attributes, 3)
	assert.Equal(t, int32(32), l.Stride)
	assert.Equal(t, 8, l.FloatsPerVertex())
	assert.Equal(t, mesh.Attribute{Index: 0, Size: 3, Offset: 0}, l.Attributes[0])
	assert.Equal(t, mesh.Attribute{Index: 1, Size: 2, Offset: 12}, l.Attributes[1])
	assert.Equal(t, mesh.Attribute{Index: 2, Size: 3, Offset: 20}, l.Attributes[2])
}

func TestTexturedPointLayout(t *testing.T) {
	l := mesh.TexturedPointLayout
	require.Len(t, l.Attributes, 2)
	assert.Equal(t, int32(20), l.Stride)
	assert.Equal(t, 12, l.Attributes[1].Offset)
}

func TestVertexAccessors(t *testing.T) {
	v := mesh.NewVertex(mgl32.Vec3{1, 2, 3}, mgl32.Vec2{4, 5}, mgl32.Vec3{6, 7, 8})
	assert.Equal(t, mesh.Vertex{1, 2, 3, 4, 5, 6, 7, 8}, v)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, v.Position())
	assert.Equal(t, mgl32.Vec2{4, 5}, v.UV())
	assert.Equal(t, mgl32.Vec3{6, 7, 8}, v.Normal())
}

func TestGenPatches(t *testing.T) {
	origin := mgl32.Vec3{-128, 0, -128}
	patches := mesh.GenPatches(nil, 64, 256, origin)
	require.Len(t, patches, 64*64*mesh.PatchVertices)

	first := patches[:4]
	assert.Equal(t, mgl32.Vec3{-128, 0, -128}, first[0].Position())
	assert.Equal(t, mgl32.Vec3{-124, 0, -128}, first[1].Position())
	assert.Equal(t, mgl32.Vec3{-128, 0, -124}, first[2].Position())
	assert.Equal(t, mgl32.Vec3{-124, 0, -124}, first[3].Position())
	assert.Equal(t, mgl32.Vec2{0, 0}, first[0].UV())
	assert.Equal(t, mgl32.Vec2{1.0 / 64, 1.0 / 64}, first[3].UV())

	last := patches[len(patches)-1]
	assert.Equal(t, mgl32.Vec3{128, 0, 128}, last.Position())
	assert.Equal(t, mgl32.Vec2{1, 1}, last.UV())
	for _, v := range patches {
		assert.Equal(t, mgl32.Vec3{0, 1, 0}, v.Normal())
	}
}

func TestGenPatchesAppends(t *testing.T) {
	dst := []mesh.Vertex{{9}}
	dst = mesh.GenPatches(dst, 2, 1, mgl32.Vec3{})
	assert.Len(t, dst, 1+2*2*4)
	assert.Equal(t, float32(9), dst[0][0])

	assert.Len(t, mesh.GenPatches(nil, 0, 10, mgl32.Vec3{}), 0)
}

func TestPlaneQuad(t *testing.T) {
	q := mesh.PlaneQuad(5)
	assert.Equal(t, mesh.Vertex{-5, 0, -5, 0, 0, 0, 1, 0}, q[0])
	assert.Equal(t, mesh.Vertex{5, 0, -5, 1, 0, 0, 1, 0}, q[1])
	assert.Equal(t, mesh.Vertex{5, 0, 5, 1, 1, 0, 1, 0}, q[2])
	assert.Equal(t, mesh.Vertex{-5, 0, 5, 0, 1, 0, 1, 0}, q[3])
}

func TestCube(t *testing.T) {
	c := mesh.Cube()
	require.Len(t, c, 36)
	for _, p := range c {
		for axis := 0; axis < 3; axis++ {
			assert.InDelta(t, 0.5, abs(p[axis]), 1e-6)
		}
	}
	c[0][0] = 42
	assert.NotEqual(t, float32(42), mesh.Cube()[0][0])
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func TestBounds(t *testing.T) {
	lo, hi := mesh.Bounds(nil)
	assert.Equal(t, mgl32.Vec3{}, lo)
	assert.Equal(t, mgl32.Vec3{}, hi)

	vertices := []mesh.Vertex{
		mesh.NewVertex(mgl32.Vec3{1, -2, 3}, mgl32.Vec2{}, mgl32.Vec3{}),
		mesh.NewVertex(mgl32.Vec3{-1, 4, 0}, mgl32.Vec2{}, mgl32.Vec3{}),
		mesh.NewVertex(mgl32.Vec3{0, 0, 5}, mgl32.Vec2{}, mgl32.Vec3{}),
	}
	lo, hi = mesh.Bounds(vertices)
	assert.Equal(t, mgl32.Vec3{-1, -2, 0}, lo)
	assert.Equal(t, mgl32.Vec3{1, 4, 5}, hi)
}

func TestFitMatrix(t *testing.T) {
	lo, hi := mgl32.Vec3{0, 0, 0}, mgl32.Vec3{4, 2, 2}
	m := mesh.FitMatrix(lo, hi, 2)

	p := m.Mul4x1(mgl32.Vec4{4, 2, 2, 1})
	assert.InDelta(t, 1, p[0], 1e-6)
	assert.InDelta(t, 0.5, p[1], 1e-6)
	assert.InDelta(t, 0.5, p[2], 1e-6)

	c := m.Mul4x1(mgl32.Vec4{2, 1, 1, 1})
	assert.InDelta(t, 0, c.Vec3().Len(), 1e-6)
}

func TestFitMatrixDegenerate(t *testing.T) {
	p := mgl32.Vec3{3, 3, 3}
	m := mesh.FitMatrix(p, p, 2)
	out := m.Mul4x1(p.Vec4(1))
	assert.InDelta(t, 0, out.Vec3().Len(), 1e-6)
}
