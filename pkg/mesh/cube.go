package mesh

// Cube returns a unit cube centred on the origin as 36 textured points,
// two triangles per face.
func Cube() []TexturedPoint {
	out := make([]TexturedPoint, len(cube))
	copy(out, cube[:])
	return out
}

var cube = [36]TexturedPoint{
	{-0.5, -0.5, -0.5, 0.0, 0.0},
	{0.5, -0.5, -0.5, 1.0, 0.0},
	{0.5, 0.5, -0.5, 1.0, 1.0},
	{0.5, 0.5, -0.5, 1.0, 1.0},
	{-0.5, 0.5, -0.5, 0.0, 1.0},
	{-0.5, -0.5, -0.5, 0.0, 0.0},

	{-0.5, -0.5, 0.5, 0.0, 0.0},
	{0.5, -0.5, 0.5, 1.0, 0.0},
	{0.5, 0.5, 0.5, 1.0, 1.0},
	{0.5, 0.5, 0.5, 1.0, 1.0},
	{-0.5, 0.5, 0.5, 0.0, 1.0},
	{-0.5, -0.5, 0.5, 0.0, 0.0},

	{-0.5, 0.5, 0.5, 1.0, 0.0},
	{-0.5, 0.5, -0.5, 1.0, 1.0},
	{-0.5, -0.5, -0.5, 0.0, 1.0},
	{-0.5, -0.5, -0.5, 0.0, 1.0},
	{-0.5, -0.5, 0.5, 0.0, 0.0},
	{-0.5, 0.5, 0.5, 1.0, 0.0},

	{0.5, 0.5, 0.5, 1.0, 0.0},
	{0.5, 0.5, -0.5, 1.0, 1.0},
	{0.5, -0.5, -0.5, 0.0, 1.0},
	{0.5, -0.5, -0.5, 0.0, 1.0},
	{0.5, -0.5, 0.5, 0.0, 0.0},
	{0.5, 0.5, 0.5, 1.0, 0.0},

	{-0.5, -0.5, -0.5, 0.0, 1.0},
	{0.5, -0.5, -0.5, 1.0, 1.0},
	{0.5, -0.5, 0.5, 1.0, 0.0},
	{0.5, -0.5, 0.5, 1.0, 0.0},
	{-0.5, -0.5, 0.5, 0.0, 0.0},
	{-0.5, -0.5, -0.5, 0.0, 1.0},

	{-0.5, 0.5, -0.5, 0.0, 1.0},
	{0.5, 0.5, -0.5, 1.0, 1.0},
	{0.5, 0.5, 0.5, 1.0, 0.0},
	{0.5, 0.5, 0.5, 1.0, 0.0},
	{-0.5, 0.5, 0.5, 0.0, 0.0},
	{-0.5, 0.5, -0.5, 0.0, 1.0},
}
