// Package noisemap samples 2D OpenSimplex noise onto square grids that can be
// uploaded as single-channel float textures.
package noisemap

import (
	"math"
	"time"

	"github.com/ojrac/opensimplex-go"
)

// Offset is added to every raw noise sample.
const Offset = 0.5

// Bounds is the rectangle of noise space covered by a map.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// DefaultBounds covers [0,10] on both axes.
var DefaultBounds = Bounds{MinX: 0, MaxX: 10, MinY: 0, MaxY: 10}

// PlaneMap samples size*size noise values in row-major order (y outer, x
// inner). Sample (x, y) is taken at MinX + x*(MaxX-MinX)/size and likewise
// for y. The same seed always yields the same map.
func PlaneMap(size int, seed int64, bounds Bounds) []float32 {
	if size <= 0 {
		return nil
	}
	noise := opensimplex.New(seed)
	stepX := (bounds.MaxX - bounds.MinX) / float64(size)
	stepY := (bounds.MaxY - bounds.MinY) / float64(size)

	out := make([]float32, size*size)
	for y := 0; y < size; y++ {
		py := bounds.MinY + stepY*float64(y)
		for x := 0; x < size; x++ {
			px := bounds.MinX + stepX*float64(x)
			out[y*size+x] = float32(noise.Eval2(px, py) + Offset)
		}
	}
	return out
}

// MinMax reports the smallest and largest value; both are zero for an empty
// slice.
func MinMax(values []float32) (float32, float32) {
	if len(values) == 0 {
		return 0, 0
	}
	lo := float32(math.MaxFloat32)
	hi := float32(-math.MaxFloat32)
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}

// TimeSeed derives a seed from the sub-second part of the current time.
func TimeSeed() int64 {
	return int64(time.Now().Nanosecond())
}
