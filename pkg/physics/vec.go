package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// --- 2D vector ---

// Vec2 is a value-type 2D vector (pixels, pixels/s, pixels/s²).
// Add, Sub and Scale come from r2.Vec.
type Vec2 = r2.Vec

// V builds a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// LenSq returns the squared length of v.
func LenSq(v Vec2) float64 {
	return r2.Norm2(v)
}

// Len returns the length of v.
func Len(v Vec2) float64 {
	return r2.Norm(v)
}

func roundVec(v Vec2) Vec2 {
	return Vec2{X: math.Round(v.X), Y: math.Round(v.Y)}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
