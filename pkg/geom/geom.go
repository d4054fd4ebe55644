// Package geom holds the small amount of vector math the mesh kernels need.
// Vectors are sdfx v3.Vec values so they can be handed to the sdfx renderer
// and STL writer without conversion.
package geom

import (
	"errors"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// V3 is a 3-component float64 vector. Y is the stacking axis.
type V3 = v3.Vec

// ErrZeroLength is returned when a vector with no direction is normalized.
var ErrZeroLength = errors.New("zero-length vector")

var (
	Up   = V3{X: 0, Y: 1, Z: 0}
	Down = V3{X: 0, Y: -1, Z: 0}
)

// Sub returns a - b.
func Sub(a, b V3) V3 {
	return a.Sub(b)
}

// Cross returns a × b.
func Cross(a, b V3) V3 {
	return a.Cross(b)
}

// Normalize scales v to unit length. A zero, NaN or infinite vector is an
// error rather than a NaN vector. v is first divided by its largest
// component so finite inputs of any magnitude do not overflow.
func Normalize(v V3) (V3, error) {
	s := maxAbs(v)
	if s == 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return V3{}, ErrZeroLength
	}
	u := V3{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
	l := u.Length()
	return V3{X: u.X / l, Y: u.Y / l, Z: u.Z / l}, nil
}

// TriangleNormal returns the unit normal of (a, b, c) computed as
// (c - a) × (b - a). Collinear or coincident points yield ErrZeroLength.
// The edges are rescaled before the cross product, which keeps large
// coordinates from overflowing.
func TriangleNormal(a, b, c V3) (V3, error) {
	return Normalize(Cross(rescale(Sub(c, a)), rescale(Sub(b, a))))
}

func maxAbs(v V3) float64 {
	return math.Max(math.Abs(v.X), math.Max(math.Abs(v.Y), math.Abs(v.Z)))
}

// rescale divides v by its largest component. Zero and non-finite vectors
// are returned unchanged for Normalize to reject.
func rescale(v V3) V3 {
	s := maxAbs(v)
	if s == 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return v
	}
	return V3{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// OnCircle returns the point at angle theta on the horizontal circle of the
// given radius at height y: (cos θ·r, y, sin θ·r).
func OnCircle(radius, theta, y float64) V3 {
	return V3{X: math.Cos(theta) * radius, Y: y, Z: math.Sin(theta) * radius}
}
