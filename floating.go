package ndgeom

import "math"

// Mag returns the magnitude of v.
func Mag[T Float](v VecN[T]) T {
	return T(math.Sqrt(float64(SquaredMag(v))))
}

// Dist returns the distance between v and u.
func Dist[T Float](v, u VecN[T]) T {
	return T(math.Sqrt(float64(SquaredDist(v, u))))
}

// Unit returns the unit vector pointing in the same direction as v.
// If the magnitude of v is exactly zero, Unit returns the zero vector
// rather than a non-finite result.
func Unit[T Float](v Vec[T]) Vec[T] {
	m := Mag[T](v)
	if m == 0 {
		return Zero[T](len(v))
	}
	return v.Div(m)
}
