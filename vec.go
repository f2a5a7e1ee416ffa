package ndgeom

import (
	"image"
	"math"
	"slices"

	"golang.org/x/image/math/fixed"
)

// A Vec is a vector of a fixed number of components. The number of
// dimensions is set when the vector is created and operations that
// combine two vectors panic if their dimensions differ.
//
// A Vec is a slice, so a plain assignment aliases the same
// components. The arithmetic methods never modify their receiver;
// they return a fresh vector. Use the package-level *Assign functions
// to modify one instead.
type Vec[T Scalar] []T

// V is shorthand for Vec[T]{vals...}.
func V[T Scalar](vals ...T) Vec[T] {
	return Vec[T](vals)
}

// Zero returns the n-dimensional zero vector.
func Zero[T Scalar](n int) Vec[T] {
	return make(Vec[T], n)
}

// Conv converts a Vec[In] to a Vec[Out] with possible loss of
// precision.
func Conv[Out Scalar, In Scalar](v Vec[In]) Vec[Out] {
	r := make(Vec[Out], len(v))
	for i, d := range v {
		r[i] = Out(d)
	}
	return r
}

// FromImagePoint returns the 2-D vector equivalent to p.
func FromImagePoint(p image.Point) Vec[int] {
	return V(p.X, p.Y)
}

// FromFixedPoint returns the 2-D vector equivalent to the 26.6
// fixed-point p.
func FromFixedPoint(p fixed.Point26_6) Vec[float64] {
	return V(float64(p.X)/64, float64(p.Y)/64)
}

func (v Vec[T]) Dims() int { return len(v) }

func (v Vec[T]) Dim(i int) T { return v[i] }

func (v Vec[T]) SetDim(i int, val T) { v[i] = val }

func (v Vec[T]) Clone() Vec[T] {
	return slices.Clone(v)
}

func (v Vec[T]) Eq(u Vec[T]) bool {
	return slices.Equal(v, u)
}

func (v Vec[T]) IsZero() bool {
	for _, d := range v {
		if d != 0 {
			return false
		}
	}
	return true
}

// Add returns v + u.
func (v Vec[T]) Add(u Vec[T]) Vec[T] {
	r := v.Clone()
	AddAssign[T](r, u)
	return r
}

// Sub returns v - u.
func (v Vec[T]) Sub(u Vec[T]) Vec[T] {
	r := v.Clone()
	SubAssign[T](r, u)
	return r
}

// Mul returns v scaled by k.
func (v Vec[T]) Mul(k T) Vec[T] {
	r := v.Clone()
	MulAssign[T](r, k)
	return r
}

// Div returns v scaled by 1/k. A zero k is not guarded against; the
// result follows T's own division semantics.
func (v Vec[T]) Div(k T) Vec[T] {
	r := v.Clone()
	DivAssign[T](r, k)
	return r
}

// Mul2 returns the componentwise product of v and u.
func (v Vec[T]) Mul2(u Vec[T]) Vec[T] {
	r := v.Clone()
	Mul2Assign[T](r, u)
	return r
}

// Div2 returns the componentwise quotient of v and u.
func (v Vec[T]) Div2(u Vec[T]) Vec[T] {
	r := v.Clone()
	Div2Assign[T](r, u)
	return r
}

// Lerp returns the linear interpolation between v and u at t. t is
// not clamped; values outside [0, 1] extrapolate.
func (v Vec[T]) Lerp(u Vec[T], t T) Vec[T] {
	r := v.Clone()
	LerpAssign[T](r, u, t)
	return r
}

// Neg returns v with every component negated.
func Neg[T SignedScalar](v Vec[T]) Vec[T] {
	r := v.Clone()
	NegAssign[T](r)
	return r
}

// Dot returns the dot product of v and u.
func (v Vec[T]) Dot(u Vec[T]) T {
	return Dot[T](v, u)
}

// SquaredMag returns the squared magnitude of v.
func (v Vec[T]) SquaredMag() T {
	return SquaredMag[T](v)
}

// SquaredDist returns the squared distance between v and u.
func (v Vec[T]) SquaredDist(u Vec[T]) T {
	return SquaredDist[T](v, u)
}

// MinDim returns the minimum component of v.
func (v Vec[T]) MinDim() T {
	return MinDim[T](v)
}

// MaxDim returns the maximum component of v.
func (v Vec[T]) MaxDim() T {
	return MaxDim[T](v)
}

// Min returns the componentwise minimum of points.
func Min[T Scalar](points ...Vec[T]) Vec[T] {
	r := points[0].Clone()
	for _, p := range points[1:] {
		sameDims[T](r, p)
		for i, d := range p {
			if d < r[i] {
				r[i] = d
			}
		}
	}
	return r
}

// Max returns the componentwise maximum of points.
func Max[T Scalar](points ...Vec[T]) Vec[T] {
	r := points[0].Clone()
	for _, p := range points[1:] {
		sameDims[T](r, p)
		for i, d := range p {
			if d > r[i] {
				r[i] = d
			}
		}
	}
	return r
}

// ImagePoint converts a 2-D vector to an image.Point with possible
// loss of precision.
func (v Vec[T]) ImagePoint() image.Point {
	return image.Pt(int(v[0]), int(v[1]))
}

// FixedPoint converts a 2-D vector to a 26.6 fixed-point point,
// rounding to the nearest representable value.
func (v Vec[T]) FixedPoint() fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(float64(v[0]) * 64)),
		Y: fixed.Int26_6(math.Round(float64(v[1]) * 64)),
	}
}
