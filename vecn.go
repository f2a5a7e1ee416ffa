package ndgeom

import "fmt"

// VecN is the capability that a fixed-arity vector representation
// provides. Vec satisfies it, and client code can satisfy it with its
// own point types to use the package-level operations directly.
//
// Mutating methods are expected to write through to the underlying
// components, so implementations backed by by-value storage should
// use pointer receivers.
type VecN[T Scalar] interface {
	Dims() int
	Dim(i int) T
	SetDim(i int, val T)
}

// isNaN reports whether x is a NaN without requiring math.IsNaN, the
// same way the cmp package does. It is always false for integers.
func isNaN[T Scalar](x T) bool {
	return x != x
}

func sameDims[T Scalar](v, u VecN[T]) {
	if v.Dims() != u.Dims() {
		panic(fmt.Sprintf("ndgeom: dimension mismatch: %d != %d", v.Dims(), u.Dims()))
	}
}

// AddAssign adds u to v in place.
func AddAssign[T Scalar](v, u VecN[T]) {
	sameDims(v, u)
	for i := 0; i < v.Dims(); i++ {
		v.SetDim(i, v.Dim(i)+u.Dim(i))
	}
}

// SubAssign subtracts u from v in place.
func SubAssign[T Scalar](v, u VecN[T]) {
	sameDims(v, u)
	for i := 0; i < v.Dims(); i++ {
		v.SetDim(i, v.Dim(i)-u.Dim(i))
	}
}

// MulAssign scales every component of v by k in place.
func MulAssign[T Scalar](v VecN[T], k T) {
	for i := 0; i < v.Dims(); i++ {
		v.SetDim(i, v.Dim(i)*k)
	}
}

// DivAssign divides every component of v by k in place. A zero k is
// not guarded against; the result follows T's own division semantics.
func DivAssign[T Scalar](v VecN[T], k T) {
	for i := 0; i < v.Dims(); i++ {
		v.SetDim(i, v.Dim(i)/k)
	}
}

// Mul2Assign multiplies v by u componentwise in place.
func Mul2Assign[T Scalar](v, u VecN[T]) {
	sameDims(v, u)
	for i := 0; i < v.Dims(); i++ {
		v.SetDim(i, v.Dim(i)*u.Dim(i))
	}
}

// Div2Assign divides v by u componentwise in place.
func Div2Assign[T Scalar](v, u VecN[T]) {
	sameDims(v, u)
	for i := 0; i < v.Dims(); i++ {
		v.SetDim(i, v.Dim(i)/u.Dim(i))
	}
}

// NegAssign negates every component of v in place.
func NegAssign[T SignedScalar](v VecN[T]) {
	for i := 0; i < v.Dims(); i++ {
		v.SetDim(i, -v.Dim(i))
	}
}

// LerpAssign linearly interpolates v towards u by t in place. t is
// not clamped; values outside [0, 1] extrapolate.
func LerpAssign[T Scalar](v, u VecN[T], t T) {
	sameDims(v, u)
	nt := 1 - t
	for i := 0; i < v.Dims(); i++ {
		v.SetDim(i, nt*v.Dim(i)+t*u.Dim(i))
	}
}

// Dot returns the dot product of v and u.
func Dot[T Scalar](v, u VecN[T]) T {
	sameDims(v, u)
	var sum T
	for i := 0; i < v.Dims(); i++ {
		sum += v.Dim(i) * u.Dim(i)
	}
	return sum
}

// SquaredMag returns the squared magnitude of v. It is cheaper than
// Mag and sufficient for comparing lengths.
func SquaredMag[T Scalar](v VecN[T]) T {
	var sum T
	for i := 0; i < v.Dims(); i++ {
		d := v.Dim(i)
		sum += d * d
	}
	return sum
}

// SquaredDist returns the squared distance between v and u.
func SquaredDist[T Scalar](v, u VecN[T]) T {
	sameDims(v, u)
	var sum T
	for i := 0; i < v.Dims(); i++ {
		d := v.Dim(i) - u.Dim(i)
		sum += d * d
	}
	return sum
}

// MinDim returns the minimum component of v. It panics if v has no
// dimensions or if a comparison is undefined, such as with a NaN
// component.
func MinDim[T Scalar](v VecN[T]) T {
	if v.Dims() == 0 {
		panic("ndgeom: empty vectors have no dimensions")
	}
	m := v.Dim(0)
	if isNaN(m) {
		panic("ndgeom: dimension comparison failed")
	}
	for i := 1; i < v.Dims(); i++ {
		d := v.Dim(i)
		if isNaN(d) {
			panic("ndgeom: dimension comparison failed")
		}
		if d < m {
			m = d
		}
	}
	return m
}

// MaxDim returns the maximum component of v. It panics if v has no
// dimensions or if a comparison is undefined, such as with a NaN
// component.
func MaxDim[T Scalar](v VecN[T]) T {
	if v.Dims() == 0 {
		panic("ndgeom: empty vectors have no dimensions")
	}
	m := v.Dim(0)
	if isNaN(m) {
		panic("ndgeom: dimension comparison failed")
	}
	for i := 1; i < v.Dims(); i++ {
		d := v.Dim(i)
		if isNaN(d) {
			panic("ndgeom: dimension comparison failed")
		}
		if d > m {
			m = d
		}
	}
	return m
}
