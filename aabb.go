package ndgeom

import (
	"image"
	"iter"
	"slices"

	"golang.org/x/image/math/fixed"
)

// BoxN is the capability that an axis-aligned bounding box
// representation provides: per-dimension access to an origin and a
// size. AABB and FlatAABB both satisfy it.
//
// Sizes are conventionally non-negative but this is not enforced; a
// negative size simply inverts containment along that axis. Canon
// normalizes one.
type BoxN[T Scalar] interface {
	Dims() int
	OriginDim(i int) T
	SetOriginDim(i int, val T)
	SizeDim(i int) T
	SetSizeDim(i int, val T)
}

// EndDim returns origin + size along dimension i of b.
func EndDim[T Scalar](b BoxN[T], i int) T {
	return b.OriginDim(i) + b.SizeDim(i)
}

// CenterDim returns the midpoint along dimension i of b.
func CenterDim[T Scalar](b BoxN[T], i int) T {
	return b.OriginDim(i) + b.SizeDim(i)/2
}

// Center returns the point at the middle of b.
func Center[T Scalar](b BoxN[T]) Vec[T] {
	v := Zero[T](b.Dims())
	for i := range v {
		v[i] = CenterDim(b, i)
	}
	return v
}

// End returns the corner of b opposite its origin.
func End[T Scalar](b BoxN[T]) Vec[T] {
	v := Zero[T](b.Dims())
	for i := range v {
		v[i] = EndDim(b, i)
	}
	return v
}

// Contains reports whether p is inside b. Both boundaries are
// inclusive: the origin and end corners are contained.
func Contains[T Scalar](b BoxN[T], p Vec[T]) bool {
	if b.Dims() != len(p) {
		panic("ndgeom: dimension mismatch")
	}
	for i, d := range p {
		o := b.OriginDim(i)
		if d < o || d > o+b.SizeDim(i) {
			return false
		}
	}
	return true
}

// An AABB is an axis-aligned bounding box represented as an origin
// point and a per-dimension size. Origin and Size always have the
// same number of dimensions.
type AABB[T Scalar] struct {
	Origin, Size Vec[T]
}

// Bx is shorthand for AABB[T]{origin, size}. It panics if origin and
// size have different dimensions.
func Bx[T Scalar](origin, size Vec[T]) AABB[T] {
	sameDims[T](origin, size)
	return AABB[T]{Origin: origin, Size: size}
}

// BConv converts an AABB[In] to an AABB[Out] with possible loss of
// precision.
func BConv[Out Scalar, In Scalar](b AABB[In]) AABB[Out] {
	return AABB[Out]{
		Origin: Conv[Out](b.Origin),
		Size:   Conv[Out](b.Size),
	}
}

// FromImageRect returns the 2-D box equivalent to r.
func FromImageRect(r image.Rectangle) AABB[int] {
	return AABB[int]{
		Origin: FromImagePoint(r.Min),
		Size:   FromImagePoint(r.Max.Sub(r.Min)),
	}
}

// FromFixedRect returns the 2-D box equivalent to the 26.6
// fixed-point r.
func FromFixedRect(r fixed.Rectangle26_6) AABB[float64] {
	min := FromFixedPoint(r.Min)
	return AABB[float64]{
		Origin: min,
		Size:   FromFixedPoint(r.Max).Sub(min),
	}
}

func (b AABB[T]) Dims() int { return len(b.Origin) }

func (b AABB[T]) OriginDim(i int) T { return b.Origin[i] }

func (b AABB[T]) SetOriginDim(i int, val T) { b.Origin[i] = val }

func (b AABB[T]) SizeDim(i int) T { return b.Size[i] }

func (b AABB[T]) SetSizeDim(i int, val T) { b.Size[i] = val }

// Clone returns a copy of b that shares no components with it.
func (b AABB[T]) Clone() AABB[T] {
	return AABB[T]{Origin: b.Origin.Clone(), Size: b.Size.Clone()}
}

func (b AABB[T]) Eq(c AABB[T]) bool {
	return b.Origin.Eq(c.Origin) && b.Size.Eq(c.Size)
}

func (b AABB[T]) IsZero() bool {
	return b.Origin.IsZero() && b.Size.IsZero()
}

// EndDim returns origin + size along dimension i.
func (b AABB[T]) EndDim(i int) T {
	return b.Origin[i] + b.Size[i]
}

// End returns the corner of b opposite its origin.
func (b AABB[T]) End() Vec[T] {
	return b.Origin.Add(b.Size)
}

// CenterDim returns the midpoint along dimension i.
func (b AABB[T]) CenterDim(i int) T {
	return b.Origin[i] + b.Size[i]/2
}

// Center returns the point at the middle of b.
func (b AABB[T]) Center() Vec[T] {
	return Center[T](b)
}

// Contains reports whether p is inside b, boundaries included.
func (b AABB[T]) Contains(p Vec[T]) bool {
	return Contains[T](b, p)
}

// ImageRect converts a 2-D box to an image.Rectangle with possible
// loss of precision.
func (b AABB[T]) ImageRect() image.Rectangle {
	return image.Rect(
		int(b.Origin[0]),
		int(b.Origin[1]),
		int(b.EndDim(0)),
		int(b.EndDim(1)),
	)
}

// Canon returns a copy of b with any negative sizes flipped so that
// every size is non-negative and the box covers the same region.
func Canon[T SignedScalar](b AABB[T]) AABB[T] {
	b = b.Clone()
	for i, s := range b.Size {
		if s < 0 {
			b.Origin[i] += s
			b.Size[i] = -s
		}
	}
	return b
}

// Bounding returns the smallest box that contains every point in
// points. It reports false if points is empty, which is distinct from
// the zero-size box produced by a single point.
func Bounding[T Scalar](points ...Vec[T]) (AABB[T], bool) {
	return BoundingSeq(slices.Values(points))
}

// BoundingSeq is like Bounding but consumes an iterator.
func BoundingSeq[T Scalar](points iter.Seq[Vec[T]]) (AABB[T], bool) {
	var min, max Vec[T]
	first := true
	for p := range points {
		if first {
			min = p.Clone()
			max = p.Clone()
			first = false
			continue
		}
		sameDims[T](min, p)
		for i, d := range p {
			if d < min[i] {
				min[i] = d
			} else if d > max[i] {
				max[i] = d
			}
		}
	}
	if first {
		return AABB[T]{}, false
	}
	return AABB[T]{Origin: min, Size: max.Sub(min)}, true
}

// A FlatAABB is an axis-aligned bounding box stored as a single flat
// tuple: the first half holds the origin and the second half the
// size. A 2-D box is [left, top, width, height].
type FlatAABB[T Scalar] []T

// Flat is shorthand for FlatAABB[T]{vals...}. It panics if given an
// odd number of components.
func Flat[T Scalar](vals ...T) FlatAABB[T] {
	if len(vals)%2 != 0 {
		panic("ndgeom: flat AABB requires an even number of components")
	}
	return FlatAABB[T](vals)
}

func (f FlatAABB[T]) Dims() int { return len(f) / 2 }

func (f FlatAABB[T]) OriginDim(i int) T {
	return f[f.origin(i)]
}

func (f FlatAABB[T]) SetOriginDim(i int, val T) {
	f[f.origin(i)] = val
}

func (f FlatAABB[T]) SizeDim(i int) T {
	return f[f.size(i)]
}

func (f FlatAABB[T]) SetSizeDim(i int, val T) {
	f[f.size(i)] = val
}

func (f FlatAABB[T]) origin(i int) int {
	if i < 0 || i >= f.Dims() {
		panic("ndgeom: dimension out of range")
	}
	return i
}

func (f FlatAABB[T]) size(i int) int {
	if i < 0 || i >= f.Dims() {
		panic("ndgeom: dimension out of range")
	}
	return f.Dims() + i
}

// AABB converts f to the origin and size pair form. The result shares
// no components with f.
func (f FlatAABB[T]) AABB() AABB[T] {
	n := f.Dims()
	return AABB[T]{
		Origin: Vec[T](f[:n]).Clone(),
		Size:   Vec[T](f[n:]).Clone(),
	}
}
