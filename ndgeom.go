// Package ndgeom provides generic vector and axis-aligned bounding
// box math over fixed-length numeric tuples.
//
// It is patterned after image.Point and image.Rectangle, but
// generalizes them to an arbitrary number of dimensions and to any
// numeric component type. The concrete Vec and AABB types cover most
// uses; the VecN and BoxN interfaces let client code plug its own
// point and box representations into the same operations.
package ndgeom

import "golang.org/x/exp/constraints"

// Scalar is a constraint for the component types that ndgeom types
// and functions can handle.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// SignedScalar is a constraint for component types that support
// negation.
type SignedScalar interface {
	constraints.Signed | constraints.Float
}

// Float is a constraint for component types that support real-valued
// operations such as magnitude, distance, and normalization.
type Float interface {
	constraints.Float
}
