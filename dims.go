package ndgeom

// Named-dimension accessors. These are pure renamings of Dim,
// OriginDim, SizeDim, and EndDim so that 2-D and 3-D code reads
// naturally instead of indexing by number.

// XVec is satisfied by vectors with a named X dimension (axis 0).
type XVec[T Scalar] interface {
	X() T
	SetX(val T)
}

// YVec is satisfied by vectors with a named Y dimension (axis 1).
type YVec[T Scalar] interface {
	Y() T
	SetY(val T)
}

// ZVec is satisfied by vectors with a named Z dimension (axis 2).
type ZVec[T Scalar] interface {
	Z() T
	SetZ(val T)
}

// WVec is satisfied by vectors with a named W dimension (axis 3).
type WVec[T Scalar] interface {
	W() T
	SetW(val T)
}

func (v Vec[T]) X() T { return v[0] }
func (v Vec[T]) Y() T { return v[1] }
func (v Vec[T]) Z() T { return v[2] }
func (v Vec[T]) W() T { return v[3] }

func (v Vec[T]) SetX(val T) { v[0] = val }
func (v Vec[T]) SetY(val T) { v[1] = val }
func (v Vec[T]) SetZ(val T) { v[2] = val }
func (v Vec[T]) SetW(val T) { v[3] = val }

// XBox is satisfied by boxes with a named X dimension (axis 0).
type XBox[T Scalar] interface {
	Left() T
	Right() T
	Width() T
	SetLeft(val T)
	SetWidth(val T)
}

// YBox is satisfied by boxes with a named Y dimension (axis 1).
type YBox[T Scalar] interface {
	Top() T
	Bottom() T
	Height() T
	SetTop(val T)
	SetHeight(val T)
}

// ZBox is satisfied by boxes with a named Z dimension (axis 2).
type ZBox[T Scalar] interface {
	Back() T
	Front() T
	Depth() T
	SetBack(val T)
	SetDepth(val T)
}

func (b AABB[T]) Left() T   { return b.Origin[0] }
func (b AABB[T]) Top() T    { return b.Origin[1] }
func (b AABB[T]) Back() T   { return b.Origin[2] }
func (b AABB[T]) Width() T  { return b.Size[0] }
func (b AABB[T]) Height() T { return b.Size[1] }
func (b AABB[T]) Depth() T  { return b.Size[2] }
func (b AABB[T]) Right() T  { return b.EndDim(0) }
func (b AABB[T]) Bottom() T { return b.EndDim(1) }
func (b AABB[T]) Front() T  { return b.EndDim(2) }

func (b AABB[T]) SetLeft(val T)   { b.Origin[0] = val }
func (b AABB[T]) SetTop(val T)    { b.Origin[1] = val }
func (b AABB[T]) SetBack(val T)   { b.Origin[2] = val }
func (b AABB[T]) SetWidth(val T)  { b.Size[0] = val }
func (b AABB[T]) SetHeight(val T) { b.Size[1] = val }
func (b AABB[T]) SetDepth(val T)  { b.Size[2] = val }

func (f FlatAABB[T]) Left() T   { return f.OriginDim(0) }
func (f FlatAABB[T]) Top() T    { return f.OriginDim(1) }
func (f FlatAABB[T]) Back() T   { return f.OriginDim(2) }
func (f FlatAABB[T]) Width() T  { return f.SizeDim(0) }
func (f FlatAABB[T]) Height() T { return f.SizeDim(1) }
func (f FlatAABB[T]) Depth() T  { return f.SizeDim(2) }
func (f FlatAABB[T]) Right() T  { return EndDim[T](f, 0) }
func (f FlatAABB[T]) Bottom() T { return EndDim[T](f, 1) }
func (f FlatAABB[T]) Front() T  { return EndDim[T](f, 2) }

func (f FlatAABB[T]) SetLeft(val T)   { f.SetOriginDim(0, val) }
func (f FlatAABB[T]) SetTop(val T)    { f.SetOriginDim(1, val) }
func (f FlatAABB[T]) SetBack(val T)   { f.SetOriginDim(2, val) }
func (f FlatAABB[T]) SetWidth(val T)  { f.SetSizeDim(0, val) }
func (f FlatAABB[T]) SetHeight(val T) { f.SetSizeDim(1, val) }
func (f FlatAABB[T]) SetDepth(val T)  { f.SetSizeDim(2, val) }
