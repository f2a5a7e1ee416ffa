// Package layout provides utilities to help with laying out
// two-dimensional boxes inside of other boxes.
package layout

import "deedles.dev/ndgeom"

// Edges is a bitmask representing zero or more edges of a
// two-dimensional box.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// hsplit splits a box into two boxes arranged horizontally, the left
// of which is w wide.
func hsplit[T ndgeom.Scalar](b ndgeom.AABB[T], w T) (left, right ndgeom.AABB[T]) {
	left = ndgeom.Bx(ndgeom.V(b.Left(), b.Top()), ndgeom.V(w, b.Height()))
	right = ndgeom.Bx(ndgeom.V(b.Left()+w, b.Top()), ndgeom.V(b.Width()-w, b.Height()))
	return left, right
}

func hsplitHalf[T ndgeom.Scalar](b ndgeom.AABB[T]) (left, right ndgeom.AABB[T]) {
	return hsplit(b, b.Width()/2)
}

// vsplit splits a box into two boxes arranged vertically, the top of
// which is h tall.
func vsplit[T ndgeom.Scalar](b ndgeom.AABB[T], h T) (top, bottom ndgeom.AABB[T]) {
	top = ndgeom.Bx(ndgeom.V(b.Left(), b.Top()), ndgeom.V(b.Width(), h))
	bottom = ndgeom.Bx(ndgeom.V(b.Left(), b.Top()+h), ndgeom.V(b.Width(), b.Height()-h))
	return top, bottom
}

func vsplitHalf[T ndgeom.Scalar](b ndgeom.AABB[T]) (top, bottom ndgeom.AABB[T]) {
	return vsplit(b, b.Height()/2)
}

// RightThenDown produces a series of n boxes the union of which
// recomposes b. The boxes are produced by splitting the right-most
// and then the bottom-most boxes in half recursively. In other words,
//
//	RightThenDown(b, 4)
//
// will produce
//
//	------------
//	|    |     |
//	|    -------
//	|    |  |  |
//	------------
func RightThenDown[T ndgeom.Scalar](b ndgeom.AABB[T], n int) []ndgeom.AABB[T] {
	tiles := make([]ndgeom.AABB[T], n)
	rightThenDown(tiles, b)
	return tiles
}

func rightThenDown[T ndgeom.Scalar](tiles []ndgeom.AABB[T], b ndgeom.AABB[T]) {
	tiles[0] = b

	split, next := hsplitHalf[T], vsplitHalf[T]
	for i := 1; i < len(tiles); i++ {
		tiles[i-1], tiles[i] = split(tiles[i-1])
		split, next = next, split
	}
}

// TwoThirdsSidebar produces a layout where the first box is
// two-thirds the width of b and the rest are arranged vertically in
// an even split in the remaining space.
func TwoThirdsSidebar[T ndgeom.Scalar](b ndgeom.AABB[T], n int) []ndgeom.AABB[T] {
	tiles := make([]ndgeom.AABB[T], n)
	twoThirdsSidebar(tiles, b)
	return tiles
}

func twoThirdsSidebar[T ndgeom.Scalar](tiles []ndgeom.AABB[T], b ndgeom.AABB[T]) {
	var rem ndgeom.AABB[T]
	tiles[0], rem = hsplit(b, 2*b.Width()/3)
	evenVertically(tiles[1:], rem)
}

// EvenVertically splits b into n boxes arranged vertically, each with
// the full width of b. In other words,
//
//	EvenVertically(b, 3)
//
// will produce
//
//	----------
//	|        |
//	----------
//	|        |
//	----------
//	|        |
//	----------
func EvenVertically[T ndgeom.Scalar](b ndgeom.AABB[T], n int) []ndgeom.AABB[T] {
	tiles := make([]ndgeom.AABB[T], n)
	evenVertically(tiles, b)
	return tiles
}

func evenVertically[T ndgeom.Scalar](tiles []ndgeom.AABB[T], b ndgeom.AABB[T]) {
	h := b.Height() / T(len(tiles))
	c, _ := vsplit(b, h)
	for i := range tiles {
		tiles[i] = c
		c = ndgeom.Bx(ndgeom.V(c.Left(), c.Top()+h), c.Size.Clone())
	}
}

// VerticalStack returns len(sizes) boxes stacked vertically. Each
// box's height can differ but they are all the same width,
// specifically the width of the widest provided size. The top-left
// corner of the first box is positioned at start.
func VerticalStack[T ndgeom.Scalar](start ndgeom.Vec[T], sizes []ndgeom.Vec[T]) []ndgeom.AABB[T] {
	boxes := make([]ndgeom.AABB[T], 0, len(sizes))

	var w T
	for _, size := range sizes {
		if size.X() > w {
			w = size.X()
		}
	}

	y := start.Y()
	for _, size := range sizes {
		boxes = append(boxes, ndgeom.Bx(ndgeom.V(start.X(), y), ndgeom.V(w, size.Y())))
		y += size.Y()
	}

	return boxes
}

// Align shifts the specified edges of inner to align with the
// corresponding edges of outer, stretching the box as necessary if
// opposite edges are specified. With no edges, inner is centered
// inside outer.
func Align[T ndgeom.Scalar](outer, inner ndgeom.AABB[T], edges Edges) ndgeom.AABB[T] {
	size := inner.Size.Clone()
	inner = ndgeom.Bx(outer.Center().Sub(size.Div(2)), size)

	switch {
	case edges&EdgeTop != 0:
		inner.SetTop(outer.Top())
		if edges&EdgeBottom != 0 {
			inner.SetHeight(outer.Height())
		}
	case edges&EdgeBottom != 0:
		inner.SetTop(outer.Bottom() - inner.Height())
	}
	switch {
	case edges&EdgeLeft != 0:
		inner.SetLeft(outer.Left())
		if edges&EdgeRight != 0 {
			inner.SetWidth(outer.Width())
		}
	case edges&EdgeRight != 0:
		inner.SetLeft(outer.Right() - inner.Width())
	}

	return inner
}
