package ndgeom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	_ VecN[int]     = Vec[int]{}
	_ XVec[int]     = Vec[int]{}
	_ YVec[int]     = Vec[int]{}
	_ ZVec[int]     = Vec[int]{}
	_ WVec[int]     = Vec[int]{}
	_ BoxN[float64] = AABB[float64]{}
	_ BoxN[float64] = FlatAABB[float64]{}
	_ XBox[float64] = AABB[float64]{}
	_ YBox[float64] = AABB[float64]{}
	_ ZBox[float64] = AABB[float64]{}
	_ XBox[float64] = FlatAABB[float64]{}
	_ YBox[float64] = FlatAABB[float64]{}
	_ ZBox[float64] = FlatAABB[float64]{}
)

// pair is a client-supplied vector representation used to check that
// the package operations work through the VecN capability alone.
type pair struct {
	x, y float64
}

func (p *pair) Dims() int { return 2 }

func (p *pair) Dim(i int) float64 {
	switch i {
	case 0:
		return p.x
	case 1:
		return p.y
	}
	panic("ndgeom: dimension out of range")
}

func (p *pair) SetDim(i int, val float64) {
	switch i {
	case 0:
		p.x = val
	case 1:
		p.y = val
	default:
		panic("ndgeom: dimension out of range")
	}
}

func TestVecN_ClientType(t *testing.T) {
	t.Run("AddAssign", func(t *testing.T) {
		p := &pair{1, 2}
		AddAssign[float64](p, &pair{3, 4})
		require.Equal(t, &pair{4, 6}, p)
	})

	t.Run("MixedRepresentations", func(t *testing.T) {
		p := &pair{1, 2}
		SubAssign[float64](p, V(10.0, 20.0))
		require.Equal(t, &pair{-9, -18}, p)
	})

	t.Run("Queries", func(t *testing.T) {
		p := &pair{3, 4}
		require.Equal(t, 25.0, SquaredMag[float64](p))
		require.Equal(t, 5.0, Mag[float64](p))
		require.Equal(t, 11.0, Dot[float64](p, &pair{1, 2}))
		require.Equal(t, 3.0, MinDim[float64](p))
		require.Equal(t, 4.0, MaxDim[float64](p))
	})

	t.Run("DimensionMismatch", func(t *testing.T) {
		require.Panics(t, func() { AddAssign[float64](&pair{}, V(1.0)) })
	})
}

func TestVecN_Assign(t *testing.T) {
	t.Run("AddAssign", func(t *testing.T) {
		v := V(1, 2, 3)
		AddAssign[int](v, V(10, 20, 30))
		require.Equal(t, V(11, 22, 33), v)
	})

	t.Run("SubAssign", func(t *testing.T) {
		v := V(11, 22, 33)
		SubAssign[int](v, V(1, 2, 3))
		require.Equal(t, V(10, 20, 30), v)
	})

	t.Run("MulAssign", func(t *testing.T) {
		v := V(1.0, -2.0)
		MulAssign[float64](v, 2.5)
		require.Equal(t, V(2.5, -5.0), v)
	})

	t.Run("DivAssign", func(t *testing.T) {
		v := V(9, 12)
		DivAssign[int](v, 3)
		require.Equal(t, V(3, 4), v)
	})

	t.Run("Mul2Assign", func(t *testing.T) {
		v := V(1, 2, 3)
		Mul2Assign[int](v, V(4, 5, 6))
		require.Equal(t, V(4, 10, 18), v)
	})

	t.Run("Div2Assign", func(t *testing.T) {
		v := V(8.0, 15.0)
		Div2Assign[float64](v, V(4.0, 5.0))
		require.Equal(t, V(2.0, 3.0), v)
	})

	t.Run("NegAssign", func(t *testing.T) {
		v := V(2, -5)
		NegAssign[int](v)
		require.Equal(t, V(-2, 5), v)
	})

	t.Run("LerpAssign", func(t *testing.T) {
		v := V(0.0, 10.0)
		LerpAssign[float64](v, V(10.0, 0.0), 0.25)
		require.Equal(t, V(2.5, 7.5), v)
	})

	t.Run("ZeroDivisor", func(t *testing.T) {
		v := V(1.0, -1.0)
		DivAssign[float64](v, 0)
		require.True(t, math.IsInf(v[0], 1))
		require.True(t, math.IsInf(v[1], -1))

		require.Panics(t, func() { DivAssign[int](V(1, 2), 0) })
	})
}
