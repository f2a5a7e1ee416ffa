package ndgeom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMag(t *testing.T) {
	require.Equal(t, 5.0, Mag[float64](V(3.0, 4.0)))
	require.Equal(t, float32(5), Mag[float32](V[float32](3, 4)))
	require.Equal(t, 0.0, Mag[float64](Zero[float64](3)))
	require.InDelta(t, math.Sqrt(3), Mag[float64](V(1.0, 1.0, 1.0)), 1e-12)
}

func TestDist(t *testing.T) {
	require.Equal(t, 5.0, Dist[float64](V(3.0, 4.0), V(0.0, 0.0)))
	require.Equal(t, 2.0, Dist[float64](V(3.0, 4.0), V(3.0, 6.0)))
	require.Equal(t, Dist[float64](V(1.0, 2.0), V(4.0, 6.0)), Dist[float64](V(4.0, 6.0), V(1.0, 2.0)))
}

func TestUnit(t *testing.T) {
	t.Run("Direction", func(t *testing.T) {
		require.Equal(t, V(0.6, 0.8), Unit(V(3.0, 4.0)))
		require.Equal(t, V(-1.0, 0.0), Unit(V(-2.5, 0.0)))
	})

	t.Run("Magnitude", func(t *testing.T) {
		u := Unit(V(1.0, 2.0, 3.0))
		require.InDelta(t, 1, Mag[float64](u), 1e-12)
	})

	t.Run("ZeroVector", func(t *testing.T) {
		u := Unit(Zero[float64](3))
		require.Equal(t, Zero[float64](3), u)
		for _, d := range u {
			require.False(t, math.IsNaN(d))
			require.False(t, math.IsInf(d, 0))
		}
	})
}
