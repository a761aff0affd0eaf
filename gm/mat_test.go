package gm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireMatInDelta(t *testing.T, expected, actual Mat, delta float64) {
	t.Helper()

	require.InDelta(t, expected.XAxis.X, actual.XAxis.X, delta)
	require.InDelta(t, expected.XAxis.Y, actual.XAxis.Y, delta)
	require.InDelta(t, expected.YAxis.X, actual.YAxis.X, delta)
	require.InDelta(t, expected.YAxis.Y, actual.YAxis.Y, delta)
}

func TestMat_Inverse(t *testing.T) {
	m := RotationMat(2)
	require.NotEqual(t, m, m.Inverse())
	requireMatInDelta(t, m, m.Inverse().Inverse(), 1e-12)

	// the inverse of a rotation is the rotation by the negated angle
	requireMatInDelta(t, RotationMat(-2), m.Inverse(), 1e-12)
}

func TestMat_InverseIdentity(t *testing.T) {
	m := IdentityMat()
	require.Equal(t, m, m.Inverse())
}

func TestMat_TryInverse(t *testing.T) {
	_, ok := ScaleMat(Vec{X: 1, Y: 0}).TryInverse()
	require.False(t, ok)

	inv, ok := ScaleMat(Vec{X: 2, Y: 4}).TryInverse()
	require.True(t, ok)
	require.Equal(t, ScaleMat(Vec{X: 0.5, Y: 0.25}), inv)
}

func TestMat_Mul(t *testing.T) {
	m := RotationMat(math.Pi).Mul(RotationMat(math.Pi / 2))
	requireMatInDelta(t, RotationMat(math.Pi*1.5), m, 1e-12)
}

func TestMat_Transform(t *testing.T) {
	t.Run("rotate 180°", func(t *testing.T) {
		m := RotationMat(math.Pi)

		r := m.Transform(Vec{X: 1, Y: 1})
		require.InDelta(t, -1, r.X, 1e-6)
		require.InDelta(t, -1, r.Y, 1e-6)

		r = m.Transform(Vec{X: 0, Y: 1})
		require.InDelta(t, 0, r.X, 1e-6)
		require.InDelta(t, -1, r.Y, 1e-6)
	})

	t.Run("rotate 90°", func(t *testing.T) {
		m := RotationMat(math.Pi / 2)

		r := m.Transform(Vec{X: 1, Y: 1})
		require.InDelta(t, -1, r.X, 1e-6)
		require.InDelta(t, 1, r.Y, 1e-6)

		r = m.Transform(Vec{X: 1, Y: 0})
		require.InDelta(t, 0, r.X, 1e-6)
		require.InDelta(t, 1, r.Y, 1e-6)

		r = m.Transform(Vec{X: 0, Y: 1})
		require.InDelta(t, -1, r.X, 1e-6)
		require.InDelta(t, 0, r.Y, 1e-6)
	})

	t.Run("agrees with rotation", func(t *testing.T) {
		for range 100 {
			angle := RandomAngle()
			v := RandomVec()

			expected := RotationOf(angle).Apply(v)
			actual := RotationMat(angle).Transform(v)
			require.InDelta(t, expected.X, actual.X, 1e-12)
			require.InDelta(t, expected.Y, actual.Y, 1e-12)
		}
	})
}
