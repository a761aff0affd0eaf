package cpconv

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/se2/gm"
	"github.com/stretchr/testify/require"
)

func TestVec(t *testing.T) {
	v := gm.Vec{X: 1.5, Y: -2}
	require.Equal(t, cp.Vector{X: 1.5, Y: -2}, VecToCp(v))
	require.Equal(t, v, VecFromCp(VecToCp(v)))
}

func TestTransformToCp(t *testing.T) {
	for range 50 {
		tr := gm.RandomTransform(10)
		p := gm.RandomVec().Mul(3)

		expected := tr.TransformPoint(p)
		actual := TransformToCp(tr).Point(VecToCp(p))

		require.InDelta(t, expected.X, actual.X, 1e-9)
		require.InDelta(t, expected.Y, actual.Y, 1e-9)
	}
}

func TestBody(t *testing.T) {
	body := cp.NewKinematicBody()

	tr := gm.TransformFromXYAngle(3, 4, 1.25)
	ApplyToBody(body, tr)

	require.InDelta(t, 1.25, body.Angle(), 1e-12)

	back := TransformFromBody(body)
	require.InDelta(t, 3, back.X(), 1e-9)
	require.InDelta(t, 4, back.Y(), 1e-9)
	require.InDelta(t, 1.25, back.Angle().Radians(), 1e-12)
}

func TestTransformFromBody_Normalizes(t *testing.T) {
	body := cp.NewKinematicBody()
	body.SetAngle(5 * math.Pi / 2)

	tr := TransformFromBody(body)
	require.InDelta(t, math.Pi/2, tr.Angle().Radians(), 1e-12)
}
