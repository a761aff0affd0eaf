package main

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/oliverbestmann/se2/gm"
	"github.com/stretchr/testify/require"
)

func TestParseTransform(t *testing.T) {
	tr, err := parseTransform("1, 2,3")
	require.NoError(t, err)
	require.Equal(t, gm.TransformFromXYAngle(1, 2, 3), tr)

	_, err = parseTransform("1,2")
	require.ErrorIs(t, err, errUsage)

	_, err = parseTransform("1,2,x")
	require.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestRun(t *testing.T) {
	t.Run("compose", func(t *testing.T) {
		result, err := run([]string{"compose", "1,2,3", "-2,-1,-1.5"})
		require.NoError(t, err)
		require.InDelta(t, 3.121105001260758, result.X(), 1e-9)
		require.InDelta(t, 2.707752480480711, result.Y(), 1e-9)
		require.InDelta(t, 1.5, result.Angle().Radians(), 1e-9)
	})

	t.Run("inverse", func(t *testing.T) {
		result, err := run([]string{"inverse", "1,2,3"})
		require.NoError(t, err)
		require.InDelta(t, 0.707752480480711, result.X(), 1e-9)
		require.InDelta(t, 2.121105001260758, result.Y(), 1e-9)
		require.InDelta(t, -3.0, result.Angle().Radians(), 1e-9)
	})

	t.Run("relative", func(t *testing.T) {
		result, err := run([]string{"relative", "1,2,3", "-2,-1,-1.5"})
		require.NoError(t, err)
		require.InDelta(t, 2.546617465621735, result.X(), 1e-9)
		require.InDelta(t, 3.393337513980938, result.Y(), 1e-9)
		require.InDelta(t, 1.78318530717959, result.Angle().Radians(), 1e-9)
	})

	t.Run("lerp", func(t *testing.T) {
		result, err := run([]string{"lerp", "0,0,0", "2,4,1", "0.5"})
		require.NoError(t, err)
		require.Equal(t, gm.TransformFromXYAngle(1, 2, 0.5), result)
	})

	t.Run("errors", func(t *testing.T) {
		for _, args := range [][]string{
			{},
			{"rotate", "1,2,3"},
			{"compose", "1,2,3"},
			{"inverse"},
			{"relative", "1,2,3"},
			{"lerp", "0,0,0", "1,1,1"},
		} {
			_, err := run(args)
			require.ErrorIs(t, err, errUsage, "args %v", args)
		}

		_, err := run([]string{"lerp", "0,0,0", "1,1,1", "half"})
		require.ErrorIs(t, err, strconv.ErrSyntax)
	})
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printResult(&buf, gm.TransformFromXYAngle(1, 2, 0.5), true))
	require.JSONEq(t, `{"x": 1, "y": 2, "theta": 0.5}`, buf.String())

	buf.Reset()
	require.NoError(t, printResult(&buf, gm.TransformFromXYAngle(1, 2, 0.5), false))
	require.Equal(t, "Transform(x=1, y=2, angle=0.5)\n", buf.String())
}
