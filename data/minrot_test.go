package data_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tectonik/stressinv/data"
	"github.com/tectonik/stressinv/geomath"
)

func TestMinRotationAngle_Identity(t *testing.T) {
	require.Equal(t, 0.0, data.MinRotationAngle(geomath.Identity()))
}

func TestMinRotationAngle_SmallRotationIsItsOwnMinimum(t *testing.T) {
	for _, angle := range []float64{0.1, 0.5, 1.0, 1.5} {
		r, err := geomath.RotationFromAxisAngle(geomath.Vec3{X: 1, Y: 0.3, Z: -2}, angle)
		require.NoError(t, err)
		require.InDelta(t, angle, data.MinRotationAngle(r), 1e-9,
			"a rotation below the relabeling threshold is already minimal")
	}
}

func TestMinRotationAngle_RelabelingShrinksLargeRotation(t *testing.T) {
	// A rotation by 3 rad about the σ2 axis is equivalent, under the
	// (−σ1,−σ3,σ2) relabeling, to a rotation by π−3 rad.
	r, err := geomath.RotationFromAxisAngle(geomath.Vec3{Z: 1}, 3)
	require.NoError(t, err)
	require.InDelta(t, math.Pi-3, data.MinRotationAngle(r), 1e-9)
}

func TestMinRotationAngle_RangeAndBound(t *testing.T) {
	axes := []geomath.Vec3{
		{X: 1}, {Y: 1}, {Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -2, Y: 0.5, Z: 1.3},
	}
	for _, axis := range axes {
		for angle := 0.0; angle <= math.Pi+1e-9; angle += math.Pi / 7 {
			r, err := geomath.RotationFromAxisAngle(axis, angle)
			require.NoError(t, err)
			got := data.MinRotationAngle(r)
			require.GreaterOrEqual(t, got, 0.0)
			require.LessOrEqual(t, got, math.Pi+1e-12)
			require.LessOrEqual(t, got, angle+1e-9,
				"relabelings may only shrink the rotation (axis=%v angle=%g)", axis, angle)
		}
	}
}
