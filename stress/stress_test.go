package stress_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tectonik/stressinv/geomath"
	"github.com/tectonik/stressinv/stress"
)

func TestEngine_SetHypotheticalStress_Identity(t *testing.T) {
	e := stress.NewEngine()

	_, ok := e.Stress()
	require.False(t, ok, "fresh engine must have no hypothesis")

	require.NoError(t, e.SetHypotheticalStress(geomath.Identity(), 0.5))

	sigma, ok := e.Stress()
	require.True(t, ok)

	// Identity orientation: σ1 along East, σ3 along North, σ2 along Up.
	want := geomath.Mat3{{-1, 0, 0}, {0, 0, 0}, {0, 0, -0.5}}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.InDelta(t, want[i][j], sigma[i][j], 1e-12)
		}
	}
}

func TestEngine_Validation(t *testing.T) {
	e := stress.NewEngine()
	require.ErrorIs(t, e.SetHypotheticalStress(geomath.Identity(), -0.1), stress.ErrShapeRatioRange)
	require.ErrorIs(t, e.SetHypotheticalStress(geomath.Identity(), 1.1), stress.ErrShapeRatioRange)

	skew := geomath.Identity()
	skew[0][1] = 0.3
	require.ErrorIs(t, e.SetHypotheticalStress(skew, 0.5), stress.ErrNotRotation)
}

func TestEngine_StressSymmetricAndRotated(t *testing.T) {
	w, err := geomath.RotationFromAxisAngle(geomath.Vec3{X: 1, Y: -2, Z: 0.7}, 0.9)
	require.NoError(t, err)

	e := stress.NewEngine()
	require.NoError(t, e.SetHypotheticalStress(w, 0.3))

	sigma, ok := e.Stress()
	require.True(t, ok)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.InDelta(t, sigma[j][i], sigma[i][j], 1e-12, "stress tensor must be symmetric")
		}
	}

	// The uniform field returns the same tensor at every position.
	at, ok := e.StressAt(geomath.Vec3{X: 12, Y: -4, Z: 100})
	require.True(t, ok)
	require.Equal(t, sigma, at)
}

func TestPrincipalStresses_RecoversHypothesis(t *testing.T) {
	w, err := geomath.RotationFromAxisAngle(geomath.Vec3{X: 0.2, Y: 1, Z: 3}, 1.1)
	require.NoError(t, err)

	const r = 0.25
	e := stress.NewEngine()
	require.NoError(t, e.SetHypotheticalStress(w, r))
	sigma, _ := e.Stress()

	ps, err := stress.PrincipalStresses(sigma)
	require.NoError(t, err)

	// Ascending eigenvalues: σ1 = -1, σ2 = -R, σ3 = 0.
	require.InDelta(t, -1, ps.Values[0], 1e-9)
	require.InDelta(t, -r, ps.Values[1], 1e-9)
	require.InDelta(t, 0, ps.Values[2], 1e-9)

	// Recovered axes must align (up to sign) with the hypothesis rows
	// (σ1, σ3, σ2) = rows (0, 1, 2) of W.
	require.InDelta(t, 0, ps.Axes[0].AxialAngleTo(w.Row(0)), 1e-7)
	require.InDelta(t, 0, ps.Axes[1].AxialAngleTo(w.Row(2)), 1e-7)
	require.InDelta(t, 0, ps.Axes[2].AxialAngleTo(w.Row(1)), 1e-7)
}

func TestFaultStressComponents(t *testing.T) {
	e := stress.NewEngine()
	require.NoError(t, e.SetHypotheticalStress(geomath.Identity(), 0.5))
	sigma, _ := e.Stress()

	// Plane normal at 45° between σ1 (East) and σ3 (North): maximal shear.
	n, err := (geomath.Vec3{X: 1, Y: 1}).Normalize()
	require.NoError(t, err)

	shear, normalStress, shearMag := stress.FaultStressComponents(sigma, n)
	require.InDelta(t, -0.5, normalStress, 1e-12)
	require.InDelta(t, 0.5, shearMag, 1e-12)
	require.InDelta(t, 0, shear.Dot(n), 1e-12, "shear must lie in the plane")

	// A principal plane carries no shear.
	_, _, mag := stress.FaultStressComponents(sigma, geomath.Vec3{X: 1})
	require.Less(t, mag, stress.ShearEps)
}

func TestAngularDifStriation(t *testing.T) {
	e := stress.NewEngine()
	require.NoError(t, e.SetHypotheticalStress(geomath.Identity(), 0.5))
	sigma, _ := e.Stress()

	n, err := (geomath.Vec3{X: 1, Y: 1}).Normalize()
	require.NoError(t, err)
	shear, _, mag := stress.FaultStressComponents(sigma, n)
	require.Greater(t, mag, stress.ShearEps)

	dir, err := shear.Normalize()
	require.NoError(t, err)
	require.InDelta(t, 0, stress.AngularDifStriation(dir, shear, mag), 1e-12)
	require.InDelta(t, math.Pi, stress.AngularDifStriation(dir.Neg(), shear, mag), 1e-12)
}
